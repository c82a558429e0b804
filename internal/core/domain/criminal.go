package domain

import (
	"strings"
	"time"
)

// Record of proceedings pseudo-document constants. The ROP is synthesized by
// the converter, not returned by the upstream file service.
const (
	CategoryROP        = "rop"
	ROPDescription     = "Record of Proceedings"
	CategoryReport     = "Report"
	CategoryBail       = "Bail"
	DispositionCancelled = "CANCELLED"
)

// AccusedFile is the upstream criminal file view the converter works from.
type AccusedFile struct {
	PartID      string          `json:"partId"`
	ProfSeqNo   string          `json:"profSeqNo"`
	CourtLevelCd string         `json:"courtLevelCd"`
	CourtClassCd string         `json:"courtClassCd"`
	Appearances []Appearance    `json:"appearances"`
	Documents   []RawDocument   `json:"documents"`
}

// Appearance is a scheduled or past court appearance on a file.
type Appearance struct {
	AppearanceID   string `json:"appearanceId"`
	AppearanceDate string `json:"appearanceDate"`
}

// RawDocument is an upstream document row before normalization.
type RawDocument struct {
	Category               string `json:"category"`
	DocmFormID             string `json:"docmFormId"`
	DocmClassification     string `json:"docmClassification"`
	DocmID                 string `json:"docmId"`
	ImageID                string `json:"imageId"`
	IssueDate              string `json:"issueDate"`
	DocumentTypeDescription string `json:"documentTypeDescription"`
	DispositionDescription *string `json:"dispositionDescription"`
	PartID                 string `json:"partId"`
}

// CriminalDocument is a normalized criminal-file document. Absent identifiers
// are nil, never empty strings.
type CriminalDocument struct {
	Category                string  `json:"category"`
	DocumentTypeDescription string  `json:"documentTypeDescription"`
	DocmID                  *string `json:"docmId"`
	ImageID                 *string `json:"imageId"`
	IssueDate               string  `json:"issueDate"`
	DispositionDescription  *string `json:"dispositionDescription"`
	PartID                  *string `json:"partId"`
	HasFutureAppearance     bool    `json:"hasFutureAppearance"`
}

// IsCancelled reports whether the document's disposition is "CANCELLED",
// case-insensitively. A nil disposition is not cancelled.
func (d CriminalDocument) IsCancelled() bool {
	return d.DispositionDescription != nil &&
		strings.EqualFold(*d.DispositionDescription, DispositionCancelled)
}

// issueDateLayouts are the timestamp shapes upstream systems emit.
var issueDateLayouts = []string{
	"2006-01-02 15:04:05.0",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseIssueDate parses an upstream issue date. Unparseable dates return the
// zero time so that any parseable date wins a recency comparison.
func ParseIssueDate(s string) time.Time {
	for _, layout := range issueDateLayouts {
		if t, err := time.Parse(layout, strings.TrimSpace(s)); err == nil {
			return t
		}
	}
	return time.Time{}
}
