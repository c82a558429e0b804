package domain

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// DocumentType identifies which retrieval strategy handles a request.
type DocumentType string

const (
	DocumentTypeROP               DocumentType = "ROP"
	DocumentTypeCourtSummary      DocumentType = "CourtSummary"
	DocumentTypeFile              DocumentType = "File"
	DocumentTypeReport            DocumentType = "Report"
	DocumentTypeTranscript        DocumentType = "Transcript"
	DocumentTypeTransitoryDocument DocumentType = "TransitoryDocument"
)

// documentTypes is the closed set of recognized type tags.
var documentTypes = []DocumentType{
	DocumentTypeROP,
	DocumentTypeCourtSummary,
	DocumentTypeFile,
	DocumentTypeReport,
	DocumentTypeTranscript,
	DocumentTypeTransitoryDocument,
}

// ParseDocumentType parses a wire type tag case-insensitively.
// Unknown tags return ErrInvalidDocumentType before any upstream call is made.
func ParseDocumentType(s string) (DocumentType, error) {
	for _, t := range documentTypes {
		if strings.EqualFold(s, string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDocumentType, s)
}

// CourtDivision distinguishes criminal from civil file lookups.
type CourtDivision string

const (
	CourtDivisionCriminal CourtDivision = "R"
	CourtDivisionCivil    CourtDivision = "I"
)

// DocumentRequest is one document to retrieve, as received on the wire.
// Type must resolve to exactly one registered strategy.
type DocumentRequest struct {
	Type string       `json:"type"`
	Data DocumentData `json:"data"`
}

// DocumentData carries the superset of fields any strategy might need.
// A strategy reads only the fields relevant to it; the rest are ignored.
type DocumentData struct {
	// Criminal record of proceedings
	PartID       string `json:"partId,omitempty"`
	ProfSeqNo    string `json:"profSeqNo,omitempty"`
	CourtLevelCd string `json:"courtLevelCd,omitempty"`
	CourtClassCd string `json:"courtClassCd,omitempty"`

	// Civil court summary report
	AppearanceID string `json:"appearanceId,omitempty"`

	// Generic file retrieval. DocumentID is base64url (no padding) of the
	// upstream identifier and must be decoded before use.
	DocumentID    string `json:"documentId,omitempty"`
	FileID        string `json:"fileId,omitempty"`
	CorrelationID string `json:"correlationId,omitempty"`

	// Transcripts
	OrderID string `json:"orderId,omitempty"`

	// Shared-drive transitory documents
	Path string `json:"path,omitempty"`

	// Court-list report generation
	CourtDivisionCd string   `json:"courtDivisionCd,omitempty"`
	Date            string   `json:"date,omitempty"`
	LocationID      string   `json:"locationId,omitempty"`
	RoomCode        string   `json:"roomCode,omitempty"`
	Additions       []string `json:"additionsList,omitempty"`
	ReportType      string   `json:"reportType,omitempty"`

	// IsCriminal marks a File request as criminal-division rather than civil.
	IsCriminal bool `json:"isCriminal,omitempty"`
}

// PageRange is a contiguous zero-based page interval of one input document
// within a merged PDF. End of one range equals Start of the next.
type PageRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// PageCount returns the number of pages covered by the range.
func (r PageRange) PageCount() int {
	return r.End - r.Start
}

// MergeResult is the bundle endpoint's wire contract. PageRanges has one
// entry per input request, in request order.
type MergeResult struct {
	Base64PDF  string      `json:"base64Pdf"`
	PageRanges []PageRange `json:"pageRanges"`
}

// documentIDEncoding is URL-safe base64 without padding, matching the
// identifiers the frontend puts on the wire.
var documentIDEncoding = base64.RawURLEncoding

// DecodeDocumentID decodes a wire document identifier into the upstream key.
func DecodeDocumentID(encoded string) (string, error) {
	raw, err := documentIDEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: documentId is not base64url: %v", ErrInvalidInput, err)
	}
	return string(raw), nil
}

// EncodeDocumentID encodes an upstream key into its wire form.
// EncodeDocumentID(DecodeDocumentID(x)) reproduces x exactly.
func EncodeDocumentID(id string) string {
	return documentIDEncoding.EncodeToString([]byte(id))
}
