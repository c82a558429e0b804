package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/openjudiciary/casedocs-core/internal/core/domain"
	"github.com/openjudiciary/casedocs-core/internal/core/ports/driven"
	"github.com/openjudiciary/casedocs-core/internal/core/ports/driving"
)

// keyCategories are the normalized category labels always included in the
// key-document subset. Report and Bail are selected separately by recency.
var keyCategories = map[string]struct{}{
	"ROP":        {},
	"Initiating": {},
}

// Ensure recordsService implements RecordsService
var _ driving.RecordsService = (*recordsService)(nil)

// recordsService normalizes criminal document lists and derives key documents.
type recordsService struct {
	lookup driven.CategoryLookup
	logger *slog.Logger
	now    func() time.Time
}

// NewRecordsService creates a new RecordsService.
func NewRecordsService(lookup driven.CategoryLookup, logger *slog.Logger) driving.RecordsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &recordsService{
		lookup: lookup,
		logger: logger,
		now:    time.Now,
	}
}

// CriminalDocuments runs two explicit stages: a pure mapping of the raw rows,
// then synthesis of derived records and category resolution.
func (s *recordsService) CriminalDocuments(ctx context.Context, file domain.AccusedFile) ([]domain.CriminalDocument, error) {
	documents := mapRawDocuments(file.Documents)

	hasFuture := s.hasFutureAppearance(file.Appearances)

	// A file with appearances always carries a synthetic record-of-proceedings
	// entry in front of the stored documents.
	offset := 0
	if len(file.Appearances) > 0 {
		documents = append([]domain.CriminalDocument{{
			Category:                domain.CategoryROP,
			DocumentTypeDescription: domain.ROPDescription,
			PartID:                  emptyToNil(file.PartID),
		}}, documents...)
		offset = 1
	}

	for i := range documents {
		documents[i].HasFutureAppearance = hasFuture
	}

	if s.lookup == nil {
		return documents, nil
	}

	// The mapping stage preserves order, so mapped document offset+j came
	// from raw row j. Only the synthetic ROP has no raw row.
	for j := range file.Documents {
		doc := &documents[offset+j]
		if doc.Category != "" {
			continue
		}
		raw := file.Documents[j]
		category, err := s.lookup.DocumentCategory(ctx, raw.DocmFormID, raw.DocmClassification)
		if err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				return nil, err
			}
			s.logger.Warn("no category mapping for document",
				"form_id", raw.DocmFormID, "classification", raw.DocmClassification)
			continue
		}
		doc.Category = category
	}

	return documents, nil
}

// CriminalKeyDocuments selects the reduced key-document view: the most recent
// report first, then the fixed key categories in their original relative
// order, then the most recent non-cancelled bail document last. The order is
// a display contract.
func (s *recordsService) CriminalKeyDocuments(documents []domain.CriminalDocument) []domain.CriminalDocument {
	if len(documents) == 0 {
		return []domain.CriminalDocument{}
	}

	var report, bail *domain.CriminalDocument
	var reportDate, bailDate time.Time
	var others []domain.CriminalDocument

	for i := range documents {
		doc := documents[i]
		category := domain.FormatCategory(doc.Category)

		switch category {
		case domain.CategoryReport:
			issued := domain.ParseIssueDate(doc.IssueDate)
			if report == nil || issued.After(reportDate) {
				report = &documents[i]
				reportDate = issued
			}
		case domain.CategoryBail:
			if doc.IsCancelled() {
				continue
			}
			issued := domain.ParseIssueDate(doc.IssueDate)
			if bail == nil || issued.After(bailDate) {
				bail = &documents[i]
				bailDate = issued
			}
		default:
			if _, ok := keyCategories[category]; ok {
				others = append(others, doc)
			}
		}
	}

	result := make([]domain.CriminalDocument, 0, len(others)+2)
	if report != nil {
		result = append(result, *report)
	}
	result = append(result, others...)
	if bail != nil {
		result = append(result, *bail)
	}
	return result
}

// hasFutureAppearance reports whether any appearance date is today or later.
// Appearance dates are civil dates, so the comparison is by calendar day in
// the service's local zone, not by epoch interval.
func (s *recordsService) hasFutureAppearance(appearances []domain.Appearance) bool {
	y, m, d := s.now().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	for _, a := range appearances {
		date := domain.ParseIssueDate(a.AppearanceDate)
		if date.IsZero() {
			continue
		}
		ay, am, ad := date.Date()
		if !time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC).Before(today) {
			return true
		}
	}
	return false
}

// mapRawDocuments is the pure mapping stage: one normalized document per raw
// row, with blank identifiers normalized to nil.
func mapRawDocuments(raw []domain.RawDocument) []domain.CriminalDocument {
	documents := make([]domain.CriminalDocument, 0, len(raw))
	for _, r := range raw {
		documents = append(documents, domain.CriminalDocument{
			Category:                r.Category,
			DocumentTypeDescription: r.DocumentTypeDescription,
			DocmID:                  emptyToNil(r.DocmID),
			ImageID:                 emptyToNil(r.ImageID),
			IssueDate:               r.IssueDate,
			DispositionDescription:  r.DispositionDescription,
			PartID:                  emptyToNil(r.PartID),
		})
	}
	return documents
}

func emptyToNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
