package driving

import (
	"context"

	"github.com/openjudiciary/casedocs-core/internal/core/domain"
)

// RecordsService normalizes criminal file document lists and derives the
// key-document subset.
type RecordsService interface {
	// CriminalDocuments maps an accused file's raw document rows into
	// normalized documents and prepends the synthetic record-of-proceedings
	// entry when the file has appearances.
	CriminalDocuments(ctx context.Context, file domain.AccusedFile) ([]domain.CriminalDocument, error)

	// CriminalKeyDocuments selects the key-document subset: the most recent
	// report, the fixed key categories, and the most recent non-cancelled
	// bail document. Output order is a display contract.
	CriminalKeyDocuments(documents []domain.CriminalDocument) []domain.CriminalDocument
}
