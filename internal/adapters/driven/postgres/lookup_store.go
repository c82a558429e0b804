package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/openjudiciary/casedocs-core/internal/core/domain"
	"github.com/openjudiciary/casedocs-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.CategoryLookup = (*LookupStore)(nil)

// LookupStore implements driven.CategoryLookup using PostgreSQL
type LookupStore struct {
	db *DB
}

// NewLookupStore creates a new LookupStore
func NewLookupStore(db *DB) *LookupStore {
	return &LookupStore{db: db}
}

// DocumentCategory resolves the category code for a (form id, classification) pair
func (s *LookupStore) DocumentCategory(ctx context.Context, formID, classification string) (string, error) {
	query := `
		SELECT category
		FROM document_categories
		WHERE form_id = $1 AND classification = $2
	`

	var category string
	err := s.db.QueryRowContext(ctx, query, formID, classification).Scan(&category)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: no category for form %s classification %s",
			domain.ErrNotFound, formID, classification)
	}
	if err != nil {
		return "", err
	}

	return category, nil
}

// UpsertCategory inserts or replaces a category mapping
func (s *LookupStore) UpsertCategory(ctx context.Context, formID, classification, category string) error {
	query := `
		INSERT INTO document_categories (form_id, classification, category, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (form_id, classification) DO UPDATE SET
			category = EXCLUDED.category,
			updated_at = EXCLUDED.updated_at
	`

	_, err := s.db.ExecContext(ctx, query, formID, classification, category)
	return err
}
