package driven

import "context"

// CategoryLookup resolves a document category for records whose upstream row
// carries no explicit category, keyed by form id and classification.
type CategoryLookup interface {
	// DocumentCategory returns the category code for a (form id,
	// classification) pair, or domain.ErrNotFound when no mapping exists.
	DocumentCategory(ctx context.Context, formID, classification string) (string, error)
}
