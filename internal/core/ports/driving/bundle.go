package driving

import (
	"context"

	"github.com/openjudiciary/casedocs-core/internal/core/domain"
)

// BundleService merges a grouped document set and builds the outline tree
// the PDF viewer navigates by.
type BundleService interface {
	// Build merges the bundle's documents in order and groups their page
	// ranges into a nested outline keyed by file number and participant.
	Build(ctx context.Context, auth domain.AuthContext, req domain.BundleRequest) (*domain.BundleResult, error)
}
