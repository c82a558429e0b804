package driving

import (
	"context"
	"io"

	"github.com/openjudiciary/casedocs-core/internal/core/domain"
)

// DocumentService resolves document requests against the registered retrieval
// strategies and merges ordered bundles into single PDFs.
type DocumentService interface {
	// Retrieve fetches a single document. The returned stream is fully
	// buffered in memory and positioned at its start; no merging happens
	// on this path.
	Retrieve(ctx context.Context, auth domain.AuthContext, req domain.DocumentRequest) (io.ReadSeeker, error)

	// Merge fetches every request in order and combines them into one PDF.
	// One failed request fails the whole merge; no partial output is ever
	// returned.
	Merge(ctx context.Context, auth domain.AuthContext, requests []domain.DocumentRequest) (*domain.MergeResult, error)
}
