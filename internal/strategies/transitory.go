package strategies

import (
	"context"
	"fmt"
	"io"

	"github.com/openjudiciary/casedocs-core/internal/core/domain"
	"github.com/openjudiciary/casedocs-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ Strategy = (*TransitoryDocumentStrategy)(nil)

// TransitoryDocumentStrategy fetches documents from the shared network drive
// by caller-supplied relative path.
type TransitoryDocumentStrategy struct {
	client driven.SharedDriveClient
}

// NewTransitoryDocumentStrategy creates a shared-drive document strategy.
func NewTransitoryDocumentStrategy(client driven.SharedDriveClient) *TransitoryDocumentStrategy {
	return &TransitoryDocumentStrategy{client: client}
}

func (s *TransitoryDocumentStrategy) Type() domain.DocumentType {
	return domain.DocumentTypeTransitoryDocument
}

// Fetch copies the drive file into a fresh in-memory stream positioned at
// zero before returning it.
func (s *TransitoryDocumentStrategy) Fetch(ctx context.Context, auth domain.AuthContext, data domain.DocumentData) (io.ReadSeeker, error) {
	if data.Path == "" {
		return nil, fmt.Errorf("%w: transitory document path is required", domain.ErrInvalidInput)
	}

	body, err := s.client.Download(ctx, data.Path)
	if err != nil {
		return nil, fmt.Errorf("transitory document %s: %w", data.Path, err)
	}

	return buffer(body)
}
