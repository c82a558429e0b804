package strategies

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/openjudiciary/casedocs-core/internal/core/domain"
	"github.com/openjudiciary/casedocs-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ Strategy = (*FileStrategy)(nil)

// FileStrategy fetches stored documents from the generic file service,
// for both criminal and civil divisions.
type FileStrategy struct {
	client driven.FileClient
}

// NewFileStrategy creates a generic file-retrieval strategy.
func NewFileStrategy(client driven.FileClient) *FileStrategy {
	return &FileStrategy{client: client}
}

func (s *FileStrategy) Type() domain.DocumentType {
	return domain.DocumentTypeFile
}

// Fetch decodes the wire document id before calling upstream and generates a
// correlation id when the caller did not supply one.
func (s *FileStrategy) Fetch(ctx context.Context, auth domain.AuthContext, data domain.DocumentData) (io.ReadSeeker, error) {
	documentID, err := domain.DecodeDocumentID(data.DocumentID)
	if err != nil {
		return nil, err
	}

	correlationID := data.CorrelationID
	if correlationID == "" {
		correlationID = newCorrelationID()
	}

	division := domain.CourtDivisionCivil
	if data.IsCriminal {
		division = domain.CourtDivisionCriminal
	}

	body, err := s.client.Document(ctx, auth, documentID, data.FileID, division, correlationID)
	if err != nil {
		return nil, fmt.Errorf("document %s on file %s: %w", data.DocumentID, data.FileID, err)
	}

	return buffer(body)
}

// newCorrelationID generates an opaque id for tying a retrieval to upstream
// logs.
func newCorrelationID() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "unknown"
	}
	return hex.EncodeToString(b[:])
}
