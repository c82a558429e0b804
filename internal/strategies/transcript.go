package strategies

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/openjudiciary/casedocs-core/internal/core/domain"
	"github.com/openjudiciary/casedocs-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ Strategy = (*TranscriptStrategy)(nil)

// TranscriptStrategy fetches transcript attachments. The upstream response
// must be fully copied before it is released, and a nil or zero-length body
// is converted into an explicit failure rather than an empty file.
type TranscriptStrategy struct {
	client driven.TranscriptClient
	logger *slog.Logger
}

// NewTranscriptStrategy creates a transcript attachment strategy.
func NewTranscriptStrategy(client driven.TranscriptClient) *TranscriptStrategy {
	return &TranscriptStrategy{client: client, logger: slog.Default()}
}

func (s *TranscriptStrategy) Type() domain.DocumentType {
	return domain.DocumentTypeTranscript
}

func (s *TranscriptStrategy) Fetch(ctx context.Context, auth domain.AuthContext, data domain.DocumentData) (io.ReadSeeker, error) {
	attachment, err := s.client.Attachment(ctx, data.OrderID, data.DocumentID)
	if err != nil {
		return nil, fmt.Errorf("transcript attachment order %s document %s: %w", data.OrderID, data.DocumentID, err)
	}

	if attachment == nil || attachment.Body == nil {
		s.logger.Error("transcript attachment has no body",
			"order_id", data.OrderID,
			"document_id", data.DocumentID)
		return nil, fmt.Errorf("%w: transcript attachment order %s document %s returned no body",
			domain.ErrEmptyStream, data.OrderID, data.DocumentID)
	}
	defer attachment.Body.Close()

	var buf bytes.Buffer
	n, err := io.Copy(&buf, attachment.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: copying transcript attachment order %s document %s: %v",
			domain.ErrUpstreamFailure, data.OrderID, data.DocumentID, err)
	}

	if n == 0 {
		s.logger.Error("transcript attachment is empty",
			"order_id", data.OrderID,
			"document_id", data.DocumentID,
			"status", attachment.StatusCode,
			"content_type", attachment.ContentType,
			"content_length", attachment.ContentLength)
		return nil, fmt.Errorf("%w: transcript attachment order %s document %s has zero length",
			domain.ErrEmptyStream, data.OrderID, data.DocumentID)
	}

	return bytes.NewReader(buf.Bytes()), nil
}
