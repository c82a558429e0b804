package driven

import (
	"context"
	"io"
)

// TranscriptAttachment is one attachment response from the transcripts
// service. Body may be nil when the upstream returned no content; callers
// must treat that as a failure, not an empty document.
type TranscriptAttachment struct {
	Body          io.ReadCloser
	StatusCode    int
	ContentType   string
	ContentLength int64
}

// TranscriptClient talks to the court transcripts service.
type TranscriptClient interface {
	// Attachment fetches one transcript attachment by order and document id.
	Attachment(ctx context.Context, orderID, documentID string) (*TranscriptAttachment, error)
}
