package driven

import (
	"context"
	"io"

	"github.com/openjudiciary/casedocs-core/internal/core/domain"
)

// FileClient retrieves stored documents from the generic court file service.
type FileClient interface {
	// Document fetches one document by its decoded upstream identifier.
	// correlationID ties the request to upstream logs and must not be empty.
	Document(
		ctx context.Context,
		auth domain.AuthContext,
		documentID string,
		fileID string,
		division domain.CourtDivision,
		correlationID string,
	) (io.ReadCloser, error)
}
