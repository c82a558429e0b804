package driven

import (
	"context"
	"io"

	"github.com/openjudiciary/casedocs-core/internal/core/domain"
)

// CriminalFileClient talks to the criminal court file service.
type CriminalFileClient interface {
	// RecordOfProceeding fetches the record-of-proceedings document for one
	// participant on a file. The returned body is owned by the caller.
	RecordOfProceeding(
		ctx context.Context,
		auth domain.AuthContext,
		partID string,
		profSeqNo string,
		courtLevel domain.CourtLevel,
		courtClass domain.CourtClass,
	) (io.ReadCloser, error)
}
