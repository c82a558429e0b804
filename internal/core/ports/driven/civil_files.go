package driven

import (
	"context"
	"io"

	"github.com/openjudiciary/casedocs-core/internal/core/domain"
)

// CivilFileClient talks to the civil court file service.
type CivilFileClient interface {
	// CourtSummaryReport fetches the court summary report generated for one
	// appearance. reportName selects the upstream report template.
	CourtSummaryReport(
		ctx context.Context,
		auth domain.AuthContext,
		appearanceID string,
		reportName string,
	) (io.ReadCloser, error)
}
