package strategies

import (
	"context"
	"fmt"
	"io"

	"github.com/openjudiciary/casedocs-core/internal/core/domain"
	"github.com/openjudiciary/casedocs-core/internal/core/ports/driven"
)

// courtSummaryReportName is the upstream report template for civil court
// summary reports.
const courtSummaryReportName = "CEISR035"

// Verify interface compliance
var _ Strategy = (*CourtSummaryStrategy)(nil)

// CourtSummaryStrategy fetches civil court summary reports by appearance.
type CourtSummaryStrategy struct {
	client driven.CivilFileClient
}

// NewCourtSummaryStrategy creates a court-summary-report strategy.
func NewCourtSummaryStrategy(client driven.CivilFileClient) *CourtSummaryStrategy {
	return &CourtSummaryStrategy{client: client}
}

func (s *CourtSummaryStrategy) Type() domain.DocumentType {
	return domain.DocumentTypeCourtSummary
}

func (s *CourtSummaryStrategy) Fetch(ctx context.Context, auth domain.AuthContext, data domain.DocumentData) (io.ReadSeeker, error) {
	body, err := s.client.CourtSummaryReport(ctx, auth, data.AppearanceID, courtSummaryReportName)
	if err != nil {
		return nil, fmt.Errorf("court summary report for appearance %s: %w", data.AppearanceID, err)
	}

	return buffer(body)
}
