package strategies

import (
	"context"
	"fmt"
	"io"

	"github.com/openjudiciary/casedocs-core/internal/core/domain"
	"github.com/openjudiciary/casedocs-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ Strategy = (*ReportStrategy)(nil)

// ReportStrategy generates court-list reports on demand. The generator
// already produces a PDF stream, so there is nothing to unwrap.
type ReportStrategy struct {
	client driven.ReportClient
}

// NewReportStrategy creates a court-list report strategy.
func NewReportStrategy(client driven.ReportClient) *ReportStrategy {
	return &ReportStrategy{client: client}
}

func (s *ReportStrategy) Type() domain.DocumentType {
	return domain.DocumentTypeReport
}

func (s *ReportStrategy) Fetch(ctx context.Context, auth domain.AuthContext, data domain.DocumentData) (io.ReadSeeker, error) {
	body, err := s.client.CourtListReport(ctx, driven.CourtListReportRequest{
		CourtDivisionCd: data.CourtDivisionCd,
		Date:            data.Date,
		LocationID:      data.LocationID,
		RoomCode:        data.RoomCode,
		Additions:       data.Additions,
		ReportType:      data.ReportType,
	})
	if err != nil {
		return nil, fmt.Errorf("court list report for location %s room %s: %w", data.LocationID, data.RoomCode, err)
	}

	return buffer(body)
}
