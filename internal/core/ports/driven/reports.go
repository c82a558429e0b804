package driven

import (
	"context"
	"io"
)

// CourtListReportRequest describes one court-list report to generate.
type CourtListReportRequest struct {
	CourtDivisionCd string
	Date            string
	LocationID      string
	RoomCode        string
	Additions       []string
	ReportType      string
}

// ReportClient talks to the court-list report generation service.
type ReportClient interface {
	// CourtListReport renders a court-list report and returns its PDF stream.
	CourtListReport(ctx context.Context, req CourtListReportRequest) (io.ReadCloser, error)
}
