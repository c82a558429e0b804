package mocks

import (
	"bytes"
	"context"
	"io"

	"github.com/openjudiciary/casedocs-core/internal/core/domain"
	"github.com/openjudiciary/casedocs-core/internal/core/ports/driven"
)

// Body wraps static bytes as the ReadCloser an upstream client returns.
func Body(b []byte) io.ReadCloser {
	return io.NopCloser(bytes.NewReader(b))
}

// MockCriminalFileClient is a configurable fake CriminalFileClient.
type MockCriminalFileClient struct {
	RecordOfProceedingFn func(ctx context.Context, auth domain.AuthContext, partID, profSeqNo string, level domain.CourtLevel, class domain.CourtClass) (io.ReadCloser, error)
	Calls                int
}

func (m *MockCriminalFileClient) RecordOfProceeding(ctx context.Context, auth domain.AuthContext, partID, profSeqNo string, level domain.CourtLevel, class domain.CourtClass) (io.ReadCloser, error) {
	m.Calls++
	return m.RecordOfProceedingFn(ctx, auth, partID, profSeqNo, level, class)
}

// MockCivilFileClient is a configurable fake CivilFileClient.
type MockCivilFileClient struct {
	CourtSummaryReportFn func(ctx context.Context, auth domain.AuthContext, appearanceID, reportName string) (io.ReadCloser, error)
	Calls                int
}

func (m *MockCivilFileClient) CourtSummaryReport(ctx context.Context, auth domain.AuthContext, appearanceID, reportName string) (io.ReadCloser, error) {
	m.Calls++
	return m.CourtSummaryReportFn(ctx, auth, appearanceID, reportName)
}

// MockFileClient is a configurable fake FileClient.
type MockFileClient struct {
	DocumentFn func(ctx context.Context, auth domain.AuthContext, documentID, fileID string, division domain.CourtDivision, correlationID string) (io.ReadCloser, error)
	Calls      int
}

func (m *MockFileClient) Document(ctx context.Context, auth domain.AuthContext, documentID, fileID string, division domain.CourtDivision, correlationID string) (io.ReadCloser, error) {
	m.Calls++
	return m.DocumentFn(ctx, auth, documentID, fileID, division, correlationID)
}

// MockTranscriptClient is a configurable fake TranscriptClient.
type MockTranscriptClient struct {
	AttachmentFn func(ctx context.Context, orderID, documentID string) (*driven.TranscriptAttachment, error)
	Calls        int
}

func (m *MockTranscriptClient) Attachment(ctx context.Context, orderID, documentID string) (*driven.TranscriptAttachment, error) {
	m.Calls++
	return m.AttachmentFn(ctx, orderID, documentID)
}

// MockSharedDriveClient is a configurable fake SharedDriveClient.
type MockSharedDriveClient struct {
	DownloadFn func(ctx context.Context, path string) (io.ReadCloser, error)
	Calls      int
}

func (m *MockSharedDriveClient) Download(ctx context.Context, path string) (io.ReadCloser, error) {
	m.Calls++
	return m.DownloadFn(ctx, path)
}

// MockReportClient is a configurable fake ReportClient.
type MockReportClient struct {
	CourtListReportFn func(ctx context.Context, req driven.CourtListReportRequest) (io.ReadCloser, error)
	Calls             int
}

func (m *MockReportClient) CourtListReport(ctx context.Context, req driven.CourtListReportRequest) (io.ReadCloser, error) {
	m.Calls++
	return m.CourtListReportFn(ctx, req)
}
