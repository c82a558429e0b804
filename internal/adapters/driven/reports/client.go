// Package reports talks to the report generator service.
package reports

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/openjudiciary/casedocs-core/internal/core/domain"
	"github.com/openjudiciary/casedocs-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.ReportClient = (*Client)(nil)

// Config holds connection settings for the report generator.
type Config struct {
	BaseURL  string
	Username string
	Password string
	Timeout  time.Duration
}

// Client provides report generation operations.
type Client struct {
	httpClient *http.Client
	baseURL    string
	username   string
	password   string
}

// NewClient creates a new report generator client.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		username:   cfg.Username,
		password:   cfg.Password,
	}
}

// CourtListReport renders a court list report as a PDF stream.
func (c *Client) CourtListReport(ctx context.Context, r driven.CourtListReportRequest) (io.ReadCloser, error) {
	q := url.Values{}
	q.Set("reportType", r.ReportType)
	q.Set("courtDivisionCd", r.CourtDivisionCd)
	q.Set("date", r.Date)
	q.Set("locationId", r.LocationID)
	if r.RoomCode != "" {
		q.Set("roomCode", r.RoomCode)
	}
	for _, a := range r.Additions {
		q.Add("additions", a)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/reports/court-list?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Accept", "application/pdf")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamFailure, err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: court list report %s returned status %d",
			domain.ErrUpstreamFailure, r.ReportType, resp.StatusCode)
	}

	return resp.Body, nil
}
