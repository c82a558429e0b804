// Package ceis talks to the civil court file service, which also serves
// generic stored-document retrieval for both divisions.
package ceis

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
var (
	_ driven.CivilFileClient = (*Client)(nil)
	_ driven.FileClient      = (*Client)(nil)
)

// Config holds connection settings for the civil file service.
type Config struct {
	BaseURL  string
	Username string
	Password string

	// Timeout covers one document fetch; bulk file retrieval needs a long
	// ceiling compared to metadata lookups.
	Timeout time.Duration
}

// Client provides civil file and stored-document operations.
type Client struct {
	httpClient *http.Client
	baseURL    string
	username   string
	password   string
}

// NewClient creates a new civil file service client.
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

// CourtSummaryReport fetches the court summary report for one appearance.
func (c *Client) CourtSummaryReport(
	ctx context.Context,
	auth domain.AuthContext,
	appearanceID string,
	reportName string,
) (io.ReadCloser, error) {
	q := url.Values{}
	q.Set("appearanceId", appearanceID)
	q.Set("reportName", reportName)

	resp, err := c.doRequest(ctx, auth, "/files/civil/court-summary-report?"+q.Encode())
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: court summary report returned status %d", domain.ErrUpstreamFailure, resp.StatusCode)
	}
	return resp.Body, nil
}

// Document fetches one stored document by its decoded upstream identifier.
func (c *Client) Document(
	ctx context.Context,
	auth domain.AuthContext,
	documentID string,
	fileID string,
	division domain.CourtDivision,
	correlationID string,
) (io.ReadCloser, error) {
	q := url.Values{}
	q.Set("documentId", documentID)
	q.Set("fileId", fileID)
	q.Set("courtDivisionCd", string(division))
	q.Set("correlationId", correlationID)

	resp, err := c.doRequest(ctx, auth, "/files/document?"+q.Encode())
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: document %s returned status %d", domain.ErrUpstreamFailure, documentID, resp.StatusCode)
	}
	return resp.Body, nil
}

func (c *Client) doRequest(ctx context.Context, auth domain.AuthContext, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("applicationCd", auth.ApplicationCode)
	req.Header.Set("requestAgencyIdentifierId", auth.AgencyCode)
	req.Header.Set("requestPartId", auth.ParticipantID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamFailure, err)
	}
	return resp, nil
}
