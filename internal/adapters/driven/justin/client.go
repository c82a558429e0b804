// Package justin talks to the criminal court file service.
package justin

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
var _ driven.CriminalFileClient = (*Client)(nil)

// Config holds connection settings for the criminal file service.
type Config struct {
	BaseURL string
	Username string
	Password string

	// Timeout covers one document fetch. Record-of-proceedings responses
	// can be large, so this defaults well above a lookup timeout.
	Timeout time.Duration
}

// Client provides criminal file service operations.
type Client struct {
	httpClient *http.Client
	baseURL    string
	username   string
	password   string
}

// NewClient creates a new criminal file service client.
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

// RecordOfProceeding fetches the ROP document for one participant.
func (c *Client) RecordOfProceeding(
	ctx context.Context,
	auth domain.AuthContext,
	partID string,
	profSeqNo string,
	courtLevel domain.CourtLevel,
	courtClass domain.CourtClass,
) (io.ReadCloser, error) {
	q := url.Values{}
	q.Set("partId", partID)
	q.Set("profSeqNo", profSeqNo)
	q.Set("courtLevelCd", string(courtLevel))
	q.Set("courtClassCd", string(courtClass))

	path := "/files/criminal/record-of-proceedings?" + q.Encode()
	resp, err := c.doRequest(ctx, auth, path)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: record of proceedings returned status %d", domain.ErrUpstreamFailure, resp.StatusCode)
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
