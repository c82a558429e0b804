// Package dars talks to the court transcripts service.
package dars

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/openjudiciary/casedocs-core/internal/core/domain"
	"github.com/openjudiciary/casedocs-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.TranscriptClient = (*Client)(nil)

// Config holds connection settings for the transcripts service.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client provides transcript attachment operations.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient creates a new transcripts service client.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
	}
}

// Attachment fetches one transcript attachment. The response carries the
// upstream status and content headers so the caller can log them when the
// body turns out to be unusable.
func (c *Client) Attachment(ctx context.Context, orderID, documentID string) (*driven.TranscriptAttachment, error) {
	q := url.Values{}
	q.Set("orderId", orderID)
	q.Set("documentId", documentID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/transcripts/attachment?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamFailure, err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: transcript attachment order %s returned status %d",
			domain.ErrUpstreamFailure, orderID, resp.StatusCode)
	}

	return &driven.TranscriptAttachment{
		Body:          resp.Body,
		StatusCode:    resp.StatusCode,
		ContentType:   resp.Header.Get("Content-Type"),
		ContentLength: resp.ContentLength,
	}, nil
}
