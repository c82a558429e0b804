package dars

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/openjudiciary/casedocs-core/internal/core/domain"
)

func TestAttachment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/transcripts/attachment" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("orderId"); got != "ord-1" {
			t.Errorf("expected orderId ord-1, got %q", got)
		}
		if got := r.URL.Query().Get("documentId"); got != "doc-1" {
			t.Errorf("expected documentId doc-1, got %q", got)
		}
		if got := r.Header.Get("X-Api-Key"); got != "key-123" {
			t.Errorf("expected api key header, got %q", got)
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("%PDF-1.4 body"))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, APIKey: "key-123"})

	att, err := c.Attachment(context.Background(), "ord-1", "doc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer att.Body.Close()

	if att.StatusCode != http.StatusOK {
		t.Errorf("expected status 200, got %d", att.StatusCode)
	}
	if att.ContentType != "application/pdf" {
		t.Errorf("expected pdf content type, got %q", att.ContentType)
	}

	body, err := io.ReadAll(att.Body)
	if err != nil {
		t.Fatal(err)
	}
	if string(body) != "%PDF-1.4 body" {
		t.Errorf("unexpected body %q", body)
	}
}

func TestAttachmentUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, APIKey: "key-123"})

	_, err := c.Attachment(context.Background(), "ord-1", "doc-1")
	if !errors.Is(err, domain.ErrUpstreamFailure) {
		t.Errorf("expected ErrUpstreamFailure, got %v", err)
	}
}
