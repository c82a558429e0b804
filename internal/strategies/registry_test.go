package strategies

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/openjudiciary/casedocs-core/internal/core/domain"
)

// stubStrategy returns a fixed stream and records invocations.
type stubStrategy struct {
	docType domain.DocumentType
	stream  io.ReadSeeker
	err     error
	calls   int
}

func (s *stubStrategy) Type() domain.DocumentType {
	return s.docType
}

func (s *stubStrategy) Fetch(ctx context.Context, auth domain.AuthContext, data domain.DocumentData) (io.ReadSeeker, error) {
	s.calls++
	return s.stream, s.err
}

func TestRegistry_Retrieve(t *testing.T) {
	want := bytes.NewReader([]byte("%PDF-stub"))
	rop := &stubStrategy{docType: domain.DocumentTypeROP, stream: want}
	transcript := &stubStrategy{docType: domain.DocumentTypeTranscript, stream: bytes.NewReader([]byte("other"))}
	r := NewRegistry(rop, transcript)

	got, err := r.Retrieve(context.Background(), domain.AuthContext{}, domain.DocumentRequest{Type: "rop"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Error("expected the strategy's stream returned unmodified")
	}
	if rop.calls != 1 {
		t.Errorf("expected exactly one invocation, got %d", rop.calls)
	}
	if transcript.calls != 0 {
		t.Errorf("expected no invocation of other strategies, got %d", transcript.calls)
	}
}

func TestRegistry_Retrieve_InvalidType(t *testing.T) {
	r := NewRegistry(&stubStrategy{docType: domain.DocumentTypeROP})

	_, err := r.Retrieve(context.Background(), domain.AuthContext{}, domain.DocumentRequest{Type: "subpoena"})
	if !errors.Is(err, domain.ErrInvalidDocumentType) {
		t.Errorf("expected ErrInvalidDocumentType, got %v", err)
	}
}

func TestRegistry_Retrieve_Unregistered(t *testing.T) {
	// Transcript is a valid tag but has no strategy here; the registry must
	// fail rather than fall back to a default.
	r := NewRegistry(&stubStrategy{docType: domain.DocumentTypeROP})

	_, err := r.Retrieve(context.Background(), domain.AuthContext{}, domain.DocumentRequest{Type: "Transcript"})
	if !errors.Is(err, domain.ErrUnsupportedDocumentType) {
		t.Errorf("expected ErrUnsupportedDocumentType, got %v", err)
	}
}

func TestRegistry_Retrieve_StrategyErrorPropagates(t *testing.T) {
	upstreamErr := errors.New("connection refused")
	r := NewRegistry(&stubStrategy{docType: domain.DocumentTypeFile, err: upstreamErr})

	_, err := r.Retrieve(context.Background(), domain.AuthContext{}, domain.DocumentRequest{Type: "File"})
	if !errors.Is(err, upstreamErr) {
		t.Errorf("expected the strategy error unchanged, got %v", err)
	}
}

func TestNewRegistry_DuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate strategy registration")
		}
	}()
	NewRegistry(
		&stubStrategy{docType: domain.DocumentTypeROP},
		&stubStrategy{docType: domain.DocumentTypeROP},
	)
}

func TestBuffer_EmptyBody(t *testing.T) {
	_, err := buffer(io.NopCloser(bytes.NewReader(nil)))
	if !errors.Is(err, domain.ErrEmptyStream) {
		t.Errorf("expected ErrEmptyStream, got %v", err)
	}
}
