// Package strategies implements one document-retrieval strategy per document
// type and the registry that dispatches requests to them.
package strategies

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/openjudiciary/casedocs-core/internal/core/domain"
	"github.com/openjudiciary/casedocs-core/internal/core/ports/driven"
)

// Strategy fetches one kind of document from its upstream source and
// normalizes the result into an owned, rewound in-memory stream.
type Strategy interface {
	// Type is the document type tag this strategy handles.
	Type() domain.DocumentType

	// Fetch retrieves the document. It never returns a stream still bound
	// to a live upstream response, and never a closed or unreadable one.
	Fetch(ctx context.Context, auth domain.AuthContext, data domain.DocumentData) (io.ReadSeeker, error)
}

// Registry is a pure dispatch table from document type to strategy.
// No retries, no caching; strategy failures propagate unchanged.
type Registry struct {
	strategies map[domain.DocumentType]Strategy
}

// NewRegistry builds a registry over a fixed strategy set. Registering two
// strategies for the same type is a wiring bug and panics at startup.
func NewRegistry(strategies ...Strategy) *Registry {
	r := &Registry{strategies: make(map[domain.DocumentType]Strategy, len(strategies))}
	for _, s := range strategies {
		if _, dup := r.strategies[s.Type()]; dup {
			panic(fmt.Sprintf("strategies: duplicate strategy for type %s", s.Type()))
		}
		r.strategies[s.Type()] = s
	}
	return r
}

// Retrieve parses the request's type tag, dispatches to the matching strategy
// and returns its stream unchanged. An unparseable tag fails with
// ErrInvalidDocumentType before any upstream call; a recognized tag with no
// registered strategy fails with ErrUnsupportedDocumentType, never a default.
func (r *Registry) Retrieve(ctx context.Context, auth domain.AuthContext, req domain.DocumentRequest) (io.ReadSeeker, error) {
	docType, err := domain.ParseDocumentType(req.Type)
	if err != nil {
		return nil, err
	}

	strategy, ok := r.strategies[docType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedDocumentType, docType)
	}

	return strategy.Fetch(ctx, auth, req.Data)
}

// DefaultRegistry wires every strategy against the given upstream clients.
func DefaultRegistry(
	criminal driven.CriminalFileClient,
	civil driven.CivilFileClient,
	files driven.FileClient,
	transcripts driven.TranscriptClient,
	sharedDrive driven.SharedDriveClient,
	reports driven.ReportClient,
) *Registry {
	return NewRegistry(
		NewROPStrategy(criminal),
		NewCourtSummaryStrategy(civil),
		NewFileStrategy(files),
		NewReportStrategy(reports),
		NewTranscriptStrategy(transcripts),
		NewTransitoryDocumentStrategy(sharedDrive),
	)
}

// buffer copies an upstream body into an owned in-memory stream, releases the
// body, and rewinds. A zero-length body is a hard error, never an empty
// document.
func buffer(body io.ReadCloser) (io.ReadSeeker, error) {
	defer body.Close()

	var buf bytes.Buffer
	n, err := io.Copy(&buf, body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading upstream body: %v", domain.ErrUpstreamFailure, err)
	}
	if n == 0 {
		return nil, domain.ErrEmptyStream
	}

	return bytes.NewReader(buf.Bytes()), nil
}
