package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openjudiciary/casedocs-core/internal/core/domain"
	"github.com/openjudiciary/casedocs-core/internal/pdf/pdftest"
	"github.com/openjudiciary/casedocs-core/internal/strategies"
)

// pdfStrategy serves fixed PDF bytes for one document type.
type pdfStrategy struct {
	docType domain.DocumentType
	pdfs    map[string][]byte // keyed by DocumentData.DocumentID
	err     error
}

func (s *pdfStrategy) Type() domain.DocumentType {
	return s.docType
}

func (s *pdfStrategy) Fetch(ctx context.Context, auth domain.AuthContext, data domain.DocumentData) (io.ReadSeeker, error) {
	if s.err != nil {
		return nil, s.err
	}
	return bytes.NewReader(s.pdfs[data.DocumentID]), nil
}

func newTestDocumentService(ss ...strategies.Strategy) *documentService {
	svc := NewDocumentService(DocumentServiceConfig{Registry: strategies.NewRegistry(ss...)})
	return svc.(*documentService)
}

func TestDocumentService_Merge_PageRanges(t *testing.T) {
	svc := newTestDocumentService(&pdfStrategy{
		docType: domain.DocumentTypeFile,
		pdfs: map[string][]byte{
			"a": pdftest.MakePDF(2),
			"b": pdftest.MakePDF(3),
			"c": pdftest.MakePDF(1),
		},
	})

	requests := []domain.DocumentRequest{
		{Type: "File", Data: domain.DocumentData{DocumentID: "a"}},
		{Type: "File", Data: domain.DocumentData{DocumentID: "b"}},
		{Type: "File", Data: domain.DocumentData{DocumentID: "c"}},
	}

	result, err := svc.Merge(context.Background(), domain.AuthContext{}, requests)
	require.NoError(t, err)

	require.Len(t, result.PageRanges, len(requests))
	assert.Equal(t, domain.PageRange{Start: 0, End: 2}, result.PageRanges[0])
	assert.Equal(t, domain.PageRange{Start: 2, End: 5}, result.PageRanges[1])
	assert.Equal(t, domain.PageRange{Start: 5, End: 6}, result.PageRanges[2])

	// Ranges are contiguous and cover the merged document exactly.
	for i := 0; i < len(result.PageRanges)-1; i++ {
		assert.Equal(t, result.PageRanges[i].End, result.PageRanges[i+1].Start)
	}

	pdfBytes, err := base64.StdEncoding.DecodeString(result.Base64PDF)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdfBytes, []byte("%PDF")))
}

func TestDocumentService_Merge_SingleDocument(t *testing.T) {
	// A one-element list still runs the full merge path.
	svc := newTestDocumentService(&pdfStrategy{
		docType: domain.DocumentTypeFile,
		pdfs:    map[string][]byte{"a": pdftest.MakePDF(4)},
	})

	result, err := svc.Merge(context.Background(), domain.AuthContext{},
		[]domain.DocumentRequest{{Type: "File", Data: domain.DocumentData{DocumentID: "a"}}})
	require.NoError(t, err)
	require.Len(t, result.PageRanges, 1)
	assert.Equal(t, domain.PageRange{Start: 0, End: 4}, result.PageRanges[0])
}

func TestDocumentService_Merge_UnreadableInputFails(t *testing.T) {
	// Even a single unreadable document is an explicit merge failure, never
	// a truncated or empty PDF.
	svc := newTestDocumentService(&pdfStrategy{
		docType: domain.DocumentTypeFile,
		pdfs:    map[string][]byte{"a": []byte("not a pdf")},
	})

	_, err := svc.Merge(context.Background(), domain.AuthContext{},
		[]domain.DocumentRequest{{Type: "File", Data: domain.DocumentData{DocumentID: "a"}}})
	assert.ErrorIs(t, err, domain.ErrMergeFailed)
}

func TestDocumentService_Merge_FetchFailureAbortsAll(t *testing.T) {
	upstream := errors.New("service unavailable")
	svc := newTestDocumentService(
		&pdfStrategy{
			docType: domain.DocumentTypeFile,
			pdfs:    map[string][]byte{"a": pdftest.MakePDF(2)},
		},
		&pdfStrategy{docType: domain.DocumentTypeTranscript, err: upstream},
	)

	result, err := svc.Merge(context.Background(), domain.AuthContext{}, []domain.DocumentRequest{
		{Type: "File", Data: domain.DocumentData{DocumentID: "a"}},
		{Type: "Transcript"},
	})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, upstream)
}

func TestDocumentService_Merge_EmptyRequestList(t *testing.T) {
	svc := newTestDocumentService()

	_, err := svc.Merge(context.Background(), domain.AuthContext{}, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDocumentService_Merge_InvalidTypeBeforeUpstream(t *testing.T) {
	svc := newTestDocumentService()

	_, err := svc.Merge(context.Background(), domain.AuthContext{},
		[]domain.DocumentRequest{{Type: "warrant"}})
	assert.ErrorIs(t, err, domain.ErrInvalidDocumentType)
}

func TestDocumentService_Retrieve_DirectPath(t *testing.T) {
	content := pdftest.MakePDF(1)
	svc := newTestDocumentService(&pdfStrategy{
		docType: domain.DocumentTypeFile,
		pdfs:    map[string][]byte{"a": content},
	})

	stream, err := svc.Retrieve(context.Background(), domain.AuthContext{},
		domain.DocumentRequest{Type: "File", Data: domain.DocumentData{DocumentID: "a"}})
	require.NoError(t, err)

	got, err := io.ReadAll(stream)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestDocumentService_Merge_ManyDocumentsKeepOrder(t *testing.T) {
	// With concurrency in play the page ranges must still follow request
	// order, not completion order.
	pdfs := make(map[string][]byte)
	requests := make([]domain.DocumentRequest, 9)
	for i := 0; i < 9; i++ {
		id := string(rune('a' + i))
		pdfs[id] = pdftest.MakePDF(i%3 + 1)
		requests[i] = domain.DocumentRequest{Type: "File", Data: domain.DocumentData{DocumentID: id}}
	}
	svc := newTestDocumentService(&pdfStrategy{docType: domain.DocumentTypeFile, pdfs: pdfs})

	result, err := svc.Merge(context.Background(), domain.AuthContext{}, requests)
	require.NoError(t, err)
	require.Len(t, result.PageRanges, 9)

	assert.Equal(t, 0, result.PageRanges[0].Start)
	for i, r := range result.PageRanges {
		assert.Equal(t, i%3+1, r.PageCount(), "range %d", i)
		if i > 0 {
			assert.Equal(t, result.PageRanges[i-1].End, r.Start)
		}
	}
}
