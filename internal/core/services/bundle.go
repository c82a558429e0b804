package services

import (
	"context"
	"fmt"

	"github.com/openjudiciary/casedocs-core/internal/core/domain"
	"github.com/openjudiciary/casedocs-core/internal/core/ports/driving"
)

// Ensure bundleService implements BundleService
var _ driving.BundleService = (*bundleService)(nil)

// bundleService merges grouped document sets and builds the viewer outline.
type bundleService struct {
	documents driving.DocumentService
}

// NewBundleService creates a new BundleService on top of the document merger.
func NewBundleService(documents driving.DocumentService) driving.BundleService {
	return &bundleService{documents: documents}
}

// Build merges the bundle's documents and groups the resulting page ranges
// into the outline tree. Outline leaf pages are the zero-based first pages of
// each document, taken straight from the merge's page-range index.
func (s *bundleService) Build(ctx context.Context, auth domain.AuthContext, req domain.BundleRequest) (*domain.BundleResult, error) {
	if len(req.Documents) == 0 {
		return nil, fmt.Errorf("%w: bundle requires at least one document", domain.ErrInvalidInput)
	}

	requests := make([]domain.DocumentRequest, len(req.Documents))
	for i, doc := range req.Documents {
		requests[i] = doc.Request
	}

	merged, err := s.documents.Merge(ctx, auth, requests)
	if err != nil {
		return nil, err
	}

	builder := outlineBuilderFor(req.CourtDivisionCd)
	return &domain.BundleResult{
		Base64PDF:  merged.Base64PDF,
		PageRanges: merged.PageRanges,
		Outline:    builder.build(req.Documents, merged.PageRanges),
	}, nil
}

// outlineBuilder groups merged page ranges into a nested outline. One builder
// per court division, mirroring how each division's viewer groups documents.
type outlineBuilder interface {
	build(docs []domain.BundleDocument, ranges []domain.PageRange) []domain.OutlineNode
}

func outlineBuilderFor(division string) outlineBuilder {
	if division == string(domain.CourtDivisionCriminal) {
		return criminalOutlineBuilder{}
	}
	return civilOutlineBuilder{}
}

// criminalOutlineBuilder groups by file number, then participant name.
type criminalOutlineBuilder struct{}

func (criminalOutlineBuilder) build(docs []domain.BundleDocument, ranges []domain.PageRange) []domain.OutlineNode {
	var files []domain.OutlineNode
	fileIdx := make(map[string]int)

	for i, doc := range docs {
		leaf := leafNode(doc, ranges[i])

		fi, ok := fileIdx[doc.FileNumber]
		if !ok {
			files = append(files, domain.OutlineNode{Title: doc.FileNumber, Page: leaf.Page})
			fi = len(files) - 1
			fileIdx[doc.FileNumber] = fi
		}

		file := &files[fi]
		pi := -1
		for j := range file.Children {
			if file.Children[j].Title == doc.ParticipantName {
				pi = j
				break
			}
		}
		if pi == -1 {
			file.Children = append(file.Children, domain.OutlineNode{
				Title: doc.ParticipantName,
				Page:  leaf.Page,
			})
			pi = len(file.Children) - 1
		}
		file.Children[pi].Children = append(file.Children[pi].Children, leaf)
	}

	return files
}

// civilOutlineBuilder groups by file number only.
type civilOutlineBuilder struct{}

func (civilOutlineBuilder) build(docs []domain.BundleDocument, ranges []domain.PageRange) []domain.OutlineNode {
	var files []domain.OutlineNode
	fileIdx := make(map[string]int)

	for i, doc := range docs {
		leaf := leafNode(doc, ranges[i])

		fi, ok := fileIdx[doc.FileNumber]
		if !ok {
			files = append(files, domain.OutlineNode{Title: doc.FileNumber, Page: leaf.Page})
			fi = len(files) - 1
			fileIdx[doc.FileNumber] = fi
		}
		files[fi].Children = append(files[fi].Children, leaf)
	}

	return files
}

func leafNode(doc domain.BundleDocument, r domain.PageRange) domain.OutlineNode {
	title := doc.Title
	if title == "" {
		title = doc.Request.Type
	}
	return domain.OutlineNode{Title: title, Page: r.Start}
}
