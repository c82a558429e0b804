package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/openjudiciary/casedocs-core/internal/core/domain"
	"github.com/openjudiciary/casedocs-core/internal/core/ports/driving"
	"github.com/openjudiciary/casedocs-core/internal/pdf"
	"github.com/openjudiciary/casedocs-core/internal/strategies"
)

// defaultFetchLimit bounds concurrent upstream fetches during a merge.
const defaultFetchLimit = 4

// Ensure documentService implements DocumentService
var _ driving.DocumentService = (*documentService)(nil)

// documentService dispatches single retrievals through the strategy registry
// and merges ordered bundles into one PDF with a page-range index.
type documentService struct {
	registry   *strategies.Registry
	fetchLimit int
	logger     *slog.Logger
}

// DocumentServiceConfig holds dependencies for the document service.
type DocumentServiceConfig struct {
	Registry *strategies.Registry
	// FetchLimit caps concurrent upstream fetches per merge; zero means the
	// default.
	FetchLimit int
	Logger     *slog.Logger
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(cfg DocumentServiceConfig) driving.DocumentService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	limit := cfg.FetchLimit
	if limit <= 0 {
		limit = defaultFetchLimit
	}
	return &documentService{
		registry:   cfg.Registry,
		fetchLimit: limit,
		logger:     logger,
	}
}

// Retrieve fetches one document through its strategy. This is the direct,
// non-merging path; the stream comes back exactly as the strategy produced it.
func (s *documentService) Retrieve(ctx context.Context, auth domain.AuthContext, req domain.DocumentRequest) (io.ReadSeeker, error) {
	return s.registry.Retrieve(ctx, auth, req)
}

// Merge fetches every request in input order, combines the streams into one
// PDF and computes the cumulative page-range index. Fetches fan out with
// bounded concurrency; the first failure cancels the rest and fails the whole
// merge with no partial output.
func (s *documentService) Merge(ctx context.Context, auth domain.AuthContext, requests []domain.DocumentRequest) (*domain.MergeResult, error) {
	if len(requests) == 0 {
		return nil, fmt.Errorf("%w: merge requires at least one document request", domain.ErrInvalidInput)
	}

	// Results are keyed by input index so completion order cannot reorder
	// the output.
	streams := make([]io.ReadSeeker, len(requests))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.fetchLimit)
	for i, req := range requests {
		i, req := i, req
		g.Go(func() error {
			stream, err := s.registry.Retrieve(gctx, auth, req)
			if err != nil {
				return fmt.Errorf("document %d (%s): %w", i, req.Type, err)
			}
			streams[i] = stream
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Each input's page count is determined independently of the combine so
	// a combiner that drops or duplicates pages cannot go unnoticed.
	counts := make([]int, len(streams))
	for i, rs := range streams {
		count, err := pdf.PageCount(rs)
		if err != nil {
			return nil, fmt.Errorf("document %d (%s): %w", i, requests[i].Type, err)
		}
		counts[i] = count
	}

	var merged bytes.Buffer
	if err := pdf.Combine(streams, &merged); err != nil {
		return nil, err
	}

	total, err := pdf.PageCountBytes(merged.Bytes())
	if err != nil {
		return nil, fmt.Errorf("merged output: %w", err)
	}

	sum := 0
	for _, c := range counts {
		sum += c
	}
	if sum != total {
		s.logger.Error("merged page count does not match inputs",
			"expected", sum, "actual", total, "documents", len(requests))
		return nil, fmt.Errorf("%w: inputs total %d pages, merged output has %d",
			domain.ErrPageCountMismatch, sum, total)
	}

	ranges := make([]domain.PageRange, len(counts))
	start := 0
	for i, count := range counts {
		ranges[i] = domain.PageRange{Start: start, End: start + count}
		start += count
	}

	return &domain.MergeResult{
		Base64PDF:  base64.StdEncoding.EncodeToString(merged.Bytes()),
		PageRanges: ranges,
	}, nil
}
