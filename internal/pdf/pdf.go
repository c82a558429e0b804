// Package pdf wraps the pdfcpu operations the document merger needs:
// combining streams into one document and counting pages.
package pdf

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/openjudiciary/casedocs-core/internal/core/domain"
)

func configuration() *model.Configuration {
	cfg := model.NewDefaultConfiguration()
	cfg.ValidationMode = model.ValidationRelaxed
	return cfg
}

// Combine concatenates the given PDF streams, in order, into a single PDF
// written to w. All pages are preserved; a combine failure surfaces as
// domain.ErrMergeFailed with the underlying cause attached.
func Combine(streams []io.ReadSeeker, w io.Writer) error {
	if len(streams) == 0 {
		return fmt.Errorf("%w: no input streams", domain.ErrMergeFailed)
	}

	for i, rs := range streams {
		if _, err := rs.Seek(0, io.SeekStart); err != nil {
			return fmt.Errorf("%w: rewinding input %d: %v", domain.ErrMergeFailed, i, err)
		}
	}

	if err := api.MergeRaw(streams, w, false, configuration()); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMergeFailed, err)
	}
	return nil
}

// PageCount parses rs as a PDF and returns its page count. The stream is
// rewound before and after so callers can reuse it.
func PageCount(rs io.ReadSeeker) (int, error) {
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return 0, fmt.Errorf("rewinding stream: %w", err)
	}

	count, err := api.PageCount(rs, configuration())
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrMergeFailed, err)
	}

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return 0, fmt.Errorf("rewinding stream: %w", err)
	}
	return count, nil
}

// PageCountBytes counts pages of an in-memory PDF.
func PageCountBytes(b []byte) (int, error) {
	return PageCount(bytes.NewReader(b))
}
