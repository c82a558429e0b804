// Package shareddrive serves documents from a mounted network share.
package shareddrive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/openjudiciary/casedocs-core/internal/core/domain"
	"github.com/openjudiciary/casedocs-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.SharedDriveClient = (*Client)(nil)

// Client reads files relative to a configured root directory. Paths are
// cleaned before use so a request cannot escape the root.
type Client struct {
	root string
}

// NewClient creates a client rooted at dir.
func NewClient(dir string) *Client {
	return &Client{root: filepath.Clean(dir)}
}

// Download opens the file at path under the configured root.
func (c *Client) Download(ctx context.Context, path string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cleaned := filepath.Clean("/" + filepath.FromSlash(path))
	full := filepath.Join(c.root, cleaned)
	if !strings.HasPrefix(full, c.root+string(filepath.Separator)) && full != c.root {
		return nil, fmt.Errorf("%w: path %q outside shared drive root", domain.ErrInvalidInput, path)
	}

	f, err := os.Open(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: shared drive document %q", domain.ErrNotFound, path)
		}
		return nil, fmt.Errorf("open shared drive document: %w", err)
	}
	return f, nil
}
