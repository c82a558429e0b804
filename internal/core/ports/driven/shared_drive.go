package driven

import (
	"context"
	"io"
)

// SharedDriveClient downloads transitory documents stored on the shared
// network drive outside the main document-management systems.
type SharedDriveClient interface {
	// Download opens the file at a relative path on the drive.
	Download(ctx context.Context, path string) (io.ReadCloser, error)
}
