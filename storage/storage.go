// Package storage persists uploaded binaries and hands back resolvable URLs.
package storage

import (
	"context"
	"io"
	"path/filepath"

	"github.com/google/uuid"
)

const DefaultContentType = "application/octet-stream"

// Store accepts a file under name and returns the URL it will be served
// from. LocalStore writes to the uploads directory; S3Store writes to a
// bucket.
type Store interface {
	Save(ctx context.Context, name string, r io.Reader, size int64, contentType string) (string, error)
}

// ObjectName builds a collision-free stored name that still ends with the
// original filename, so the extension survives for text extraction.
func ObjectName(original string) string {
	return uuid.NewString() + "-" + filepath.Base(original)
}
