package storage

import (
	"context"
	"io"
)

type FileStorage interface {
	// Upload writes a file and returns the file path/key
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)
}
