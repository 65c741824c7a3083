// Package source implements the core.Reader interface for local files.
// Documents are read whole in one shot; nothing is streamed.
package source

import (
	"context"
	"fmt"
	"os"

	"github.com/gaurav-prasanna/docpipe/core"
)

// defaultMaxSize bounds a single input document.
const defaultMaxSize = 64 << 20

// FileReader reads documents from the local filesystem.
type FileReader struct {
	maxSize int64
}

// New creates a FileReader with the default size limit.
func New() *FileReader {
	return &FileReader{maxSize: defaultMaxSize}
}

// Read returns the full contents of path. Every failure matches core.ErrRead.
func (r *FileReader) Read(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrRead, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrRead, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", core.ErrRead, path)
	}
	if info.Size() > r.maxSize {
		return nil, fmt.Errorf("%w: %s is %d bytes, limit is %d", core.ErrRead, path, info.Size(), r.maxSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrRead, err)
	}
	return data, nil
}
