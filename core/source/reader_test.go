package source

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/docpipe/core"
)

func TestRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.html")
	require.NoError(t, os.WriteFile(path, []byte("<p>hi</p>"), 0o644))

	data, err := New().Read(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "<p>hi</p>", string(data))
}

func TestRead_Errors(t *testing.T) {
	dir := t.TempDir()
	big := filepath.Join(dir, "big.docx")
	require.NoError(t, os.WriteFile(big, make([]byte, 16), 0o644))

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name string
		r    *FileReader
		ctx  context.Context
		path string
	}{
		{"missing", New(), context.Background(), filepath.Join(dir, "nope.docx")},
		{"directory", New(), context.Background(), dir},
		{"too large", &FileReader{maxSize: 8}, context.Background(), big},
		{"cancelled", New(), cancelled, big},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.r.Read(tt.ctx, tt.path)
			require.Error(t, err)
			assert.True(t, errors.Is(err, core.ErrRead))
		})
	}
}
