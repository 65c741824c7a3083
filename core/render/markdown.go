package render

import (
	"fmt"

	"github.com/gaurav-prasanna/docpipe/core"
	"github.com/gaurav-prasanna/docpipe/core/normalize"
)

// MarkdownRenderer converts generated markup to Markdown.
type MarkdownRenderer struct {
	normalizer *normalize.MarkdownNormalizer
}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{normalizer: normalize.New()}
}

// Render returns the Markdown for out.Markup, newline terminated.
func (r *MarkdownRenderer) Render(out core.Output) ([]byte, error) {
	md, err := r.normalizer.Normalize(out.Markup)
	if err != nil {
		return nil, fmt.Errorf("rendering markdown: %w", err)
	}
	if md == "" {
		return nil, nil
	}
	return []byte(md + "\n"), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}
