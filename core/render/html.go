// Package render turns generated markup into the final output formats.
// This file implements the HTML renderer, a passthrough.
package render

import (
	"github.com/gaurav-prasanna/docpipe/core"
)

// HTMLRenderer writes generated markup as-is. Markup is the canonical
// generator format, so nothing needs converting.
type HTMLRenderer struct{}

// NewHTMLRenderer creates an HTMLRenderer.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{}
}

// Render returns the markup as bytes.
func (r *HTMLRenderer) Render(out core.Output) ([]byte, error) {
	return []byte(out.Markup), nil
}

// Extension returns the file extension for HTML output.
func (r *HTMLRenderer) Extension() string {
	return ".html"
}
