// Package convert is the block sequence provider: it turns an input
// document into whole-document block markup.
//
// Supported inputs:
//   - .docx: WordprocessingML (archive/zip, word/document.xml)
//   - HTML: passed through unchanged
package convert

import (
	"bytes"

	"github.com/gaurav-prasanna/docpipe/core"
)

var (
	zipMagic = []byte("PK\x03\x04")
	utf8BOM  = []byte("\xef\xbb\xbf")
)

// Converter detects the input format from its leading bytes.
type Converter struct{}

// New creates a Converter.
func New() *Converter {
	return &Converter{}
}

// Convert returns the block markup for data. Failures are *core.ConvertError
// values that match core.ErrConvert and their cause.
func (c *Converter) Convert(data []byte) (string, error) {
	switch {
	case bytes.HasPrefix(data, zipMagic):
		d, err := openDOCX(data)
		if err != nil {
			return "", &core.ConvertError{Err: err}
		}
		return d.markup(), nil
	case isMarkup(data):
		return string(bytes.TrimPrefix(data, utf8BOM)), nil
	default:
		return "", &core.ConvertError{Err: core.ErrUnsupportedFormat}
	}
}

func isMarkup(data []byte) bool {
	trimmed := bytes.TrimSpace(bytes.TrimPrefix(data, utf8BOM))
	return len(trimmed) > 0 && trimmed[0] == '<'
}
