// Package extract runs the docpipe pipeline: read the input, convert it to
// block markup, isolate the document content, build the block sequence and
// hand it to the course, blog or glossary extractor.
package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// noiseSelectors are removed before the block sequence is built. They
// only occur in HTML inputs and carry no document content.
var noiseSelectors = []string{
	"script", "style", "noscript", "template",
	"nav", "footer",
	"iframe", "video", "audio",
	"svg", "canvas",
	"form", "button", "input", "select", "textarea",
}

// Sanitize strips noise from converted markup and returns the content
// container's children as a fragment. <main> wins over <article>, which
// wins over <body>.
func Sanitize(markup string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return "", fmt.Errorf("parsing markup: %w", err)
	}

	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}

	var content *goquery.Selection
	for _, tag := range []string{"main", "article", "body"} {
		if sel := doc.Find(tag); sel.Length() > 0 {
			content = sel.First()
			break
		}
	}
	if content == nil {
		return "", fmt.Errorf("no content container found in markup")
	}

	result, err := content.Html()
	if err != nil {
		return "", fmt.Errorf("serializing content: %w", err)
	}
	return result, nil
}
