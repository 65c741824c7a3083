// Package normalize converts generated markup into Markdown for the
// Markdown renderer.
package normalize

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"
)

// inert elements carry page behaviour, not content.
var inert = "script, style, noscript"

// MarkdownNormalizer converts markup to Markdown using html-to-markdown.
type MarkdownNormalizer struct{}

// New creates a MarkdownNormalizer.
func New() *MarkdownNormalizer {
	return &MarkdownNormalizer{}
}

// Normalize strips inline scripts and styles from markup and converts the
// rest into Markdown.
func (n *MarkdownNormalizer) Normalize(markup string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return "", fmt.Errorf("parsing markup: %w", err)
	}
	doc.Find(inert).Remove()

	body, err := doc.Find("body").Html()
	if err != nil {
		return "", fmt.Errorf("serializing markup: %w", err)
	}

	markdown, err := htmltomarkdown.ConvertString(body)
	if err != nil {
		return "", fmt.Errorf("converting markup to markdown: %w", err)
	}
	return strings.TrimSpace(markdown), nil
}
