package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/gaurav-prasanna/docpipe/core"
)

// Heading is one heading found in generated markup.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// Link is one anchor found in generated markup.
type Link struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// Structure summarises the shape of the generated markup.
type Structure struct {
	Headings []Heading `json:"headings"`
	Links    []Link    `json:"links"`
	Lists    int       `json:"lists"`
	Images   int       `json:"images"`
}

// Document is the JSON output: metadata, the structured model the markup
// was generated from, and the markup itself.
type Document struct {
	Metadata  core.DocumentMetadata `json:"metadata"`
	Model     any                   `json:"model,omitempty"`
	Markup    string                `json:"markup,omitempty"`
	Structure Structure             `json:"structure"`
}

// JSONRenderer produces structured JSON output.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render marshals out into an indented Document.
func (r *JSONRenderer) Render(out core.Output) ([]byte, error) {
	structure, err := inspect(out.Markup)
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(Document{
		Metadata:  out.Meta,
		Model:     out.Model,
		Markup:    out.Markup,
		Structure: structure,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}

func inspect(markup string) (Structure, error) {
	s := Structure{Headings: []Heading{}, Links: []Link{}}
	if strings.TrimSpace(markup) == "" {
		return s, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return s, fmt.Errorf("parsing markup: %w", err)
	}
	body := doc.Find("body")

	body.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, h *goquery.Selection) {
		s.Headings = append(s.Headings, Heading{
			Level: int(goquery.NodeName(h)[1] - '0'),
			Text:  strings.TrimSpace(h.Text()),
		})
	})
	body.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		s.Links = append(s.Links, Link{Text: strings.TrimSpace(a.Text()), Href: href})
	})
	s.Lists = body.Find("ul, ol").Length()
	s.Images = body.Find("img").Length()
	return s, nil
}
