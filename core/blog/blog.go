// Package blog turns a loosely structured blog draft into a BlogDocument:
// it strips markup noise and editorial metadata, resolves a title, and
// classifies the remaining elements into typed content units.
package blog

import (
	"fmt"
	"html"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/gaurav-prasanna/docpipe/core"
	"github.com/gaurav-prasanna/docpipe/core/block"
	"github.com/gaurav-prasanna/docpipe/core/faq"
	"github.com/gaurav-prasanna/docpipe/core/locate"
	"github.com/gaurav-prasanna/docpipe/core/logging"
)

const (
	minTitleLen         = 10
	maxTitleLen         = 200
	minFallbackTitleLen = 5
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

func isFAQText(text string) bool {
	lower := strings.ToLower(text)
	return strings.Contains(lower, "faq") || strings.Contains(lower, "frequently asked questions")
}

// StripTags removes markup tags and entities and trims the result.
func StripTags(markup string) string {
	return strings.TrimSpace(html.UnescapeString(tagPattern.ReplaceAllString(markup, "")))
}

// Classifier extracts BlogDocuments. It holds no per-document state.
type Classifier struct {
	locator *locate.Locator
	faq     *faq.Extractor
	log     *logging.Logger
}

// New creates a Classifier.
func New(log *logging.Logger) *Classifier {
	return &Classifier{
		locator: locate.New(),
		faq:     faq.New(),
		log:     logging.OrNop(log),
	}
}

// Extract builds a fresh BlogDocument from blocks.
func (c *Classifier) Extract(blocks []block.Node) (*core.BlogDocument, error) {
	root, err := cleanRoot(blocks, true)
	if err != nil {
		return nil, fmt.Errorf("cleaning blog markup: %w", err)
	}

	doc := &core.BlogDocument{Title: resolveTitle(root)}
	w := &walker{doc: doc}
	w.walk(root)

	pairs, err := c.FAQ(blocks)
	if err != nil {
		return nil, err
	}
	doc.FAQ = pairs

	if doc.Title == "" {
		c.log.Debug("blog title not found")
	}
	c.log.Info("blog extracted",
		"units", len(doc.ContentUnits),
		"images", doc.ImageCount,
		"faq_pairs", len(doc.FAQ),
	)
	return doc, nil
}

// FAQ extracts the blog's FAQ pairs from the attribute-stripped top-level
// blocks. Answer markup is kept verbatim; trailing editorial metadata ends
// the window.
func (c *Classifier) FAQ(blocks []block.Node) ([]core.QAPair, error) {
	root, err := cleanRoot(blocks, false)
	if err != nil {
		return nil, fmt.Errorf("cleaning blog markup: %w", err)
	}
	cleaned := block.FromSelection(root.Children())
	window := c.locator.LocateSection(cleaned, locate.FAQ)
	from, to := window.Body()
	for i := from; i < to; i++ {
		if isMetaMarker(cleaned[i].Text()) {
			to = i
			break
		}
	}
	return c.faq.Extract(cleaned[from:to]), nil
}

// resolveTitle applies the title fallbacks in order. The first two remove
// their source element from the body; the last one only reads it.
func resolveTitle(root *goquery.Selection) string {
	var title string

	root.Find("h1").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.TrimSpace(s.Text())
		if text == "" || isFAQText(text) {
			return true
		}
		title = text
		s.Remove()
		return false
	})
	if title != "" {
		return title
	}

	root.Find("p").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.TrimSpace(s.Text())
		n := utf8.RuneCountInString(text)
		if n <= minTitleLen || n >= maxTitleLen || isFAQText(text) {
			return true
		}
		title = text
		s.Remove()
		return false
	})
	if title != "" {
		return title
	}

	root.Find("*").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.TrimSpace(s.Text())
		if utf8.RuneCountInString(text) <= minFallbackTitleLen || isFAQText(text) {
			return true
		}
		prefix, _, _ := strings.Cut(text, ".")
		if utf8.RuneCountInString(prefix) <= minFallbackTitleLen {
			return true
		}
		title = prefix
		return false
	})
	return title
}

// walker classifies elements in depth-first document order.
type walker struct {
	doc     *core.BlogDocument
	stopped bool
}

func (w *walker) walk(sel *goquery.Selection) {
	sel.Children().EachWithBreak(func(_ int, s *goquery.Selection) bool {
		w.visit(s)
		return !w.stopped
	})
}

func (w *walker) visit(s *goquery.Selection) {
	tag := goquery.NodeName(s)
	if tag == "img" {
		w.image(s)
		return
	}

	text := strings.TrimSpace(s.Text())
	if text == "" {
		w.walk(s)
		return
	}
	if isMetaMarker(text) {
		w.stopped = true
		return
	}

	node := block.FromSelection(s)[0]
	if level := block.HeadingLevel(node); level > 0 {
		if isFAQText(text) {
			w.stopped = true
			return
		}
		w.doc.ContentUnits = append(w.doc.ContentUnits, core.ContentUnit{
			Type:   core.UnitHeading,
			Level:  level,
			Markup: node.InnerMarkup(),
		})
		w.walk(s)
		return
	}

	switch tag {
	case "p":
		if markup := node.InnerMarkup(); StripTags(markup) != "" {
			w.doc.ContentUnits = append(w.doc.ContentUnits, core.ContentUnit{
				Type:   core.UnitParagraph,
				Markup: markup,
			})
		}
		w.walk(s)
	case "ul", "ol":
		// List items are captured whole; the walk does not descend.
		var items []string
		for _, li := range node.Find("li") {
			if item := li.InnerMarkup(); item != "" {
				items = append(items, item)
			}
		}
		if len(items) > 0 {
			w.doc.ContentUnits = append(w.doc.ContentUnits, core.ContentUnit{
				Type:    core.UnitList,
				Ordered: tag == "ol",
				Items:   items,
			})
		}
	default:
		w.walk(s)
	}
}

func (w *walker) image(s *goquery.Selection) {
	w.doc.ImageCount++
	alt, _ := s.Attr("alt")
	if strings.TrimSpace(alt) == "" {
		alt = fmt.Sprintf("Blog image %d", w.doc.ImageCount)
	}
	w.doc.ContentUnits = append(w.doc.ContentUnits, core.ContentUnit{
		Type:  core.UnitImage,
		Alt:   alt,
		Index: w.doc.ImageCount,
	})
}
