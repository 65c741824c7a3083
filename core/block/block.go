// Package block exposes converted document markup as an ordered sequence of
// block-level nodes. Extraction code depends only on the Node interface, so
// it stays independent of the markup tree behind it.
package block

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Node is the minimal capability set extraction logic needs from a block.
type Node interface {
	// Tag returns the lower-case element name ("p", "h2", "ul", ...).
	Tag() string
	// Text returns the trimmed plain-text content.
	Text() string
	// InnerMarkup returns the element's contents.
	InnerMarkup() string
	// OuterMarkup returns the element including its own tag.
	OuterMarkup() string
	// Attr returns the named attribute.
	Attr(name string) (string, bool)
	// Find returns descendants matching a CSS selector, in document order.
	Find(selector string) []Node
	// Children returns the direct element children.
	Children() []Node
}

var headingTag = regexp.MustCompile(`^h([1-6])$`)

// HeadingLevel returns the level of an h1..h6 node, or 0.
func HeadingLevel(n Node) int {
	m := headingTag.FindStringSubmatch(n.Tag())
	if m == nil {
		return 0
	}
	return int(m[1][0] - '0')
}

// IsHeading reports whether n is an h1..h6 element.
func IsHeading(n Node) bool {
	return HeadingLevel(n) > 0
}

// IsHeadingUpTo reports whether n is a heading of level 1..maxLevel.
func IsHeadingUpTo(n Node, maxLevel int) bool {
	l := HeadingLevel(n)
	return l > 0 && l <= maxLevel
}

// LowerText returns the trimmed text in lower case.
func LowerText(n Node) string {
	return strings.ToLower(n.Text())
}

// OwnText returns the trimmed text of n without the text of any nested
// ul/ol lists. Nodes not backed by goquery fall back to Text.
func OwnText(n Node) string {
	sel := Selection(n)
	if sel == nil || sel.Find("ul, ol").Length() == 0 {
		return n.Text()
	}
	clone := sel.Clone()
	clone.Find("ul, ol").Remove()
	return strings.TrimSpace(clone.Text())
}

// Parse reads a markup fragment and returns its top-level elements.
func Parse(markup string) ([]Node, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("parsing markup: %w", err)
	}
	return FromSelection(doc.Find("body").Children()), nil
}

// FromSelection wraps each element of a goquery selection as a Node.
func FromSelection(sel *goquery.Selection) []Node {
	nodes := make([]Node, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, &selectionNode{sel: s})
	})
	return nodes
}

// Selection returns the goquery selection behind a Node built by this
// package, or nil for foreign implementations.
func Selection(n Node) *goquery.Selection {
	if s, ok := n.(*selectionNode); ok {
		return s.sel
	}
	return nil
}

// selectionNode is a Node backed by a single-element goquery selection.
type selectionNode struct {
	sel *goquery.Selection
}

func (n *selectionNode) Tag() string {
	return goquery.NodeName(n.sel)
}

func (n *selectionNode) Text() string {
	return strings.TrimSpace(n.sel.Text())
}

func (n *selectionNode) InnerMarkup() string {
	html, err := n.sel.Html()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(html)
}

func (n *selectionNode) OuterMarkup() string {
	html, err := goquery.OuterHtml(n.sel)
	if err != nil {
		return ""
	}
	return html
}

func (n *selectionNode) Attr(name string) (string, bool) {
	return n.sel.Attr(name)
}

func (n *selectionNode) Find(selector string) []Node {
	return FromSelection(n.sel.Find(selector))
}

func (n *selectionNode) Children() []Node {
	return FromSelection(n.sel.Children())
}
