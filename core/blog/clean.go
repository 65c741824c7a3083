package blog

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/gaurav-prasanna/docpipe/core/block"
)

// metaMarkers truncate the document: the first element whose text starts
// with one of them, and everything after it, is dropped.
var metaMarkers = []string{"meta description", "meta title", "slug", "category", "relevant courses"}

// lineMarkers drop only the element whose text starts with them.
var lineMarkers = []string{"link:", "alt-text", "alt text:", "title text:"}

// presentationAttrs are removed from every element.
var presentationAttrs = []string{"style", "class", "align", "valign", "bgcolor", "color", "face", "border"}

// wrapperTags are unwrapped: their children are hoisted into the parent.
var wrapperTags = []string{"span", "div"}

func hasAnyPrefix(lower string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	return false
}

func isMetaMarker(text string) bool {
	return hasAnyPrefix(strings.ToLower(text), metaMarkers)
}

// Clean returns a cleaned copy of blocks as a new top-level node list. The
// input nodes are not modified.
func Clean(blocks []block.Node) ([]block.Node, error) {
	root, err := cleanRoot(blocks, true)
	if err != nil {
		return nil, err
	}
	return block.FromSelection(root.Children()), nil
}

// cleanRoot re-parses blocks into a fresh container and applies the cleanup
// passes to it. truncate enables the metadata and line-marker removal.
func cleanRoot(blocks []block.Node, truncate bool) (*goquery.Selection, error) {
	var b strings.Builder
	for _, n := range blocks {
		b.WriteString(n.OuterMarkup())
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(b.String()))
	if err != nil {
		return nil, err
	}
	root := doc.Find("body")

	if truncate {
		truncateAtMetadata(root)
	}
	stripAttributes(root)
	for _, tag := range wrapperTags {
		unwrap(root, tag)
	}
	collapseBreaks(root)
	removeEmpty(root)
	tidyLists(root)
	return root, nil
}

// truncateAtMetadata drops line-marker elements and everything from the
// first metadata marker on, in document order.
func truncateAtMetadata(root *goquery.Selection) {
	all := root.Find("*")
	cut := -1
	all.EachWithBreak(func(i int, s *goquery.Selection) bool {
		text := strings.TrimSpace(s.Text())
		if text == "" {
			return true
		}
		lower := strings.ToLower(text)
		if hasAnyPrefix(lower, metaMarkers) {
			cut = i
			return false
		}
		if hasAnyPrefix(lower, lineMarkers) {
			s.Remove()
		}
		return true
	})
	if cut == -1 {
		return
	}
	all.Slice(cut, all.Length()).Remove()
}

func stripAttributes(root *goquery.Selection) {
	root.Find("*").Each(func(_ int, s *goquery.Selection) {
		for _, attr := range presentationAttrs {
			s.RemoveAttr(attr)
		}
	})
}

// unwrap replaces every tag element with its children.
func unwrap(root *goquery.Selection, tag string) {
	for _, n := range root.Find(tag).Nodes {
		parent := n.Parent
		if parent == nil {
			continue
		}
		for c := n.FirstChild; c != nil; {
			next := c.NextSibling
			n.RemoveChild(c)
			parent.InsertBefore(c, n)
			c = next
		}
		parent.RemoveChild(n)
	}
}

// collapseBreaks reduces each run of consecutive <br> elements to one.
func collapseBreaks(root *goquery.Selection) {
	for _, n := range root.Find("br").Nodes {
		prev := n.PrevSibling
		for prev != nil && prev.Type == html.TextNode && strings.TrimSpace(prev.Data) == "" {
			prev = prev.PrevSibling
		}
		if prev != nil && prev.Type == html.ElementNode && prev.Data == "br" && n.Parent != nil {
			n.Parent.RemoveChild(n)
		}
	}
}

// removeEmpty drops elements with no text and no element children. Images
// and the surviving line breaks are kept.
func removeEmpty(root *goquery.Selection) {
	root.Find("*").Each(func(_ int, s *goquery.Selection) {
		switch goquery.NodeName(s) {
		case "img", "br":
			return
		}
		if strings.TrimSpace(s.Text()) == "" && s.Children().Length() == 0 {
			s.Remove()
		}
	})
}

// tidyLists strips stray ">" artefacts from list items and removes items
// and lists left empty.
func tidyLists(root *goquery.Selection) {
	root.Find("ul, ol").Each(func(_ int, list *goquery.Selection) {
		list.Find("li").Each(func(_ int, li *goquery.Selection) {
			stripText(li, ">")
			if strings.TrimSpace(li.Text()) == "" && li.Children().Length() == 0 {
				li.Remove()
			}
		})
		if list.Children().Length() == 0 {
			list.Remove()
		}
	})
}

func stripText(s *goquery.Selection, cut string) {
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			node.Data = strings.ReplaceAll(node.Data, cut, "")
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range s.Nodes {
		walk(n)
	}
}
