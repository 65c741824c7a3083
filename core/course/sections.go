package course

import (
	"strings"
	"unicode/utf8"

	"github.com/gaurav-prasanna/docpipe/core/block"
	"github.com/gaurav-prasanna/docpipe/core/locate"
)

const minIntroLen = 20

// overview concatenates the outer markup of the overview body blocks.
func overview(blocks []block.Node, w locate.Window) string {
	from, to := w.Body()
	var b strings.Builder
	for _, n := range blocks[from:to] {
		b.WriteString(n.OuterMarkup())
	}
	return b.String()
}

// objectives returns the intro sentence and the objective items of the
// objectives window. The locating heading is skipped.
func objectives(blocks []block.Node, w locate.Window) (string, []string) {
	if !w.Found {
		return "", nil
	}

	var (
		intro string
		items []string
	)
	for _, n := range blocks[w.Start:w.End] {
		text := n.Text()
		if text == "" {
			continue
		}
		if block.IsHeading(n) && strings.Contains(strings.ToLower(text), "objectives") {
			continue
		}

		switch n.Tag() {
		case "p":
			if intro == "" && utf8.RuneCountInString(text) > minIntroLen {
				intro = n.InnerMarkup()
			}
		case "ul", "ol":
			for _, li := range n.Find("li") {
				if item := li.InnerMarkup(); item != "" {
					items = append(items, item)
				}
			}
		case "li":
			if item := n.InnerMarkup(); item != "" {
				items = append(items, item)
			}
		}
	}
	return intro, items
}
