package generate

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/docpipe/core"
	"github.com/gaurav-prasanna/docpipe/core/blog"
	"github.com/gaurav-prasanna/docpipe/core/faq"
)

// DefaultPlaceholderURL is the image src used once the image URL list runs out.
const DefaultPlaceholderURL = "#"

const fancyLine = `<div class="fancy-line"></div><style>.fancy-line{width:60%;margin:20px auto;border-top:2px solid #116466;text-align:center;position:relative}.fancy-line::after{content:"✦ ✦ ✦";position:absolute;top:-12px;left:50%;transform:translateX(-50%);background:white;padding:0 10px;color:red}</style>`

// FeaturedImage is the optional banner image rendered under the title.
type FeaturedImage struct {
	URL   string `yaml:"url"`
	Alt   string `yaml:"alt"`
	Title string `yaml:"title"`
}

// BlogOptions carries the publishing inputs the document itself does not.
type BlogOptions struct {
	Featured FeaturedImage
	// ImageURLs are consumed by image units in document order.
	ImageURLs []string
	// PlaceholderURL replaces missing image URLs; empty selects
	// DefaultPlaceholderURL.
	PlaceholderURL string
}

func (o BlogOptions) imageURL(i int) string {
	if i < len(o.ImageURLs) && o.ImageURLs[i] != "" {
		return o.ImageURLs[i]
	}
	return orDefault(o.PlaceholderURL, DefaultPlaceholderURL)
}

// Blog renders a BlogDocument followed by the decorative footer.
func Blog(doc *core.BlogDocument, opts BlogOptions) string {
	var b strings.Builder

	if doc.Title != "" {
		fmt.Fprintf(&b, "<h1 class=\"text-center fs-1\">%s</h1><hr>\n\n", html.EscapeString(doc.Title))
	}

	if f := opts.Featured; f.URL != "" {
		fmt.Fprintf(&b, `<img src="%s"`, html.EscapeString(f.URL))
		if f.Alt != "" {
			fmt.Fprintf(&b, ` alt="%s"`, html.EscapeString(f.Alt))
		}
		if f.Title != "" {
			fmt.Fprintf(&b, ` title="%s"`, html.EscapeString(f.Title))
		}
		b.WriteString(" class=\"w-100 mb-3\">\n\n")
	}

	images := 0
	for _, u := range doc.ContentUnits {
		switch u.Type {
		case core.UnitHeading:
			level := u.Level
			if level == 0 {
				level = 2
			}
			if level == 1 {
				fmt.Fprintf(&b, "<h1 class=\"text-center fs-1\">%s</h1>\n\n", u.Markup)
			} else {
				fmt.Fprintf(&b, "<h%d class=\"fs-%d\">%s</h%d>\n\n", level, level, u.Markup, level)
			}
		case core.UnitParagraph:
			if content := strings.TrimSpace(u.Markup); blog.StripTags(content) != "" {
				fmt.Fprintf(&b, "<p>%s</p>\n\n", content)
			}
		case core.UnitList:
			tag := "ul"
			if u.Ordered {
				tag = "ol"
			}
			fmt.Fprintf(&b, "<%s>\n", tag)
			for _, item := range u.Items {
				if strings.TrimSpace(item) != "" {
					fmt.Fprintf(&b, "  <li>%s</li>\n", item)
				}
			}
			fmt.Fprintf(&b, "</%s>\n\n", tag)
		case core.UnitImage:
			fmt.Fprintf(&b, "<!-- %s -->\n", u.Placeholder())
			fmt.Fprintf(&b, "<img src=\"%s\" alt=\"%s\" class=\"w-100 mb-3\">\n\n",
				html.EscapeString(opts.imageURL(images)), html.EscapeString(u.Alt))
			images++
		}
	}

	b.WriteString(fancyLine)
	return b.String()
}

var answerMarker = regexp.MustCompile(`(?i)^A:\s*`)

// BlogFAQ renders blog FAQ pairs in a two-column .faq-section. Questions
// are escaped; answers keep their markup minus a leading "A:" marker.
// Pairs left empty after cleaning are skipped.
func BlogFAQ(pairs []core.QAPair) string {
	if len(pairs) == 0 {
		return noFAQ
	}

	var b strings.Builder
	b.WriteString("<div class=\"faq-section\">\n<h2 class=\"h3 mb-4\">Frequently Asked Questions</h2>\n<div class=\"row\">\n")
	for _, col := range columns(pairs) {
		b.WriteString("  <div class=\"col-md-6\">\n")
		for _, p := range col {
			question := faq.CleanQuestion(p.Question)
			answer := strings.TrimSpace(answerMarker.ReplaceAllString(p.Answer, ""))
			if question == "" || answer == "" {
				continue
			}
			b.WriteString("    <div class=\"mb-3\">\n")
			fmt.Fprintf(&b, "      <h5 class=\"h6 fw-bold\">%s</h5>\n", html.EscapeString(question))
			fmt.Fprintf(&b, "      <div class=\"faq-answer\">%s</div>\n", answer)
			b.WriteString("    </div>\n")
		}
		b.WriteString("  </div>\n")
	}
	b.WriteString("</div>\n</div>")
	return b.String()
}
