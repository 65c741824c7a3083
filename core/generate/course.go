// Package generate renders the structured models into publishable markup.
// Every generator is a pure function of its input: no I/O, no randomness,
// and an explicit placeholder whenever a section produced nothing.
package generate

import (
	"fmt"
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/gaurav-prasanna/docpipe/core"
)

// DefaultObjectivesIntro is used when the document carries no intro line.
const DefaultObjectivesIntro = "After completing this course, the learner will be able to:"

const (
	noOverview   = "<p>No overview content found.</p>"
	noObjectives = "<li>No course objectives found in the document.</li>"
	noSyllabus   = "<p>No syllabus content found.</p>"
	noFAQ        = "<!-- No FAQs found in the FAQ section -->"
)

const videoTemplate = `<!-- <div class="col-md-5 col-sm-12 elementor-col-40 elementor-column ml-md-3 p-0 pb-0 pt-0 verified-field-container" style="float:right"><div class="demo-video"><iframe title="%s" src="https://player.vimeo.com/video/680313019?h=6c9335ab94" width="560" height="200" frameborder="0" allow="autoplay; fullscreen; picture-in-picture" allowfullscreen data-ready="true"></iframe><img src="" class="w-100 ps-3" alt="%s"></div></div> -->`

// Overview renders the overview section behind a commented-out video
// embed. Headings are restyled, list classes cleared and links opened in a
// new tab.
func Overview(doc *core.CourseDocument) string {
	video := fmt.Sprintf(videoTemplate,
		html.EscapeString(orDefault(doc.Title, "Course Video")),
		html.EscapeString(orDefault(doc.Title, "Course Name")),
	)
	if strings.TrimSpace(doc.OverviewMarkup) == "" {
		return video + noOverview
	}
	return video + restyleOverview(doc.OverviewMarkup)
}

func restyleOverview(markup string) string {
	page, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return markup
	}
	body := page.Find("body")

	body.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, h *goquery.Selection) {
		inner, _ := h.Html()
		h.ReplaceWithHtml(`<h2 class="fs-4 text-warning">` + inner + `</h2>`)
	})
	body.Find("ul, ol").SetAttr("class", "")
	body.Find("a").SetAttr("target", "_blank")

	out, err := body.Html()
	if err != nil {
		return markup
	}
	return out
}

// Objectives renders the objectives heading, intro line and list.
// defaultIntro replaces a missing intro; empty selects DefaultObjectivesIntro.
func Objectives(doc *core.CourseDocument, defaultIntro string) string {
	items := noObjectives
	if len(doc.ObjectivesList) > 0 {
		lis := make([]string, len(doc.ObjectivesList))
		for i, item := range doc.ObjectivesList {
			lis[i] = "<li>" + item + "</li>"
		}
		items = strings.Join(lis, "\n")
	}

	intro := doc.ObjectivesIntro
	if intro == "" {
		intro = orDefault(defaultIntro, DefaultObjectivesIntro)
	}
	return `<h2 class="h3">Course Objectives</h2><p class="m-0"><strong>` + intro + `</strong></p><ul>` + items + `</ul>`
}

// Syllabus renders one collapsible accordion card per module.
func Syllabus(modules []core.Module) string {
	if len(modules) == 0 {
		return noSyllabus
	}

	var b strings.Builder
	b.WriteString("<div id=\"accordionSyllabus\" class=\"accordion\">\n")
	for i, m := range modules {
		collapseID := fmt.Sprintf("collapse%d", i+1)
		headingID := fmt.Sprintf("heading%d", i+1)

		b.WriteString("<div class=\"card mb-2\">\n")
		fmt.Fprintf(&b, "  <div class=\"card-header\" id=\"%s\">\n", headingID)
		b.WriteString("    <h5 class=\"mb-0\">\n")
		fmt.Fprintf(&b, "      <button class=\"btn btn-link w-100 text-start text-decoration-none text-dark fw-bold collapsed\" data-bs-toggle=\"collapse\" data-bs-target=\"#%s\" aria-expanded=\"false\" aria-controls=\"%s\">\n", collapseID, collapseID)
		fmt.Fprintf(&b, "        %s\n", html.EscapeString(m.Title))
		b.WriteString("      </button>\n")
		b.WriteString("    </h5>\n")
		b.WriteString("  </div>\n\n")

		fmt.Fprintf(&b, "  <div id=\"%s\" class=\"collapse\" aria-labelledby=\"%s\" data-parent=\"#accordionSyllabus\">\n", collapseID, headingID)
		b.WriteString("    <div class=\"card-body\">\n")
		if m.Description != "" {
			fmt.Fprintf(&b, "      <p>%s</p>\n", html.EscapeString(m.Description))
		}
		if len(m.Lessons) > 0 {
			b.WriteString("      <ul>\n")
			for _, l := range m.Lessons {
				fmt.Fprintf(&b, "        <li>%s\n", html.EscapeString(l.Title))
				if len(l.Items) > 0 {
					b.WriteString("          <ul>\n")
					for _, item := range l.Items {
						fmt.Fprintf(&b, "            <li>%s</li>\n", item)
					}
					b.WriteString("          </ul>\n")
				}
				b.WriteString("        </li>\n")
			}
			b.WriteString("      </ul>\n")
		}
		b.WriteString("    </div>\n")
		b.WriteString("  </div>\n")
		b.WriteString("</div>\n")
	}
	b.WriteString("</div>")
	return b.String()
}

// FAQ renders course FAQ pairs in two columns. The first column takes
// ceil(n/2) pairs.
func FAQ(pairs []core.QAPair) string {
	if len(pairs) == 0 {
		return noFAQ
	}

	var b strings.Builder
	b.WriteString("<h2 class=\"h3 mb-4\">Frequently Asked Questions</h2>\n<div class=\"row\">\n")
	for _, col := range columns(pairs) {
		b.WriteString("  <div class=\"col-md-6\">\n")
		for _, p := range col {
			b.WriteString("    <div class=\"mb-3\">\n")
			fmt.Fprintf(&b, "      <h5 class=\"h6 fw-bold\">%s</h5>\n", p.Question)
			fmt.Fprintf(&b, "      <p>%s</p>\n", p.Answer)
			b.WriteString("    </div>\n")
		}
		b.WriteString("  </div>\n")
	}
	b.WriteString("</div>")
	return b.String()
}

// columns splits pairs at ceil(n/2).
func columns(pairs []core.QAPair) [2][]core.QAPair {
	mid := (len(pairs) + 1) / 2
	return [2][]core.QAPair{pairs[:mid], pairs[mid:]}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
