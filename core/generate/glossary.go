package generate

import (
	"fmt"
	"html"
	"strings"

	"github.com/gaurav-prasanna/docpipe/core"
	"github.com/gaurav-prasanna/docpipe/core/glossary"
)

const glossaryStyle = `
<style>
    .active.glossaryBtn,
    .glossaryBtn:hover {
        background: black !important;
        transform: translateY(-4px) scale(1);
        transition: 0.2s;
        color: #ffbf00!important
    }
</style>`

const glossaryScript = `
    <script>
        function openItem(glossaryItem, evt) {
            var items = document.getElementsByClassName("result-container");
            for (var i = 0; i < items.length; i++) {
                items[i].style.display = "none";
            }
            document.getElementById(glossaryItem).style.display = "block";

            var btns = document.getElementsByClassName("glossaryBtn");
            for (var j = 0; j < btns.length; j++) {
                btns[j].classList.remove("active");
            }
            evt.target.classList.add("active");
        }
    </script>`

// Glossary renders the A-Z button bar and one section per letter. Only the
// "A" section is visible initially; openItem switches sections.
func Glossary(g *core.Glossary) string {
	groups := glossary.Group(g.Entries)

	var buttons, sections strings.Builder
	for _, letter := range glossary.Letters {
		active, display := "", "none"
		if letter == "A" {
			active, display = "active", "block"
		}
		fmt.Fprintf(&buttons, "<button class=\"glossaryBtn btn btn-outline-primary m-1 %s\" onclick=\"openItem('%s', event)\">%s</button>\n", active, letter, letter)

		fmt.Fprintf(&sections, "<div id=\"%s\" class=\"result-container glosary-item\" style=\"display:%s;\">\n", letter, display)
		entries := groups[letter]
		if len(entries) == 0 {
			fmt.Fprintf(&sections, "<h2>%s</h2><p>No terms found</p>\n", letter)
		}
		for _, e := range entries {
			fmt.Fprintf(&sections, "<h2>%s</h2>\n<div>%s</div>\n", html.EscapeString(e.Term), e.DefinitionMarkup)
		}
		sections.WriteString("</div>\n")
	}

	var b strings.Builder
	b.WriteString(glossaryStyle)
	b.WriteString("\n<div class=\"custom-glossary\">")
	b.WriteString(glossaryScript)
	b.WriteString("\n    <div class=\"container\">\n        <div class=\"glossaryBtnMain alphabet-buttons mb-3\">\n")
	b.WriteString(buttons.String())
	b.WriteString("        </div>\n")
	b.WriteString(sections.String())
	b.WriteString("    </div>\n</div>")
	return b.String()
}
