package convert

import (
	"html"
	"strings"
)

// listFrame is one open ul/ol; its last li is still open.
type listFrame struct {
	tag string
}

// writer renders WordprocessingML block content as block markup.
type writer struct {
	doc   *docx
	b     *strings.Builder
	lists []listFrame
}

func (d *docx) markup() string {
	var b strings.Builder
	w := &writer{doc: d, b: &b}
	w.blocks(d.body.Nodes)
	return b.String()
}

// blocks renders a run of block-level elements with its own list state.
func (w *writer) blocks(nodes []xnode) {
	for i := range nodes {
		n := &nodes[i]
		switch n.name() {
		case "p":
			w.paragraph(n)
		case "tbl":
			w.closeLists(0)
			w.table(n)
		case "sdt":
			if content := n.child("sdtContent"); content != nil {
				w.blocks(content.Nodes)
			}
		}
	}
	w.closeLists(0)
}

func (w *writer) paragraph(p *xnode) {
	var style, numID, ilvl string
	if ppr := p.child("pPr"); ppr != nil {
		if ps := ppr.child("pStyle"); ps != nil {
			style = ps.attr("val")
		}
		if np := ppr.child("numPr"); np != nil {
			if id := np.child("numId"); id != nil {
				numID = id.attr("val")
			}
			if lvl := np.child("ilvl"); lvl != nil {
				ilvl = lvl.attr("val")
			}
		}
	}

	content := strings.TrimSpace(w.inline(p.Nodes))
	if content == "" {
		return
	}

	if level := w.doc.heading(style); level > 0 {
		w.closeLists(0)
		tag := "h" + string(rune('0'+level))
		w.b.WriteString("<" + tag + ">" + content + "</" + tag + ">")
		return
	}

	// numId 0 explicitly removes numbering.
	if numID != "" && numID != "0" {
		if ilvl == "" {
			ilvl = "0"
		}
		w.listItem(w.doc.ordered(numID, ilvl), depth(ilvl), content)
		return
	}

	w.closeLists(0)
	w.b.WriteString("<p>" + content + "</p>")
}

func depth(ilvl string) int {
	n := 0
	for _, r := range ilvl {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}
	if n > 8 {
		return 8
	}
	return n
}

// listItem opens an li at the given nesting level, closing or opening
// lists as needed.
func (w *writer) listItem(ordered bool, level int, content string) {
	tag := "ul"
	if ordered {
		tag = "ol"
	}

	w.closeLists(level + 1)
	if len(w.lists) == level+1 {
		if w.lists[level].tag == tag {
			w.b.WriteString("</li>")
		} else {
			w.closeLists(level)
		}
	}
	for len(w.lists) < level+1 {
		w.b.WriteString("<" + tag + ">")
		w.lists = append(w.lists, listFrame{tag: tag})
	}
	w.b.WriteString("<li>" + content)
}

// closeLists closes open lists until at most keep remain.
func (w *writer) closeLists(keep int) {
	for len(w.lists) > keep {
		top := w.lists[len(w.lists)-1]
		w.b.WriteString("</li></" + top.tag + ">")
		w.lists = w.lists[:len(w.lists)-1]
	}
}

func (w *writer) table(tbl *xnode) {
	w.b.WriteString("<table>")
	for i := range tbl.Nodes {
		tr := &tbl.Nodes[i]
		if tr.name() != "tr" {
			continue
		}
		w.b.WriteString("<tr>")
		for j := range tr.Nodes {
			tc := &tr.Nodes[j]
			if tc.name() != "tc" {
				continue
			}
			w.b.WriteString("<td>")
			cell := &writer{doc: w.doc, b: w.b}
			cell.blocks(tc.Nodes)
			w.b.WriteString("</td>")
		}
		w.b.WriteString("</tr>")
	}
	w.b.WriteString("</table>")
}

// inline renders the runs, links and images inside a paragraph.
func (w *writer) inline(nodes []xnode) string {
	var b strings.Builder
	for i := range nodes {
		n := &nodes[i]
		switch n.name() {
		case "r":
			b.WriteString(w.run(n))
		case "hyperlink":
			inner := w.inline(n.Nodes)
			href := w.doc.links[n.attr("id")]
			if href == "" && n.attr("anchor") != "" {
				href = "#" + n.attr("anchor")
			}
			if href == "" || strings.TrimSpace(inner) == "" {
				b.WriteString(inner)
				continue
			}
			b.WriteString(`<a href="` + html.EscapeString(href) + `">` + inner + "</a>")
		case "pPr", "rPr", "bookmarkStart", "bookmarkEnd", "proofErr":
		default:
			// smartTag, ins, sdt and similar wrappers carry runs.
			b.WriteString(w.inline(n.Nodes))
		}
	}
	return b.String()
}

func (w *writer) run(r *xnode) string {
	var b strings.Builder
	for i := range r.Nodes {
		n := &r.Nodes[i]
		switch n.name() {
		case "t":
			b.WriteString(html.EscapeString(n.Text))
		case "tab":
			b.WriteString(" ")
		case "br", "cr":
			b.WriteString("<br />")
		case "drawing":
			b.WriteString(w.drawing(n))
		}
	}
	text := b.String()
	if strings.TrimSpace(text) == "" {
		return text
	}

	if rpr := r.child("rPr"); rpr != nil {
		if rpr.toggle("i") {
			text = "<em>" + text + "</em>"
		}
		if rpr.toggle("b") {
			text = "<strong>" + text + "</strong>"
		}
	}
	return text
}

// drawing renders an inline or anchored picture as an img with a data URI.
// Pictures whose media cannot be read are dropped.
func (w *writer) drawing(d *xnode) string {
	blip := d.find("blip")
	if blip == nil {
		return ""
	}
	src, err := w.doc.image(blip.attr("embed"))
	if err != nil {
		return ""
	}
	alt := ""
	if pr := d.find("docPr"); pr != nil {
		alt = pr.attr("descr")
	}
	return `<img alt="` + html.EscapeString(alt) + `" src="` + src + `" />`
}
