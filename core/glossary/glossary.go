// Package glossary reads a two-column term/definition table into glossary
// entries and groups them by initial letter.
package glossary

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gaurav-prasanna/docpipe/core"
	"github.com/gaurav-prasanna/docpipe/core/block"
)

// Letters are the bucket keys rendered by the glossary generator.
var Letters = func() []string {
	letters := make([]string, 0, 26)
	for r := 'A'; r <= 'Z'; r++ {
		letters = append(letters, string(r))
	}
	return letters
}()

// Extract reads the first table in blocks. The header row is skipped; rows
// that do not have exactly two cells, or whose term or definition is empty,
// are dropped.
func Extract(blocks []block.Node) *core.Glossary {
	g := &core.Glossary{}

	table := firstTable(blocks)
	if table == nil {
		return g
	}

	for i, row := range table.Find("tr") {
		if i == 0 {
			continue
		}
		cells := row.Find("td")
		if len(cells) != 2 {
			continue
		}
		term := cells[0].Text()
		definition := cells[1].InnerMarkup()
		if term == "" || definition == "" {
			continue
		}
		g.Entries = append(g.Entries, core.GlossaryEntry{Term: term, DefinitionMarkup: definition})
	}
	return g
}

func firstTable(blocks []block.Node) block.Node {
	for _, n := range blocks {
		if n.Tag() == "table" {
			return n
		}
		if nested := n.Find("table"); len(nested) > 0 {
			return nested[0]
		}
	}
	return nil
}

// Group buckets entries by the upper-cased first character of their term,
// keeping table order within each bucket.
func Group(entries []core.GlossaryEntry) map[string][]core.GlossaryEntry {
	groups := make(map[string][]core.GlossaryEntry)
	for _, e := range entries {
		term := strings.TrimSpace(e.Term)
		r, _ := utf8.DecodeRuneInString(term)
		if r == utf8.RuneError {
			continue
		}
		key := string(unicode.ToUpper(r))
		groups[key] = append(groups[key], core.GlossaryEntry{
			Term:             term,
			DefinitionMarkup: strings.TrimSpace(e.DefinitionMarkup),
		})
	}
	return groups
}
