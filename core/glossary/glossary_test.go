package glossary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/docpipe/core"
	"github.com/gaurav-prasanna/docpipe/core/block"
)

func parse(t *testing.T, markup string) []block.Node {
	t.Helper()
	nodes, err := block.Parse(markup)
	require.NoError(t, err)
	return nodes
}

func TestExtract_FirstTableOnly(t *testing.T) {
	blocks := parse(t, `
<p>Glossary</p>
<table>
<tr><td>Term</td><td>Definition</td></tr>
<tr><td> Apple </td><td><p>A <strong>fruit</strong></p></td></tr>
<tr><td>Broken</td></tr>
<tr><td></td><td>no term</td></tr>
<tr><td>Empty def</td><td> </td></tr>
<tr><td>banana</td><td>Yellow</td><td>extra</td></tr>
<tr><td>Banana</td><td>Yellow fruit</td></tr>
</table>
<table><tr><td>H</td><td>H</td></tr><tr><td>Cherry</td><td>Red</td></tr></table>`)

	g := Extract(blocks)

	assert.Equal(t, []core.GlossaryEntry{
		{Term: "Apple", DefinitionMarkup: "<p>A <strong>fruit</strong></p>"},
		{Term: "Banana", DefinitionMarkup: "Yellow fruit"},
	}, g.Entries)
}

func TestExtract_NoTable(t *testing.T) {
	g := Extract(parse(t, `<p>No table here</p>`))
	assert.Empty(t, g.Entries)

	assert.Empty(t, Extract(nil).Entries)
}

func TestGroup_ByInitialLetterPreservingOrder(t *testing.T) {
	groups := Group([]core.GlossaryEntry{
		{Term: "apple", DefinitionMarkup: "fruit"},
		{Term: "Banana", DefinitionMarkup: " fruit "},
		{Term: "Avocado", DefinitionMarkup: "also fruit"},
		{Term: "42", DefinitionMarkup: "answer"},
	})

	assert.Equal(t, []string{"apple", "Avocado"}, []string{groups["A"][0].Term, groups["A"][1].Term})
	require.Len(t, groups["B"], 1)
	assert.Equal(t, "fruit", groups["B"][0].DefinitionMarkup)
	assert.Len(t, groups["4"], 1, "non-letter keys are kept but never rendered")
	assert.Empty(t, groups["C"])
}

func TestLetters(t *testing.T) {
	require.Len(t, Letters, 26)
	assert.Equal(t, "A", Letters[0])
	assert.Equal(t, "Z", Letters[25])
}
