package convert

import (
	"archive/zip"
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/docpipe/core"
)

const wordNS = `xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" ` +
	`xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" ` +
	`xmlns:wp="http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing" ` +
	`xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"`

func document(body string) string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?><w:document ` + wordNS + `><w:body>` + body + `</w:body></w:document>`
}

func archive(t *testing.T, parts map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range parts {
		f, err := zw.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

const numberingXML = `<w:numbering ` + wordNS + `>
<w:abstractNum w:abstractNumId="0"><w:lvl w:ilvl="0"><w:numFmt w:val="bullet"/></w:lvl><w:lvl w:ilvl="1"><w:numFmt w:val="bullet"/></w:lvl></w:abstractNum>
<w:abstractNum w:abstractNumId="1"><w:lvl w:ilvl="0"><w:numFmt w:val="decimal"/></w:lvl></w:abstractNum>
<w:num w:numId="1"><w:abstractNumId w:val="0"/></w:num>
<w:num w:numId="2"><w:abstractNumId w:val="1"/></w:num>
</w:numbering>`

const stylesXML = `<w:styles ` + wordNS + `>
<w:style w:type="paragraph" w:styleId="Heading2"><w:name w:val="heading 2"/></w:style>
<w:style w:type="paragraph" w:styleId="Titre1"><w:name w:val="heading 1"/></w:style>
</w:styles>`

const relsXML = `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId5" Type="hyperlink" Target="https://go.dev/?a=1&amp;b=2" TargetMode="External"/>
<Relationship Id="rId6" Type="image" Target="media/image1.png"/>
</Relationships>`

func li(numID, ilvl, text string) string {
	return `<w:p><w:pPr><w:numPr><w:ilvl w:val="` + ilvl + `"/><w:numId w:val="` + numID + `"/></w:numPr></w:pPr><w:r><w:t>` + text + `</w:t></w:r></w:p>`
}

func TestConvert_DOCX(t *testing.T) {
	body := `<w:p><w:pPr><w:pStyle w:val="Titre1"/></w:pPr><w:r><w:t>Course</w:t></w:r></w:p>` +
		`<w:p><w:pPr><w:pStyle w:val="Heading2"/></w:pPr><w:r><w:t>Overview</w:t></w:r></w:p>` +
		`<w:p><w:r><w:rPr><w:b/></w:rPr><w:t>Bold</w:t></w:r><w:r><w:t xml:space="preserve"> and </w:t></w:r>` +
		`<w:r><w:rPr><w:i/><w:b w:val="0"/></w:rPr><w:t>italic</w:t></w:r><w:r><w:br/><w:t>&lt;x&gt;</w:t></w:r></w:p>` +
		`<w:p></w:p>` +
		li("1", "0", "One") + li("1", "1", "Nested") + li("1", "0", "Two") +
		li("2", "0", "First") +
		`<w:p><w:hyperlink r:id="rId5"><w:r><w:t>link</w:t></w:r></w:hyperlink></w:p>` +
		`<w:tbl><w:tr><w:tc><w:p><w:r><w:t>Term</w:t></w:r></w:p></w:tc><w:tc><w:p><w:r><w:t>Def</w:t></w:r></w:p></w:tc></w:tr></w:tbl>` +
		`<w:p><w:r><w:drawing><wp:inline><wp:docPr id="1" descr="A chart"/><a:graphic><a:graphicData><a:blip r:embed="rId6"/></a:graphicData></a:graphic></wp:inline></w:drawing></w:r></w:p>`

	data := archive(t, map[string]string{
		documentPart:            document(body),
		numberingPart:           numberingXML,
		stylesPart:              stylesXML,
		relsPart:                relsXML,
		"word/media/image1.png": "png",
	})

	out, err := New().Convert(data)
	require.NoError(t, err)

	assert.Equal(t,
		`<h1>Course</h1>`+
			`<h2>Overview</h2>`+
			`<p><strong>Bold</strong> and <em>italic</em><br />&lt;x&gt;</p>`+
			`<ul><li>One<ul><li>Nested</li></ul></li><li>Two</li></ul>`+
			`<ol><li>First</li></ol>`+
			`<p><a href="https://go.dev/?a=1&amp;b=2">link</a></p>`+
			`<table><tr><td><p>Term</p></td><td><p>Def</p></td></tr></table>`+
			`<p><img alt="A chart" src="data:image/png;base64,cG5n" /></p>`,
		out)
}

func TestConvert_HeadingStyleWithoutStylesPart(t *testing.T) {
	body := `<w:p><w:pPr><w:pStyle w:val="Heading3"/></w:pPr><w:r><w:t>Syllabus</w:t></w:r></w:p>` +
		`<w:p><w:pPr><w:pStyle w:val="Title"/></w:pPr><w:r><w:t>Name</w:t></w:r></w:p>` +
		li("9", "0", "unknown numbering is a bullet")

	out, err := New().Convert(archive(t, map[string]string{documentPart: document(body)}))
	require.NoError(t, err)
	assert.Equal(t, `<h3>Syllabus</h3><h1>Name</h1><ul><li>unknown numbering is a bullet</li></ul>`, out)
}

func TestConvert_HTMLPassthrough(t *testing.T) {
	out, err := New().Convert([]byte("\xef\xbb\xbf  <p>Hello</p>"))
	require.NoError(t, err)
	assert.Equal(t, "  <p>Hello</p>", out)
}

func TestConvert_Errors(t *testing.T) {
	_, err := New().Convert([]byte("plain text"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrConvert))
	assert.True(t, errors.Is(err, core.ErrUnsupportedFormat))

	_, err = New().Convert(archive(t, map[string]string{"other.xml": "<x/>"}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrConvert))
	assert.Contains(t, err.Error(), documentPart)

	_, err = New().Convert(archive(t, map[string]string{documentPart: "<w:document"}))
	require.Error(t, err)
	var convErr *core.ConvertError
	require.True(t, errors.As(err, &convErr))

	_, err = New().Convert([]byte("PK\x03\x04 truncated"))
	assert.True(t, errors.Is(err, core.ErrConvert))
}
