package extract

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/gaurav-prasanna/docpipe/core"
	"github.com/gaurav-prasanna/docpipe/core/convert"
	"github.com/gaurav-prasanna/docpipe/core/logging"
)

// memReader serves documents from memory.
type memReader map[string]string

func (m memReader) Read(_ context.Context, path string) ([]byte, error) {
	doc, ok := m[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", core.ErrRead, path)
	}
	return []byte(doc), nil
}

const coursePage = `<html><head><style>p{}</style></head><body>
<nav><a href="/">Home</a></nav>
<main>
<h2>Overview</h2><p>Welcome.</p>
<h2>Syllabus</h2><p>Module 1: Start</p><p>Lesson 1: Hello</p>
<script>var x = 1;</script>
</main>
<footer>(c)</footer>
</body></html>`

func newPipeline() *Pipeline {
	return New(memReader{
		"course.html":   coursePage,
		"blog.html":     `<h1>My first post</h1><p>Hello <b>world</b></p>`,
		"glossary.html": `<table><tr><td>Term</td><td>Definition</td></tr><tr><td>Go</td><td>A language</td></tr></table>`,
		"notes.txt":     "just text",
	}, convert.New(), nil)
}

func TestPipeline_Course(t *testing.T) {
	doc, err := newPipeline().Course(context.Background(), "course.html", "Intro")
	require.NoError(t, err)

	assert.Equal(t, "Intro", doc.Title)
	assert.Equal(t, "<p>Welcome.</p>", doc.OverviewMarkup)
	require.Len(t, doc.SyllabusModules, 1)
	assert.Equal(t, "Module 1: Start", doc.SyllabusModules[0].Title)
}

func TestPipeline_BlogAndGlossary(t *testing.T) {
	p := newPipeline()

	post, err := p.Blog(context.Background(), "blog.html")
	require.NoError(t, err)
	assert.Equal(t, "My first post", post.Title)
	require.Len(t, post.ContentUnits, 1)
	assert.Equal(t, "Hello <b>world</b>", post.ContentUnits[0].Markup)

	g, err := p.Glossary(context.Background(), "glossary.html")
	require.NoError(t, err)
	assert.Equal(t, []core.GlossaryEntry{{Term: "Go", DefinitionMarkup: "A language"}}, g.Entries)
}

func TestPipeline_LogsCarrySource(t *testing.T) {
	obs, logs := observer.New(zap.DebugLevel)
	p := New(memReader{"glossary.html": `<table><tr><td>T</td><td>D</td></tr></table>`},
		convert.New(), &logging.Logger{SugaredLogger: zap.New(obs).Sugar()})

	_, err := p.Glossary(context.Background(), "glossary.html")
	require.NoError(t, err)

	built := logs.FilterMessage("block sequence built").All()
	require.Len(t, built, 1)
	assert.Equal(t, "glossary.html", built[0].ContextMap()["source"])

	extracted := logs.FilterMessage("glossary extracted").All()
	require.Len(t, extracted, 1)
	assert.Equal(t, "glossary.html", extracted[0].ContextMap()["source"])
	assert.EqualValues(t, 0, extracted[0].ContextMap()["entries"])
}

func TestPipeline_Errors(t *testing.T) {
	p := newPipeline()

	_, err := p.Course(context.Background(), "missing.docx", "")
	assert.True(t, errors.Is(err, core.ErrRead))

	_, err = p.Blog(context.Background(), "notes.txt")
	assert.True(t, errors.Is(err, core.ErrConvert))
	assert.True(t, errors.Is(err, core.ErrUnsupportedFormat))
}

func TestSanitize(t *testing.T) {
	out, err := Sanitize(coursePage)
	require.NoError(t, err)

	assert.NotContains(t, out, "script")
	assert.NotContains(t, out, "Home")
	assert.NotContains(t, out, "(c)")
	assert.Contains(t, out, "<p>Lesson 1: Hello</p>")

	frag, err := Sanitize(`<p>a</p><p>b</p>`)
	require.NoError(t, err)
	assert.Equal(t, "<p>a</p><p>b</p>", frag)
}
