package course

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/docpipe/core"
	"github.com/gaurav-prasanna/docpipe/core/block"
	"github.com/gaurav-prasanna/docpipe/core/locate"
)

func parse(t *testing.T, markup string) []block.Node {
	t.Helper()
	nodes, err := block.Parse(markup)
	require.NoError(t, err)
	return nodes
}

func lessonTitles(m core.Module) []string {
	titles := make([]string, len(m.Lessons))
	for i, l := range m.Lessons {
		titles[i] = l.Title
	}
	return titles
}

const dataScience = `
<h1>Data Science 101</h1>
<h2>Course Overview</h2>
<p>Learn the <a href="https://x.io">basics</a>.</p>
<h2>Course Objectives</h2>
<p>After completing this course, the learner will be able to:</p>
<ul><li>Clean data</li><li>Plot charts</li></ul>
<h2>Course Syllabus</h2>
<p>Module 2: Visualisation</p>
<p>Charts and plots for every kind of dataset.</p>
<p>Lesson 2: Bar charts</p>
<p>Lesson 1: Line charts</p>
<ul><li>Axes</li><li>Legends</li></ul>
<p>Module 1: Foundations</p>
<p>Lesson 1: Setup Lesson 2: Tooling</p>
<p>Final Examination</p>
<h2>FAQ</h2>
<p>1. Is there a certificate? Yes, on completion.</p>
<p>2. How long?</p>
<p>About six   weeks.</p>
`

func TestExtract_FullCourse(t *testing.T) {
	doc := New(nil).Extract(parse(t, dataScience), "Data Science 101")

	assert.Equal(t, "Data Science 101", doc.Title)
	assert.Equal(t, `<p>Learn the <a href="https://x.io">basics</a>.</p>`, doc.OverviewMarkup)
	assert.Equal(t, "After completing this course, the learner will be able to:", doc.ObjectivesIntro)
	assert.Equal(t, []string{"Clean data", "Plot charts"}, doc.ObjectivesList)

	require.Len(t, doc.SyllabusModules, 2)
	m1, m2 := doc.SyllabusModules[0], doc.SyllabusModules[1]

	assert.Equal(t, "Module 1: Foundations", m1.Title)
	assert.Empty(t, m1.Description, "final examination stops the description lookahead")
	assert.Equal(t, []string{"Lesson 1: Setup", "Lesson 2: Tooling"}, lessonTitles(m1))

	assert.Equal(t, "Module 2: Visualisation", m2.Title)
	assert.Equal(t, "Charts and plots for every kind of dataset.", m2.Description)
	assert.Equal(t, []string{"Lesson 1: Line charts", "Lesson 2: Bar charts"}, lessonTitles(m2))
	assert.Equal(t, []string{"Axes", "Legends"}, m2.Lessons[0].Items)
	assert.Empty(t, m2.Lessons[1].Items)

	assert.Equal(t, []core.QAPair{
		{Question: "Is there a certificate?", Answer: "Yes, on completion."},
		{Question: "How long?", Answer: "<p>About six weeks.</p>"},
	}, doc.FAQ)
}

func TestExtract_LessonMentioningOverviewKeepsSections(t *testing.T) {
	blocks := parse(t, `
<h2>Course Objectives</h2>
<p>On completion of this course you will be able to:</p>
<ul><li>Use the tools</li><li>Ship the thing</li></ul>
<h2>Course Syllabus</h2>
<p>Module 1: Overview of the Toolchain</p>
<p>Lesson 1: Installing</p>
<h2>FAQ</h2>
<p>1. Is it free? Yes.</p>`)

	doc := New(nil).Extract(blocks, "Toolchain")

	assert.Empty(t, doc.OverviewMarkup)
	assert.Equal(t, "On completion of this course you will be able to:", doc.ObjectivesIntro)
	assert.Equal(t, []string{"Use the tools", "Ship the thing"}, doc.ObjectivesList)
	require.Len(t, doc.SyllabusModules, 1)
	assert.Equal(t, "Module 1: Overview of the Toolchain", doc.SyllabusModules[0].Title)
	assert.Equal(t, []string{"Lesson 1: Installing"}, lessonTitles(doc.SyllabusModules[0]))
	assert.Equal(t, []core.QAPair{{Question: "Is it free?", Answer: "Yes."}}, doc.FAQ)
}

func TestExtract_EmptySequence(t *testing.T) {
	doc := New(nil).Extract(nil, "")

	assert.Equal(t, DefaultTitle, doc.Title)
	assert.Empty(t, doc.SyllabusModules)
	assert.Empty(t, doc.OverviewMarkup)
	assert.Empty(t, doc.ObjectivesList)
	assert.Empty(t, doc.FAQ)
}

func TestExtract_FreshPerRun(t *testing.T) {
	e := New(nil)
	first := e.Extract(parse(t, dataScience), "A")
	second := e.Extract(parse(t, `<p>nothing</p>`), "B")

	assert.Len(t, first.SyllabusModules, 2)
	assert.Empty(t, second.SyllabusModules)
	assert.Empty(t, second.FAQ)
}

func TestSyllabus_ImplicitModule(t *testing.T) {
	blocks := parse(t, `
<h2>Course Content</h2>
<p>Lesson 1: Basics</p>
<ul><li>Variables</li></ul>`)

	modules := New(nil).Extract(blocks, "Go").SyllabusModules

	require.Len(t, modules, 1)
	assert.Equal(t, "Go Content", modules[0].Title)
	require.Len(t, modules[0].Lessons, 1)
	assert.Equal(t, core.Lesson{Title: "Lesson 1: Basics", Items: []string{"Variables"}}, modules[0].Lessons[0])
}

func TestSyllabus_SynthesizedLessonFromListItem(t *testing.T) {
	blocks := parse(t, `
<h2>Syllabus</h2>
<p>Module 1: Start</p>
<li>Understanding the landscape of modern tooling</li>
<li>Short</li>`)

	modules := New(nil).Extract(blocks, "").SyllabusModules

	require.Len(t, modules, 1)
	require.Len(t, modules[0].Lessons, 1)
	lesson := modules[0].Lessons[0]
	assert.Equal(t, "Lesson 1: Understanding the landscape of modern tooling...", lesson.Title)
	assert.Equal(t, []string{"Understanding the landscape of modern tooling", "Short"}, lesson.Items)
}

func TestSyllabus_SynthesizedTitleIsTruncated(t *testing.T) {
	long := "An item whose text keeps going well past the fifty character limit"
	blocks := parse(t, `<h2>Syllabus</h2><p>Module 1: Start</p><li>`+long+`</li>`)

	modules := New(nil).Extract(blocks, "").SyllabusModules

	require.Len(t, modules, 1)
	assert.Equal(t, "Lesson 1: "+long[:50]+"...", modules[0].Lessons[0].Title)
}

func TestSyllabus_NestedLessonList(t *testing.T) {
	blocks := parse(t, `
<h2>Syllabus</h2>
<p>Module 1: Core</p>
<ul>
<li>Lesson 2: Types<ul><li>Structs</li></ul></li>
<li>Lesson 1: Values<ul><li>Ints</li><li>Strings</li></ul></li>
</ul>`)

	modules := New(nil).Extract(blocks, "").SyllabusModules

	require.Len(t, modules, 1)
	assert.Equal(t, []core.Lesson{
		{Title: "Lesson 1: Values", Items: []string{"Ints", "Strings"}},
		{Title: "Lesson 2: Types", Items: []string{"Structs"}},
	}, modules[0].Lessons)
}

func TestSyllabus_LessonBlockWithNestedList(t *testing.T) {
	blocks := parse(t, `
<h2>Syllabus</h2>
<p>Module 1: Core</p>
<div>Lesson 1: Setup<ul><li>Install</li><li>Lesson 9: skipped marker</li></ul></div>`)

	modules := New(nil).Extract(blocks, "").SyllabusModules

	require.Len(t, modules, 1)
	require.Len(t, modules[0].Lessons, 1)
	assert.Equal(t, "Lesson 1: Setup", modules[0].Lessons[0].Title)
	assert.Equal(t, []string{"Install"}, modules[0].Lessons[0].Items)
}

func TestSyllabus_DescriptionFromLaterParagraph(t *testing.T) {
	blocks := parse(t, `
<h2>Syllabus</h2>
<p>Module 1: Core</p>
<p>Lesson 1: Setup</p>
<ul><li>Install</li></ul>
<p>This module covers the core language features.</p>
<p>Another long paragraph that must not replace it.</p>`)

	modules := New(nil).Extract(blocks, "").SyllabusModules

	require.Len(t, modules, 1)
	assert.Equal(t, "This module covers the core language features.", modules[0].Description)
}

func TestSyllabus_UppercaseModuleMarkerAndHeadingModules(t *testing.T) {
	blocks := parse(t, `
<h2>Syllabus</h2>
<p>MODULE 2 Advanced</p>
<p>Lesson 1: Deep dive</p>
<p>intro</p>
<h3>Module 1: Basics</h3>
<p>Lesson 1: Hello</p>`)

	modules := New(nil).Extract(blocks, "").SyllabusModules

	require.Len(t, modules, 2)
	assert.Equal(t, "Module 1: Basics", modules[0].Title)
	assert.Equal(t, "MODULE 2 Advanced", modules[1].Title)
}

func TestSyllabus_HeadingTerminatesScan(t *testing.T) {
	blocks := parse(t, `
<h2>Syllabus</h2>
<p>Module 1: Core</p>
<p>Lesson 1: Setup</p>
<h2>Instructor</h2>
<p>Lesson 2: Not part of the syllabus</p>`)

	modules := New(nil).Extract(blocks, "").SyllabusModules

	require.Len(t, modules, 1)
	assert.Equal(t, []string{"Lesson 1: Setup"}, lessonTitles(modules[0]))
}

func TestSyllabus_WithoutHeadingStillScansMarkers(t *testing.T) {
	blocks := parse(t, `<p>Module 1: Alpha</p><p>Lesson 1: One</p>`)
	e := New(nil)
	layout := locate.New().Locate(blocks)

	require.False(t, layout.Window(locate.Syllabus).Found)
	modules := e.Syllabus(blocks, layout, "Course")
	require.Len(t, modules, 1)
	assert.Equal(t, "Module 1: Alpha", modules[0].Title)
	assert.Equal(t, []string{"Lesson 1: One"}, lessonTitles(modules[0]))
}

func TestSyllabus_FlatFallback(t *testing.T) {
	blocks := parse(t, `
<h2>Syllabus</h2>
<p>1. Introduction to the tools</p>
<ul><li>Editors</li></ul>
<h3>Advanced usage</h3>
<p>2. Wrap up</p>`)

	modules := New(nil).Extract(blocks, "Intro Course").SyllabusModules

	require.Len(t, modules, 1)
	assert.Equal(t, "Intro Course Content", modules[0].Title)
	assert.Equal(t, []string{"1. Introduction to the tools", "Advanced usage", "2. Wrap up"}, lessonTitles(modules[0]))
	assert.Equal(t, []string{"Editors"}, modules[0].Lessons[0].Items)
}

func TestSyllabus_NoFallbackWithoutHeading(t *testing.T) {
	blocks := parse(t, `<p>1. Something numbered</p><h3>Short heading</h3>`)

	assert.Empty(t, New(nil).Extract(blocks, "").SyllabusModules)
}

func TestObjectives_BareListItemsAndNoIntro(t *testing.T) {
	blocks := parse(t, `
<h3>Objectives</h3>
<li>Read <em>code</em></li>
<p>Short</p>
<ol><li>Write tests</li></ol>
<h2>Syllabus</h2>`)

	doc := New(nil).Extract(blocks, "")

	assert.Empty(t, doc.ObjectivesIntro)
	assert.Equal(t, []string{"Read <em>code</em>", "Write tests"}, doc.ObjectivesList)
}

func TestSplitLessons(t *testing.T) {
	assert.Equal(t, []string{"Lesson 1: A", "lesson 2: B"}, splitLessons("Intro Lesson 1: A lesson 2: B"))
	assert.Empty(t, splitLessons("No markers here"))
}
