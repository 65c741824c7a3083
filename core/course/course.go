// Package course extracts the structured course model (overview, objectives,
// syllabus and FAQ) from a block sequence.
package course

import (
	"github.com/gaurav-prasanna/docpipe/core"
	"github.com/gaurav-prasanna/docpipe/core/block"
	"github.com/gaurav-prasanna/docpipe/core/faq"
	"github.com/gaurav-prasanna/docpipe/core/locate"
	"github.com/gaurav-prasanna/docpipe/core/logging"
	"github.com/gaurav-prasanna/docpipe/core/ordinal"
)

// DefaultTitle is used when no display title is given.
const DefaultTitle = "Course Name"

// Extractor builds CourseDocuments. It holds no per-document state.
type Extractor struct {
	locator *locate.Locator
	faq     *faq.Extractor
	log     *logging.Logger
}

// New creates an Extractor with the default section rules.
func New(log *logging.Logger) *Extractor {
	return &Extractor{
		locator: locate.New(),
		faq:     &faq.Extractor{CollapseAnswers: true},
		log:     logging.OrNop(log),
	}
}

// Extract builds a fresh CourseDocument from blocks. Sections that cannot
// be located come back empty.
func (e *Extractor) Extract(blocks []block.Node, title string) *core.CourseDocument {
	if title == "" {
		title = DefaultTitle
	}
	layout := e.locator.Locate(blocks)
	for _, s := range locate.Order {
		if !layout.Window(s).Found {
			e.log.Debug("course section not found", "section", s.String(), "blocks", len(blocks))
		}
	}

	doc := &core.CourseDocument{Title: title}
	doc.OverviewMarkup = overview(blocks, layout.Window(locate.Overview))
	doc.ObjectivesIntro, doc.ObjectivesList = objectives(blocks, layout.Window(locate.Objectives))
	doc.SyllabusModules = e.Syllabus(blocks, layout, title)

	from, to := layout.Window(locate.FAQ).Body()
	doc.FAQ = e.faq.Extract(blocks[from:to])

	e.log.Info("course extracted",
		"modules", len(doc.SyllabusModules),
		"objectives", len(doc.ObjectivesList),
		"faq_pairs", len(doc.FAQ),
	)
	return doc
}

// Syllabus builds the sorted module hierarchy for a located layout.
func (e *Extractor) Syllabus(blocks []block.Node, layout locate.Layout, title string) []core.Module {
	from, to := syllabusRange(layout)
	window := blocks[from:to]

	modules := newBuilder(title).run(window)
	if len(modules) == 0 && layout.Window(locate.Syllabus).Found {
		e.log.Debug("no modules found, using flat lesson fallback", "blocks", len(window))
		modules = flatLessons(window, title+" Content")
	}

	for i := range modules {
		modules[i].Lessons = ordinal.Sort(modules[i].Lessons, func(l core.Lesson) (int, bool) {
			return ordinal.LessonNumber(l.Title)
		})
	}
	return ordinal.Sort(modules, func(m core.Module) (int, bool) {
		return ordinal.ModuleNumber(m.Title)
	})
}

// syllabusRange is the located syllabus window including its heading. When
// no syllabus heading exists the range after the objectives window is
// scanned instead, up to the FAQ section.
func syllabusRange(layout locate.Layout) (int, int) {
	if w := layout.Window(locate.Syllabus); w.Found {
		return w.Start, w.End
	}
	from := 0
	if w := layout.Window(locate.Objectives); w.Found {
		from = w.End
	}
	to := layout.Len
	if w := layout.Window(locate.FAQ); w.Found && w.Start >= from {
		to = w.Start
	}
	return from, to
}
