package course

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/gaurav-prasanna/docpipe/core"
	"github.com/gaurav-prasanna/docpipe/core/block"
	"github.com/gaurav-prasanna/docpipe/core/locate"
)

const (
	descriptionLookahead = 2
	minDescriptionLen    = 20
	minSynthLessonLen    = 10
	synthTitleLen        = 50
	terminatorOffset     = 2
)

var (
	moduleMarker      = regexp.MustCompile(`(?i)^Module\s*\d+:`)
	moduleMarkerUpper = regexp.MustCompile(`^MODULE\s*\d+`)
	lessonMarker      = regexp.MustCompile(`(?i)lesson\s*\d+:`)
	lessonStart       = regexp.MustCompile(`(?i)^Lesson\s*\d+:`)
	lessonStartUpper  = regexp.MustCompile(`^LESSON\s*\d+`)
)

func isModuleMarker(text string) bool {
	return moduleMarker.MatchString(text) || moduleMarkerUpper.MatchString(text)
}

func isLessonStart(text string) bool {
	return lessonStart.MatchString(text) || lessonStartUpper.MatchString(text)
}

func isMarker(text string) bool {
	return isModuleMarker(text) || isLessonStart(text)
}

func containsFinalExam(lower string) bool {
	return strings.Contains(lower, "final examination")
}

// splitLessons splits text at every "Lesson N:" marker. Text before the first
// marker is discarded.
func splitLessons(text string) []string {
	locs := lessonMarker.FindAllStringIndex(text, -1)
	segments := make([]string, 0, len(locs))
	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		if seg := strings.TrimSpace(text[loc[0]:end]); seg != "" {
			segments = append(segments, seg)
		}
	}
	return segments
}

// listItems returns the non-empty, non-lesson inner markup of every li in n.
func listItems(n block.Node) []string {
	var items []string
	for _, li := range n.Find("li") {
		item := li.InnerMarkup()
		if item == "" || isLessonStart(li.Text()) {
			continue
		}
		items = append(items, item)
	}
	return items
}

// phase is the builder's tagged state.
type phase int

const (
	noModule phase = iota
	inModule
	inModuleAndLesson
)

// state is the live builder record. Completed modules are copied into the
// modules arena on flush, so no pointer into an open module escapes.
type state struct {
	phase   phase
	module  core.Module
	lesson  core.Lesson
	modules []core.Module
}

func (s *state) flushLesson() {
	if s.phase != inModuleAndLesson {
		return
	}
	s.module.Lessons = append(s.module.Lessons, s.lesson)
	s.lesson = core.Lesson{}
	s.phase = inModule
}

func (s *state) flushModule() {
	s.flushLesson()
	if s.phase != inModule {
		return
	}
	s.modules = append(s.modules, s.module)
	s.module = core.Module{}
	s.phase = noModule
}

func (s *state) openModule(m core.Module) {
	s.flushModule()
	s.module = m
	s.phase = inModule
}

// ensureModule opens an implicit module when none is open.
func (s *state) ensureModule(title string) {
	if s.phase == noModule {
		s.openModule(core.Module{Title: title})
	}
}

func (s *state) openLesson(l core.Lesson) {
	s.flushLesson()
	s.lesson = l
	s.phase = inModuleAndLesson
}

func (s *state) hasModule() bool { return s.phase != noModule }
func (s *state) hasLesson() bool { return s.phase == inModuleAndLesson }

// outcome tells the scan loop what to do after a rule fires.
type outcome int

const (
	next outcome = iota
	halt
)

// cursor is the block a rule is evaluated against.
type cursor struct {
	blocks []block.Node // the scanned range
	i      int          // index into blocks
	node   block.Node
	text   string
	lower  string
}

// rule is one (predicate, action) entry of the syllabus rule table.
type rule struct {
	name  string
	match func(b *builder, c cursor) bool
	apply func(b *builder, c cursor) outcome
}

// builder runs the syllabus state machine over one block range.
type builder struct {
	state
	implicitTitle string
	rules         []rule
}

func newBuilder(courseTitle string) *builder {
	return &builder{
		implicitTitle: courseTitle + " Content",
		rules:         syllabusRules,
	}
}

// syllabusRules are evaluated in order; the first match handles the block.
var syllabusRules = []rule{
	{
		name: "section-title",
		match: func(_ *builder, c cursor) bool {
			if isMarker(c.text) {
				return false
			}
			return strings.Contains(c.lower, "course objectives") ||
				locate.ObjectivesPattern.MatchString(c.lower) ||
				locate.DefaultRules[locate.Syllabus].Start.Match(c.node, c.i)
		},
		apply: func(*builder, cursor) outcome { return next },
	},
	{
		name: "terminator",
		match: func(_ *builder, c cursor) bool {
			if containsFinalExam(c.lower) || strings.Contains(c.lower, "faq") ||
				strings.Contains(c.lower, "frequently asked questions") {
				return true
			}
			return block.IsHeadingUpTo(c.node, 3) && c.i > terminatorOffset && !isMarker(c.text)
		},
		apply: func(*builder, cursor) outcome { return halt },
	},
	{
		name:  "module",
		match: func(_ *builder, c cursor) bool { return isModuleMarker(c.text) },
		apply: (*builder).applyModule,
	},
	{
		name:  "lesson-list",
		match: func(_ *builder, c cursor) bool { return isLessonList(c.node) },
		apply: (*builder).applyLessonList,
	},
	{
		name:  "lesson",
		match: func(_ *builder, c cursor) bool { return lessonMarker.MatchString(c.text) },
		apply: (*builder).applyLesson,
	},
	{
		name: "lesson-items",
		match: func(b *builder, c cursor) bool {
			return c.node.Tag() == "ul" && b.hasLesson()
		},
		apply: func(b *builder, c cursor) outcome {
			b.lesson.Items = append(b.lesson.Items, listItems(c.node)...)
			return next
		},
	},
	{
		name:  "list-item",
		match: func(_ *builder, c cursor) bool { return c.node.Tag() == "li" && !isLessonStart(c.text) },
		apply: (*builder).applyListItem,
	},
	{
		name: "description",
		match: func(b *builder, c cursor) bool {
			return c.node.Tag() == "p" && b.hasModule() && b.module.Description == "" &&
				utf8.RuneCountInString(c.text) > minDescriptionLen && !isMarker(c.text)
		},
		apply: func(b *builder, c cursor) outcome {
			b.module.Description = c.text
			return next
		},
	},
}

// run scans blocks and returns the completed (unsorted) modules.
func (b *builder) run(blocks []block.Node) []core.Module {
	for i, n := range blocks {
		text := n.Text()
		if text == "" {
			continue
		}
		c := cursor{blocks: blocks, i: i, node: n, text: text, lower: strings.ToLower(text)}
		if b.step(c) == halt {
			break
		}
	}
	b.flushModule()
	return b.modules
}

func (b *builder) step(c cursor) outcome {
	for _, r := range b.rules {
		if r.match(b, c) {
			return r.apply(b, c)
		}
	}
	return next
}

func (b *builder) applyModule(c cursor) outcome {
	b.openModule(core.Module{Title: c.text})

	// The description is the first plain paragraph of the next two blocks,
	// unless a final examination marker comes first.
	for j := c.i + 1; j < len(c.blocks) && j <= c.i+descriptionLookahead; j++ {
		n := c.blocks[j]
		text := n.Text()
		if containsFinalExam(strings.ToLower(text)) {
			break
		}
		if n.Tag() == "p" && text != "" && !isMarker(text) {
			b.module.Description = text
			break
		}
	}
	return next
}

func (b *builder) applyLesson(c cursor) outcome {
	b.ensureModule(b.implicitTitle)

	title := block.OwnText(c.node)
	segments := splitLessons(title)
	if len(segments) > 0 {
		title = segments[0]
	}

	lesson := core.Lesson{Title: title}
	if nested := c.node.Find("ul"); len(nested) > 0 {
		lesson.Items = listItems(nested[0])
	}
	b.openLesson(lesson)

	for _, seg := range segments[min(1, len(segments)):] {
		b.module.Lessons = append(b.module.Lessons, core.Lesson{Title: seg})
	}
	return next
}

// isLessonList reports whether n is a list whose own items carry lesson
// markers, e.g. <ul><li>Lesson 1: A<ul><li>x</li></ul></li>...</ul>.
func isLessonList(n block.Node) bool {
	if tag := n.Tag(); tag != "ul" && tag != "ol" {
		return false
	}
	for _, li := range n.Children() {
		if li.Tag() == "li" && isLessonStart(block.OwnText(li)) {
			return true
		}
	}
	return false
}

// applyLessonList normalizes a nested lesson list: each marker item opens a
// lesson seeded with its nested items, other items join the open lesson.
func (b *builder) applyLessonList(c cursor) outcome {
	b.ensureModule(b.implicitTitle)
	for _, li := range c.node.Children() {
		if li.Tag() != "li" {
			continue
		}
		own := block.OwnText(li)
		if isLessonStart(own) {
			b.openLesson(core.Lesson{Title: own, Items: listItems(li)})
			continue
		}
		if b.hasLesson() {
			if item := li.InnerMarkup(); item != "" {
				b.lesson.Items = append(b.lesson.Items, item)
			}
		}
	}
	return next
}

func (b *builder) applyListItem(c cursor) outcome {
	switch {
	case b.hasLesson():
		b.lesson.Items = append(b.lesson.Items, c.node.InnerMarkup())
	case b.hasModule() && utf8.RuneCountInString(c.text) > minSynthLessonLen:
		b.openLesson(core.Lesson{
			Title: synthLessonTitle(len(b.module.Lessons)+1, c.text),
			Items: []string{c.node.InnerMarkup()},
		})
	}
	return next
}

func synthLessonTitle(n int, text string) string {
	r := []rune(text)
	if len(r) > synthTitleLen {
		r = r[:synthTitleLen]
	}
	return fmt.Sprintf("Lesson %d: %s...", n, string(r))
}
