// Package locate finds the lexical section boundaries of a course document
// (Overview, Objectives, Syllabus, FAQ) in a flat block sequence.
//
// Every section takes its earliest eligible matching block (see Rule). A
// section's window ends at the nearest later start of any other located
// section, at its own terminator, or at the end of the sequence, whichever
// comes first, so windows never overlap. No two sections share a start
// block. A section that is not found yields an empty window.
package locate

import (
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/docpipe/core/block"
)

// Section identifies one course section.
type Section int

const (
	Overview Section = iota
	Objectives
	Syllabus
	FAQ
)

// Order is the order sections are located in.
var Order = []Section{Overview, Objectives, Syllabus, FAQ}

func (s Section) String() string {
	switch s {
	case Overview:
		return "overview"
	case Objectives:
		return "objectives"
	case Syllabus:
		return "syllabus"
	case FAQ:
		return "faq"
	}
	return "unknown"
}

// Window is a half-open block range [Start, End). Start is the index of the
// block that located the section.
type Window struct {
	Start int
	End   int
	Found bool
}

// Body returns the range following the locating block.
func (w Window) Body() (int, int) {
	if !w.Found {
		return 0, 0
	}
	return w.Start + 1, w.End
}

// Empty reports whether the window holds no body blocks.
func (w Window) Empty() bool {
	from, to := w.Body()
	return from >= to
}

// Marker is a lexical rule over one block. A block matches when any positive
// signal fires and no Exclude keyword is present.
type Marker struct {
	// Keywords match as lower-case substrings of any block's text.
	Keywords []string
	// HeadingKeywords match only when the block is an h1..h6.
	HeadingKeywords []string
	// Patterns match against the lower-case text.
	Patterns []*regexp.Regexp
	// Contains match case-sensitively against the unmodified text.
	Contains []string
	// AnyHeading matches headings of level 1..HeadingMaxLevel (6 when zero)
	// that lie more than HeadingAfter blocks past the window start and
	// contain none of HeadingExclude. Used by terminators.
	AnyHeading      bool
	HeadingMaxLevel int
	HeadingAfter    int
	HeadingExclude  []string
	// Exclude vetoes the match.
	Exclude []string
}

// Match reports whether the block at offset (relative to the window start)
// satisfies the marker.
func (m Marker) Match(n block.Node, offset int) bool {
	text := n.Text()
	if text == "" {
		return false
	}
	lower := strings.ToLower(text)
	if containsAny(lower, m.Exclude) {
		return false
	}
	if containsAny(lower, m.Keywords) {
		return true
	}
	if block.IsHeading(n) && containsAny(lower, m.HeadingKeywords) {
		return true
	}
	for _, re := range m.Patterns {
		if re.MatchString(lower) {
			return true
		}
	}
	for _, c := range m.Contains {
		if strings.Contains(text, c) {
			return true
		}
	}
	if m.AnyHeading && offset > m.HeadingAfter && m.headingInRange(n) &&
		!containsAny(lower, m.HeadingExclude) {
		return true
	}
	return false
}

func (m Marker) headingInRange(n block.Node) bool {
	maxLevel := m.HeadingMaxLevel
	if maxLevel == 0 {
		maxLevel = 6
	}
	return block.IsHeadingUpTo(n, maxLevel)
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// Rule pairs the marker that opens a section with an optional terminator
// that closes it early.
type Rule struct {
	Start      Marker
	Terminator *Marker
	// After lists sections whose terminated window, when located, the
	// search starts behind. The first located one wins.
	After []Section
	// Yield skips matches inside the body of another section's window.
	// Yielding sections are located after all others.
	Yield bool
}

// ObjectivesPattern matches numbered objective headings ("1.2 Course Objectives").
var ObjectivesPattern = regexp.MustCompile(`^\d+\.\d*\s*.*objectives`)

// DefaultRules are the course section marker sets.
var DefaultRules = map[Section]Rule{
	Overview: {
		Start: Marker{Keywords: []string{"overview"}},
		Yield: true,
	},
	Objectives: {
		Start: Marker{
			Keywords:        []string{"course objectives", "learning objectives"},
			HeadingKeywords: []string{"objectives"},
			Patterns:        []*regexp.Regexp{ObjectivesPattern},
		},
		Terminator: &Marker{
			Keywords:        []string{"syllabus", "course content", "faq", "frequently asked"},
			Patterns:        []*regexp.Regexp{regexp.MustCompile(`^1\.3`)},
			AnyHeading:      true,
			HeadingMaxLevel: 3,
			HeadingExclude:  []string{"objectives"},
		},
	},
	Syllabus: {
		Start: Marker{
			Keywords:        []string{"course content", "syllabus"},
			HeadingKeywords: []string{"lessons", "modules"},
			Patterns:        []*regexp.Regexp{regexp.MustCompile(`^1\.3\b`)},
			Exclude:         []string{"course objectives"},
		},
		After: []Section{Objectives},
	},
	FAQ: {
		Start: Marker{HeadingKeywords: []string{"faq", "frequently asked questions"}},
		Terminator: &Marker{
			Contains:       []string{"For Online Course Page:"},
			AnyHeading:     true,
			HeadingAfter:   3,
			HeadingExclude: []string{"faq"},
		},
	},
}

// Layout holds the located window of each section.
type Layout struct {
	Windows map[Section]Window
	Len     int
}

// Window returns the window of s (empty when not found).
func (l Layout) Window(s Section) Window {
	return l.Windows[s]
}

// Locator resolves section windows with a rule table.
type Locator struct {
	rules map[Section]Rule
}

// New creates a Locator using DefaultRules.
func New() *Locator {
	return &Locator{rules: DefaultRules}
}

// NewWithRules creates a Locator with a custom rule table.
func NewWithRules(rules map[Section]Rule) *Locator {
	return &Locator{rules: rules}
}

// Locate finds every section window in blocks.
func (l *Locator) Locate(blocks []block.Node) Layout {
	starts := make(map[Section]int, len(Order))
	claimed := func(i int) bool {
		for _, st := range starts {
			if st == i {
				return true
			}
		}
		return false
	}

	for _, s := range Order {
		rule, ok := l.rules[s]
		if !ok || rule.Yield {
			continue
		}
		from := 0
		for _, dep := range rule.After {
			if st, ok := starts[dep]; ok {
				from = l.terminated(blocks, dep, st)
				break
			}
		}
		if idx := search(blocks, from, rule.Start, claimed); idx != -1 {
			starts[s] = idx
		}
	}

	// Yielding sections may not start inside a window located above.
	anchored := l.windows(blocks, starts)
	inside := func(i int) bool {
		if claimed(i) {
			return true
		}
		for _, w := range anchored {
			if i > w.Start && i < w.End {
				return true
			}
		}
		return false
	}
	for _, s := range Order {
		rule, ok := l.rules[s]
		if !ok || !rule.Yield {
			continue
		}
		if idx := search(blocks, 0, rule.Start, inside); idx != -1 {
			starts[s] = idx
		}
	}

	return Layout{Windows: l.windows(blocks, starts), Len: len(blocks)}
}

// windows closes every located start at the nearest later start or at its
// terminator.
func (l *Locator) windows(blocks []block.Node, starts map[Section]int) map[Section]Window {
	out := make(map[Section]Window, len(starts))
	for s, start := range starts {
		end := len(blocks)
		for _, other := range starts {
			if other > start && other < end {
				end = other
			}
		}
		if t := l.rules[s].Terminator; t != nil {
			if idx := first(blocks, start+1, end, *t, start); idx != -1 {
				end = idx
			}
		}
		out[s] = Window{Start: start, End: end, Found: true}
	}
	return out
}

// terminated returns the end of the section starting at start, bounded only
// by its own terminator.
func (l *Locator) terminated(blocks []block.Node, s Section, start int) int {
	if t := l.rules[s].Terminator; t != nil {
		if idx := first(blocks, start+1, len(blocks), *t, start); idx != -1 {
			return idx
		}
	}
	return len(blocks)
}

// LocateSection finds a single section searched from the start of blocks,
// bounded only by its own terminator.
func (l *Locator) LocateSection(blocks []block.Node, s Section) Window {
	rule, ok := l.rules[s]
	if !ok {
		return Window{}
	}
	start := first(blocks, 0, len(blocks), rule.Start, -1)
	if start == -1 {
		return Window{}
	}
	return Window{Start: start, End: l.terminated(blocks, s, start), Found: true}
}

// search returns the first index at or after from that matches m and is not
// skipped, or -1.
func search(blocks []block.Node, from int, m Marker, skip func(int) bool) int {
	for from < len(blocks) {
		idx := first(blocks, from, len(blocks), m, -1)
		if idx == -1 || !skip(idx) {
			return idx
		}
		from = idx + 1
	}
	return -1
}

// first returns the first index in [from, to) matching m, or -1. Offsets
// passed to the marker are relative to origin when origin >= 0.
func first(blocks []block.Node, from, to int, m Marker, origin int) int {
	for i := from; i < to; i++ {
		offset := i
		if origin >= 0 {
			offset = i - origin
		}
		if m.Match(blocks[i], offset) {
			return i
		}
	}
	return -1
}
