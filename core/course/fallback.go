package course

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/gaurav-prasanna/docpipe/core"
	"github.com/gaurav-prasanna/docpipe/core/block"
	"github.com/gaurav-prasanna/docpipe/core/locate"
)

const (
	flatTerminatorOffset = 3
	maxHeadingLessonLen  = 100
)

var numberedText = regexp.MustCompile(`\d+\.`)

// flatLessons is the fallback extraction used when the state machine found
// no modules under a located syllabus heading. It treats numbered
// paragraphs and short h3/h4 headings as lesson titles and wraps every
// lesson in a single synthetic module.
func flatLessons(blocks []block.Node, moduleTitle string) []core.Module {
	var (
		lessons   []core.Lesson
		current   *core.Lesson
		inSection bool
	)
	flush := func() {
		if current != nil {
			lessons = append(lessons, *current)
			current = nil
		}
	}

	for i, n := range blocks {
		text := n.Text()
		if text == "" {
			continue
		}
		lower := strings.ToLower(text)

		if strings.Contains(lower, "course objectives") || locate.ObjectivesPattern.MatchString(lower) {
			continue
		}
		if !inSection {
			if strings.Contains(lower, "lessons") || locate.DefaultRules[locate.Syllabus].Start.Match(n, i) {
				inSection = true
			}
			continue
		}
		if containsFinalExam(lower) || strings.Contains(lower, "faq") ||
			(block.IsHeadingUpTo(n, 3) && i > flatTerminatorOffset && !strings.Contains(lower, "lesson")) {
			break
		}

		switch {
		case isFlatLessonTitle(n, text):
			flush()
			current = &core.Lesson{Title: text}
			if nested := n.Find("ul"); len(nested) > 0 {
				for _, li := range nested[0].Find("li") {
					if item := li.InnerMarkup(); item != "" {
						current.Items = append(current.Items, item)
					}
				}
			}
		case n.Tag() == "ul" && current != nil:
			current.Items = append(current.Items, listItems(n)...)
		case n.Tag() == "li" && current != nil && !lessonStart.MatchString(text):
			current.Items = append(current.Items, n.InnerMarkup())
		}
	}
	flush()

	if len(lessons) == 0 {
		return nil
	}
	return []core.Module{{Title: moduleTitle, Lessons: lessons}}
}

func isFlatLessonTitle(n block.Node, text string) bool {
	if isLessonStart(text) {
		return true
	}
	if n.Tag() == "p" && numberedText.MatchString(text) {
		return true
	}
	level := block.HeadingLevel(n)
	return (level == 3 || level == 4) && utf8.RuneCountInString(text) < maxHeadingLessonLen
}
