// Package ordinal reorders sibling entries by a number embedded in their
// titles ("Module 3", "Lesson 12"). Entries without a number keep their
// input order and sort after every numbered entry.
package ordinal

import (
	"cmp"
	"regexp"
	"slices"
	"strconv"
)

var (
	modulePattern = regexp.MustCompile(`(?i)module\s*(\d+)`)
	lessonPattern = regexp.MustCompile(`(?i)lesson\s*(\d+)`)
)

// ModuleNumber parses the "Module N" ordinal from a title.
func ModuleNumber(title string) (int, bool) {
	return match(modulePattern, title)
}

// LessonNumber parses the "Lesson N" ordinal from a title.
func LessonNumber(title string) (int, bool) {
	return match(lessonPattern, title)
}

func match(re *regexp.Regexp, title string) (int, bool) {
	m := re.FindStringSubmatch(title)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

type keyed[T any] struct {
	entry      T
	hasOrdinal bool
	ordinal    int
	index      int
}

// Sort returns a new slice ordered by (hasOrdinal, ordinal, input index).
// The input slice is not modified.
func Sort[T any](entries []T, ordinalOf func(T) (int, bool)) []T {
	if len(entries) == 0 {
		return entries
	}

	keys := make([]keyed[T], len(entries))
	for i, e := range entries {
		n, ok := ordinalOf(e)
		keys[i] = keyed[T]{entry: e, hasOrdinal: ok, ordinal: n, index: i}
	}

	slices.SortStableFunc(keys, func(a, b keyed[T]) int {
		switch {
		case a.hasOrdinal && !b.hasOrdinal:
			return -1
		case !a.hasOrdinal && b.hasOrdinal:
			return 1
		case a.hasOrdinal && b.hasOrdinal && a.ordinal != b.ordinal:
			return cmp.Compare(a.ordinal, b.ordinal)
		}
		return cmp.Compare(a.index, b.index)
	})

	sorted := make([]T, len(keys))
	for i, k := range keys {
		sorted[i] = k.entry
	}
	return sorted
}
