package ordinal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSort_ModulesAscendingThenUnnumbered(t *testing.T) {
	in := []string{"Module 2: X", "Module 1: Y", "Module A"}
	got := Sort(in, ModuleNumber)

	assert.Equal(t, []string{"Module 1: Y", "Module 2: X", "Module A"}, got)
	assert.Equal(t, []string{"Module 2: X", "Module 1: Y", "Module A"}, in, "input must not be reordered")
}

func TestSort_UnnumberedKeepInputOrder(t *testing.T) {
	in := []string{"Intro", "Module 10: Z", "Wrap-up", "Module 3: Q", "Appendix"}
	got := Sort(in, ModuleNumber)

	assert.Equal(t, []string{"Module 3: Q", "Module 10: Z", "Intro", "Wrap-up", "Appendix"}, got)
}

func TestSort_EqualOrdinalsAreStable(t *testing.T) {
	in := []string{"Lesson 2: b", "Lesson 1: a", "Lesson 2: c", "Lesson 1: d"}
	got := Sort(in, LessonNumber)

	assert.Equal(t, []string{"Lesson 1: a", "Lesson 1: d", "Lesson 2: b", "Lesson 2: c"}, got)
}

func TestSort_Empty(t *testing.T) {
	assert.Empty(t, Sort([]string{}, ModuleNumber))
	assert.Nil(t, Sort[string](nil, ModuleNumber))
}

func TestNumberExtractors(t *testing.T) {
	tests := []struct {
		title  string
		module int
		hasMod bool
		lesson int
		hasLes bool
	}{
		{"Module 4: Basics", 4, true, 0, false},
		{"MODULE12 Overview", 12, true, 0, false},
		{"lesson 7: Loops", 0, false, 7, true},
		{"Module 2 - Lesson 3", 2, true, 3, true},
		{"Introduction", 0, false, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			n, ok := ModuleNumber(tt.title)
			assert.Equal(t, tt.hasMod, ok)
			assert.Equal(t, tt.module, n)

			n, ok = LessonNumber(tt.title)
			assert.Equal(t, tt.hasLes, ok)
			assert.Equal(t, tt.lesson, n)
		})
	}
}
