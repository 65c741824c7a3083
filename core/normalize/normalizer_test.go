package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	md, err := New().Normalize(`<style>.x{}</style><h2 class="h3">Course Objectives</h2><ul><li>Read</li></ul><script>openItem()</script>`)
	require.NoError(t, err)

	assert.Contains(t, md, "## Course Objectives")
	assert.Contains(t, md, "Read")
	assert.NotContains(t, md, "openItem")
	assert.NotContains(t, md, ".x{}")
}

func TestNormalize_Empty(t *testing.T) {
	md, err := New().Normalize("")
	require.NoError(t, err)
	assert.Empty(t, md)
}
