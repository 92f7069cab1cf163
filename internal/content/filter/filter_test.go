package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stefdorosh/portfolio-backend/internal/content/domain"
)

func sample() []domain.Project {
	return []domain.Project{
		{ID: "1", Title: "Game of Life", Description: "Cellular automaton visualizer", Keywords: []string{"react", "simulation"}},
		{ID: "2", Title: "Weather Dashboard", Description: "Real-time weather app", Keywords: []string{"api", "weather"}},
		{ID: "3", Title: "Task Manager", Description: "Full-stack task manager", Keywords: []string{"react", "auth"}},
	}
}

func TestAllTags(t *testing.T) {
	tags := AllTags(sample())
	assert.Equal(t, []string{"api", "auth", "react", "simulation", "weather"}, tags)
}

func TestAllTags_Empty(t *testing.T) {
	assert.Empty(t, AllTags(nil))
}

func TestApply_TagIntersection(t *testing.T) {
	t.Run("single tag", func(t *testing.T) {
		out := Apply(sample(), "", []string{"react"})
		require.Len(t, out, 2)
		assert.Equal(t, "1", out[0].ID)
		assert.Equal(t, "3", out[1].ID)
	})

	t.Run("AND semantics across tags", func(t *testing.T) {
		out := Apply(sample(), "", []string{"react", "auth"})
		require.Len(t, out, 1)
		assert.Equal(t, "3", out[0].ID)
	})

	t.Run("unknown tag matches nothing", func(t *testing.T) {
		assert.Empty(t, Apply(sample(), "", []string{"rust"}))
	})
}

func TestApply_Query(t *testing.T) {
	t.Run("matches title case-insensitively", func(t *testing.T) {
		out := Apply(sample(), "WEATHER", nil)
		require.Len(t, out, 1)
		assert.Equal(t, "2", out[0].ID)
	})

	t.Run("matches description", func(t *testing.T) {
		out := Apply(sample(), "automaton", nil)
		require.Len(t, out, 1)
		assert.Equal(t, "1", out[0].ID)
	})

	t.Run("query and tags combine", func(t *testing.T) {
		out := Apply(sample(), "task", []string{"react"})
		require.Len(t, out, 1)
		assert.Equal(t, "3", out[0].ID)
	})
}

func TestApply_EmptyFiltersPassEverythingInOrder(t *testing.T) {
	out := Apply(sample(), "", nil)
	require.Len(t, out, 3)
	assert.Equal(t, "1", out[0].ID)
	assert.Equal(t, "2", out[1].ID)
	assert.Equal(t, "3", out[2].ID)
}
