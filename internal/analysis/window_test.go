package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strideout/journey-backend-go/internal/models"
)

func TestFilterByWindow(t *testing.T) {
	t.Parallel()

	journeys := []models.Journey{
		{ID: "before", StartTime: 99},
		{ID: "at-start", StartTime: 100},
		{ID: "inside", StartTime: 150},
		{ID: "at-end", StartTime: 200},
	}

	t.Run("start inclusive end exclusive", func(t *testing.T) {
		t.Parallel()
		out := FilterByWindow(journeys, 100, 200)
		require.Len(t, out, 2)
		assert.Equal(t, "at-start", out[0].ID)
		assert.Equal(t, "inside", out[1].ID)
	})

	t.Run("empty window", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, FilterByWindow(journeys, 150, 150))
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, FilterByWindow(nil, 0, 1000))
	})
}
