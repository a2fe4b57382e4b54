package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strideout/journey-backend-go/internal/spatial"
)

func TestHomeReference(t *testing.T) {
	t.Parallel()

	t.Run("no samples", func(t *testing.T) {
		t.Parallel()
		_, ok := HomeReference(nil)
		assert.False(t, ok)

		_, ok = HomeReference([][]spatial.Point{{}, {}})
		assert.False(t, ok)
	})

	t.Run("mean of first samples", func(t *testing.T) {
		t.Parallel()
		home, ok := HomeReference([][]spatial.Point{
			{{Lat: 0, Lon: 0}, {Lat: 9, Lon: 9}},
			{{Lat: 2, Lon: 4}},
			{}, // no samples, excluded
		})

		require.True(t, ok)
		assert.Equal(t, spatial.Point{Lat: 1, Lon: 2}, home)
	})
}

func TestFurthestPoint(t *testing.T) {
	t.Parallel()

	t.Run("nil without samples", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, FurthestPoint(nil))
		assert.Nil(t, FurthestPoint([][]spatial.Point{{}}))
	})

	t.Run("single sample is furthest at distance zero", func(t *testing.T) {
		t.Parallel()
		fp := FurthestPoint([][]spatial.Point{{{Lat: 51.5, Lon: -0.12}}})

		require.NotNil(t, fp)
		assert.Equal(t, 51.5, fp.Location.Latitude)
		assert.Equal(t, -0.12, fp.Location.Longitude)
		assert.Zero(t, fp.DistanceMeters)
	})

	t.Run("maximum distance across journeys", func(t *testing.T) {
		t.Parallel()
		// Both journeys start at the origin, so home is the origin
		fp := FurthestPoint([][]spatial.Point{
			{{Lat: 0, Lon: 0}, {Lat: 0.001, Lon: 0}},
			{{Lat: 0, Lon: 0}, {Lat: 0.005, Lon: 0}},
		})

		require.NotNil(t, fp)
		assert.Equal(t, 0.005, fp.Location.Latitude)
		assert.InDelta(t, 556, fp.DistanceMeters, 2)
	})
}
