package spatial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCentroid(t *testing.T) {
	t.Parallel()

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, Point{}, Centroid(nil))
	})

	t.Run("mean of coordinates", func(t *testing.T) {
		t.Parallel()
		c := Centroid([]Point{{Lat: 0, Lon: 0}, {Lat: 2, Lon: 4}})
		assert.Equal(t, Point{Lat: 1, Lon: 2}, c)
	})
}

func TestBoundingBox(t *testing.T) {
	t.Parallel()

	pts := []Point{{Lat: 1, Lon: 5}, {Lat: -2, Lon: 7}, {Lat: 3, Lon: 6}}
	minLat, minLon, maxLat, maxLon := BoundingBox(pts)
	assert.Equal(t, -2.0, minLat)
	assert.Equal(t, 5.0, minLon)
	assert.Equal(t, 3.0, maxLat)
	assert.Equal(t, 7.0, maxLon)
}

func TestPolygonArea(t *testing.T) {
	t.Parallel()

	t.Run("zero for degenerate polygons", func(t *testing.T) {
		t.Parallel()
		assert.Zero(t, PolygonArea(nil))
		assert.Zero(t, PolygonArea([]Point{{Lat: 0, Lon: 0}, {Lat: 1, Lon: 1}}))
	})

	t.Run("square near the equator", func(t *testing.T) {
		t.Parallel()
		// Roughly 100 m x 100 m
		side := 0.0009
		square := []Point{
			{Lat: 0, Lon: 0},
			{Lat: 0, Lon: side},
			{Lat: side, Lon: side},
			{Lat: side, Lon: 0},
		}

		area := PolygonArea(square)
		expected := (side * MetersPerDegreeLat) * (side * MetersPerDegreeLat)
		assert.InDelta(t, expected, area, expected*0.001)
	})

	t.Run("orientation independent", func(t *testing.T) {
		t.Parallel()
		ccw := []Point{{Lat: 0, Lon: 0}, {Lat: 0, Lon: 0.001}, {Lat: 0.001, Lon: 0.001}}
		cw := []Point{{Lat: 0.001, Lon: 0.001}, {Lat: 0, Lon: 0.001}, {Lat: 0, Lon: 0}}
		assert.InDelta(t, PolygonArea(ccw), PolygonArea(cw), 1e-9)
	})
}

func TestPointInPolygon(t *testing.T) {
	t.Parallel()

	square := []Point{
		{Lat: 0, Lon: 0},
		{Lat: 0, Lon: 1},
		{Lat: 1, Lon: 1},
		{Lat: 1, Lon: 0},
	}

	t.Run("inside", func(t *testing.T) {
		t.Parallel()
		assert.True(t, PointInPolygon(Point{Lat: 0.5, Lon: 0.5}, square))
	})

	t.Run("outside", func(t *testing.T) {
		t.Parallel()
		assert.False(t, PointInPolygon(Point{Lat: 2, Lon: 0.5}, square))
		assert.False(t, PointInPolygon(Point{Lat: 0.5, Lon: -0.1}, square))
	})

	t.Run("degenerate polygon", func(t *testing.T) {
		t.Parallel()
		require.False(t, PointInPolygon(Point{}, square[:2]))
	})
}
