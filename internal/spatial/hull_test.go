package spatial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvexHull(t *testing.T) {
	t.Parallel()

	t.Run("nil for fewer than three distinct points", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, ConvexHull(nil))
		assert.Nil(t, ConvexHull([]Point{{Lat: 1, Lon: 1}}))
		assert.Nil(t, ConvexHull([]Point{{Lat: 1, Lon: 1}, {Lat: 2, Lon: 2}}))
		// Duplicates collapse below the minimum
		assert.Nil(t, ConvexHull([]Point{{Lat: 1, Lon: 1}, {Lat: 1, Lon: 1}, {Lat: 2, Lon: 2}}))
	})

	t.Run("nil for collinear points", func(t *testing.T) {
		t.Parallel()
		pts := []Point{{Lat: 0, Lon: 0}, {Lat: 0.01, Lon: 0.01}, {Lat: 0.02, Lon: 0.02}, {Lat: 0.03, Lon: 0.03}}
		assert.Nil(t, ConvexHull(pts))
	})

	t.Run("square with interior points", func(t *testing.T) {
		t.Parallel()
		pts := []Point{
			{Lat: 0, Lon: 0},
			{Lat: 0, Lon: 0.01},
			{Lat: 0.01, Lon: 0.01},
			{Lat: 0.01, Lon: 0},
			{Lat: 0.005, Lon: 0.005}, // interior
			{Lat: 0.002, Lon: 0.007}, // interior
		}

		hull := ConvexHull(pts)
		require.Len(t, hull, 4)
		for _, corner := range pts[:4] {
			assert.Contains(t, hull, corner)
		}
	})

	t.Run("containment", func(t *testing.T) {
		t.Parallel()
		pts := []Point{
			{Lat: 0.001, Lon: 0.004}, {Lat: 0.009, Lon: 0.002}, {Lat: 0.005, Lon: 0.009},
			{Lat: 0.003, Lon: 0.003}, {Lat: 0.007, Lon: 0.006}, {Lat: 0.0, Lon: 0.0},
			{Lat: 0.01, Lon: 0.01}, {Lat: 0.002, Lon: 0.008}, {Lat: 0.008, Lon: 0.001},
		}

		hull := ConvexHull(pts)
		require.GreaterOrEqual(t, len(hull), 3)

		// Every input point lies on or inside the hull: for a CCW polygon
		// no point may fall strictly right of any edge.
		for _, p := range DedupePoints(pts) {
			for i := range hull {
				a := hull[i]
				b := hull[(i+1)%len(hull)]
				assert.GreaterOrEqual(t, cross(a, b, p), 0.0,
					"point %v outside hull edge %v -> %v", p, a, b)
			}
		}
	})

	t.Run("minimality", func(t *testing.T) {
		t.Parallel()
		pts := []Point{
			{Lat: 0, Lon: 0}, {Lat: 0, Lon: 0.01}, {Lat: 0.01, Lon: 0.01},
			{Lat: 0.01, Lon: 0}, {Lat: 0, Lon: 0.005}, // on the lower edge
			{Lat: 0.004, Lon: 0.004},
		}

		hull := ConvexHull(pts)
		require.GreaterOrEqual(t, len(hull), 3)

		// No three consecutive vertices are collinear or turn right
		for i := range hull {
			a := hull[i]
			b := hull[(i+1)%len(hull)]
			c := hull[(i+2)%len(hull)]
			assert.Positive(t, cross(a, b, c))
		}
	})
}

func TestDedupePoints(t *testing.T) {
	t.Parallel()

	t.Run("collapses near-duplicates at four decimals", func(t *testing.T) {
		t.Parallel()
		pts := []Point{
			{Lat: 1.00001, Lon: 2.00002},
			{Lat: 1.00004, Lon: 2.00003}, // rounds to the same cell
			{Lat: 1.2, Lon: 2.2},
		}

		out := DedupePoints(pts)
		require.Len(t, out, 2)
		assert.Equal(t, Point{Lat: 1.0, Lon: 2.0}, out[0])
	})

	t.Run("preserves first-seen order", func(t *testing.T) {
		t.Parallel()
		pts := []Point{{Lat: 3, Lon: 3}, {Lat: 1, Lon: 1}, {Lat: 3, Lon: 3}}
		out := DedupePoints(pts)
		require.Len(t, out, 2)
		assert.Equal(t, Point{Lat: 3, Lon: 3}, out[0])
	})
}
