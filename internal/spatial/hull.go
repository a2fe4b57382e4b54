package spatial

import (
	"math"
	"sort"
)

// hullRoundDecimals bounds hull input size and numeric noise: points are
// deduplicated at 4 decimal degrees (~11 m) before the chain is built.
const hullRoundDecimals = 4

// DedupePoints rounds coordinates to a fixed precision and removes
// duplicates, preserving first-seen order.
func DedupePoints(points []Point) []Point {
	scale := math.Pow(10, hullRoundDecimals)
	seen := make(map[Point]bool, len(points))
	out := make([]Point, 0, len(points))

	for _, p := range points {
		key := Point{
			Lat: math.Round(p.Lat*scale) / scale,
			Lon: math.Round(p.Lon*scale) / scale,
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, key)
	}

	return out
}

// ConvexHull builds the convex hull of a point set using Andrew's monotone
// chain. Input is deduplicated at a fixed precision first. Points are sorted
// lexicographically by (longitude, latitude); equal-longitude points order by
// ascending latitude. Collinear points are dropped (cross <= 0 pops), so the
// hull has no three consecutive collinear vertices.
// Returns nil when fewer than 3 distinct points exist or the points are all
// collinear; otherwise a counter-clockwise polygon whose first vertex is not
// repeated at the end.
func ConvexHull(points []Point) []Point {
	pts := DedupePoints(points)
	if len(pts) < 3 {
		return nil
	}

	sort.Slice(pts, func(i, j int) bool {
		if pts[i].Lon != pts[j].Lon {
			return pts[i].Lon < pts[j].Lon
		}
		return pts[i].Lat < pts[j].Lat
	})

	n := len(pts)
	hull := make([]Point, 0, 2*n)

	// Lower chain
	for _, p := range pts {
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}

	// Upper chain
	lower := len(hull) + 1
	for i := n - 2; i >= 0; i-- {
		p := pts[i]
		for len(hull) >= lower && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}

	// Last point of each chain is the first point of the other
	hull = hull[:len(hull)-1]
	if len(hull) < 3 {
		return nil
	}
	return hull
}

// cross returns the z-component of (b-a) x (c-a) in degree space.
// Positive for a counter-clockwise (left) turn.
func cross(a, b, c Point) float64 {
	return (b.Lon-a.Lon)*(c.Lat-a.Lat) - (b.Lat-a.Lat)*(c.Lon-a.Lon)
}
