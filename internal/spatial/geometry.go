package spatial

// Point represents a 2D point with latitude and longitude
type Point struct {
	Lat float64
	Lon float64
}

// Distance returns the haversine distance in meters between two points
func (p Point) Distance(other Point) float64 {
	return HaversineDistance(p.Lat, p.Lon, other.Lat, other.Lon)
}

// Centroid calculates the geographic centroid of a set of points
func Centroid(points []Point) Point {
	if len(points) == 0 {
		return Point{}
	}

	var sumLat, sumLon float64
	for _, p := range points {
		sumLat += p.Lat
		sumLon += p.Lon
	}

	return Point{
		Lat: sumLat / float64(len(points)),
		Lon: sumLon / float64(len(points)),
	}
}

// BoundingBox calculates the bounding box of a set of points
// Returns (minLat, minLon, maxLat, maxLon)
func BoundingBox(points []Point) (float64, float64, float64, float64) {
	if len(points) == 0 {
		return 0, 0, 0, 0
	}

	minLat, maxLat := points[0].Lat, points[0].Lat
	minLon, maxLon := points[0].Lon, points[0].Lon

	for _, p := range points[1:] {
		if p.Lat < minLat {
			minLat = p.Lat
		}
		if p.Lat > maxLat {
			maxLat = p.Lat
		}
		if p.Lon < minLon {
			minLon = p.Lon
		}
		if p.Lon > maxLon {
			maxLon = p.Lon
		}
	}

	return minLat, minLon, maxLat, maxLon
}

// PolygonArea calculates the area of a polygon using the shoelace formula.
// Points should be in order (clockwise or counter-clockwise) and the first
// vertex must not be repeated at the end. The degree-space area is scaled
// to square meters with the local meter-per-degree factors evaluated at
// the polygon centroid's latitude. This is a flat-earth approximation
// valid for city-scale regions only.
// Returns 0 for polygons with fewer than 3 vertices or near the poles.
func PolygonArea(points []Point) float64 {
	if len(points) < 3 {
		return 0
	}

	var sum float64
	for i := 0; i < len(points); i++ {
		j := (i + 1) % len(points)
		sum += points[i].Lon*points[j].Lat - points[j].Lon*points[i].Lat
	}
	if sum < 0 {
		sum = -sum
	}

	center := Centroid(points)
	latScale, lonScale, ok := MetersPerDegree(center.Lat)
	if !ok {
		return 0
	}

	return sum * latScale * lonScale / 2.0
}

// PointInPolygon checks if a point is inside a polygon using ray casting.
// Points on an edge may fall on either side; callers needing on-boundary
// inclusion should test edges separately.
func PointInPolygon(point Point, polygon []Point) bool {
	if len(polygon) < 3 {
		return false
	}

	inside := false
	j := len(polygon) - 1

	for i := 0; i < len(polygon); i++ {
		if ((polygon[i].Lat > point.Lat) != (polygon[j].Lat > point.Lat)) &&
			(point.Lon < (polygon[j].Lon-polygon[i].Lon)*(point.Lat-polygon[i].Lat)/(polygon[j].Lat-polygon[i].Lat)+polygon[i].Lon) {
			inside = !inside
		}
		j = i
	}

	return inside
}
