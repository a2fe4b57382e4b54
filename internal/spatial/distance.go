package spatial

import (
	"math"

	"github.com/golang/geo/s2"
)

// HaversineDistance calculates the great-circle distance between two points in meters
// using the Haversine formula
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	if lat1 == lat2 && lon1 == lon2 {
		return 0
	}
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// MetersPerDegree returns the local meter-per-degree scale factors at a latitude.
// The latitude scale is effectively constant; the longitude scale shrinks with
// cos(lat) and approaches zero near the poles. Callers must check ok before
// dividing by the longitude scale.
func MetersPerDegree(latitude float64) (latScale, lonScale float64, ok bool) {
	latScale = MetersPerDegreeLat
	cosLat := math.Cos(latitude * math.Pi / 180)
	lonScale = MetersPerDegreeLat * cosLat
	if math.Abs(cosLat) < minCosLatitude {
		return latScale, lonScale, false
	}
	return latScale, lonScale, true
}

// Constants
const (
	EarthRadiusMeters  = 6371000.0 // Earth's mean radius in meters
	MetersPerDegreeLat = 111320.0  // Meters per degree of latitude

	// Below this cos(lat) the longitude scale is too close to zero to
	// divide by; grid and area computations bail out instead.
	minCosLatitude = 1e-6
)
