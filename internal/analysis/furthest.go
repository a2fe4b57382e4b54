package analysis

import (
	"gonum.org/v1/gonum/stat"

	"github.com/strideout/journey-backend-go/internal/models"
	"github.com/strideout/journey-backend-go/internal/spatial"
)

// HomeReference computes the "home" origin as the arithmetic mean of the
// first sample of every journey. Journeys contributing no samples are
// excluded. Returns false when no journey has a sample.
// Each journey's sample slice must already be filtered to valid coordinates.
func HomeReference(journeyPoints [][]spatial.Point) (spatial.Point, bool) {
	var lats, lons []float64
	for _, pts := range journeyPoints {
		if len(pts) == 0 {
			continue
		}
		lats = append(lats, pts[0].Lat)
		lons = append(lons, pts[0].Lon)
	}
	if len(lats) == 0 {
		return spatial.Point{}, false
	}

	return spatial.Point{
		Lat: stat.Mean(lats, nil),
		Lon: stat.Mean(lons, nil),
	}, true
}

// FurthestPoint finds the path sample with the maximum haversine distance
// from the home reference across all journeys. Returns nil when there are
// no samples to compute a home from.
func FurthestPoint(journeyPoints [][]spatial.Point) *models.FurthestPoint {
	home, ok := HomeReference(journeyPoints)
	if !ok {
		return nil
	}

	var best *models.FurthestPoint
	for _, pts := range journeyPoints {
		for _, p := range pts {
			d := home.Distance(p)
			if best == nil || d > best.DistanceMeters {
				best = &models.FurthestPoint{
					Location:       models.GeoPoint{Latitude: p.Lat, Longitude: p.Lon},
					DistanceMeters: d,
				}
			}
		}
	}

	return best
}
