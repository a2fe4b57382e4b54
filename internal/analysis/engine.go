package analysis

import (
	"sync"

	"github.com/strideout/journey-backend-go/internal/models"
	"github.com/strideout/journey-backend-go/internal/spatial"
)

// ComputeCumulativeAnalytics derives the full analytics snapshot from a set
// of journey snapshots: aggregate stats, density heat cells, the travel
// boundary and prior-window boundary hulls, the safe-area polygon, merged
// hesitation clusters, and the furthest point from home.
//
// The computation is pure: it reads the snapshot, allocates fresh outputs,
// and holds no state between calls, so it is safe to invoke from any
// goroutine. Degenerate input never fails; insufficient data degrades to
// zeroed stats, empty slices, and nil polygons. Malformed coordinates
// (out-of-range or NaN) are dropped before any geometry runs; a hesitation
// event with a malformed location is likewise excluded from clustering.
func ComputeCumulativeAnalytics(journeys []models.Journey, opts models.AnalyticsOptions) models.AnalyticsResult {
	opts = opts.Normalized()

	journeyPoints := make([][]spatial.Point, len(journeys))
	var allPoints []spatial.Point
	var hesitations []models.HesitationEvent

	for i, j := range journeys {
		pts := validPoints(j.PathSamples)
		journeyPoints[i] = pts
		allPoints = append(allPoints, pts...)

		for _, h := range j.Hesitations {
			if h.Location.Valid() {
				hesitations = append(hesitations, h)
			}
		}
	}

	var result models.AnalyticsResult

	// The sub-computations are independent given the same snapshot, so they
	// run as a fan-out and each writes its own result field before Wait.
	var wg sync.WaitGroup
	wg.Add(5)

	go func() {
		defer wg.Done()
		result.HeatCells = BuildHeatCells(allPoints, opts.HeatmapCellMeters)
	}()

	go func() {
		defer wg.Done()
		boundary := spatial.ConvexHull(allPoints)
		result.BoundaryPolygon = toGeoPoints(boundary)
		result.BoundaryAreaSqM = spatial.PolygonArea(boundary)

		if opts.PriorWindowEnd > opts.PriorWindowStart {
			var priorPoints []spatial.Point
			for _, j := range FilterByWindow(journeys, opts.PriorWindowStart, opts.PriorWindowEnd) {
				priorPoints = append(priorPoints, validPoints(j.PathSamples)...)
			}
			prior := spatial.ConvexHull(priorPoints)
			result.PriorBoundaryPolygon = toGeoPoints(prior)
			result.PriorBoundaryAreaSqM = spatial.PolygonArea(prior)
		}
	}()

	go func() {
		defer wg.Done()
		safeHull := spatial.ConvexHull(HighDensityCentroids(allPoints, opts.SafeAreaCellMeters))
		result.SafeAreaPolygon = toGeoPoints(safeHull)
		result.Stats.SafeAreaSquareMeters = spatial.PolygonArea(safeHull)
	}()

	go func() {
		defer wg.Done()
		result.HesitationClusters = ClusterHesitations(hesitations, opts.ClusterRadiusM)
	}()

	go func() {
		defer wg.Done()
		result.FurthestPoint = FurthestPoint(journeyPoints)
	}()

	wg.Wait()

	composeStats(&result, journeys)
	return result
}

// composeStats fills the aggregate counters from the journey set and the
// already-computed sub-results. Sub-results that are absent degrade the
// corresponding stat to zero.
func composeStats(result *models.AnalyticsResult, journeys []models.Journey) {
	s := &result.Stats

	s.TotalJourneys = len(journeys)

	anxietyFree := 0
	for i := range journeys {
		j := &journeys[i]
		s.TotalDistanceMeters += j.DistanceMeters
		s.TotalDurationSeconds += j.DurationSeconds
		s.TotalHesitations += len(j.Hesitations)
		if j.AnxietyFree() {
			anxietyFree++
		}
	}

	if s.TotalJourneys > 0 {
		s.AvgJourneyDurationSeconds = float64(s.TotalDurationSeconds) / float64(s.TotalJourneys)
		s.AnxietyFreePercentage = float64(anxietyFree) / float64(s.TotalJourneys) * 100
	}

	if result.FurthestPoint != nil {
		s.FurthestDistanceMeters = result.FurthestPoint.DistanceMeters
	}
}

// validPoints extracts the well-formed coordinates of a sample sequence,
// preserving order
func validPoints(samples []models.PathSample) []spatial.Point {
	pts := make([]spatial.Point, 0, len(samples))
	for _, s := range samples {
		if s.Location.Valid() {
			pts = append(pts, spatial.Point{Lat: s.Location.Latitude, Lon: s.Location.Longitude})
		}
	}
	return pts
}

func toGeoPoints(points []spatial.Point) []models.GeoPoint {
	if points == nil {
		return nil
	}
	out := make([]models.GeoPoint, len(points))
	for i, p := range points {
		out[i] = models.GeoPoint{Latitude: p.Lat, Longitude: p.Lon}
	}
	return out
}
