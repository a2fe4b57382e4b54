package analysis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/strideout/journey-backend-go/internal/models"
	"github.com/strideout/journey-backend-go/internal/spatial"
)

// cellBucket accumulates the samples falling into one grid cell
type cellBucket struct {
	i, j   int
	count  int
	sumLat float64
	sumLon float64
}

// densityGrid is the result of binning a point set into a uniform grid
// whose cell size is given in meters
type densityGrid struct {
	buckets      []*cellBucket
	minLat       float64
	minLon       float64
	dLat         float64 // cell height in degrees
	dLon         float64 // cell width in degrees
	maxCellCount int
}

// aggregateGrid bins points into a uniform geodesic grid. The degree steps
// are derived from the requested cell size using the meter-per-degree scale
// at the bounding box's center latitude. A zero-width bounding box (all
// points identical) collapses to a single cell; near the poles the
// longitude scale degenerates and no grid is produced.
func aggregateGrid(points []spatial.Point, cellMeters float64) (*densityGrid, bool) {
	if len(points) == 0 || cellMeters <= 0 {
		return nil, false
	}

	minLat, minLon, maxLat, _ := spatial.BoundingBox(points)
	centerLat := (minLat + maxLat) / 2

	latScale, lonScale, ok := spatial.MetersPerDegree(centerLat)
	if !ok {
		return nil, false
	}

	g := &densityGrid{
		minLat: minLat,
		minLon: minLon,
		dLat:   cellMeters / latScale,
		dLon:   cellMeters / lonScale,
	}

	byIndex := make(map[[2]int]*cellBucket)
	for _, p := range points {
		i := int(math.Floor((p.Lat - g.minLat) / g.dLat))
		j := int(math.Floor((p.Lon - g.minLon) / g.dLon))

		b, exists := byIndex[[2]int{i, j}]
		if !exists {
			b = &cellBucket{i: i, j: j}
			byIndex[[2]int{i, j}] = b
		}
		b.count++
		b.sumLat += p.Lat
		b.sumLon += p.Lon
	}

	for _, b := range byIndex {
		g.buckets = append(g.buckets, b)
		if b.count > g.maxCellCount {
			g.maxCellCount = b.count
		}
	}

	// Stable output order for deterministic results
	sort.Slice(g.buckets, func(a, b int) bool {
		if g.buckets[a].i != g.buckets[b].i {
			return g.buckets[a].i < g.buckets[b].i
		}
		return g.buckets[a].j < g.buckets[b].j
	})

	return g, true
}

// BuildHeatCells bins a point set into cellMeters-sized grid cells and
// returns one HeatCell per populated cell. Intensity is normalized by the
// densest cell, so it always spans (0, 1] with at least one cell at 1.0.
// Empty input yields an empty slice.
func BuildHeatCells(points []spatial.Point, cellMeters float64) []models.HeatCell {
	g, ok := aggregateGrid(points, cellMeters)
	if !ok {
		return nil
	}

	cells := make([]models.HeatCell, 0, len(g.buckets))
	for _, b := range g.buckets {
		minBound := models.GeoPoint{
			Latitude:  g.minLat + float64(b.i)*g.dLat,
			Longitude: g.minLon + float64(b.j)*g.dLon,
		}
		maxBound := models.GeoPoint{
			Latitude:  minBound.Latitude + g.dLat,
			Longitude: minBound.Longitude + g.dLon,
		}

		cells = append(cells, models.HeatCell{
			Centroid: models.GeoPoint{
				Latitude:  minBound.Latitude + g.dLat/2,
				Longitude: minBound.Longitude + g.dLon/2,
			},
			MinBound:            minBound,
			MaxBound:            maxBound,
			SampleCount:         b.count,
			NormalizedIntensity: float64(b.count) / float64(g.maxCellCount),
		})
	}

	return cells
}

// HighDensityCentroids grids the point set at cellMeters and returns one
// representative centroid (the mean of member points) for every cell whose
// count reaches the density threshold max(3, mean*1.5). These centroids
// feed the convex hull that forms the safe-area polygon.
func HighDensityCentroids(points []spatial.Point, cellMeters float64) []spatial.Point {
	g, ok := aggregateGrid(points, cellMeters)
	if !ok {
		return nil
	}

	counts := make([]float64, len(g.buckets))
	for i, b := range g.buckets {
		counts[i] = float64(b.count)
	}
	threshold := math.Max(3, stat.Mean(counts, nil)*1.5)

	var centroids []spatial.Point
	for _, b := range g.buckets {
		if float64(b.count) >= threshold {
			centroids = append(centroids, spatial.Point{
				Lat: b.sumLat / float64(b.count),
				Lon: b.sumLon / float64(b.count),
			})
		}
	}

	return centroids
}
