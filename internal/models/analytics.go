package models

// HeatCell is one bucket of the uniform geodesic density grid
type HeatCell struct {
	Centroid            GeoPoint `json:"centroid"`
	MinBound            GeoPoint `json:"min_bound"`
	MaxBound            GeoPoint `json:"max_bound"`
	SampleCount         int      `json:"sample_count"`
	NormalizedIntensity float64  `json:"normalized_intensity"` // 0~1, densest cell is 1.0
}

// HesitationCluster merges spatially proximate hesitation events into
// one representative point
type HesitationCluster struct {
	Centroid             GeoPoint `json:"centroid"`
	MemberCount          int      `json:"member_count"`
	TotalDurationSeconds float64  `json:"total_duration_seconds"`
}

// FurthestPoint is the path sample furthest from the home reference
type FurthestPoint struct {
	Location       GeoPoint `json:"location"`
	DistanceMeters float64  `json:"distance_meters"`
}

// CumulativeStats is the aggregate snapshot over all supplied journeys.
// Fully derived and recomputed from scratch on every invocation.
type CumulativeStats struct {
	TotalJourneys             int     `json:"total_journeys"`
	TotalDistanceMeters       float64 `json:"total_distance_meters"`
	TotalDurationSeconds      int64   `json:"total_duration_seconds"`
	FurthestDistanceMeters    float64 `json:"furthest_distance_meters"`
	SafeAreaSquareMeters      float64 `json:"safe_area_square_meters"`
	TotalHesitations          int     `json:"total_hesitations"`
	AvgJourneyDurationSeconds float64 `json:"avg_journey_duration_seconds"`
	AnxietyFreePercentage     float64 `json:"anxiety_free_percentage"`
}

// AnalyticsResult bundles everything the map and stats screens render.
// Polygons are nil when the input admits no valid hull.
type AnalyticsResult struct {
	Stats                CumulativeStats     `json:"stats"`
	HeatCells            []HeatCell          `json:"heat_cells"`
	BoundaryPolygon      []GeoPoint          `json:"boundary_polygon,omitempty"`
	PriorBoundaryPolygon []GeoPoint          `json:"prior_boundary_polygon,omitempty"`
	SafeAreaPolygon      []GeoPoint          `json:"safe_area_polygon,omitempty"`
	BoundaryAreaSqM      float64             `json:"boundary_area_sqm"`
	PriorBoundaryAreaSqM float64             `json:"prior_boundary_area_sqm"`
	HesitationClusters   []HesitationCluster `json:"hesitation_clusters"`
	FurthestPoint        *FurthestPoint      `json:"furthest_point,omitempty"`
}

// AnalyticsOptions tunes the engine. Zero values fall back to defaults.
type AnalyticsOptions struct {
	HeatmapCellMeters  float64 `json:"heatmap_cell_meters"`
	SafeAreaCellMeters float64 `json:"safe_area_cell_meters"`
	ClusterRadiusM     float64 `json:"cluster_radius_meters"`

	// Prior window for the period-over-period boundary comparison.
	// Journeys with StartTime in [PriorWindowStart, PriorWindowEnd)
	// feed the prior boundary hull.
	PriorWindowStart int64 `json:"prior_window_start"`
	PriorWindowEnd   int64 `json:"prior_window_end"`
}

// Default engine parameters
const (
	DefaultHeatmapCellMeters  = 100.0
	DefaultSafeAreaCellMeters = 50.0
	DefaultClusterRadiusM     = 50.0
)

// Normalized returns a copy with defaults applied to unset fields
func (o AnalyticsOptions) Normalized() AnalyticsOptions {
	if o.HeatmapCellMeters <= 0 {
		o.HeatmapCellMeters = DefaultHeatmapCellMeters
	}
	if o.SafeAreaCellMeters <= 0 {
		o.SafeAreaCellMeters = DefaultSafeAreaCellMeters
	}
	if o.ClusterRadiusM <= 0 {
		o.ClusterRadiusM = DefaultClusterRadiusM
	}
	return o
}

// HeatmapResponse represents the heatmap API response
type HeatmapResponse struct {
	Cells      []HeatCell `json:"cells"`
	Count      int        `json:"count"`
	MaxValue   int        `json:"max_value"`
	CellMeters float64    `json:"cell_meters"`
}
