package models

import "math"

// GeoPoint represents a WGS84 coordinate pair
type GeoPoint struct {
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
}

// Valid reports whether the point carries a well-formed coordinate.
// Out-of-range or NaN coordinates are treated as malformed and are
// silently dropped by the analytics engine before any geometry runs.
func (p GeoPoint) Valid() bool {
	if math.IsNaN(p.Latitude) || math.IsNaN(p.Longitude) {
		return false
	}
	return p.Latitude >= -90 && p.Latitude <= 90 &&
		p.Longitude >= -180 && p.Longitude <= 180
}

// PathSample is a single recorded position within a journey.
// Ordering is implicit: samples are stored and served in recording order.
type PathSample struct {
	Location GeoPoint `json:"location"`
}

// HesitationEvent is a pause detected by the tracking subsystem
type HesitationEvent struct {
	Location        GeoPoint `json:"location"`
	DurationSeconds float64  `json:"duration_seconds" db:"duration_seconds"`
}

// Feeling is the subjective state reported at a checkpoint
type Feeling string

// Feeling constants
const (
	FeelingCalm    Feeling = "calm"
	FeelingTense   Feeling = "tense"
	FeelingAnxious Feeling = "anxious"
	FeelingPanic   Feeling = "panic"
)

// Anxious reports whether the feeling counts against the
// anxiety-free journey ratio.
func (f Feeling) Anxious() bool {
	return f == FeelingAnxious || f == FeelingPanic
}

// FeelingCheckpoint records a subjective feeling at a location and time
type FeelingCheckpoint struct {
	Location  GeoPoint `json:"location"`
	Feeling   Feeling  `json:"feeling" db:"feeling"`
	Timestamp int64    `json:"timestamp" db:"timestamp"` // Unix timestamp in seconds
}
