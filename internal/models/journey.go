package models

// Journey represents one recorded excursion: an ordered path of samples
// plus the hesitation and feeling-checkpoint events observed along it.
// The analytics engine only ever reads journeys; it never mutates them.
type Journey struct {
	ID string `json:"id" db:"id"`

	// Temporal info
	StartTime       int64 `json:"start_time" db:"start_time"` // Unix timestamp
	EndTime         int64 `json:"end_time" db:"end_time"`     // Unix timestamp
	DurationSeconds int64 `json:"duration_seconds" db:"duration_seconds"`

	// Movement summary produced by the tracking subsystem
	DistanceMeters float64 `json:"distance_meters" db:"distance_meters"`

	// Recorded events, in recording order
	PathSamples []PathSample        `json:"path_samples"`
	Hesitations []HesitationEvent   `json:"hesitations"`
	Checkpoints []FeelingCheckpoint `json:"checkpoints"`
}

// AnxietyFree reports whether no checkpoint on the journey recorded an
// anxious or panic feeling.
func (j *Journey) AnxietyFree() bool {
	for _, cp := range j.Checkpoints {
		if cp.Feeling.Anxious() {
			return false
		}
	}
	return true
}

// JourneysResponse represents a paginated response of journeys
type JourneysResponse struct {
	Data       []Journey `json:"data"`
	Total      int64     `json:"total"`
	Page       int       `json:"page"`
	PageSize   int       `json:"pageSize"`
	TotalPages int       `json:"totalPages"`
}

// JourneyFilter represents filter parameters for querying journeys
type JourneyFilter struct {
	StartTime int64 `form:"startTime"` // Unix timestamp, inclusive
	EndTime   int64 `form:"endTime"`   // Unix timestamp, exclusive
	Page      int   `form:"page"`
	PageSize  int   `form:"pageSize"`
}
