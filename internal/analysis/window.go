package analysis

import "github.com/strideout/journey-backend-go/internal/models"

// FilterByWindow selects journeys whose start time falls in [start, end).
// Window boundaries are supplied by the caller, so the filter itself is
// fully deterministic.
func FilterByWindow(journeys []models.Journey, start, end int64) []models.Journey {
	var out []models.Journey
	for _, j := range journeys {
		if j.StartTime >= start && j.StartTime < end {
			out = append(out, j)
		}
	}
	return out
}
