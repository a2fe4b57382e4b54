package analysis

import (
	"github.com/strideout/journey-backend-go/internal/models"
	"github.com/strideout/journey-backend-go/internal/spatial"
)

// ClusterHesitations groups hesitation events by a greedy single-pass
// absorb-by-radius scan: events are visited in input order, each unprocessed
// event seeds a new cluster and absorbs every later unprocessed event within
// radiusMeters of the seed. Every event lands in exactly one cluster.
//
// This is O(n²) and intentionally simple. It is deterministic for a fixed
// input order but not globally optimal: an event near the boundary between
// two groups joins whichever cluster is seeded first, so the partition
// depends on iteration order. Events with malformed locations must be
// filtered out by the caller beforehand.
func ClusterHesitations(events []models.HesitationEvent, radiusMeters float64) []models.HesitationCluster {
	if len(events) == 0 {
		return nil
	}

	processed := make([]bool, len(events))
	var clusters []models.HesitationCluster

	for i, seed := range events {
		if processed[i] {
			continue
		}
		processed[i] = true

		members := []models.HesitationEvent{seed}
		seedPt := spatial.Point{Lat: seed.Location.Latitude, Lon: seed.Location.Longitude}

		for k := i + 1; k < len(events); k++ {
			if processed[k] {
				continue
			}
			pt := spatial.Point{Lat: events[k].Location.Latitude, Lon: events[k].Location.Longitude}
			if seedPt.Distance(pt) <= radiusMeters {
				processed[k] = true
				members = append(members, events[k])
			}
		}

		var sumLat, sumLon, totalDuration float64
		for _, m := range members {
			sumLat += m.Location.Latitude
			sumLon += m.Location.Longitude
			totalDuration += m.DurationSeconds
		}

		clusters = append(clusters, models.HesitationCluster{
			Centroid: models.GeoPoint{
				Latitude:  sumLat / float64(len(members)),
				Longitude: sumLon / float64(len(members)),
			},
			MemberCount:          len(members),
			TotalDurationSeconds: totalDuration,
		})
	}

	return clusters
}
