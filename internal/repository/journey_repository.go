package repository

import (
	"database/sql"
	"fmt"

	"github.com/strideout/journey-backend-go/internal/database"
	"github.com/strideout/journey-backend-go/internal/models"
)

// JourneyRepository handles database operations for journeys and their
// recorded events
type JourneyRepository struct {
	db *sql.DB
}

// NewJourneyRepository creates a new journey repository
func NewJourneyRepository(db *sql.DB) *JourneyRepository {
	return &JourneyRepository{db: db}
}

// CreateJourney inserts a journey with its samples, hesitations, and
// checkpoints in one transaction
func (r *JourneyRepository) CreateJourney(j *models.Journey) error {
	return database.Transaction(r.db, func(tx *sql.Tx) error {
		_, err := tx.Exec(
			`INSERT INTO journeys (id, start_time, end_time, duration_seconds, distance_meters)
			 VALUES (?, ?, ?, ?, ?)`,
			j.ID, j.StartTime, j.EndTime, j.DurationSeconds, j.DistanceMeters,
		)
		if err != nil {
			return fmt.Errorf("failed to insert journey: %w", err)
		}

		sampleStmt, err := tx.Prepare(
			`INSERT INTO path_samples (journey_id, seq, latitude, longitude) VALUES (?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare sample insert: %w", err)
		}
		defer sampleStmt.Close()

		for seq, s := range j.PathSamples {
			if _, err := sampleStmt.Exec(j.ID, seq, s.Location.Latitude, s.Location.Longitude); err != nil {
				return fmt.Errorf("failed to insert path sample: %w", err)
			}
		}

		hesitationStmt, err := tx.Prepare(
			`INSERT INTO hesitations (journey_id, seq, latitude, longitude, duration_seconds)
			 VALUES (?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare hesitation insert: %w", err)
		}
		defer hesitationStmt.Close()

		for seq, h := range j.Hesitations {
			if _, err := hesitationStmt.Exec(j.ID, seq, h.Location.Latitude, h.Location.Longitude, h.DurationSeconds); err != nil {
				return fmt.Errorf("failed to insert hesitation: %w", err)
			}
		}

		checkpointStmt, err := tx.Prepare(
			`INSERT INTO checkpoints (journey_id, seq, latitude, longitude, feeling, timestamp)
			 VALUES (?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare checkpoint insert: %w", err)
		}
		defer checkpointStmt.Close()

		for seq, cp := range j.Checkpoints {
			if _, err := checkpointStmt.Exec(j.ID, seq, cp.Location.Latitude, cp.Location.Longitude, string(cp.Feeling), cp.Timestamp); err != nil {
				return fmt.Errorf("failed to insert checkpoint: %w", err)
			}
		}

		return nil
	})
}

// DeleteJourney removes a journey and, via cascade, its recorded events.
// Returns sql.ErrNoRows when the journey does not exist.
func (r *JourneyRepository) DeleteJourney(id string) error {
	res, err := r.db.Exec("DELETE FROM journeys WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete journey: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// GetJourneys retrieves journeys with filtering and pagination, events
// included
func (r *JourneyRepository) GetJourneys(filter models.JourneyFilter) ([]models.Journey, int64, error) {
	where := ""
	var args []interface{}

	if filter.StartTime > 0 || filter.EndTime > 0 {
		where = " WHERE 1=1"
		if filter.StartTime > 0 {
			where += " AND start_time >= ?"
			args = append(args, filter.StartTime)
		}
		if filter.EndTime > 0 {
			where += " AND start_time < ?"
			args = append(args, filter.EndTime)
		}
	}

	var total int64
	if err := r.db.QueryRow("SELECT COUNT(*) FROM journeys"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count journeys: %w", err)
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 200 {
		filter.PageSize = 50
	}

	query := `SELECT id, start_time, end_time, duration_seconds, distance_meters FROM journeys` +
		where + " ORDER BY start_time LIMIT ? OFFSET ?"
	args = append(args, filter.PageSize, (filter.Page-1)*filter.PageSize)

	journeys, err := r.queryJourneys(query, args...)
	if err != nil {
		return nil, 0, err
	}

	return journeys, total, nil
}

// LoadSnapshot materializes every journey with all of its events, ordered
// by start time. This is the immutable input handed to the analytics
// engine; the engine never touches the database itself.
func (r *JourneyRepository) LoadSnapshot() ([]models.Journey, error) {
	return r.queryJourneys(
		`SELECT id, start_time, end_time, duration_seconds, distance_meters
		 FROM journeys ORDER BY start_time`)
}

func (r *JourneyRepository) queryJourneys(query string, args ...interface{}) ([]models.Journey, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query journeys: %w", err)
	}
	defer rows.Close()

	var journeys []models.Journey
	for rows.Next() {
		var j models.Journey
		if err := rows.Scan(&j.ID, &j.StartTime, &j.EndTime, &j.DurationSeconds, &j.DistanceMeters); err != nil {
			return nil, fmt.Errorf("failed to scan journey: %w", err)
		}
		journeys = append(journeys, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journeys: %w", err)
	}

	for i := range journeys {
		if err := r.loadEvents(&journeys[i]); err != nil {
			return nil, err
		}
	}

	return journeys, nil
}

// loadEvents fills a journey's samples, hesitations, and checkpoints in
// recording order
func (r *JourneyRepository) loadEvents(j *models.Journey) error {
	rows, err := r.db.Query(
		"SELECT latitude, longitude FROM path_samples WHERE journey_id = ? ORDER BY seq", j.ID)
	if err != nil {
		return fmt.Errorf("failed to query path samples: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var s models.PathSample
		if err := rows.Scan(&s.Location.Latitude, &s.Location.Longitude); err != nil {
			return fmt.Errorf("failed to scan path sample: %w", err)
		}
		j.PathSamples = append(j.PathSamples, s)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating path samples: %w", err)
	}

	hRows, err := r.db.Query(
		"SELECT latitude, longitude, duration_seconds FROM hesitations WHERE journey_id = ? ORDER BY seq", j.ID)
	if err != nil {
		return fmt.Errorf("failed to query hesitations: %w", err)
	}
	defer hRows.Close()

	for hRows.Next() {
		var h models.HesitationEvent
		if err := hRows.Scan(&h.Location.Latitude, &h.Location.Longitude, &h.DurationSeconds); err != nil {
			return fmt.Errorf("failed to scan hesitation: %w", err)
		}
		j.Hesitations = append(j.Hesitations, h)
	}
	if err := hRows.Err(); err != nil {
		return fmt.Errorf("error iterating hesitations: %w", err)
	}

	cRows, err := r.db.Query(
		"SELECT latitude, longitude, feeling, timestamp FROM checkpoints WHERE journey_id = ? ORDER BY seq", j.ID)
	if err != nil {
		return fmt.Errorf("failed to query checkpoints: %w", err)
	}
	defer cRows.Close()

	for cRows.Next() {
		var cp models.FeelingCheckpoint
		var feeling string
		if err := cRows.Scan(&cp.Location.Latitude, &cp.Location.Longitude, &feeling, &cp.Timestamp); err != nil {
			return fmt.Errorf("failed to scan checkpoint: %w", err)
		}
		cp.Feeling = models.Feeling(feeling)
		j.Checkpoints = append(j.Checkpoints, cp)
	}
	return cRows.Err()
}
