package service

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/strideout/journey-backend-go/internal/models"
	"github.com/strideout/journey-backend-go/internal/repository"
)

// JourneyService handles business logic for journey ingest and queries
type JourneyService struct {
	repo      *repository.JourneyRepository
	analytics *AnalyticsService
}

// NewJourneyService creates a new journey service
func NewJourneyService(repo *repository.JourneyRepository, analytics *AnalyticsService) *JourneyService {
	return &JourneyService{repo: repo, analytics: analytics}
}

// CreateJourney validates and stores a journey, then triggers an
// analytics recomputation
func (s *JourneyService) CreateJourney(j *models.Journey) error {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	if j.EndTime < j.StartTime {
		return fmt.Errorf("journey end time %d is before start time %d", j.EndTime, j.StartTime)
	}
	if j.DurationSeconds == 0 {
		j.DurationSeconds = j.EndTime - j.StartTime
	}

	if err := s.repo.CreateJourney(j); err != nil {
		return err
	}

	// Data changed; refresh the cached analytics. A failed refresh does
	// not fail the ingest because the next read recomputes anyway.
	if _, err := s.analytics.Recompute(); err != nil {
		log.Printf("[JourneyService] Analytics recompute after ingest failed: %v", err)
	}

	return nil
}

// DeleteJourney removes a journey and triggers an analytics recomputation
func (s *JourneyService) DeleteJourney(id string) error {
	if err := s.repo.DeleteJourney(id); err != nil {
		return err
	}

	if _, err := s.analytics.Recompute(); err != nil {
		log.Printf("[JourneyService] Analytics recompute after delete failed: %v", err)
	}

	return nil
}

// GetJourneys retrieves journeys with filtering and pagination
func (s *JourneyService) GetJourneys(filter models.JourneyFilter) (*models.JourneysResponse, error) {
	if filter.StartTime > 0 && filter.EndTime > 0 && filter.StartTime >= filter.EndTime {
		return nil, fmt.Errorf("start time must be before end time")
	}

	journeys, total, err := s.repo.GetJourneys(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get journeys: %w", err)
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 200 {
		filter.PageSize = 50
	}
	totalPages := int((total + int64(filter.PageSize) - 1) / int64(filter.PageSize))

	return &models.JourneysResponse{
		Data:       journeys,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	}, nil
}
