package service

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/strideout/journey-backend-go/internal/analysis"
	"github.com/strideout/journey-backend-go/internal/models"
	"github.com/strideout/journey-backend-go/internal/repository"
)

// priorWindowDays is the length of the trend-comparison window: the prior
// boundary hull covers journeys started between 14 and 7 days ago.
const priorWindowDays = 7

// AnalyticsService runs the analytics engine over journey snapshots and
// keeps the most recent result for readers.
//
// Recomputation is triggered per data-change event, not continuously. If
// two recomputations race, the one that started later wins the cache
// (last-write-wins); a stale run finishes and is discarded, which is safe
// because results are pure functions of their input snapshot.
type AnalyticsService struct {
	repo     *repository.JourneyRepository
	defaults models.AnalyticsOptions

	mu        sync.RWMutex
	latest    *models.AnalyticsResult
	latestGen uint64
	gen       uint64
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(repo *repository.JourneyRepository, defaults models.AnalyticsOptions) *AnalyticsService {
	return &AnalyticsService{repo: repo, defaults: defaults}
}

// Recompute loads a fresh snapshot, runs the engine, and installs the
// result under last-write-wins semantics
func (s *AnalyticsService) Recompute() (*models.AnalyticsResult, error) {
	s.mu.Lock()
	s.gen++
	myGen := s.gen
	s.mu.Unlock()

	result, err := s.compute(s.defaults)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if myGen > s.latestGen {
		s.latest = result
		s.latestGen = myGen
	}
	s.mu.Unlock()

	return result, nil
}

// GetAnalytics returns the cached result, computing one first if no
// recomputation has run yet
func (s *AnalyticsService) GetAnalytics() (*models.AnalyticsResult, error) {
	s.mu.RLock()
	cached := s.latest
	s.mu.RUnlock()

	if cached != nil {
		return cached, nil
	}
	return s.Recompute()
}

// GetAnalyticsWithOptions runs a one-off computation with caller-supplied
// engine options. The result is not cached; the cache only ever holds
// results for the configured defaults.
func (s *AnalyticsService) GetAnalyticsWithOptions(opts models.AnalyticsOptions) (*models.AnalyticsResult, error) {
	return s.compute(opts)
}

func (s *AnalyticsService) compute(opts models.AnalyticsOptions) (*models.AnalyticsResult, error) {
	journeys, err := s.repo.LoadSnapshot()
	if err != nil {
		return nil, fmt.Errorf("failed to load journey snapshot: %w", err)
	}

	if opts.PriorWindowEnd <= opts.PriorWindowStart {
		now := time.Now().Unix()
		opts.PriorWindowStart = now - 2*priorWindowDays*86400
		opts.PriorWindowEnd = now - priorWindowDays*86400
	}

	start := time.Now()
	result := analysis.ComputeCumulativeAnalytics(journeys, opts)
	log.Printf("[AnalyticsService] Recomputed analytics for %d journeys in %v", len(journeys), time.Since(start))

	return &result, nil
}
