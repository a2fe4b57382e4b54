package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/strideout/journey-backend-go/internal/models"
	"github.com/strideout/journey-backend-go/internal/service"
	"github.com/strideout/journey-backend-go/pkg/response"
)

// AnalyticsHandler handles HTTP requests for cumulative journey analytics
type AnalyticsHandler struct {
	service *service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(service *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// analyticsQuery carries optional engine overrides
type analyticsQuery struct {
	HeatmapCellMeters  float64 `form:"heatmapCellMeters"`
	SafeAreaCellMeters float64 `form:"safeAreaCellMeters"`
	ClusterRadius      float64 `form:"clusterRadiusMeters"`
	PriorWindowStart   int64   `form:"priorWindowStart"`
	PriorWindowEnd     int64   `form:"priorWindowEnd"`
}

func (q analyticsQuery) options() models.AnalyticsOptions {
	return models.AnalyticsOptions{
		HeatmapCellMeters:  q.HeatmapCellMeters,
		SafeAreaCellMeters: q.SafeAreaCellMeters,
		ClusterRadiusM:     q.ClusterRadius,
		PriorWindowStart:   q.PriorWindowStart,
		PriorWindowEnd:     q.PriorWindowEnd,
	}
}

func (q analyticsQuery) isZero() bool {
	return q == analyticsQuery{}
}

// GetAnalytics handles GET /api/v1/analytics. Without query parameters it
// serves the cached result; with overrides it computes a one-off result.
func (h *AnalyticsHandler) GetAnalytics(c *gin.Context) {
	var q analyticsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "invalid query parameters: "+err.Error())
		return
	}

	var (
		result *models.AnalyticsResult
		err    error
	)
	if q.isZero() {
		result, err = h.service.GetAnalytics()
	} else {
		result, err = h.service.GetAnalyticsWithOptions(q.options())
	}
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, result)
}

// GetStats handles GET /api/v1/analytics/stats
func (h *AnalyticsHandler) GetStats(c *gin.Context) {
	result, err := h.service.GetAnalytics()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, result.Stats)
}

// GetHeatmap handles GET /api/v1/analytics/heatmap
func (h *AnalyticsHandler) GetHeatmap(c *gin.Context) {
	var q analyticsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "invalid query parameters: "+err.Error())
		return
	}

	var (
		result *models.AnalyticsResult
		err    error
	)
	if q.isZero() {
		result, err = h.service.GetAnalytics()
	} else {
		result, err = h.service.GetAnalyticsWithOptions(q.options())
	}
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	cellMeters := q.HeatmapCellMeters
	if cellMeters <= 0 {
		cellMeters = models.DefaultHeatmapCellMeters
	}

	maxValue := 0
	for _, cell := range result.HeatCells {
		if cell.SampleCount > maxValue {
			maxValue = cell.SampleCount
		}
	}

	response.Success(c, models.HeatmapResponse{
		Cells:      result.HeatCells,
		Count:      len(result.HeatCells),
		MaxValue:   maxValue,
		CellMeters: cellMeters,
	})
}

// Recompute handles POST /api/v1/analytics/recompute
func (h *AnalyticsHandler) Recompute(c *gin.Context) {
	result, err := h.service.Recompute()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, result)
}
