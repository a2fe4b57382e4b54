package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/strideout/journey-backend-go/internal/config"
	"github.com/strideout/journey-backend-go/internal/database"
	"github.com/strideout/journey-backend-go/internal/handler"
	"github.com/strideout/journey-backend-go/internal/middleware"
	"github.com/strideout/journey-backend-go/internal/models"
	"github.com/strideout/journey-backend-go/internal/repository"
	"github.com/strideout/journey-backend-go/internal/service"
)

// SetupRouter wires repositories, services, and handlers and returns the
// configured engine
func SetupRouter(cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS())

	journeyRepo := repository.NewJourneyRepository(database.GetDB())
	analyticsService := service.NewAnalyticsService(journeyRepo, models.AnalyticsOptions{
		HeatmapCellMeters:  cfg.HeatmapCellMeters,
		SafeAreaCellMeters: cfg.SafeAreaCellMeters,
		ClusterRadiusM:     cfg.ClusterRadiusM,
	})
	journeyService := service.NewJourneyService(journeyRepo, analyticsService)

	journeyHandler := handler.NewJourneyHandler(journeyService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Journey Analytics API is running",
		})
	})

	api := r.Group("/api/v1")
	{
		// Writes trigger a full analytics rebuild, so keep them throttled.
		writeLimit := middleware.RateLimit(60, time.Minute)

		journeys := api.Group("/journeys")
		{
			journeys.GET("", journeyHandler.GetJourneys)
			journeys.POST("", writeLimit, journeyHandler.CreateJourney)
			journeys.DELETE("/:id", writeLimit, journeyHandler.DeleteJourney)
		}

		analytics := api.Group("/analytics")
		{
			analytics.GET("", analyticsHandler.GetAnalytics)
			analytics.GET("/stats", analyticsHandler.GetStats)
			analytics.GET("/heatmap", analyticsHandler.GetHeatmap)
			analytics.POST("/recompute", writeLimit, analyticsHandler.Recompute)
		}
	}

	return r
}
