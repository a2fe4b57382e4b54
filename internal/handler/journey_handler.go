package handler

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/strideout/journey-backend-go/internal/models"
	"github.com/strideout/journey-backend-go/internal/service"
	"github.com/strideout/journey-backend-go/pkg/response"
)

// JourneyHandler handles HTTP requests for journeys
type JourneyHandler struct {
	service *service.JourneyService
}

// NewJourneyHandler creates a new journey handler
func NewJourneyHandler(service *service.JourneyService) *JourneyHandler {
	return &JourneyHandler{service: service}
}

// CreateJourney handles POST /api/v1/journeys
func (h *JourneyHandler) CreateJourney(c *gin.Context) {
	var journey models.Journey
	if err := c.ShouldBindJSON(&journey); err != nil {
		response.BadRequest(c, "invalid journey payload: "+err.Error())
		return
	}

	if err := h.service.CreateJourney(&journey); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, gin.H{"id": journey.ID})
}

// GetJourneys handles GET /api/v1/journeys
func (h *JourneyHandler) GetJourneys(c *gin.Context) {
	var filter models.JourneyFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "invalid query parameters: "+err.Error())
		return
	}

	result, err := h.service.GetJourneys(filter)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, result)
}

// DeleteJourney handles DELETE /api/v1/journeys/:id
func (h *JourneyHandler) DeleteJourney(c *gin.Context) {
	id := c.Param("id")

	if err := h.service.DeleteJourney(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			response.NotFound(c, "journey not found: "+id)
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{"id": id})
}
