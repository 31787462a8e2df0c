package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/platformbuilds/athlos-core/internal/models"
	"github.com/platformbuilds/athlos-core/internal/services"
)

type AthleteHandler struct {
	service *services.AthleteService
}

func NewAthleteHandler(service *services.AthleteService) *AthleteHandler {
	return &AthleteHandler{service: service}
}

// POST /api/v1/athletes
func (h *AthleteHandler) Create(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req models.CreateAthleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	athlete, err := h.service.Create(c.Request.Context(), p, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, athlete)
}

// GET /api/v1/athletes
func (h *AthleteHandler) List(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	params, err := parseListParams(c)
	if err != nil {
		respondError(c, err)
		return
	}
	athletes, err := h.service.List(c.Request.Context(), p, params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, athletes)
}
