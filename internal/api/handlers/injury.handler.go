package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/platformbuilds/athlos-core/internal/models"
	"github.com/platformbuilds/athlos-core/internal/services"
)

type InjuryHandler struct {
	service *services.InjuryService
}

func NewInjuryHandler(service *services.InjuryService) *InjuryHandler {
	return &InjuryHandler{service: service}
}

// POST /api/v1/injuries
func (h *InjuryHandler) Create(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req models.CreateInjuryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	injury, err := h.service.Create(c.Request.Context(), p, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, injury)
}

// GET /api/v1/injuries
func (h *InjuryHandler) List(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	params, err := parseListParams(c)
	if err != nil {
		respondError(c, err)
		return
	}
	injuries, err := h.service.List(c.Request.Context(), p, params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, injuries)
}
