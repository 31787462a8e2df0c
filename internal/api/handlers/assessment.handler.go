package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/platformbuilds/athlos-core/internal/models"
	"github.com/platformbuilds/athlos-core/internal/services"
)

type AssessmentHandler struct {
	service *services.AssessmentService
}

func NewAssessmentHandler(service *services.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{service: service}
}

// POST /api/v1/assessment-types
func (h *AssessmentHandler) CreateType(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req models.CreateAssessmentTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	at, err := h.service.CreateType(c.Request.Context(), p, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, at)
}

// GET /api/v1/assessment-types
func (h *AssessmentHandler) ListTypes(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	params, err := parseListParams(c)
	if err != nil {
		respondError(c, err)
		return
	}
	types, err := h.service.ListTypes(c.Request.Context(), p, params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, types)
}

// POST /api/v1/assessments
func (h *AssessmentHandler) CreateResult(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req models.CreateAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	result, err := h.service.CreateResult(c.Request.Context(), p, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// GET /api/v1/assessments
func (h *AssessmentHandler) ListResults(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	params, err := parseListParams(c)
	if err != nil {
		respondError(c, err)
		return
	}
	results, err := h.service.ListResults(c.Request.Context(), p, params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}
