package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/platformbuilds/athlos-core/internal/models"
	"github.com/platformbuilds/athlos-core/internal/services"
)

type AttendanceHandler struct {
	service *services.AttendanceService
}

func NewAttendanceHandler(service *services.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{service: service}
}

// POST /api/v1/attendance
func (h *AttendanceHandler) Create(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req models.CreateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	record, err := h.service.Create(c.Request.Context(), p, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

// GET /api/v1/attendance
func (h *AttendanceHandler) List(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	params, err := parseListParams(c)
	if err != nil {
		respondError(c, err)
		return
	}
	records, err := h.service.List(c.Request.Context(), p, params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}
