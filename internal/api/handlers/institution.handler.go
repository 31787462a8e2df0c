package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/platformbuilds/athlos-core/internal/apperr"
	"github.com/platformbuilds/athlos-core/internal/models"
	"github.com/platformbuilds/athlos-core/internal/services"
)

type InstitutionHandler struct {
	service *services.InstitutionService
}

func NewInstitutionHandler(service *services.InstitutionService) *InstitutionHandler {
	return &InstitutionHandler{service: service}
}

// POST /api/v1/institutions
func (h *InstitutionHandler) Create(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req models.CreateInstitutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	inst, err := h.service.Create(c.Request.Context(), p, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, inst)
}

// GET /api/v1/institutions
func (h *InstitutionHandler) List(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	params, err := parseListParams(c)
	if err != nil {
		respondError(c, err)
		return
	}
	institutions, err := h.service.List(c.Request.Context(), p, params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, institutions)
}

// GET /api/v1/institutions/:id
func (h *InstitutionHandler) Get(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, apperr.InvalidArgument("invalid institution id"))
		return
	}
	inst, err := h.service.Get(c.Request.Context(), p, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, inst)
}

// DELETE /api/v1/institutions/:id
func (h *InstitutionHandler) Delete(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, apperr.InvalidArgument("invalid institution id"))
		return
	}
	if err := h.service.Delete(c.Request.Context(), p, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "institution deleted"})
}
