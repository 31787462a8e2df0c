// Package handlers contains the thin gin handlers. Each one binds the
// request, pulls the principal off the context and delegates to a service;
// all policy lives below this layer.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/platformbuilds/athlos-core/internal/apperr"
	"github.com/platformbuilds/athlos-core/internal/api/middleware"
	"github.com/platformbuilds/athlos-core/internal/models"
)

// respondError renders the taxonomy mapping: {"detail": message} with the
// status for the error's kind.
func respondError(c *gin.Context, err error) {
	c.JSON(apperr.Status(err), gin.H{"detail": apperr.DetailOf(err)})
}

func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body: " + err.Error()})
}

// principal returns the authenticated principal; a missing one means the
// route was wired without AuthMiddleware, which is a programming error, but
// the caller still gets a clean 401.
func principal(c *gin.Context) (models.Principal, bool) {
	p, ok := middleware.PrincipalFromContext(c)
	if !ok {
		respondError(c, apperr.Unauthenticated("could not validate credentials"))
	}
	return p, ok
}

// parseListParams reads limit/offset query parameters, applying the
// defaults when absent. Range checks happen in the services; this only
// rejects values that are not integers at all.
func parseListParams(c *gin.Context) (models.ListParams, error) {
	params := models.DefaultListParams()

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return params, apperr.InvalidArgument("limit must be an integer")
		}
		params.Limit = limit
	}
	if raw := c.Query("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			return params, apperr.InvalidArgument("offset must be an integer")
		}
		params.Offset = offset
	}
	return params, nil
}
