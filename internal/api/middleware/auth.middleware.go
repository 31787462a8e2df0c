package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/platformbuilds/athlos-core/internal/apperr"
	"github.com/platformbuilds/athlos-core/internal/auth"
	"github.com/platformbuilds/athlos-core/internal/models"
	"github.com/platformbuilds/athlos-core/pkg/logger"
)

const principalKey = "principal"

// PrincipalStore loads the user behind a verified token subject.
type PrincipalStore interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// AuthMiddleware is the identity resolver: bearer token in, principal on
// the context out. Applied to every route group that requires
// authentication; failures are a uniform 401 so callers cannot distinguish
// a bad signature from a deleted user.
func AuthMiddleware(tokens *auth.TokenService, store PrincipalStore, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c)
		if token == "" {
			abortUnauthenticated(c)
			return
		}

		subject, err := tokens.Verify(token)
		if err != nil {
			abortUnauthenticated(c)
			return
		}

		user, err := store.GetUserByID(c.Request.Context(), subject)
		if err != nil {
			log.Error("principal lookup failed", "error", err)
			abortUnauthenticated(c)
			return
		}
		if user == nil || !user.IsActive {
			abortUnauthenticated(c)
			return
		}

		c.Set(principalKey, models.Principal{
			UserID:        user.ID,
			Email:         user.Email,
			RoleCode:      user.RoleCode,
			InstitutionID: user.InstitutionID,
		})

		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")

		c.Next()
	}
}

func abortUnauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(apperr.Status(apperr.Unauthenticated("")), gin.H{
		"detail": "could not validate credentials",
	})
}

// extractBearerToken reads the Authorization header. Only the Bearer scheme
// is accepted; no cookies, no query parameters.
func extractBearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}

// PrincipalFromContext returns the principal set by AuthMiddleware.
func PrincipalFromContext(c *gin.Context) (models.Principal, bool) {
	v, exists := c.Get(principalKey)
	if !exists {
		return models.Principal{}, false
	}
	p, ok := v.(models.Principal)
	return p, ok
}
