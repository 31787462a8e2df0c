package auth

import (
	"github.com/platformbuilds/athlos-core/internal/apperr"
	"github.com/platformbuilds/athlos-core/internal/models"
)

// RequireRole permits the principal only if its role code is in the
// allow-list. Exact match, no hierarchy: admin does not imply coach. Kept
// as a pure function so the policy is testable without any transport.
func RequireRole(p models.Principal, allowed ...string) error {
	for _, role := range allowed {
		if p.RoleCode == role {
			return nil
		}
	}
	return apperr.Forbidden("insufficient role")
}
