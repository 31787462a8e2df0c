// Package services implements the resource services. Every operation runs
// the same sequence: role allow-list check, tenant scope checks for each
// referenced entity, then a single atomic store operation. A failed check
// terminates the request before anything is written.
package services

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/platformbuilds/athlos-core/internal/apperr"
	"github.com/platformbuilds/athlos-core/internal/models"
)

// anyRole is the allow-list for list endpoints: any authenticated principal.
var anyRole = []string{models.RoleAdmin, models.RoleCoach, models.RoleAthlete}

// creatorRoles is the allow-list for the coach-eligible create endpoints.
var creatorRoles = []string{models.RoleAdmin, models.RoleCoach}

// validateListParams enforces the pagination contract: 1 <= limit <= 200,
// offset >= 0.
func validateListParams(p models.ListParams) error {
	if p.Limit < 1 || p.Limit > models.MaxListLimit {
		return apperr.InvalidArgument(fmt.Sprintf("limit must be between 1 and %d", models.MaxListLimit))
	}
	if p.Offset < 0 {
		return apperr.InvalidArgument("offset must not be negative")
	}
	return nil
}

// requireInstitution rejects principals without a tenant (a bootstrap admin
// not yet assigned to an institution) from tenant-scoped operations.
func requireInstitution(p models.Principal) (uuid.UUID, error) {
	inst, ok := p.Institution()
	if !ok {
		return uuid.Nil, apperr.Forbidden("no institution assigned")
	}
	return inst, nil
}
