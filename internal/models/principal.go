package models

import "github.com/google/uuid"

// Principal is the authenticated identity attached to every request after
// token verification: user + role + institution. InstitutionID is null only
// for a bootstrap admin that has not been assigned to an institution yet.
type Principal struct {
	UserID        uuid.UUID
	Email         string
	RoleCode      string
	InstitutionID uuid.NullUUID
}

// Institution returns the principal's institution id. ok is false for a
// bootstrap admin without one; tenant-scoped operations must refuse such
// callers rather than guess a tenant.
func (p Principal) Institution() (uuid.UUID, bool) {
	return p.InstitutionID.UUID, p.InstitutionID.Valid
}
