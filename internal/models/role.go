package models

import (
	"time"

	"github.com/google/uuid"
)

// Role codes are a closed set. There is no hierarchy: an admin is not
// implicitly a coach, every endpoint names its allow-list explicitly.
const (
	RoleAdmin   = "admin"
	RoleCoach   = "coach"
	RoleAthlete = "athlete"
)

// ValidRoleCode reports whether code is one of the three known roles.
func ValidRoleCode(code string) bool {
	switch code {
	case RoleAdmin, RoleCoach, RoleAthlete:
		return true
	}
	return false
}

// Role is a row in user_role. The table is seeded at schema creation and
// never mutated at runtime.
type Role struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Code        string    `db:"code" json:"code"`
	Name        string    `db:"name" json:"name"`
	Description *string   `db:"description" json:"description,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
