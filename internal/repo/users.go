package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/platformbuilds/athlos-core/internal/apperr"
	"github.com/platformbuilds/athlos-core/internal/models"
)

const userColumns = `
u.id, u.institution_id, u.email, u.full_name, u.role_id, r.code AS role_code,
u.phone, u.password, u.is_active, u.created_at, u.updated_at`

// GetUserByID returns the user joined with its role code, or nil if absent.
func (s *Store) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := s.db.GetContext(ctx, &user, `
		SELECT `+userColumns+`
		FROM app_user u
		JOIN user_role r ON r.id = u.role_id
		WHERE u.id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return &user, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.GetContext(ctx, &user, `
		SELECT `+userColumns+`
		FROM app_user u
		JOIN user_role r ON r.id = u.role_id
		WHERE u.email = $1`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &user, nil
}

// GetRoleByCode resolves a role from the seeded catalogue.
func (s *Store) GetRoleByCode(ctx context.Context, code string) (*models.Role, error) {
	var role models.Role
	err := s.db.GetContext(ctx, &role, `
		SELECT id, code, name, description, created_at, updated_at
		FROM user_role WHERE code = $1`, code)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get role by code: %w", err)
	}
	return &role, nil
}

// CountUsers backs the bootstrap check: the very first registration may
// create an unassigned admin.
func (s *Store) CountUsers(ctx context.Context) (int, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM app_user`); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

// InsertUser persists a new user. A duplicate email surfaces as Conflict.
func (s *Store) InsertUser(ctx context.Context, u *models.User) error {
	var times rowTimes
	err := s.db.GetContext(ctx, &times, `
		INSERT INTO app_user (id, institution_id, email, full_name, role_id, phone, password, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at`,
		u.ID, u.InstitutionID, u.Email, u.FullName, u.RoleID, u.Phone, u.PasswordHash, u.IsActive)
	if isUniqueViolation(err) {
		return apperr.Conflict("user already exists")
	}
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	u.CreatedAt = times.CreatedAt
	u.UpdatedAt = times.UpdatedAt
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
