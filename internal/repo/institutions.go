package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/platformbuilds/athlos-core/internal/models"
)

func (s *Store) InsertInstitution(ctx context.Context, inst *models.Institution) error {
	var times rowTimes
	err := s.db.GetContext(ctx, &times, `
		INSERT INTO institution (id, name, address, timezone)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at`,
		inst.ID, inst.Name, inst.Address, inst.Timezone)
	if err != nil {
		return fmt.Errorf("insert institution: %w", err)
	}
	inst.CreatedAt = times.CreatedAt
	inst.UpdatedAt = times.UpdatedAt
	return nil
}

func (s *Store) GetInstitution(ctx context.Context, id uuid.UUID) (*models.Institution, error) {
	var inst models.Institution
	err := s.db.GetContext(ctx, &inst, `
		SELECT id, name, address, timezone, created_at, updated_at
		FROM institution WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get institution: %w", err)
	}
	return &inst, nil
}

func (s *Store) ListInstitutions(ctx context.Context, params models.ListParams) ([]models.Institution, error) {
	institutions := []models.Institution{}
	err := s.db.SelectContext(ctx, &institutions, `
		SELECT id, name, address, timezone, created_at, updated_at
		FROM institution
		ORDER BY created_at, id
		LIMIT $1 OFFSET $2`, params.Limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("list institutions: %w", err)
	}
	return institutions, nil
}

// DeleteInstitution removes the tenant; child rows go with it via ON DELETE
// CASCADE. Reports whether a row was actually deleted.
func (s *Store) DeleteInstitution(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM institution WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete institution: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete institution: %w", err)
	}
	return n > 0, nil
}
