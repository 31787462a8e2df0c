package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/platformbuilds/athlos-core/internal/models"
)

func (s *Store) InsertSport(ctx context.Context, sport *models.Sport) error {
	var times rowTimes
	err := s.db.GetContext(ctx, &times, `
		INSERT INTO sport (id, institution_id, code, name)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at`,
		sport.ID, sport.InstitutionID, sport.Code, sport.Name)
	if err != nil {
		return fmt.Errorf("insert sport: %w", err)
	}
	sport.CreatedAt = times.CreatedAt
	sport.UpdatedAt = times.UpdatedAt
	return nil
}

func (s *Store) ListSportsByInstitution(ctx context.Context, institutionID uuid.UUID, params models.ListParams) ([]models.Sport, error) {
	sports := []models.Sport{}
	err := s.db.SelectContext(ctx, &sports, `
		SELECT id, institution_id, code, name, created_at, updated_at
		FROM sport
		WHERE institution_id = $1
		ORDER BY created_at, id
		LIMIT $2 OFFSET $3`, institutionID, params.Limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("list sports: %w", err)
	}
	return sports, nil
}
