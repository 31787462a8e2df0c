package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/platformbuilds/athlos-core/internal/models"
)

func (s *Store) InsertTeam(ctx context.Context, t *models.Team) error {
	var times rowTimes
	err := s.db.GetContext(ctx, &times, `
		INSERT INTO team (id, institution_id, name, sport_id, coach_id, season)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`,
		t.ID, t.InstitutionID, t.Name, t.SportID, t.CoachID, t.Season)
	if err != nil {
		return fmt.Errorf("insert team: %w", err)
	}
	t.CreatedAt = times.CreatedAt
	t.UpdatedAt = times.UpdatedAt
	return nil
}

func (s *Store) ListTeamsByInstitution(ctx context.Context, institutionID uuid.UUID, params models.ListParams) ([]models.Team, error) {
	teams := []models.Team{}
	err := s.db.SelectContext(ctx, &teams, `
		SELECT id, institution_id, name, sport_id, coach_id, season, created_at, updated_at
		FROM team
		WHERE institution_id = $1
		ORDER BY created_at, id
		LIMIT $2 OFFSET $3`, institutionID, params.Limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return teams, nil
}
