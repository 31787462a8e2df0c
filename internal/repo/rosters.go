package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/platformbuilds/athlos-core/internal/models"
)

func (s *Store) InsertRoster(ctx context.Context, r *models.Roster) error {
	var times rowTimes
	err := s.db.GetContext(ctx, &times, `
		INSERT INTO roster (id, team_id, athlete_id, jersey_no, role, joined_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`,
		r.ID, r.TeamID, r.AthleteID, r.JerseyNo, r.Role, r.JoinedAt)
	if err != nil {
		return fmt.Errorf("insert roster: %w", err)
	}
	r.CreatedAt = times.CreatedAt
	r.UpdatedAt = times.UpdatedAt
	return nil
}

// ListRostersByInstitution scopes through team, the roster's tenant anchor.
func (s *Store) ListRostersByInstitution(ctx context.Context, institutionID uuid.UUID, params models.ListParams) ([]models.Roster, error) {
	rosters := []models.Roster{}
	err := s.db.SelectContext(ctx, &rosters, `
		SELECT r.id, r.team_id, r.athlete_id, r.jersey_no, r.role, r.joined_at,
		       r.created_at, r.updated_at
		FROM roster r
		JOIN team t ON t.id = r.team_id
		WHERE t.institution_id = $1
		ORDER BY r.created_at, r.id
		LIMIT $2 OFFSET $3`, institutionID, params.Limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("list rosters: %w", err)
	}
	return rosters, nil
}
