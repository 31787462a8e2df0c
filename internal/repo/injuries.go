package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/platformbuilds/athlos-core/internal/models"
)

func (s *Store) InsertInjury(ctx context.Context, inj *models.Injury) error {
	var times rowTimes
	err := s.db.GetContext(ctx, &times, `
		INSERT INTO injury (id, athlete_id, reported_by, description, diagnosis, date_reported, status, restricted)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at`,
		inj.ID, inj.AthleteID, inj.ReportedBy, inj.Description, inj.Diagnosis, inj.DateReported, inj.Status, inj.Restricted)
	if err != nil {
		return fmt.Errorf("insert injury: %w", err)
	}
	inj.CreatedAt = times.CreatedAt
	inj.UpdatedAt = times.UpdatedAt
	return nil
}

// ListInjuriesByInstitution scopes through the athlete reference.
func (s *Store) ListInjuriesByInstitution(ctx context.Context, institutionID uuid.UUID, params models.ListParams) ([]models.Injury, error) {
	injuries := []models.Injury{}
	err := s.db.SelectContext(ctx, &injuries, `
		SELECT i.id, i.athlete_id, i.reported_by, i.description, i.diagnosis,
		       i.date_reported, i.status, i.restricted, i.created_at, i.updated_at
		FROM injury i
		JOIN athlete a ON a.id = i.athlete_id
		WHERE a.institution_id = $1
		ORDER BY i.created_at, i.id
		LIMIT $2 OFFSET $3`, institutionID, params.Limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("list injuries: %w", err)
	}
	return injuries, nil
}
