package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/platformbuilds/athlos-core/internal/models"
)

func (s *Store) InsertAthlete(ctx context.Context, a *models.Athlete) error {
	var times rowTimes
	err := s.db.GetContext(ctx, &times, `
		INSERT INTO athlete (id, institution_id, user_id, first_name, last_name, dob, gender, primary_sport_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at`,
		a.ID, a.InstitutionID, a.UserID, a.FirstName, a.LastName, a.DOB, a.Gender, a.PrimarySportID)
	if err != nil {
		return fmt.Errorf("insert athlete: %w", err)
	}
	a.CreatedAt = times.CreatedAt
	a.UpdatedAt = times.UpdatedAt
	return nil
}

func (s *Store) ListAthletesByInstitution(ctx context.Context, institutionID uuid.UUID, params models.ListParams) ([]models.Athlete, error) {
	athletes := []models.Athlete{}
	err := s.db.SelectContext(ctx, &athletes, `
		SELECT id, institution_id, user_id, first_name, last_name, dob, gender,
		       primary_sport_id, created_at, updated_at
		FROM athlete
		WHERE institution_id = $1
		ORDER BY created_at, id
		LIMIT $2 OFFSET $3`, institutionID, params.Limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("list athletes: %w", err)
	}
	return athletes, nil
}
