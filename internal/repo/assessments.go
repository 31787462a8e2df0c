package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/platformbuilds/athlos-core/internal/models"
)

func (s *Store) InsertAssessmentType(ctx context.Context, at *models.AssessmentType) error {
	var times rowTimes
	err := s.db.GetContext(ctx, &times, `
		INSERT INTO assessment_type (id, institution_id, name, code, unit)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`,
		at.ID, at.InstitutionID, at.Name, at.Code, at.Unit)
	if err != nil {
		return fmt.Errorf("insert assessment type: %w", err)
	}
	at.CreatedAt = times.CreatedAt
	at.UpdatedAt = times.UpdatedAt
	return nil
}

func (s *Store) ListAssessmentTypesByInstitution(ctx context.Context, institutionID uuid.UUID, params models.ListParams) ([]models.AssessmentType, error) {
	types := []models.AssessmentType{}
	err := s.db.SelectContext(ctx, &types, `
		SELECT id, institution_id, name, code, unit, created_at, updated_at
		FROM assessment_type
		WHERE institution_id = $1
		ORDER BY created_at, id
		LIMIT $2 OFFSET $3`, institutionID, params.Limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("list assessment types: %w", err)
	}
	return types, nil
}

func (s *Store) InsertAssessmentResult(ctx context.Context, ar *models.AssessmentResult) error {
	var times recordedTimes
	err := s.db.GetContext(ctx, &times, `
		INSERT INTO assessment_result (id, athlete_id, assessment_type_id, value, notes, recorded_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING recorded_at, created_at, updated_at`,
		ar.ID, ar.AthleteID, ar.AssessmentTypeID, ar.Value, ar.Notes, ar.RecordedBy)
	if err != nil {
		return fmt.Errorf("insert assessment result: %w", err)
	}
	ar.RecordedAt = times.RecordedAt
	ar.CreatedAt = times.CreatedAt
	ar.UpdatedAt = times.UpdatedAt
	return nil
}

// ListAssessmentResultsByInstitution scopes through the athlete reference.
func (s *Store) ListAssessmentResultsByInstitution(ctx context.Context, institutionID uuid.UUID, params models.ListParams) ([]models.AssessmentResult, error) {
	results := []models.AssessmentResult{}
	err := s.db.SelectContext(ctx, &results, `
		SELECT ar.id, ar.athlete_id, ar.assessment_type_id, ar.value, ar.notes,
		       ar.recorded_by, ar.recorded_at, ar.created_at, ar.updated_at
		FROM assessment_result ar
		JOIN athlete a ON a.id = ar.athlete_id
		WHERE a.institution_id = $1
		ORDER BY ar.created_at, ar.id
		LIMIT $2 OFFSET $3`, institutionID, params.Limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("list assessment results: %w", err)
	}
	return results, nil
}
