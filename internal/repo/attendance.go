package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/platformbuilds/athlos-core/internal/models"
)

func (s *Store) InsertAttendance(ctx context.Context, a *models.Attendance) error {
	var times recordedTimes
	err := s.db.GetContext(ctx, &times, `
		INSERT INTO attendance (id, session_id, athlete_id, status, recorded_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING recorded_at, created_at, updated_at`,
		a.ID, a.SessionID, a.AthleteID, a.Status, a.RecordedBy)
	if err != nil {
		return fmt.Errorf("insert attendance: %w", err)
	}
	a.RecordedAt = times.RecordedAt
	a.CreatedAt = times.CreatedAt
	a.UpdatedAt = times.UpdatedAt
	return nil
}

// ListAttendanceByInstitution scopes through the athlete reference.
func (s *Store) ListAttendanceByInstitution(ctx context.Context, institutionID uuid.UUID, params models.ListParams) ([]models.Attendance, error) {
	records := []models.Attendance{}
	err := s.db.SelectContext(ctx, &records, `
		SELECT att.id, att.session_id, att.athlete_id, att.status, att.recorded_by,
		       att.recorded_at, att.created_at, att.updated_at
		FROM attendance att
		JOIN athlete a ON a.id = att.athlete_id
		WHERE a.institution_id = $1
		ORDER BY att.created_at, att.id
		LIMIT $2 OFFSET $3`, institutionID, params.Limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	return records, nil
}
