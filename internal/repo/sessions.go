package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/platformbuilds/athlos-core/internal/models"
)

func (s *Store) InsertSession(ctx context.Context, sess *models.Session) error {
	var times rowTimes
	err := s.db.GetContext(ctx, &times, `
		INSERT INTO session (id, team_id, coach_id, title, start_ts, end_ts, location, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at`,
		sess.ID, sess.TeamID, sess.CoachID, sess.Title, sess.StartTS, sess.EndTS, sess.Location, sess.Notes)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	sess.CreatedAt = times.CreatedAt
	sess.UpdatedAt = times.UpdatedAt
	return nil
}

// ListSessionsByInstitution joins through team because session has no
// institution column of its own.
func (s *Store) ListSessionsByInstitution(ctx context.Context, institutionID uuid.UUID, params models.ListParams) ([]models.Session, error) {
	sessions := []models.Session{}
	err := s.db.SelectContext(ctx, &sessions, `
		SELECT s.id, s.team_id, s.coach_id, s.title, s.start_ts, s.end_ts,
		       s.location, s.notes, s.created_at, s.updated_at
		FROM session s
		JOIN team t ON t.id = s.team_id
		WHERE t.institution_id = $1
		ORDER BY s.created_at, s.id
		LIMIT $2 OFFSET $3`, institutionID, params.Limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}
