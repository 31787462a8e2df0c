package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/platformbuilds/athlos-core/internal/models"
)

// Scope guard lookups. Each filters on primary key AND institution in a
// single statement - never fetch-then-compare - so a missing row and an
// out-of-tenant row produce the same nil result. One institution must never
// learn that another institution has taken an id.

func (s *Store) ScopeAthlete(ctx context.Context, athleteID, institutionID uuid.UUID) (*models.Athlete, error) {
	var athlete models.Athlete
	err := s.db.GetContext(ctx, &athlete, `
		SELECT id, institution_id, user_id, first_name, last_name, dob, gender,
		       primary_sport_id, created_at, updated_at
		FROM athlete
		WHERE id = $1 AND institution_id = $2`, athleteID, institutionID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scope athlete: %w", err)
	}
	return &athlete, nil
}

func (s *Store) ScopeTeam(ctx context.Context, teamID, institutionID uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := s.db.GetContext(ctx, &team, `
		SELECT id, institution_id, name, sport_id, coach_id, season, created_at, updated_at
		FROM team
		WHERE id = $1 AND institution_id = $2`, teamID, institutionID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scope team: %w", err)
	}
	return &team, nil
}

// ScopeSession joins through team: session itself carries no institution
// column, its effective institution is always its team's.
func (s *Store) ScopeSession(ctx context.Context, sessionID, institutionID uuid.UUID) (*models.Session, error) {
	var sess models.Session
	err := s.db.GetContext(ctx, &sess, `
		SELECT s.id, s.team_id, s.coach_id, s.title, s.start_ts, s.end_ts,
		       s.location, s.notes, s.created_at, s.updated_at
		FROM session s
		JOIN team t ON t.id = s.team_id
		WHERE s.id = $1 AND t.institution_id = $2`, sessionID, institutionID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scope session: %w", err)
	}
	return &sess, nil
}

func (s *Store) ScopeSport(ctx context.Context, sportID, institutionID uuid.UUID) (*models.Sport, error) {
	var sport models.Sport
	err := s.db.GetContext(ctx, &sport, `
		SELECT id, institution_id, code, name, created_at, updated_at
		FROM sport
		WHERE id = $1 AND institution_id = $2`, sportID, institutionID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scope sport: %w", err)
	}
	return &sport, nil
}

func (s *Store) ScopeAssessmentType(ctx context.Context, typeID, institutionID uuid.UUID) (*models.AssessmentType, error) {
	var at models.AssessmentType
	err := s.db.GetContext(ctx, &at, `
		SELECT id, institution_id, name, code, unit, created_at, updated_at
		FROM assessment_type
		WHERE id = $1 AND institution_id = $2`, typeID, institutionID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scope assessment type: %w", err)
	}
	return &at, nil
}

// ScopeUser confirms a plain user reference inside the institution.
func (s *Store) ScopeUser(ctx context.Context, userID, institutionID uuid.UUID) (*models.User, error) {
	var user models.User
	err := s.db.GetContext(ctx, &user, `
		SELECT `+userColumns+`
		FROM app_user u
		JOIN user_role r ON r.id = u.role_id
		WHERE u.id = $1 AND u.institution_id = $2`, userID, institutionID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scope user: %w", err)
	}
	return &user, nil
}

// ScopeCoach additionally requires the referenced user's role to be exactly
// coach. The role predicate is part of the same statement.
func (s *Store) ScopeCoach(ctx context.Context, userID, institutionID uuid.UUID) (*models.User, error) {
	var user models.User
	err := s.db.GetContext(ctx, &user, `
		SELECT `+userColumns+`
		FROM app_user u
		JOIN user_role r ON r.id = u.role_id
		WHERE u.id = $1 AND u.institution_id = $2 AND r.code = 'coach'`, userID, institutionID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scope coach: %w", err)
	}
	return &user, nil
}
