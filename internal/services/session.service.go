package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/platformbuilds/athlos-core/internal/apperr"
	"github.com/platformbuilds/athlos-core/internal/auth"
	"github.com/platformbuilds/athlos-core/internal/models"
	"github.com/platformbuilds/athlos-core/pkg/logger"
)

type SessionStore interface {
	ScopeTeam(ctx context.Context, teamID, institutionID uuid.UUID) (*models.Team, error)
	ScopeCoach(ctx context.Context, userID, institutionID uuid.UUID) (*models.User, error)
	InsertSession(ctx context.Context, sess *models.Session) error
	ListSessionsByInstitution(ctx context.Context, institutionID uuid.UUID, params models.ListParams) ([]models.Session, error)
}

// SessionService manages training sessions. A session's institution is
// derived from its team, so the team scope check is the tenant check.
type SessionService struct {
	store SessionStore
	log   logger.Logger
}

func NewSessionService(store SessionStore, log logger.Logger) *SessionService {
	return &SessionService{store: store, log: log}
}

func (s *SessionService) Create(ctx context.Context, p models.Principal, req models.CreateSessionRequest) (*models.Session, error) {
	if err := auth.RequireRole(p, creatorRoles...); err != nil {
		return nil, err
	}
	institutionID, err := requireInstitution(p)
	if err != nil {
		return nil, err
	}

	team, err := s.store.ScopeTeam(ctx, req.TeamID, institutionID)
	if err != nil {
		return nil, apperr.Internal("create session failed", err)
	}
	if team == nil {
		return nil, apperr.NotFound("team not found in your institution")
	}

	var coachID uuid.NullUUID
	if req.CoachID != nil {
		coach, err := s.store.ScopeCoach(ctx, *req.CoachID, institutionID)
		if err != nil {
			return nil, apperr.Internal("create session failed", err)
		}
		if coach == nil {
			return nil, apperr.InvalidArgument("invalid coach_id for your institution")
		}
		coachID = uuid.NullUUID{UUID: coach.ID, Valid: true}
	}

	sess := &models.Session{
		ID:       uuid.New(),
		TeamID:   team.ID,
		CoachID:  coachID,
		Title:    req.Title,
		StartTS:  req.StartTS,
		EndTS:    req.EndTS,
		Location: req.Location,
		Notes:    req.Notes,
	}
	if err := s.store.InsertSession(ctx, sess); err != nil {
		return nil, apperr.Internal("create session failed", err)
	}
	s.log.Info("session created", "session_id", sess.ID, "team_id", team.ID)
	return sess, nil
}

func (s *SessionService) List(ctx context.Context, p models.Principal, params models.ListParams) ([]models.Session, error) {
	if err := auth.RequireRole(p, anyRole...); err != nil {
		return nil, err
	}
	institutionID, err := requireInstitution(p)
	if err != nil {
		return nil, err
	}
	if err := validateListParams(params); err != nil {
		return nil, err
	}
	sessions, err := s.store.ListSessionsByInstitution(ctx, institutionID, params)
	if err != nil {
		return nil, apperr.Internal("list sessions failed", err)
	}
	return sessions, nil
}
