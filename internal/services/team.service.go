package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/platformbuilds/athlos-core/internal/apperr"
	"github.com/platformbuilds/athlos-core/internal/auth"
	"github.com/platformbuilds/athlos-core/internal/models"
	"github.com/platformbuilds/athlos-core/pkg/logger"
)

type TeamStore interface {
	ScopeSport(ctx context.Context, sportID, institutionID uuid.UUID) (*models.Sport, error)
	ScopeCoach(ctx context.Context, userID, institutionID uuid.UUID) (*models.User, error)
	InsertTeam(ctx context.Context, t *models.Team) error
	ListTeamsByInstitution(ctx context.Context, institutionID uuid.UUID, params models.ListParams) ([]models.Team, error)
}

type TeamService struct {
	store TeamStore
	log   logger.Logger
}

func NewTeamService(store TeamStore, log logger.Logger) *TeamService {
	return &TeamService{store: store, log: log}
}

// Create is admin-only, a stricter allow-list than the coach-eligible
// creates. An invalid coach reference is a 400, not a 404: the caller named
// a user that cannot serve as coach for this team.
func (s *TeamService) Create(ctx context.Context, p models.Principal, req models.CreateTeamRequest) (*models.Team, error) {
	if err := auth.RequireRole(p, models.RoleAdmin); err != nil {
		return nil, err
	}
	institutionID, err := requireInstitution(p)
	if err != nil {
		return nil, err
	}

	var sportID uuid.NullUUID
	if req.SportID != nil {
		sport, err := s.store.ScopeSport(ctx, *req.SportID, institutionID)
		if err != nil {
			return nil, apperr.Internal("create team failed", err)
		}
		if sport == nil {
			return nil, apperr.NotFound("sport not found in your institution")
		}
		sportID = uuid.NullUUID{UUID: sport.ID, Valid: true}
	}

	var coachID uuid.NullUUID
	if req.CoachID != nil {
		coach, err := s.store.ScopeCoach(ctx, *req.CoachID, institutionID)
		if err != nil {
			return nil, apperr.Internal("create team failed", err)
		}
		if coach == nil {
			return nil, apperr.InvalidArgument("invalid coach_id: coach not found or not in your institution")
		}
		coachID = uuid.NullUUID{UUID: coach.ID, Valid: true}
	}

	team := &models.Team{
		ID:            uuid.New(),
		InstitutionID: institutionID,
		Name:          req.Name,
		SportID:       sportID,
		CoachID:       coachID,
		Season:        req.Season,
	}
	if err := s.store.InsertTeam(ctx, team); err != nil {
		return nil, apperr.Internal("create team failed", err)
	}
	s.log.Info("team created", "team_id", team.ID, "institution_id", institutionID)
	return team, nil
}

func (s *TeamService) List(ctx context.Context, p models.Principal, params models.ListParams) ([]models.Team, error) {
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
	teams, err := s.store.ListTeamsByInstitution(ctx, institutionID, params)
	if err != nil {
		return nil, apperr.Internal("list teams failed", err)
	}
	return teams, nil
}
