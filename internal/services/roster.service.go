package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/platformbuilds/athlos-core/internal/apperr"
	"github.com/platformbuilds/athlos-core/internal/auth"
	"github.com/platformbuilds/athlos-core/internal/models"
	"github.com/platformbuilds/athlos-core/pkg/logger"
)

type RosterStore interface {
	ScopeTeam(ctx context.Context, teamID, institutionID uuid.UUID) (*models.Team, error)
	ScopeAthlete(ctx context.Context, athleteID, institutionID uuid.UUID) (*models.Athlete, error)
	InsertRoster(ctx context.Context, r *models.Roster) error
	ListRostersByInstitution(ctx context.Context, institutionID uuid.UUID, params models.ListParams) ([]models.Roster, error)
}

type RosterService struct {
	store RosterStore
	log   logger.Logger
}

func NewRosterService(store RosterStore, log logger.Logger) *RosterService {
	return &RosterService{store: store, log: log}
}

func (s *RosterService) Create(ctx context.Context, p models.Principal, req models.CreateRosterRequest) (*models.Roster, error) {
	if err := auth.RequireRole(p, creatorRoles...); err != nil {
		return nil, err
	}
	institutionID, err := requireInstitution(p)
	if err != nil {
		return nil, err
	}

	team, err := s.store.ScopeTeam(ctx, req.TeamID, institutionID)
	if err != nil {
		return nil, apperr.Internal("create roster failed", err)
	}
	if team == nil {
		return nil, apperr.NotFound("team not found in your institution")
	}

	athlete, err := s.store.ScopeAthlete(ctx, req.AthleteID, institutionID)
	if err != nil {
		return nil, apperr.Internal("create roster failed", err)
	}
	if athlete == nil {
		return nil, apperr.NotFound("athlete not found in your institution")
	}

	roster := &models.Roster{
		ID:        uuid.New(),
		TeamID:    team.ID,
		AthleteID: athlete.ID,
		JerseyNo:  req.JerseyNo,
		Role:      req.Role,
		JoinedAt:  req.JoinedAt,
	}
	if err := s.store.InsertRoster(ctx, roster); err != nil {
		return nil, apperr.Internal("create roster failed", err)
	}
	s.log.Info("roster entry created", "roster_id", roster.ID, "team_id", team.ID)
	return roster, nil
}

func (s *RosterService) List(ctx context.Context, p models.Principal, params models.ListParams) ([]models.Roster, error) {
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
	rosters, err := s.store.ListRostersByInstitution(ctx, institutionID, params)
	if err != nil {
		return nil, apperr.Internal("list rosters failed", err)
	}
	return rosters, nil
}
