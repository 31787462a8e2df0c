package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/platformbuilds/athlos-core/internal/apperr"
	"github.com/platformbuilds/athlos-core/internal/auth"
	"github.com/platformbuilds/athlos-core/internal/models"
	"github.com/platformbuilds/athlos-core/pkg/logger"
)

type InjuryStore interface {
	ScopeAthlete(ctx context.Context, athleteID, institutionID uuid.UUID) (*models.Athlete, error)
	InsertInjury(ctx context.Context, inj *models.Injury) error
	ListInjuriesByInstitution(ctx context.Context, institutionID uuid.UUID, params models.ListParams) ([]models.Injury, error)
}

type InjuryService struct {
	store InjuryStore
	log   logger.Logger
}

func NewInjuryService(store InjuryStore, log logger.Logger) *InjuryService {
	return &InjuryService{store: store, log: log}
}

func (s *InjuryService) Create(ctx context.Context, p models.Principal, req models.CreateInjuryRequest) (*models.Injury, error) {
	if err := auth.RequireRole(p, creatorRoles...); err != nil {
		return nil, err
	}
	institutionID, err := requireInstitution(p)
	if err != nil {
		return nil, err
	}

	athlete, err := s.store.ScopeAthlete(ctx, req.AthleteID, institutionID)
	if err != nil {
		return nil, apperr.Internal("report injury failed", err)
	}
	if athlete == nil {
		return nil, apperr.NotFound("athlete not found in your institution")
	}

	injury := &models.Injury{
		ID:           uuid.New(),
		AthleteID:    athlete.ID,
		ReportedBy:   p.UserID,
		Description:  req.Description,
		Diagnosis:    req.Diagnosis,
		DateReported: req.DateReported,
		Status:       req.Status,
		Restricted:   req.Restricted,
	}
	if err := s.store.InsertInjury(ctx, injury); err != nil {
		return nil, apperr.Internal("report injury failed", err)
	}
	s.log.Info("injury reported", "injury_id", injury.ID, "athlete_id", athlete.ID)
	return injury, nil
}

func (s *InjuryService) List(ctx context.Context, p models.Principal, params models.ListParams) ([]models.Injury, error) {
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
	injuries, err := s.store.ListInjuriesByInstitution(ctx, institutionID, params)
	if err != nil {
		return nil, apperr.Internal("list injuries failed", err)
	}
	return injuries, nil
}
