package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/platformbuilds/athlos-core/internal/apperr"
	"github.com/platformbuilds/athlos-core/internal/auth"
	"github.com/platformbuilds/athlos-core/internal/models"
	"github.com/platformbuilds/athlos-core/pkg/logger"
)

type SportStore interface {
	InsertSport(ctx context.Context, sport *models.Sport) error
	ListSportsByInstitution(ctx context.Context, institutionID uuid.UUID, params models.ListParams) ([]models.Sport, error)
}

type SportService struct {
	store SportStore
	log   logger.Logger
}

func NewSportService(store SportStore, log logger.Logger) *SportService {
	return &SportService{store: store, log: log}
}

func (s *SportService) Create(ctx context.Context, p models.Principal, req models.CreateSportRequest) (*models.Sport, error) {
	if err := auth.RequireRole(p, models.RoleAdmin); err != nil {
		return nil, err
	}
	institutionID, err := requireInstitution(p)
	if err != nil {
		return nil, err
	}

	sport := &models.Sport{
		ID:            uuid.New(),
		InstitutionID: institutionID,
		Code:          req.Code,
		Name:          req.Name,
	}
	if err := s.store.InsertSport(ctx, sport); err != nil {
		return nil, apperr.Internal("create sport failed", err)
	}
	s.log.Info("sport created", "sport_id", sport.ID, "institution_id", institutionID)
	return sport, nil
}

func (s *SportService) List(ctx context.Context, p models.Principal, params models.ListParams) ([]models.Sport, error) {
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
	sports, err := s.store.ListSportsByInstitution(ctx, institutionID, params)
	if err != nil {
		return nil, apperr.Internal("list sports failed", err)
	}
	return sports, nil
}
