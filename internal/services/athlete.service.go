package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/platformbuilds/athlos-core/internal/apperr"
	"github.com/platformbuilds/athlos-core/internal/auth"
	"github.com/platformbuilds/athlos-core/internal/models"
	"github.com/platformbuilds/athlos-core/pkg/logger"
)

type AthleteStore interface {
	ScopeUser(ctx context.Context, userID, institutionID uuid.UUID) (*models.User, error)
	ScopeSport(ctx context.Context, sportID, institutionID uuid.UUID) (*models.Sport, error)
	InsertAthlete(ctx context.Context, a *models.Athlete) error
	ListAthletesByInstitution(ctx context.Context, institutionID uuid.UUID, params models.ListParams) ([]models.Athlete, error)
}

type AthleteService struct {
	store AthleteStore
	log   logger.Logger
}

func NewAthleteService(store AthleteStore, log logger.Logger) *AthleteService {
	return &AthleteService{store: store, log: log}
}

func (s *AthleteService) Create(ctx context.Context, p models.Principal, req models.CreateAthleteRequest) (*models.Athlete, error) {
	if err := auth.RequireRole(p, creatorRoles...); err != nil {
		return nil, err
	}
	institutionID, err := requireInstitution(p)
	if err != nil {
		return nil, err
	}

	var userID uuid.NullUUID
	if req.UserID != nil {
		user, err := s.store.ScopeUser(ctx, *req.UserID, institutionID)
		if err != nil {
			return nil, apperr.Internal("create athlete failed", err)
		}
		if user == nil {
			return nil, apperr.NotFound("user not found in your institution")
		}
		userID = uuid.NullUUID{UUID: user.ID, Valid: true}
	}

	var sportID uuid.NullUUID
	if req.PrimarySportID != nil {
		sport, err := s.store.ScopeSport(ctx, *req.PrimarySportID, institutionID)
		if err != nil {
			return nil, apperr.Internal("create athlete failed", err)
		}
		if sport == nil {
			return nil, apperr.NotFound("sport not found in your institution")
		}
		sportID = uuid.NullUUID{UUID: sport.ID, Valid: true}
	}

	athlete := &models.Athlete{
		ID:             uuid.New(),
		InstitutionID:  institutionID,
		UserID:         userID,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		DOB:            req.DOB,
		Gender:         req.Gender,
		PrimarySportID: sportID,
	}
	if err := s.store.InsertAthlete(ctx, athlete); err != nil {
		return nil, apperr.Internal("create athlete failed", err)
	}
	s.log.Info("athlete created", "athlete_id", athlete.ID, "institution_id", institutionID)
	return athlete, nil
}

func (s *AthleteService) List(ctx context.Context, p models.Principal, params models.ListParams) ([]models.Athlete, error) {
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
	athletes, err := s.store.ListAthletesByInstitution(ctx, institutionID, params)
	if err != nil {
		return nil, apperr.Internal("list athletes failed", err)
	}
	return athletes, nil
}
