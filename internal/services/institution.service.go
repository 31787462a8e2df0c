package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/platformbuilds/athlos-core/internal/apperr"
	"github.com/platformbuilds/athlos-core/internal/auth"
	"github.com/platformbuilds/athlos-core/internal/models"
	"github.com/platformbuilds/athlos-core/pkg/logger"
)

type InstitutionStore interface {
	InsertInstitution(ctx context.Context, inst *models.Institution) error
	GetInstitution(ctx context.Context, id uuid.UUID) (*models.Institution, error)
	ListInstitutions(ctx context.Context, params models.ListParams) ([]models.Institution, error)
	DeleteInstitution(ctx context.Context, id uuid.UUID) (bool, error)
}

// InstitutionService manages tenants themselves. Institutions are the one
// resource that is not institution-scoped: any authenticated principal may
// list them, only admins may create or delete.
type InstitutionService struct {
	store InstitutionStore
	log   logger.Logger
}

func NewInstitutionService(store InstitutionStore, log logger.Logger) *InstitutionService {
	return &InstitutionService{store: store, log: log}
}

func (s *InstitutionService) Create(ctx context.Context, p models.Principal, req models.CreateInstitutionRequest) (*models.Institution, error) {
	if err := auth.RequireRole(p, models.RoleAdmin); err != nil {
		return nil, err
	}

	tz := req.Timezone
	if tz == "" {
		tz = "UTC"
	}
	inst := &models.Institution{
		ID:       uuid.New(),
		Name:     req.Name,
		Address:  req.Address,
		Timezone: tz,
	}
	if err := s.store.InsertInstitution(ctx, inst); err != nil {
		return nil, apperr.Internal("create institution failed", err)
	}

	s.log.Info("institution created", "institution_id", inst.ID, "by", p.UserID)
	return inst, nil
}

func (s *InstitutionService) Get(ctx context.Context, p models.Principal, id uuid.UUID) (*models.Institution, error) {
	if err := auth.RequireRole(p, anyRole...); err != nil {
		return nil, err
	}
	inst, err := s.store.GetInstitution(ctx, id)
	if err != nil {
		return nil, apperr.Internal("get institution failed", err)
	}
	if inst == nil {
		return nil, apperr.NotFound("institution not found")
	}
	return inst, nil
}

func (s *InstitutionService) List(ctx context.Context, p models.Principal, params models.ListParams) ([]models.Institution, error) {
	if err := auth.RequireRole(p, anyRole...); err != nil {
		return nil, err
	}
	if err := validateListParams(params); err != nil {
		return nil, err
	}
	institutions, err := s.store.ListInstitutions(ctx, params)
	if err != nil {
		return nil, apperr.Internal("list institutions failed", err)
	}
	return institutions, nil
}

func (s *InstitutionService) Delete(ctx context.Context, p models.Principal, id uuid.UUID) error {
	if err := auth.RequireRole(p, models.RoleAdmin); err != nil {
		return err
	}
	deleted, err := s.store.DeleteInstitution(ctx, id)
	if err != nil {
		return apperr.Internal("delete institution failed", err)
	}
	if !deleted {
		return apperr.NotFound("institution not found")
	}
	s.log.Info("institution deleted", "institution_id", id, "by", p.UserID)
	return nil
}
