package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/platformbuilds/athlos-core/internal/apperr"
	"github.com/platformbuilds/athlos-core/internal/auth"
	"github.com/platformbuilds/athlos-core/internal/models"
	"github.com/platformbuilds/athlos-core/pkg/logger"
)

type AssessmentStore interface {
	ScopeAthlete(ctx context.Context, athleteID, institutionID uuid.UUID) (*models.Athlete, error)
	ScopeAssessmentType(ctx context.Context, typeID, institutionID uuid.UUID) (*models.AssessmentType, error)
	InsertAssessmentType(ctx context.Context, at *models.AssessmentType) error
	ListAssessmentTypesByInstitution(ctx context.Context, institutionID uuid.UUID, params models.ListParams) ([]models.AssessmentType, error)
	InsertAssessmentResult(ctx context.Context, ar *models.AssessmentResult) error
	ListAssessmentResultsByInstitution(ctx context.Context, institutionID uuid.UUID, params models.ListParams) ([]models.AssessmentResult, error)
}

// AssessmentService covers the institution-scoped test catalogue
// (assessment types) and recorded results against it.
type AssessmentService struct {
	store AssessmentStore
	log   logger.Logger
}

func NewAssessmentService(store AssessmentStore, log logger.Logger) *AssessmentService {
	return &AssessmentService{store: store, log: log}
}

func (s *AssessmentService) CreateType(ctx context.Context, p models.Principal, req models.CreateAssessmentTypeRequest) (*models.AssessmentType, error) {
	if err := auth.RequireRole(p, models.RoleAdmin); err != nil {
		return nil, err
	}
	institutionID, err := requireInstitution(p)
	if err != nil {
		return nil, err
	}

	at := &models.AssessmentType{
		ID:            uuid.New(),
		InstitutionID: institutionID,
		Name:          req.Name,
		Code:          req.Code,
		Unit:          req.Unit,
	}
	if err := s.store.InsertAssessmentType(ctx, at); err != nil {
		return nil, apperr.Internal("create assessment type failed", err)
	}
	s.log.Info("assessment type created", "assessment_type_id", at.ID, "institution_id", institutionID)
	return at, nil
}

func (s *AssessmentService) ListTypes(ctx context.Context, p models.Principal, params models.ListParams) ([]models.AssessmentType, error) {
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
	types, err := s.store.ListAssessmentTypesByInstitution(ctx, institutionID, params)
	if err != nil {
		return nil, apperr.Internal("list assessment types failed", err)
	}
	return types, nil
}

func (s *AssessmentService) CreateResult(ctx context.Context, p models.Principal, req models.CreateAssessmentRequest) (*models.AssessmentResult, error) {
	if err := auth.RequireRole(p, creatorRoles...); err != nil {
		return nil, err
	}
	institutionID, err := requireInstitution(p)
	if err != nil {
		return nil, err
	}

	athlete, err := s.store.ScopeAthlete(ctx, req.AthleteID, institutionID)
	if err != nil {
		return nil, apperr.Internal("record assessment failed", err)
	}
	if athlete == nil {
		return nil, apperr.NotFound("athlete not found in your institution")
	}

	at, err := s.store.ScopeAssessmentType(ctx, req.AssessmentTypeID, institutionID)
	if err != nil {
		return nil, apperr.Internal("record assessment failed", err)
	}
	if at == nil {
		return nil, apperr.NotFound("assessment type not found in your institution")
	}

	result := &models.AssessmentResult{
		ID:               uuid.New(),
		AthleteID:        athlete.ID,
		AssessmentTypeID: at.ID,
		Value:            req.Value,
		Notes:            req.Notes,
		RecordedBy:       p.UserID,
	}
	if err := s.store.InsertAssessmentResult(ctx, result); err != nil {
		return nil, apperr.Internal("record assessment failed", err)
	}
	s.log.Info("assessment recorded", "assessment_id", result.ID, "athlete_id", athlete.ID)
	return result, nil
}

func (s *AssessmentService) ListResults(ctx context.Context, p models.Principal, params models.ListParams) ([]models.AssessmentResult, error) {
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
	results, err := s.store.ListAssessmentResultsByInstitution(ctx, institutionID, params)
	if err != nil {
		return nil, apperr.Internal("list assessments failed", err)
	}
	return results, nil
}
