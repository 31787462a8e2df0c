package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/platformbuilds/athlos-core/internal/apperr"
	"github.com/platformbuilds/athlos-core/internal/auth"
	"github.com/platformbuilds/athlos-core/internal/models"
	"github.com/platformbuilds/athlos-core/pkg/logger"
)

type AttendanceStore interface {
	ScopeAthlete(ctx context.Context, athleteID, institutionID uuid.UUID) (*models.Athlete, error)
	ScopeSession(ctx context.Context, sessionID, institutionID uuid.UUID) (*models.Session, error)
	InsertAttendance(ctx context.Context, a *models.Attendance) error
	ListAttendanceByInstitution(ctx context.Context, institutionID uuid.UUID, params models.ListParams) ([]models.Attendance, error)
}

type AttendanceService struct {
	store AttendanceStore
	log   logger.Logger
}

func NewAttendanceService(store AttendanceStore, log logger.Logger) *AttendanceService {
	return &AttendanceService{store: store, log: log}
}

// Create scope-checks both references, short-circuiting on the first miss,
// and stamps the recording principal. recorded_at is server-assigned.
func (s *AttendanceService) Create(ctx context.Context, p models.Principal, req models.CreateAttendanceRequest) (*models.Attendance, error) {
	if err := auth.RequireRole(p, creatorRoles...); err != nil {
		return nil, err
	}
	institutionID, err := requireInstitution(p)
	if err != nil {
		return nil, err
	}

	athlete, err := s.store.ScopeAthlete(ctx, req.AthleteID, institutionID)
	if err != nil {
		return nil, apperr.Internal("record attendance failed", err)
	}
	if athlete == nil {
		return nil, apperr.NotFound("athlete not found in your institution")
	}

	sess, err := s.store.ScopeSession(ctx, req.SessionID, institutionID)
	if err != nil {
		return nil, apperr.Internal("record attendance failed", err)
	}
	if sess == nil {
		return nil, apperr.NotFound("session not found in your institution")
	}

	attendance := &models.Attendance{
		ID:         uuid.New(),
		SessionID:  sess.ID,
		AthleteID:  athlete.ID,
		Status:     req.Status,
		RecordedBy: p.UserID,
	}
	if err := s.store.InsertAttendance(ctx, attendance); err != nil {
		return nil, apperr.Internal("record attendance failed", err)
	}
	s.log.Info("attendance recorded", "attendance_id", attendance.ID, "session_id", sess.ID)
	return attendance, nil
}

func (s *AttendanceService) List(ctx context.Context, p models.Principal, params models.ListParams) ([]models.Attendance, error) {
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
	records, err := s.store.ListAttendanceByInstitution(ctx, institutionID, params)
	if err != nil {
		return nil, apperr.Internal("list attendance failed", err)
	}
	return records, nil
}
