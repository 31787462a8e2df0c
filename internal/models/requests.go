package models

import (
	"time"

	"github.com/google/uuid"
)

// Request payloads for the HTTP surface. Binding tags cover structural
// validation only; tenant and role rules live in the services.

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Email         string     `json:"email" binding:"required,email"`
	Password      string     `json:"password" binding:"required,min=8"`
	FullName      string     `json:"full_name" binding:"required"`
	Role          string     `json:"role"`
	InstitutionID *uuid.UUID `json:"institution_id"`
}

// TokenResponse is returned by both login and register.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type CreateInstitutionRequest struct {
	Name     string  `json:"name" binding:"required"`
	Address  *string `json:"address"`
	Timezone string  `json:"timezone"`
}

type CreateSportRequest struct {
	Name string  `json:"name" binding:"required"`
	Code *string `json:"code"`
}

type CreateAthleteRequest struct {
	FirstName      string     `json:"first_name" binding:"required"`
	LastName       *string    `json:"last_name"`
	DOB            *time.Time `json:"dob"`
	Gender         *string    `json:"gender"`
	UserID         *uuid.UUID `json:"user_id"`
	PrimarySportID *uuid.UUID `json:"primary_sport_id"`
}

type CreateTeamRequest struct {
	Name    string     `json:"name" binding:"required"`
	SportID *uuid.UUID `json:"sport_id"`
	CoachID *uuid.UUID `json:"coach_id"`
	Season  *string    `json:"season"`
}

type CreateRosterRequest struct {
	TeamID    uuid.UUID  `json:"team_id" binding:"required"`
	AthleteID uuid.UUID  `json:"athlete_id" binding:"required"`
	JerseyNo  *string    `json:"jersey_no"`
	Role      *string    `json:"role"`
	JoinedAt  *time.Time `json:"joined_at"`
}

type CreateSessionRequest struct {
	TeamID   uuid.UUID  `json:"team_id" binding:"required"`
	CoachID  *uuid.UUID `json:"coach_id"`
	Title    *string    `json:"title"`
	StartTS  time.Time  `json:"start_ts" binding:"required"`
	EndTS    *time.Time `json:"end_ts"`
	Location *string    `json:"location"`
	Notes    *string    `json:"notes"`
}

type CreateAttendanceRequest struct {
	SessionID uuid.UUID `json:"session_id" binding:"required"`
	AthleteID uuid.UUID `json:"athlete_id" binding:"required"`
	Status    string    `json:"status" binding:"required"`
}

type CreateAssessmentTypeRequest struct {
	Name string  `json:"name" binding:"required"`
	Code *string `json:"code"`
	Unit *string `json:"unit"`
}

type CreateAssessmentRequest struct {
	AthleteID        uuid.UUID `json:"athlete_id" binding:"required"`
	AssessmentTypeID uuid.UUID `json:"assessment_type_id" binding:"required"`
	Value            float64   `json:"value" binding:"required"`
	Notes            *string   `json:"notes"`
}

type CreateInjuryRequest struct {
	AthleteID    uuid.UUID  `json:"athlete_id" binding:"required"`
	Description  *string    `json:"description"`
	Diagnosis    *string    `json:"diagnosis"`
	DateReported *time.Time `json:"date_reported"`
	Status       *string    `json:"status"`
	Restricted   bool       `json:"restricted"`
}
