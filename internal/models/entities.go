package models

import (
	"time"

	"github.com/google/uuid"
)

// Institution is the tenant boundary. Everything else in the model belongs
// to exactly one institution, directly or transitively.
type Institution struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Address   *string   `db:"address" json:"address,omitempty"`
	Timezone  string    `db:"timezone" json:"timezone"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// User is an account that can authenticate. institution_id is immutable
// after creation; there is no cross-tenant migration.
type User struct {
	ID            uuid.UUID     `db:"id" json:"id"`
	InstitutionID uuid.NullUUID `db:"institution_id" json:"institution_id"`
	Email         string        `db:"email" json:"email"`
	FullName      string        `db:"full_name" json:"full_name"`
	RoleID        uuid.UUID     `db:"role_id" json:"-"`
	RoleCode      string        `db:"role_code" json:"role"`
	Phone         *string       `db:"phone" json:"phone,omitempty"`
	PasswordHash  string        `db:"password" json:"-"`
	IsActive      bool          `db:"is_active" json:"is_active"`
	CreatedAt     time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time     `db:"updated_at" json:"updated_at"`
}

// Sport is institution-owned; athletes and teams reference it.
type Sport struct {
	ID            uuid.UUID `db:"id" json:"id"`
	InstitutionID uuid.UUID `db:"institution_id" json:"institution_id"`
	Code          *string   `db:"code" json:"code,omitempty"`
	Name          string    `db:"name" json:"name"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// Athlete carries a denormalized institution_id so scope checks are a
// single predicate instead of a join.
type Athlete struct {
	ID             uuid.UUID     `db:"id" json:"id"`
	InstitutionID  uuid.UUID     `db:"institution_id" json:"institution_id"`
	UserID         uuid.NullUUID `db:"user_id" json:"user_id"`
	FirstName      string        `db:"first_name" json:"first_name"`
	LastName       *string       `db:"last_name" json:"last_name,omitempty"`
	DOB            *time.Time    `db:"dob" json:"dob,omitempty"`
	Gender         *string       `db:"gender" json:"gender,omitempty"`
	PrimarySportID uuid.NullUUID `db:"primary_sport_id" json:"primary_sport_id"`
	CreatedAt      time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time     `db:"updated_at" json:"updated_at"`
}

// Team belongs to an institution; coach_id, when set, must be a user with
// role coach in the same institution.
type Team struct {
	ID            uuid.UUID     `db:"id" json:"id"`
	InstitutionID uuid.UUID     `db:"institution_id" json:"institution_id"`
	Name          string        `db:"name" json:"name"`
	SportID       uuid.NullUUID `db:"sport_id" json:"sport_id"`
	CoachID       uuid.NullUUID `db:"coach_id" json:"coach_id"`
	Season        *string       `db:"season" json:"season,omitempty"`
	CreatedAt     time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time     `db:"updated_at" json:"updated_at"`
}

// Roster links an athlete onto a team. Both sides are scope-checked at
// creation so a roster row can never straddle institutions.
type Roster struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	TeamID    uuid.UUID  `db:"team_id" json:"team_id"`
	AthleteID uuid.UUID  `db:"athlete_id" json:"athlete_id"`
	JerseyNo  *string    `db:"jersey_no" json:"jersey_no,omitempty"`
	Role      *string    `db:"role" json:"role,omitempty"`
	JoinedAt  *time.Time `db:"joined_at" json:"joined_at,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
}

// Session deliberately has no institution_id column: its effective
// institution is always its team's. Every scope check joins through team.
type Session struct {
	ID        uuid.UUID     `db:"id" json:"id"`
	TeamID    uuid.UUID     `db:"team_id" json:"team_id"`
	CoachID   uuid.NullUUID `db:"coach_id" json:"coach_id"`
	Title     *string       `db:"title" json:"title,omitempty"`
	StartTS   time.Time     `db:"start_ts" json:"start_ts"`
	EndTS     *time.Time    `db:"end_ts" json:"end_ts,omitempty"`
	Location  *string       `db:"location" json:"location,omitempty"`
	Notes     *string       `db:"notes" json:"notes,omitempty"`
	CreatedAt time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt time.Time     `db:"updated_at" json:"updated_at"`
}

// Attendance records an athlete's presence at a session. Both references
// must resolve inside the recorder's institution.
type Attendance struct {
	ID         uuid.UUID `db:"id" json:"id"`
	SessionID  uuid.UUID `db:"session_id" json:"session_id"`
	AthleteID  uuid.UUID `db:"athlete_id" json:"athlete_id"`
	Status     string    `db:"status" json:"status"`
	RecordedBy uuid.UUID `db:"recorded_by" json:"recorded_by"`
	RecordedAt time.Time `db:"recorded_at" json:"recorded_at"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// AssessmentType is institution-scoped so one tenant's test catalogue is
// invisible to another.
type AssessmentType struct {
	ID            uuid.UUID `db:"id" json:"id"`
	InstitutionID uuid.UUID `db:"institution_id" json:"institution_id"`
	Name          string    `db:"name" json:"name"`
	Code          *string   `db:"code" json:"code,omitempty"`
	Unit          *string   `db:"unit" json:"unit,omitempty"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// AssessmentResult references an athlete and a type, both in the recorder's
// institution.
type AssessmentResult struct {
	ID               uuid.UUID `db:"id" json:"id"`
	AthleteID        uuid.UUID `db:"athlete_id" json:"athlete_id"`
	AssessmentTypeID uuid.UUID `db:"assessment_type_id" json:"assessment_type_id"`
	Value            float64   `db:"value" json:"value"`
	Notes            *string   `db:"notes" json:"notes,omitempty"`
	RecordedBy       uuid.UUID `db:"recorded_by" json:"recorded_by"`
	RecordedAt       time.Time `db:"recorded_at" json:"recorded_at"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}

// Injury is athlete-scoped; reported_by is the recording principal.
type Injury struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	AthleteID    uuid.UUID  `db:"athlete_id" json:"athlete_id"`
	ReportedBy   uuid.UUID  `db:"reported_by" json:"reported_by"`
	Description  *string    `db:"description" json:"description,omitempty"`
	Diagnosis    *string    `db:"diagnosis" json:"diagnosis,omitempty"`
	DateReported *time.Time `db:"date_reported" json:"date_reported,omitempty"`
	Status       *string    `db:"status" json:"status,omitempty"`
	Restricted   bool       `db:"restricted" json:"restricted"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}
