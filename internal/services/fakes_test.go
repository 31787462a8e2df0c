package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/platformbuilds/athlos-core/internal/apperr"
	"github.com/platformbuilds/athlos-core/internal/models"
)

// fakeStore is an in-memory stand-in for the Postgres store. Scope methods
// reproduce the real query semantics: an id that exists under another
// institution resolves to nil exactly like one that does not exist.
type fakeStore struct {
	roles        map[string]*models.Role
	institutions map[uuid.UUID]*models.Institution
	users        map[uuid.UUID]*models.User
	sports       map[uuid.UUID]*models.Sport
	athletes     map[uuid.UUID]*models.Athlete
	teams        map[uuid.UUID]*models.Team
	sessions     map[uuid.UUID]*models.Session

	rosters     []models.Roster
	attendance  []models.Attendance
	assessTypes []models.AssessmentType
	assessments []models.AssessmentResult
	injuries    []models.Injury
}

func newFakeStore() *fakeStore {
	f := &fakeStore{
		roles:        make(map[string]*models.Role),
		institutions: make(map[uuid.UUID]*models.Institution),
		users:        make(map[uuid.UUID]*models.User),
		sports:       make(map[uuid.UUID]*models.Sport),
		athletes:     make(map[uuid.UUID]*models.Athlete),
		teams:        make(map[uuid.UUID]*models.Team),
		sessions:     make(map[uuid.UUID]*models.Session),
	}
	for _, code := range []string{models.RoleAdmin, models.RoleCoach, models.RoleAthlete} {
		f.roles[code] = &models.Role{ID: uuid.New(), Code: code}
	}
	return f
}

// Seeding helpers. These bypass the service layer so tests can arrange
// cross-institution fixtures directly.

func (f *fakeStore) addInstitution(name string) *models.Institution {
	inst := &models.Institution{ID: uuid.New(), Name: name, Timezone: "UTC", CreatedAt: time.Now()}
	f.institutions[inst.ID] = inst
	return inst
}

func (f *fakeStore) addUser(institutionID uuid.UUID, email, roleCode string) *models.User {
	u := &models.User{
		ID:            uuid.New(),
		InstitutionID: uuid.NullUUID{UUID: institutionID, Valid: true},
		Email:         email,
		RoleID:        f.roles[roleCode].ID,
		RoleCode:      roleCode,
		IsActive:      true,
	}
	f.users[u.ID] = u
	return u
}

func (f *fakeStore) addSport(institutionID uuid.UUID, name string) *models.Sport {
	s := &models.Sport{ID: uuid.New(), InstitutionID: institutionID, Name: name}
	f.sports[s.ID] = s
	return s
}

func (f *fakeStore) addAthlete(institutionID uuid.UUID, firstName string) *models.Athlete {
	a := &models.Athlete{ID: uuid.New(), InstitutionID: institutionID, FirstName: firstName}
	f.athletes[a.ID] = a
	return a
}

func (f *fakeStore) addTeam(institutionID uuid.UUID, name string) *models.Team {
	t := &models.Team{ID: uuid.New(), InstitutionID: institutionID, Name: name}
	f.teams[t.ID] = t
	return t
}

func (f *fakeStore) addSession(teamID uuid.UUID) *models.Session {
	s := &models.Session{ID: uuid.New(), TeamID: teamID, StartTS: time.Now()}
	f.sessions[s.ID] = s
	return s
}

// AuthStore

func (f *fakeStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) GetRoleByCode(_ context.Context, code string) (*models.Role, error) {
	return f.roles[code], nil
}

func (f *fakeStore) GetInstitution(_ context.Context, id uuid.UUID) (*models.Institution, error) {
	return f.institutions[id], nil
}

func (f *fakeStore) CountUsers(_ context.Context) (int, error) {
	return len(f.users), nil
}

func (f *fakeStore) InsertUser(_ context.Context, u *models.User) error {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return apperr.Conflict("user already exists")
		}
	}
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	f.users[u.ID] = u
	return nil
}

// Scope checks

func (f *fakeStore) ScopeUser(_ context.Context, userID, institutionID uuid.UUID) (*models.User, error) {
	u := f.users[userID]
	if u == nil || !u.InstitutionID.Valid || u.InstitutionID.UUID != institutionID {
		return nil, nil
	}
	return u, nil
}

func (f *fakeStore) ScopeCoach(_ context.Context, userID, institutionID uuid.UUID) (*models.User, error) {
	u := f.users[userID]
	if u == nil || !u.InstitutionID.Valid || u.InstitutionID.UUID != institutionID || u.RoleCode != models.RoleCoach {
		return nil, nil
	}
	return u, nil
}

func (f *fakeStore) ScopeSport(_ context.Context, sportID, institutionID uuid.UUID) (*models.Sport, error) {
	s := f.sports[sportID]
	if s == nil || s.InstitutionID != institutionID {
		return nil, nil
	}
	return s, nil
}

func (f *fakeStore) ScopeAthlete(_ context.Context, athleteID, institutionID uuid.UUID) (*models.Athlete, error) {
	a := f.athletes[athleteID]
	if a == nil || a.InstitutionID != institutionID {
		return nil, nil
	}
	return a, nil
}

func (f *fakeStore) ScopeTeam(_ context.Context, teamID, institutionID uuid.UUID) (*models.Team, error) {
	t := f.teams[teamID]
	if t == nil || t.InstitutionID != institutionID {
		return nil, nil
	}
	return t, nil
}

// ScopeSession resolves the session's institution through its team, like
// the JOIN in the real query.
func (f *fakeStore) ScopeSession(_ context.Context, sessionID, institutionID uuid.UUID) (*models.Session, error) {
	s := f.sessions[sessionID]
	if s == nil {
		return nil, nil
	}
	t := f.teams[s.TeamID]
	if t == nil || t.InstitutionID != institutionID {
		return nil, nil
	}
	return s, nil
}

func (f *fakeStore) ScopeAssessmentType(_ context.Context, typeID, institutionID uuid.UUID) (*models.AssessmentType, error) {
	for i := range f.assessTypes {
		at := &f.assessTypes[i]
		if at.ID == typeID && at.InstitutionID == institutionID {
			return at, nil
		}
	}
	return nil, nil
}

// Inserts

func stamp(createdAt, updatedAt *time.Time) {
	now := time.Now()
	*createdAt = now
	*updatedAt = now
}

func (f *fakeStore) InsertInstitution(_ context.Context, inst *models.Institution) error {
	stamp(&inst.CreatedAt, &inst.UpdatedAt)
	f.institutions[inst.ID] = inst
	return nil
}

func (f *fakeStore) InsertSport(_ context.Context, s *models.Sport) error {
	stamp(&s.CreatedAt, &s.UpdatedAt)
	f.sports[s.ID] = s
	return nil
}

func (f *fakeStore) InsertAthlete(_ context.Context, a *models.Athlete) error {
	stamp(&a.CreatedAt, &a.UpdatedAt)
	f.athletes[a.ID] = a
	return nil
}

func (f *fakeStore) InsertTeam(_ context.Context, t *models.Team) error {
	stamp(&t.CreatedAt, &t.UpdatedAt)
	f.teams[t.ID] = t
	return nil
}

func (f *fakeStore) InsertRoster(_ context.Context, r *models.Roster) error {
	stamp(&r.CreatedAt, &r.UpdatedAt)
	f.rosters = append(f.rosters, *r)
	return nil
}

func (f *fakeStore) InsertSession(_ context.Context, s *models.Session) error {
	stamp(&s.CreatedAt, &s.UpdatedAt)
	f.sessions[s.ID] = s
	return nil
}

func (f *fakeStore) InsertAttendance(_ context.Context, a *models.Attendance) error {
	a.RecordedAt = time.Now()
	stamp(&a.CreatedAt, &a.UpdatedAt)
	f.attendance = append(f.attendance, *a)
	return nil
}

func (f *fakeStore) InsertAssessmentType(_ context.Context, at *models.AssessmentType) error {
	stamp(&at.CreatedAt, &at.UpdatedAt)
	f.assessTypes = append(f.assessTypes, *at)
	return nil
}

func (f *fakeStore) InsertAssessmentResult(_ context.Context, ar *models.AssessmentResult) error {
	ar.RecordedAt = time.Now()
	stamp(&ar.CreatedAt, &ar.UpdatedAt)
	f.assessments = append(f.assessments, *ar)
	return nil
}

func (f *fakeStore) InsertInjury(_ context.Context, inj *models.Injury) error {
	stamp(&inj.CreatedAt, &inj.UpdatedAt)
	f.injuries = append(f.injuries, *inj)
	return nil
}

// Lists

func paginate[T any](items []T, params models.ListParams) []T {
	if params.Offset >= len(items) {
		return []T{}
	}
	items = items[params.Offset:]
	if params.Limit < len(items) {
		items = items[:params.Limit]
	}
	out := make([]T, len(items))
	copy(out, items)
	return out
}

func (f *fakeStore) ListInstitutions(_ context.Context, params models.ListParams) ([]models.Institution, error) {
	var out []models.Institution
	for _, inst := range f.institutions {
		out = append(out, *inst)
	}
	return paginate(out, params), nil
}

func (f *fakeStore) DeleteInstitution(_ context.Context, id uuid.UUID) (bool, error) {
	if _, ok := f.institutions[id]; !ok {
		return false, nil
	}
	delete(f.institutions, id)
	return true, nil
}

func (f *fakeStore) ListSportsByInstitution(_ context.Context, institutionID uuid.UUID, params models.ListParams) ([]models.Sport, error) {
	var out []models.Sport
	for _, s := range f.sports {
		if s.InstitutionID == institutionID {
			out = append(out, *s)
		}
	}
	return paginate(out, params), nil
}

func (f *fakeStore) ListAthletesByInstitution(_ context.Context, institutionID uuid.UUID, params models.ListParams) ([]models.Athlete, error) {
	var out []models.Athlete
	for _, a := range f.athletes {
		if a.InstitutionID == institutionID {
			out = append(out, *a)
		}
	}
	return paginate(out, params), nil
}

func (f *fakeStore) ListTeamsByInstitution(_ context.Context, institutionID uuid.UUID, params models.ListParams) ([]models.Team, error) {
	var out []models.Team
	for _, t := range f.teams {
		if t.InstitutionID == institutionID {
			out = append(out, *t)
		}
	}
	return paginate(out, params), nil
}

func (f *fakeStore) ListRostersByInstitution(_ context.Context, institutionID uuid.UUID, params models.ListParams) ([]models.Roster, error) {
	var out []models.Roster
	for _, r := range f.rosters {
		if t := f.teams[r.TeamID]; t != nil && t.InstitutionID == institutionID {
			out = append(out, r)
		}
	}
	return paginate(out, params), nil
}

func (f *fakeStore) ListSessionsByInstitution(_ context.Context, institutionID uuid.UUID, params models.ListParams) ([]models.Session, error) {
	var out []models.Session
	for _, s := range f.sessions {
		if t := f.teams[s.TeamID]; t != nil && t.InstitutionID == institutionID {
			out = append(out, *s)
		}
	}
	return paginate(out, params), nil
}

func (f *fakeStore) ListAttendanceByInstitution(_ context.Context, institutionID uuid.UUID, params models.ListParams) ([]models.Attendance, error) {
	var out []models.Attendance
	for _, a := range f.attendance {
		if ath := f.athletes[a.AthleteID]; ath != nil && ath.InstitutionID == institutionID {
			out = append(out, a)
		}
	}
	return paginate(out, params), nil
}

func (f *fakeStore) ListAssessmentTypesByInstitution(_ context.Context, institutionID uuid.UUID, params models.ListParams) ([]models.AssessmentType, error) {
	var out []models.AssessmentType
	for _, at := range f.assessTypes {
		if at.InstitutionID == institutionID {
			out = append(out, at)
		}
	}
	return paginate(out, params), nil
}

func (f *fakeStore) ListAssessmentResultsByInstitution(_ context.Context, institutionID uuid.UUID, params models.ListParams) ([]models.AssessmentResult, error) {
	var out []models.AssessmentResult
	for _, ar := range f.assessments {
		if ath := f.athletes[ar.AthleteID]; ath != nil && ath.InstitutionID == institutionID {
			out = append(out, ar)
		}
	}
	return paginate(out, params), nil
}

func (f *fakeStore) ListInjuriesByInstitution(_ context.Context, institutionID uuid.UUID, params models.ListParams) ([]models.Injury, error) {
	var out []models.Injury
	for _, inj := range f.injuries {
		if ath := f.athletes[inj.AthleteID]; ath != nil && ath.InstitutionID == institutionID {
			out = append(out, inj)
		}
	}
	return paginate(out, params), nil
}

// principalFor builds a request principal from a seeded user.
func principalFor(u *models.User) models.Principal {
	return models.Principal{
		UserID:        u.ID,
		Email:         u.Email,
		RoleCode:      u.RoleCode,
		InstitutionID: u.InstitutionID,
	}
}
