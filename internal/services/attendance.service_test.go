package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platformbuilds/athlos-core/internal/apperr"
	"github.com/platformbuilds/athlos-core/internal/models"
	"github.com/platformbuilds/athlos-core/pkg/logger"
)

func TestAttendanceCreate_RoundTrip(t *testing.T) {
	store := newFakeStore()
	inst := store.addInstitution("Northside Academy")
	coach := store.addUser(inst.ID, "coach@example.com", models.RoleCoach)
	athlete := store.addAthlete(inst.ID, "Jo")
	team := store.addTeam(inst.ID, "U18")
	sess := store.addSession(team.ID)
	svc := NewAttendanceService(store, logger.NewNop())

	rec, err := svc.Create(context.Background(), principalFor(coach), models.CreateAttendanceRequest{
		SessionID: sess.ID,
		AthleteID: athlete.ID,
		Status:    "present",
	})
	require.NoError(t, err)

	// The record echoes the submitted references and status, with a fresh
	// id and server-assigned recorded_at.
	assert.Equal(t, sess.ID, rec.SessionID)
	assert.Equal(t, athlete.ID, rec.AthleteID)
	assert.Equal(t, "present", rec.Status)
	assert.Equal(t, coach.ID, rec.RecordedBy)
	assert.NotEqual(t, uuid.Nil, rec.ID)
	assert.False(t, rec.RecordedAt.IsZero())
}

func TestAttendanceCreate_AthleteFromOtherInstitution(t *testing.T) {
	store := newFakeStore()
	instA := store.addInstitution("Northside Academy")
	instB := store.addInstitution("Southside Club")
	coachA := store.addUser(instA.ID, "coach@northside.com", models.RoleCoach)
	teamA := store.addTeam(instA.ID, "North U18")
	sessA := store.addSession(teamA.ID)
	foreignAthlete := store.addAthlete(instB.ID, "Sam")
	svc := NewAttendanceService(store, logger.NewNop())

	_, err := svc.Create(context.Background(), principalFor(coachA), models.CreateAttendanceRequest{
		SessionID: sessA.ID,
		AthleteID: foreignAthlete.ID,
		Status:    "present",
	})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.Empty(t, store.attendance, "nothing may be written after a failed scope check")
}

func TestAttendanceCreate_SessionFromOtherInstitution(t *testing.T) {
	store := newFakeStore()
	instA := store.addInstitution("Northside Academy")
	instB := store.addInstitution("Southside Club")
	coachA := store.addUser(instA.ID, "coach@northside.com", models.RoleCoach)
	athleteA := store.addAthlete(instA.ID, "Jo")
	teamB := store.addTeam(instB.ID, "South U18")
	foreignSess := store.addSession(teamB.ID)
	svc := NewAttendanceService(store, logger.NewNop())

	_, err := svc.Create(context.Background(), principalFor(coachA), models.CreateAttendanceRequest{
		SessionID: foreignSess.ID,
		AthleteID: athleteA.ID,
		Status:    "present",
	})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestAttendanceCreate_AthleteRoleForbidden(t *testing.T) {
	store := newFakeStore()
	inst := store.addInstitution("Northside Academy")
	athleteUser := store.addUser(inst.ID, "athlete@example.com", models.RoleAthlete)
	svc := NewAttendanceService(store, logger.NewNop())

	_, err := svc.Create(context.Background(), principalFor(athleteUser), models.CreateAttendanceRequest{
		SessionID: uuid.New(),
		AthleteID: uuid.New(),
		Status:    "present",
	})
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
}
