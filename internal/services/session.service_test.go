package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platformbuilds/athlos-core/internal/apperr"
	"github.com/platformbuilds/athlos-core/internal/models"
	"github.com/platformbuilds/athlos-core/pkg/logger"
)

func TestSessionCreate_TeamFromOtherInstitution(t *testing.T) {
	store := newFakeStore()
	instA := store.addInstitution("Northside Academy")
	instB := store.addInstitution("Southside Club")
	coachA := store.addUser(instA.ID, "coach@northside.com", models.RoleCoach)
	foreignTeam := store.addTeam(instB.ID, "South U18")
	svc := NewSessionService(store, logger.NewNop())

	_, err := svc.Create(context.Background(), principalFor(coachA), models.CreateSessionRequest{
		TeamID:  foreignTeam.ID,
		StartTS: time.Now(),
	})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestSessionCreate_CoachEligible(t *testing.T) {
	store := newFakeStore()
	inst := store.addInstitution("Northside Academy")
	coach := store.addUser(inst.ID, "coach@example.com", models.RoleCoach)
	team := store.addTeam(inst.ID, "U18")
	svc := NewSessionService(store, logger.NewNop())

	start := time.Now()
	sess, err := svc.Create(context.Background(), principalFor(coach), models.CreateSessionRequest{
		TeamID:  team.ID,
		CoachID: &coach.ID,
		StartTS: start,
	})
	require.NoError(t, err)
	assert.Equal(t, team.ID, sess.TeamID)
	assert.Equal(t, coach.ID, sess.CoachID.UUID)
	assert.Equal(t, start, sess.StartTS)
}

func TestSessionCreate_AthleteForbidden(t *testing.T) {
	store := newFakeStore()
	inst := store.addInstitution("Northside Academy")
	athlete := store.addUser(inst.ID, "athlete@example.com", models.RoleAthlete)
	team := store.addTeam(inst.ID, "U18")
	svc := NewSessionService(store, logger.NewNop())

	_, err := svc.Create(context.Background(), principalFor(athlete), models.CreateSessionRequest{
		TeamID:  team.ID,
		StartTS: time.Now(),
	})
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
}

// Sessions carry no institution column; their tenant is derived from the
// team. A session under another tenant's team must stay invisible.
func TestSessionList_TransitiveTenantScoping(t *testing.T) {
	store := newFakeStore()
	instA := store.addInstitution("Northside Academy")
	instB := store.addInstitution("Southside Club")
	teamA := store.addTeam(instA.ID, "North U18")
	teamB := store.addTeam(instB.ID, "South U18")
	mine := store.addSession(teamA.ID)
	store.addSession(teamB.ID)
	coachA := store.addUser(instA.ID, "coach@northside.com", models.RoleCoach)
	svc := NewSessionService(store, logger.NewNop())

	sessions, err := svc.List(context.Background(), principalFor(coachA), models.DefaultListParams())
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, mine.ID, sessions[0].ID)
}
