package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platformbuilds/athlos-core/internal/apperr"
	"github.com/platformbuilds/athlos-core/internal/models"
	"github.com/platformbuilds/athlos-core/pkg/logger"
)

func TestRosterCreate(t *testing.T) {
	store := newFakeStore()
	inst := store.addInstitution("Northside Academy")
	coach := store.addUser(inst.ID, "coach@example.com", models.RoleCoach)
	team := store.addTeam(inst.ID, "U18")
	athlete := store.addAthlete(inst.ID, "Jo")
	svc := NewRosterService(store, logger.NewNop())

	roster, err := svc.Create(context.Background(), principalFor(coach), models.CreateRosterRequest{
		TeamID:    team.ID,
		AthleteID: athlete.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, team.ID, roster.TeamID)
	assert.Equal(t, athlete.ID, roster.AthleteID)
}

// Both ends of the roster link are scope-checked; a cross-tenant reference
// on either side fails before anything is written.
func TestRosterCreate_CrossTenantReferences(t *testing.T) {
	store := newFakeStore()
	instA := store.addInstitution("Northside Academy")
	instB := store.addInstitution("Southside Club")
	coachA := store.addUser(instA.ID, "coach@northside.com", models.RoleCoach)
	teamA := store.addTeam(instA.ID, "North U18")
	athleteA := store.addAthlete(instA.ID, "Jo")
	teamB := store.addTeam(instB.ID, "South U18")
	athleteB := store.addAthlete(instB.ID, "Sam")
	svc := NewRosterService(store, logger.NewNop())

	tests := []struct {
		name string
		req  models.CreateRosterRequest
	}{
		{"foreign team", models.CreateRosterRequest{TeamID: teamB.ID, AthleteID: athleteA.ID}},
		{"foreign athlete", models.CreateRosterRequest{TeamID: teamA.ID, AthleteID: athleteB.ID}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), principalFor(coachA), tt.req)
			assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
		})
	}
	assert.Empty(t, store.rosters)
}
