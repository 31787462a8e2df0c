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

func TestAthleteCreate_CoachEligible(t *testing.T) {
	store := newFakeStore()
	inst := store.addInstitution("Northside Academy")
	coach := store.addUser(inst.ID, "coach@example.com", models.RoleCoach)
	sport := store.addSport(inst.ID, "Football")
	svc := NewAthleteService(store, logger.NewNop())

	lastName := "Rivera"
	athlete, err := svc.Create(context.Background(), principalFor(coach), models.CreateAthleteRequest{
		FirstName:      "Jo",
		LastName:       &lastName,
		PrimarySportID: &sport.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, inst.ID, athlete.InstitutionID)
	assert.Equal(t, sport.ID, athlete.PrimarySportID.UUID)
}

func TestAthleteCreate_AthleteRoleForbidden(t *testing.T) {
	store := newFakeStore()
	inst := store.addInstitution("Northside Academy")
	athleteUser := store.addUser(inst.ID, "athlete@example.com", models.RoleAthlete)
	svc := NewAthleteService(store, logger.NewNop())

	_, err := svc.Create(context.Background(), principalFor(athleteUser), models.CreateAthleteRequest{FirstName: "Jo"})
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
}

func TestAthleteCreate_LinkedUserFromOtherInstitution(t *testing.T) {
	store := newFakeStore()
	instA := store.addInstitution("Northside Academy")
	instB := store.addInstitution("Southside Club")
	coachA := store.addUser(instA.ID, "coach@northside.com", models.RoleCoach)
	foreignUser := store.addUser(instB.ID, "user@southside.com", models.RoleAthlete)
	svc := NewAthleteService(store, logger.NewNop())

	_, err := svc.Create(context.Background(), principalFor(coachA), models.CreateAthleteRequest{
		FirstName: "Jo",
		UserID:    &foreignUser.ID,
	})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestAthleteList_TenantIsolation(t *testing.T) {
	store := newFakeStore()
	instA := store.addInstitution("Northside Academy")
	instB := store.addInstitution("Southside Club")
	store.addAthlete(instA.ID, "Jo")
	store.addAthlete(instA.ID, "Sam")
	mineOnly := store.addAthlete(instB.ID, "Alex")
	athleteB := store.addUser(instB.ID, "athlete@southside.com", models.RoleAthlete)
	svc := NewAthleteService(store, logger.NewNop())

	athletes, err := svc.List(context.Background(), principalFor(athleteB), models.DefaultListParams())
	require.NoError(t, err)
	require.Len(t, athletes, 1)
	assert.Equal(t, mineOnly.ID, athletes[0].ID)
}
