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

func TestAssessmentTypeCreate_AdminOnly(t *testing.T) {
	store := newFakeStore()
	inst := store.addInstitution("Northside Academy")
	coach := store.addUser(inst.ID, "coach@example.com", models.RoleCoach)
	svc := NewAssessmentService(store, logger.NewNop())

	_, err := svc.CreateType(context.Background(), principalFor(coach), models.CreateAssessmentTypeRequest{Name: "Vertical Jump"})
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
}

func TestAssessmentResultCreate(t *testing.T) {
	store := newFakeStore()
	inst := store.addInstitution("Northside Academy")
	admin := store.addUser(inst.ID, "admin@example.com", models.RoleAdmin)
	coach := store.addUser(inst.ID, "coach@example.com", models.RoleCoach)
	athlete := store.addAthlete(inst.ID, "Jo")
	svc := NewAssessmentService(store, logger.NewNop())

	at, err := svc.CreateType(context.Background(), principalFor(admin), models.CreateAssessmentTypeRequest{Name: "Vertical Jump"})
	require.NoError(t, err)

	result, err := svc.CreateResult(context.Background(), principalFor(coach), models.CreateAssessmentRequest{
		AthleteID:        athlete.ID,
		AssessmentTypeID: at.ID,
		Value:            61.5,
	})
	require.NoError(t, err)
	assert.Equal(t, athlete.ID, result.AthleteID)
	assert.Equal(t, at.ID, result.AssessmentTypeID)
	assert.Equal(t, 61.5, result.Value)
	assert.Equal(t, coach.ID, result.RecordedBy)
	assert.False(t, result.RecordedAt.IsZero())
}

func TestAssessmentResultCreate_TypeFromOtherInstitution(t *testing.T) {
	store := newFakeStore()
	instA := store.addInstitution("Northside Academy")
	instB := store.addInstitution("Southside Club")
	adminB := store.addUser(instB.ID, "admin@southside.com", models.RoleAdmin)
	coachA := store.addUser(instA.ID, "coach@northside.com", models.RoleCoach)
	athleteA := store.addAthlete(instA.ID, "Jo")
	svc := NewAssessmentService(store, logger.NewNop())

	foreignType, err := svc.CreateType(context.Background(), principalFor(adminB), models.CreateAssessmentTypeRequest{Name: "Sprint 40m"})
	require.NoError(t, err)

	_, err = svc.CreateResult(context.Background(), principalFor(coachA), models.CreateAssessmentRequest{
		AthleteID:        athleteA.ID,
		AssessmentTypeID: foreignType.ID,
		Value:            5.2,
	})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
