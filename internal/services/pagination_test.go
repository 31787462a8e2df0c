package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platformbuilds/athlos-core/internal/apperr"
	"github.com/platformbuilds/athlos-core/internal/models"
	"github.com/platformbuilds/athlos-core/pkg/logger"
)

func TestList_RejectsOutOfRangeParams(t *testing.T) {
	store := newFakeStore()
	inst := store.addInstitution("Northside Academy")
	admin := store.addUser(inst.ID, "admin@example.com", models.RoleAdmin)
	svc := NewAthleteService(store, logger.NewNop())

	tests := []models.ListParams{
		{Limit: 0, Offset: 0},
		{Limit: -1, Offset: 0},
		{Limit: models.MaxListLimit + 1, Offset: 0},
		{Limit: 50, Offset: -1},
	}
	for _, params := range tests {
		_, err := svc.List(context.Background(), principalFor(admin), params)
		assert.Equal(t, apperr.KindInvalidArgument, apperr.KindOf(err), "params %+v", params)
	}
}

func TestList_MaxLimitOnEmptyStore(t *testing.T) {
	store := newFakeStore()
	inst := store.addInstitution("Northside Academy")
	admin := store.addUser(inst.ID, "admin@example.com", models.RoleAdmin)
	svc := NewAthleteService(store, logger.NewNop())

	athletes, err := svc.List(context.Background(), principalFor(admin), models.ListParams{Limit: models.MaxListLimit})
	require.NoError(t, err)
	assert.Empty(t, athletes)
}

func TestList_WindowBounds(t *testing.T) {
	store := newFakeStore()
	inst := store.addInstitution("Northside Academy")
	admin := store.addUser(inst.ID, "admin@example.com", models.RoleAdmin)
	for i := 0; i < 5; i++ {
		store.addAthlete(inst.ID, fmt.Sprintf("Athlete %d", i))
	}
	svc := NewAthleteService(store, logger.NewNop())

	tests := []struct {
		params models.ListParams
		want   int
	}{
		{models.ListParams{Limit: 2, Offset: 0}, 2},
		{models.ListParams{Limit: 2, Offset: 4}, 1},
		{models.ListParams{Limit: 2, Offset: 5}, 0},
		{models.ListParams{Limit: 200, Offset: 0}, 5},
	}
	for _, tt := range tests {
		athletes, err := svc.List(context.Background(), principalFor(admin), tt.params)
		require.NoError(t, err)
		assert.Len(t, athletes, tt.want, "params %+v", tt.params)
	}
}
