// File: /services/reconciler_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"tripjournal-api/models"
	"tripjournal-api/repositories"
)

func seedLocations(t *testing.T, db *gorm.DB, storyID string, cities ...string) []models.Location {
	repo := repositories.NewLocationRepository(db)
	locations := make([]models.Location, 0, len(cities))
	for _, city := range cities {
		location := models.Location{
			ID:      uuid.New().String(),
			StoryID: storyID,
			Country: "Greece",
			City:    city,
		}
		require.NoError(t, repo.Create(&location))
		locations = append(locations, location)
	}
	return locations
}

func persistedLocationIDs(t *testing.T, db *gorm.DB, storyID string) []string {
	var locations []models.Location
	require.NoError(t, db.Where("story_id = ?", storyID).Find(&locations).Error)
	return locationIDs(locations)
}

func TestReconcileChildren_DeletesDroppedIDs(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewLocationRepository(db)
	existing := seedLocations(t, db, "story-1", "Athens", "Naxos", "Santorini")

	create := models.Location{ID: uuid.New().String(), StoryID: "story-1", Country: "Greece", City: "Paros"}
	desired := []DesiredChild[models.Location]{
		{Update: &ChildPatch{ID: existing[0].ID, Patch: map[string]interface{}{"city": "Athens centre"}}},
		{Create: &create},
	}

	result, err := ReconcileChildren[models.Location](repo, locationIDs(existing), desired)
	require.NoError(t, err)
	require.Len(t, result, 2)

	// Post-state ids: kept existing id plus the new one, nothing else
	assert.ElementsMatch(t,
		[]string{existing[0].ID, create.ID},
		persistedLocationIDs(t, db, "story-1"),
	)
	assert.Equal(t, "Athens centre", result[0].City)
}

func TestReconcileChildren_UpdatedBeforeCreated(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewLocationRepository(db)
	existing := seedLocations(t, db, "story-1", "Athens")

	create := models.Location{ID: uuid.New().String(), StoryID: "story-1", Country: "Greece", City: "Crete"}
	desired := []DesiredChild[models.Location]{
		{Create: &create},
		{Update: &ChildPatch{ID: existing[0].ID, Patch: map[string]interface{}{"city": "Athens"}}},
	}

	result, err := ReconcileChildren[models.Location](repo, locationIDs(existing), desired)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, existing[0].ID, result[0].ID)
	assert.Equal(t, create.ID, result[1].ID)
}

func TestReconcileChildren_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewLocationRepository(db)
	existing := seedLocations(t, db, "story-1", "Athens", "Naxos")

	create := models.Location{ID: uuid.New().String(), StoryID: "story-1", Country: "Greece", City: "Milos"}
	desired := []DesiredChild[models.Location]{
		{Update: &ChildPatch{ID: existing[0].ID, Patch: map[string]interface{}{"city": "Athens"}}},
		{Update: &ChildPatch{ID: existing[1].ID, Patch: map[string]interface{}{"city": "Naxos"}}},
		{Create: &create},
	}

	first, err := ReconcileChildren[models.Location](repo, locationIDs(existing), desired)
	require.NoError(t, err)

	// Second round resubmits the same set, now with every id known
	again := make([]DesiredChild[models.Location], 0, len(first))
	for _, location := range first {
		again = append(again, DesiredChild[models.Location]{
			Update: &ChildPatch{ID: location.ID, Patch: map[string]interface{}{"city": location.City}},
		})
	}

	second, err := ReconcileChildren[models.Location](repo, locationIDs(first), again)
	require.NoError(t, err)

	assert.ElementsMatch(t, locationIDs(first), locationIDs(second))
	assert.ElementsMatch(t, locationIDs(first), persistedLocationIDs(t, db, "story-1"))
}

func TestReconcileChildren_SkipsUnknownUpdateID(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewLocationRepository(db)
	existing := seedLocations(t, db, "story-1", "Athens")

	desired := []DesiredChild[models.Location]{
		{Update: &ChildPatch{ID: existing[0].ID, Patch: map[string]interface{}{"city": "Athens"}}},
		{Update: &ChildPatch{ID: "long-gone", Patch: map[string]interface{}{"city": "Atlantis"}}},
	}

	result, err := ReconcileChildren[models.Location](repo, locationIDs(existing), desired)
	require.NoError(t, err)

	// The stale id is dropped silently, not recreated
	require.Len(t, result, 1)
	assert.Equal(t, existing[0].ID, result[0].ID)
	assert.ElementsMatch(t, []string{existing[0].ID}, persistedLocationIDs(t, db, "story-1"))
}

func TestReconcileChildren_EmptyDesiredDeletesAll(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewLocationRepository(db)
	existing := seedLocations(t, db, "story-1", "Athens", "Naxos", "Santorini")

	result, err := ReconcileChildren[models.Location](repo, locationIDs(existing), nil)
	require.NoError(t, err)

	assert.Empty(t, result)
	assert.Empty(t, persistedLocationIDs(t, db, "story-1"))
}

func TestReconcileChildren_RoutesUseSameAlgorithm(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewRouteRepository(db)

	route := models.Route{ID: uuid.New().String(), StoryID: "story-1", Origin: "Athens", Destination: "Naxos", TransportType: "boat"}
	require.NoError(t, repo.Create(&route))

	create := models.Route{ID: uuid.New().String(), StoryID: "story-1", Origin: "Naxos", Destination: "Santorini", TransportType: "boat"}
	desired := []DesiredChild[models.Route]{
		{Update: &ChildPatch{ID: route.ID, Patch: map[string]interface{}{"transport_type": "ferry"}}},
		{Create: &create},
	}

	result, err := ReconcileChildren[models.Route](repo, []string{route.ID}, desired)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "ferry", result[0].TransportType)
}
