// File: /repositories/location_repository_test.go
package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"tripjournal-api/apperrors"
	"tripjournal-api/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.Story{}, &models.Location{}, &models.Route{})
	require.NoError(t, err)

	return db
}

func TestLocationRepository_UpdateByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLocationRepository(db)

	_, err := repo.UpdateByID("missing", map[string]interface{}{"city": "Nowhere"})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestLocationRepository_UpdateByID_PatchesMediaLists(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLocationRepository(db)

	location := models.Location{
		ID:      "loc-1",
		StoryID: "story-1",
		Country: "Iceland",
		City:    "Reykjavik",
		Photos:  models.StringSlice{"old"},
	}
	require.NoError(t, repo.Create(&location))

	updated, err := repo.UpdateByID("loc-1", map[string]interface{}{
		"photos": models.StringSlice{"old", "new"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.StringSlice{"old", "new"}, updated.Photos)
	assert.Equal(t, "Reykjavik", updated.City)
}

func TestLocationRepository_DeleteMany(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLocationRepository(db)

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Create(&models.Location{ID: id, StoryID: "story-1", Country: "Iceland"}))
	}

	require.NoError(t, repo.DeleteMany([]string{"a", "c"}))

	remaining, err := repo.FindByStory("story-1")
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "b", remaining[0].ID)

	// Empty id set is a no-op, not an error
	require.NoError(t, repo.DeleteMany(nil))
}

func TestLocationRepository_FindByStory_Empty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLocationRepository(db)

	locations, err := repo.FindByStory("story-1")
	require.NoError(t, err)
	assert.Empty(t, locations)
}
