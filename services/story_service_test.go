// File: /services/story_service_test.go
package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"tripjournal-api/apperrors"
	"tripjournal-api/models"
	"tripjournal-api/repositories"
)

// fakeMediaStore implements MediaStore for testing
type fakeMediaStore struct {
	mu       sync.Mutex
	calls    int
	deleted  []string
	failKeys map[string]error
}

func (f *fakeMediaStore) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if err, ok := f.failKeys[key]; ok {
		return err
	}
	f.deleted = append(f.deleted, key)
	return nil
}

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Story{},
		&models.Location{},
		&models.Route{},
		&models.StoryLike{},
	)
	require.NoError(t, err)

	return db
}

func newTestStoryService(t *testing.T, db *gorm.DB) (*StoryService, *fakeMediaStore) {
	media := &fakeMediaStore{failKeys: map[string]error{}}
	service := NewStoryService(
		repositories.NewStoryRepository(db),
		repositories.NewLocationRepository(db),
		repositories.NewRouteRepository(db),
		media,
	)
	return service, media
}

func createTestStory(t *testing.T, service *StoryService, locations ...models.LocationInput) *models.Story {
	story, err := service.Create("user-1", models.CreateStoryRequest{
		Title:     "Balkan summer",
		StartDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC),
		Budget:    1500,
		Currency:  "EUR",
		Locations: locations,
	})
	require.NoError(t, err)
	return story
}

func TestCreateStory_RequiresLocation(t *testing.T) {
	db := setupTestDB(t)
	service, _ := newTestStoryService(t, db)

	_, err := service.Create("user-1", models.CreateStoryRequest{Title: "Empty"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestCreateStory_PersistsChildren(t *testing.T) {
	db := setupTestDB(t)
	service, _ := newTestStoryService(t, db)

	story, err := service.Create("user-1", models.CreateStoryRequest{
		Title:    "Alps by train",
		Currency: "CHF",
		Locations: []models.LocationInput{
			{Country: "Switzerland", City: "Zermatt"},
			{Country: "Switzerland", City: "Interlaken"},
			{Country: "Italy", City: "Milan"},
		},
		Routes: []models.RouteInput{
			{Origin: "Zermatt", Destination: "Interlaken", TransportType: "train", Duration: 130},
		},
	})
	require.NoError(t, err)
	require.Len(t, story.Locations, 3)
	require.Len(t, story.Routes, 1)

	// Countries derived from locations, unique, in order of appearance
	assert.Equal(t, models.StringSlice{"Switzerland", "Italy"}, story.Countries)

	// Children are actual rows, not just response decoration
	var locationCount, routeCount int64
	db.Model(&models.Location{}).Where("story_id = ?", story.ID).Count(&locationCount)
	db.Model(&models.Route{}).Where("story_id = ?", story.ID).Count(&routeCount)
	assert.Equal(t, int64(3), locationCount)
	assert.Equal(t, int64(1), routeCount)
}

func TestCreateStory_SingleLocation(t *testing.T) {
	db := setupTestDB(t)
	service, _ := newTestStoryService(t, db)

	story := createTestStory(t, service, models.LocationInput{Country: "Portugal", City: "Porto"})
	require.Len(t, story.Locations, 1)
	assert.NotEmpty(t, story.Locations[0].ID)
}

func TestUpdateStory_NotFound(t *testing.T) {
	db := setupTestDB(t)
	service, _ := newTestStoryService(t, db)

	_, err := service.Update("missing", models.UpdateStoryRequest{})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestUpdateStory_ScalarPatchLeavesOtherFields(t *testing.T) {
	db := setupTestDB(t)
	service, _ := newTestStoryService(t, db)

	story := createTestStory(t, service, models.LocationInput{Country: "Portugal", City: "Lisbon"})

	newTitle := "Iberian spring"
	updated, err := service.Update(story.ID, models.UpdateStoryRequest{Title: &newTitle})
	require.NoError(t, err)

	assert.Equal(t, "Iberian spring", updated.Title)
	assert.Equal(t, story.Budget, updated.Budget)
	assert.Equal(t, story.Currency, updated.Currency)
}

func TestUpdateStory_NilCollectionsUntouched(t *testing.T) {
	db := setupTestDB(t)
	service, _ := newTestStoryService(t, db)

	story := createTestStory(t, service,
		models.LocationInput{Country: "Japan", City: "Tokyo"},
		models.LocationInput{Country: "Japan", City: "Kyoto"},
	)

	newTitle := "Japan in bloom"
	updated, err := service.Update(story.ID, models.UpdateStoryRequest{Title: &newTitle})
	require.NoError(t, err)

	require.Len(t, updated.Locations, 2)
	assert.ElementsMatch(t,
		locationIDs(story.Locations),
		locationIDs(updated.Locations),
	)
}

func TestUpdateStory_EmptyListDeletesEverything(t *testing.T) {
	db := setupTestDB(t)
	service, _ := newTestStoryService(t, db)

	story := createTestStory(t, service,
		models.LocationInput{Country: "Japan", City: "Tokyo"},
		models.LocationInput{Country: "Japan", City: "Kyoto"},
	)

	empty := []models.LocationInput{}
	updated, err := service.Update(story.ID, models.UpdateStoryRequest{Locations: &empty})
	require.NoError(t, err)

	assert.Empty(t, updated.Locations)

	var count int64
	db.Model(&models.Location{}).Where("story_id = ?", story.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestUpdateStory_ReconcilesMixedPayload(t *testing.T) {
	db := setupTestDB(t)
	service, _ := newTestStoryService(t, db)

	story := createTestStory(t, service,
		models.LocationInput{Country: "Spain", City: "Madrid"},
		models.LocationInput{Country: "Spain", City: "Seville"},
	)
	kept := story.Locations[0]

	desired := []models.LocationInput{
		{ID: kept.ID, Country: "Spain", City: "Toledo"}, // update
		{Country: "Portugal", City: "Faro"},             // create
	}
	updated, err := service.Update(story.ID, models.UpdateStoryRequest{Locations: &desired})
	require.NoError(t, err)

	require.Len(t, updated.Locations, 2)

	byID := map[string]models.Location{}
	for _, location := range updated.Locations {
		byID[location.ID] = location
	}
	require.Contains(t, byID, kept.ID)
	assert.Equal(t, "Toledo", byID[kept.ID].City)

	// The dropped location is gone for good
	_, hasDropped := byID[story.Locations[1].ID]
	assert.False(t, hasDropped)

	// Countries recomputed after reconciliation
	assert.ElementsMatch(t, []string{"Spain", "Portugal"}, []string(updated.Countries))
}

func TestDeleteStory_NotFound(t *testing.T) {
	db := setupTestDB(t)
	service, _ := newTestStoryService(t, db)

	err := service.Delete("missing")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestDeleteStory_CascadesMediaAndRecords(t *testing.T) {
	db := setupTestDB(t)
	service, media := newTestStoryService(t, db)

	story := createTestStory(t, service,
		models.LocationInput{
			Country: "Norway", City: "Bergen",
			Photos: []string{"p1", "p2"},
		},
		models.LocationInput{
			Country: "Norway", City: "Oslo",
			Photos: []string{"p3"},
			Videos: []string{"v1"},
		},
	)

	require.NoError(t, service.Delete(story.ID))

	// One media delete per key
	assert.Equal(t, 4, media.calls)
	assert.ElementsMatch(t, []string{"p1", "p2", "p3", "v1"}, media.deleted)

	var storyCount, locationCount int64
	db.Model(&models.Story{}).Where("id = ?", story.ID).Count(&storyCount)
	db.Model(&models.Location{}).Where("story_id = ?", story.ID).Count(&locationCount)
	assert.Equal(t, int64(0), storyCount)
	assert.Equal(t, int64(0), locationCount)
}

func TestDeleteStory_MediaFailureDoesNotAbort(t *testing.T) {
	db := setupTestDB(t)
	service, media := newTestStoryService(t, db)
	media.failKeys["p2"] = assert.AnError

	story := createTestStory(t, service,
		models.LocationInput{
			Country: "Norway", City: "Bergen",
			Photos: []string{"p1", "p2", "p3"},
		},
	)

	require.NoError(t, service.Delete(story.ID))

	// Every key was attempted and the records are still gone
	assert.Equal(t, 3, media.calls)

	var storyCount int64
	db.Model(&models.Story{}).Where("id = ?", story.ID).Count(&storyCount)
	assert.Equal(t, int64(0), storyCount)
}
