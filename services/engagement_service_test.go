// File: /services/engagement_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"tripjournal-api/apperrors"
	"tripjournal-api/models"
	"tripjournal-api/repositories"
)

func newTestEngagementService(db *gorm.DB) *EngagementService {
	return NewEngagementService(db,
		repositories.NewUserRepository(db),
		repositories.NewStoryRepository(db),
	)
}

func seedUserAndStory(t *testing.T, db *gorm.DB) (string, string) {
	user := models.User{ID: "user-1", FirstName: "Ana", Email: "ana@example.com", Password: "x", Role: "user"}
	require.NoError(t, db.Create(&user).Error)

	story := models.Story{ID: "story-1", UserID: "user-2", Title: "Andes trek"}
	require.NoError(t, db.Create(&story).Error)

	return user.ID, story.ID
}

func storyLikesCount(t *testing.T, db *gorm.DB, storyID string) int {
	var story models.Story
	require.NoError(t, db.First(&story, "id = ?", storyID).Error)
	return story.LikesCount
}

func TestLike_IncrementsOnce(t *testing.T) {
	db := setupTestDB(t)
	service := newTestEngagementService(db)
	userID, storyID := seedUserAndStory(t, db)

	require.NoError(t, service.Like(userID, storyID))

	err := service.Like(userID, storyID)
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))

	// Counter bumped exactly once, one membership row
	assert.Equal(t, 1, storyLikesCount(t, db, storyID))

	var rows int64
	db.Model(&models.StoryLike{}).Where("user_id = ? AND story_id = ?", userID, storyID).Count(&rows)
	assert.Equal(t, int64(1), rows)
}

func TestLike_UnknownUser(t *testing.T) {
	db := setupTestDB(t)
	service := newTestEngagementService(db)
	_, storyID := seedUserAndStory(t, db)

	err := service.Like("ghost", storyID)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestLike_UnknownStory(t *testing.T) {
	db := setupTestDB(t)
	service := newTestEngagementService(db)
	userID, _ := seedUserAndStory(t, db)

	err := service.Like(userID, "ghost")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))

	// Failed like leaves no membership row behind
	var rows int64
	db.Model(&models.StoryLike{}).Where("user_id = ?", userID).Count(&rows)
	assert.Equal(t, int64(0), rows)
}

func TestDislike_WithoutLikeConflicts(t *testing.T) {
	db := setupTestDB(t)
	service := newTestEngagementService(db)
	userID, storyID := seedUserAndStory(t, db)

	err := service.Dislike(userID, storyID)
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
	assert.Equal(t, 0, storyLikesCount(t, db, storyID))
}

func TestLikeDislike_Roundtrip(t *testing.T) {
	db := setupTestDB(t)
	service := newTestEngagementService(db)
	userID, storyID := seedUserAndStory(t, db)

	require.NoError(t, service.Like(userID, storyID))
	require.NoError(t, service.Dislike(userID, storyID))

	assert.Equal(t, 0, storyLikesCount(t, db, storyID))

	var rows int64
	db.Model(&models.StoryLike{}).Where("user_id = ?", userID).Count(&rows)
	assert.Equal(t, int64(0), rows)
}

func TestDislike_CounterNeverNegative(t *testing.T) {
	db := setupTestDB(t)
	service := newTestEngagementService(db)
	userID, storyID := seedUserAndStory(t, db)

	// Simulate a counter that drifted out of sync with the like set
	require.NoError(t, db.Create(&models.StoryLike{UserID: userID, StoryID: storyID}).Error)
	require.NoError(t, db.Model(&models.Story{}).Where("id = ?", storyID).Update("likes_count", 0).Error)

	require.NoError(t, service.Dislike(userID, storyID))
	assert.Equal(t, 0, storyLikesCount(t, db, storyID))
}

func TestGetLikedStories_ReturnsExpanded(t *testing.T) {
	db := setupTestDB(t)
	service := newTestEngagementService(db)
	userID, storyID := seedUserAndStory(t, db)

	location := models.Location{ID: "loc-1", StoryID: storyID, Country: "Peru", City: "Cusco"}
	require.NoError(t, db.Create(&location).Error)

	require.NoError(t, service.Like(userID, storyID))

	stories, err := service.GetLikedStories(userID)
	require.NoError(t, err)
	require.Len(t, stories, 1)
	assert.Equal(t, storyID, stories[0].ID)
	require.Len(t, stories[0].Locations, 1)
	assert.Equal(t, "Cusco", stories[0].Locations[0].City)
}

func TestGetLikedStories_DropsDanglingReferences(t *testing.T) {
	db := setupTestDB(t)
	service := newTestEngagementService(db)
	userID, storyID := seedUserAndStory(t, db)

	require.NoError(t, service.Like(userID, storyID))

	// Delete the story out from under the like row
	require.NoError(t, db.Delete(&models.Story{}, "id = ?", storyID).Error)

	stories, err := service.GetLikedStories(userID)
	require.NoError(t, err)
	assert.Empty(t, stories)

	// The dangling row was cleaned up on read
	var rows int64
	db.Model(&models.StoryLike{}).Where("user_id = ?", userID).Count(&rows)
	assert.Equal(t, int64(0), rows)
}
