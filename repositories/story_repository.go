// File: /repositories/story_repository.go
package repositories

import (
	"errors"

	"gorm.io/gorm"

	"tripjournal-api/apperrors"
	"tripjournal-api/models"
)

type StoryRepository struct {
	db *gorm.DB
}

func NewStoryRepository(db *gorm.DB) *StoryRepository {
	return &StoryRepository{db: db}
}

// FindByID retrieves the story record without its child collections
func (r *StoryRepository) FindByID(id string) (*models.Story, error) {
	var story models.Story
	if err := r.db.First(&story, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("story not found")
		}
		return nil, apperrors.NewDependency("failed to load story", err)
	}
	return &story, nil
}

// FindByIDExpanded retrieves the story with its locations and routes
func (r *StoryRepository) FindByIDExpanded(id string) (*models.Story, error) {
	var story models.Story
	err := r.db.Preload("Locations").Preload("Routes").First(&story, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("story not found")
		}
		return nil, apperrors.NewDependency("failed to load story", err)
	}
	return &story, nil
}

// FindByUser retrieves all stories authored by a user, newest first
func (r *StoryRepository) FindByUser(userID string) ([]models.Story, error) {
	var stories []models.Story
	err := r.db.Preload("Locations").Preload("Routes").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&stories).Error
	if err != nil {
		return nil, apperrors.NewDependency("failed to load user stories", err)
	}
	return stories, nil
}

func (r *StoryRepository) Create(story *models.Story) error {
	// Children are persisted by their own repositories before the story
	// record itself, so association writes are skipped here.
	if err := r.db.Omit("Locations", "Routes", "User").Create(story).Error; err != nil {
		return apperrors.NewDependency("failed to create story", err)
	}
	return nil
}

// UpdateByID patches the story's scalar columns
func (r *StoryRepository) UpdateByID(id string, patch map[string]interface{}) (*models.Story, error) {
	var story models.Story
	if err := r.db.First(&story, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("story not found")
		}
		return nil, apperrors.NewDependency("failed to load story", err)
	}

	if err := r.db.Model(&story).Updates(patch).Error; err != nil {
		return nil, apperrors.NewDependency("failed to update story", err)
	}

	if err := r.db.First(&story, "id = ?", id).Error; err != nil {
		return nil, apperrors.NewDependency("failed to reload story", err)
	}
	return &story, nil
}

func (r *StoryRepository) DeleteByID(id string) error {
	if err := r.db.Delete(&models.Story{}, "id = ?", id).Error; err != nil {
		return apperrors.NewDependency("failed to delete story", err)
	}
	return nil
}

// DeleteMany removes the given story ids in one statement
func (r *StoryRepository) DeleteMany(ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if err := r.db.Where("id IN ?", ids).Delete(&models.Story{}).Error; err != nil {
		return apperrors.NewDependency("failed to delete stories", err)
	}
	return nil
}
