// File: /repositories/location_repository.go
package repositories

import (
	"errors"

	"gorm.io/gorm"

	"tripjournal-api/apperrors"
	"tripjournal-api/models"
)

type LocationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

// FindByID retrieves a single location
func (r *LocationRepository) FindByID(id string) (*models.Location, error) {
	var location models.Location
	if err := r.db.First(&location, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("location not found")
		}
		return nil, apperrors.NewDependency("failed to load location", err)
	}
	return &location, nil
}

// FindByStory retrieves all locations belonging to a story
func (r *LocationRepository) FindByStory(storyID string) ([]models.Location, error) {
	var locations []models.Location
	if err := r.db.Where("story_id = ?", storyID).Order("start_date").Find(&locations).Error; err != nil {
		return nil, apperrors.NewDependency("failed to load story locations", err)
	}
	return locations, nil
}

func (r *LocationRepository) Create(location *models.Location) error {
	if err := r.db.Create(location).Error; err != nil {
		return apperrors.NewDependency("failed to create location", err)
	}
	return nil
}

// UpdateByID patches an existing location and returns the fresh row
func (r *LocationRepository) UpdateByID(id string, patch map[string]interface{}) (*models.Location, error) {
	var location models.Location
	if err := r.db.First(&location, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("location not found")
		}
		return nil, apperrors.NewDependency("failed to load location", err)
	}

	if err := r.db.Model(&location).Updates(patch).Error; err != nil {
		return nil, apperrors.NewDependency("failed to update location", err)
	}

	if err := r.db.First(&location, "id = ?", id).Error; err != nil {
		return nil, apperrors.NewDependency("failed to reload location", err)
	}
	return &location, nil
}

func (r *LocationRepository) DeleteByID(id string) error {
	if err := r.db.Delete(&models.Location{}, "id = ?", id).Error; err != nil {
		return apperrors.NewDependency("failed to delete location", err)
	}
	return nil
}

// DeleteMany removes the given location ids in one statement
func (r *LocationRepository) DeleteMany(ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if err := r.db.Where("id IN ?", ids).Delete(&models.Location{}).Error; err != nil {
		return apperrors.NewDependency("failed to delete locations", err)
	}
	return nil
}
