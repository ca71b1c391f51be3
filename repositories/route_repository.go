// File: /repositories/route_repository.go
package repositories

import (
	"errors"

	"gorm.io/gorm"

	"tripjournal-api/apperrors"
	"tripjournal-api/models"
)

type RouteRepository struct {
	db *gorm.DB
}

func NewRouteRepository(db *gorm.DB) *RouteRepository {
	return &RouteRepository{db: db}
}

func (r *RouteRepository) FindByID(id string) (*models.Route, error) {
	var route models.Route
	if err := r.db.First(&route, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("route not found")
		}
		return nil, apperrors.NewDependency("failed to load route", err)
	}
	return &route, nil
}

// FindByStory retrieves all routes belonging to a story
func (r *RouteRepository) FindByStory(storyID string) ([]models.Route, error) {
	var routes []models.Route
	if err := r.db.Where("story_id = ?", storyID).Order("created_at").Find(&routes).Error; err != nil {
		return nil, apperrors.NewDependency("failed to load story routes", err)
	}
	return routes, nil
}

func (r *RouteRepository) Create(route *models.Route) error {
	if err := r.db.Create(route).Error; err != nil {
		return apperrors.NewDependency("failed to create route", err)
	}
	return nil
}

// UpdateByID patches an existing route and returns the fresh row
func (r *RouteRepository) UpdateByID(id string, patch map[string]interface{}) (*models.Route, error) {
	var route models.Route
	if err := r.db.First(&route, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("route not found")
		}
		return nil, apperrors.NewDependency("failed to load route", err)
	}

	if err := r.db.Model(&route).Updates(patch).Error; err != nil {
		return nil, apperrors.NewDependency("failed to update route", err)
	}

	if err := r.db.First(&route, "id = ?", id).Error; err != nil {
		return nil, apperrors.NewDependency("failed to reload route", err)
	}
	return &route, nil
}

func (r *RouteRepository) DeleteByID(id string) error {
	if err := r.db.Delete(&models.Route{}, "id = ?", id).Error; err != nil {
		return apperrors.NewDependency("failed to delete route", err)
	}
	return nil
}

// DeleteMany removes the given route ids in one statement
func (r *RouteRepository) DeleteMany(ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if err := r.db.Where("id IN ?", ids).Delete(&models.Route{}).Error; err != nil {
		return apperrors.NewDependency("failed to delete routes", err)
	}
	return nil
}
