// File: /repositories/user_repository.go
package repositories

import (
	"errors"

	"gorm.io/gorm"

	"tripjournal-api/apperrors"
	"tripjournal-api/models"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("user not found")
		}
		return nil, apperrors.NewDependency("failed to load user", err)
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("user not found")
		}
		return nil, apperrors.NewDependency("failed to load user", err)
	}
	return &user, nil
}

func (r *UserRepository) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return apperrors.NewDependency("failed to create user", err)
	}
	return nil
}

// UpdateByID patches the user's profile columns
func (r *UserRepository) UpdateByID(id string, patch map[string]interface{}) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("user not found")
		}
		return nil, apperrors.NewDependency("failed to load user", err)
	}

	if err := r.db.Model(&user).Updates(patch).Error; err != nil {
		return nil, apperrors.NewDependency("failed to update user", err)
	}

	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, apperrors.NewDependency("failed to reload user", err)
	}
	return &user, nil
}

func (r *UserRepository) DeleteByID(id string) error {
	if err := r.db.Delete(&models.User{}, "id = ?", id).Error; err != nil {
		return apperrors.NewDependency("failed to delete user", err)
	}
	return nil
}
