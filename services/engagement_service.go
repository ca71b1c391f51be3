// File: /services/engagement_service.go
package services

import (
	"errors"

	"gorm.io/gorm"

	"tripjournal-api/apperrors"
	"tripjournal-api/models"
	"tripjournal-api/repositories"
)

// EngagementService maintains the liked relation between users and
// stories together with the story's like counter. Membership check,
// counter bump and like row write run in one transaction, and the
// (user_id, story_id) pair is unique at the database level, so two
// concurrent likes from the same user cannot double-count.
type EngagementService struct {
	db        *gorm.DB
	userRepo  *repositories.UserRepository
	storyRepo *repositories.StoryRepository
}

func NewEngagementService(db *gorm.DB, userRepo *repositories.UserRepository, storyRepo *repositories.StoryRepository) *EngagementService {
	return &EngagementService{
		db:        db,
		userRepo:  userRepo,
		storyRepo: storyRepo,
	}
}

// Like records that the user liked the story and bumps the counter.
func (s *EngagementService) Like(userID, storyID string) error {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.StoryLike
		err := tx.Where("user_id = ? AND story_id = ?", userID, storyID).First(&existing).Error
		if err == nil {
			return apperrors.NewConflict("story already liked")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewDependency("failed to check like", err)
		}

		res := tx.Model(&models.Story{}).
			Where("id = ?", storyID).
			UpdateColumn("likes_count", gorm.Expr("likes_count + ?", 1))
		if res.Error != nil {
			return apperrors.NewDependency("failed to increment likes", res.Error)
		}
		if res.RowsAffected == 0 {
			return apperrors.NewNotFound("story not found")
		}

		like := models.StoryLike{UserID: userID, StoryID: storyID}
		if err := tx.Create(&like).Error; err != nil {
			return apperrors.NewDependency("failed to create like", err)
		}
		return nil
	})
}

// Dislike removes the user's like and decrements the counter. The
// counter never goes below zero even if it drifted out of sync.
func (s *EngagementService) Dislike(userID, storyID string) error {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.StoryLike
		err := tx.Where("user_id = ? AND story_id = ?", userID, storyID).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewConflict("story not liked yet")
		}
		if err != nil {
			return apperrors.NewDependency("failed to check like", err)
		}

		res := tx.Model(&models.Story{}).
			Where("id = ? AND likes_count > 0", storyID).
			UpdateColumn("likes_count", gorm.Expr("likes_count - ?", 1))
		if res.Error != nil {
			return apperrors.NewDependency("failed to decrement likes", res.Error)
		}

		if err := tx.Delete(&existing).Error; err != nil {
			return apperrors.NewDependency("failed to remove like", err)
		}
		return nil
	})
}

// GetLikedStories returns the expanded stories the user has liked.
// Like rows whose story has since been deleted are weak references:
// they are dropped here instead of being scrubbed at story deletion.
func (s *EngagementService) GetLikedStories(userID string) ([]models.Story, error) {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		return nil, err
	}

	var likes []models.StoryLike
	if err := s.db.Where("user_id = ?", userID).Find(&likes).Error; err != nil {
		return nil, apperrors.NewDependency("failed to load likes", err)
	}

	stories := make([]models.Story, 0, len(likes))
	for _, like := range likes {
		story, err := s.storyRepo.FindByIDExpanded(like.StoryID)
		if err != nil {
			if apperrors.IsNotFound(err) {
				// dangling reference, clean it up as we go
				s.db.Delete(&models.StoryLike{}, "id = ?", like.ID)
				continue
			}
			return nil, err
		}
		stories = append(stories, *story)
	}
	return stories, nil
}
