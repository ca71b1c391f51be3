// File: /controllers/story_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripjournal-api/models"
	"tripjournal-api/services"
	"tripjournal-api/utils"
)

type StoryController struct {
	storyService      *services.StoryService
	engagementService *services.EngagementService
}

func NewStoryController(storyService *services.StoryService, engagementService *services.EngagementService) *StoryController {
	return &StoryController{
		storyService:      storyService,
		engagementService: engagementService,
	}
}

// GetStories returns the caller's stories
func (sc *StoryController) GetStories(c *gin.Context) {
	userID := c.GetString("user_id")

	stories, err := sc.storyService.GetByUser(userID)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.StoriesResponse{
		Count:   len(stories),
		Stories: stories,
	})
}

func (sc *StoryController) GetStory(c *gin.Context) {
	story, err := sc.storyService.GetByID(c.Param("id"))
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.StoryResponse{Story: *story})
}

func (sc *StoryController) CreateStory(c *gin.Context) {
	userID := c.GetString("user_id")

	var req models.CreateStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	story, err := sc.storyService.Create(userID, req)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.StoryResponse{
		Message: "Story created successfully",
		Story:   *story,
	})
}

func (sc *StoryController) UpdateStory(c *gin.Context) {
	userID := c.GetString("user_id")
	storyID := c.Param("id")

	existing, err := sc.storyService.GetByID(storyID)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}
	if existing.UserID != userID {
		utils.SendError(c, http.StatusForbidden, "You can only update your own stories")
		return
	}

	var req models.UpdateStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	story, err := sc.storyService.Update(storyID, req)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.StoryResponse{
		Message: "Story updated successfully",
		Story:   *story,
	})
}

func (sc *StoryController) DeleteStory(c *gin.Context) {
	userID := c.GetString("user_id")
	storyID := c.Param("id")

	existing, err := sc.storyService.GetByID(storyID)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}
	if existing.UserID != userID {
		utils.SendError(c, http.StatusForbidden, "You can only delete your own stories")
		return
	}

	if err := sc.storyService.Delete(storyID); err != nil {
		utils.SendAppError(c, err)
		return
	}

	utils.SendSuccess(c, "Story deleted successfully", nil)
}

func (sc *StoryController) LikeStory(c *gin.Context) {
	userID := c.GetString("user_id")
	storyID := c.Param("id")

	if err := sc.engagementService.Like(userID, storyID); err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Story liked successfully",
		"is_liked": true,
	})
}

func (sc *StoryController) DislikeStory(c *gin.Context) {
	userID := c.GetString("user_id")
	storyID := c.Param("id")

	if err := sc.engagementService.Dislike(userID, storyID); err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Story unliked successfully",
		"is_liked": false,
	})
}

func (sc *StoryController) GetLikedStories(c *gin.Context) {
	userID := c.GetString("user_id")

	stories, err := sc.engagementService.GetLikedStories(userID)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.StoriesResponse{
		Count:   len(stories),
		Stories: stories,
	})
}
