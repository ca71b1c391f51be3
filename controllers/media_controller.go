// File: /controllers/media_controller.go
package controllers

import (
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tripjournal-api/repositories"
	"tripjournal-api/services"
	"tripjournal-api/utils"
)

type MediaController struct {
	locationRepo *repositories.LocationRepository
	storyRepo    *repositories.StoryRepository
	mediaService *services.MediaService
}

func NewMediaController(locationRepo *repositories.LocationRepository, storyRepo *repositories.StoryRepository, mediaService *services.MediaService) *MediaController {
	return &MediaController{
		locationRepo: locationRepo,
		storyRepo:    storyRepo,
		mediaService: mediaService,
	}
}

// UploadLocationMedia stores a blob and appends its key to the
// location's photo or video list.
func (mc *MediaController) UploadLocationMedia(c *gin.Context) {
	userID := c.GetString("user_id")
	locationID := c.Param("id")

	kind := c.DefaultQuery("kind", "photo")
	if !utils.IsValidMediaKind(kind) {
		utils.SendValidationError(c, "kind must be photo or video")
		return
	}

	location, err := mc.locationRepo.FindByID(locationID)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	story, err := mc.storyRepo.FindByID(location.StoryID)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}
	if story.UserID != userID {
		utils.SendError(c, http.StatusForbidden, "You can only upload media to your own stories")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.SendValidationError(c, "file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to read uploaded file")
		return
	}
	defer file.Close()

	key := uuid.New().String() + filepath.Ext(fileHeader.Filename)
	contentType := fileHeader.Header.Get("Content-Type")

	if err := mc.mediaService.Upload(c.Request.Context(), key, file, fileHeader.Size, contentType); err != nil {
		utils.SendAppError(c, err)
		return
	}

	var patch map[string]interface{}
	if kind == "photo" {
		patch = map[string]interface{}{"photos": append(location.Photos, key)}
	} else {
		patch = map[string]interface{}{"videos": append(location.Videos, key)}
	}

	updated, err := mc.locationRepo.UpdateByID(locationID, patch)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Media uploaded successfully",
		"key":      key,
		"location": updated,
	})
}

// GetMediaURL returns a temporary download URL for a media key
func (mc *MediaController) GetMediaURL(c *gin.Context) {
	key := c.Param("key")
	if key == "" {
		utils.SendValidationError(c, "media key is required")
		return
	}

	url, err := mc.mediaService.PresignedURL(c.Request.Context(), key, 15*time.Minute)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"key": key,
		"url": url,
	})
}
