// File: /controllers/user_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripjournal-api/models"
	"tripjournal-api/repositories"
	"tripjournal-api/utils"
)

type UserController struct {
	userRepo *repositories.UserRepository
}

func NewUserController(userRepo *repositories.UserRepository) *UserController {
	return &UserController{userRepo: userRepo}
}

func (uc *UserController) GetProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	user, err := uc.userRepo.FindByID(userID)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	user.Password = ""
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (uc *UserController) UpdateProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	patch := map[string]interface{}{}
	if req.FirstName != nil {
		patch["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		patch["last_name"] = *req.LastName
	}
	if req.Avatar != nil {
		patch["avatar"] = *req.Avatar
	}

	if len(patch) == 0 {
		utils.SendValidationError(c, "nothing to update")
		return
	}

	user, err := uc.userRepo.UpdateByID(userID, patch)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	user.Password = ""
	utils.SendSuccess(c, "Profile updated successfully", user)
}
