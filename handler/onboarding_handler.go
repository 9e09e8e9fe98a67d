package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/SAI-KARTHIK999/SkinSey/dto"
	"github.com/SAI-KARTHIK999/SkinSey/model"
	"github.com/SAI-KARTHIK999/SkinSey/repository"
	"github.com/SAI-KARTHIK999/SkinSey/utils"
)

func SaveOnboardingHandler(c *gin.Context, users *repository.UserRepo) {
	var req dto.OnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid onboarding details")
		return
	}

	profile := &model.SkinProfile{
		SkinType:    req.SkinType,
		Concerns:    req.Concerns,
		Sensitivity: req.Sensitivity,
		Location:    req.Location,
		Routine:     req.Routine,
	}

	if err := users.SaveOnboarding(c, c.GetString("email"), profile); err != nil {
		if err == repository.ErrNotFound {
			utils.Unauthorized(c, "Account not found")
			return
		}
		utils.InternalError(c, "Failed to save onboarding")
		return
	}

	utils.Success(c, gin.H{
		"onboardingCompleted": true,
		"profile":             profile,
	})
}

func GetOnboardingHandler(c *gin.Context, users *repository.UserRepo) {
	user := currentUser(c, users)
	if user == nil {
		return
	}

	utils.Success(c, gin.H{
		"onboardingCompleted": user.OnboardingCompleted,
		"profile":             user.Profile,
	})
}
