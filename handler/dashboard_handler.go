package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/SAI-KARTHIK999/SkinSey/repository"
	"github.com/SAI-KARTHIK999/SkinSey/usecase"
	"github.com/SAI-KARTHIK999/SkinSey/utils"
)

func DashboardHandler(c *gin.Context, dashboardService *usecase.DashboardService, users *repository.UserRepo) {
	user := currentUser(c, users)
	if user == nil {
		return
	}

	dashboard, err := dashboardService.BuildDashboard(c, user)
	if err != nil {
		utils.InternalError(c, "Failed to build dashboard")
		return
	}
	utils.Success(c, dashboard)
}

func ProgressHandler(c *gin.Context, dashboardService *usecase.DashboardService, users *repository.UserRepo) {
	user := currentUser(c, users)
	if user == nil {
		return
	}

	report, err := dashboardService.BuildProgress(c, user)
	if err != nil {
		utils.InternalError(c, "Failed to build progress report")
		return
	}
	utils.Success(c, report)
}

func ProfileHandler(c *gin.Context, dashboardService *usecase.DashboardService, users *repository.UserRepo) {
	user := currentUser(c, users)
	if user == nil {
		return
	}

	profile, err := dashboardService.BuildProfile(c, user)
	if err != nil {
		utils.InternalError(c, "Failed to build profile")
		return
	}
	utils.Success(c, profile)
}
