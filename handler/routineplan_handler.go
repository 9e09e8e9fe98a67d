package handler

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/SAI-KARTHIK999/SkinSey/dto"
	"github.com/SAI-KARTHIK999/SkinSey/usecase"
	"github.com/SAI-KARTHIK999/SkinSey/utils"
)

func SkincareRoutineHandler(c *gin.Context, planService *usecase.RoutinePlanService) {
	var req dto.RoutinePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Skin type is required")
		return
	}

	plan, err := planService.GeneratePlan(c, &req)
	if err != nil {
		log.Printf("routine plan generation failed: %v", err)
		utils.ServiceUnavailable(c, "Routine generation is temporarily unavailable")
		return
	}

	utils.Success(c, plan)
}
