package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/SAI-KARTHIK999/SkinSey/dto"
	"github.com/SAI-KARTHIK999/SkinSey/model"
	"github.com/SAI-KARTHIK999/SkinSey/repository"
	"github.com/SAI-KARTHIK999/SkinSey/usecase"
	"github.com/SAI-KARTHIK999/SkinSey/utils"
)

const routineHistoryDays = 30

func GetRoutinesHandler(c *gin.Context, routines *repository.RoutinesRepo, users *repository.UserRepo) {
	user := currentUser(c, users)
	if user == nil {
		return
	}

	since := time.Now().UTC().AddDate(0, 0, -(routineHistoryDays - 1)).Truncate(24 * time.Hour)
	completions, err := routines.GetCompletionsSince(c, user.ID, since, false)
	if err != nil {
		utils.InternalError(c, "Failed to load routines")
		return
	}

	utils.Success(c, gin.H{"routines": completions})
}

func SaveRoutineCompletionHandler(c *gin.Context, routines *repository.RoutinesRepo, users *repository.UserRepo) {
	user := currentUser(c, users)
	if user == nil {
		return
	}

	var req dto.RoutineCompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid routine details")
		return
	}

	day, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		utils.BadRequest(c, "Date must be YYYY-MM-DD")
		return
	}
	if req.Score < 0 || req.Score > 100 {
		utils.BadRequest(c, "Score must be between 0 and 100")
		return
	}

	completion := &model.RoutineCompletion{
		UserID:       user.ID,
		Date:         day.UTC(),
		MorningSteps: req.MorningSteps,
		EveningSteps: req.EveningSteps,
		Score:        req.Score,
		Completed:    req.Completed,
	}

	if err := routines.UpsertCompletion(c, completion); err != nil {
		utils.InternalError(c, "Failed to save routine")
		return
	}

	utils.Success(c, gin.H{"message": "Routine saved", "date": req.Date})
}

func UpdateRoutineCompletionHandler(c *gin.Context, routines *repository.RoutinesRepo, users *repository.UserRepo) {
	user := currentUser(c, users)
	if user == nil {
		return
	}

	var req dto.RoutineCompletionUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid routine update")
		return
	}

	fields := bson.M{}
	if req.MorningSteps != nil {
		fields["morningSteps"] = *req.MorningSteps
	}
	if req.EveningSteps != nil {
		fields["eveningSteps"] = *req.EveningSteps
	}
	if req.Score != nil {
		if *req.Score < 0 || *req.Score > 100 {
			utils.BadRequest(c, "Score must be between 0 and 100")
			return
		}
		fields["score"] = *req.Score
	}
	if req.Completed != nil {
		fields["completed"] = *req.Completed
	}
	if len(fields) == 0 {
		utils.BadRequest(c, "Nothing to update")
		return
	}

	completionID, _ := primitive.ObjectIDFromHex(req.CompletionID)
	if err := routines.UpdateCompletion(c, completionID, user.ID, fields); err != nil {
		if err == repository.ErrNotFound {
			utils.NotFound(c, "Routine record not found")
			return
		}
		utils.InternalError(c, "Failed to update routine")
		return
	}

	utils.Success(c, gin.H{"message": "Routine updated"})
}

// GetRoutineTemplateHandler falls back to the default step list when the
// user has not configured a template.
func GetRoutineTemplateHandler(c *gin.Context, routines *repository.RoutinesRepo, users *repository.UserRepo) {
	user := currentUser(c, users)
	if user == nil {
		return
	}

	template, err := routines.GetTemplate(c, user.ID)
	if err != nil {
		utils.InternalError(c, "Failed to load routine template")
		return
	}
	if template == nil {
		template = model.DefaultRoutineTemplate()
		template.UserID = user.ID
	}

	utils.Success(c, template)
}

func SaveRoutineTemplateHandler(c *gin.Context, routines *repository.RoutinesRepo, users *repository.UserRepo) {
	user := currentUser(c, users)
	if user == nil {
		return
	}

	var req dto.RoutineTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Morning and evening step lists are required")
		return
	}

	if err := routines.UpsertTemplate(c, user.ID, req.Morning, req.Evening, req.Note); err != nil {
		utils.InternalError(c, "Failed to save routine template")
		return
	}

	utils.Success(c, gin.H{"message": "Routine template saved"})
}

// RoutineStreakHandler exposes the streak counters on their own for widget
// use.
func RoutineStreakHandler(c *gin.Context, routines *repository.RoutinesRepo, users *repository.UserRepo) {
	user := currentUser(c, users)
	if user == nil {
		return
	}

	since := time.Now().UTC().AddDate(0, 0, -(routineHistoryDays - 1)).Truncate(24 * time.Hour)
	completions, err := routines.GetCompletionsSince(c, user.ID, since, true)
	if err != nil {
		utils.InternalError(c, "Failed to load routines")
		return
	}

	points := usecase.BuildDailyProgress(time.Now().UTC(), nil, completions, nil)
	utils.Success(c, usecase.ComputeStreak(points))
}
