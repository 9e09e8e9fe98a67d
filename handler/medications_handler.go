package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/SAI-KARTHIK999/SkinSey/dto"
	"github.com/SAI-KARTHIK999/SkinSey/model"
	"github.com/SAI-KARTHIK999/SkinSey/repository"
	"github.com/SAI-KARTHIK999/SkinSey/utils"
)

const medicationHistoryDays = 30

func ListMedicationsHandler(c *gin.Context, medications *repository.MedicationsRepo, users *repository.UserRepo) {
	user := currentUser(c, users)
	if user == nil {
		return
	}

	since := time.Now().UTC().AddDate(0, 0, -(medicationHistoryDays - 1)).Truncate(24 * time.Hour)
	logs, err := medications.GetLogsSince(c, user.ID, since, false)
	if err != nil {
		utils.InternalError(c, "Failed to load medication logs")
		return
	}

	schedules, err := medications.GetSchedules(c, user.ID)
	if err != nil {
		utils.InternalError(c, "Failed to load medication schedules")
		return
	}

	utils.Success(c, gin.H{"logs": logs, "schedules": schedules})
}

func LogMedicationHandler(c *gin.Context, medications *repository.MedicationsRepo, users *repository.UserRepo) {
	user := currentUser(c, users)
	if user == nil {
		return
	}

	var req dto.MedicationLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Medication name, dosage and time are required")
		return
	}

	date := time.Now().UTC()
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			utils.BadRequest(c, "Date must be YYYY-MM-DD")
			return
		}
		date = parsed.UTC()
	}

	entry := &model.MedicationLog{
		UserID:         user.ID,
		MedicationName: req.MedicationName,
		Dosage:         req.Dosage,
		Time:           req.Time,
		Notes:          req.Notes,
		Date:           date,
	}

	id, err := medications.InsertLog(c, entry)
	if err != nil {
		utils.InternalError(c, "Failed to log medication")
		return
	}
	entry.ID = id

	utils.Created(c, entry)
}

func UpdateMedicationHandler(c *gin.Context, medications *repository.MedicationsRepo, users *repository.UserRepo) {
	user := currentUser(c, users)
	if user == nil {
		return
	}

	var req dto.MedicationLogUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid medication update")
		return
	}

	fields := bson.M{}
	if req.MedicationName != "" {
		fields["medicationName"] = req.MedicationName
	}
	if req.Dosage != "" {
		fields["dosage"] = req.Dosage
	}
	if req.Time != "" {
		fields["time"] = req.Time
	}
	if req.Notes != nil {
		fields["notes"] = *req.Notes
	}
	if len(fields) == 0 {
		utils.BadRequest(c, "Nothing to update")
		return
	}

	logID, _ := primitive.ObjectIDFromHex(req.LogID)
	if err := medications.UpdateLog(c, logID, user.ID, fields); err != nil {
		if err == repository.ErrNotFound {
			utils.NotFound(c, "Medication log not found")
			return
		}
		utils.InternalError(c, "Failed to update medication log")
		return
	}

	utils.Success(c, gin.H{"message": "Medication log updated"})
}

func DeleteMedicationHandler(c *gin.Context, medications *repository.MedicationsRepo, users *repository.UserRepo) {
	user := currentUser(c, users)
	if user == nil {
		return
	}

	logID, err := primitive.ObjectIDFromHex(c.Query("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid medication log id")
		return
	}

	if err := medications.DeleteLog(c, logID, user.ID); err != nil {
		if err == repository.ErrNotFound {
			utils.NotFound(c, "Medication log not found")
			return
		}
		utils.InternalError(c, "Failed to delete medication log")
		return
	}

	utils.Success(c, gin.H{"message": "Medication log deleted"})
}
