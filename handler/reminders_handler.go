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

func ListRemindersHandler(c *gin.Context, reminders *repository.RemindersRepo, users *repository.UserRepo) {
	user := currentUser(c, users)
	if user == nil {
		return
	}

	list, err := reminders.ListByUser(c, user.ID)
	if err != nil {
		utils.InternalError(c, "Failed to load reminders")
		return
	}
	utils.Success(c, gin.H{"reminders": list})
}

func CreateReminderHandler(c *gin.Context, reminders *repository.RemindersRepo, users *repository.UserRepo) {
	user := currentUser(c, users)
	if user == nil {
		return
	}

	var req dto.ReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Title, due date and type are required")
		return
	}

	dueDate, err := time.Parse(time.RFC3339, req.DueDate)
	if err != nil {
		utils.BadRequest(c, "Due date must be RFC 3339")
		return
	}

	reminder := &model.Reminder{
		UserID:      user.ID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     dueDate.UTC(),
		Type:        req.Type,
		Frequency:   req.Frequency,
	}

	id, err := reminders.InsertReminder(c, reminder)
	if err != nil {
		utils.InternalError(c, "Failed to create reminder")
		return
	}
	reminder.ID = id

	utils.Created(c, reminder)
}

func UpdateReminderHandler(c *gin.Context, reminders *repository.RemindersRepo, users *repository.UserRepo) {
	user := currentUser(c, users)
	if user == nil {
		return
	}

	var req dto.ReminderUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid reminder update")
		return
	}

	fields := bson.M{}
	if req.Completed != nil {
		fields["completed"] = *req.Completed
	}
	if req.Title != "" {
		fields["title"] = req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Type != "" {
		fields["type"] = req.Type
	}
	if req.DueDate != "" {
		dueDate, err := time.Parse(time.RFC3339, req.DueDate)
		if err != nil {
			utils.BadRequest(c, "Due date must be RFC 3339")
			return
		}
		fields["dueDate"] = dueDate.UTC()
	}
	if len(fields) == 0 {
		utils.BadRequest(c, "Nothing to update")
		return
	}

	reminderID, _ := primitive.ObjectIDFromHex(req.ReminderID)
	if err := reminders.UpdateReminder(c, reminderID, user.ID, fields); err != nil {
		if err == repository.ErrNotFound {
			utils.NotFound(c, "Reminder not found")
			return
		}
		utils.InternalError(c, "Failed to update reminder")
		return
	}

	utils.Success(c, gin.H{"message": "Reminder updated"})
}

func DeleteReminderHandler(c *gin.Context, reminders *repository.RemindersRepo, users *repository.UserRepo) {
	user := currentUser(c, users)
	if user == nil {
		return
	}

	reminderID, err := primitive.ObjectIDFromHex(c.Query("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid reminder id")
		return
	}

	if err := reminders.DeleteReminder(c, reminderID, user.ID); err != nil {
		if err == repository.ErrNotFound {
			utils.NotFound(c, "Reminder not found")
			return
		}
		utils.InternalError(c, "Failed to delete reminder")
		return
	}

	utils.Success(c, gin.H{"message": "Reminder deleted"})
}
