package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/SAI-KARTHIK999/SkinSey/dto"
	"github.com/SAI-KARTHIK999/SkinSey/model"
	"github.com/SAI-KARTHIK999/SkinSey/repository"
	"github.com/SAI-KARTHIK999/SkinSey/utils"
)

func ListAppointmentsHandler(c *gin.Context, appointments *repository.AppointmentsRepo) {
	list, err := appointments.ListByEmail(c, c.GetString("email"))
	if err != nil {
		utils.InternalError(c, "Failed to load appointments")
		return
	}
	utils.Success(c, gin.H{"appointments": list})
}

func BookAppointmentHandler(c *gin.Context, appointments *repository.AppointmentsRepo) {
	var req dto.BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid appointment details")
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		utils.BadRequest(c, "Date must be YYYY-MM-DD")
		return
	}

	appointment := &model.Appointment{
		UserEmail:       c.GetString("email"),
		DoctorID:        req.DoctorID,
		DoctorName:      req.DoctorName,
		DoctorSpecialty: req.DoctorSpecialty,
		Date:            date,
		Time:            req.Time,
		AppointmentType: req.AppointmentType,
		Phone:           req.Phone,
		Notes:           req.Notes,
		Status:          model.AppointmentPending,
	}
	if req.Location != nil {
		appointment.Location = model.AppointmentLocation{
			Address: req.Location.Address,
			City:    req.Location.City,
			State:   req.Location.State,
			ZipCode: req.Location.ZipCode,
		}
	}
	if req.Coordinates != nil {
		appointment.Location.Coordinates = &model.Coordinates{
			Latitude:  req.Coordinates.Latitude,
			Longitude: req.Coordinates.Longitude,
		}
	}

	id, err := appointments.InsertAppointment(c, appointment)
	if err != nil {
		utils.InternalError(c, "Failed to book appointment")
		return
	}
	appointment.ID = id

	utils.Created(c, appointment)
}

func DeleteAppointmentHandler(c *gin.Context, appointments *repository.AppointmentsRepo) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid appointment id")
		return
	}

	if err := appointments.DeleteAppointment(c, id, c.GetString("email")); err != nil {
		if err == repository.ErrNotFound {
			utils.NotFound(c, "Appointment not found")
			return
		}
		utils.InternalError(c, "Failed to cancel appointment")
		return
	}

	utils.Success(c, gin.H{"message": "Appointment cancelled"})
}

func ApproveAppointmentHandler(c *gin.Context, appointments *repository.AppointmentsRepo) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid appointment id")
		return
	}

	switch err := appointments.ApproveAppointment(c, id, c.GetString("email")); err {
	case nil:
		utils.Success(c, gin.H{"message": "Appointment confirmed"})
	case repository.ErrNotFound:
		utils.NotFound(c, "Appointment not found")
	case repository.ErrNoChange:
		utils.Conflict(c, "Appointment is already confirmed")
	default:
		utils.InternalError(c, "Failed to confirm appointment")
	}
}
