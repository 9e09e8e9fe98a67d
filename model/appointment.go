package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
)

type Coordinates struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
}

type AppointmentLocation struct {
	Address     string       `bson:"address" json:"address"`
	City        string       `bson:"city" json:"city"`
	State       string       `bson:"state" json:"state"`
	ZipCode     string       `bson:"zipCode" json:"zipCode"`
	Coordinates *Coordinates `bson:"coordinates,omitempty" json:"coordinates,omitempty"`
}

// Appointment is keyed by the booking user's email, matching the auth
// principal rather than the users collection.
type Appointment struct {
	ID              primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserEmail       string              `bson:"userId" json:"userId"`
	DoctorID        string              `bson:"doctorId" json:"doctorId"`
	DoctorName      string              `bson:"doctorName" json:"doctorName"`
	DoctorSpecialty string              `bson:"doctorSpecialty" json:"doctorSpecialty"`
	Date            time.Time           `bson:"date" json:"date"`
	Time            string              `bson:"time" json:"time"`
	AppointmentType string              `bson:"appointmentType" json:"appointmentType"`
	Phone           string              `bson:"phone" json:"phone"`
	Notes           string              `bson:"notes" json:"notes"`
	Location        AppointmentLocation `bson:"location" json:"location"`
	Status          AppointmentStatus   `bson:"status" json:"status"`
	CreatedAt       time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time           `bson:"updatedAt" json:"updatedAt"`
}
