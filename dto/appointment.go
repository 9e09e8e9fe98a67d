package dto

type AppointmentLocationPayload struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

type CoordinatesPayload struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type BookAppointmentRequest struct {
	DoctorID        string                      `json:"doctorId" binding:"required"`
	DoctorName      string                      `json:"doctorName"`
	DoctorSpecialty string                      `json:"doctorSpecialty"`
	Date            string                      `json:"date" binding:"required"`
	Time            string                      `json:"time" binding:"required"`
	AppointmentType string                      `json:"appointmentType" binding:"required"`
	Phone           string                      `json:"phone" binding:"required"`
	Notes           string                      `json:"notes"`
	Location        *AppointmentLocationPayload `json:"location"`
	Coordinates     *CoordinatesPayload         `json:"coordinates"`
}
