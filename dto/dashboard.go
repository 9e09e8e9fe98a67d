package dto

import "github.com/SAI-KARTHIK999/SkinSey/model"

type MedicationLogRequest struct {
	MedicationName string `json:"medicationName" binding:"required"`
	Dosage         string `json:"dosage" binding:"required"`
	Time           string `json:"time" binding:"required"`
	Notes          string `json:"notes"`
	Date           string `json:"date"`
}

type MedicationLogUpdateRequest struct {
	LogID          string  `json:"logId" binding:"required,objectid"`
	MedicationName string  `json:"medicationName"`
	Dosage         string  `json:"dosage"`
	Time           string  `json:"time"`
	Notes          *string `json:"notes"`
}

type ReminderRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate" binding:"required"`
	Type        string `json:"type" binding:"required"`
	Frequency   string `json:"frequency"`
}

type ReminderUpdateRequest struct {
	ReminderID  string  `json:"reminderId" binding:"required,objectid"`
	Completed   *bool   `json:"completed"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	DueDate     string  `json:"dueDate"`
	Type        string  `json:"type"`
}

type DashboardActivity struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Timestamp   string `json:"timestamp"`
	Score       int    `json:"score"`
	Condition   string `json:"condition"`
}

type DashboardMetrics struct {
	SkinHealthScore       int `json:"skinHealthScore"`
	WeeklyProgress        int `json:"weeklyProgress"`
	TotalAnalyses         int `json:"totalAnalyses"`
	RoutineCompletionRate int `json:"routineCompletionRate"`
	UpcomingAppointments  int `json:"upcomingAppointments"`
}

type DashboardResponse struct {
	User           DashboardUser         `json:"user"`
	Metrics        DashboardMetrics      `json:"metrics"`
	RecentActivity []DashboardActivity   `json:"recentActivity"`
	Appointments   []model.Appointment   `json:"appointments"`
	Reminders      []model.Reminder      `json:"reminders"`
	WeeklyProgress []WeeklyProgressPoint `json:"weeklyProgress"`
}

type DashboardUser struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

type WeeklyProgressPoint struct {
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
	Score     int    `json:"score"`
}

type ProfileStats struct {
	RoutineProgress int `json:"routineProgress"`
	RecentSkinScore int `json:"recentSkinScore"`
	TotalAnalyses   int `json:"totalAnalyses"`
	TotalRoutines   int `json:"totalRoutines"`
}

type RecentAnalysis struct {
	ID        string `json:"id"`
	Score     int    `json:"score"`
	Condition string `json:"condition"`
	Date      string `json:"date"`
}

type ProfileResponse struct {
	User           ProfileUser       `json:"user"`
	Profile        model.SkinProfile `json:"profile"`
	Stats          ProfileStats      `json:"stats"`
	RecentAnalyses []RecentAnalysis  `json:"recentAnalyses"`
}

type ProfileUser struct {
	Name                string `json:"name"`
	Email               string `json:"email"`
	Image               string `json:"image"`
	OnboardingCompleted bool   `json:"onboardingCompleted"`
	CreatedAt           string `json:"createdAt"`
	UpdatedAt           string `json:"updatedAt"`
}
