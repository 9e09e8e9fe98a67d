package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/SAI-KARTHIK999/SkinSey/dto"
	"github.com/SAI-KARTHIK999/SkinSey/model"
	"github.com/SAI-KARTHIK999/SkinSey/repository"
)

const (
	dashboardActivityLimit     = 10
	dashboardAppointmentsLimit = 3
	dashboardWeekDays          = 7
	profileRecentAnalyses      = 3
)

// DashboardService aggregates per-user state across collections for the
// dashboard, profile and progress views.
type DashboardService struct {
	Analyses     *repository.AnalysesRepo
	Routines     *repository.RoutinesRepo
	Appointments *repository.AppointmentsRepo
	Reminders    *repository.RemindersRepo
	Medications  *repository.MedicationsRepo
}

func NewDashboardService(
	analyses *repository.AnalysesRepo,
	routines *repository.RoutinesRepo,
	appointments *repository.AppointmentsRepo,
	reminders *repository.RemindersRepo,
	medications *repository.MedicationsRepo,
) *DashboardService {
	return &DashboardService{
		Analyses:     analyses,
		Routines:     routines,
		Appointments: appointments,
		Reminders:    reminders,
		Medications:  medications,
	}
}

// BuildDashboard assembles the landing view: headline metrics, a merged
// activity feed, upcoming appointments, pending reminders and the last
// week's routine record.
func (s *DashboardService) BuildDashboard(ctx context.Context, user *model.User) (*dto.DashboardResponse, error) {
	analyses, err := s.Analyses.GetRecentAnalyses(ctx, user.ID, 0)
	if err != nil {
		return nil, err
	}

	weekStart := time.Now().UTC().AddDate(0, 0, -(dashboardWeekDays - 1)).Truncate(24 * time.Hour)
	completions, err := s.Routines.GetCompletionsSince(ctx, user.ID, weekStart, true)
	if err != nil {
		return nil, err
	}

	appointments, err := s.Appointments.ListUpcoming(ctx, user.Email, dashboardAppointmentsLimit)
	if err != nil {
		return nil, err
	}

	reminders, err := s.Reminders.ListPending(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	resp := &dto.DashboardResponse{
		User: dto.DashboardUser{
			Name:  user.Name,
			Email: user.Email,
		},
		Metrics:        buildMetrics(analyses, completions, len(appointments)),
		RecentActivity: buildActivityFeed(analyses, completions),
		Appointments:   derefAppointments(appointments),
		Reminders:      derefReminders(reminders),
		WeeklyProgress: buildWeeklyProgress(completions),
	}
	return resp, nil
}

// BuildProfile assembles the profile view with lifetime stats.
func (s *DashboardService) BuildProfile(ctx context.Context, user *model.User) (*dto.ProfileResponse, error) {
	analyses, err := s.Analyses.GetRecentAnalyses(ctx, user.ID, 0)
	if err != nil {
		return nil, err
	}

	weekStart := time.Now().UTC().AddDate(0, 0, -(dashboardWeekDays - 1)).Truncate(24 * time.Hour)
	completions, err := s.Routines.GetCompletionsSince(ctx, user.ID, weekStart, true)
	if err != nil {
		return nil, err
	}

	resp := &dto.ProfileResponse{
		User: dto.ProfileUser{
			Name:                user.Name,
			Email:               user.Email,
			OnboardingCompleted: user.OnboardingCompleted,
			CreatedAt:           user.CreatedAt.UTC().Format(time.RFC3339),
			UpdatedAt:           user.UpdatedAt.UTC().Format(time.RFC3339),
		},
		Stats: dto.ProfileStats{
			RoutineProgress: completionRate(completions),
			TotalAnalyses:   len(analyses),
			TotalRoutines:   countCompleted(completions),
		},
		RecentAnalyses: []dto.RecentAnalysis{},
	}
	if user.Profile != nil {
		resp.Profile = *user.Profile
	}
	if len(analyses) > 0 {
		resp.Stats.RecentSkinScore = analyses[0].Score
	}

	for i, analysis := range analyses {
		if i == profileRecentAnalyses {
			break
		}
		entry := dto.RecentAnalysis{
			ID:    analysis.ID.Hex(),
			Score: analysis.Score,
			Date:  analysis.CreatedAt.UTC().Format(time.RFC3339),
		}
		if len(analysis.Conditions) > 0 {
			entry.Condition = analysis.Conditions[0].Name
		}
		resp.RecentAnalyses = append(resp.RecentAnalyses, entry)
	}
	return resp, nil
}

// BuildProgress assembles the 30-day progress report.
func (s *DashboardService) BuildProgress(ctx context.Context, user *model.User) (*model.ProgressReport, error) {
	now := time.Now().UTC()
	windowStart := now.AddDate(0, 0, -(progressWindowDays - 1)).Truncate(24 * time.Hour)

	analyses, err := s.Analyses.GetAnalysesSince(ctx, user.ID, windowStart)
	if err != nil {
		return nil, err
	}
	completions, err := s.Routines.GetCompletionsSince(ctx, user.ID, windowStart, true)
	if err != nil {
		return nil, err
	}
	logs, err := s.Medications.GetLogsSince(ctx, user.ID, windowStart, true)
	if err != nil {
		return nil, err
	}

	points := BuildDailyProgress(now, analyses, completions, logs)
	return BuildProgressReport(points, analyses, completions, logs), nil
}

func buildMetrics(analyses []*model.SkinAnalysis, completions []*model.RoutineCompletion, upcoming int) dto.DashboardMetrics {
	metrics := dto.DashboardMetrics{
		TotalAnalyses:         len(analyses),
		RoutineCompletionRate: completionRate(completions),
		UpcomingAppointments:  upcoming,
	}
	if len(analyses) > 0 {
		metrics.SkinHealthScore = analyses[0].Score
	}

	scored := 0
	for _, c := range completions {
		if c.Completed {
			metrics.WeeklyProgress += c.Score
			scored++
		}
	}
	if scored > 0 {
		metrics.WeeklyProgress /= scored
	}
	return metrics
}

// buildActivityFeed interleaves analyses and routine completions into one
// reverse-chronological feed.
func buildActivityFeed(analyses []*model.SkinAnalysis, completions []*model.RoutineCompletion) []dto.DashboardActivity {
	feed := make([]dto.DashboardActivity, 0, len(analyses)+len(completions))

	for _, analysis := range analyses {
		entry := dto.DashboardActivity{
			ID:        analysis.ID.Hex(),
			Type:      "analysis",
			Title:     "Skin analysis completed",
			Timestamp: analysis.CreatedAt.UTC().Format(time.RFC3339),
			Score:     analysis.Score,
		}
		if len(analysis.Conditions) > 0 {
			entry.Condition = analysis.Conditions[0].Name
			entry.Description = "Detected: " + analysis.Conditions[0].Name
		}
		feed = append(feed, entry)
	}

	for _, completion := range completions {
		if !completion.Completed {
			continue
		}
		feed = append(feed, dto.DashboardActivity{
			ID:          completion.ID.Hex(),
			Type:        "routine",
			Title:       "Routine completed",
			Description: "Daily skincare routine checked off",
			Timestamp:   completion.Date.UTC().Format(time.RFC3339),
			Score:       completion.Score,
		})
	}

	sort.Slice(feed, func(i, j int) bool {
		return feed[i].Timestamp > feed[j].Timestamp
	})
	if len(feed) > dashboardActivityLimit {
		feed = feed[:dashboardActivityLimit]
	}
	return feed
}

// buildWeeklyProgress maps the trailing seven days onto completion records.
func buildWeeklyProgress(completions []*model.RoutineCompletion) []dto.WeeklyProgressPoint {
	byDay := make(map[string]*model.RoutineCompletion, len(completions))
	for _, c := range completions {
		byDay[DayKey(c.Date)] = c
	}

	points := make([]dto.WeeklyProgressPoint, 0, dashboardWeekDays)
	start := time.Now().UTC().AddDate(0, 0, -(dashboardWeekDays - 1))
	for i := 0; i < dashboardWeekDays; i++ {
		key := DayKey(start.AddDate(0, 0, i))
		point := dto.WeeklyProgressPoint{Date: key}
		if c, ok := byDay[key]; ok {
			point.Completed = c.Completed
			point.Score = c.Score
		}
		points = append(points, point)
	}
	return points
}

func completionRate(completions []*model.RoutineCompletion) int {
	if len(completions) == 0 {
		return 0
	}
	return countCompleted(completions) * 100 / dashboardWeekDays
}

func countCompleted(completions []*model.RoutineCompletion) int {
	count := 0
	for _, c := range completions {
		if c.Completed {
			count++
		}
	}
	return count
}

func derefAppointments(in []*model.Appointment) []model.Appointment {
	out := make([]model.Appointment, 0, len(in))
	for _, a := range in {
		out = append(out, *a)
	}
	return out
}

func derefReminders(in []*model.Reminder) []model.Reminder {
	out := make([]model.Reminder, 0, len(in))
	for _, r := range in {
		out = append(out, *r)
	}
	return out
}
