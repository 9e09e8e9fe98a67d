package usecase

import (
	"testing"
	"time"

	"github.com/SAI-KARTHIK999/SkinSey/model"
)

func activeDay(completed bool) model.DailyProgressPoint {
	point := model.DailyProgressPoint{TotalActivities: 1, RoutineCompleted: completed}
	if completed {
		point.TotalActivities = 2
	}
	return point
}

func idleDay() model.DailyProgressPoint {
	return model.DailyProgressPoint{}
}

func TestComputeStreak(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		streak := ComputeStreak(nil)
		if streak.Current != 0 || streak.Max != 0 {
			t.Errorf("streak = %+v, want {0 0}", streak)
		}
	})

	t.Run("five active days then idle resets current", func(t *testing.T) {
		points := []model.DailyProgressPoint{
			activeDay(true), activeDay(true), activeDay(true),
			activeDay(true), activeDay(true), idleDay(),
		}
		streak := ComputeStreak(points)
		if streak.Current != 0 {
			t.Errorf("current = %d, want 0 after idle day", streak.Current)
		}
		if streak.Max != 5 {
			t.Errorf("max = %d, want 5", streak.Max)
		}
	})

	t.Run("active but incomplete days hold current without advancing it", func(t *testing.T) {
		points := []model.DailyProgressPoint{
			activeDay(true), activeDay(true),
			activeDay(false), // active day, routine skipped
			activeDay(true),
		}
		streak := ComputeStreak(points)
		// Current survives the skipped day and keeps counting completions.
		if streak.Current != 3 {
			t.Errorf("current = %d, want 3", streak.Current)
		}
		if streak.Max != 4 {
			t.Errorf("max = %d, want 4", streak.Max)
		}
	})

	t.Run("max survives later resets", func(t *testing.T) {
		points := []model.DailyProgressPoint{
			activeDay(true), activeDay(true), activeDay(true),
			idleDay(),
			activeDay(true),
		}
		streak := ComputeStreak(points)
		if streak.Current != 1 {
			t.Errorf("current = %d, want 1", streak.Current)
		}
		if streak.Max != 3 {
			t.Errorf("max = %d, want 3", streak.Max)
		}
	})
}

func TestBuildDailyProgress(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	t.Run("empty window", func(t *testing.T) {
		points := BuildDailyProgress(now, nil, nil, nil)
		if len(points) != progressWindowDays {
			t.Fatalf("expected %d points, got %d", progressWindowDays, len(points))
		}
		for _, p := range points {
			if p.SkinScore != nil || p.TotalActivities != 0 {
				t.Errorf("expected empty day, got %+v", p)
			}
		}
		if points[len(points)-1].Date != "2026-08-28" {
			t.Errorf("last day = %s, want 2026-08-28", points[len(points)-1].Date)
		}
	})

	t.Run("scores averaged per day, gaps stay nil", func(t *testing.T) {
		yesterday := now.AddDate(0, 0, -1)
		analyses := []*model.SkinAnalysis{
			{Score: 60, CreatedAt: yesterday},
			{Score: 80, CreatedAt: yesterday},
		}
		completions := []*model.RoutineCompletion{
			{Date: yesterday, Completed: true, Score: 90},
		}
		logs := []*model.MedicationLog{
			{Date: yesterday},
			{Date: yesterday},
		}

		points := BuildDailyProgress(now, analyses, completions, logs)
		day := points[len(points)-2]

		if day.SkinScore == nil || *day.SkinScore != 70 {
			t.Fatalf("skinScore = %v, want 70", day.SkinScore)
		}
		if !day.RoutineCompleted {
			t.Error("routineCompleted = false, want true")
		}
		if day.MedicationsTaken != 2 {
			t.Errorf("medicationsTaken = %d, want 2", day.MedicationsTaken)
		}
		// 2 analyses + 1 routine + 2 medications
		if day.TotalActivities != 5 {
			t.Errorf("totalActivities = %d, want 5", day.TotalActivities)
		}

		today := points[len(points)-1]
		if today.SkinScore != nil {
			t.Errorf("today's skinScore = %v, want nil", today.SkinScore)
		}
	})

	t.Run("incomplete routine record still counts as activity", func(t *testing.T) {
		completions := []*model.RoutineCompletion{
			{Date: now, Completed: false},
		}
		points := BuildDailyProgress(now, nil, completions, nil)
		day := points[len(points)-1]

		if day.RoutineCompleted {
			t.Error("routineCompleted = true, want false")
		}
		if day.TotalActivities != 1 {
			t.Errorf("totalActivities = %d, want 1", day.TotalActivities)
		}
		// The day registers as active, so it must not reset the streak.
		streak := ComputeStreak(points)
		if streak.Max != 1 {
			t.Errorf("max streak = %d, want 1", streak.Max)
		}
	})
}

func TestBuildProgressReport(t *testing.T) {
	score := func(v float64) *float64 { return &v }

	t.Run("improving trend over last scored week", func(t *testing.T) {
		points := []model.DailyProgressPoint{
			{SkinScore: score(50), TotalActivities: 1},
			{SkinScore: score(55), TotalActivities: 1},
			{SkinScore: score(62), TotalActivities: 1},
		}
		report := BuildProgressReport(points, nil, nil, nil)
		if report.Trends.OverallTrend != "improving" {
			t.Errorf("trend = %s, want improving", report.Trends.OverallTrend)
		}
		if report.Trends.TrendValue != 12 {
			t.Errorf("trendValue = %v, want 12", report.Trends.TrendValue)
		}
	})

	t.Run("any positive delta reads improving", func(t *testing.T) {
		points := []model.DailyProgressPoint{
			{SkinScore: score(50), TotalActivities: 1},
			{SkinScore: score(53), TotalActivities: 1},
		}
		report := BuildProgressReport(points, nil, nil, nil)
		if report.Trends.OverallTrend != "improving" {
			t.Errorf("trend = %s, want improving for +3 delta", report.Trends.OverallTrend)
		}
		if report.Trends.TrendValue != 3 {
			t.Errorf("trendValue = %v, want 3", report.Trends.TrendValue)
		}
	})

	t.Run("any negative delta reads declining", func(t *testing.T) {
		points := []model.DailyProgressPoint{
			{SkinScore: score(53), TotalActivities: 1},
			{SkinScore: score(52), TotalActivities: 1},
		}
		report := BuildProgressReport(points, nil, nil, nil)
		if report.Trends.OverallTrend != "declining" {
			t.Errorf("trend = %s, want declining for -1 delta", report.Trends.OverallTrend)
		}
	})

	t.Run("single score reads stable", func(t *testing.T) {
		points := []model.DailyProgressPoint{{SkinScore: score(40), TotalActivities: 1}}
		report := BuildProgressReport(points, nil, nil, nil)
		if report.Trends.OverallTrend != "stable" {
			t.Errorf("trend = %s, want stable", report.Trends.OverallTrend)
		}
	})

	t.Run("top days exclude idle days", func(t *testing.T) {
		points := []model.DailyProgressPoint{
			{Date: "a", TotalActivities: 3},
			{Date: "b"},
			{Date: "c", TotalActivities: 1},
		}
		report := BuildProgressReport(points, nil, nil, nil)
		top := report.Insights.TopPerformingDays
		if len(top) != 2 {
			t.Fatalf("expected 2 top days, got %d", len(top))
		}
		if top[0].Date != "a" || top[1].Date != "c" {
			t.Errorf("top days = %v", top)
		}
	})

	t.Run("improvement areas follow record counts", func(t *testing.T) {
		now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

		analyses := make([]*model.SkinAnalysis, 7)
		for i := range analyses {
			analyses[i] = &model.SkinAnalysis{Score: 70, CreatedAt: now.AddDate(0, 0, -i)}
		}
		logs := make([]*model.MedicationLog, 30)
		for i := range logs {
			logs[i] = &model.MedicationLog{Date: now.AddDate(0, 0, -i%progressWindowDays)}
		}
		completions := []*model.RoutineCompletion{
			{Date: now, Completed: true},
		}

		points := BuildDailyProgress(now, analyses, completions, logs)
		report := BuildProgressReport(points, analyses, completions, logs)
		if len(report.Insights.ImprovementAreas) != 0 {
			t.Errorf("improvementAreas = %v, want none at target counts", report.Insights.ImprovementAreas)
		}

		// One skipped routine, one fewer log and analysis flags all three.
		completions = append(completions, &model.RoutineCompletion{Date: now.AddDate(0, 0, -1)})
		report = BuildProgressReport(points, analyses[1:], completions, logs[1:])
		want := []string{"Routine completion", "Medication adherence", "Regular skin monitoring"}
		got := report.Insights.ImprovementAreas
		if len(got) != len(want) {
			t.Fatalf("improvementAreas = %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("improvementAreas[%d] = %q, want %q", i, got[i], want[i])
			}
		}
	})
}
