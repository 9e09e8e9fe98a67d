package usecase

import (
	"math"
	"sort"
	"time"

	"github.com/SAI-KARTHIK999/SkinSey/model"
)

const progressWindowDays = 30

// DayKey normalizes a timestamp to its calendar-day label in UTC.
func DayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// ComputeStreak walks chronological daily points. An idle day (no activity
// at all) resets both counters; on active days the running streak always
// advances while the current streak only advances when the routine was
// actually completed. Current can therefore trail the running streak without
// resetting, which rewards users who stay active even when they skip the
// full routine.
func ComputeStreak(points []model.DailyProgressPoint) model.Streak {
	var streak model.Streak
	tempStreak := 0

	for _, day := range points {
		if day.TotalActivities > 0 {
			tempStreak++
			if day.RoutineCompleted {
				streak.Current++
			}
		} else {
			tempStreak = 0
			streak.Current = 0
		}
		if tempStreak > streak.Max {
			streak.Max = tempStreak
		}
	}
	return streak
}

// BuildDailyProgress folds the raw per-collection records into one point per
// calendar day for the trailing window, oldest first. Days with no analysis
// keep a nil SkinScore.
func BuildDailyProgress(now time.Time, analyses []*model.SkinAnalysis, completions []*model.RoutineCompletion, logs []*model.MedicationLog) []model.DailyProgressPoint {
	analysesByDay := make(map[string][]int)
	for _, analysis := range analyses {
		key := DayKey(analysis.CreatedAt)
		analysesByDay[key] = append(analysesByDay[key], analysis.Score)
	}

	routinesByDay := make(map[string]int)
	completedByDay := make(map[string]bool)
	for _, completion := range completions {
		key := DayKey(completion.Date)
		routinesByDay[key]++
		if completion.Completed {
			completedByDay[key] = true
		}
	}

	medicationsByDay := make(map[string]int)
	for _, entry := range logs {
		medicationsByDay[DayKey(entry.Date)]++
	}

	points := make([]model.DailyProgressPoint, 0, progressWindowDays)
	start := now.UTC().AddDate(0, 0, -(progressWindowDays - 1))
	for i := 0; i < progressWindowDays; i++ {
		day := start.AddDate(0, 0, i)
		key := DayKey(day)

		point := model.DailyProgressPoint{
			Date:             key,
			RoutineCompleted: completedByDay[key],
			MedicationsTaken: medicationsByDay[key],
		}

		if scores := analysesByDay[key]; len(scores) > 0 {
			sum := 0
			for _, s := range scores {
				sum += s
			}
			mean := float64(sum) / float64(len(scores))
			point.SkinScore = &mean
		}

		// Every routine record counts as activity, completed or not; only
		// the completed flag feeds the current streak.
		point.TotalActivities = len(analysesByDay[key]) + routinesByDay[key] + point.MedicationsTaken

		points = append(points, point)
	}
	return points
}

// BuildProgressReport derives trends and insights from the daily points. The
// raw window records are needed too: improvement areas are judged on record
// counts, not on the per-day fold.
func BuildProgressReport(points []model.DailyProgressPoint, analyses []*model.SkinAnalysis, completions []*model.RoutineCompletion, logs []*model.MedicationLog) *model.ProgressReport {
	report := &model.ProgressReport{
		DailyProgress: points,
		Trends:        computeTrends(points),
	}
	report.Insights = computeInsights(points, analyses, completions, logs)
	return report
}

// computeTrends compares the first and last of the most recent seven scored
// days. Fewer than two scored days reads as stable.
func computeTrends(points []model.DailyProgressPoint) model.ProgressTrends {
	trends := model.ProgressTrends{OverallTrend: "stable"}

	var scored []float64
	for _, day := range points {
		if day.SkinScore != nil {
			scored = append(scored, *day.SkinScore)
		}
	}
	if len(scored) > 7 {
		scored = scored[len(scored)-7:]
	}
	if len(scored) >= 2 {
		delta := scored[len(scored)-1] - scored[0]
		trends.TrendValue = math.Abs(delta)
		switch {
		case delta > 0:
			trends.OverallTrend = "improving"
		case delta < 0:
			trends.OverallTrend = "declining"
		}
	}

	if len(points) > 0 {
		active := 0
		for _, day := range points {
			if day.TotalActivities > 0 {
				active++
			}
		}
		trends.Consistency = math.Round(float64(active)/float64(len(points))*100) / 100
	}
	return trends
}

// Improvement-area thresholds over the 30-day window: daily medication
// logging and a weekly analysis cadence.
const (
	medicationAdherenceTarget = 30
	analysisCadenceTarget     = 7
)

func computeInsights(points []model.DailyProgressPoint, analyses []*model.SkinAnalysis, completions []*model.RoutineCompletion, logs []*model.MedicationLog) model.ProgressInsights {
	insights := model.ProgressInsights{
		TopPerformingDays: topPerformingDays(points, 5),
		StreakDays:        ComputeStreak(points),
		ImprovementAreas:  []string{},
	}

	scoredDays, scoreSum := 0, 0.0
	for _, day := range points {
		if day.SkinScore != nil {
			scoredDays++
			scoreSum += *day.SkinScore
		}
	}
	if scoredDays > 0 {
		insights.AverageDailyScore = math.Round(scoreSum/float64(scoredDays)*10) / 10
	}

	for _, completion := range completions {
		if !completion.Completed {
			insights.ImprovementAreas = append(insights.ImprovementAreas, "Routine completion")
			break
		}
	}
	if len(logs) < medicationAdherenceTarget {
		insights.ImprovementAreas = append(insights.ImprovementAreas, "Medication adherence")
	}
	if len(analyses) < analysisCadenceTarget {
		insights.ImprovementAreas = append(insights.ImprovementAreas, "Regular skin monitoring")
	}
	return insights
}

func topPerformingDays(points []model.DailyProgressPoint, limit int) []model.DailyProgressPoint {
	ranked := make([]model.DailyProgressPoint, len(points))
	copy(ranked, points)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalActivities > ranked[j].TotalActivities
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	out := make([]model.DailyProgressPoint, 0, len(ranked))
	for _, day := range ranked {
		if day.TotalActivities == 0 {
			break
		}
		out = append(out, day)
	}
	return out
}
