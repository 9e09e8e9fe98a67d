package model

// DailyProgressPoint is one day in the 30-day progress window. SkinScore is
// nil on days with no analyses so the client can show a gap instead of a
// zero.
type DailyProgressPoint struct {
	Date             string   `json:"date"`
	SkinScore        *float64 `json:"skinScore"`
	RoutineCompleted bool     `json:"routineCompleted"`
	MedicationsTaken int      `json:"medicationsTaken"`
	TotalActivities  int      `json:"totalActivities"`
}

type Streak struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

type ProgressTrends struct {
	OverallTrend string  `json:"overallTrend"` // improving, declining, stable
	TrendValue   float64 `json:"trendValue"`
	Consistency  float64 `json:"consistency"`
}

type ProgressInsights struct {
	TopPerformingDays []DailyProgressPoint `json:"topPerformingDays"`
	ImprovementAreas  []string             `json:"improvementAreas"`
	StreakDays        Streak               `json:"streakDays"`
	AverageDailyScore float64              `json:"averageDailyScore"`
}

type ProgressReport struct {
	DailyProgress []DailyProgressPoint `json:"dailyProgress"`
	Trends        ProgressTrends       `json:"trends"`
	Insights      ProgressInsights     `json:"insights"`
}
