package usecase

import (
	"strings"
	"testing"
	"time"

	"github.com/SAI-KARTHIK999/SkinSey/model"
)

func TestBuildWeatherReport(t *testing.T) {
	january := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	july := time.Date(2026, 7, 15, 13, 0, 0, 0, time.UTC)

	t.Run("hot dry conditions", func(t *testing.T) {
		report := BuildWeatherReport("Phoenix", &model.CurrentWeather{
			Temperature: 38,
			Humidity:    15,
			Condition:   "Clear",
			WindSpeed:   3,
		}, july)

		if report.City != "Phoenix" {
			t.Errorf("city = %q", report.City)
		}
		if !containsSubstring(report.Recommendations.Immediate, "sunscreen") {
			t.Errorf("no sunscreen advice in %v", report.Recommendations.Immediate)
		}
		if !containsSubstring(report.RiskFactors, "Heat") {
			t.Errorf("heat risk missing: %v", report.RiskFactors)
		}
		if !containsSubstring(report.RiskFactors, "Dry air") {
			t.Errorf("dry-air risk missing: %v", report.RiskFactors)
		}
		if !containsSubstring(report.Recommendations.Seasonal, "Summer") {
			t.Errorf("seasonal advice = %v, want summer", report.Recommendations.Seasonal)
		}
		// Midday request gets the peak-UV tip.
		if !containsSubstring(report.Tips, "midday") {
			t.Errorf("midday tip missing: %v", report.Tips)
		}
	})

	t.Run("cold windy conditions", func(t *testing.T) {
		report := BuildWeatherReport("Oslo", &model.CurrentWeather{
			Temperature: -5,
			Humidity:    50,
			Condition:   "Snow",
			WindSpeed:   14,
		}, january)

		if !containsSubstring(report.Recommendations.Immediate, "richer moisturizer") {
			t.Errorf("cold advice missing: %v", report.Recommendations.Immediate)
		}
		if !containsSubstring(report.RiskFactors, "Cold") {
			t.Errorf("cold risk missing: %v", report.RiskFactors)
		}
		if !containsSubstring(report.RiskFactors, "Wind") {
			t.Errorf("wind risk missing: %v", report.RiskFactors)
		}
		if !containsSubstring(report.Recommendations.Seasonal, "Winter") {
			t.Errorf("seasonal advice = %v, want winter", report.Recommendations.Seasonal)
		}
		if !containsSubstring(report.Recommendations.Daily, "Snow reflects UV") {
			t.Errorf("snow advice missing: %v", report.Recommendations.Daily)
		}
	})

	t.Run("mild conditions stay calm", func(t *testing.T) {
		report := BuildWeatherReport("Lisbon", &model.CurrentWeather{
			Temperature: 20,
			Humidity:    55,
			Condition:   "Clear",
			WindSpeed:   4,
		}, july)

		if !containsSubstring(report.Recommendations.Immediate, "regular routine") {
			t.Errorf("mild advice missing: %v", report.Recommendations.Immediate)
		}
		if !containsSubstring(report.RiskFactors, "No significant") {
			t.Errorf("risk list = %v, want none flagged", report.RiskFactors)
		}
	})

	t.Run("time based routine always covers the day", func(t *testing.T) {
		report := BuildWeatherReport("Anywhere", &model.CurrentWeather{Temperature: 20, Humidity: 50}, july)
		routine := report.Recommendations.TimeBased
		if len(routine.Morning) == 0 || len(routine.Afternoon) == 0 ||
			len(routine.Evening) == 0 || len(routine.Night) == 0 {
			t.Errorf("incomplete time-based routine: %+v", routine)
		}
	})
}

func containsSubstring(list []string, substr string) bool {
	for _, s := range list {
		if strings.Contains(s, substr) {
			return true
		}
	}
	return false
}
