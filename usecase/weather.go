package usecase

import (
	"context"
	"log"
	"time"

	"github.com/SAI-KARTHIK999/SkinSey/model"
	"github.com/SAI-KARTHIK999/SkinSey/services"
)

const weatherCacheTTL = 15 * time.Minute

// WeatherProvider abstracts the current-conditions lookup.
type WeatherProvider interface {
	CurrentByCoords(ctx context.Context, lat, lon float64) (*model.CurrentWeather, string, error)
	CurrentByCity(ctx context.Context, city string) (*model.CurrentWeather, string, error)
}

type WeatherService struct {
	Weather WeatherProvider
	Cache   *services.GeoCache

	// now is swappable so tests can pin the time-of-day and season tables.
	now func() time.Time
}

func NewWeatherService(weather WeatherProvider, cache *services.GeoCache) *WeatherService {
	return &WeatherService{Weather: weather, Cache: cache, now: time.Now}
}

// ReportByCoords builds weather-adjusted skincare guidance for a coordinate.
func (s *WeatherService) ReportByCoords(ctx context.Context, lat, lon float64) (*model.WeatherReport, error) {
	return s.report(ctx, services.WeatherKey(lat, lon), func(ctx context.Context) (*model.CurrentWeather, string, error) {
		return s.Weather.CurrentByCoords(ctx, lat, lon)
	})
}

// ReportByCity builds the same guidance from a city name.
func (s *WeatherService) ReportByCity(ctx context.Context, city string) (*model.WeatherReport, error) {
	return s.report(ctx, services.WeatherCityKey(city), func(ctx context.Context) (*model.CurrentWeather, string, error) {
		return s.Weather.CurrentByCity(ctx, city)
	})
}

func (s *WeatherService) report(ctx context.Context, cacheKey string, fetch func(context.Context) (*model.CurrentWeather, string, error)) (*model.WeatherReport, error) {
	if s.Cache != nil {
		var cached model.WeatherReport
		if hit, err := s.Cache.Get(ctx, cacheKey, &cached); err != nil {
			log.Printf("weather cache read failed: %v", err)
		} else if hit {
			return &cached, nil
		}
	}

	current, city, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	report := BuildWeatherReport(city, current, s.now())

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, cacheKey, report, weatherCacheTTL); err != nil {
			log.Printf("weather cache write failed: %v", err)
		}
	}
	return report, nil
}

// BuildWeatherReport is pure: conditions plus a clock in, guidance out.
func BuildWeatherReport(city string, current *model.CurrentWeather, now time.Time) *model.WeatherReport {
	report := &model.WeatherReport{
		City:           city,
		CurrentWeather: *current,
		Recommendations: model.WeatherRecommendations{
			Immediate: immediateAdvice(current),
			Daily:     dailyAdvice(current),
			TimeBased: timeBasedRoutine(current),
			Seasonal:  seasonalAdvice(now),
		},
		RiskFactors: riskFactors(current),
		Tips:        generalTips(current, now),
	}
	return report
}

func immediateAdvice(w *model.CurrentWeather) []string {
	var advice []string
	if w.Temperature >= 30 {
		advice = append(advice, "Apply a lightweight, oil-free moisturizer")
		advice = append(advice, "Reapply sunscreen every 2 hours if outdoors")
	}
	if w.Temperature <= 5 {
		advice = append(advice, "Switch to a richer moisturizer to protect the skin barrier")
	}
	if w.Humidity >= 80 {
		advice = append(advice, "Use a gel-based cleanser to manage excess oil")
	}
	if w.Humidity <= 30 {
		advice = append(advice, "Layer a hydrating serum under your moisturizer")
	}
	if w.WindSpeed >= 10 {
		advice = append(advice, "Apply a barrier cream to wind-exposed areas")
	}
	if len(advice) == 0 {
		advice = append(advice, "Conditions are mild; stick to your regular routine")
	}
	return advice
}

func dailyAdvice(w *model.CurrentWeather) []string {
	advice := []string{"Drink at least 8 glasses of water"}
	switch w.Condition {
	case "Rain", "Drizzle", "Thunderstorm":
		advice = append(advice, "Humidity is up; skip heavy occlusives today")
	case "Snow":
		advice = append(advice, "Snow reflects UV; wear sunscreen even when overcast")
	case "Clear":
		advice = append(advice, "Wear SPF 30+ and a hat for extended time outside")
	}
	if w.Humidity <= 40 {
		advice = append(advice, "Consider a humidifier indoors")
	}
	return advice
}

func timeBasedRoutine(w *model.CurrentWeather) model.TimeBasedRoutine {
	routine := model.TimeBasedRoutine{
		Morning:   []string{"Gentle cleanser", "Vitamin C serum", "Moisturizer", "Sunscreen SPF 30+"},
		Afternoon: []string{"Blotting paper if oily", "Reapply sunscreen"},
		Evening:   []string{"Double cleanse", "Treatment serum", "Moisturizer"},
		Night:     []string{"Night cream or sleeping mask"},
	}
	if w.Temperature <= 5 {
		routine.Night = append(routine.Night, "Overnight hydrating mask for cold-weather recovery")
	}
	if w.Humidity >= 80 {
		routine.Morning = append(routine.Morning, "Oil-control primer")
	}
	return routine
}

// seasonalAdvice uses meteorological seasons for the northern hemisphere.
func seasonalAdvice(now time.Time) []string {
	switch now.Month() {
	case time.December, time.January, time.February:
		return []string{
			"Winter: richer creams, avoid hot showers, protect lips and hands",
		}
	case time.March, time.April, time.May:
		return []string{
			"Spring: reintroduce exfoliation gradually, watch for allergy-related flare-ups",
		}
	case time.June, time.July, time.August:
		return []string{
			"Summer: lighter textures, diligent SPF, rinse off sweat promptly",
		}
	default:
		return []string{
			"Autumn: repair summer sun damage, start transitioning to heavier moisturizers",
		}
	}
}

func riskFactors(w *model.CurrentWeather) []string {
	var risks []string
	if w.Temperature >= 32 {
		risks = append(risks, "Heat: elevated risk of clogged pores and sweat-induced breakouts")
	}
	if w.Temperature <= 0 {
		risks = append(risks, "Cold: elevated risk of barrier damage and chapping")
	}
	if w.Humidity <= 30 {
		risks = append(risks, "Dry air: elevated risk of dehydration lines and flaking")
	}
	if w.UVIndex >= 6 {
		risks = append(risks, "High UV: elevated risk of sun damage")
	}
	if w.WindSpeed >= 12 {
		risks = append(risks, "Wind: elevated risk of irritation on exposed skin")
	}
	if len(risks) == 0 {
		risks = append(risks, "No significant weather-related skin risks right now")
	}
	return risks
}

func generalTips(w *model.CurrentWeather, now time.Time) []string {
	tips := []string{"Patch-test new products before full use"}
	if hour := now.Hour(); hour >= 10 && hour <= 16 {
		tips = append(tips, "UV peaks midday; seek shade between 10am and 4pm")
	}
	if w.Condition == "Clouds" {
		tips = append(tips, "Up to 80% of UV passes through clouds; SPF still applies")
	}
	return tips
}
