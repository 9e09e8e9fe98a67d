package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/SAI-KARTHIK999/SkinSey/middleware"
	"github.com/SAI-KARTHIK999/SkinSey/model"
)

const defaultWeatherBaseURL = "https://api.openweathermap.org/data/2.5"

// WeatherClient fetches current conditions from OpenWeatherMap.
type WeatherClient struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

func NewWeatherClient(apiKey string) *WeatherClient {
	return &WeatherClient{
		APIKey:     apiKey,
		BaseURL:    defaultWeatherBaseURL,
		HTTPClient: ExternalHTTPClient,
	}
}

type owmResponse struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main string `json:"main"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Name string `json:"name"`
}

// CurrentByCoords returns metric-unit current weather at a coordinate.
func (c *WeatherClient) CurrentByCoords(ctx context.Context, lat, lon float64) (*model.CurrentWeather, string, error) {
	reqURL := fmt.Sprintf("%s/weather?lat=%f&lon=%f&appid=%s&units=metric",
		c.BaseURL, lat, lon, c.APIKey)
	return c.fetch(ctx, reqURL)
}

// CurrentByCity returns metric-unit current weather for a city name.
func (c *WeatherClient) CurrentByCity(ctx context.Context, city string) (*model.CurrentWeather, string, error) {
	reqURL := fmt.Sprintf("%s/weather?q=%s&appid=%s&units=metric",
		c.BaseURL, url.QueryEscape(city), c.APIKey)
	return c.fetch(ctx, reqURL)
}

func (c *WeatherClient) fetch(ctx context.Context, reqURL string) (*model.CurrentWeather, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, "", err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		middleware.TrackProviderCall("openweathermap", "error")
		return nil, "", fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		middleware.TrackProviderCall("openweathermap", "error")
		return nil, "", fmt.Errorf("weather provider returned %d", resp.StatusCode)
	}

	var parsed owmResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		middleware.TrackProviderCall("openweathermap", "error")
		return nil, "", fmt.Errorf("weather response decode failed: %w", err)
	}

	condition := "Clear"
	if len(parsed.Weather) > 0 {
		condition = parsed.Weather[0].Main
	}

	middleware.TrackProviderCall("openweathermap", "ok")
	return &model.CurrentWeather{
		Temperature: parsed.Main.Temp,
		Humidity:    parsed.Main.Humidity,
		Condition:   condition,
		UVIndex:     0, // the free tier does not expose UV
		WindSpeed:   parsed.Wind.Speed,
	}, parsed.Name, nil
}
