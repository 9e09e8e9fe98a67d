package model

type CurrentWeather struct {
	Temperature float64 `json:"temperature"`
	Humidity    int     `json:"humidity"`
	Condition   string  `json:"condition"`
	UVIndex     float64 `json:"uvIndex"`
	WindSpeed   float64 `json:"windSpeed"`
}

// TimeBasedRoutine groups weather-adjusted skincare steps by time of day.
type TimeBasedRoutine struct {
	Morning   []string `json:"morning"`
	Afternoon []string `json:"afternoon"`
	Evening   []string `json:"evening"`
	Night     []string `json:"night"`
}

type WeatherRecommendations struct {
	Immediate []string         `json:"immediate"`
	Daily     []string         `json:"daily"`
	TimeBased TimeBasedRoutine `json:"timeBased"`
	Seasonal  []string         `json:"seasonal"`
}

type WeatherReport struct {
	City            string                 `json:"city"`
	CurrentWeather  CurrentWeather         `json:"currentWeather"`
	Recommendations WeatherRecommendations `json:"recommendations"`
	RiskFactors     []string               `json:"riskFactors"`
	Tips            []string               `json:"tips"`
}
