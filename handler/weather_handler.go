package handler

import (
	"log"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SAI-KARTHIK999/SkinSey/usecase"
	"github.com/SAI-KARTHIK999/SkinSey/utils"
)

// WeatherRecommendationsHandler accepts either lat+lon or a city name.
// Coordinates win when both are present.
func WeatherRecommendationsHandler(c *gin.Context, weatherService *usecase.WeatherService) {
	latStr, lonStr := c.Query("lat"), c.Query("lon")
	city := c.Query("city")

	if latStr != "" && lonStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lon, lonErr := strconv.ParseFloat(lonStr, 64)
		if latErr != nil || lonErr != nil {
			utils.BadRequest(c, "lat and lon must be numbers")
			return
		}

		report, err := weatherService.ReportByCoords(c, lat, lon)
		if err != nil {
			log.Printf("weather lookup by coords failed: %v", err)
			utils.ServiceUnavailable(c, "Weather service is temporarily unavailable")
			return
		}
		utils.Success(c, report)
		return
	}

	if city == "" {
		utils.BadRequest(c, "Provide lat and lon, or a city name")
		return
	}

	report, err := weatherService.ReportByCity(c, city)
	if err != nil {
		log.Printf("weather lookup by city failed: %v", err)
		utils.ServiceUnavailable(c, "Weather service is temporarily unavailable")
		return
	}
	utils.Success(c, report)
}
