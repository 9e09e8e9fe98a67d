package handler

import (
	"log"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SAI-KARTHIK999/SkinSey/usecase"
	"github.com/SAI-KARTHIK999/SkinSey/utils"
)

func NearbyDoctorsHandler(c *gin.Context, doctorService *usecase.DoctorService) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr != nil || lngErr != nil {
		utils.BadRequest(c, "lat and lng query parameters are required")
		return
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		utils.BadRequest(c, "Coordinates out of range")
		return
	}

	result, err := doctorService.FindNearby(c, lat, lng)
	if err != nil {
		log.Printf("nearby doctor search failed: %v", err)
		utils.InternalError(c, "Doctor search failed")
		return
	}

	utils.Success(c, result)
}
