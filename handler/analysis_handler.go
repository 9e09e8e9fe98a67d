package handler

import (
	"encoding/base64"
	"errors"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SAI-KARTHIK999/SkinSey/repository"
	"github.com/SAI-KARTHIK999/SkinSey/usecase"
	"github.com/SAI-KARTHIK999/SkinSey/utils"
)

const maxImageBytes = 5 << 20

var allowedImageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
}

func AnalyzeSkinHandler(c *gin.Context, analysisService *usecase.AnalysisService, users *repository.UserRepo) {
	user := currentUser(c, users)
	if user == nil {
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.BadRequest(c, "An image file is required")
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExts[ext] {
		utils.BadRequest(c, "Unsupported image type; use png, jpg, jpeg or webp")
		return
	}
	if fileHeader.Size > maxImageBytes {
		utils.BadRequest(c, "Image must be 5 MB or smaller")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.InternalError(c, "Failed to read image")
		return
	}
	defer file.Close()

	raw, err := io.ReadAll(io.LimitReader(file, maxImageBytes+1))
	if err != nil {
		utils.InternalError(c, "Failed to read image")
		return
	}
	if len(raw) > maxImageBytes {
		utils.BadRequest(c, "Image must be 5 MB or smaller")
		return
	}

	analysis, err := analysisService.Analyze(c, user.ID, base64.StdEncoding.EncodeToString(raw))
	if err != nil {
		var parseErr *usecase.ParseError
		if errors.As(err, &parseErr) {
			// The raw model text goes back with the failure so a stuck
			// analysis can be diagnosed from the response alone.
			switch parseErr.Kind {
			case usecase.ParseDeclined:
				utils.BadRequest(c, "Analysis declined: "+parseErr.Reason)
			default:
				utils.InternalErrorWithData(c, "Analysis could not be completed",
					gin.H{"raw_response": parseErr.Raw})
			}
			return
		}
		log.Printf("skin analysis failed for %s: %v", user.Email, err)
		utils.ServiceUnavailable(c, "Analysis service is temporarily unavailable")
		return
	}

	utils.Success(c, analysis)
}
