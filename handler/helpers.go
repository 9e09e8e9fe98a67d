package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/SAI-KARTHIK999/SkinSey/model"
	"github.com/SAI-KARTHIK999/SkinSey/repository"
	"github.com/SAI-KARTHIK999/SkinSey/utils"
)

// currentUser resolves the authenticated principal's user document. A valid
// session whose account no longer exists reads as unauthorized, not as a
// server error. Returns nil after writing the response when resolution
// fails.
func currentUser(c *gin.Context, users *repository.UserRepo) *model.User {
	email := c.GetString("email")
	if email == "" {
		utils.Unauthorized(c, "Missing session")
		return nil
	}

	user, err := users.FindUserByEmail(c, email)
	if err != nil {
		utils.InternalError(c, "Failed to load user")
		return nil
	}
	if user == nil {
		utils.Unauthorized(c, "Account not found")
		return nil
	}
	return user
}
