package handler

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/SAI-KARTHIK999/SkinSey/dto"
	"github.com/SAI-KARTHIK999/SkinSey/model"
	"github.com/SAI-KARTHIK999/SkinSey/repository"
	"github.com/SAI-KARTHIK999/SkinSey/services"
	"github.com/SAI-KARTHIK999/SkinSey/utils"
)

func RegisterHandler(c *gin.Context, users *repository.UserRepo) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid registration details")
		return
	}

	existing, err := users.FindUserByEmail(c, req.Email)
	if err != nil {
		utils.InternalError(c, "Registration failed")
		return
	}
	if existing != nil {
		utils.Conflict(c, "An account with this email already exists")
		return
	}

	hash, err := services.HashPassword(req.Password)
	if err != nil {
		utils.InternalError(c, "Registration failed")
		return
	}

	user := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
	}

	userID, err := users.CreateUser(c, user)
	if err != nil {
		utils.InternalError(c, "Registration failed")
		return
	}

	token, err := services.GenerateToken(os.Getenv("JWT_SECRET_KEY"), req.Email, userID.Hex())
	if err != nil {
		log.Printf("token generation failed after registration: %v", err)
		utils.InternalError(c, "Registration failed")
		return
	}

	utils.Created(c, dto.LoginResponse{
		Token: token,
		Email: req.Email,
		Name:  req.Name,
	})
}

func LoginHandler(c *gin.Context, users *repository.UserRepo) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid login details")
		return
	}

	user, err := users.FindUserByEmail(c, req.Email)
	if err != nil {
		utils.InternalError(c, "Login failed")
		return
	}
	// Same message for unknown account and wrong password.
	if user == nil || !services.VerifyPassword(user.Password, req.Password) {
		utils.Unauthorized(c, "Invalid email or password")
		return
	}

	token, err := services.GenerateToken(os.Getenv("JWT_SECRET_KEY"), user.Email, user.ID.Hex())
	if err != nil {
		log.Printf("token generation failed at login: %v", err)
		utils.InternalError(c, "Login failed")
		return
	}

	utils.Success(c, dto.LoginResponse{
		Token: token,
		Email: user.Email,
		Name:  user.Name,
	})
}
