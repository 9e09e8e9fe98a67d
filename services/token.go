package services

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/SAI-KARTHIK999/SkinSey/utils"
)

// GenerateToken issues the session token consumed by the auth middleware.
// The email claim is the principal; user_id is carried for convenience.
func GenerateToken(secretKey, email, userID string) (string, error) {
	expiration := utils.GetEnvAsDuration("JWT_EXPIRATION_TIME", 24*time.Hour)

	claims := jwt.MapClaims{
		"email":   email,
		"user_id": userID,
		"iss":     "skinsey",
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(expiration).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}
