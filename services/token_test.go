package services

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateToken(t *testing.T) {
	tokenString, err := GenerateToken("test-secret", "user@example.com", "507f1f77bcf86cd799439011")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("issued token does not verify: %v", err)
	}

	claims := token.Claims.(jwt.MapClaims)
	if claims["email"] != "user@example.com" {
		t.Errorf("email claim = %v", claims["email"])
	}
	if claims["user_id"] != "507f1f77bcf86cd799439011" {
		t.Errorf("user_id claim = %v", claims["user_id"])
	}
	if claims["iss"] != "skinsey" {
		t.Errorf("iss claim = %v", claims["iss"])
	}
	if claims["exp"] == nil {
		t.Error("exp claim missing")
	}
}

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter2!9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "hunter2!9" {
		t.Fatal("password stored in the clear")
	}
	if !VerifyPassword(hash, "hunter2!9") {
		t.Error("correct password rejected")
	}
	if VerifyPassword(hash, "wrong") {
		t.Error("wrong password accepted")
	}
}
