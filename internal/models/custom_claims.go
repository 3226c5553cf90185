package models

import "github.com/golang-jwt/jwt/v5"

// CustomClaims are the claims carried by access tokens
type CustomClaims struct {
	jwt.RegisteredClaims
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}
