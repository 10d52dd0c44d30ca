package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

type LoginRequest struct {
	Password string `json:"password"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	Operator string `json:"operator"`
}

type Claims struct {
	Operator string
	jwt.RegisteredClaims
}
