package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Role distinguishes the two kinds of accounts.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
)

// ParseRole validates a raw role string.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleStudent, RoleTeacher:
		return Role(s), true
	}
	return "", false
}

// User is an account record. PasswordHash is never serialized to JSON.
type User struct {
	ID           string    `json:"id" bson:"_id"`
	Email        string    `json:"email" bson:"email"`
	FullName     string    `json:"fullName" bson:"fullName"`
	Role         Role      `json:"role" bson:"role"`
	PasswordHash []byte    `json:"-" bson:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
}

// UserClaims is the JWT payload identifying a signed-in user.
type UserClaims struct {
	UserID string `json:"userId"`
	Role   Role   `json:"role"`
	jwt.RegisteredClaims
}

// LoginRequest is the request body for POST /v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest is the request body for POST /v1/auth/signup.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

// LoginResponse carries the issued token and the account it identifies.
type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
