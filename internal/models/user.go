package models

import "time"

// User represents a platform user (farmer or trader).
type User struct {
	ID           string    `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	UserType     string    `json:"userType" db:"user_type"`
	State        string    `json:"state" db:"state"`
	District     string    `json:"district" db:"district"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	UserType string `json:"userType"`
	State    string `json:"state"`
	District string `json:"district"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse represents user information for API responses.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	UserType string `json:"userType"`
	State    string `json:"state"`
	District string `json:"district"`
}
