package model

import "time"

// User represents a person account. Instructors and students are both
// users; class-level roles live on the enrollment row.
type User struct {
	ID           int       `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	UserName     string    `json:"user_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// LoginRequest is the payload for user authentication.
type LoginRequest struct {
	UserName string `json:"user_name" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=6,max=128"`
}

// LoginResponse is returned after successful login.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// RegisterRequest is the payload for creating a new account.
type RegisterRequest struct {
	FirstName string `json:"first_name" binding:"required,min=1,max=100"`
	LastName  string `json:"last_name" binding:"required,min=1,max=100"`
	UserName  string `json:"user_name" binding:"required,min=3,max=64"`
	Email     string `json:"email" binding:"required,email,max=255"`
	Password  string `json:"password" binding:"required,min=6,max=128"`
}

// CreateUserRequest is the payload for admin-side user creation.
type CreateUserRequest struct {
	FirstName string `json:"first_name" binding:"required,min=1,max=100"`
	LastName  string `json:"last_name" binding:"required,min=1,max=100"`
	UserName  string `json:"user_name" binding:"required,min=3,max=64"`
	Email     string `json:"email" binding:"required,email,max=255"`
	Password  string `json:"password" binding:"required,min=6,max=128"`
	IsAdmin   bool   `json:"is_admin"`
}

// UpdateUserRequest is the payload for admin-side user updates.
type UpdateUserRequest struct {
	FirstName string `json:"first_name" binding:"required,min=1,max=100"`
	LastName  string `json:"last_name" binding:"required,min=1,max=100"`
	UserName  string `json:"user_name" binding:"required,min=3,max=64"`
	Email     string `json:"email" binding:"required,email,max=255"`
	Password  string `json:"password" binding:"omitempty,min=6,max=128"`
	IsAdmin   bool   `json:"is_admin"`
}
