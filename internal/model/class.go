package model

import "time"

// Class represents a course/section, keyed by its class number
// (e.g. "CSCI1001").
type Class struct {
	ClassNumber      string    `json:"class_number"`
	ClassDescription *string   `json:"class_description"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// CreateClassRequest is the payload for creating or updating a class.
type CreateClassRequest struct {
	ClassNumber      string  `json:"class_number" binding:"required,min=1,max=32"`
	ClassDescription *string `json:"class_description" binding:"omitempty,max=1024"`
}
