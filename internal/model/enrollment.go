package model

import "time"

// Every newly created user is enrolled into this class as a regular
// participant. The pair below is the whole contract of the default
// enrollment: do not derive these values from anywhere else.
const (
	DefaultClassNumber  = "CSCI1001"
	DefaultIsInstructor = false
)

// Enrollment links a user to a class. A user may appear at most once per
// class; the (user_id, class_number) pair is the primary key.
type Enrollment struct {
	UserID       int    `json:"user_id"`
	ClassNumber  string `json:"class_number"`
	IsInstructor bool   `json:"is_instructor"`
}

// RosterEntry is an enrollment joined with the user's display fields.
type RosterEntry struct {
	UserID       int    `json:"user_id"`
	UserName     string `json:"user_name"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	IsInstructor bool   `json:"is_instructor"`
}

// AddToClassRequest is the payload for enrolling a user into a class
// by their user name.
type AddToClassRequest struct {
	UserName string `json:"user_name" binding:"required,min=3,max=64"`
}

// EnrollmentEvent is published to the enrollment feed whenever a roster
// changes through the application.
type EnrollmentEvent struct {
	Kind         string    `json:"kind"` // "enrolled" or "removed"
	UserID       int       `json:"user_id"`
	ClassNumber  string    `json:"class_number"`
	IsInstructor bool      `json:"is_instructor"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// EnrollmentEvent kinds.
const (
	EnrollmentEventEnrolled = "enrolled"
	EnrollmentEventRemoved  = "removed"
)
