package model

import "time"

// JoinCode lets a student self-enroll into a class before it expires.
type JoinCode struct {
	JoinCode    string    `json:"join_code"`
	ClassNumber string    `json:"class_number"`
	Expiration  time.Time `json:"expiration"`
}

// RedeemJoinCodeRequest is the payload for redeeming a join code.
type RedeemJoinCodeRequest struct {
	JoinCode string `json:"join_code" binding:"required,min=4,max=64"`
}
