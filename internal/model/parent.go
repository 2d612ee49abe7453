package model

import (
	"time"

	"github.com/google/uuid"
)

// Gender of a parent or child.
type Gender int

const (
	GenderMale Gender = iota
	GenderFemale
)

func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "Male"
	case GenderFemale:
		return "Female"
	default:
		return "Unknown"
	}
}

// Parent is a registered user who enrolls children in workshops.
type Parent struct {
	ID          uuid.UUID  `json:"id"`
	UserID      string     `json:"user_id"`
	Gender      *Gender    `json:"gender"`
	DateOfBirth *time.Time `json:"date_of_birth"`
}
