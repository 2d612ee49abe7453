package dto

import (
	"time"

	"github.com/google/uuid"

	"outofschool/internal/model"
)

// ParentCreateDTO is sent by a freshly registered user to become a parent.
type ParentCreateDTO struct {
	PhoneNumber string        `json:"phone_number" validate:"omitempty,e164"`
	Gender      *model.Gender `json:"gender" validate:"omitempty,oneof=0 1"`
	DateOfBirth *time.Time    `json:"date_of_birth"`
}

// ParentDTO joins the parent record with its user account.
type ParentDTO struct {
	ID          uuid.UUID     `json:"id"`
	UserID      string        `json:"user_id"`
	FirstName   string        `json:"first_name"`
	MiddleName  string        `json:"middle_name"`
	LastName    string        `json:"last_name"`
	Email       string        `json:"email"`
	PhoneNumber string        `json:"phone_number"`
	Gender      *model.Gender `json:"gender"`
	DateOfBirth *time.Time    `json:"date_of_birth"`
	IsBlocked   bool          `json:"is_blocked"`
}

// ShortUserDTO updates the personal data of a parent. ID is the user id.
type ShortUserDTO struct {
	ID          string        `json:"id" validate:"required"`
	FirstName   string        `json:"first_name" validate:"required,max=60"`
	MiddleName  string        `json:"middle_name" validate:"max=60"`
	LastName    string        `json:"last_name" validate:"required,max=60"`
	PhoneNumber string        `json:"phone_number" validate:"omitempty,e164"`
	Gender      *model.Gender `json:"gender" validate:"required,oneof=0 1"`
	DateOfBirth *time.Time    `json:"date_of_birth" validate:"required"`
}

// BlockUnblockParentDTO is an administrator's request to (un)block a parent.
type BlockUnblockParentDTO struct {
	ParentID  uuid.UUID `json:"parent_id" validate:"required"`
	Reason    string    `json:"reason" validate:"required_if=IsBlocked true,max=500"`
	IsBlocked bool      `json:"is_blocked"`
}
