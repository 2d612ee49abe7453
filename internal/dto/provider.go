package dto

import (
	"github.com/google/uuid"

	"outofschool/internal/model"
)

type AddressDTO struct {
	City           string `json:"city" validate:"required,max=60"`
	Street         string `json:"street" validate:"required,max=60"`
	BuildingNumber string `json:"building_number" validate:"required,max=15"`
}

type ProviderDTO struct {
	ID                  uuid.UUID            `json:"id"`
	FullTitle           string               `json:"full_title" validate:"required,max=120"`
	ShortTitle          string               `json:"short_title" validate:"required,max=60"`
	Email               string               `json:"email" validate:"required,email"`
	PhoneNumber         string               `json:"phone_number" validate:"required,e164"`
	Website             string               `json:"website" validate:"omitempty,url"`
	EdrpouIpn           string               `json:"edrpou_ipn" validate:"required,numeric,min=8,max=10"`
	Director            string               `json:"director" validate:"max=50"`
	Founder             string               `json:"founder" validate:"required,max=60"`
	TypeID              int64                `json:"type_id" validate:"required,gt=0"`
	InstitutionStatusID *int64               `json:"institution_status_id"`
	Status              model.ProviderStatus `json:"status"`
	IsBlocked           bool                 `json:"is_blocked"`
	UserID              string               `json:"user_id" validate:"required"`
	LegalAddress        AddressDTO           `json:"legal_address"`
}
