package model

import "github.com/google/uuid"

// ProviderStatus is the moderation state of a provider.
type ProviderStatus string

const (
	ProviderStatusPending  ProviderStatus = "Pending"
	ProviderStatusEditing  ProviderStatus = "Editing"
	ProviderStatusApproved ProviderStatus = "Approved"
	ProviderStatusRecheck  ProviderStatus = "Recheck"
)

// Address is a postal address embedded in providers.
type Address struct {
	City           string `json:"city"`
	Street         string `json:"street"`
	BuildingNumber string `json:"building_number"`
}

// Provider is an institution or private person offering workshops.
type Provider struct {
	ID                  uuid.UUID      `json:"id"`
	FullTitle           string         `json:"full_title"`
	ShortTitle          string         `json:"short_title"`
	Email               string         `json:"email"`
	PhoneNumber         string         `json:"phone_number"`
	Website             string         `json:"website"`
	EdrpouIpn           string         `json:"edrpou_ipn"`
	Director            string         `json:"director"`
	Founder             string         `json:"founder"`
	TypeID              int64          `json:"type_id"`
	InstitutionStatusID *int64         `json:"institution_status_id"`
	Status              ProviderStatus `json:"status"`
	IsBlocked           bool           `json:"is_blocked"`
	UserID              string         `json:"user_id"`
	LegalAddress        Address        `json:"legal_address"`
}
