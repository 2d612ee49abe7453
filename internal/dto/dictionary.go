package dto

type CategoryDTO struct {
	ID          int64  `json:"id"`
	Title       string `json:"title" validate:"required,max=60"`
	Description string `json:"description" validate:"max=500"`
}

type CityDTO struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name" validate:"required,max=100"`
	District  string  `json:"district" validate:"max=100"`
	Region    string  `json:"region" validate:"max=100"`
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

// InstitutionStatusDTO exposes a single name in the requested language.
type InstitutionStatusDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name" validate:"required,max=100"`
}

type ProviderTypeDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name" validate:"required,max=100"`
}
