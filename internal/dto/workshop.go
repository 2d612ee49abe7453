package dto

import "github.com/google/uuid"

type WorkshopDTO struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title" validate:"required,max=60"`
	Email         string    `json:"email" validate:"required,email"`
	Phone         string    `json:"phone" validate:"required,e164"`
	MinAge        int       `json:"min_age" validate:"gte=0,lte=100"`
	MaxAge        int       `json:"max_age" validate:"gte=0,lte=100,gtefield=MinAge"`
	Price         float64   `json:"price" validate:"gte=0,lte=100000"`
	Description   string    `json:"description" validate:"max=1500"`
	ProviderID    uuid.UUID `json:"provider_id" validate:"required"`
	ProviderTitle string    `json:"provider_title"`
	CategoryID    int64     `json:"category_id" validate:"required,gt=0"`
}
