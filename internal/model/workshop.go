package model

import "github.com/google/uuid"

// Workshop is an activity offered by a provider.
type Workshop struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	MinAge        int       `json:"min_age"`
	MaxAge        int       `json:"max_age"`
	Price         float64   `json:"price"`
	Description   string    `json:"description"`
	ProviderID    uuid.UUID `json:"provider_id"`
	ProviderTitle string    `json:"provider_title"`
	CategoryID    int64     `json:"category_id"`
}
