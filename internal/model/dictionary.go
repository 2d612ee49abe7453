package model

// Reference dictionaries keyed by BIGSERIAL ids.

type Category struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type City struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	District  string  `json:"district"`
	Region    string  `json:"region"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// InstitutionStatus carries both the Ukrainian and the English name.
type InstitutionStatus struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	NameEn string `json:"name_en"`
}

type ProviderType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
