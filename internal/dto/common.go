// Package dto holds the transfer objects exchanged between the HTTP layer and services.
// Request DTOs carry validator tags checked before a service is called.
package dto

import "strings"

// Language selects which localized column or catalog is used.
type Language string

const (
	LanguageUA Language = "ua"
	LanguageEN Language = "en"
)

// ParseLanguage maps a query value such as "en" or "EN" to a Language.
// Anything unknown yields def.
func ParseLanguage(s string, def Language) Language {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case LanguageEN:
		return LanguageEN
	case LanguageUA:
		return LanguageUA
	default:
		return def
	}
}

// ListResult is a page of items with the total number of matching records.
type ListResult[T any] struct {
	Items []T `json:"data"`
	Total int `json:"total"`
}

// PageQuery carries limit/offset pagination from the transport.
type PageQuery struct {
	Limit  int `query:"limit" validate:"omitempty,min=1,max=100"`
	Offset int `query:"offset" validate:"omitempty,min=0"`
}

// APIError is one field-level problem reported back to the caller.
type APIError struct {
	Group   string `json:"group"`
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// APIErrorResponse accumulates field-level errors instead of failing on the first one.
type APIErrorResponse struct {
	Errors []APIError `json:"api_errors"`
}

// Add appends an error to the response.
func (r *APIErrorResponse) Add(e APIError) {
	r.Errors = append(r.Errors, e)
}

// HasErrors reports whether anything was accumulated.
func (r *APIErrorResponse) HasErrors() bool {
	return r != nil && len(r.Errors) > 0
}
