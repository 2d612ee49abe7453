// Package localizer resolves user-facing messages for the supported languages.
package localizer

import (
	"context"
	"fmt"

	"outofschool/internal/dto"
)

// Message keys.
const (
	EmailAlreadyTaken       = "EmailAlreadyTaken"
	PhoneNumberAlreadyTaken = "PhoneNumberAlreadyTaken"
	EntityNotFound          = "EntityNotFound"
	ParentAlreadyExists     = "ParentAlreadyExists"
	UserNotFound            = "UserNotFound"
	ProviderNotFound        = "ProviderNotFound"
)

var catalogs = map[dto.Language]map[string]string{
	dto.LanguageUA: {
		EmailAlreadyTaken:       "Електронна адреса %s вже використовується",
		PhoneNumberAlreadyTaken: "Номер телефону %s вже використовується",
		EntityNotFound:          "%s з id %v не існує в системі",
		ParentAlreadyExists:     "Користувач %s вже має профіль батьків",
		UserNotFound:            "Користувача з id %s не знайдено",
		ProviderNotFound:        "Надавача з id %s не знайдено",
	},
	dto.LanguageEN: {
		EmailAlreadyTaken:       "Email %s is already taken",
		PhoneNumberAlreadyTaken: "Phone number %s is already taken",
		EntityNotFound:          "%s with id %v doesn't exist in the system",
		ParentAlreadyExists:     "User %s already has a parent profile",
		UserNotFound:            "User with id %s was not found",
		ProviderNotFound:        "Provider with id %s was not found",
	},
}

// Localizer is a read-only message catalog. Safe for concurrent use.
type Localizer struct {
	def dto.Language
}

// New returns a Localizer that falls back to def for unknown languages.
// An unsupported def falls back to Ukrainian.
func New(def dto.Language) *Localizer {
	if _, ok := catalogs[def]; !ok {
		def = dto.LanguageUA
	}
	return &Localizer{def: def}
}

// Default is the fallback language.
func (l *Localizer) Default() dto.Language {
	return l.def
}

// Get formats the message stored under key for lang.
// An unknown key is formatted as-is.
func (l *Localizer) Get(lang dto.Language, key string, args ...any) string {
	cat, ok := catalogs[lang]
	if !ok {
		cat = catalogs[l.def]
	}
	format, ok := cat[key]
	if !ok {
		format = key
	}
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

type languageKey struct{}

// WithLanguage returns a copy of ctx carrying the request language.
func WithLanguage(ctx context.Context, lang dto.Language) context.Context {
	return context.WithValue(ctx, languageKey{}, lang)
}

// LanguageFrom returns the language stored by WithLanguage.
func LanguageFrom(ctx context.Context) (dto.Language, bool) {
	lang, ok := ctx.Value(languageKey{}).(dto.Language)
	return lang, ok
}

// Localize is Get in the language carried by ctx, or the default language.
func (l *Localizer) Localize(ctx context.Context, key string, args ...any) string {
	lang, ok := LanguageFrom(ctx)
	if !ok {
		lang = l.def
	}
	return l.Get(lang, key, args...)
}
