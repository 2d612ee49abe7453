package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"outofschool/internal/dto"
	"outofschool/internal/localizer"
	"outofschool/internal/model"
	"outofschool/internal/repository"
)

// API error codes reported for colliding user contacts.
const (
	CodeEmailAlreadyTaken       = "EmailAlreadyTaken"
	CodePhoneNumberAlreadyTaken = "PhoneNumberAlreadyTaken"
)

// APIErrorService checks user contact uniqueness and collects every
// collision instead of stopping at the first one.
type APIErrorService interface {
	IsEmailTaken(ctx context.Context, email string) (bool, error)
	IsPhoneTaken(ctx context.Context, phone string) (bool, error)
	// CheckUserUniqueness returns an empty response when both values are free.
	// Empty values are not checked. A non-empty ownerID excludes that user's
	// own row from the lookup.
	CheckUserUniqueness(ctx context.Context, entityType, ownerID, email, phone string) (*dto.APIErrorResponse, error)
}

type apiErrorService struct {
	users repository.EntityRepository[string, model.User]
	loc   *localizer.Localizer
	log   zerolog.Logger
}

func NewAPIErrorService(users repository.EntityRepository[string, model.User], loc *localizer.Localizer, log zerolog.Logger) APIErrorService {
	return &apiErrorService{users: users, loc: loc, log: log}
}

func (s *apiErrorService) IsEmailTaken(ctx context.Context, email string) (bool, error) {
	return s.taken(ctx, "email", email, "")
}

func (s *apiErrorService) IsPhoneTaken(ctx context.Context, phone string) (bool, error) {
	return s.taken(ctx, "phone_number", phone, "")
}

func (s *apiErrorService) taken(ctx context.Context, column, value, ownerID string) (bool, error) {
	f := repository.Where(repository.Eq(column, strings.TrimSpace(value)))
	if ownerID != "" {
		f = append(f, repository.Ne("id", ownerID))
	}
	return s.users.Any(ctx, f)
}

func (s *apiErrorService) CheckUserUniqueness(ctx context.Context, entityType, ownerID, email, phone string) (*dto.APIErrorResponse, error) {
	resp := &dto.APIErrorResponse{}

	if email != "" {
		taken, err := s.taken(ctx, "email", email, ownerID)
		if err != nil {
			return nil, err
		}
		if taken {
			s.log.Warn().Str("entity", entityType).Msg("email already taken")
			resp.Add(dto.APIError{
				Group:   entityType,
				Code:    CodeEmailAlreadyTaken,
				Field:   "email",
				Message: s.loc.Localize(ctx, localizer.EmailAlreadyTaken, email),
			})
		}
	}

	if phone != "" {
		taken, err := s.taken(ctx, "phone_number", phone, ownerID)
		if err != nil {
			return nil, err
		}
		if taken {
			s.log.Warn().Str("entity", entityType).Msg("phone number already taken")
			resp.Add(dto.APIError{
				Group:   entityType,
				Code:    CodePhoneNumberAlreadyTaken,
				Field:   "phone_number",
				Message: s.loc.Localize(ctx, localizer.PhoneNumberAlreadyTaken, phone),
			})
		}
	}

	return resp, nil
}
