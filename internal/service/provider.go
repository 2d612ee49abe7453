package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"outofschool/internal/dto"
	"outofschool/internal/localizer"
	"outofschool/internal/mapper"
	"outofschool/internal/model"
	"outofschool/internal/repository"
)

// ProviderService manages providers.
type ProviderService interface {
	// Create returns a non-empty APIErrorResponse and no provider when the
	// email or phone number is already used by a user or another provider.
	Create(ctx context.Context, d *dto.ProviderDTO) (*dto.ProviderDTO, *dto.APIErrorResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ProviderDTO, error)
	GetAll(ctx context.Context, pq dto.PageQuery) (*dto.ListResult[dto.ProviderDTO], error)
	// Update writes a changes log entry for every tracked property it changes.
	Update(ctx context.Context, d *dto.ProviderDTO, userID string) (*dto.ProviderDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type providerService struct {
	providers repository.EntityRepository[uuid.UUID, model.Provider]
	apiErrors APIErrorService
	changes   ChangesLogService
	loc       *localizer.Localizer
	log       zerolog.Logger
}

func NewProviderService(
	providers repository.EntityRepository[uuid.UUID, model.Provider],
	apiErrors APIErrorService,
	changes ChangesLogService,
	loc *localizer.Localizer,
	log zerolog.Logger,
) ProviderService {
	return &providerService{
		providers: providers,
		apiErrors: apiErrors,
		changes:   changes,
		loc:       loc,
		log:       log,
	}
}

func (s *providerService) Create(ctx context.Context, d *dto.ProviderDTO) (*dto.ProviderDTO, *dto.APIErrorResponse, error) {
	if d == nil {
		return nil, nil, ErrNilDTO
	}
	s.log.Info().Str("user_id", d.UserID).Msg("provider creation started")

	resp, err := s.apiErrors.CheckUserUniqueness(ctx, string(model.EntityTypeProvider), d.UserID, d.Email, d.PhoneNumber)
	if err != nil {
		return nil, nil, err
	}
	if resp == nil {
		resp = &dto.APIErrorResponse{}
	}
	if err := s.checkProviderContacts(ctx, resp, d.Email, d.PhoneNumber); err != nil {
		return nil, nil, err
	}
	if resp.HasErrors() {
		s.log.Warn().Int("api_errors", len(resp.Errors)).Msg("provider creation rejected")
		return nil, resp, nil
	}

	p := mapper.ProviderToModel(*d)
	p.ID = uuid.New()
	p.IsBlocked = false
	if p.Status == "" {
		p.Status = model.ProviderStatusPending
	}

	created, err := s.providers.Create(ctx, &p)
	if err != nil {
		return nil, nil, err
	}
	s.log.Info().Str("provider_id", created.ID.String()).Msg("provider created")
	out := mapper.ProviderToDTO(*created)
	return &out, nil, nil
}

// checkProviderContacts adds collisions with other providers not already
// reported for users.
func (s *providerService) checkProviderContacts(ctx context.Context, resp *dto.APIErrorResponse, email, phone string) error {
	reported := make(map[string]bool, len(resp.Errors))
	for _, e := range resp.Errors {
		reported[e.Code] = true
	}

	checks := []struct {
		code, column, value, key, field string
	}{
		{CodeEmailAlreadyTaken, "email", email, localizer.EmailAlreadyTaken, "email"},
		{CodePhoneNumberAlreadyTaken, "phone_number", phone, localizer.PhoneNumberAlreadyTaken, "phone_number"},
	}
	for _, c := range checks {
		if c.value == "" || reported[c.code] {
			continue
		}
		taken, err := s.providers.Any(ctx, repository.Where(repository.Eq(c.column, c.value)))
		if err != nil {
			return err
		}
		if taken {
			resp.Add(dto.APIError{
				Group:   string(model.EntityTypeProvider),
				Code:    c.code,
				Field:   c.field,
				Message: s.loc.Localize(ctx, c.key, c.value),
			})
		}
	}
	return nil
}

func (s *providerService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ProviderDTO, error) {
	if id == uuid.Nil {
		return nil, ErrIDRequired
	}
	p, err := s.providers.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(ctx, err, s.loc, "Provider", id)
	}
	out := mapper.ProviderToDTO(*p)
	return &out, nil
}

func (s *providerService) GetAll(ctx context.Context, pq dto.PageQuery) (*dto.ListResult[dto.ProviderDTO], error) {
	res, err := s.providers.List(ctx, nil, pageQuery(pq))
	if err != nil {
		return nil, err
	}
	return &dto.ListResult[dto.ProviderDTO]{
		Items: mapper.Slice(res.Items, mapper.ProviderToDTO),
		Total: res.Total,
	}, nil
}

func (s *providerService) Update(ctx context.Context, d *dto.ProviderDTO, userID string) (*dto.ProviderDTO, error) {
	if d == nil {
		return nil, ErrNilDTO
	}
	current, err := s.providers.GetByID(ctx, d.ID)
	if err != nil {
		return nil, notFound(ctx, err, s.loc, "Provider", d.ID)
	}

	next := mapper.ProviderToModel(*d)
	next.IsBlocked = current.IsBlocked
	if next.Status == "" {
		next.Status = current.Status
	}

	updated, err := s.providers.Update(ctx, &next)
	if err != nil {
		return nil, err
	}
	// changes are logged only once the provider row is written
	if _, err := s.changes.AddEntityChanges(ctx, model.EntityTypeProvider, current.ID.String(), *current, next, userID); err != nil {
		return nil, err
	}
	s.log.Info().Str("provider_id", updated.ID.String()).Msg("provider updated")
	out := mapper.ProviderToDTO(*updated)
	return &out, nil
}

func (s *providerService) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrIDRequired
	}
	if _, err := s.providers.GetByID(ctx, id); err != nil {
		return notFound(ctx, err, s.loc, "Provider", id)
	}
	if err := s.providers.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("provider_id", id.String()).Msg("provider deleted")
	return nil
}
