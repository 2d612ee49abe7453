package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/juju/errors"
	"github.com/rs/zerolog"

	"outofschool/internal/dto"
	"outofschool/internal/localizer"
	"outofschool/internal/mapper"
	"outofschool/internal/model"
	"outofschool/internal/repository"
)

// WorkshopService manages workshops of existing providers.
type WorkshopService interface {
	Create(ctx context.Context, d *dto.WorkshopDTO) (*dto.WorkshopDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.WorkshopDTO, error)
	GetByProviderID(ctx context.Context, providerID uuid.UUID, pq dto.PageQuery) (*dto.ListResult[dto.WorkshopDTO], error)
	GetAll(ctx context.Context, pq dto.PageQuery) (*dto.ListResult[dto.WorkshopDTO], error)
	Update(ctx context.Context, d *dto.WorkshopDTO) (*dto.WorkshopDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type workshopService struct {
	workshops repository.EntityRepository[uuid.UUID, model.Workshop]
	providers repository.EntityRepository[uuid.UUID, model.Provider]
	loc       *localizer.Localizer
	log       zerolog.Logger
}

func NewWorkshopService(
	workshops repository.EntityRepository[uuid.UUID, model.Workshop],
	providers repository.EntityRepository[uuid.UUID, model.Provider],
	loc *localizer.Localizer,
	log zerolog.Logger,
) WorkshopService {
	return &workshopService{workshops: workshops, providers: providers, loc: loc, log: log}
}

func (s *workshopService) Create(ctx context.Context, d *dto.WorkshopDTO) (*dto.WorkshopDTO, error) {
	if d == nil {
		return nil, ErrNilDTO
	}
	s.log.Info().Str("provider_id", d.ProviderID.String()).Msg("workshop creation started")

	provider, err := s.provider(ctx, d.ProviderID)
	if err != nil {
		return nil, err
	}

	w := mapper.WorkshopToModel(*d)
	w.ID = uuid.New()
	w.ProviderTitle = provider.FullTitle

	created, err := s.workshops.Create(ctx, &w)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("workshop_id", created.ID.String()).Msg("workshop created")
	out := mapper.WorkshopToDTO(*created)
	return &out, nil
}

func (s *workshopService) GetByID(ctx context.Context, id uuid.UUID) (*dto.WorkshopDTO, error) {
	if id == uuid.Nil {
		return nil, ErrIDRequired
	}
	w, err := s.workshops.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(ctx, err, s.loc, "Workshop", id)
	}
	out := mapper.WorkshopToDTO(*w)
	return &out, nil
}

func (s *workshopService) GetByProviderID(ctx context.Context, providerID uuid.UUID, pq dto.PageQuery) (*dto.ListResult[dto.WorkshopDTO], error) {
	if providerID == uuid.Nil {
		return nil, ErrIDRequired
	}
	return s.list(ctx, repository.Where(repository.Eq("provider_id", providerID)), pq)
}

func (s *workshopService) GetAll(ctx context.Context, pq dto.PageQuery) (*dto.ListResult[dto.WorkshopDTO], error) {
	return s.list(ctx, nil, pq)
}

func (s *workshopService) Update(ctx context.Context, d *dto.WorkshopDTO) (*dto.WorkshopDTO, error) {
	if d == nil {
		return nil, ErrNilDTO
	}
	if _, err := s.workshops.GetByID(ctx, d.ID); err != nil {
		return nil, notFound(ctx, err, s.loc, "Workshop", d.ID)
	}
	provider, err := s.provider(ctx, d.ProviderID)
	if err != nil {
		return nil, err
	}

	w := mapper.WorkshopToModel(*d)
	w.ProviderTitle = provider.FullTitle

	updated, err := s.workshops.Update(ctx, &w)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("workshop_id", updated.ID.String()).Msg("workshop updated")
	out := mapper.WorkshopToDTO(*updated)
	return &out, nil
}

func (s *workshopService) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrIDRequired
	}
	if _, err := s.workshops.GetByID(ctx, id); err != nil {
		return notFound(ctx, err, s.loc, "Workshop", id)
	}
	if err := s.workshops.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("workshop_id", id.String()).Msg("workshop deleted")
	return nil
}

func (s *workshopService) list(ctx context.Context, f repository.Filter, pq dto.PageQuery) (*dto.ListResult[dto.WorkshopDTO], error) {
	res, err := s.workshops.List(ctx, f, pageQuery(pq))
	if err != nil {
		return nil, err
	}
	return &dto.ListResult[dto.WorkshopDTO]{
		Items: mapper.Slice(res.Items, mapper.WorkshopToDTO),
		Total: res.Total,
	}, nil
}

func (s *workshopService) provider(ctx context.Context, id uuid.UUID) (*model.Provider, error) {
	p, err := s.providers.GetByID(ctx, id)
	if errors.Is(err, errors.NotFound) {
		return nil, errors.NewNotFound(err, s.loc.Localize(ctx, localizer.ProviderNotFound, id))
	}
	return p, err
}
