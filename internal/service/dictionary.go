package service

import (
	"context"

	"github.com/rs/zerolog"

	"outofschool/internal/dto"
	"outofschool/internal/localizer"
	"outofschool/internal/mapper"
	"outofschool/internal/model"
	"outofschool/internal/repository"
)

// dictionary implements CRUD over an int64-keyed reference table.
type dictionary[T any, D any] struct {
	entity  string
	repo    repository.EntityRepository[int64, T]
	toDTO   func(T) D
	toModel func(D) T
	loc     *localizer.Localizer
	log     zerolog.Logger
}

func (s *dictionary[T, D]) Create(ctx context.Context, d *D) (*D, error) {
	if d == nil {
		return nil, ErrNilDTO
	}
	s.log.Info().Str("entity", s.entity).Msg("create started")

	e := s.toModel(*d)
	created, err := s.repo.Create(ctx, &e)
	if err != nil {
		s.log.Error().Err(err).Str("entity", s.entity).Msg("create failed")
		return nil, err
	}
	out := s.toDTO(*created)
	return &out, nil
}

func (s *dictionary[T, D]) GetAll(ctx context.Context) ([]D, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("entity", s.entity).Int("count", len(items)).Msg("records received")
	return mapper.Slice(items, s.toDTO), nil
}

func (s *dictionary[T, D]) GetByID(ctx context.Context, id int64) (*D, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(ctx, err, s.loc, s.entity, id)
	}
	out := s.toDTO(*e)
	return &out, nil
}

func (s *dictionary[T, D]) Update(ctx context.Context, d *D) (*D, error) {
	if d == nil {
		return nil, ErrNilDTO
	}
	e := s.toModel(*d)
	updated, err := s.repo.Update(ctx, &e)
	if err != nil {
		s.log.Error().Err(err).Str("entity", s.entity).Msg("update failed")
		return nil, err
	}
	out := s.toDTO(*updated)
	return &out, nil
}

func (s *dictionary[T, D]) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return notFound(ctx, err, s.loc, s.entity, id)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("entity", s.entity).Int64("id", id).Msg("deleted")
	return nil
}

// CategoryService manages workshop categories.
type CategoryService interface {
	Create(ctx context.Context, d *dto.CategoryDTO) (*dto.CategoryDTO, error)
	GetAll(ctx context.Context) ([]dto.CategoryDTO, error)
	GetByID(ctx context.Context, id int64) (*dto.CategoryDTO, error)
	Update(ctx context.Context, d *dto.CategoryDTO) (*dto.CategoryDTO, error)
	Delete(ctx context.Context, id int64) error
}

func NewCategoryService(repo repository.EntityRepository[int64, model.Category], loc *localizer.Localizer, log zerolog.Logger) CategoryService {
	return &dictionary[model.Category, dto.CategoryDTO]{
		entity:  "Category",
		repo:    repo,
		toDTO:   mapper.CategoryToDTO,
		toModel: mapper.CategoryToModel,
		loc:     loc,
		log:     log,
	}
}

// ProviderTypeService manages provider types.
type ProviderTypeService interface {
	Create(ctx context.Context, d *dto.ProviderTypeDTO) (*dto.ProviderTypeDTO, error)
	GetAll(ctx context.Context) ([]dto.ProviderTypeDTO, error)
	GetByID(ctx context.Context, id int64) (*dto.ProviderTypeDTO, error)
	Update(ctx context.Context, d *dto.ProviderTypeDTO) (*dto.ProviderTypeDTO, error)
	Delete(ctx context.Context, id int64) error
}

func NewProviderTypeService(repo repository.EntityRepository[int64, model.ProviderType], loc *localizer.Localizer, log zerolog.Logger) ProviderTypeService {
	return &dictionary[model.ProviderType, dto.ProviderTypeDTO]{
		entity:  "ProviderType",
		repo:    repo,
		toDTO:   mapper.ProviderTypeToDTO,
		toModel: mapper.ProviderTypeToModel,
		loc:     loc,
		log:     log,
	}
}

// CityService manages the city dictionary.
type CityService interface {
	Create(ctx context.Context, d *dto.CityDTO) (*dto.CityDTO, error)
	GetAll(ctx context.Context) ([]dto.CityDTO, error)
	GetByID(ctx context.Context, id int64) (*dto.CityDTO, error)
	// GetByName returns cities whose name starts with prefix.
	GetByName(ctx context.Context, prefix string) ([]dto.CityDTO, error)
	Update(ctx context.Context, d *dto.CityDTO) (*dto.CityDTO, error)
	Delete(ctx context.Context, id int64) error
}

type cityService struct {
	*dictionary[model.City, dto.CityDTO]
}

func NewCityService(repo repository.EntityRepository[int64, model.City], loc *localizer.Localizer, log zerolog.Logger) CityService {
	return &cityService{&dictionary[model.City, dto.CityDTO]{
		entity:  "City",
		repo:    repo,
		toDTO:   mapper.CityToDTO,
		toModel: mapper.CityToModel,
		loc:     loc,
		log:     log,
	}}
}

func (s *cityService) GetByName(ctx context.Context, prefix string) ([]dto.CityDTO, error) {
	items, err := s.repo.GetByFilter(ctx, repository.Where(repository.HasPrefix("name", prefix)))
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("prefix", prefix).Int("count", len(items)).Msg("cities found by name")
	return mapper.Slice(items, mapper.CityToDTO), nil
}

// InstitutionStatusService manages institution statuses in two languages.
type InstitutionStatusService interface {
	Create(ctx context.Context, d *dto.InstitutionStatusDTO) (*dto.InstitutionStatusDTO, error)
	GetAll(ctx context.Context, lang dto.Language) ([]dto.InstitutionStatusDTO, error)
	GetByID(ctx context.Context, id int64, lang dto.Language) (*dto.InstitutionStatusDTO, error)
	// Update rewrites only the name for lang.
	Update(ctx context.Context, d *dto.InstitutionStatusDTO, lang dto.Language) (*dto.InstitutionStatusDTO, error)
	Delete(ctx context.Context, id int64) error
}

type institutionStatusService struct {
	base *dictionary[model.InstitutionStatus, dto.InstitutionStatusDTO]
}

func NewInstitutionStatusService(repo repository.EntityRepository[int64, model.InstitutionStatus], loc *localizer.Localizer, log zerolog.Logger) InstitutionStatusService {
	return &institutionStatusService{base: &dictionary[model.InstitutionStatus, dto.InstitutionStatusDTO]{
		entity: "InstitutionStatus",
		repo:   repo,
		toDTO: func(s model.InstitutionStatus) dto.InstitutionStatusDTO {
			return mapper.InstitutionStatusToDTO(s, dto.LanguageUA)
		},
		toModel: mapper.InstitutionStatusToModel,
		loc:     loc,
		log:     log,
	}}
}

func (s *institutionStatusService) Create(ctx context.Context, d *dto.InstitutionStatusDTO) (*dto.InstitutionStatusDTO, error) {
	return s.base.Create(ctx, d)
}

func (s *institutionStatusService) GetAll(ctx context.Context, lang dto.Language) ([]dto.InstitutionStatusDTO, error) {
	items, err := s.base.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	s.base.log.Info().Str("lang", string(lang)).Int("count", len(items)).Msg("institution statuses received")
	out := make([]dto.InstitutionStatusDTO, 0, len(items))
	for _, it := range items {
		out = append(out, mapper.InstitutionStatusToDTO(it, lang))
	}
	return out, nil
}

func (s *institutionStatusService) GetByID(ctx context.Context, id int64, lang dto.Language) (*dto.InstitutionStatusDTO, error) {
	e, err := s.base.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(ctx, err, s.base.loc, s.base.entity, id)
	}
	out := mapper.InstitutionStatusToDTO(*e, lang)
	return &out, nil
}

func (s *institutionStatusService) Update(ctx context.Context, d *dto.InstitutionStatusDTO, lang dto.Language) (*dto.InstitutionStatusDTO, error) {
	if d == nil {
		return nil, ErrNilDTO
	}
	current, err := s.base.repo.GetByID(ctx, d.ID)
	if err != nil {
		return nil, notFound(ctx, err, s.base.loc, s.base.entity, d.ID)
	}
	if lang == dto.LanguageEN {
		current.NameEn = d.Name
	} else {
		current.Name = d.Name
	}

	updated, err := s.base.repo.Update(ctx, current)
	if err != nil {
		return nil, err
	}
	s.base.log.Info().Int64("id", updated.ID).Str("lang", string(lang)).Msg("institution status updated")
	out := mapper.InstitutionStatusToDTO(*updated, lang)
	return &out, nil
}

func (s *institutionStatusService) Delete(ctx context.Context, id int64) error {
	return s.base.Delete(ctx, id)
}
