package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/juju/errors"
	"github.com/rs/zerolog"

	"outofschool/internal/dto"
	"outofschool/internal/mapper"
	"outofschool/internal/model"
	"outofschool/internal/repository"
)

// OperationWithObjectService logs background operations performed on objects.
type OperationWithObjectService interface {
	// Create assigns a new id. A missing event time defaults to now.
	Create(ctx context.Context, d *dto.OperationWithObjectDTO) (*dto.OperationWithObjectDTO, error)
	// Delete is a no-op when id does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
	GetAll(ctx context.Context, f dto.OperationWithObjectFilter) ([]dto.OperationWithObjectDTO, error)
	IsExists(ctx context.Context, f dto.OperationWithObjectFilter) (bool, error)
}

type operationWithObjectService struct {
	repo repository.EntityRepository[uuid.UUID, model.OperationWithObject]
	log  zerolog.Logger
}

func NewOperationWithObjectService(repo repository.EntityRepository[uuid.UUID, model.OperationWithObject], log zerolog.Logger) OperationWithObjectService {
	return &operationWithObjectService{repo: repo, log: log}
}

func (s *operationWithObjectService) Create(ctx context.Context, d *dto.OperationWithObjectDTO) (*dto.OperationWithObjectDTO, error) {
	if d == nil {
		return nil, ErrNilDTO
	}
	if d.OperationType == "" {
		return nil, errors.NotValidf("empty operation type")
	}

	op := mapper.OperationWithObjectToModel(*d)
	op.ID = uuid.New()
	if op.EventDateTime.IsZero() {
		op.EventDateTime = time.Now().UTC()
	}

	created, err := s.repo.Create(ctx, &op)
	if err != nil {
		return nil, err
	}
	s.log.Info().
		Str("id", created.ID.String()).
		Str("operation_type", string(created.OperationType)).
		Msg("operation created")
	out := mapper.OperationWithObjectToDTO(*created)
	return &out, nil
}

func (s *operationWithObjectService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error().Err(err).Str("id", id.String()).Msg("operation delete failed")
		return err
	}
	return nil
}

func (s *operationWithObjectService) GetAll(ctx context.Context, f dto.OperationWithObjectFilter) ([]dto.OperationWithObjectDTO, error) {
	cond, err := operationFilter(f)
	if err != nil {
		return nil, err
	}
	items, err := s.repo.GetByFilter(ctx, cond)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int("count", len(items)).Msg("operations received")
	return mapper.Slice(items, mapper.OperationWithObjectToDTO), nil
}

func (s *operationWithObjectService) IsExists(ctx context.Context, f dto.OperationWithObjectFilter) (bool, error) {
	cond, err := operationFilter(f)
	if err != nil {
		return false, err
	}
	return s.repo.Any(ctx, cond)
}

// operationFilter requires the operation type; every other field narrows only when set.
func operationFilter(f dto.OperationWithObjectFilter) (repository.Filter, error) {
	if f.OperationType == "" {
		return nil, errors.NotValidf("empty operation type")
	}
	cond := repository.Where(repository.Eq("operation_type", f.OperationType))
	if f.EntityID != nil {
		cond = append(cond, repository.Eq("entity_id", *f.EntityID))
	}
	if f.EntityType != nil {
		cond = append(cond, repository.Eq("entity_type", *f.EntityType))
	}
	if f.EventDateTime != nil {
		cond = append(cond, repository.Eq("event_date_time", *f.EventDateTime))
	}
	if f.RowSeparator != "" {
		cond = append(cond, repository.Eq("row_separator", f.RowSeparator))
	}
	return cond, nil
}
