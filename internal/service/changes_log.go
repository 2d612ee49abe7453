package service

import (
	"context"
	"reflect"
	"time"

	"github.com/juju/errors"
	"github.com/rs/zerolog"

	"outofschool/internal/dto"
	"outofschool/internal/mapper"
	"outofschool/internal/model"
	"outofschool/internal/repository"
)

// MaxChangesLogValueLength bounds old and new values, in runes.
const MaxChangesLogValueLength = 500

// ChangesLogService records changes of tracked entity properties.
type ChangesLogService interface {
	// AddEntityChanges compares before and after, which must be values of (or
	// pointers to) the same struct type, and writes one row per changed tracked
	// property. It returns the number of rows written.
	AddEntityChanges(ctx context.Context, entityType model.EntityType, entityID string, before, after any, userID string) (int, error)
	GetChanges(ctx context.Context, f dto.ChangesLogFilter) (*dto.ListResult[dto.ChangesLogDTO], error)
}

type changesLogService struct {
	repo      repository.EntityRepository[int64, model.ChangesLog]
	projector ValueProjector
	tracked   map[string][]string
	log       zerolog.Logger
}

// NewChangesLogService creates the service. tracked maps an entity type to
// the struct field names whose changes are logged.
func NewChangesLogService(
	repo repository.EntityRepository[int64, model.ChangesLog],
	projector ValueProjector,
	tracked map[string][]string,
	log zerolog.Logger,
) ChangesLogService {
	return &changesLogService{repo: repo, projector: projector, tracked: tracked, log: log}
}

func (s *changesLogService) AddEntityChanges(ctx context.Context, entityType model.EntityType, entityID string, before, after any, userID string) (int, error) {
	props, ok := s.tracked[string(entityType)]
	if !ok || len(props) == 0 {
		return 0, nil
	}

	bv, av := structValue(before), structValue(after)
	if !bv.IsValid() || !av.IsValid() {
		return 0, errors.NotValidf("changes of %s %s: nil or non-struct value", entityType, entityID)
	}
	if bv.Type() != av.Type() {
		return 0, errors.NotValidf("changes of %s %s: %s vs %s", entityType, entityID, bv.Type(), av.Type())
	}

	now := time.Now().UTC()
	written := 0
	for _, name := range props {
		bf, af := bv.FieldByName(name), av.FieldByName(name)
		if !bf.IsValid() || !bf.CanInterface() {
			s.log.Warn().Str("entity", string(entityType)).Str("property", name).Msg("tracked property not found")
			continue
		}

		oldValue := s.projector.ProjectValue(bf.Interface())
		newValue := s.projector.ProjectValue(af.Interface())
		if oldValue == newValue {
			continue
		}

		_, err := s.repo.Create(ctx, &model.ChangesLog{
			EntityType:   string(entityType),
			EntityID:     entityID,
			PropertyName: name,
			OldValue:     truncateRunes(oldValue, MaxChangesLogValueLength),
			NewValue:     truncateRunes(newValue, MaxChangesLogValueLength),
			UpdatedDate:  now,
			UserID:       userID,
		})
		if err != nil {
			return written, err
		}
		written++
	}

	if written > 0 {
		s.log.Info().Str("entity", string(entityType)).Str("entity_id", entityID).Int("rows", written).Msg("changes logged")
	}
	return written, nil
}

func (s *changesLogService) GetChanges(ctx context.Context, f dto.ChangesLogFilter) (*dto.ListResult[dto.ChangesLogDTO], error) {
	if f.EntityType == "" {
		return nil, errors.NotValidf("empty entity type")
	}
	conds := repository.Where(repository.Eq("entity_type", f.EntityType))
	if f.EntityID != "" {
		conds = append(conds, repository.Eq("entity_id", f.EntityID))
	}
	if f.PropertyName != "" {
		conds = append(conds, repository.Eq("property_name", f.PropertyName))
	}

	res, err := s.repo.List(ctx, conds, pageQuery(f.PageQuery))
	if err != nil {
		return nil, err
	}
	return &dto.ListResult[dto.ChangesLogDTO]{
		Items: mapper.Slice(res.Items, mapper.ChangesLogToDTO),
		Total: res.Total,
	}, nil
}

func structValue(v any) reflect.Value {
	if v == nil {
		return reflect.Value{}
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return reflect.Value{}
	}
	return rv
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
