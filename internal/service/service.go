// Package service holds the use cases of the administrative backend.
// Every service validates input, delegates persistence to repositories
// and maps entities to transfer objects. Services keep no shared state.
package service

import (
	"context"

	"github.com/juju/errors"

	"outofschool/internal/dto"
	"outofschool/internal/localizer"
	"outofschool/internal/repository"
)

var (
	ErrIDRequired = errors.NewNotValid(nil, "id is required")
	ErrNilDTO     = errors.NewNotValid(nil, "request body is required")
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// pageQuery clamps transport pagination to sane bounds.
func pageQuery(pq dto.PageQuery) repository.PageQuery {
	limit, offset := pq.Limit, pq.Offset
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return repository.PageQuery{Limit: limit, Offset: offset}
}

// notFound re-labels a repository NotFound with a localized message.
// Other errors pass through untouched.
func notFound(ctx context.Context, err error, loc *localizer.Localizer, entity string, id any) error {
	if errors.Is(err, errors.NotFound) {
		return errors.NewNotFound(err, loc.Localize(ctx, localizer.EntityNotFound, entity, id))
	}
	return err
}
