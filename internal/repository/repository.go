package repository

import "context"

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres) inside this directory.
// Repositories hold no business logic: strictly persistence operations.

// EntityRepository is the generic persistence contract shared by every entity.
// K is the key type and T the entity model type.
//
// Soft-deleted implementations hide rows marked deleted from every read and
// turn Delete into a flag update.
type EntityRepository[K comparable, T any] interface {
	// Create inserts a new record and returns the stored row (including values set by the DB).
	Create(ctx context.Context, e *T) (*T, error)

	// GetByID returns a record by key. A missing row yields a NotFound error.
	GetByID(ctx context.Context, id K) (*T, error)

	// GetAll returns every record in the default order.
	GetAll(ctx context.Context) ([]T, error)

	// GetByFilter returns every record matching all conditions of f.
	GetByFilter(ctx context.Context, f Filter) ([]T, error)

	// List returns a page of records matching f and the total matching count.
	List(ctx context.Context, f Filter, pq PageQuery) (*PageResult[T], error)

	// Update overwrites all columns of an existing record. A missing row yields a NotFound error.
	Update(ctx context.Context, e *T) (*T, error)

	// Delete removes a record by key. It returns nil if the row did not exist.
	Delete(ctx context.Context, id K) error

	// Count returns the number of records matching f.
	Count(ctx context.Context, f Filter) (int, error)

	// Any reports whether at least one record matches f.
	Any(ctx context.Context, f Filter) (bool, error)
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}
