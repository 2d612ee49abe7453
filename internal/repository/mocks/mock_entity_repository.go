package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"outofschool/internal/repository"
)

type MockEntityRepository[K comparable, T any] struct {
	mock.Mock
}

func (m *MockEntityRepository[K, T]) Create(ctx context.Context, e *T) (*T, error) {
	args := m.Called(ctx, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockEntityRepository[K, T]) GetByID(ctx context.Context, id K) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockEntityRepository[K, T]) GetAll(ctx context.Context) ([]T, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockEntityRepository[K, T]) GetByFilter(ctx context.Context, f repository.Filter) ([]T, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockEntityRepository[K, T]) List(ctx context.Context, f repository.Filter, pq repository.PageQuery) (*repository.PageResult[T], error) {
	args := m.Called(ctx, f, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[T]), args.Error(1)
}

func (m *MockEntityRepository[K, T]) Update(ctx context.Context, e *T) (*T, error) {
	args := m.Called(ctx, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockEntityRepository[K, T]) Delete(ctx context.Context, id K) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEntityRepository[K, T]) Count(ctx context.Context, f repository.Filter) (int, error) {
	args := m.Called(ctx, f)
	return args.Int(0), args.Error(1)
}

func (m *MockEntityRepository[K, T]) Any(ctx context.Context, f repository.Filter) (bool, error) {
	args := m.Called(ctx, f)
	return args.Bool(0), args.Error(1)
}
