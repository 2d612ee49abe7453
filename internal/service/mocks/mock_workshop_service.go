package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"outofschool/internal/dto"
)

type MockWorkshopService struct {
	mock.Mock
}

func (m *MockWorkshopService) Create(ctx context.Context, d *dto.WorkshopDTO) (*dto.WorkshopDTO, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.WorkshopDTO), args.Error(1)
}

func (m *MockWorkshopService) GetByID(ctx context.Context, id uuid.UUID) (*dto.WorkshopDTO, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.WorkshopDTO), args.Error(1)
}

func (m *MockWorkshopService) GetByProviderID(ctx context.Context, providerID uuid.UUID, pq dto.PageQuery) (*dto.ListResult[dto.WorkshopDTO], error) {
	args := m.Called(ctx, providerID, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListResult[dto.WorkshopDTO]), args.Error(1)
}

func (m *MockWorkshopService) GetAll(ctx context.Context, pq dto.PageQuery) (*dto.ListResult[dto.WorkshopDTO], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListResult[dto.WorkshopDTO]), args.Error(1)
}

func (m *MockWorkshopService) Update(ctx context.Context, d *dto.WorkshopDTO) (*dto.WorkshopDTO, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.WorkshopDTO), args.Error(1)
}

func (m *MockWorkshopService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
