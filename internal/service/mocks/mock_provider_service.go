package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"outofschool/internal/dto"
)

type MockProviderService struct {
	mock.Mock
}

// Create expects three return values: provider, api errors, error.
func (m *MockProviderService) Create(ctx context.Context, d *dto.ProviderDTO) (*dto.ProviderDTO, *dto.APIErrorResponse, error) {
	args := m.Called(ctx, d)
	var out *dto.ProviderDTO
	if v := args.Get(0); v != nil {
		out = v.(*dto.ProviderDTO)
	}
	var apiErrs *dto.APIErrorResponse
	if v := args.Get(1); v != nil {
		apiErrs = v.(*dto.APIErrorResponse)
	}
	return out, apiErrs, args.Error(2)
}

func (m *MockProviderService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ProviderDTO, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ProviderDTO), args.Error(1)
}

func (m *MockProviderService) GetAll(ctx context.Context, pq dto.PageQuery) (*dto.ListResult[dto.ProviderDTO], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListResult[dto.ProviderDTO]), args.Error(1)
}

func (m *MockProviderService) Update(ctx context.Context, d *dto.ProviderDTO, userID string) (*dto.ProviderDTO, error) {
	args := m.Called(ctx, d, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ProviderDTO), args.Error(1)
}

func (m *MockProviderService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
