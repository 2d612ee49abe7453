package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"outofschool/internal/dto"
)

type MockParentService struct {
	mock.Mock
}

func (m *MockParentService) Create(ctx context.Context, userID string, d *dto.ParentCreateDTO) (*dto.ParentDTO, error) {
	args := m.Called(ctx, userID, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ParentDTO), args.Error(1)
}

func (m *MockParentService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ParentDTO, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ParentDTO), args.Error(1)
}

func (m *MockParentService) GetByUserID(ctx context.Context, userID string) (*dto.ParentDTO, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ParentDTO), args.Error(1)
}

func (m *MockParentService) Update(ctx context.Context, d *dto.ShortUserDTO) (*dto.ParentDTO, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ParentDTO), args.Error(1)
}

func (m *MockParentService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockParentService) BlockUnblock(ctx context.Context, adminUserID string, d *dto.BlockUnblockParentDTO) error {
	args := m.Called(ctx, adminUserID, d)
	return args.Error(0)
}
