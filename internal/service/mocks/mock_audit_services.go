package mocks

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"outofschool/internal/dto"
	"outofschool/internal/model"
)

type MockBlockedProviderParentService struct {
	mock.Mock
}

func (m *MockBlockedProviderParentService) Block(ctx context.Context, d *dto.BlockedProviderParentBlockDTO, userID string) (*dto.BlockedProviderParentDTO, error) {
	args := m.Called(ctx, d, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BlockedProviderParentDTO), args.Error(1)
}

func (m *MockBlockedProviderParentService) Unblock(ctx context.Context, d *dto.BlockedProviderParentUnblockDTO, userID string) (*dto.BlockedProviderParentDTO, error) {
	args := m.Called(ctx, d, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BlockedProviderParentDTO), args.Error(1)
}

func (m *MockBlockedProviderParentService) GetBlock(ctx context.Context, parentID, providerID uuid.UUID) (*dto.BlockedProviderParentDTO, error) {
	args := m.Called(ctx, parentID, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BlockedProviderParentDTO), args.Error(1)
}

func (m *MockBlockedProviderParentService) IsBlocked(ctx context.Context, parentID, providerID uuid.UUID) (bool, error) {
	args := m.Called(ctx, parentID, providerID)
	return args.Bool(0), args.Error(1)
}

type MockOperationWithObjectService struct {
	mock.Mock
}

func (m *MockOperationWithObjectService) Create(ctx context.Context, d *dto.OperationWithObjectDTO) (*dto.OperationWithObjectDTO, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.OperationWithObjectDTO), args.Error(1)
}

func (m *MockOperationWithObjectService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOperationWithObjectService) GetAll(ctx context.Context, f dto.OperationWithObjectFilter) ([]dto.OperationWithObjectDTO, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.OperationWithObjectDTO), args.Error(1)
}

func (m *MockOperationWithObjectService) IsExists(ctx context.Context, f dto.OperationWithObjectFilter) (bool, error) {
	args := m.Called(ctx, f)
	return args.Bool(0), args.Error(1)
}

type MockChangesLogService struct {
	mock.Mock
}

func (m *MockChangesLogService) AddEntityChanges(ctx context.Context, entityType model.EntityType, entityID string, before, after any, userID string) (int, error) {
	args := m.Called(ctx, entityType, entityID, before, after, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockChangesLogService) GetChanges(ctx context.Context, f dto.ChangesLogFilter) (*dto.ListResult[dto.ChangesLogDTO], error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListResult[dto.ChangesLogDTO]), args.Error(1)
}

type MockBackupTrackerService struct {
	mock.Mock
}

func (m *MockBackupTrackerService) Create(ctx context.Context, d *dto.BackupOperationDTO) (*dto.BackupOperationDTO, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BackupOperationDTO), args.Error(1)
}

func (m *MockBackupTrackerService) GetByID(ctx context.Context, id int64) (*dto.BackupOperationDTO, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BackupOperationDTO), args.Error(1)
}

func (m *MockBackupTrackerService) GetAll(ctx context.Context) ([]dto.BackupOperationDTO, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.BackupOperationDTO), args.Error(1)
}

func (m *MockBackupTrackerService) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockBackupService struct {
	mock.Mock
}

func (m *MockBackupService) BackupTable(ctx context.Context, table string) (*dto.BackupOperationDTO, error) {
	args := m.Called(ctx, table)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BackupOperationDTO), args.Error(1)
}

func (m *MockBackupService) Tables() []string {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

func (m *MockBackupService) Open(ctx context.Context, id int64) (io.ReadCloser, *dto.BackupOperationDTO, error) {
	args := m.Called(ctx, id)
	var rc io.ReadCloser
	if v := args.Get(0); v != nil {
		rc = v.(io.ReadCloser)
	}
	var op *dto.BackupOperationDTO
	if v := args.Get(1); v != nil {
		op = v.(*dto.BackupOperationDTO)
	}
	return rc, op, args.Error(2)
}

func (m *MockBackupService) DownloadURL(ctx context.Context, id int64, expiry time.Duration) (string, error) {
	args := m.Called(ctx, id, expiry)
	return args.String(0), args.Error(1)
}
