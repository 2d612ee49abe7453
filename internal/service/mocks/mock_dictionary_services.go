package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"outofschool/internal/dto"
)

// MockDictionaryService mocks the CRUD surface shared by the dictionary services.
type MockDictionaryService[D any] struct {
	mock.Mock
}

func (m *MockDictionaryService[D]) Create(ctx context.Context, d *D) (*D, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*D), args.Error(1)
}

func (m *MockDictionaryService[D]) GetAll(ctx context.Context) ([]D, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]D), args.Error(1)
}

func (m *MockDictionaryService[D]) GetByID(ctx context.Context, id int64) (*D, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*D), args.Error(1)
}

func (m *MockDictionaryService[D]) Update(ctx context.Context, d *D) (*D, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*D), args.Error(1)
}

func (m *MockDictionaryService[D]) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCategoryService = MockDictionaryService[dto.CategoryDTO]

type MockProviderTypeService = MockDictionaryService[dto.ProviderTypeDTO]

type MockCityService struct {
	MockDictionaryService[dto.CityDTO]
}

func (m *MockCityService) GetByName(ctx context.Context, prefix string) ([]dto.CityDTO, error) {
	args := m.Called(ctx, prefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.CityDTO), args.Error(1)
}

type MockInstitutionStatusService struct {
	mock.Mock
}

func (m *MockInstitutionStatusService) Create(ctx context.Context, d *dto.InstitutionStatusDTO) (*dto.InstitutionStatusDTO, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.InstitutionStatusDTO), args.Error(1)
}

func (m *MockInstitutionStatusService) GetAll(ctx context.Context, lang dto.Language) ([]dto.InstitutionStatusDTO, error) {
	args := m.Called(ctx, lang)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.InstitutionStatusDTO), args.Error(1)
}

func (m *MockInstitutionStatusService) GetByID(ctx context.Context, id int64, lang dto.Language) (*dto.InstitutionStatusDTO, error) {
	args := m.Called(ctx, id, lang)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.InstitutionStatusDTO), args.Error(1)
}

func (m *MockInstitutionStatusService) Update(ctx context.Context, d *dto.InstitutionStatusDTO, lang dto.Language) (*dto.InstitutionStatusDTO, error) {
	args := m.Called(ctx, d, lang)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.InstitutionStatusDTO), args.Error(1)
}

func (m *MockInstitutionStatusService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
