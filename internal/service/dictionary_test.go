package service

import (
	"context"
	"errors"
	"testing"

	jerrors "github.com/juju/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"outofschool/internal/dto"
	"outofschool/internal/localizer"
	"outofschool/internal/model"
	"outofschool/internal/repository"
	repoMocks "outofschool/internal/repository/mocks"
)

var testLoc = localizer.New(dto.LanguageEN)

func TestCategoryService_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := new(repoMocks.MockEntityRepository[int64, model.Category])
	svc := NewCategoryService(repo, testLoc, zerolog.Nop())

	repo.On("Create", ctx, &model.Category{Title: "Music", Description: "Singing"}).
		Return(&model.Category{ID: 1, Title: "Music", Description: "Singing"}, nil)
	repo.On("Update", ctx, &model.Category{ID: 1, Title: "Music", Description: "Instruments"}).
		Return(&model.Category{ID: 1, Title: "Music", Description: "Instruments"}, nil)
	repo.On("GetByID", ctx, int64(1)).
		Return(&model.Category{ID: 1, Title: "Music", Description: "Instruments"}, nil)
	repo.On("GetAll", ctx).
		Return([]model.Category{{ID: 1, Title: "Music", Description: "Instruments"}}, nil)
	repo.On("Delete", ctx, int64(1)).Return(nil)

	created, err := svc.Create(ctx, &dto.CategoryDTO{Title: "Music", Description: "Singing"})
	require.NoError(t, err)
	assert.Equal(t, &dto.CategoryDTO{ID: 1, Title: "Music", Description: "Singing"}, created)

	created.Description = "Instruments"
	updated, err := svc.Update(ctx, created)
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []dto.CategoryDTO{*got}, all)

	require.NoError(t, svc.Delete(ctx, 1))
	repo.AssertExpectations(t)
}

func TestCategoryService_Errors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		setupMocks func(repo *repoMocks.MockEntityRepository[int64, model.Category])
		call       func(svc CategoryService) error
		wantKind   error
		wantMsg    string
	}{
		{
			name:       "create nil dto",
			setupMocks: func(repo *repoMocks.MockEntityRepository[int64, model.Category]) {},
			call: func(svc CategoryService) error {
				_, err := svc.Create(ctx, nil)
				return err
			},
			wantKind: jerrors.NotValid,
		},
		{
			name: "get missing id",
			setupMocks: func(repo *repoMocks.MockEntityRepository[int64, model.Category]) {
				repo.On("GetByID", ctx, int64(7)).Return(nil, jerrors.NotFoundf("categories 7"))
			},
			call: func(svc CategoryService) error {
				_, err := svc.GetByID(ctx, 7)
				return err
			},
			wantKind: jerrors.NotFound,
			wantMsg:  "Category with id 7 doesn't exist in the system",
		},
		{
			name: "delete missing id does not delete",
			setupMocks: func(repo *repoMocks.MockEntityRepository[int64, model.Category]) {
				repo.On("GetByID", ctx, int64(7)).Return(nil, jerrors.NotFoundf("categories 7"))
			},
			call: func(svc CategoryService) error {
				return svc.Delete(ctx, 7)
			},
			wantKind: jerrors.NotFound,
		},
		{
			name: "update missing id",
			setupMocks: func(repo *repoMocks.MockEntityRepository[int64, model.Category]) {
				repo.On("Update", ctx, mock.Anything).Return(nil, jerrors.NotFoundf("categories 7"))
			},
			call: func(svc CategoryService) error {
				_, err := svc.Update(ctx, &dto.CategoryDTO{ID: 7, Title: "x"})
				return err
			},
			wantKind: jerrors.NotFound,
		},
		{
			name: "repository error passes through",
			setupMocks: func(repo *repoMocks.MockEntityRepository[int64, model.Category]) {
				repo.On("GetAll", ctx).Return(nil, errors.New("db fail"))
			},
			call: func(svc CategoryService) error {
				_, err := svc.GetAll(ctx)
				return err
			},
			wantMsg: "db fail",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(repoMocks.MockEntityRepository[int64, model.Category])
			tt.setupMocks(repo)

			err := tt.call(NewCategoryService(repo, testLoc, zerolog.Nop()))

			require.Error(t, err)
			if tt.wantKind != nil {
				assert.True(t, jerrors.Is(err, tt.wantKind), err)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestCityService_GetByName(t *testing.T) {
	ctx := context.Background()
	repo := new(repoMocks.MockEntityRepository[int64, model.City])
	svc := NewCityService(repo, testLoc, zerolog.Nop())

	repo.On("GetByFilter", ctx, repository.Where(repository.HasPrefix("name", "Ky"))).
		Return([]model.City{{ID: 1, Name: "Kyiv"}}, nil)

	got, err := svc.GetByName(ctx, "Ky")

	require.NoError(t, err)
	assert.Equal(t, []dto.CityDTO{{ID: 1, Name: "Kyiv"}}, got)
	repo.AssertExpectations(t)
}

func TestProviderTypeService_Create(t *testing.T) {
	ctx := context.Background()
	repo := new(repoMocks.MockEntityRepository[int64, model.ProviderType])
	svc := NewProviderTypeService(repo, testLoc, zerolog.Nop())

	repo.On("Create", ctx, &model.ProviderType{Name: "Private"}).
		Return(nil, jerrors.NewAlreadyExists(nil, "provider_types: provider_types_name_key"))

	got, err := svc.Create(ctx, &dto.ProviderTypeDTO{Name: "Private"})

	assert.Nil(t, got)
	assert.True(t, jerrors.Is(err, jerrors.AlreadyExists))
	repo.AssertExpectations(t)
}

func TestInstitutionStatusService_Localization(t *testing.T) {
	ctx := context.Background()
	status := model.InstitutionStatus{ID: 3, Name: "Активний", NameEn: "Active"}

	t.Run("get all and by id", func(t *testing.T) {
		repo := new(repoMocks.MockEntityRepository[int64, model.InstitutionStatus])
		svc := NewInstitutionStatusService(repo, testLoc, zerolog.Nop())
		repo.On("GetAll", ctx).Return([]model.InstitutionStatus{status}, nil)
		repo.On("GetByID", ctx, int64(3)).Return(&status, nil)

		en, err := svc.GetAll(ctx, dto.LanguageEN)
		require.NoError(t, err)
		assert.Equal(t, []dto.InstitutionStatusDTO{{ID: 3, Name: "Active"}}, en)

		ua, err := svc.GetByID(ctx, 3, dto.LanguageUA)
		require.NoError(t, err)
		assert.Equal(t, "Активний", ua.Name)
	})

	t.Run("update touches only requested language", func(t *testing.T) {
		repo := new(repoMocks.MockEntityRepository[int64, model.InstitutionStatus])
		svc := NewInstitutionStatusService(repo, testLoc, zerolog.Nop())
		current := status
		repo.On("GetByID", ctx, int64(3)).Return(&current, nil)
		repo.On("Update", ctx, &model.InstitutionStatus{ID: 3, Name: "Активний", NameEn: "Operating"}).
			Return(&model.InstitutionStatus{ID: 3, Name: "Активний", NameEn: "Operating"}, nil)

		got, err := svc.Update(ctx, &dto.InstitutionStatusDTO{ID: 3, Name: "Operating"}, dto.LanguageEN)

		require.NoError(t, err)
		assert.Equal(t, &dto.InstitutionStatusDTO{ID: 3, Name: "Operating"}, got)
		repo.AssertExpectations(t)
	})

	t.Run("update missing", func(t *testing.T) {
		repo := new(repoMocks.MockEntityRepository[int64, model.InstitutionStatus])
		svc := NewInstitutionStatusService(repo, testLoc, zerolog.Nop())
		repo.On("GetByID", ctx, int64(9)).Return(nil, jerrors.NotFoundf("institution_statuses 9"))

		got, err := svc.Update(ctx, &dto.InstitutionStatusDTO{ID: 9, Name: "x"}, dto.LanguageUA)

		assert.Nil(t, got)
		assert.True(t, jerrors.Is(err, jerrors.NotFound))
		repo.AssertExpectations(t)
	})
}
