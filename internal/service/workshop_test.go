package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	jerrors "github.com/juju/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"outofschool/internal/dto"
	"outofschool/internal/model"
	"outofschool/internal/repository"
	repoMocks "outofschool/internal/repository/mocks"
)

func TestWorkshopService_Create(t *testing.T) {
	ctx := context.Background()
	providerID := uuid.New()
	in := &dto.WorkshopDTO{Title: "Chess", ProviderID: providerID, CategoryID: 1, MinAge: 6, MaxAge: 12}

	tests := []struct {
		name       string
		setupMocks func(w *repoMocks.MockEntityRepository[uuid.UUID, model.Workshop], p *repoMocks.MockEntityRepository[uuid.UUID, model.Provider])
		wantKind   error
	}{
		{
			name: "copies provider title",
			setupMocks: func(w *repoMocks.MockEntityRepository[uuid.UUID, model.Workshop], p *repoMocks.MockEntityRepository[uuid.UUID, model.Provider]) {
				p.On("GetByID", ctx, providerID).Return(&model.Provider{ID: providerID, FullTitle: "Chess Club"}, nil)
				w.On("Create", ctx, mock.MatchedBy(func(m *model.Workshop) bool {
					return m.ID != uuid.Nil && m.ProviderTitle == "Chess Club" && m.Title == "Chess"
				})).Return(&model.Workshop{ID: uuid.New(), Title: "Chess", ProviderID: providerID, ProviderTitle: "Chess Club"}, nil)
			},
		},
		{
			name: "provider does not exist",
			setupMocks: func(w *repoMocks.MockEntityRepository[uuid.UUID, model.Workshop], p *repoMocks.MockEntityRepository[uuid.UUID, model.Provider]) {
				p.On("GetByID", ctx, providerID).Return(nil, jerrors.NotFoundf("providers"))
			},
			wantKind: jerrors.NotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := new(repoMocks.MockEntityRepository[uuid.UUID, model.Workshop])
			p := new(repoMocks.MockEntityRepository[uuid.UUID, model.Provider])
			tt.setupMocks(w, p)

			got, err := NewWorkshopService(w, p, testLoc, zerolog.Nop()).Create(ctx, in)

			if tt.wantKind != nil {
				assert.True(t, jerrors.Is(err, tt.wantKind), err)
				assert.Contains(t, err.Error(), "Provider with id")
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "Chess Club", got.ProviderTitle)
			}
			w.AssertExpectations(t)
			p.AssertExpectations(t)
		})
	}
}

func TestWorkshopService_GetByProviderID(t *testing.T) {
	ctx := context.Background()
	providerID := uuid.New()
	w := new(repoMocks.MockEntityRepository[uuid.UUID, model.Workshop])
	p := new(repoMocks.MockEntityRepository[uuid.UUID, model.Provider])
	svc := NewWorkshopService(w, p, testLoc, zerolog.Nop())

	w.On("List", ctx, repository.Where(repository.Eq("provider_id", providerID)), repository.PageQuery{Limit: 100, Offset: 20}).
		Return(&repository.PageResult[model.Workshop]{Items: []model.Workshop{{Title: "Chess"}}, Total: 21}, nil)

	res, err := svc.GetByProviderID(ctx, providerID, dto.PageQuery{Limit: 500, Offset: 20})
	require.NoError(t, err)
	assert.Equal(t, 21, res.Total)

	_, err = svc.GetByProviderID(ctx, uuid.Nil, dto.PageQuery{})
	assert.ErrorIs(t, err, ErrIDRequired)

	w.AssertExpectations(t)
}

func TestWorkshopService_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	id, providerID := uuid.New(), uuid.New()
	w := new(repoMocks.MockEntityRepository[uuid.UUID, model.Workshop])
	p := new(repoMocks.MockEntityRepository[uuid.UUID, model.Provider])
	svc := NewWorkshopService(w, p, testLoc, zerolog.Nop())

	w.On("GetByID", ctx, id).Return(&model.Workshop{ID: id, ProviderID: providerID}, nil)
	p.On("GetByID", ctx, providerID).Return(&model.Provider{ID: providerID, FullTitle: "Renamed Club"}, nil)
	w.On("Update", ctx, mock.MatchedBy(func(m *model.Workshop) bool {
		return m.ID == id && m.ProviderTitle == "Renamed Club" && m.Price == 300
	})).Return(&model.Workshop{ID: id, ProviderTitle: "Renamed Club", Price: 300}, nil)
	w.On("Delete", ctx, id).Return(nil)

	got, err := svc.Update(ctx, &dto.WorkshopDTO{ID: id, ProviderID: providerID, Price: 300})
	require.NoError(t, err)
	assert.Equal(t, float64(300), got.Price)

	require.NoError(t, svc.Delete(ctx, id))

	w.AssertExpectations(t)
	p.AssertExpectations(t)
}
