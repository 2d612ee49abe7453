package service

import (
	"context"
	"errors"
	"testing"
	"time"

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

type parentMocks struct {
	parents  *repoMocks.MockEntityRepository[uuid.UUID, model.Parent]
	users    *repoMocks.MockEntityRepository[string, model.User]
	blockLog *repoMocks.MockEntityRepository[int64, model.ParentBlockedByAdminLog]
	changes  *repoMocks.MockEntityRepository[int64, model.ChangesLog]
}

func newParentMocks() parentMocks {
	return parentMocks{
		parents:  new(repoMocks.MockEntityRepository[uuid.UUID, model.Parent]),
		users:    new(repoMocks.MockEntityRepository[string, model.User]),
		blockLog: new(repoMocks.MockEntityRepository[int64, model.ParentBlockedByAdminLog]),
		changes:  new(repoMocks.MockEntityRepository[int64, model.ChangesLog]),
	}
}

func (m parentMocks) service() ParentService {
	log := zerolog.Nop()
	return NewParentService(
		m.parents,
		m.users,
		NewParentBlockedByAdminLogService(m.blockLog, log),
		NewChangesLogService(m.changes, NewValueProjector(), map[string][]string{
			"Parent": {"Gender", "DateOfBirth"},
		}, log),
		testLoc,
		log,
	)
}

func (m parentMocks) assert(t *testing.T) {
	m.parents.AssertExpectations(t)
	m.users.AssertExpectations(t)
	m.blockLog.AssertExpectations(t)
	m.changes.AssertExpectations(t)
}

func gender(g model.Gender) *model.Gender { return &g }

func TestParentService_Create(t *testing.T) {
	ctx := context.Background()
	byUser := repository.Where(repository.Eq("user_id", "user-1"))

	tests := []struct {
		name       string
		userID     string
		in         *dto.ParentCreateDTO
		setupMocks func(m parentMocks)
		wantKind   error
	}{
		{
			name:   "happy path",
			userID: "user-1",
			in:     &dto.ParentCreateDTO{PhoneNumber: "+380501112233", Gender: gender(model.GenderFemale)},
			setupMocks: func(m parentMocks) {
				m.users.On("GetByID", ctx, "user-1").Return(&model.User{ID: "user-1", FirstName: "Olha"}, nil)
				m.parents.On("Any", ctx, byUser).Return(false, nil)
				m.parents.On("Create", ctx, mock.MatchedBy(func(p *model.Parent) bool {
					return p.ID != uuid.Nil && p.UserID == "user-1" && *p.Gender == model.GenderFemale
				})).Return(func() *model.Parent {
					return &model.Parent{ID: uuid.New(), UserID: "user-1", Gender: gender(model.GenderFemale)}
				}(), nil)
				m.users.On("Update", ctx, mock.MatchedBy(func(u *model.User) bool {
					return u.IsRegistered && u.PhoneNumber == "+380501112233"
				})).Return(&model.User{ID: "user-1", FirstName: "Olha", PhoneNumber: "+380501112233", IsRegistered: true}, nil)
			},
		},
		{
			name:       "empty user id",
			userID:     "",
			in:         &dto.ParentCreateDTO{},
			setupMocks: func(m parentMocks) {},
			wantKind:   jerrors.NotValid,
		},
		{
			name:   "user does not exist",
			userID: "user-1",
			in:     &dto.ParentCreateDTO{},
			setupMocks: func(m parentMocks) {
				m.users.On("GetByID", ctx, "user-1").Return(nil, jerrors.NotFoundf("users user-1"))
			},
			wantKind: jerrors.NotFound,
		},
		{
			name:   "parent already exists",
			userID: "user-1",
			in:     &dto.ParentCreateDTO{},
			setupMocks: func(m parentMocks) {
				m.users.On("GetByID", ctx, "user-1").Return(&model.User{ID: "user-1"}, nil)
				m.parents.On("Any", ctx, byUser).Return(true, nil)
			},
			wantKind: jerrors.AlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newParentMocks()
			tt.setupMocks(m)

			got, err := m.service().Create(ctx, tt.userID, tt.in)

			if tt.wantKind != nil {
				assert.True(t, jerrors.Is(err, tt.wantKind), err)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "user-1", got.UserID)
				assert.Equal(t, "Olha", got.FirstName)
				assert.Equal(t, "+380501112233", got.PhoneNumber)
			}
			m.assert(t)
		})
	}
}

func TestParentService_GetByUserID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	byUser := repository.Where(repository.Eq("user_id", "user-1"))

	t.Run("found", func(t *testing.T) {
		m := newParentMocks()
		m.parents.On("GetByFilter", ctx, byUser).Return([]model.Parent{{ID: id, UserID: "user-1"}}, nil)
		m.users.On("GetByID", ctx, "user-1").Return(&model.User{ID: "user-1", Email: "p@example.com"}, nil)

		got, err := m.service().GetByUserID(ctx, "user-1")

		require.NoError(t, err)
		assert.Equal(t, id, got.ID)
		assert.Equal(t, "p@example.com", got.Email)
		m.assert(t)
	})

	t.Run("missing", func(t *testing.T) {
		m := newParentMocks()
		m.parents.On("GetByFilter", ctx, byUser).Return([]model.Parent{}, nil)

		got, err := m.service().GetByUserID(ctx, "user-1")

		assert.Nil(t, got)
		assert.True(t, jerrors.Is(err, jerrors.NotFound))
		m.assert(t)
	})
}

func TestParentService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	oldDOB := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
	newDOB := time.Date(1991, 2, 3, 0, 0, 0, 0, time.UTC)
	byUser := repository.Where(repository.Eq("user_id", "user-1"))

	t.Run("missing gender", func(t *testing.T) {
		m := newParentMocks()
		got, err := m.service().Update(ctx, &dto.ShortUserDTO{ID: "user-1", DateOfBirth: &newDOB})
		assert.Nil(t, got)
		assert.True(t, jerrors.Is(err, jerrors.NotValid))
		m.assert(t)
	})

	t.Run("failed update logs nothing", func(t *testing.T) {
		m := newParentMocks()
		m.parents.On("GetByFilter", ctx, byUser).
			Return([]model.Parent{{ID: id, UserID: "user-1", Gender: gender(model.GenderMale), DateOfBirth: &oldDOB}}, nil)
		m.users.On("GetByID", ctx, "user-1").Return(&model.User{ID: "user-1"}, nil)
		m.parents.On("Update", ctx, mock.AnythingOfType("*model.Parent")).
			Return(nil, jerrors.NotFoundf("parents"))

		got, err := m.service().Update(ctx, &dto.ShortUserDTO{
			ID:          "user-1",
			Gender:      gender(model.GenderFemale),
			DateOfBirth: &newDOB,
		})

		assert.Nil(t, got)
		assert.True(t, jerrors.Is(err, jerrors.NotFound))
		m.changes.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		m.assert(t)
	})

	t.Run("changes are logged", func(t *testing.T) {
		m := newParentMocks()
		m.parents.On("GetByFilter", ctx, byUser).
			Return([]model.Parent{{ID: id, UserID: "user-1", Gender: gender(model.GenderMale), DateOfBirth: &oldDOB}}, nil)
		m.users.On("GetByID", ctx, "user-1").Return(&model.User{ID: "user-1", FirstName: "Old"}, nil)
		m.changes.On("Create", ctx, mock.MatchedBy(func(c *model.ChangesLog) bool {
			return c.EntityType == "Parent" && c.PropertyName == "Gender" &&
				c.OldValue == "Male" && c.NewValue == "Female" && c.UserID == "user-1"
		})).Return(&model.ChangesLog{ID: 1}, nil).Once()
		m.changes.On("Create", ctx, mock.MatchedBy(func(c *model.ChangesLog) bool {
			return c.PropertyName == "DateOfBirth" &&
				c.OldValue == "1990-01-01 00:00:00" && c.NewValue == "1991-02-03 00:00:00"
		})).Return(&model.ChangesLog{ID: 2}, nil).Once()
		m.parents.On("Update", ctx, mock.MatchedBy(func(p *model.Parent) bool {
			return *p.Gender == model.GenderFemale && p.DateOfBirth.Equal(newDOB)
		})).Return(&model.Parent{ID: id, UserID: "user-1", Gender: gender(model.GenderFemale), DateOfBirth: &newDOB}, nil)
		m.users.On("Update", ctx, mock.MatchedBy(func(u *model.User) bool {
			return u.FirstName == "New" && u.LastName == "Parent"
		})).Return(&model.User{ID: "user-1", FirstName: "New", LastName: "Parent"}, nil)

		got, err := m.service().Update(ctx, &dto.ShortUserDTO{
			ID:          "user-1",
			FirstName:   "New",
			LastName:    "Parent",
			Gender:      gender(model.GenderFemale),
			DateOfBirth: &newDOB,
		})

		require.NoError(t, err)
		assert.Equal(t, "New", got.FirstName)
		assert.Equal(t, model.GenderFemale, *got.Gender)
		m.assert(t)
	})
}

func TestParentService_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("soft deletes parent and user", func(t *testing.T) {
		m := newParentMocks()
		m.parents.On("GetByID", ctx, id).Return(&model.Parent{ID: id, UserID: "user-1"}, nil)
		m.parents.On("Delete", ctx, id).Return(nil)
		m.users.On("Delete", ctx, "user-1").Return(nil)

		require.NoError(t, m.service().Delete(ctx, id))
		m.assert(t)
	})

	t.Run("missing parent", func(t *testing.T) {
		m := newParentMocks()
		m.parents.On("GetByID", ctx, id).Return(nil, jerrors.NotFoundf("parents %s", id))

		err := m.service().Delete(ctx, id)

		assert.True(t, jerrors.Is(err, jerrors.NotFound))
		m.assert(t)
	})

	t.Run("nil id", func(t *testing.T) {
		m := newParentMocks()
		assert.ErrorIs(t, m.service().Delete(ctx, uuid.Nil), ErrIDRequired)
	})
}

func TestParentService_BlockUnblock(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	tests := []struct {
		name       string
		in         *dto.BlockUnblockParentDTO
		setupMocks func(m parentMocks)
		wantErr    bool
	}{
		{
			name: "blocks and logs",
			in:   &dto.BlockUnblockParentDTO{ParentID: id, IsBlocked: true, Reason: "spam"},
			setupMocks: func(m parentMocks) {
				m.parents.On("GetByID", ctx, id).Return(&model.Parent{ID: id, UserID: "user-1"}, nil)
				m.users.On("GetByID", ctx, "user-1").Return(&model.User{ID: "user-1"}, nil)
				m.users.On("Update", ctx, mock.MatchedBy(func(u *model.User) bool { return u.IsBlocked })).
					Return(&model.User{ID: "user-1", IsBlocked: true}, nil)
				m.blockLog.On("Create", ctx, mock.MatchedBy(func(l *model.ParentBlockedByAdminLog) bool {
					return l.ParentID == id && l.UserID == "admin" && l.Reason == "spam" && l.IsBlocked &&
						!l.OperationDate.IsZero()
				})).Return(&model.ParentBlockedByAdminLog{ID: 1}, nil)
			},
		},
		{
			name: "missing parent is a no-op",
			in:   &dto.BlockUnblockParentDTO{ParentID: id, IsBlocked: true},
			setupMocks: func(m parentMocks) {
				m.parents.On("GetByID", ctx, id).Return(nil, jerrors.NotFoundf("parents"))
			},
		},
		{
			name: "unchanged state is a no-op",
			in:   &dto.BlockUnblockParentDTO{ParentID: id, IsBlocked: false},
			setupMocks: func(m parentMocks) {
				m.parents.On("GetByID", ctx, id).Return(&model.Parent{ID: id, UserID: "user-1"}, nil)
				m.users.On("GetByID", ctx, "user-1").Return(&model.User{ID: "user-1"}, nil)
			},
		},
		{
			name: "log failure",
			in:   &dto.BlockUnblockParentDTO{ParentID: id, IsBlocked: false},
			setupMocks: func(m parentMocks) {
				m.parents.On("GetByID", ctx, id).Return(&model.Parent{ID: id, UserID: "user-1"}, nil)
				m.users.On("GetByID", ctx, "user-1").Return(&model.User{ID: "user-1", IsBlocked: true}, nil)
				m.users.On("Update", ctx, mock.Anything).Return(&model.User{ID: "user-1"}, nil)
				m.blockLog.On("Create", ctx, mock.Anything).Return(nil, errors.New("db fail"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newParentMocks()
			tt.setupMocks(m)

			err := m.service().BlockUnblock(ctx, "admin", tt.in)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			m.assert(t)
		})
	}
}
