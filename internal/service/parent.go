package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/juju/errors"
	"github.com/rs/zerolog"

	"outofschool/internal/dto"
	"outofschool/internal/localizer"
	"outofschool/internal/mapper"
	"outofschool/internal/model"
	"outofschool/internal/repository"
)

// ParentService manages parent profiles and their user accounts.
type ParentService interface {
	// Create turns the registered user userID into a parent. A user has at most one parent profile.
	Create(ctx context.Context, userID string, d *dto.ParentCreateDTO) (*dto.ParentDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ParentDTO, error)
	GetByUserID(ctx context.Context, userID string) (*dto.ParentDTO, error)
	// Update changes the personal data of the parent owned by d.ID.
	Update(ctx context.Context, d *dto.ShortUserDTO) (*dto.ParentDTO, error)
	// Delete soft-deletes the parent together with its user.
	Delete(ctx context.Context, id uuid.UUID) error
	// BlockUnblock sets the blocked flag of the parent's user. A missing parent
	// or an unchanged state is a successful no-op.
	BlockUnblock(ctx context.Context, adminUserID string, d *dto.BlockUnblockParentDTO) error
}

type parentService struct {
	parents  repository.EntityRepository[uuid.UUID, model.Parent]
	users    repository.EntityRepository[string, model.User]
	blockLog ParentBlockedByAdminLogService
	changes  ChangesLogService
	loc      *localizer.Localizer
	log      zerolog.Logger
}

func NewParentService(
	parents repository.EntityRepository[uuid.UUID, model.Parent],
	users repository.EntityRepository[string, model.User],
	blockLog ParentBlockedByAdminLogService,
	changes ChangesLogService,
	loc *localizer.Localizer,
	log zerolog.Logger,
) ParentService {
	return &parentService{
		parents:  parents,
		users:    users,
		blockLog: blockLog,
		changes:  changes,
		loc:      loc,
		log:      log,
	}
}

func (s *parentService) Create(ctx context.Context, userID string, d *dto.ParentCreateDTO) (*dto.ParentDTO, error) {
	if userID == "" {
		return nil, ErrIDRequired
	}
	if d == nil {
		return nil, ErrNilDTO
	}
	s.log.Info().Str("user_id", userID).Msg("parent creation started")

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, s.userNotFound(ctx, err, userID)
	}

	exists, err := s.parents.Any(ctx, repository.Where(repository.Eq("user_id", userID)))
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.NewAlreadyExists(nil, s.loc.Localize(ctx, localizer.ParentAlreadyExists, userID))
	}

	parent, err := s.parents.Create(ctx, &model.Parent{
		ID:          uuid.New(),
		UserID:      userID,
		Gender:      d.Gender,
		DateOfBirth: d.DateOfBirth,
	})
	if err != nil {
		return nil, err
	}

	user.IsRegistered = true
	if d.PhoneNumber != "" {
		user.PhoneNumber = d.PhoneNumber
	}
	user, err = s.users.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("parent_id", parent.ID.String()).Str("user_id", userID).Msg("parent created")
	out := mapper.ParentToDTO(*parent, user)
	return &out, nil
}

func (s *parentService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ParentDTO, error) {
	if id == uuid.Nil {
		return nil, ErrIDRequired
	}
	parent, err := s.parents.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(ctx, err, s.loc, "Parent", id)
	}
	return s.withUser(ctx, parent)
}

func (s *parentService) GetByUserID(ctx context.Context, userID string) (*dto.ParentDTO, error) {
	parent, err := s.findByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.withUser(ctx, parent)
}

func (s *parentService) Update(ctx context.Context, d *dto.ShortUserDTO) (*dto.ParentDTO, error) {
	if d == nil {
		return nil, ErrNilDTO
	}
	if d.Gender == nil || d.DateOfBirth == nil {
		return nil, errors.NotValidf("parent without gender or date of birth")
	}
	s.log.Info().Str("user_id", d.ID).Msg("parent update started")

	parent, err := s.findByUserID(ctx, d.ID)
	if err != nil {
		return nil, err
	}
	user, err := s.users.GetByID(ctx, d.ID)
	if err != nil {
		return nil, s.userNotFound(ctx, err, d.ID)
	}

	before := *parent
	parent.Gender = d.Gender
	parent.DateOfBirth = d.DateOfBirth
	after := *parent

	parent, err = s.parents.Update(ctx, parent)
	if err != nil {
		return nil, err
	}
	if _, err := s.changes.AddEntityChanges(ctx, model.EntityTypeParent, after.ID.String(), before, after, d.ID); err != nil {
		return nil, err
	}

	user.FirstName = d.FirstName
	user.MiddleName = d.MiddleName
	user.LastName = d.LastName
	if d.PhoneNumber != "" {
		user.PhoneNumber = d.PhoneNumber
	}
	user, err = s.users.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	out := mapper.ParentToDTO(*parent, user)
	return &out, nil
}

func (s *parentService) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrIDRequired
	}
	parent, err := s.parents.GetByID(ctx, id)
	if err != nil {
		return notFound(ctx, err, s.loc, "Parent", id)
	}
	if err := s.parents.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, parent.UserID); err != nil {
		return err
	}
	s.log.Info().Str("parent_id", id.String()).Msg("parent deleted")
	return nil
}

func (s *parentService) BlockUnblock(ctx context.Context, adminUserID string, d *dto.BlockUnblockParentDTO) error {
	if d == nil {
		return ErrNilDTO
	}
	parent, err := s.parents.GetByID(ctx, d.ParentID)
	if errors.Is(err, errors.NotFound) {
		s.log.Info().Str("parent_id", d.ParentID.String()).Msg("parent to block not found")
		return nil
	}
	if err != nil {
		return err
	}

	user, err := s.users.GetByID(ctx, parent.UserID)
	if err != nil {
		return s.userNotFound(ctx, err, parent.UserID)
	}
	if user.IsBlocked == d.IsBlocked {
		s.log.Debug().Str("parent_id", d.ParentID.String()).Bool("is_blocked", d.IsBlocked).Msg("block state unchanged")
		return nil
	}

	user.IsBlocked = d.IsBlocked
	if _, err := s.users.Update(ctx, user); err != nil {
		return err
	}
	if _, err := s.blockLog.SaveChangesLog(ctx, parent.ID, adminUserID, d.Reason, d.IsBlocked); err != nil {
		return err
	}

	s.log.Info().
		Str("parent_id", parent.ID.String()).
		Str("admin_id", adminUserID).
		Bool("is_blocked", d.IsBlocked).
		Msg("parent block state changed")
	return nil
}

func (s *parentService) findByUserID(ctx context.Context, userID string) (*model.Parent, error) {
	if userID == "" {
		return nil, ErrIDRequired
	}
	found, err := s.parents.GetByFilter(ctx, repository.Where(repository.Eq("user_id", userID)))
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, errors.NotFoundf("parent of user %s", userID)
	}
	return &found[0], nil
}

func (s *parentService) withUser(ctx context.Context, parent *model.Parent) (*dto.ParentDTO, error) {
	user, err := s.users.GetByID(ctx, parent.UserID)
	if err != nil {
		return nil, s.userNotFound(ctx, err, parent.UserID)
	}
	out := mapper.ParentToDTO(*parent, user)
	return &out, nil
}

func (s *parentService) userNotFound(ctx context.Context, err error, userID string) error {
	if errors.Is(err, errors.NotFound) {
		return errors.NewNotFound(err, s.loc.Localize(ctx, localizer.UserNotFound, userID))
	}
	return err
}
