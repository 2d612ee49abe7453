package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"outofschool/internal/model"
	"outofschool/internal/repository"
)

// ParentBlockedByAdminLogService keeps the history of parent blocks made by administrators.
type ParentBlockedByAdminLogService interface {
	// SaveChangesLog returns the number of rows written.
	SaveChangesLog(ctx context.Context, parentID uuid.UUID, userID, reason string, isBlocked bool) (int, error)
}

type parentBlockedByAdminLogService struct {
	repo repository.EntityRepository[int64, model.ParentBlockedByAdminLog]
	log  zerolog.Logger
}

func NewParentBlockedByAdminLogService(repo repository.EntityRepository[int64, model.ParentBlockedByAdminLog], log zerolog.Logger) ParentBlockedByAdminLogService {
	return &parentBlockedByAdminLogService{repo: repo, log: log}
}

func (s *parentBlockedByAdminLogService) SaveChangesLog(ctx context.Context, parentID uuid.UUID, userID, reason string, isBlocked bool) (int, error) {
	_, err := s.repo.Create(ctx, &model.ParentBlockedByAdminLog{
		ParentID:      parentID,
		UserID:        userID,
		OperationDate: time.Now().UTC(),
		Reason:        reason,
		IsBlocked:     isBlocked,
	})
	if err != nil {
		s.log.Error().Err(err).Str("parent_id", parentID.String()).Msg("parent block log not saved")
		return 0, err
	}
	return 1, nil
}
