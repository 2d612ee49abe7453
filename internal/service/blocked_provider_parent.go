package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/juju/errors"
	"github.com/rs/zerolog"

	"outofschool/internal/dto"
)

// BlockedProviderParentService lets providers block parents from their workshops.
// None of the operations are available yet; each fails with a NotImplemented error.
type BlockedProviderParentService interface {
	Block(ctx context.Context, d *dto.BlockedProviderParentBlockDTO, userID string) (*dto.BlockedProviderParentDTO, error)
	Unblock(ctx context.Context, d *dto.BlockedProviderParentUnblockDTO, userID string) (*dto.BlockedProviderParentDTO, error)
	GetBlock(ctx context.Context, parentID, providerID uuid.UUID) (*dto.BlockedProviderParentDTO, error)
	IsBlocked(ctx context.Context, parentID, providerID uuid.UUID) (bool, error)
}

type blockedProviderParentService struct {
	log zerolog.Logger
}

func NewBlockedProviderParentService(log zerolog.Logger) BlockedProviderParentService {
	return &blockedProviderParentService{log: log}
}

func (s *blockedProviderParentService) Block(context.Context, *dto.BlockedProviderParentBlockDTO, string) (*dto.BlockedProviderParentDTO, error) {
	return nil, s.notImplemented("Block")
}

func (s *blockedProviderParentService) Unblock(context.Context, *dto.BlockedProviderParentUnblockDTO, string) (*dto.BlockedProviderParentDTO, error) {
	return nil, s.notImplemented("Unblock")
}

func (s *blockedProviderParentService) GetBlock(context.Context, uuid.UUID, uuid.UUID) (*dto.BlockedProviderParentDTO, error) {
	return nil, s.notImplemented("GetBlock")
}

func (s *blockedProviderParentService) IsBlocked(context.Context, uuid.UUID, uuid.UUID) (bool, error) {
	return false, s.notImplemented("IsBlocked")
}

func (s *blockedProviderParentService) notImplemented(op string) error {
	s.log.Debug().Str("operation", op).Msg("blocked provider parent operation called")
	return errors.NotImplementedf("BlockedProviderParentService.%s", op)
}
