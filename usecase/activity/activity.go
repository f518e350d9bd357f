package activity

import (
	"context"

	"go.uber.org/zap"

	"github.com/fastygo/todo/domain"
	"github.com/fastygo/todo/repository"
)

const (
	DefaultLimit = 50
	MaxLimit     = 500
)

// UseCase serves the owner-scoped activity feed.
type UseCase struct {
	journal repository.ActivityRepository
	logger  *zap.Logger
}

func New(journal repository.ActivityRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		journal: journal,
		logger:  logger,
	}
}

// List returns the newest entries first. A disabled journal yields an empty feed.
func (uc *UseCase) List(ctx context.Context, actorID, ownerID string, limit int) ([]domain.Activity, error) {
	if actorID == "" || actorID != ownerID {
		return nil, domain.ErrForbidden
	}
	if uc.journal == nil {
		return []domain.Activity{}, nil
	}

	switch {
	case limit <= 0:
		limit = DefaultLimit
	case limit > MaxLimit:
		limit = MaxLimit
	}

	entries, err := uc.journal.ListByOwner(ctx, ownerID, limit)
	if err != nil {
		uc.logger.Error("failed to read activity journal", zap.String("owner_id", ownerID), zap.Error(err))
		return nil, domain.WrapError(domain.ErrCodeInternal, "failed to read activity", err)
	}
	if entries == nil {
		entries = []domain.Activity{}
	}
	return entries, nil
}
