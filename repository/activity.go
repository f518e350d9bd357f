package repository

import (
	"context"
	"time"

	"github.com/fastygo/todo/domain"
)

type ActivityRepository interface {
	Append(ctx context.Context, activity domain.Activity) error
	// ListByOwner returns at most limit entries, newest first.
	ListByOwner(ctx context.Context, ownerID string, limit int) ([]domain.Activity, error)
	// Prune removes entries recorded before olderThan and returns how many were dropped.
	Prune(ctx context.Context, olderThan time.Time) (int, error)
	Size() (int, error)
}
