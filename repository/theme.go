package repository

import (
	"context"

	"github.com/fastygo/todo/domain"
)

type ThemeRepository interface {
	// Get returns domain.ErrThemeNotFound when the owner has no row yet.
	Get(ctx context.Context, ownerID string) (*domain.ThemePreference, error)
	// Create inserts the owner's row, overwriting the mode if one already exists.
	Create(ctx context.Context, ownerID string, mode domain.ThemeMode) (*domain.ThemePreference, error)
	// Update changes an existing row. A nil mode only refreshes updated_at.
	Update(ctx context.Context, ownerID string, mode *domain.ThemeMode) (*domain.ThemePreference, error)
}
