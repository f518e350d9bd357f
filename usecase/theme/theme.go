package theme

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/fastygo/todo/domain"
	"github.com/fastygo/todo/pkg/logger"
	"github.com/fastygo/todo/repository"
)

type UseCase struct {
	themes repository.ThemeRepository
	logger *zap.Logger
}

func New(themes repository.ThemeRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		themes: themes,
		logger: logger,
	}
}

// GetOrCreateDefault returns the owner's preference, creating a "system" row
// on first read.
func (uc *UseCase) GetOrCreateDefault(ctx context.Context, ownerID string) (*domain.ThemePreference, error) {
	pref, err := uc.themes.Get(ctx, ownerID)
	if err == nil {
		return pref, nil
	}
	if !errors.Is(err, domain.ErrThemeNotFound) {
		return nil, err
	}

	logger.WithRequestID(ctx, uc.logger).Debug("creating default theme preference", zap.String("owner_id", ownerID))
	return uc.themes.Create(ctx, ownerID, domain.DefaultThemeMode)
}

// Update upserts the owner's preference. A missing mode is allowed only when
// the row already exists, in which case just updated_at moves.
func (uc *UseCase) Update(ctx context.Context, ownerID string, rawMode *string) (*domain.ThemePreference, error) {
	var mode *domain.ThemeMode
	if rawMode != nil {
		parsed, err := domain.ParseThemeMode(*rawMode)
		if err != nil {
			return nil, err
		}
		mode = &parsed
	}

	_, err := uc.themes.Get(ctx, ownerID)
	switch {
	case errors.Is(err, domain.ErrThemeNotFound):
		if mode == nil {
			return nil, domain.ErrThemeModeRequired
		}
		return uc.themes.Create(ctx, ownerID, *mode)
	case err != nil:
		return nil, err
	}

	pref, err := uc.themes.Update(ctx, ownerID, mode)
	if errors.Is(err, domain.ErrThemeNotFound) {
		// the row disappeared between the read and the write
		logger.WithRequestID(ctx, uc.logger).Error("theme preference vanished during update", zap.String("owner_id", ownerID))
		return nil, domain.WrapError(domain.ErrCodeInternal, "failed to update theme preference", err)
	}
	return pref, err
}
