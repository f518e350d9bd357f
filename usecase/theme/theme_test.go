package theme

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fastygo/todo/domain"
	"github.com/fastygo/todo/repository"
	"github.com/fastygo/todo/repository/memory"
)

func strPtr(s string) *string { return &s }

func tickingClock() memory.Clock {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		now = now.Add(time.Second)
		return now
	}
}

func TestGetOrCreateDefault(t *testing.T) {
	uc := New(memory.NewThemeRepository(tickingClock()), nil)
	ctx := context.Background()

	first, err := uc.GetOrCreateDefault(ctx, "u1")
	if err != nil {
		t.Fatalf("first read: %v", err)
	}
	if first.Mode != domain.ThemeSystem || first.OwnerID != "u1" {
		t.Fatalf("unexpected default: %#v", first)
	}

	second, err := uc.GetOrCreateDefault(ctx, "u1")
	if err != nil {
		t.Fatalf("second read: %v", err)
	}
	if second.ID != first.ID || !second.UpdatedAt.Equal(first.UpdatedAt) {
		t.Fatalf("second read must return the same row unchanged: %#v vs %#v", second, first)
	}
}

func TestUpdate(t *testing.T) {
	tests := []struct {
		name     string
		existing bool
		mode     *string
		wantMode domain.ThemeMode
		wantErr  error
	}{
		{name: "create with mode", mode: strPtr("dark"), wantMode: domain.ThemeDark},
		{name: "create without mode", wantErr: domain.ErrThemeModeRequired},
		{name: "create with bad mode", mode: strPtr("sepia"), wantErr: domain.ErrInvalidThemeMode},
		{name: "update mode", existing: true, mode: strPtr("light"), wantMode: domain.ThemeLight},
		{name: "update with upper-case mode", existing: true, mode: strPtr("DARK"), wantErr: domain.ErrInvalidThemeMode},
		{name: "touch only", existing: true, wantMode: domain.ThemeSystem},
		{name: "update with bad mode", existing: true, mode: strPtr("neon"), wantErr: domain.ErrInvalidThemeMode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := New(memory.NewThemeRepository(tickingClock()), nil)
			ctx := context.Background()

			var before *domain.ThemePreference
			if tt.existing {
				var err error
				if before, err = uc.GetOrCreateDefault(ctx, "u1"); err != nil {
					t.Fatalf("seed: %v", err)
				}
			}

			pref, err := uc.Update(ctx, "u1", tt.mode)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("update: %v", err)
			}
			if pref.Mode != tt.wantMode {
				t.Fatalf("expected mode %s, got %s", tt.wantMode, pref.Mode)
			}
			if before != nil && !pref.UpdatedAt.After(before.UpdatedAt) {
				t.Fatalf("updated_at did not move: %v -> %v", before.UpdatedAt, pref.UpdatedAt)
			}
		})
	}
}

// vanishingRepo reports a row on Get but loses it before Update.
type vanishingRepo struct {
	repository.ThemeRepository
}

func (vanishingRepo) Get(context.Context, string) (*domain.ThemePreference, error) {
	return &domain.ThemePreference{ID: 1, OwnerID: "u1", Mode: domain.ThemeDark}, nil
}

func (vanishingRepo) Update(context.Context, string, *domain.ThemeMode) (*domain.ThemePreference, error) {
	return nil, domain.ErrThemeNotFound
}

func TestUpdateOfVanishedRowIsInternal(t *testing.T) {
	uc := New(vanishingRepo{}, nil)

	_, err := uc.Update(context.Background(), "u1", strPtr("light"))
	if !domain.IsDomainError(err, domain.ErrCodeInternal) {
		t.Fatalf("expected internal error, got %v", err)
	}
}
