package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/fastygo/todo/domain"
)

func TestThemeRepositoryLifecycle(t *testing.T) {
	clock := &fakeClock{step: 1}
	repo := NewThemeRepository(clock.Now)
	ctx := context.Background()

	if _, err := repo.Get(ctx, "u1"); !errors.Is(err, domain.ErrThemeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	dark := domain.ThemeDark
	if _, err := repo.Update(ctx, "u1", &dark); !errors.Is(err, domain.ErrThemeNotFound) {
		t.Fatalf("update of missing row: expected not found, got %v", err)
	}

	created, err := repo.Create(ctx, "u1", domain.ThemeSystem)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	again, _ := repo.Create(ctx, "u1", domain.ThemeLight)
	if again.ID != created.ID || again.Mode != domain.ThemeLight {
		t.Fatalf("create must upsert the single row: %#v", again)
	}

	updated, err := repo.Update(ctx, "u1", &dark)
	if err != nil || updated.Mode != domain.ThemeDark || !updated.UpdatedAt.After(again.UpdatedAt) {
		t.Fatalf("unexpected update result %#v, %v", updated, err)
	}

	touched, _ := repo.Update(ctx, "u1", nil)
	if touched.Mode != domain.ThemeDark || !touched.UpdatedAt.After(updated.UpdatedAt) {
		t.Fatalf("nil mode must only refresh updated_at: %#v", touched)
	}

	bad := domain.ThemeMode("sepia")
	if _, err := repo.Update(ctx, "u1", &bad); !errors.Is(err, domain.ErrInvalidThemeMode) {
		t.Fatalf("expected invalid mode, got %v", err)
	}
}
