package memory

import (
	"context"
	"sync"
	"time"

	"github.com/fastygo/todo/domain"
	"github.com/fastygo/todo/repository"
)

type themeRepository struct {
	mu     sync.Mutex
	rows   map[string]*domain.ThemePreference
	nextID int64
	now    Clock
}

// NewThemeRepository returns an in-memory ThemeRepository.
func NewThemeRepository(now Clock) repository.ThemeRepository {
	if now == nil {
		now = time.Now
	}
	return &themeRepository{
		rows:   make(map[string]*domain.ThemePreference),
		nextID: 1,
		now:    now,
	}
}

func (r *themeRepository) Get(_ context.Context, ownerID string) (*domain.ThemePreference, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, ok := r.rows[ownerID]
	if !ok {
		return nil, domain.ErrThemeNotFound
	}
	out := *row
	return &out, nil
}

func (r *themeRepository) Create(_ context.Context, ownerID string, mode domain.ThemeMode) (*domain.ThemePreference, error) {
	if !mode.Valid() {
		return nil, domain.ErrInvalidThemeMode
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	row, ok := r.rows[ownerID]
	if !ok {
		row = &domain.ThemePreference{ID: r.nextID, OwnerID: ownerID}
		r.nextID++
		r.rows[ownerID] = row
	}
	row.Mode = mode
	row.UpdatedAt = r.now()

	out := *row
	return &out, nil
}

func (r *themeRepository) Update(_ context.Context, ownerID string, mode *domain.ThemeMode) (*domain.ThemePreference, error) {
	if mode != nil && !mode.Valid() {
		return nil, domain.ErrInvalidThemeMode
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	row, ok := r.rows[ownerID]
	if !ok {
		return nil, domain.ErrThemeNotFound
	}
	if mode != nil {
		row.Mode = *mode
	}
	row.UpdatedAt = r.now()

	out := *row
	return &out, nil
}
