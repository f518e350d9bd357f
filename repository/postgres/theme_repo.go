package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fastygo/todo/domain"
	"github.com/fastygo/todo/repository"
)

type themeRepository struct {
	pool *pgxpool.Pool
}

// NewThemeRepository returns a Postgres-backed ThemeRepository.
func NewThemeRepository(pool *pgxpool.Pool) repository.ThemeRepository {
	return &themeRepository{pool: pool}
}

func (r *themeRepository) Get(ctx context.Context, ownerID string) (*domain.ThemePreference, error) {
	const query = `
	SELECT id, owner_id, theme_mode, updated_at
	FROM theme_preferences
	WHERE owner_id = $1
	`
	return scanTheme(r.pool.QueryRow(ctx, query, ownerID))
}

func (r *themeRepository) Create(ctx context.Context, ownerID string, mode domain.ThemeMode) (*domain.ThemePreference, error) {
	if !mode.Valid() {
		return nil, domain.ErrInvalidThemeMode
	}

	const query = `
	INSERT INTO theme_preferences (owner_id, theme_mode)
	VALUES ($1, $2)
	ON CONFLICT (owner_id) DO UPDATE
	SET theme_mode = EXCLUDED.theme_mode,
		updated_at = clock_timestamp()
	RETURNING id, owner_id, theme_mode, updated_at
	`
	return scanTheme(r.pool.QueryRow(ctx, query, ownerID, string(mode)))
}

func (r *themeRepository) Update(ctx context.Context, ownerID string, mode *domain.ThemeMode) (*domain.ThemePreference, error) {
	var value interface{}
	if mode != nil {
		if !mode.Valid() {
			return nil, domain.ErrInvalidThemeMode
		}
		value = string(*mode)
	}

	const query = `
	UPDATE theme_preferences
	SET theme_mode = COALESCE($2::text, theme_mode),
		updated_at = ` + nextTimestamp + `
	WHERE owner_id = $1
	RETURNING id, owner_id, theme_mode, updated_at
	`
	return scanTheme(r.pool.QueryRow(ctx, query, ownerID, value))
}

func scanTheme(row rowScanner) (*domain.ThemePreference, error) {
	var (
		pref domain.ThemePreference
		mode string
	)
	if err := row.Scan(&pref.ID, &pref.OwnerID, &mode, &pref.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrThemeNotFound
		}
		return nil, err
	}
	pref.Mode = domain.ThemeMode(mode)
	return &pref, nil
}
