package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	redislib "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/fastygo/todo/domain"
	"github.com/fastygo/todo/repository"
)

type themeCache struct {
	client *redislib.Client
	next   repository.ThemeRepository
	prefix string
	ttl    time.Duration
	logger *zap.Logger
}

// NewThemeCache wraps next with a Redis read-through, write-through cache.
// Cache failures are logged and the call falls through to next.
func NewThemeCache(client *redislib.Client, next repository.ThemeRepository, ttl time.Duration, logger *zap.Logger) repository.ThemeRepository {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &themeCache{
		client: client,
		next:   next,
		prefix: "theme:",
		ttl:    ttl,
		logger: logger,
	}
}

func (c *themeCache) Get(ctx context.Context, ownerID string) (*domain.ThemePreference, error) {
	raw, err := c.client.Get(ctx, c.key(ownerID)).Bytes()
	switch {
	case err == nil:
		var pref domain.ThemePreference
		if err := sonic.Unmarshal(raw, &pref); err == nil {
			return &pref, nil
		}
		c.logger.Warn("discarding corrupt theme cache entry", zap.String("owner_id", ownerID))
	case !errors.Is(err, redislib.Nil):
		c.logger.Warn("theme cache read failed", zap.Error(err))
	}

	pref, err := c.next.Get(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	c.store(ctx, pref)
	return pref, nil
}

func (c *themeCache) Create(ctx context.Context, ownerID string, mode domain.ThemeMode) (*domain.ThemePreference, error) {
	pref, err := c.next.Create(ctx, ownerID, mode)
	if err != nil {
		c.evict(ctx, ownerID)
		return nil, err
	}
	c.store(ctx, pref)
	return pref, nil
}

func (c *themeCache) Update(ctx context.Context, ownerID string, mode *domain.ThemeMode) (*domain.ThemePreference, error) {
	pref, err := c.next.Update(ctx, ownerID, mode)
	if err != nil {
		c.evict(ctx, ownerID)
		return nil, err
	}
	c.store(ctx, pref)
	return pref, nil
}

func (c *themeCache) store(ctx context.Context, pref *domain.ThemePreference) {
	payload, err := sonic.Marshal(pref)
	if err != nil {
		c.logger.Warn("theme cache encode failed", zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, c.key(pref.OwnerID), payload, c.ttl).Err(); err != nil {
		c.logger.Warn("theme cache write failed", zap.Error(err))
	}
}

func (c *themeCache) evict(ctx context.Context, ownerID string) {
	if err := c.client.Del(ctx, c.key(ownerID)).Err(); err != nil {
		c.logger.Warn("theme cache evict failed", zap.Error(err))
	}
}

func (c *themeCache) key(ownerID string) string {
	return fmt.Sprintf("%s%s", c.prefix, ownerID)
}
