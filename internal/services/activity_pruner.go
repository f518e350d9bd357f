package services

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/fastygo/todo/repository"
)

// PrunerConfig controls how often the journal is trimmed and how much history it keeps.
type PrunerConfig struct {
	Interval  time.Duration
	Retention time.Duration
}

// ActivityPruner periodically drops journal entries older than the retention window.
type ActivityPruner struct {
	journal repository.ActivityRepository
	logger  *zap.Logger
	cron    *cron.Cron
	cfg     PrunerConfig
	now     func() time.Time
}

func NewActivityPruner(journal repository.ActivityRepository, logger *zap.Logger, cfg PrunerConfig) *ActivityPruner {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Hour
	}
	if cfg.Retention <= 0 {
		cfg.Retention = 30 * 24 * time.Hour
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	p := &ActivityPruner{
		journal: journal,
		logger:  logger,
		cfg:     cfg,
		cron:    cron.New(cron.WithSeconds()),
		now:     time.Now,
	}

	schedule := fmt.Sprintf("@every %ds", int(cfg.Interval.Seconds()))
	_, _ = p.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Interval)
		defer cancel()
		if _, err := p.Prune(ctx); err != nil {
			p.logger.Error("activity prune failed", zap.Error(err))
		}
	})

	return p
}

func (p *ActivityPruner) Start() {
	if p == nil || p.cron == nil {
		return
	}
	p.cron.Start()
	p.logger.Info("activity pruner started",
		zap.Duration("interval", p.cfg.Interval),
		zap.Duration("retention", p.cfg.Retention))
}

// Stop waits for a running prune to finish or for ctx to expire.
func (p *ActivityPruner) Stop(ctx context.Context) error {
	if p == nil || p.cron == nil {
		return nil
	}
	stopCtx := p.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
		return ctx.Err()
	}
	p.logger.Info("activity pruner stopped")
	return nil
}

// Prune runs one pass synchronously and returns how many entries were removed.
func (p *ActivityPruner) Prune(ctx context.Context) (int, error) {
	if p == nil || p.journal == nil {
		return 0, nil
	}

	cutoff := p.now().Add(-p.cfg.Retention)
	removed, err := p.journal.Prune(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		p.logger.Info("activity journal pruned", zap.Int("removed", removed), zap.Time("cutoff", cutoff))
	}
	return removed, nil
}
