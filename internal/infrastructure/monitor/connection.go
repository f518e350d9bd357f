package monitor

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Check pings one dependency.
type Check func(ctx context.Context) error

// Sizer reports how many entries the activity journal holds.
type Sizer interface {
	Size() (int, error)
}

// Options wires the dependencies to watch. Nil checks are reported as disabled.
type Options struct {
	Database Check
	Cache    Check
	Journal  Sizer
	Interval time.Duration
	Logger   *zap.Logger
}

type Monitor struct {
	database Check
	cache    Check
	journal  Sizer

	status   Status
	mu       sync.RWMutex
	interval time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
	logger   *zap.Logger
}

func New(opts Options) *Monitor {
	if opts.Interval <= 0 {
		opts.Interval = 10 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Monitor{
		database: opts.Database,
		cache:    opts.Cache,
		journal:  opts.Journal,
		interval: opts.Interval,
		stopCh:   make(chan struct{}),
		logger:   opts.Logger,
		status: Status{
			Database: StateDown,
			Cache:    StateDisabled,
			Journal:  StateDisabled,
		},
	}
}

func (m *Monitor) Start() {
	go m.loop()
}

func (m *Monitor) Stop() {
	m.stopOnce.Do(func() { close(m.stopCh) })
}

func (m *Monitor) GetStatus() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

func (m *Monitor) loop() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.Refresh(context.Background())
	for {
		select {
		case <-ticker.C:
			m.Refresh(context.Background())
		case <-m.stopCh:
			return
		}
	}
}

// Refresh probes every dependency once and stores the result.
func (m *Monitor) Refresh(ctx context.Context) Status {
	journalState, journalSize := m.checkJournal()
	status := Status{
		Database:    m.ping(ctx, "database", m.database, 3*time.Second),
		Cache:       m.ping(ctx, "cache", m.cache, 2*time.Second),
		Journal:     journalState,
		JournalSize: journalSize,
		LastCheck:   time.Now(),
	}

	m.mu.Lock()
	prev := m.status
	m.status = status
	m.mu.Unlock()

	if prev.Database != status.Database {
		m.logger.Info("database state changed", zap.String("state", string(status.Database)))
	}
	return status
}

func (m *Monitor) ping(ctx context.Context, name string, check Check, timeout time.Duration) State {
	if check == nil {
		return StateDisabled
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := check(ctx); err != nil {
		m.logger.Debug("dependency check failed", zap.String("component", name), zap.Error(err))
		return StateDown
	}
	return StateUp
}

func (m *Monitor) checkJournal() (State, int) {
	if m.journal == nil {
		return StateDisabled, 0
	}
	size, err := m.journal.Size()
	if err != nil {
		m.logger.Warn("journal size check failed", zap.Error(err))
		return StateDown, 0
	}
	return StateUp, size
}
