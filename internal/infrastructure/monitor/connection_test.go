package monitor

import (
	"context"
	"errors"
	"testing"
)

type fixedSizer struct {
	n   int
	err error
}

func (s fixedSizer) Size() (int, error) { return s.n, s.err }

func TestRefresh(t *testing.T) {
	ok := func(context.Context) error { return nil }
	fail := func(context.Context) error { return errors.New("down") }

	tests := []struct {
		name    string
		opts    Options
		want    Status
		healthy bool
	}{
		{
			name:    "all up",
			opts:    Options{Database: ok, Cache: ok, Journal: fixedSizer{n: 4}},
			want:    Status{Database: StateUp, Cache: StateUp, Journal: StateUp, JournalSize: 4},
			healthy: true,
		},
		{
			name:    "optional parts disabled",
			opts:    Options{Database: ok},
			want:    Status{Database: StateUp, Cache: StateDisabled, Journal: StateDisabled},
			healthy: true,
		},
		{
			name:    "cache down only",
			opts:    Options{Database: ok, Cache: fail, Journal: fixedSizer{err: errors.New("closed")}},
			want:    Status{Database: StateUp, Cache: StateDown, Journal: StateDown},
			healthy: true,
		},
		{
			name: "database down",
			opts: Options{Database: fail},
			want: Status{Database: StateDown, Cache: StateDisabled, Journal: StateDisabled},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(tt.opts)
			got := m.Refresh(context.Background())
			got.LastCheck = tt.want.LastCheck
			if got != tt.want {
				t.Fatalf("expected %#v, got %#v", tt.want, got)
			}
			if got.Healthy() != tt.healthy {
				t.Fatalf("expected healthy=%v", tt.healthy)
			}
			if m.GetStatus().Database != tt.want.Database {
				t.Fatalf("status not stored")
			}
		})
	}
}

func TestStartStop(t *testing.T) {
	m := New(Options{})
	m.Start()
	m.Stop()
	m.Stop()

	if m.GetStatus().Healthy() {
		t.Fatalf("monitor without a database must not be healthy")
	}
}
