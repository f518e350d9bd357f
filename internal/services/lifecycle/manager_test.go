package lifecycle

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestShutdownRunsHooksInReverseOrder(t *testing.T) {
	m := New(time.Second, nil)

	var order []string
	for _, name := range []string{"postgres", "journal", "http"} {
		name := name
		m.Register(name, func(context.Context) error {
			order = append(order, name)
			return nil
		})
	}

	if err := m.Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
	want := []string{"http", "journal", "postgres"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, order)
		}
	}
}

func TestShutdownJoinsErrorsAndRunsOnce(t *testing.T) {
	m := New(time.Second, nil)
	errA := errors.New("a failed")
	calls := 0

	m.Register("a", func(context.Context) error { calls++; return errA })
	m.Register("b", func(context.Context) error { calls++; return nil })

	err := m.Shutdown(context.Background())
	if !errors.Is(err, errA) {
		t.Fatalf("expected joined error, got %v", err)
	}
	if calls != 2 {
		t.Fatalf("every hook should run, got %d calls", calls)
	}

	if err := m.Shutdown(context.Background()); err != nil || calls != 2 {
		t.Fatalf("second shutdown must be a no-op, got %v after %d calls", err, calls)
	}

	m.Register("late", func(context.Context) error { calls++; return nil })
	_ = m.Shutdown(context.Background())
	if calls != 2 {
		t.Fatalf("late hook must be ignored")
	}
}

func TestSignalContextCancel(t *testing.T) {
	m := New(time.Second, nil)
	ctx, cancel := m.SignalContext(context.Background())
	cancel()

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatalf("context not cancelled")
	}
}
