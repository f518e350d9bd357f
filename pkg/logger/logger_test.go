package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
)

func TestNewWritesJSONWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Config{Level: "debug", Output: &buf})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	ctx := ContextWithRequestID(context.Background(), "req-42")
	WithRequestID(ctx, log).Info("hello")
	_ = log.Sync()

	var line map[string]any
	if err := sonic.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line); err != nil {
		t.Fatalf("decode %q: %v", buf.String(), err)
	}
	if line["msg"] != "hello" || line["request_id"] != "req-42" {
		t.Fatalf("unexpected entry: %v", line)
	}
	if _, ok := line["timestamp"]; !ok {
		t.Fatalf("missing timestamp: %v", line)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log, _ := New(Config{Level: "warn", Encoding: "console", Output: &buf})

	log.Info("quiet")
	log.Warn("loud")
	_ = log.Sync()

	out := buf.String()
	if strings.Contains(out, "quiet") || !strings.Contains(out, "loud") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestWithRequestIDWithoutLogger(t *testing.T) {
	if WithRequestID(context.Background(), nil) == nil {
		t.Fatalf("expected a no-op logger")
	}
	if RequestIDFrom(context.Background()) != "" {
		t.Fatalf("expected empty request id")
	}
}
