package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fastygo/todo/domain"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, "color = false\ndefault_status = \"completed\"\ndefault_sort = \"title\"\n")

	cfg, err := LoadConfig(path, true)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Color || cfg.DefaultStatus != "completed" || cfg.DefaultSort != "title" {
		t.Fatalf("unexpected config %#v", cfg)
	}
}

func TestLoadConfigPartialKeepsDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeFile(t, "default_sort = \"title\"\n"), true)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.Color || cfg.DefaultStatus != "all" || cfg.DefaultSort != "title" {
		t.Fatalf("unexpected config %#v", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.toml")

	if cfg, err := LoadConfig(missing, false); err != nil || cfg != DefaultConfig() {
		t.Fatalf("optional missing file should yield defaults, got %#v %v", cfg, err)
	}
	if _, err := LoadConfig(missing, true); err == nil {
		t.Fatalf("explicit missing file should fail")
	}
	if _, err := LoadConfig(writeFile(t, "colour = true\n"), true); err == nil || !strings.Contains(err.Error(), "colour") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
	if _, err := LoadConfig(writeFile(t, "color = \n"), true); err == nil {
		t.Fatalf("expected syntax error")
	}
}

func TestStylesWithoutColor(t *testing.T) {
	var buf bytes.Buffer
	s := NewStyles(&buf, false)

	if got := s.Task(domain.Task{ID: 3, Title: "Ship"}); got != "○ 3: Ship" {
		t.Fatalf("unexpected task line %q", got)
	}
	if got := s.Task(domain.Task{ID: 4, Title: "Done", Completed: true}); got != "✓ 4: Done" {
		t.Fatalf("unexpected task line %q", got)
	}
	if got := s.Error("boom"); got != "boom" {
		t.Fatalf("colourless output must be plain, got %q", got)
	}
}
