package domain

import (
	"errors"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestTaskDraftNormalize(t *testing.T) {
	d, err := TaskDraft{OwnerID: "u1", Title: "  buy milk  ", Description: strPtr("  2 litres ")}.Normalize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Title != "buy milk" {
		t.Fatalf("expected trimmed title, got %q", d.Title)
	}
	if d.Description == nil || *d.Description != "2 litres" {
		t.Fatalf("expected trimmed description, got %v", d.Description)
	}

	d, err = TaskDraft{Title: "x", Description: strPtr("   ")}.Normalize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Description == nil || *d.Description != "" {
		t.Fatalf("empty description must stay present, got %v", d.Description)
	}

	d, _ = TaskDraft{Title: "x"}.Normalize()
	if d.Description != nil {
		t.Fatalf("absent description must stay absent")
	}
}

func TestTaskDraftNormalizeRejectsBlankTitle(t *testing.T) {
	for _, title := range []string{"", "   ", "\t\n"} {
		_, err := TaskDraft{Title: title}.Normalize()
		if !errors.Is(err, ErrEmptyTitle) {
			t.Fatalf("title %q: expected ErrEmptyTitle, got %v", title, err)
		}
		if !IsDomainError(err, ErrCodeValidation) {
			t.Fatalf("title %q: expected validation code", title)
		}
	}
}

func TestTaskPatchApply(t *testing.T) {
	task := Task{Title: "old", Description: strPtr("keep"), Completed: true}

	patch, err := TaskPatch{Description: strPtr(" new ")}.Normalize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	patch.Apply(&task)
	if task.Title != "old" || !task.Completed {
		t.Fatalf("untouched fields changed: %#v", task)
	}
	if *task.Description != "new" {
		t.Fatalf("expected description update, got %q", *task.Description)
	}

	TaskPatch{ClearDescription: true}.Apply(&task)
	if task.Description != nil {
		t.Fatalf("expected description to be cleared")
	}

	done := false
	TaskPatch{Completed: &done}.Apply(&task)
	if task.Completed {
		t.Fatalf("expected completed to be false")
	}
}

func TestTaskPatchNormalizeRejectsBlankTitle(t *testing.T) {
	if _, err := (TaskPatch{Title: strPtr("  ")}).Normalize(); !errors.Is(err, ErrEmptyTitle) {
		t.Fatalf("expected ErrEmptyTitle, got %v", err)
	}
}

func TestTaskCloneDetachesDescription(t *testing.T) {
	orig := Task{Description: strPtr("a")}
	clone := orig.Clone()
	*clone.Description = "b"
	if *orig.Description != "a" {
		t.Fatalf("clone shares description pointer")
	}
}

func TestParseThemeMode(t *testing.T) {
	for _, raw := range []string{"light", "dark", "system"} {
		if _, err := ParseThemeMode(raw); err != nil {
			t.Fatalf("ParseThemeMode(%q) unexpected error: %v", raw, err)
		}
	}
	for _, raw := range []string{"", "blue", "auto", "DARK", "Light", " system "} {
		if _, err := ParseThemeMode(raw); !errors.Is(err, ErrInvalidThemeMode) {
			t.Fatalf("ParseThemeMode(%q) expected ErrInvalidThemeMode, got %v", raw, err)
		}
	}
}

func TestClaimsValid(t *testing.T) {
	if !(Claims{UserID: "u", Email: "a@b"}).Valid() {
		t.Fatalf("expected claims to be valid")
	}
	if (Claims{UserID: "u"}).Valid() || (Claims{Email: "a@b"}).Valid() {
		t.Fatalf("claims missing required fields must be invalid")
	}
}
