package domain

import (
	"strings"
	"time"
)

// Task represents a user-owned todo item.
type Task struct {
	ID          int64     `json:"id"`
	OwnerID     string    `json:"user_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TaskDraft carries the fields accepted when a task is created.
type TaskDraft struct {
	OwnerID     string
	Title       string
	Description *string
	Completed   bool
}

// Normalize trims the draft and rejects an empty title.
func (d TaskDraft) Normalize() (TaskDraft, error) {
	title, err := NormalizeTitle(d.Title)
	if err != nil {
		return d, err
	}
	d.Title = title
	d.Description = NormalizeDescription(d.Description)
	return d, nil
}

// TaskPatch lists the fields an update touches. Nil fields are left alone.
type TaskPatch struct {
	Title       *string
	Description *string
	// ClearDescription drops the description. Ignored when Description is set.
	ClearDescription bool
	Completed        *bool
}

// Normalize trims supplied fields and re-validates the title.
func (p TaskPatch) Normalize() (TaskPatch, error) {
	if p.Title != nil {
		title, err := NormalizeTitle(*p.Title)
		if err != nil {
			return p, err
		}
		p.Title = &title
	}
	if p.Description != nil {
		p.Description = NormalizeDescription(p.Description)
		p.ClearDescription = false
	}
	return p, nil
}

// Apply copies the patch onto t. Timestamps are the caller's concern.
func (p TaskPatch) Apply(t *Task) {
	if t == nil {
		return
	}
	if p.Title != nil {
		t.Title = *p.Title
	}
	switch {
	case p.Description != nil:
		desc := *p.Description
		t.Description = &desc
	case p.ClearDescription:
		t.Description = nil
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
}

// NormalizeTitle trims the title and fails with ErrEmptyTitle when nothing is left.
func NormalizeTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrEmptyTitle
	}
	return title, nil
}

// NormalizeDescription trims a present description. Absent stays absent.
func NormalizeDescription(desc *string) *string {
	if desc == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*desc)
	return &trimmed
}

// Clone returns a deep copy so stores can hand out tasks without sharing state.
func (t Task) Clone() Task {
	if t.Description != nil {
		desc := *t.Description
		t.Description = &desc
	}
	return t
}
