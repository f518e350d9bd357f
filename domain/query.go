package domain

import (
	"sort"
	"strings"
)

// StatusFilter narrows a task listing by completion state.
type StatusFilter int

const (
	StatusAll StatusFilter = iota
	StatusPending
	StatusCompleted
)

// ParseStatusFilter maps user input onto a filter. Unknown values fall back to StatusAll.
func ParseStatusFilter(raw string) StatusFilter {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "pending":
		return StatusPending
	case "completed":
		return StatusCompleted
	default:
		return StatusAll
	}
}

func (f StatusFilter) String() string {
	switch f {
	case StatusPending:
		return "pending"
	case StatusCompleted:
		return "completed"
	default:
		return "all"
	}
}

// Completed reports the completion value the filter selects; ok is false for StatusAll.
func (f StatusFilter) Completed() (completed bool, ok bool) {
	switch f {
	case StatusPending:
		return false, true
	case StatusCompleted:
		return true, true
	default:
		return false, false
	}
}

// Match reports whether t passes the filter.
func (f StatusFilter) Match(t Task) bool {
	completed, ok := f.Completed()
	return !ok || t.Completed == completed
}

// SortOrder selects the ordering of a task listing.
type SortOrder int

const (
	SortByCreated SortOrder = iota
	SortByTitle
)

// ParseSortOrder maps user input onto an ordering. Only "title" is recognised.
func ParseSortOrder(raw string) SortOrder {
	if raw == "title" {
		return SortByTitle
	}
	return SortByCreated
}

func (s SortOrder) String() string {
	if s == SortByTitle {
		return "title"
	}
	return "created_at"
}

// TaskQuery scopes a listing to one owner.
type TaskQuery struct {
	OwnerID string
	Status  StatusFilter
	Sort    SortOrder
}

// Apply filters and orders tasks in memory. Ties fall back to id order.
func (q TaskQuery) Apply(tasks []Task) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t.OwnerID != q.OwnerID || !q.Status.Match(t) {
			continue
		}
		out = append(out, t)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch q.Sort {
		case SortByTitle:
			if a.Title != b.Title {
				return a.Title < b.Title
			}
		default:
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.Before(b.CreatedAt)
			}
		}
		return a.ID < b.ID
	})
	return out
}
