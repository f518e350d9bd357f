package monitor

import "time"

// State describes one dependency.
type State string

const (
	StateUp       State = "up"
	StateDown     State = "down"
	StateDisabled State = "disabled"
)

type Status struct {
	Database    State     `json:"database"`
	Cache       State     `json:"cache"`
	Journal     State     `json:"journal"`
	JournalSize int       `json:"journal_size"`
	LastCheck   time.Time `json:"last_check"`
}

// Healthy reports whether the service can answer task requests. Only the
// database is required; cache and journal failures degrade silently.
func (s Status) Healthy() bool {
	return s.Database == StateUp
}
