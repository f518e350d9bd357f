package domain

import "time"

// ActivityAction names a task mutation recorded in the activity journal.
type ActivityAction string

const (
	ActivityCreated ActivityAction = "created"
	ActivityUpdated ActivityAction = "updated"
	ActivityToggled ActivityAction = "toggled"
	ActivityDeleted ActivityAction = "deleted"
)

// Activity is one journal entry describing a change applied to a task.
type Activity struct {
	ID        string         `json:"id"`
	OwnerID   string         `json:"user_id"`
	TaskID    int64          `json:"task_id"`
	Action    ActivityAction `json:"action"`
	Completed *bool          `json:"completed,omitempty"`
	At        time.Time      `json:"at"`
}
