package repository

import (
	"context"

	"github.com/fastygo/todo/domain"
)

// TaskRepository is the task store contract. Every call is scoped to an owner;
// a task that exists under another owner is reported as domain.ErrTaskNotFound.
type TaskRepository interface {
	Create(ctx context.Context, draft domain.TaskDraft) (*domain.Task, error)
	Get(ctx context.Context, id int64, ownerID string) (*domain.Task, error)
	List(ctx context.Context, query domain.TaskQuery) ([]domain.Task, error)
	Update(ctx context.Context, id int64, ownerID string, patch domain.TaskPatch) (*domain.Task, error)
	// Delete reports whether a row was removed.
	Delete(ctx context.Context, id int64, ownerID string) (bool, error)
	Toggle(ctx context.Context, id int64, ownerID string) (*domain.Task, error)
}
