// Package memory holds process-local repositories used by the CLI and tests.
// Nothing stored here survives a restart.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/fastygo/todo/domain"
	"github.com/fastygo/todo/repository"
)

// Clock returns the current time. Tests swap it for a fake.
type Clock func() time.Time

type taskRepository struct {
	mu     sync.Mutex
	tasks  map[int64]*domain.Task
	nextID int64
	now    Clock
}

// NewTaskRepository returns an empty in-memory TaskRepository whose ids start at 1.
func NewTaskRepository(now Clock) repository.TaskRepository {
	if now == nil {
		now = time.Now
	}
	return &taskRepository{
		tasks:  make(map[int64]*domain.Task),
		nextID: 1,
		now:    now,
	}
}

func (r *taskRepository) Create(_ context.Context, draft domain.TaskDraft) (*domain.Task, error) {
	draft, err := draft.Normalize()
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	task := &domain.Task{
		ID:          r.nextID,
		OwnerID:     draft.OwnerID,
		Title:       draft.Title,
		Description: draft.Description,
		Completed:   draft.Completed,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.nextID++
	r.tasks[task.ID] = task

	out := task.Clone()
	return &out, nil
}

func (r *taskRepository) Get(_ context.Context, id int64, ownerID string) (*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, err := r.lookup(id, ownerID)
	if err != nil {
		return nil, err
	}
	out := task.Clone()
	return &out, nil
}

func (r *taskRepository) List(_ context.Context, query domain.TaskQuery) ([]domain.Task, error) {
	r.mu.Lock()
	snapshot := make([]domain.Task, 0, len(r.tasks))
	for _, task := range r.tasks {
		snapshot = append(snapshot, task.Clone())
	}
	r.mu.Unlock()

	return query.Apply(snapshot), nil
}

func (r *taskRepository) Update(_ context.Context, id int64, ownerID string, patch domain.TaskPatch) (*domain.Task, error) {
	patch, err := patch.Normalize()
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	task, err := r.lookup(id, ownerID)
	if err != nil {
		return nil, err
	}
	patch.Apply(task)
	r.touch(task)

	out := task.Clone()
	return &out, nil
}

func (r *taskRepository) Delete(_ context.Context, id int64, ownerID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.lookup(id, ownerID); err != nil {
		return false, nil
	}
	delete(r.tasks, id)
	return true, nil
}

func (r *taskRepository) Toggle(_ context.Context, id int64, ownerID string) (*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, err := r.lookup(id, ownerID)
	if err != nil {
		return nil, err
	}
	task.Completed = !task.Completed
	r.touch(task)

	out := task.Clone()
	return &out, nil
}

func (r *taskRepository) lookup(id int64, ownerID string) (*domain.Task, error) {
	task, ok := r.tasks[id]
	if !ok || task.OwnerID != ownerID {
		return nil, domain.ErrTaskNotFound
	}
	return task, nil
}

// touch moves updated_at forward, strictly, even when the clock has not advanced.
func (r *taskRepository) touch(task *domain.Task) {
	now := r.now()
	if !now.After(task.UpdatedAt) {
		now = task.UpdatedAt.Add(time.Microsecond)
	}
	task.UpdatedAt = now
}
