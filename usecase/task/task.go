package task

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/fastygo/todo/domain"
	"github.com/fastygo/todo/pkg/logger"
	"github.com/fastygo/todo/repository"
)

const tracerName = "github.com/fastygo/todo/usecase/task"

// UseCase is the task query service: it enforces ownership, turns raw filter
// and sort input into a query and records successful mutations.
type UseCase struct {
	tasks    repository.TaskRepository
	activity repository.ActivityRepository
	logger   *zap.Logger
	tracer   trace.Tracer
}

// New builds the use case. activity may be nil to disable the journal.
func New(tasks repository.TaskRepository, activity repository.ActivityRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:    tasks,
		activity: activity,
		logger:   logger,
		tracer:   otel.Tracer(tracerName),
	}
}

// ListTasks returns ownerID's tasks. Unknown status values list everything.
func (uc *UseCase) ListTasks(ctx context.Context, actorID, ownerID, status, sort string) (tasks []domain.Task, err error) {
	ctx, span := uc.start(ctx, "ListTasks", ownerID, 0)
	defer func() { finish(span, err) }()

	if err := authorize(actorID, ownerID); err != nil {
		return nil, err
	}

	query := domain.TaskQuery{
		OwnerID: ownerID,
		Status:  domain.ParseStatusFilter(status),
		Sort:    domain.ParseSortOrder(sort),
	}
	span.SetAttributes(
		attribute.String("task.status_filter", query.Status.String()),
		attribute.String("task.sort", query.Sort.String()),
	)

	tasks, err = uc.tasks.List(ctx, query)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("task.count", len(tasks)))
	return tasks, nil
}

func (uc *UseCase) GetTask(ctx context.Context, actorID, ownerID string, id int64) (task *domain.Task, err error) {
	ctx, span := uc.start(ctx, "GetTask", ownerID, id)
	defer func() { finish(span, err) }()

	if err := authorize(actorID, ownerID); err != nil {
		return nil, err
	}
	return uc.tasks.Get(ctx, id, ownerID)
}

func (uc *UseCase) CreateTask(ctx context.Context, actorID, ownerID string, draft domain.TaskDraft) (task *domain.Task, err error) {
	ctx, span := uc.start(ctx, "CreateTask", ownerID, 0)
	defer func() { finish(span, err) }()

	if err := authorize(actorID, ownerID); err != nil {
		return nil, err
	}

	draft.OwnerID = ownerID
	task, err = uc.tasks.Create(ctx, draft)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int64("task.id", task.ID))
	uc.record(ctx, task, domain.ActivityCreated)
	return task, nil
}

// UpdateTask applies only the fields set on patch.
func (uc *UseCase) UpdateTask(ctx context.Context, actorID, ownerID string, id int64, patch domain.TaskPatch) (task *domain.Task, err error) {
	ctx, span := uc.start(ctx, "UpdateTask", ownerID, id)
	defer func() { finish(span, err) }()

	if err := authorize(actorID, ownerID); err != nil {
		return nil, err
	}

	task, err = uc.tasks.Update(ctx, id, ownerID, patch)
	if err != nil {
		return nil, err
	}
	uc.record(ctx, task, domain.ActivityUpdated)
	return task, nil
}

func (uc *UseCase) DeleteTask(ctx context.Context, actorID, ownerID string, id int64) (err error) {
	ctx, span := uc.start(ctx, "DeleteTask", ownerID, id)
	defer func() { finish(span, err) }()

	if err := authorize(actorID, ownerID); err != nil {
		return err
	}

	removed, err := uc.tasks.Delete(ctx, id, ownerID)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrTaskNotFound
	}
	uc.record(ctx, &domain.Task{ID: id, OwnerID: ownerID}, domain.ActivityDeleted)
	return nil
}

func (uc *UseCase) ToggleTask(ctx context.Context, actorID, ownerID string, id int64) (task *domain.Task, err error) {
	ctx, span := uc.start(ctx, "ToggleTask", ownerID, id)
	defer func() { finish(span, err) }()

	if err := authorize(actorID, ownerID); err != nil {
		return nil, err
	}

	task, err = uc.tasks.Toggle(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Bool("task.completed", task.Completed))
	uc.record(ctx, task, domain.ActivityToggled)
	return task, nil
}

// authorize runs before any store access.
func authorize(actorID, ownerID string) error {
	if actorID == "" || actorID != ownerID {
		return domain.ErrForbidden
	}
	return nil
}

func (uc *UseCase) record(ctx context.Context, task *domain.Task, action domain.ActivityAction) {
	if uc.activity == nil || task == nil {
		return
	}

	entry := domain.Activity{
		OwnerID: task.OwnerID,
		TaskID:  task.ID,
		Action:  action,
		At:      time.Now(),
	}
	if action == domain.ActivityToggled {
		completed := task.Completed
		entry.Completed = &completed
	}

	if err := uc.activity.Append(ctx, entry); err != nil {
		logger.WithRequestID(ctx, uc.logger).Warn("failed to record task activity",
			zap.String("action", string(action)),
			zap.Int64("task_id", task.ID),
			zap.Error(err))
	}
}

func (uc *UseCase) start(ctx context.Context, op, ownerID string, id int64) (context.Context, trace.Span) {
	attrs := []attribute.KeyValue{attribute.String("task.owner_id", ownerID)}
	if id > 0 {
		attrs = append(attrs, attribute.Int64("task.id", id))
	}
	return uc.tracer.Start(ctx, "task."+op, trace.WithAttributes(attrs...))
}

func finish(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
