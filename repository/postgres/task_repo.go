package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fastygo/todo/domain"
	"github.com/fastygo/todo/repository"
)

const taskColumns = `id, owner_id, title, description, completed, created_at, updated_at`

type taskRepository struct {
	pool *pgxpool.Pool
}

// NewTaskRepository returns a Postgres-backed implementation of TaskRepository.
func NewTaskRepository(pool *pgxpool.Pool) repository.TaskRepository {
	return &taskRepository{pool: pool}
}

func (r *taskRepository) Create(ctx context.Context, draft domain.TaskDraft) (*domain.Task, error) {
	draft, err := draft.Normalize()
	if err != nil {
		return nil, err
	}

	const query = `
	WITH n AS (SELECT clock_timestamp() AS ts)
	INSERT INTO tasks (owner_id, title, description, completed, created_at, updated_at)
	SELECT $1::text, $2::text, $3::text, $4::boolean, n.ts, n.ts FROM n
	RETURNING ` + taskColumns

	row := r.pool.QueryRow(ctx, query,
		draft.OwnerID,
		draft.Title,
		nullableString(draft.Description),
		draft.Completed,
	)
	return scanTask(row)
}

func (r *taskRepository) Get(ctx context.Context, id int64, ownerID string) (*domain.Task, error) {
	const query = `
	SELECT ` + taskColumns + `
	FROM tasks
	WHERE id = $1 AND owner_id = $2
	`
	row := r.pool.QueryRow(ctx, query, id, ownerID)
	return scanTask(row)
}

func (r *taskRepository) List(ctx context.Context, q domain.TaskQuery) ([]domain.Task, error) {
	var completed interface{}
	if value, ok := q.Status.Completed(); ok {
		completed = value
	}

	query := `
	SELECT ` + taskColumns + `
	FROM tasks
	WHERE owner_id = $1
	  AND ($2::boolean IS NULL OR completed = $2::boolean)
	ORDER BY ` + orderClause(q.Sort)

	rows, err := r.pool.Query(ctx, query, q.OwnerID, completed)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]domain.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	return tasks, rows.Err()
}

func (r *taskRepository) Update(ctx context.Context, id int64, ownerID string, patch domain.TaskPatch) (*domain.Task, error) {
	patch, err := patch.Normalize()
	if err != nil {
		return nil, err
	}

	const query = `
	UPDATE tasks
	SET title = COALESCE($3::text, title),
		description = CASE WHEN $4::boolean THEN $5::text ELSE description END,
		completed = COALESCE($6::boolean, completed),
		updated_at = ` + nextTimestamp + `
	WHERE id = $1 AND owner_id = $2
	RETURNING ` + taskColumns

	var completed interface{}
	if patch.Completed != nil {
		completed = *patch.Completed
	}
	touchDescription := patch.Description != nil || patch.ClearDescription

	row := r.pool.QueryRow(ctx, query,
		id,
		ownerID,
		nullableString(patch.Title),
		touchDescription,
		nullableString(patch.Description),
		completed,
	)
	return scanTask(row)
}

func (r *taskRepository) Delete(ctx context.Context, id int64, ownerID string) (bool, error) {
	const query = `DELETE FROM tasks WHERE id = $1 AND owner_id = $2`
	tag, err := r.pool.Exec(ctx, query, id, ownerID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *taskRepository) Toggle(ctx context.Context, id int64, ownerID string) (*domain.Task, error) {
	const query = `
	UPDATE tasks
	SET completed = NOT completed,
		updated_at = ` + nextTimestamp + `
	WHERE id = $1 AND owner_id = $2
	RETURNING ` + taskColumns

	row := r.pool.QueryRow(ctx, query, id, ownerID)
	return scanTask(row)
}

func orderClause(order domain.SortOrder) string {
	if order == domain.SortByTitle {
		return "title ASC, id ASC"
	}
	return "created_at ASC, id ASC"
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var task domain.Task
	if err := row.Scan(
		&task.ID,
		&task.OwnerID,
		&task.Title,
		&task.Description,
		&task.Completed,
		&task.CreatedAt,
		&task.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}
