package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/productivityhub/stride/internal/domain/entities"
	"github.com/productivityhub/stride/internal/ports"
)

// TaskRepositoryImpl implements the TaskRepository interface on Postgres.
type TaskRepositoryImpl struct {
	db *sqlx.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *sqlx.DB) ports.TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

func (r *TaskRepositoryImpl) Create(ctx context.Context, task *entities.Task) error {
	query := `
		INSERT INTO tasks (owner_id, name, description, color, task_type, history, recurrence, archived, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		task.OwnerID, task.Name, task.Description, task.Color, task.TaskType,
		task.History, task.Recurrence, task.Archived, task.SortOrder,
	).Scan(&task.ID, &task.CreatedAt)

	if err != nil {
		return fmt.Errorf("create task: %w", err)
	}

	return nil
}

// GetByID fetches a task only if it belongs to ownerID. A task owned by
// someone else surfaces as ErrTaskNotFound, same as a missing row.
func (r *TaskRepositoryImpl) GetByID(ctx context.Context, id int64, ownerID uuid.UUID) (*entities.Task, error) {
	query := `
		SELECT id, owner_id, name, description, color, task_type, history, recurrence,
			archived, sort_order, created_at
		FROM tasks
		WHERE id = $1 AND owner_id = $2`

	var task entities.Task
	err := r.db.GetContext(ctx, &task, query, id, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.ErrTaskNotFound
		}
		return nil, fmt.Errorf("get task by id: %w", err)
	}

	return &task, nil
}

func (r *TaskRepositoryImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.Task, error) {
	query := `
		SELECT id, owner_id, name, description, color, task_type, history, recurrence,
			archived, sort_order, created_at
		FROM tasks
		WHERE owner_id = $1
		ORDER BY sort_order ASC, id ASC`

	tasks := []*entities.Task{}
	err := r.db.SelectContext(ctx, &tasks, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	return tasks, nil
}

func (r *TaskRepositoryImpl) Update(ctx context.Context, task *entities.Task) error {
	query := `
		UPDATE tasks
		SET name = $3, description = $4, color = $5, task_type = $6,
			history = $7, recurrence = $8, archived = $9, sort_order = $10
		WHERE id = $1 AND owner_id = $2`

	result, err := r.db.ExecContext(ctx, query,
		task.ID, task.OwnerID, task.Name, task.Description, task.Color,
		task.TaskType, task.History, task.Recurrence, task.Archived, task.SortOrder,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return entities.ErrTaskNotFound
	}

	return nil
}

func (r *TaskRepositoryImpl) Delete(ctx context.Context, id int64, ownerID uuid.UUID) error {
	query := `DELETE FROM tasks WHERE id = $1 AND owner_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return entities.ErrTaskNotFound
	}

	return nil
}
