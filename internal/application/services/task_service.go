package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/productivityhub/stride/internal/domain/entities"
	"github.com/productivityhub/stride/internal/infrastructure/logger"
	"github.com/productivityhub/stride/internal/ports"
)

// TaskService implements the ownership-scoped task operations. Every
// method takes the resolved caller identity; no task belonging to
// another user is ever returned or mutated.
type TaskService struct {
	taskRepo ports.TaskRepository
	logger   *logger.Logger
}

// NewTaskService creates a new task service
func NewTaskService(taskRepo ports.TaskRepository, logger *logger.Logger) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		logger:   logger,
	}
}

var _ ports.TaskService = (*TaskService)(nil)

// List returns all of the caller's tasks, ascending by sort order.
func (s *TaskService) List(ctx context.Context, ownerID uuid.UUID) ([]*entities.Task, error) {
	tasks, err := s.taskRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, nil
}

// Create validates the request, fills defaults and binds the owner to
// the caller. Client-supplied id, owner and created_at never reach the
// store: the request type simply has no such fields.
func (s *TaskService) Create(ctx context.Context, ownerID uuid.UUID, req ports.CreateTaskRequest) (*entities.Task, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, entities.ErrNameRequired
	}

	task := &entities.Task{
		OwnerID:    ownerID,
		Name:       req.Name,
		Color:      entities.DefaultTaskColor,
		TaskType:   entities.DefaultTaskType,
		History:    entities.JSONMap{},
		Recurrence: entities.JSONMap{},
	}

	if req.Description != nil {
		task.Description = req.Description
	}
	if req.Color != nil {
		task.Color = *req.Color
	}
	if req.TaskType != nil {
		task.TaskType = *req.TaskType
	}
	if req.History != nil {
		task.History = req.History
	}
	if req.Recurrence != nil {
		task.Recurrence = req.Recurrence
	}
	if req.Archived != nil {
		task.Archived = *req.Archived
	}
	if req.SortOrder != nil {
		task.SortOrder = *req.SortOrder
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.Infow("Task created", "task_id", task.ID, "owner_id", ownerID)

	return task, nil
}

// Get retrieves a single task owned by the caller.
func (s *TaskService) Get(ctx context.Context, ownerID uuid.UUID, id int64) (*entities.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	return task, nil
}

// Update applies a partial patch to a task owned by the caller. Nil
// fields are left unchanged; the owner is immutable.
func (s *TaskService) Update(ctx context.Context, ownerID uuid.UUID, id int64, req ports.UpdateTaskRequest) (*entities.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, entities.ErrNameRequired
		}
		task.Name = *req.Name
	}
	if req.Description != nil {
		task.Description = req.Description
	}
	if req.Color != nil {
		task.Color = *req.Color
	}
	if req.TaskType != nil {
		task.TaskType = *req.TaskType
	}
	if req.History != nil {
		task.History = req.History
	}
	if req.Recurrence != nil {
		task.Recurrence = req.Recurrence
	}
	if req.Archived != nil {
		task.Archived = *req.Archived
	}
	if req.SortOrder != nil {
		task.SortOrder = *req.SortOrder
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}

	s.logger.Infow("Task updated", "task_id", task.ID, "owner_id", ownerID)

	return task, nil
}

// Delete removes a task owned by the caller.
func (s *TaskService) Delete(ctx context.Context, ownerID uuid.UUID, id int64) error {
	if err := s.taskRepo.Delete(ctx, id, ownerID); err != nil {
		return err
	}

	s.logger.Infow("Task deleted", "task_id", id, "owner_id", ownerID)

	return nil
}
