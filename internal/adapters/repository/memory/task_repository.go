// Package memory provides an in-memory TaskRepository with the same
// ownership contract as the Postgres implementation. It backs the
// service-level tests and local development without a database.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/productivityhub/stride/internal/domain/entities"
	"github.com/productivityhub/stride/internal/ports"
)

// TaskRepository stores tasks in a mutex-guarded map.
type TaskRepository struct {
	mtx    sync.RWMutex
	tasks  map[int64]*entities.Task
	nextID int64
}

// NewTaskRepository creates an empty in-memory task repository.
func NewTaskRepository() *TaskRepository {
	return &TaskRepository{
		tasks:  make(map[int64]*entities.Task),
		nextID: 1,
	}
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func (r *TaskRepository) Create(ctx context.Context, task *entities.Task) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	task.ID = r.nextID
	r.nextID++
	task.CreatedAt = time.Now().UTC()

	stored := *task
	r.tasks[task.ID] = &stored
	return nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id int64, ownerID uuid.UUID) (*entities.Task, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	task, ok := r.tasks[id]
	if !ok || task.OwnerID != ownerID {
		return nil, entities.ErrTaskNotFound
	}

	cp := *task
	return &cp, nil
}

func (r *TaskRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.Task, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	result := []*entities.Task{}
	for _, task := range r.tasks {
		if task.OwnerID == ownerID {
			cp := *task
			result = append(result, &cp)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].SortOrder != result[j].SortOrder {
			return result[i].SortOrder < result[j].SortOrder
		}
		return result[i].ID < result[j].ID
	})

	return result, nil
}

func (r *TaskRepository) Update(ctx context.Context, task *entities.Task) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	existing, ok := r.tasks[task.ID]
	if !ok || existing.OwnerID != task.OwnerID {
		return entities.ErrTaskNotFound
	}

	// id, owner and created_at stay as stored
	task.CreatedAt = existing.CreatedAt
	stored := *task
	r.tasks[task.ID] = &stored
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id int64, ownerID uuid.UUID) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	existing, ok := r.tasks[id]
	if !ok || existing.OwnerID != ownerID {
		return entities.ErrTaskNotFound
	}

	delete(r.tasks, id)
	return nil
}
