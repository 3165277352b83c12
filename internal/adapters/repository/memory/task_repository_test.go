package memory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/productivityhub/stride/internal/domain/entities"
)

func newTask(owner uuid.UUID, name string, order int) *entities.Task {
	return &entities.Task{
		OwnerID:    owner,
		Name:       name,
		Color:      entities.DefaultTaskColor,
		TaskType:   entities.DefaultTaskType,
		History:    entities.JSONMap{},
		Recurrence: entities.JSONMap{},
		SortOrder:  order,
	}
}

func TestCreateAssignsIDAndTimestamp(t *testing.T) {
	repo := NewTaskRepository()
	owner := uuid.New()

	task := newTask(owner, "Drink water", 0)
	require.NoError(t, repo.Create(context.Background(), task))

	assert.NotZero(t, task.ID)
	assert.False(t, task.CreatedAt.IsZero())

	second := newTask(owner, "Stretch", 0)
	require.NoError(t, repo.Create(context.Background(), second))
	assert.NotEqual(t, task.ID, second.ID)
}

func TestListByOwnerSortsAscending(t *testing.T) {
	repo := NewTaskRepository()
	owner := uuid.New()

	for _, order := range []int{3, 1, 2} {
		require.NoError(t, repo.Create(context.Background(), newTask(owner, "task", order)))
	}

	tasks, err := repo.ListByOwner(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, 1, tasks[0].SortOrder)
	assert.Equal(t, 2, tasks[1].SortOrder)
	assert.Equal(t, 3, tasks[2].SortOrder)
}

func TestOwnershipIsolation(t *testing.T) {
	repo := NewTaskRepository()
	alice := uuid.New()
	bob := uuid.New()

	aliceTask := newTask(alice, "Alice's habit", 0)
	require.NoError(t, repo.Create(context.Background(), aliceTask))

	bobTasks, err := repo.ListByOwner(context.Background(), bob)
	require.NoError(t, err)
	assert.Empty(t, bobTasks)

	// Bob cannot see, update or delete Alice's task; every path reports
	// the same not-found error as a genuinely missing id.
	_, err = repo.GetByID(context.Background(), aliceTask.ID, bob)
	assert.ErrorIs(t, err, entities.ErrTaskNotFound)

	foreign := *aliceTask
	foreign.OwnerID = bob
	assert.ErrorIs(t, repo.Update(context.Background(), &foreign), entities.ErrTaskNotFound)

	assert.ErrorIs(t, repo.Delete(context.Background(), aliceTask.ID, bob), entities.ErrTaskNotFound)

	_, err = repo.GetByID(context.Background(), 9999, bob)
	assert.ErrorIs(t, err, entities.ErrTaskNotFound)
}

func TestUpdatePreservesCreatedAt(t *testing.T) {
	repo := NewTaskRepository()
	owner := uuid.New()

	task := newTask(owner, "Read", 0)
	require.NoError(t, repo.Create(context.Background(), task))
	created := task.CreatedAt

	task.Name = "Read more"
	require.NoError(t, repo.Update(context.Background(), task))

	stored, err := repo.GetByID(context.Background(), task.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, "Read more", stored.Name)
	assert.Equal(t, created, stored.CreatedAt)
}

func TestDeleteRemovesTask(t *testing.T) {
	repo := NewTaskRepository()
	owner := uuid.New()

	task := newTask(owner, "Meditate", 0)
	require.NoError(t, repo.Create(context.Background(), task))

	require.NoError(t, repo.Delete(context.Background(), task.ID, owner))

	_, err := repo.GetByID(context.Background(), task.ID, owner)
	assert.ErrorIs(t, err, entities.ErrTaskNotFound)
}
