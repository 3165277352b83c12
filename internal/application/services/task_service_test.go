package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/productivityhub/stride/internal/adapters/repository/memory"
	"github.com/productivityhub/stride/internal/application/services"
	"github.com/productivityhub/stride/internal/domain/entities"
	"github.com/productivityhub/stride/internal/infrastructure/logger"
	"github.com/productivityhub/stride/internal/ports"
)

func newTaskService() *services.TaskService {
	return services.NewTaskService(memory.NewTaskRepository(), logger.NewNop())
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

func TestCreateAppliesDefaults(t *testing.T) {
	svc := newTaskService()
	owner := uuid.New()

	task, err := svc.Create(context.Background(), owner, ports.CreateTaskRequest{Name: "Drink water"})
	require.NoError(t, err)

	assert.Equal(t, "Drink water", task.Name)
	assert.Equal(t, entities.DefaultTaskColor, task.Color)
	assert.Equal(t, entities.DefaultTaskType, task.TaskType)
	assert.NotNil(t, task.History)
	assert.Empty(t, task.History)
	assert.NotNil(t, task.Recurrence)
	assert.False(t, task.Archived)
	assert.Equal(t, 0, task.SortOrder)
	assert.Nil(t, task.Description)
	assert.Equal(t, owner, task.OwnerID)
	assert.NotZero(t, task.ID)
	assert.False(t, task.CreatedAt.IsZero())
}

func TestCreateRequiresName(t *testing.T) {
	svc := newTaskService()

	_, err := svc.Create(context.Background(), uuid.New(), ports.CreateTaskRequest{Name: "   "})
	assert.ErrorIs(t, err, entities.ErrNameRequired)
}

func TestCreateHonorsClientFields(t *testing.T) {
	svc := newTaskService()
	owner := uuid.New()

	task, err := svc.Create(context.Background(), owner, ports.CreateTaskRequest{
		Name:        "Run",
		Description: strPtr("5k around the park"),
		Color:       strPtr("#ff0000"),
		TaskType:    strPtr("todo"),
		History:     entities.JSONMap{"2024-01-01": true},
		Recurrence:  entities.JSONMap{"type": "daily"},
		Archived:    boolPtr(true),
		SortOrder:   intPtr(7),
	})
	require.NoError(t, err)

	assert.Equal(t, "#ff0000", task.Color)
	assert.Equal(t, "todo", task.TaskType)
	assert.Equal(t, "5k around the park", *task.Description)
	assert.Equal(t, entities.JSONMap{"2024-01-01": true}, task.History)
	assert.True(t, task.Archived)
	assert.Equal(t, 7, task.SortOrder)
}

func TestListSortedAscendingByOrder(t *testing.T) {
	svc := newTaskService()
	owner := uuid.New()

	for _, order := range []int{3, 1, 2} {
		_, err := svc.Create(context.Background(), owner, ports.CreateTaskRequest{
			Name:      "task",
			SortOrder: intPtr(order),
		})
		require.NoError(t, err)
	}

	tasks, err := svc.List(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{tasks[0].SortOrder, tasks[1].SortOrder, tasks[2].SortOrder})
}

func TestListEmptyForFreshUser(t *testing.T) {
	svc := newTaskService()

	tasks, err := svc.List(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestOwnershipIsolationAcrossUsers(t *testing.T) {
	svc := newTaskService()
	alice := uuid.New()
	bob := uuid.New()

	created, err := svc.Create(context.Background(), alice, ports.CreateTaskRequest{Name: "Alice's habit"})
	require.NoError(t, err)

	bobTasks, err := svc.List(context.Background(), bob)
	require.NoError(t, err)
	assert.Empty(t, bobTasks)

	_, err = svc.Get(context.Background(), bob, created.ID)
	assert.ErrorIs(t, err, entities.ErrTaskNotFound)

	_, err = svc.Update(context.Background(), bob, created.ID, ports.UpdateTaskRequest{Name: strPtr("stolen")})
	assert.ErrorIs(t, err, entities.ErrTaskNotFound)

	err = svc.Delete(context.Background(), bob, created.ID)
	assert.ErrorIs(t, err, entities.ErrTaskNotFound)

	// The task is untouched after Bob's attempts
	stored, err := svc.Get(context.Background(), alice, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice's habit", stored.Name)
}

func TestNotFoundIndistinguishable(t *testing.T) {
	svc := newTaskService()
	alice := uuid.New()
	bob := uuid.New()

	created, err := svc.Create(context.Background(), alice, ports.CreateTaskRequest{Name: "habit"})
	require.NoError(t, err)

	// Foreign id and nonexistent id yield the exact same error
	_, errForeign := svc.Get(context.Background(), bob, created.ID)
	_, errMissing := svc.Get(context.Background(), bob, created.ID+1000)
	assert.Equal(t, errForeign, errMissing)
}

func TestUpdatePartialPatch(t *testing.T) {
	svc := newTaskService()
	owner := uuid.New()

	created, err := svc.Create(context.Background(), owner, ports.CreateTaskRequest{
		Name:  "Read",
		Color: strPtr("#123456"),
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), owner, created.ID, ports.UpdateTaskRequest{
		Archived: boolPtr(true),
	})
	require.NoError(t, err)

	// Only archived changed
	assert.Equal(t, "Read", updated.Name)
	assert.Equal(t, "#123456", updated.Color)
	assert.True(t, updated.Archived)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, owner, updated.OwnerID)
}

func TestUpdateRejectsBlankName(t *testing.T) {
	svc := newTaskService()
	owner := uuid.New()

	created, err := svc.Create(context.Background(), owner, ports.CreateTaskRequest{Name: "Read"})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), owner, created.ID, ports.UpdateTaskRequest{Name: strPtr("  ")})
	assert.ErrorIs(t, err, entities.ErrNameRequired)
}

func TestHistoryRoundTrip(t *testing.T) {
	svc := newTaskService()
	owner := uuid.New()

	history := entities.JSONMap{
		"2024-01-01": true,
		"notes":      map[string]interface{}{"mood": "good", "minutes": float64(25)},
	}

	created, err := svc.Create(context.Background(), owner, ports.CreateTaskRequest{
		Name:    "Journal",
		History: history,
	})
	require.NoError(t, err)

	fetched, err := svc.Get(context.Background(), owner, created.ID)
	require.NoError(t, err)
	assert.Equal(t, history, fetched.History)
}

func TestDeleteThenGetNotFound(t *testing.T) {
	svc := newTaskService()
	owner := uuid.New()

	created, err := svc.Create(context.Background(), owner, ports.CreateTaskRequest{Name: "habit"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), owner, created.ID))

	_, err = svc.Get(context.Background(), owner, created.ID)
	assert.ErrorIs(t, err, entities.ErrTaskNotFound)
}
