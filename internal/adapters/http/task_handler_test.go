package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpadapters "github.com/productivityhub/stride/internal/adapters/http"
	"github.com/productivityhub/stride/internal/domain/entities"
	"github.com/productivityhub/stride/internal/infrastructure/logger"
	"github.com/productivityhub/stride/internal/ports"
)

// MockTaskService mocks the task service
type MockTaskService struct {
	mock.Mock
}

func (m *MockTaskService) List(ctx context.Context, ownerID uuid.UUID) ([]*entities.Task, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Task), args.Error(1)
}

func (m *MockTaskService) Create(ctx context.Context, ownerID uuid.UUID, req ports.CreateTaskRequest) (*entities.Task, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Task), args.Error(1)
}

func (m *MockTaskService) Get(ctx context.Context, ownerID uuid.UUID, id int64) (*entities.Task, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Task), args.Error(1)
}

func (m *MockTaskService) Update(ctx context.Context, ownerID uuid.UUID, id int64, req ports.UpdateTaskRequest) (*entities.Task, error) {
	args := m.Called(ctx, ownerID, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Task), args.Error(1)
}

func (m *MockTaskService) Delete(ctx context.Context, ownerID uuid.UUID, id int64) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

var _ ports.TaskService = (*MockTaskService)(nil)

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newTestContext(t *testing.T, method, path, body string, owner uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if owner != uuid.Nil {
		c.Set(httpadapters.ContextKeyUserID, owner)
	}
	return c, rec
}

func sampleTask(owner uuid.UUID) *entities.Task {
	return &entities.Task{
		ID:         1,
		OwnerID:    owner,
		Name:       "Drink water",
		Color:      entities.DefaultTaskColor,
		TaskType:   entities.DefaultTaskType,
		History:    entities.JSONMap{"2024-01-01": true},
		Recurrence: entities.JSONMap{},
		SortOrder:  2,
		CreatedAt:  time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestListTasks(t *testing.T) {
	owner := uuid.New()
	svc := new(MockTaskService)
	svc.On("List", mock.Anything, owner).Return([]*entities.Task{sampleTask(owner)}, nil)

	h := httpadapters.NewTaskHandler(svc, logger.NewNop())
	c, rec := newTestContext(t, http.MethodGet, "/api/stride/tasks/", "", owner)

	require.NoError(t, h.ListTasks(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var tasks []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tasks))
	require.Len(t, tasks, 1)

	// The wire form carries exactly the allowed fields; the owner is
	// never echoed.
	task := tasks[0]
	for _, field := range []string{"id", "name", "description", "color", "task_type", "history", "recurrence", "archived", "order", "created_at"} {
		assert.Contains(t, task, field)
	}
	assert.NotContains(t, task, "owner")
	assert.NotContains(t, task, "owner_id")
	assert.Len(t, task, 10)
}

func TestListTasksEmpty(t *testing.T) {
	owner := uuid.New()
	svc := new(MockTaskService)
	svc.On("List", mock.Anything, owner).Return([]*entities.Task{}, nil)

	h := httpadapters.NewTaskHandler(svc, logger.NewNop())
	c, rec := newTestContext(t, http.MethodGet, "/api/stride/tasks/", "", owner)

	require.NoError(t, h.ListTasks(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestCreateTask(t *testing.T) {
	owner := uuid.New()
	svc := new(MockTaskService)
	svc.On("Create", mock.Anything, owner, mock.MatchedBy(func(req ports.CreateTaskRequest) bool {
		return req.Name == "Drink water"
	})).Return(sampleTask(owner), nil)

	h := httpadapters.NewTaskHandler(svc, logger.NewNop())
	c, rec := newTestContext(t, http.MethodPost, "/api/stride/tasks/",
		`{"name": "Drink water", "history": {"2024-01-01": true}}`, owner)

	require.NoError(t, h.CreateTask(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateTaskIgnoresServerAssignedFields(t *testing.T) {
	owner := uuid.New()
	svc := new(MockTaskService)
	svc.On("Create", mock.Anything, owner, mock.MatchedBy(func(req ports.CreateTaskRequest) bool {
		// Client-supplied id/created_at/owner are dropped at binding:
		// the request type has no such fields.
		return req.Name == "Sneaky"
	})).Return(sampleTask(owner), nil)

	h := httpadapters.NewTaskHandler(svc, logger.NewNop())
	c, rec := newTestContext(t, http.MethodPost, "/api/stride/tasks/",
		`{"name": "Sneaky", "id": 999, "created_at": "1999-01-01T00:00:00Z", "owner": "someone-else"}`, owner)

	require.NoError(t, h.CreateTask(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	svc.AssertExpectations(t)
}

func TestCreateTaskMissingName(t *testing.T) {
	svc := new(MockTaskService)
	h := httpadapters.NewTaskHandler(svc, logger.NewNop())
	c, _ := newTestContext(t, http.MethodPost, "/api/stride/tasks/", `{"color": "#ffffff"}`, uuid.New())

	err := h.CreateTask(c)
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	svc.AssertNotCalled(t, "Create")
}

func TestGetTaskNotFound(t *testing.T) {
	owner := uuid.New()
	svc := new(MockTaskService)
	svc.On("Get", mock.Anything, owner, int64(42)).Return(nil, entities.ErrTaskNotFound)

	h := httpadapters.NewTaskHandler(svc, logger.NewNop())
	c, _ := newTestContext(t, http.MethodGet, "/api/stride/tasks/42/", "", owner)
	c.SetParamNames("id")
	c.SetParamValues("42")

	err := h.GetTask(c)
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}

func TestUpdateTask(t *testing.T) {
	owner := uuid.New()
	updated := sampleTask(owner)
	updated.Archived = true

	svc := new(MockTaskService)
	svc.On("Update", mock.Anything, owner, int64(1), mock.MatchedBy(func(req ports.UpdateTaskRequest) bool {
		return req.Archived != nil && *req.Archived
	})).Return(updated, nil)

	h := httpadapters.NewTaskHandler(svc, logger.NewNop())
	c, rec := newTestContext(t, http.MethodPatch, "/api/stride/tasks/1/", `{"archived": true}`, owner)
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, h.UpdateTask(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateTaskInvalidID(t *testing.T) {
	svc := new(MockTaskService)
	h := httpadapters.NewTaskHandler(svc, logger.NewNop())
	c, _ := newTestContext(t, http.MethodPatch, "/api/stride/tasks/abc/", `{}`, uuid.New())
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.UpdateTask(c)
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestDeleteTask(t *testing.T) {
	owner := uuid.New()
	svc := new(MockTaskService)
	svc.On("Delete", mock.Anything, owner, int64(1)).Return(nil)

	h := httpadapters.NewTaskHandler(svc, logger.NewNop())
	c, rec := newTestContext(t, http.MethodDelete, "/api/stride/tasks/1/", "", owner)
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, h.DeleteTask(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeleteTaskNotFound(t *testing.T) {
	owner := uuid.New()
	svc := new(MockTaskService)
	svc.On("Delete", mock.Anything, owner, int64(7)).Return(entities.ErrTaskNotFound)

	h := httpadapters.NewTaskHandler(svc, logger.NewNop())
	c, _ := newTestContext(t, http.MethodDelete, "/api/stride/tasks/7/", "", owner)
	c.SetParamNames("id")
	c.SetParamValues("7")

	err := h.DeleteTask(c)
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}
