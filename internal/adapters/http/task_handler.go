package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/productivityhub/stride/internal/domain/entities"
	"github.com/productivityhub/stride/internal/infrastructure/logger"
	"github.com/productivityhub/stride/internal/ports"
)

// TaskHandler handles task-related requests
type TaskHandler struct {
	taskService ports.TaskService
	logger      *logger.Logger
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService ports.TaskService, logger *logger.Logger) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		logger:      logger,
	}
}

// ListTasks returns all of the caller's tasks, ascending by order.
func (h *TaskHandler) ListTasks(c echo.Context) error {
	ownerID := GetUserIDFromContext(c)

	tasks, err := h.taskService.List(c.Request().Context(), ownerID)
	if err != nil {
		h.logger.Errorw("List tasks failed", "error", err, "owner_id", ownerID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to retrieve tasks")
	}

	return c.JSON(http.StatusOK, toTaskResponses(tasks))
}

// CreateTask creates a task owned by the caller.
func (h *TaskHandler) CreateTask(c echo.Context) error {
	ownerID := GetUserIDFromContext(c)

	var req ports.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := h.taskService.Create(c.Request().Context(), ownerID, req)
	if err != nil {
		if errors.Is(err, entities.ErrNameRequired) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		h.logger.Errorw("Create task failed", "error", err, "owner_id", ownerID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create task")
	}

	return c.JSON(http.StatusCreated, toTaskResponse(task))
}

// GetTask returns a single task owned by the caller.
func (h *TaskHandler) GetTask(c echo.Context) error {
	ownerID := GetUserIDFromContext(c)

	id, err := parseTaskID(c)
	if err != nil {
		return err
	}

	task, err := h.taskService.Get(c.Request().Context(), ownerID, id)
	if err != nil {
		return h.taskError(c, err, ownerID, id)
	}

	return c.JSON(http.StatusOK, toTaskResponse(task))
}

// UpdateTask applies a partial update to a task owned by the caller.
// PUT and PATCH share these semantics.
func (h *TaskHandler) UpdateTask(c echo.Context) error {
	ownerID := GetUserIDFromContext(c)

	id, err := parseTaskID(c)
	if err != nil {
		return err
	}

	var req ports.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	task, err := h.taskService.Update(c.Request().Context(), ownerID, id, req)
	if err != nil {
		if errors.Is(err, entities.ErrNameRequired) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return h.taskError(c, err, ownerID, id)
	}

	return c.JSON(http.StatusOK, toTaskResponse(task))
}

// DeleteTask removes a task owned by the caller.
func (h *TaskHandler) DeleteTask(c echo.Context) error {
	ownerID := GetUserIDFromContext(c)

	id, err := parseTaskID(c)
	if err != nil {
		return err
	}

	if err := h.taskService.Delete(c.Request().Context(), ownerID, id); err != nil {
		return h.taskError(c, err, ownerID, id)
	}

	return c.NoContent(http.StatusNoContent)
}

// taskError maps service errors to HTTP responses. A task that exists
// but belongs to another user gets the same 404 as a missing one.
func (h *TaskHandler) taskError(c echo.Context, err error, ownerID interface{}, id int64) error {
	if errors.Is(err, entities.ErrTaskNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Task not found")
	}

	h.logger.Errorw("Task operation failed", "error", err, "owner_id", ownerID, "task_id", id)
	return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
}

func parseTaskID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid task ID")
	}
	return id, nil
}
