package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/sannty/salescrm/pkg/models"
	"github.com/sannty/salescrm/pkg/tasks"
)

// TaskHandler handles task HTTP endpoints
type TaskHandler struct {
	tasks     *tasks.Service
	validator *validator.Validate
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskSvc *tasks.Service) *TaskHandler {
	return &TaskHandler{tasks: taskSvc, validator: validator.New()}
}

// CreateTask godoc
// @Summary Create a task
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body tasks.CreateTaskRequest true "Task data"
// @Success 201 {object} ent.Task
// @Failure 400 {object} models.ErrorResponse
// @Router /tasks [post]
func (h *TaskHandler) CreateTask(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	var req tasks.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request format"})
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Validation failed", Message: err.Error()})
	}

	orgID, userID := requestScope(c)
	created, err := h.tasks.Create(ctx, orgID, userID, req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to create task"})
	}

	return c.JSON(http.StatusCreated, created)
}

// ListTasks godoc
// @Summary List tasks
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param owner_id query int false "Filter by owner"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} ent.Task
// @Router /tasks [get]
func (h *TaskHandler) ListTasks(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	orgID, _ := requestScope(c)
	result, err := h.tasks.List(ctx, orgID, c.QueryParam("status"), queryIntPtr(c, "owner_id"), queryInt(c, "limit", 50), queryInt(c, "offset", 0))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to list tasks"})
	}

	return c.JSON(http.StatusOK, result)
}

// GetTask godoc
// @Summary Get a task
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param id path int true "Task ID"
// @Success 200 {object} ent.Task
// @Failure 404 {object} models.ErrorResponse
// @Router /tasks/{id} [get]
func (h *TaskHandler) GetTask(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid task ID"})
	}

	orgID, _ := requestScope(c)
	t, err := h.tasks.Get(ctx, orgID, id)
	if err != nil {
		if errors.Is(err, tasks.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Task not found"})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to fetch task"})
	}

	return c.JSON(http.StatusOK, t)
}

// UpdateTask godoc
// @Summary Update a task
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Task ID"
// @Param request body tasks.UpdateTaskRequest true "Fields to update"
// @Success 200 {object} ent.Task
// @Failure 404 {object} models.ErrorResponse
// @Router /tasks/{id} [put]
func (h *TaskHandler) UpdateTask(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid task ID"})
	}

	var req tasks.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request format"})
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Validation failed", Message: err.Error()})
	}

	orgID, _ := requestScope(c)
	updated, err := h.tasks.Update(ctx, orgID, id, req)
	if err != nil {
		if errors.Is(err, tasks.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Task not found"})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to update task"})
	}

	return c.JSON(http.StatusOK, updated)
}

// CompleteTask godoc
// @Summary Mark a task completed
// @Description Completes the task and records it on the activity timeline
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param id path int true "Task ID"
// @Success 200 {object} ent.Task
// @Failure 404 {object} models.ErrorResponse
// @Router /tasks/{id}/complete [post]
func (h *TaskHandler) CompleteTask(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid task ID"})
	}

	orgID, userID := requestScope(c)
	completed, err := h.tasks.MarkCompleted(ctx, orgID, userID, id)
	if err != nil {
		if errors.Is(err, tasks.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Task not found"})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to complete task"})
	}

	return c.JSON(http.StatusOK, completed)
}

// DeleteTask godoc
// @Summary Delete a task
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param id path int true "Task ID"
// @Success 200 {object} models.SuccessResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid task ID"})
	}

	orgID, _ := requestScope(c)
	if err := h.tasks.Delete(ctx, orgID, id); err != nil {
		if errors.Is(err, tasks.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Task not found"})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to delete task"})
	}

	return c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Message: "Task deleted"})
}

// OverdueTasks godoc
// @Summary List overdue tasks
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ent.Task
// @Router /tasks/overdue [get]
func (h *TaskHandler) OverdueTasks(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	orgID, _ := requestScope(c)
	result, err := h.tasks.Overdue(ctx, orgID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to list overdue tasks"})
	}

	return c.JSON(http.StatusOK, result)
}
