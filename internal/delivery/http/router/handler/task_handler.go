package handler

import (
	"log/slog"
	"net/http"
	"time"

	"agenda/internal/delivery/http/response"
	"agenda/internal/domain/entity"
	"agenda/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TaskResponse is the task shape returned to clients.
type TaskResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	ContactEmail string `json:"contactEmail,omitempty"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Completed    bool   `json:"completed"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

func newTaskResponse(task *entity.Task) *TaskResponse {
	return &TaskResponse{
		ID:           task.ID.String(),
		Title:        task.Title,
		ContactEmail: task.ContactEmail,
		Date:         task.ScheduledDate,
		Time:         task.ScheduledTime,
		Completed:    task.Completed,
		CreatedAt:    task.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    task.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func newTaskListResponse(tasks []*entity.Task) []*TaskResponse {
	out := make([]*TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, newTaskResponse(task))
	}

	return out
}

// TaskHandler holds dependencies for task handlers. Every operation is scoped
// to the user resolved by the auth middleware.
type TaskHandler struct {
	uc     usecase.TaskUsecase
	logger *slog.Logger
}

// NewTaskHandler is the constructor for TaskHandler, injected by Fx.
func NewTaskHandler(uc usecase.TaskUsecase, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns all tasks of the current user.
func (h *TaskHandler) List(c echo.Context) error {
	ownerID, ok := ownerFromContext(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	tasks, err := h.uc.List(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newTaskListResponse(tasks), "Tasks retrieved successfully")
}

// Create adds a task to the current user's list.
func (h *TaskHandler) Create(c echo.Context) error {
	ownerID, ok := ownerFromContext(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var input *usecase.CreateTaskInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid task input")
	}

	task, err := h.uc.Create(c.Request().Context(), ownerID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newTaskResponse(task), "Task created successfully")
}

// Update applies a partial update to one of the current user's tasks.
func (h *TaskHandler) Update(c echo.Context) error {
	ownerID, ok := ownerFromContext(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c, "TASK_NOT_FOUND", "Task not found")
	}

	var input *usecase.UpdateTaskInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid task input")
	}

	task, err := h.uc.Update(c.Request().Context(), ownerID, taskID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newTaskResponse(task), "Task updated successfully")
}

// Delete removes one of the current user's tasks.
func (h *TaskHandler) Delete(c echo.Context) error {
	ownerID, ok := ownerFromContext(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c, "TASK_NOT_FOUND", "Task not found")
	}

	if err := h.uc.Delete(c.Request().Context(), ownerID, taskID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func ownerFromContext(c echo.Context) (uuid.UUID, bool) {
	ownerID, ok := c.Get("userID").(uuid.UUID)

	return ownerID, ok
}
