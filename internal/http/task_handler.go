package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"task-tracker-system.com/task-tracker-system/internal/constants"
	dto "task-tracker-system.com/task-tracker-system/internal/data_models"
	errs "task-tracker-system.com/task-tracker-system/internal/errors"
	"task-tracker-system.com/task-tracker-system/internal/http/validators"
	"task-tracker-system.com/task-tracker-system/internal/query"
	"task-tracker-system.com/task-tracker-system/internal/services"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) ListTasks(c echo.Context) error {
	q, err := query.Parse(c.QueryParams(), constants.DefaultTaskListLimit)
	if err != nil {
		return respondError(c, err, "Invalid query parameters")
	}

	ctx := c.Request().Context()

	if q.CountOnly {
		n, err := h.taskService.CountTasks(ctx, q)
		if err != nil {
			return respondError(c, err, "Server error occurred while fetching tasks")
		}
		return respond(c, http.StatusOK, "OK", n)
	}

	tasks, err := h.taskService.ListTasks(ctx, q)
	if err != nil {
		return respondError(c, err, "Server error occurred while fetching tasks")
	}

	if q.HasSelect() {
		projected := make([]map[string]any, 0, len(tasks))
		for i := range tasks {
			projected = append(projected, q.Project(&tasks[i]))
		}
		return respond(c, http.StatusOK, "OK", projected)
	}
	return respond(c, http.StatusOK, "OK", tasks)
}

func (h *TaskHandler) GetTask(c echo.Context) error {
	q, err := query.Parse(c.QueryParams(), 0)
	if err != nil {
		return respondError(c, err, "Invalid query parameters")
	}

	task, err := h.taskService.GetTask(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err, "Server error occurred while fetching task")
	}

	if q.HasSelect() {
		return respond(c, http.StatusOK, "OK", q.Project(task))
	}
	return respond(c, http.StatusOK, "OK", task)
}

func (h *TaskHandler) CreateTask(c echo.Context) error {
	var req dto.TaskRequestData
	if err := c.Bind(&req); err != nil {
		return respondError(c, errs.ErrInvalidJSON, "")
	}
	if err := validators.ValidateTaskRequest(&req); err != nil {
		return respondError(c, err, "")
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err, "Server error occurred while creating task")
	}
	return respond(c, http.StatusCreated, "Task created successfully", task)
}

func (h *TaskHandler) UpdateTask(c echo.Context) error {
	var req dto.TaskRequestData
	if err := c.Bind(&req); err != nil {
		return respondError(c, errs.ErrInvalidJSON, "")
	}
	if err := validators.ValidateTaskRequest(&req); err != nil {
		return respondError(c, err, "")
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return respondError(c, err, "Server error occurred while updating task")
	}
	return respond(c, http.StatusOK, "Task updated successfully", task)
}

func (h *TaskHandler) DeleteTask(c echo.Context) error {
	if err := h.taskService.DeleteTask(c.Request().Context(), c.Param("id")); err != nil {
		return respondError(c, err, "Server error occurred while deleting task")
	}
	return respondNoContent(c)
}
