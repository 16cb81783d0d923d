package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "task-tracker-system.com/task-tracker-system/internal/data_models"
	errs "task-tracker-system.com/task-tracker-system/internal/errors"
	"task-tracker-system.com/task-tracker-system/internal/http/validators"
	"task-tracker-system.com/task-tracker-system/internal/query"
	"task-tracker-system.com/task-tracker-system/internal/services"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	q, err := query.Parse(c.QueryParams(), 0)
	if err != nil {
		return respondError(c, err, "Invalid query parameters")
	}

	ctx := c.Request().Context()

	if q.CountOnly {
		n, err := h.userService.CountUsers(ctx, q)
		if err != nil {
			return respondError(c, err, "Server error occurred while fetching users")
		}
		return respond(c, http.StatusOK, "OK", n)
	}

	users, err := h.userService.ListUsers(ctx, q)
	if err != nil {
		return respondError(c, err, "Server error occurred while fetching users")
	}

	if q.HasSelect() {
		projected := make([]map[string]any, 0, len(users))
		for i := range users {
			projected = append(projected, q.Project(&users[i]))
		}
		return respond(c, http.StatusOK, "OK", projected)
	}
	return respond(c, http.StatusOK, "OK", users)
}

func (h *UserHandler) GetUser(c echo.Context) error {
	q, err := query.Parse(c.QueryParams(), 0)
	if err != nil {
		return respondError(c, err, "Invalid query parameters")
	}

	user, err := h.userService.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err, "Server error occurred while fetching user")
	}

	if q.HasSelect() {
		return respond(c, http.StatusOK, "OK", q.Project(user))
	}
	return respond(c, http.StatusOK, "OK", user)
}

func (h *UserHandler) CreateUser(c echo.Context) error {
	var req dto.UserRequestData
	if err := c.Bind(&req); err != nil {
		return respondError(c, errs.ErrInvalidJSON, "")
	}
	if err := validators.ValidateUserRequest(&req); err != nil {
		return respondError(c, err, "")
	}

	user, err := h.userService.CreateUser(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err, "Server error occurred while creating user")
	}
	return respond(c, http.StatusCreated, "User created successfully", user)
}

func (h *UserHandler) UpdateUser(c echo.Context) error {
	var req dto.UserRequestData
	if err := c.Bind(&req); err != nil {
		return respondError(c, errs.ErrInvalidJSON, "")
	}
	if err := validators.ValidateUserRequest(&req); err != nil {
		return respondError(c, err, "")
	}

	user, err := h.userService.UpdateUser(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return respondError(c, err, "Server error occurred while updating user")
	}
	return respond(c, http.StatusOK, "User updated successfully", user)
}

func (h *UserHandler) DeleteUser(c echo.Context) error {
	if err := h.userService.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return respondError(c, err, "Server error occurred while deleting user")
	}
	return respondNoContent(c)
}
