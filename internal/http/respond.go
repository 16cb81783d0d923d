package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	dto "task-tracker-system.com/task-tracker-system/internal/data_models"
	errs "task-tracker-system.com/task-tracker-system/internal/errors"
)

func respond(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, dto.Response{Message: message, Data: data})
}

// respondError renders the envelope for a failure. Known exceptions carry
// their own message and status; anything else becomes a 500 with the
// handler-supplied fallback so store internals never reach the client.
func respondError(c echo.Context, err error, fallback string) error {
	status := errs.StatusCode(err)
	message := fallback
	var ex *errs.Exception
	if errors.As(err, &ex) {
		message = ex.Message
	}
	return c.JSON(status, dto.Response{Message: message, Data: struct{}{}})
}

func respondNoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}
