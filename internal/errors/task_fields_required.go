package errors

import "net/http"

var ErrTaskFieldsRequired = &Exception{
	Message:    "Task name and deadline are required",
	StatusCode: http.StatusBadRequest,
}
