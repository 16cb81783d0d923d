package errors

import "net/http"

var ErrDuplicateEmail = &Exception{
	Message:    "User with this email already exists",
	StatusCode: http.StatusBadRequest,
}
