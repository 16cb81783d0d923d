package errors

import "net/http"

var ErrUserFieldsRequired = &Exception{
	Message:    "User name and email are required",
	StatusCode: http.StatusBadRequest,
}
