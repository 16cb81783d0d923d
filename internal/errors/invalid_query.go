package errors

import "net/http"

var ErrInvalidQuery = &Exception{
	Message:    "Invalid query parameters",
	StatusCode: http.StatusBadRequest,
}
