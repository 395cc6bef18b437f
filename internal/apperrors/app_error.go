package apperrors

import "net/http"

// AppError is an error carrying the HTTP status code it should be rendered
// with. It is used where a handler wants to forward a service error verbatim
// (e.g. the OAuth exchange flow) instead of mapping sentinels itself.
type AppError struct {
	Code    int    `json:"-"`
	Message string `json:"error"`
}

func (e *AppError) Error() string {
	return e.Message
}

// NewBadRequestError creates an AppError with a 400 status code.
func NewBadRequestError(msg string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: msg}
}

// NewUnauthorizedError creates an AppError with a 401 status code.
func NewUnauthorizedError(msg string) *AppError {
	return &AppError{Code: http.StatusUnauthorized, Message: msg}
}

// NewConflictError creates an AppError with a 409 status code.
func NewConflictError(msg string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: msg}
}

// NewInternalServerError creates an AppError with a 500 status code.
func NewInternalServerError(msg string) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Message: msg}
}

// NewGatewayTimeoutError creates an AppError with a 504 status code.
func NewGatewayTimeoutError(msg string) *AppError {
	return &AppError{Code: http.StatusGatewayTimeout, Message: msg}
}
