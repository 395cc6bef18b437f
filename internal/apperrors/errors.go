package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that the caller could not be authenticated.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates an authenticated caller acting on a resource it does not own.
var ErrForbidden = errors.New("forbidden")

// ErrUpstream indicates a failure in an external collaborator (e.g. the
// generative text service). Callers recover from it with a fallback value;
// it must never reach the API boundary as an error response.
var ErrUpstream = errors.New("upstream service error")
