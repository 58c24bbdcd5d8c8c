package domain

import "errors"

// Domain errors (no external dependencies). Handlers map these to HTTP via a
// single responder; everything unknown becomes a 500.
var (
	ErrNotFound          = errors.New("resource not found")
	ErrBadRequest        = errors.New("bad request")
	ErrMissingParam      = errors.New("missing required parameter")
	ErrDuplicate         = errors.New("duplicated value")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidCredential = errors.New("invalid credential")
	ErrInsufficientStock = errors.New("insufficient stock")
)
