package services

import "errors"

// ValidationError carries a field-keyed message map; handlers render it as a
// 422 envelope.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "validation failed" }

type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }

// ConflictError reports a referential-integrity violation, e.g. deleting a
// room type still referenced by rooms.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// ErrNoFields means an update body contributed no updatable fields; it maps
// to 400, distinct from not-found.
var ErrNoFields = errors.New("no valid fields to update")

var ErrInvalidCredentials = errors.New("invalid credentials")
