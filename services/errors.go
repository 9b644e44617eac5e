package services

import "errors"

// Error kinds surfaced by the workflow services. Controllers map these to HTTP
// statuses with errors.Is; storage-layer errors are never passed through.
var (
	ErrNotFound      = errors.New("not found")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
	ErrInvalidStatus = errors.New("invalid status")
	ErrValidation    = errors.New("validation failed")
)
