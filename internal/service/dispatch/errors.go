package dispatch

import (
	"errors"
	"strings"
)

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidServiceID      = errors.New("invalid service id")
	ErrInvalidResourceID     = errors.New("invalid resource id")
	ErrNoResources           = errors.New("at least one resource is required")
	ErrNotesTooShort         = errors.New("notes must be at least 10 characters")

	ErrServiceNotFound   = errors.New("service not found")
	ErrResourceNotFound  = errors.New("resource not found")
	ErrIllegalState      = errors.New("operation is not allowed in the current status")
	ErrUnknownStatus     = errors.New("unknown status")
	ErrInvalidTransition = errors.New("invalid status transition")

	ErrDuplicateResource  = errors.New("resource already attached to this service")
	ErrConflict           = errors.New("resource already committed to another service")
	ErrTransactionFailure = errors.New("transaction aborted, retry the request")
)

// ConflictError несёт полный список конфликтов: UI должен показать их все
// сразу, а не по одному. Обходится повтором запроса с force=true.
type ConflictError struct {
	Messages []string
}

func (e *ConflictError) Error() string {
	return "resource conflicts: " + strings.Join(e.Messages, "; ")
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// DuplicateError — жёсткая ошибка валидации, force её не обходит.
type DuplicateError struct {
	Messages []string
}

func (e *DuplicateError) Error() string {
	return "duplicate resources: " + strings.Join(e.Messages, "; ")
}

func (e *DuplicateError) Is(target error) bool {
	return target == ErrDuplicateResource
}
