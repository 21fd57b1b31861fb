package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error. Every failure that crosses a
// service boundary is one of these; handlers map kinds to HTTP statuses.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindReference
	KindNotFound
	KindConflict
	KindUnauthorized
	KindStorage
)

// AppError represents an application error
type AppError struct {
	Kind        Kind
	Description string
	Err         error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Description, e.Err)
	}
	return e.Description
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPStatus maps the error kind to its external status code.
func (e *AppError) HTTPStatus() int {
	switch e.Kind {
	case KindValidation, KindReference:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Name returns the reason phrase for the mapped status.
func (e *AppError) Name() string {
	return http.StatusText(e.HTTPStatus())
}

// Error constructors
func NewValidation(format string, args ...interface{}) *AppError {
	return &AppError{
		Kind:        KindValidation,
		Description: fmt.Sprintf(format, args...),
	}
}

func NewReference(entity, id string) *AppError {
	return &AppError{
		Kind:        KindReference,
		Description: fmt.Sprintf("referenced %s with uuid=%s does not exist", entity, id),
	}
}

func NewNotFound(entity, id string) *AppError {
	return &AppError{
		Kind:        KindNotFound,
		Description: fmt.Sprintf("%s with uuid=%s not found", entity, id),
	}
}

func NewConflict(entity, key string) *AppError {
	return &AppError{
		Kind:        KindConflict,
		Description: fmt.Sprintf("%s %s already exists", entity, key),
	}
}

func NewUnauthorized(description string) *AppError {
	return &AppError{
		Kind:        KindUnauthorized,
		Description: description,
	}
}

func NewStorage(op string, err error) *AppError {
	return &AppError{
		Kind:        KindStorage,
		Description: fmt.Sprintf("storage failure during %s", op),
		Err:         err,
	}
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == kind
}

func IsNotFound(err error) bool {
	return IsKind(err, KindNotFound)
}
