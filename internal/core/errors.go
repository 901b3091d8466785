// AngelaMos | 2026
// errors.go

package core

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidInput = errors.New("invalid input")
	ErrTokenInvalid = errors.New("token invalid")
	ErrTokenExpired = errors.New("token expired")
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError is a terminal, client-facing error: it knows its HTTP status
// and the message that goes over the wire. Everything that is not an
// AppError and not a recognized sentinel becomes a generic 500.
type AppError struct {
	Err     error
	Message string
	Status  int
	Fields  []FieldError
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(err error, message string, status int) *AppError {
	return &AppError{Err: err, Message: message, Status: status}
}

func UnauthorizedError(message string) *AppError {
	return NewAppError(ErrUnauthorized, message, http.StatusUnauthorized)
}

func ForbiddenError(message string) *AppError {
	return NewAppError(ErrForbidden, message, http.StatusForbidden)
}

func NotFoundError(resource string) *AppError {
	return NewAppError(ErrNotFound, resource+" not found", http.StatusNotFound)
}

func ConflictError(message string, fields ...FieldError) *AppError {
	e := NewAppError(ErrDuplicateKey, message, http.StatusBadRequest)
	e.Fields = fields
	return e
}

func ValidationError(fields []FieldError) *AppError {
	e := NewAppError(ErrInvalidInput, "Validation Error", http.StatusBadRequest)
	e.Fields = fields
	return e
}
