package domain

import (
	"fmt"
	"net/http"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	ErrBadRequest    ErrorCode = "BAD_REQUEST"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrUnprocessable ErrorCode = "UNPROCESSABLE_ENTITY"
	ErrInternal      ErrorCode = "INTERNAL_ERROR"
)

// DomainError represents a domain-specific error. The wrapped cause is
// never serialized to clients; responses carry only the fixed message for
// the mapped status code.
type DomainError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// HTTPStatus maps the error code to its HTTP status.
func (e *DomainError) HTTPStatus() int {
	switch e.Code {
	case ErrBadRequest:
		return http.StatusBadRequest
	case ErrNotFound:
		return http.StatusNotFound
	case ErrUnprocessable:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Helper functions for common errors
func NewBadRequestError(message string) *DomainError {
	return NewError(ErrBadRequest, message, nil)
}

func NewNotFoundError(message string) *DomainError {
	return NewError(ErrNotFound, message, nil)
}

func NewUnprocessableError(message string, err error) *DomainError {
	return NewError(ErrUnprocessable, message, err)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(ErrInternal, message, err)
}
