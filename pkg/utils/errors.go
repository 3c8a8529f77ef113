package utils

import (
	"errors"
	"net/http"
)

type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindBusiness   ErrorKind = "business"
	KindForbidden  ErrorKind = "forbidden"
	KindInternal   ErrorKind = "internal"
)

// AppError is an expected failure a handler can translate into a response.
// Fields carries per-field messages for validation errors.
type AppError struct {
	Kind    ErrorKind
	Message string
	Fields  map[string]string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode maps the kind onto the HTTP status used in the envelope.
func (e *AppError) StatusCode() int {
	switch e.Kind {
	case KindValidation, KindBusiness:
		return http.StatusBadRequest
	case KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func NewValidationError(fields map[string]string) *AppError {
	return &AppError{Kind: KindValidation, Message: "Invalid input", Fields: fields}
}

func NewBusinessError(message string) *AppError {
	return &AppError{Kind: KindBusiness, Message: message}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{Kind: KindForbidden, Message: message}
}

func NewInternalError(message string, err error) *AppError {
	return &AppError{Kind: KindInternal, Message: message, Err: err}
}

// AsAppError unwraps err into an AppError; anything else is internal.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewInternalError("Internal server error", err)
}
