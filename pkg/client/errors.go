package client

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorKind string

const (
	KindValidation   ErrorKind = "validation"
	KindBusiness     ErrorKind = "business"
	KindUnauthorized ErrorKind = "unauthorized"
	KindForbidden    ErrorKind = "forbidden"
	KindInternal     ErrorKind = "internal"
	KindTransport    ErrorKind = "transport"
)

// Error is returned for every failed call. Message is the server's envelope
// message and may be empty; StatusCode is 0 for transport failures.
type Error struct {
	Kind       ErrorKind
	Message    string
	StatusCode int
	Fields     map[string]string
	Err        error
}

func (e *Error) Error() string {
	if e.Kind == KindTransport {
		return fmt.Sprintf("transport error: %v", e.Err)
	}
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("%s (%d): %s", e.Kind, e.StatusCode, msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a client Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// MessageOr returns the server supplied message carried by err, or fallback
// when there is none.
func MessageOr(err error, fallback string) string {
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return fallback
}

func kindForStatus(status int, fields map[string]string, message string) ErrorKind {
	switch {
	case status == http.StatusBadRequest && (len(fields) > 0 || message == "Invalid input"):
		return KindValidation
	case status == http.StatusUnauthorized:
		return KindUnauthorized
	case status == http.StatusForbidden:
		return KindForbidden
	case status >= http.StatusInternalServerError:
		return KindInternal
	default:
		return KindBusiness
	}
}
