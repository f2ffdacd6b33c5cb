// Package apperrors defines the error taxonomy shared by all services:
// validation, not-found, authorization, capacity, state and infrastructure
// failures, each mapped to a distinct HTTP status by the transport layer.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error
type Kind string

const (
	KindValidation     Kind = "validation"
	KindNotFound       Kind = "not_found"
	KindAuthorization  Kind = "authorization"
	KindCapacity       Kind = "capacity"
	KindState          Kind = "state"
	KindInfrastructure Kind = "infrastructure"
)

// Error is a typed application error
type Error struct {
	Kind    Kind
	Message string
	// Field names the offending input field for validation errors.
	Field string
	// Remaining carries the remaining seat count for capacity errors.
	Remaining int
	// Err is the wrapped cause, set for infrastructure errors.
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// HTTPStatus maps the error kind to a response status code
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindValidation, KindCapacity:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindAuthorization:
		return http.StatusForbidden
	case KindState:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Retryable reports whether the caller may safely retry the request
func (e *Error) Retryable() bool {
	return e.Kind == KindInfrastructure
}

// Validation returns a field-level input error
func Validation(field, message string) *Error {
	return &Error{Kind: KindValidation, Field: field, Message: message}
}

// NotFound returns a missing-entity error
func NotFound(entity string, id int64) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("%s %d not found", entity, id)}
}

// Unauthorized returns an ownership-guard failure
func Unauthorized(message string) *Error {
	return &Error{Kind: KindAuthorization, Message: message}
}

// Capacity returns an over-capacity error carrying the remaining seat count
func Capacity(remaining int) *Error {
	return &Error{
		Kind:      KindCapacity,
		Remaining: remaining,
		Message:   fmt.Sprintf("only %d spots available", remaining),
	}
}

// State returns an invalid-state error naming the violated precondition
func State(message string) *Error {
	return &Error{Kind: KindState, Message: message}
}

// Infrastructure wraps a storage or connection failure
func Infrastructure(message string, err error) *Error {
	return &Error{Kind: KindInfrastructure, Message: message, Err: err}
}

// IsKind reports whether err is an application error of the given kind
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// From extracts the application error from err, wrapping unknown errors as
// infrastructure failures so nothing leaks to the caller untyped.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Infrastructure("internal error", err)
}
