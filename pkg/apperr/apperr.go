// Package apperr defines the error kinds shared by every bounded context.
//
// Each context declares its own sentinels with the constructors below, so a
// single error matches both its own identity and its kind:
//
//	var ErrClothingNotFound = apperr.NotFound("clothing item not found")
//
//	errors.Is(err, domain.ErrClothingNotFound) // precise
//	errors.Is(err, apperr.ErrNotFound)         // by kind, used by errhttp
package apperr

import (
	"errors"
	"fmt"
)

// Kinds. Compare with errors.Is.
var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrStorage      = errors.New("storage failure")
)

// Error is a sentinel carrying a message and a kind.
type Error struct {
	kind error
	msg  string
}

func (e *Error) Error() string { return e.msg }

// Is matches the kind so callers can branch on categories without knowing
// every context's sentinels.
func (e *Error) Is(target error) bool { return target == e.kind }

// Kind returns the kind sentinel.
func (e *Error) Kind() error { return e.kind }

func Validation(msg string) *Error   { return &Error{kind: ErrValidation, msg: msg} }
func NotFound(msg string) *Error     { return &Error{kind: ErrNotFound, msg: msg} }
func Conflict(msg string) *Error     { return &Error{kind: ErrConflict, msg: msg} }
func Unauthorized(msg string) *Error { return &Error{kind: ErrUnauthorized, msg: msg} }

// Invalid wraps a validation sentinel with a human-readable reason.
func Invalid(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}

type storageError struct {
	op  string
	err error
}

func (e *storageError) Error() string   { return e.op + ": " + e.err.Error() }
func (e *storageError) Unwrap() []error { return []error{ErrStorage, e.err} }

// Storage marks err as a persistence failure raised during op. nil stays nil.
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	return &storageError{op: op, err: err}
}
