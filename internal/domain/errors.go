package domain

import "errors"

// Error kinds. Match them with errors.Is.
var (
	ErrValidation   = errors.New("validation error")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
)

// Error is a failure whose message is safe to show to API clients.
type Error struct {
	kind error
	msg  string
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() error { return e.kind }

func Validation(msg string) error { return &Error{kind: ErrValidation, msg: msg} }

func NotFound(msg string) error { return &Error{kind: ErrNotFound, msg: msg} }

func Conflict(msg string) error { return &Error{kind: ErrConflict, msg: msg} }

func Unauthorized(msg string) error { return &Error{kind: ErrUnauthorized, msg: msg} }
