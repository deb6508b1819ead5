// Package apperrors defines the domain error taxonomy. Services return these
// errors and the HTTP layer maps them to status codes with errors.Is.
package apperrors

import "errors"

var (
	ErrValidation      = errors.New("validation error")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrPaymentDeclined = errors.New("payment declined")
)

// Error carries a user-facing message on top of one of the kind sentinels.
type Error struct {
	kind error
	msg  string
}

func (e *Error) Error() string { return e.msg }
func (e *Error) Unwrap() error { return e.kind }

func Validation(msg string) error { return &Error{kind: ErrValidation, msg: msg} }
func NotFound(msg string) error   { return &Error{kind: ErrNotFound, msg: msg} }
func Conflict(msg string) error   { return &Error{kind: ErrConflict, msg: msg} }
func Declined(msg string) error   { return &Error{kind: ErrPaymentDeclined, msg: msg} }
