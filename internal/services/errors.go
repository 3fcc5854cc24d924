package services

import "errors"

var (
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
)

// Error carries a client-facing message and one of the sentinel errors above
// as its kind.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

func NotFound(msg string) error { return &Error{Kind: ErrNotFound, Msg: msg} }

func Forbidden(msg string) error { return &Error{Kind: ErrForbidden, Msg: msg} }

func Invalid(msg string) error { return &Error{Kind: ErrValidation, Msg: msg} }

func Conflict(msg string) error { return &Error{Kind: ErrConflict, Msg: msg} }
