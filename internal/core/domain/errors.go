package domain

import (
	"errors"
	"fmt"
)

// Kind classifies an Error. The HTTP adapter owns the mapping from Kind to
// status code.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalid
	KindNotFound
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "unknown"
	}
}

// Error is the error type every user-correctable failure is reported with.
// Message is safe to send to the client as is.
type Error struct {
	Kind    Kind
	Field   string
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewInvalid(field, message string) *Error {
	return &Error{Kind: KindInvalid, Field: field, Message: message}
}

func NewNotFound(field, message string) *Error {
	return &Error{Kind: KindNotFound, Field: field, Message: message}
}

func NewConflict(field, message string, cause error) *Error {
	return &Error{Kind: KindConflict, Field: field, Message: message, Err: cause}
}

// NewUserConflict reports a violated uniqueness constraint on a users column.
func NewUserConflict(column string, cause error) *Error {
	return NewConflict(column, fmt.Sprintf(MsgAlreadyExists, column), cause)
}

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var de *Error

	if errors.As(err, &de) {
		return de.Kind
	}

	return KindUnknown
}
