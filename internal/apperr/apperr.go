// Package apperr defines the error taxonomy shared by services and the
// HTTP layer. Services return kinded errors; handlers map them to a status
// and a {"detail": ...} body without inspecting messages.
package apperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindInvalidArgument
	KindConflict
)

// Error carries a kind, a client-safe detail message and an optional
// wrapped cause. Detail is rendered to clients verbatim for every kind
// except KindInternal.
type Error struct {
	Kind   Kind
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Detail + ": " + e.Err.Error()
	}
	return e.Detail
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches on kind, so errors.Is(err, NotFound("")) holds for any
// not-found error regardless of message.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

func Unauthenticated(detail string) error {
	return &Error{Kind: KindUnauthenticated, Detail: detail}
}

func Forbidden(detail string) error {
	return &Error{Kind: KindForbidden, Detail: detail}
}

func NotFound(detail string) error {
	return &Error{Kind: KindNotFound, Detail: detail}
}

func InvalidArgument(detail string) error {
	return &Error{Kind: KindInvalidArgument, Detail: detail}
}

func Conflict(detail string) error {
	return &Error{Kind: KindConflict, Detail: detail}
}

func Internal(detail string, err error) error {
	return &Error{Kind: KindInternal, Detail: detail, Err: err}
}

// KindOf returns the kind of err, unwrapping as needed. Errors outside the
// taxonomy are internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Status maps an error to its HTTP status code.
func Status(err error) int {
	switch KindOf(err) {
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindInvalidArgument:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// DetailOf returns the client-facing message for err. Internal errors are
// collapsed to a fixed message so causes never leak to clients.
func DetailOf(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != KindInternal {
		return e.Detail
	}
	return "internal server error"
}
