package comment

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorKind string

const (
	KindValidation    ErrorKind = "validation"
	KindNotFound      ErrorKind = "not_found"
	KindDepthExceeded ErrorKind = "depth_exceeded"
	KindAuthorization ErrorKind = "authorization"
	KindState         ErrorKind = "state"
	KindConflict      ErrorKind = "conflict"
)

// Error is a policy rejection raised by the service. None of them are
// transient; callers should not retry without changing their input.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is matches any *Error of the same kind, so errors.Is(err, ErrNotFound)
// works regardless of the message.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

var (
	ErrValidation    = &Error{Kind: KindValidation, Message: "invalid input"}
	ErrNotFound      = &Error{Kind: KindNotFound, Message: "comment not found"}
	ErrDepthExceeded = &Error{Kind: KindDepthExceeded, Message: "reply depth limit reached"}
	ErrAuthorization = &Error{Kind: KindAuthorization, Message: "not allowed"}
	ErrState         = &Error{Kind: KindState, Message: "comment is deleted"}
	ErrConflict      = &Error{Kind: KindConflict, Message: "version mismatch"}
)

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// RepositoryError wraps a storage failure. The service passes it through
// untouched.
type RepositoryError struct {
	Op  string
	Err error
}

func (e *RepositoryError) Error() string {
	return fmt.Sprintf("repository %s: %v", e.Op, e.Err)
}

func (e *RepositoryError) Unwrap() error {
	return e.Err
}

func httpStatus(err error) int {
	var domainErr *Error
	if !errors.As(err, &domainErr) {
		return http.StatusInternalServerError
	}
	switch domainErr.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindDepthExceeded:
		return http.StatusUnprocessableEntity
	case KindAuthorization:
		return http.StatusForbidden
	case KindState, KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
