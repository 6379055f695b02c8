// Package apperr defines the application error taxonomy and its mapping to
// HTTP responses. Handlers return *Error values instead of writing error
// JSON themselves; a single Echo error handler translates them at the
// boundary so every endpoint produces the same {"error": "..."} shape.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure. The set mirrors the distinct signals the API
// exposes to clients.
type Kind int

const (
	// ValidationMissing signals that a required request field is absent.
	ValidationMissing Kind = iota
	// InvalidCredentials is the unified login failure signal. It covers
	// both unknown usernames and wrong passwords so that responses do not
	// allow username enumeration.
	InvalidCredentials
	// Unauthenticated signals that no bearer token was presented.
	Unauthenticated
	// InvalidToken signals a token that is malformed, tampered or expired.
	InvalidToken
	// NotFound signals that an identifier matched no row, or that an
	// update/delete affected zero rows.
	NotFound
	// Conflict signals a uniqueness violation, e.g. a duplicate username.
	Conflict
	// StoreError covers connectivity, constraint and query failures.
	StoreError
)

// Error carries a failure kind plus the message returned to the client.
type Error struct {
	Kind Kind
	Msg  string
	Err  error // underlying cause, not serialized
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an error of the given kind with a client-facing message.
func New(kind Kind, msg string) *Error { return &Error{Kind: kind, Msg: msg} }

// Wrap attaches an underlying cause to a kinded error. The cause is kept
// for logs; only msg reaches the client.
func Wrap(kind Kind, msg string, err error) *Error { return &Error{Kind: kind, Msg: msg, Err: err} }

// Status maps an error kind to its HTTP status code. Missing token and
// invalid token deliberately map to different codes so clients can tell
// "authenticate first" apart from "re-authenticate".
func (k Kind) Status() int {
	switch k {
	case ValidationMissing, InvalidCredentials:
		return http.StatusBadRequest
	case Unauthenticated:
		return http.StatusUnauthorized
	case InvalidToken:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == kind
}
