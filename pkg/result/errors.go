package result

import (
	"encoding/json"
	"errors"
	"net/http"
)

var (
	// ErrEmptyCode is returned when an Error is constructed without a code.
	ErrEmptyCode = errors.New("error code must not be empty")
	// ErrEmptyMessage is returned when an Error is constructed without a message.
	ErrEmptyMessage = errors.New("error message must not be empty")
	// ErrNilError is the panic value used when a failure is built from a nil error.
	ErrNilError = errors.New("failure requires a non-nil error")
)

// Classified is implemented by every failure payload carried by a Result.
// The concrete type decides how the failure is rendered at the transport boundary.
type Classified interface {
	error
	Code() string
	Message() string
}

// Error is a generic classified failure: a machine-readable code, a
// human-readable message and an optional transport status hint.
// Its fields cannot be changed after construction.
type Error struct {
	code      string
	message   string
	status    int
	hasStatus bool
}

// NewError builds an Error without a status hint.
func NewError(code, message string) (*Error, error) {
	if code == "" {
		return nil, ErrEmptyCode
	}
	if message == "" {
		return nil, ErrEmptyMessage
	}
	return &Error{code: code, message: message}, nil
}

// NewErrorWithStatus builds an Error carrying the given status hint.
func NewErrorWithStatus(code, message string, status int) (*Error, error) {
	e, err := NewError(code, message)
	if err != nil {
		return nil, err
	}
	e.status = status
	e.hasStatus = true
	return e, nil
}

// MustError is like NewErrorWithStatus but panics on invalid input.
// A status of 0 means no hint. Intended for package-level error values.
func MustError(code, message string, status int) *Error {
	var (
		e   *Error
		err error
	)
	if status == 0 {
		e, err = NewError(code, message)
	} else {
		e, err = NewErrorWithStatus(code, message, status)
	}
	if err != nil {
		panic(err)
	}
	return e
}

func (e *Error) Code() string    { return e.code }
func (e *Error) Message() string { return e.message }

// StatusCode returns the status hint and whether one was set.
func (e *Error) StatusCode() (int, bool) {
	return e.status, e.hasStatus
}

func (e *Error) Error() string {
	return e.code + ": " + e.message
}

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.code == e.code
}

// NotFound builds a 404 Error.
func NotFound(code, message string) *Error {
	return MustError(code, message, http.StatusNotFound)
}

// Conflict builds a 409 Error.
func Conflict(code, message string) *Error {
	return MustError(code, message, http.StatusConflict)
}

// BadRequest builds a 400 Error.
func BadRequest(code, message string) *Error {
	return MustError(code, message, http.StatusBadRequest)
}

// Unauthorized builds a 401 Error.
func Unauthorized(code, message string) *Error {
	return MustError(code, message, http.StatusUnauthorized)
}

// Forbidden builds a 403 Error.
func Forbidden(code, message string) *Error {
	return MustError(code, message, http.StatusForbidden)
}

// MarshalJSON renders the error as its code, message and status hint.
func (e *Error) MarshalJSON() ([]byte, error) {
	type body struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Status  *int   `json:"status,omitempty"`
	}
	b := body{Code: e.code, Message: e.message}
	if e.hasStatus {
		s := e.status
		b.Status = &s
	}
	return json.Marshal(b)
}
