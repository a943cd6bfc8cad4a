package utils

import (
	"fmt"
	"net/http"
)

// ErrorKind classifies a failure for the client.
type ErrorKind int

const (
	InternalFailure ErrorKind = iota
	NotAcceptable
	UnsupportedMediaType
	UnprocessableEntity
	NotFound
	MalformedInput
	MethodNotAllowed
)

var kindStatus = map[ErrorKind]int{
	InternalFailure:      http.StatusInternalServerError,
	NotAcceptable:        http.StatusNotAcceptable,
	UnsupportedMediaType: http.StatusUnsupportedMediaType,
	UnprocessableEntity:  http.StatusUnprocessableEntity,
	NotFound:             http.StatusNotFound,
	MalformedInput:       http.StatusBadRequest,
	MethodNotAllowed:     http.StatusMethodNotAllowed,
}

// Error is a failure that ends a request. Message is safe to show to the
// client; Err is only ever logged.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Status is the HTTP status for the error's kind.
func (e *Error) Status() int {
	if s, ok := kindStatus[e.Kind]; ok {
		return s
	}
	return http.StatusInternalServerError
}

func NewError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Internal wraps an unexpected failure. The cause never reaches the client.
func Internal(err error) *Error {
	return &Error{Kind: InternalFailure, Message: "Internal server error", Err: err}
}
