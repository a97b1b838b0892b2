package server

import (
	"errors"
	"fmt"
	"net/http"

	signalsculptor "github.com/toprakmurat/SignalSculptor"
)

// Code classifies a failed call.
type Code string

// Status codes.
const (
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeUnimplemented   Code = "UNIMPLEMENTED"
	CodeInternal        Code = "INTERNAL"
)

// StatusError is the error every Service method fails with.
type StatusError struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// HTTPStatus maps the code to an HTTP status.
func (e *StatusError) HTTPStatus() int {
	switch e.Code {
	case CodeInvalidArgument:
		return http.StatusBadRequest
	case CodeUnimplemented:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

func invalidArgument(format string, args ...any) *StatusError {
	return &StatusError{Code: CodeInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

func unimplemented() *StatusError {
	return &StatusError{Code: CodeUnimplemented, Message: "algorithm not implemented"}
}

// statusOf converts any error into a StatusError.
func statusOf(err error) *StatusError {
	var se *StatusError
	switch {
	case errors.As(err, &se):
		return se
	case errors.Is(err, signalsculptor.ErrUnsupportedScheme):
		return unimplemented()
	case errors.Is(err, signalsculptor.ErrInvalidParameter):
		return invalidArgument("%v", err)
	default:
		return &StatusError{Code: CodeInternal, Message: err.Error()}
	}
}
