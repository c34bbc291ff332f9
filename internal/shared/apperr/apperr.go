package apperr

import (
	"errors"
	"fmt"
)

// Error codes carried on the wire in the error body.
const (
	CodeNotFound     = "NOT_FOUND"
	CodeValidation   = "VALIDATION_ERROR"
	CodeUnauthorized = "UNAUTHORIZED"
)

type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string { return e.Message }

func NotFound(what string) *Error {
	return &Error{Code: CodeNotFound, Message: what + " not found"}
}

func Invalid(format string, args ...any) *Error {
	return &Error{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

func Unauthorized() *Error {
	return &Error{Code: CodeUnauthorized, Message: "unauthorized"}
}

// Code extracts the wire code from err, defaulting to VALIDATION_ERROR for
// anything that is not an *Error.
func Code(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Code
	}
	return CodeValidation
}

func IsNotFound(err error) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Code == CodeNotFound
}
