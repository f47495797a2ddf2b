package apperrors

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Error carries the HTTP status a failure should surface as, alongside the
// message shown to the client.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

var (
	ErrValidation         = &Error{Code: 400, Message: "please fill in all required fields"}
	ErrPasswordMismatch   = &Error{Code: 400, Message: "password confirmation does not match"}
	ErrDuplicateEmail     = &Error{Code: 400, Message: "this email is already registered"}
	ErrInvalidCredentials = &Error{Code: 401, Message: "incorrect email or password"}
	ErrMissingToken       = &Error{Code: 401, Message: "token is missing"}
	ErrExpiredToken       = &Error{Code: 401, Message: "token has expired"}
	ErrInvalidToken       = &Error{Code: 401, Message: "token is invalid"}
	ErrUnknownUser        = &Error{Code: 401, Message: "user does not exist"}
	ErrForbidden          = &Error{Code: 403, Message: "you do not have permission to do this"}
	ErrNotFound           = &Error{Code: 404, Message: "not found"}
	ErrInternal           = &Error{Code: 500, Message: "internal server error"}
)

// GetStatus maps an error to its HTTP status. Raw jwt errors that escaped the
// auth package still collapse to 401.
func GetStatus(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}

	switch {
	case errors.Is(err, jwt.ErrTokenExpired), errors.Is(err, jwt.ErrSignatureInvalid):
		return 401
	default:
		return 500
	}
}

// GetMessage returns the client-facing message for an error. Unclassified
// errors are reported generically so internals never leak.
func GetMessage(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return ErrInternal.Message
}
