package auth

import (
	"errors"
	"fmt"
)

// Code is an identity-provider error code. Clients map codes to fixed
// human-readable messages, so codes are part of the wire contract.
type Code string

const (
	CodeInvalidCredential Code = "auth/invalid-credential"
	CodeWrongPassword     Code = "auth/wrong-password"
	CodeUserNotFound      Code = "auth/user-not-found"
	CodeUserDisabled      Code = "auth/user-disabled"
	CodeTooManyRequests   Code = "auth/too-many-requests"
	CodeEmailInUse        Code = "auth/email-already-in-use"
	CodeWeakPassword      Code = "auth/weak-password"
	CodeInvalidEmail      Code = "auth/invalid-email"
	CodeMissingFields     Code = "auth/missing-fields"
	CodeInvalidToken      Code = "auth/invalid-action-code"
	CodeUnauthenticated   Code = "auth/unauthenticated"
	CodeInternal          Code = "auth/internal-error"
)

// MetadataKey is the error-metadata key carrying the Code on failed
// AuthService calls.
const MetadataKey = "Scribe-Auth-Code"

// Error is an identity-provider failure tagged with a Code.
type Error struct {
	Code Code
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return string(e.Code)
	}
	return fmt.Sprintf("%s (%s)", e.Msg, e.Code)
}

// Is reports whether target is an *Error with the same code, so sentinel
// comparisons with errors.Is work across wrapping.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// NewError builds an *Error.
func NewError(code Code, msg string) *Error {
	return &Error{Code: code, Msg: msg}
}

var (
	ErrInvalidCredentials = NewError(CodeInvalidCredential, "invalid email or password")
	ErrUserNotFound       = NewError(CodeUserNotFound, "no user with that email")
	ErrUserDisabled       = NewError(CodeUserDisabled, "account disabled")
	ErrTooManyRequests    = NewError(CodeTooManyRequests, "too many failed attempts")
	ErrWeakPassword       = NewError(CodeWeakPassword, "password must be at least 8 characters")
	ErrEmailExists        = NewError(CodeEmailInUse, "email already registered")
	ErrInvalidEmail       = NewError(CodeInvalidEmail, "malformed email address")
	ErrMissingFields      = NewError(CodeMissingFields, "required fields missing")
	ErrInvalidToken       = NewError(CodeInvalidToken, "invalid or expired token")
	ErrMissingToken       = NewError(CodeUnauthenticated, "authorization token required")
)

// CodeOf extracts the Code from err, or "" if err carries none.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
