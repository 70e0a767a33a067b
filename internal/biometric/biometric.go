// Package biometric unlocks a saved email/password pair behind the
// platform's biometric prompt.
package biometric

import (
	"context"
	"errors"
	"fmt"
)

// Type is a biometric method the device supports.
type Type int

const (
	TypeFingerprint Type = iota + 1
	TypeFacialRecognition
	TypeIris
)

func (t Type) String() string {
	switch t {
	case TypeFingerprint:
		return "fingerprint"
	case TypeFacialRecognition:
		return "facial-recognition"
	case TypeIris:
		return "iris"
	default:
		return "unknown"
	}
}

// PromptOptions configures one biometric prompt.
type PromptOptions struct {
	Message string
	// DisableDeviceFallback hides the device passcode alternative.
	DisableDeviceFallback bool
}

// PromptResult is the outcome of a prompt. Error names the failure
// ("user_cancel", "lockout", ...) when Success is false.
type PromptResult struct {
	Success bool
	Error   string
}

// Authenticator is the platform biometric service.
type Authenticator interface {
	HasHardware(ctx context.Context) (bool, error)
	IsEnrolled(ctx context.Context) (bool, error)
	SupportedTypes(ctx context.Context) ([]Type, error)
	Prompt(ctx context.Context, opts PromptOptions) (PromptResult, error)
}

var (
	ErrUnavailable        = errors.New("biometrics unavailable")
	ErrNotEnrolled        = errors.New("biometrics not enrolled")
	ErrNoSavedCredentials = errors.New("no saved credentials")
	ErrPromptFailed       = errors.New("biometric authentication failed or cancelled")
	ErrEmailNotVerified   = errors.New("email not verified")
	ErrStaleCredentials   = errors.New("saved credentials are no longer valid")
)

// SignInError wraps any other identity-provider failure during unlock.
type SignInError struct {
	Err error
}

func (e *SignInError) Error() string { return "biometric sign-in: " + e.Err.Error() }
func (e *SignInError) Unwrap() error { return e.Err }

// Message returns the plain-text message shown for an unlock error.
func Message(err error) string {
	var signIn *SignInError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnavailable), errors.Is(err, ErrNotEnrolled):
		return "Biometrics not set up on this device."
	case errors.Is(err, ErrNoSavedCredentials):
		return "Please login with email/password first to enable biometric login."
	case errors.Is(err, ErrPromptFailed):
		return "Biometric authentication failed or cancelled."
	case errors.Is(err, ErrEmailNotVerified):
		return "Please verify your email before logging in. Check your inbox."
	case errors.Is(err, ErrStaleCredentials):
		return "Saved credentials are no longer valid. Please log in again to update."
	case errors.As(err, &signIn):
		return fmt.Sprintf("Biometric login failed: %s", signIn.Err.Error())
	default:
		return fmt.Sprintf("Biometric login failed: %s", err.Error())
	}
}
