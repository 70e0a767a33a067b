package biometric

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mmynk/scribe/internal/auth"
	"github.com/mmynk/scribe/internal/identity"
	"github.com/mmynk/scribe/internal/vault"
)

// SignInProvider is the part of the identity provider the flow replays
// saved credentials through.
type SignInProvider interface {
	SignIn(ctx context.Context, email, password string) (*identity.User, error)
	SignOut(ctx context.Context) error
}

// Flow runs biometric unlock and the opt-in enrollment that feeds it.
type Flow struct {
	device      Authenticator
	credentials *vault.Credentials
	provider    SignInProvider
	logger      *slog.Logger
}

func NewFlow(device Authenticator, credentials *vault.Credentials, provider SignInProvider, logger *slog.Logger) *Flow {
	return &Flow{
		device:      device,
		credentials: credentials,
		provider:    provider,
		logger:      logger,
	}
}

// Unlock checks hardware, enrollment and saved credentials in that order,
// prompts, and signs in with the saved pair. The prompt never runs unless
// every precondition holds.
func (f *Flow) Unlock(ctx context.Context) (*identity.User, error) {
	hasHardware, err := f.device.HasHardware(ctx)
	if err != nil || !hasHardware {
		return nil, ErrUnavailable
	}
	enrolled, err := f.device.IsEnrolled(ctx)
	if err != nil || !enrolled {
		return nil, ErrNotEnrolled
	}
	saved, err := f.credentials.Has()
	if err != nil {
		f.logger.Warn("Reading saved credentials failed", "error", err)
	}
	if !saved {
		return nil, ErrNoSavedCredentials
	}

	result, err := f.device.Prompt(ctx, PromptOptions{
		Message:               "Authenticate with Biometrics",
		DisableDeviceFallback: true,
	})
	if err != nil || !result.Success {
		// Credentials stay in the vault so the user can retry.
		f.logger.Info("Biometric prompt failed", "reason", result.Error, "error", err)
		return nil, ErrPromptFailed
	}

	email, password, ok, err := f.credentials.Load()
	if err != nil || !ok {
		return nil, ErrNoSavedCredentials
	}

	user, err := f.provider.SignIn(ctx, email, password)
	if err != nil {
		switch auth.CodeOf(err) {
		case auth.CodeInvalidCredential, auth.CodeWrongPassword, auth.CodeUserNotFound:
			if clearErr := f.credentials.Clear(); clearErr != nil {
				f.logger.Error("Clearing stale credentials failed", "error", clearErr)
			}
			return nil, ErrStaleCredentials
		}
		return nil, &SignInError{Err: err}
	}

	if !user.EmailVerified {
		if err := f.provider.SignOut(ctx); err != nil {
			f.logger.Warn("Sign-out after unverified unlock failed", "error", err)
		}
		return nil, ErrEmailNotVerified
	}

	f.logger.Info("Biometric unlock succeeded", "user_id", user.ID)
	return user, nil
}

// Available reports whether the device has enrolled biometrics.
func (f *Flow) Available(ctx context.Context) bool {
	hasHardware, err := f.device.HasHardware(ctx)
	if err != nil || !hasHardware {
		return false
	}
	enrolled, err := f.device.IsEnrolled(ctx)
	return err == nil && enrolled
}

// HasSavedCredentials reports whether a pair is in the vault.
func (f *Flow) HasSavedCredentials() bool {
	ok, err := f.credentials.Has()
	return err == nil && ok
}

// ShouldOfferEnrollment reports whether to offer saving the credentials
// of a successful password login.
func (f *Flow) ShouldOfferEnrollment(ctx context.Context) bool {
	return f.Available(ctx) && !f.HasSavedCredentials()
}

// Enroll saves the pair after the user opted in.
func (f *Flow) Enroll(email, password string) error {
	if err := f.credentials.Save(email, password); err != nil {
		return fmt.Errorf("enroll biometrics: %w", err)
	}
	return nil
}
