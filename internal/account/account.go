// Package account runs the email/password flows behind the login,
// registration and reset-password screens.
package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mmynk/scribe/internal/auth"
	"github.com/mmynk/scribe/internal/identity"
)

// ValidationError is a problem caught before anything is sent.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// ErrEmailNotVerified is returned when a password login succeeds for an
// account whose email is not verified yet. The session is signed out.
var ErrEmailNotVerified = errors.New("Please verify your email before logging in. Check your inbox.")

// Enroller is the biometric opt-in the login flow offers.
type Enroller interface {
	ShouldOfferEnrollment(ctx context.Context) bool
}

// Service runs the account flows against the identity provider.
type Service struct {
	provider identity.Provider
	enroller Enroller
	logger   *slog.Logger
}

// NewService creates a Service. enroller may be nil when the client has no
// biometric support.
func NewService(provider identity.Provider, enroller Enroller, logger *slog.Logger) *Service {
	return &Service{provider: provider, enroller: enroller, logger: logger}
}

// LoginResult describes a successful password login.
type LoginResult struct {
	User *identity.User
	// OfferBiometrics is set when the caller should ask whether to save
	// the credentials for biometric unlock.
	OfferBiometrics bool
}

// Login signs in with email and password.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, &ValidationError{Msg: "Please enter both email and password."}
	}

	user, err := s.provider.SignIn(ctx, email, password)
	if err != nil {
		s.logger.Warn("Login failed", "email", email, "error", err)
		return nil, errors.New(loginMessage(err))
	}

	if !user.EmailVerified {
		if err := s.provider.SignOut(ctx); err != nil {
			s.logger.Warn("Sign-out of unverified user failed", "error", err)
		}
		return nil, ErrEmailNotVerified
	}

	offer := s.enroller != nil && s.enroller.ShouldOfferEnrollment(ctx)
	s.logger.Info("Login succeeded", "user_id", user.ID, "offer_biometrics", offer)
	return &LoginResult{User: user, OfferBiometrics: offer}, nil
}

func loginMessage(err error) string {
	switch auth.CodeOf(err) {
	case auth.CodeInvalidCredential, auth.CodeWrongPassword:
		return "Invalid email or password."
	case auth.CodeUserNotFound:
		return "No account found with this email."
	case auth.CodeTooManyRequests:
		return "Too many failed attempts. Try again later."
	case auth.CodeUserDisabled:
		return "This account has been disabled."
	default:
		return fmt.Sprintf("Login failed: %s", messageOf(err))
	}
}

// RegisterMessage is shown after a successful registration.
const RegisterMessage = "Registration successful! A verification email has been sent. Please verify your email before logging in."

// Register creates an account, sets its display name, sends the
// verification email and signs out again, so no unverified session is
// left behind.
func (s *Service) Register(ctx context.Context, email, password, displayName string) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return &ValidationError{Msg: "Please fill in both email and password."}
	}

	user, err := s.provider.CreateAccount(ctx, email, password)
	if err != nil {
		s.logger.Warn("Registration failed", "email", email, "error", err)
		return errors.New(registerMessage(err))
	}
	// Sign out on every path from here on.
	defer func() {
		if err := s.provider.SignOut(ctx); err != nil {
			s.logger.Warn("Sign-out after registration failed", "error", err)
		}
	}()

	if name := strings.TrimSpace(displayName); name != "" {
		if err := s.provider.UpdateProfile(ctx, name); err != nil {
			s.logger.Warn("Setting display name failed", "user_id", user.ID, "error", err)
		}
	}

	if err := s.provider.SendEmailVerification(ctx); err != nil {
		s.logger.Error("Sending verification email failed", "user_id", user.ID, "error", err)
		return fmt.Errorf("Account created, but the verification email could not be sent: %s", messageOf(err))
	}

	s.logger.Info("Registration succeeded", "user_id", user.ID)
	return nil
}

func registerMessage(err error) string {
	switch auth.CodeOf(err) {
	case auth.CodeEmailInUse:
		return "This email address is already in use."
	case auth.CodeInvalidEmail:
		return "The email address format is invalid."
	case auth.CodeWeakPassword:
		return "Password should be at least 8 characters."
	default:
		return fmt.Sprintf("Registration failed: %s", messageOf(err))
	}
}

// ResetMessage is shown after a reset email was sent.
const ResetMessage = "Password reset link sent to your email. Check your inbox and spam folder."

// ResetPassword sends a password-reset email.
func (s *Service) ResetPassword(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return &ValidationError{Msg: "Please enter your email address."}
	}

	if err := s.provider.SendPasswordReset(ctx, email); err != nil {
		s.logger.Warn("Password reset failed", "email", email, "error", err)
		switch auth.CodeOf(err) {
		case auth.CodeUserNotFound:
			return errors.New("No account found with that email address.")
		case auth.CodeInvalidEmail:
			return errors.New("The email address format is invalid.")
		default:
			return fmt.Errorf("Password reset failed: %s", messageOf(err))
		}
	}
	return nil
}

// Logout signs the current user out.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.provider.SignOut(ctx); err != nil {
		return fmt.Errorf("Logout failed: %s", messageOf(err))
	}
	return nil
}

// messageOf strips the provider code from an auth error for display.
func messageOf(err error) string {
	var aerr *auth.Error
	if errors.As(err, &aerr) && aerr.Msg != "" {
		return aerr.Msg
	}
	return err.Error()
}
