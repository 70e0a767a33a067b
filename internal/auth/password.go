package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"

	"github.com/mmynk/scribe/internal/models"
	"github.com/mmynk/scribe/internal/storage"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

// PasswordAuthenticator implements password-based authentication using bcrypt.
type PasswordAuthenticator struct {
	storage storage.UserStore
	limiter *AttemptLimiter
}

// NewPasswordAuthenticator creates a new password-based authenticator.
// limiter may be nil to disable lockout.
func NewPasswordAuthenticator(store storage.UserStore, limiter *AttemptLimiter) *PasswordAuthenticator {
	return &PasswordAuthenticator{
		storage: store,
		limiter: limiter,
	}
}

// ValidateCredential checks if the password meets minimum requirements.
func (a *PasswordAuthenticator) ValidateCredential(credential string) error {
	if len(credential) < minPasswordLength {
		return ErrWeakPassword
	}
	return nil
}

// ValidateEmail checks that email parses as a bare address.
func ValidateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}
	return nil
}

// Register creates a new user account with a hashed password.
func (a *PasswordAuthenticator) Register(ctx context.Context, email, displayName, credential string) (*models.User, error) {
	email = models.NormalizeEmail(email)
	if email == "" || credential == "" {
		return nil, ErrMissingFields
	}
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := a.ValidateCredential(credential); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(credential), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.NewUser(email, displayName, string(hashedPassword))

	if err := a.storage.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrEmailTaken) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Authenticate verifies the email and password, returning the user if valid.
func (a *PasswordAuthenticator) Authenticate(ctx context.Context, email, credential string) (*models.User, error) {
	email = models.NormalizeEmail(email)
	if email == "" || credential == "" {
		return nil, ErrMissingFields
	}
	if a.limiter != nil && a.limiter.Blocked(email) {
		return nil, ErrTooManyRequests
	}

	user, err := a.storage.GetUserByEmail(ctx, email)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credential)); err != nil {
		if a.limiter != nil {
			a.limiter.Fail(email)
		}
		return nil, ErrInvalidCredentials
	}
	if user.Disabled {
		return nil, ErrUserDisabled
	}

	if a.limiter != nil {
		a.limiter.Reset(email)
	}
	return user, nil
}

// SetCredential hashes and stores a new password for user.
func (a *PasswordAuthenticator) SetCredential(ctx context.Context, user *models.User, credential string) error {
	if err := a.ValidateCredential(credential); err != nil {
		return err
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(credential), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = string(hashedPassword)
	if err := a.storage.UpdateUser(ctx, user); err != nil {
		return fmt.Errorf("failed to store password: %w", err)
	}
	if a.limiter != nil {
		a.limiter.Reset(user.Email)
	}
	return nil
}
