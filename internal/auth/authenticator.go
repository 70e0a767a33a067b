package auth

import (
	"context"

	"github.com/mmynk/scribe/internal/models"
)

// Authenticator defines the interface for authentication implementations.
// This abstraction allows swapping between different auth methods (password, passkeys, OAuth, etc.)
// without changing the service layer code.
type Authenticator interface {
	// Register creates a new, unverified user account with the given email and credential.
	Register(ctx context.Context, email, displayName, credential string) (*models.User, error)

	// Authenticate verifies the user's credentials and returns the user if successful.
	// Unverified users authenticate normally; gating on verification is the caller's decision.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)

	// SetCredential replaces the user's credential after validating it.
	SetCredential(ctx context.Context, user *models.User, credential string) error

	// ValidateCredential checks if the credential meets the implementation's requirements.
	ValidateCredential(credential string) error
}
