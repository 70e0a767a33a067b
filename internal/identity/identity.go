// Package identity is the client side of the identity provider: sign-in,
// account management and the auth-state change stream.
package identity

import (
	"context"
	"errors"

	"connectrpc.com/connect"
	"github.com/mmynk/scribe/internal/auth"
	pb "github.com/mmynk/scribe/pkg/proto"
)

// User is the signed-in account as the client sees it.
type User struct {
	ID            string
	Email         string
	DisplayName   string
	EmailVerified bool
}

// Provider is the set of identity operations the client flows consume.
type Provider interface {
	SignIn(ctx context.Context, email, password string) (*User, error)
	CreateAccount(ctx context.Context, email, password string) (*User, error)
	SendEmailVerification(ctx context.Context) error
	SendPasswordReset(ctx context.Context, email string) error
	UpdateProfile(ctx context.Context, displayName string) error
	SignOut(ctx context.Context) error
	// OnAuthStateChanged registers fn for every sign-in state change and
	// delivers the current state once. The returned func unsubscribes.
	OnAuthStateChanged(fn func(*User)) (unsubscribe func())
}

// decodeError turns an AuthService failure back into an *auth.Error so
// callers can switch on auth.CodeOf. Other errors pass through.
func decodeError(err error) error {
	var cerr *connect.Error
	if !errors.As(err, &cerr) {
		return err
	}
	if code := cerr.Meta().Get(auth.MetadataKey); code != "" {
		return auth.NewError(auth.Code(code), cerr.Message())
	}
	return err
}

func fromAPI(u *pb.User) *User {
	if u == nil {
		return nil
	}
	return &User{
		ID:            u.Id,
		Email:         u.Email,
		DisplayName:   u.DisplayName,
		EmailVerified: u.EmailVerified,
	}
}
