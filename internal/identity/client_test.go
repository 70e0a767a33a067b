package identity

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/mmynk/scribe/internal/auth"
	"github.com/mmynk/scribe/internal/testserver"
	"github.com/mmynk/scribe/pkg/logging"
)

type recorder struct {
	mu     sync.Mutex
	states []*User
}

func (r *recorder) record(u *User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, u)
}

func (r *recorder) last() *User {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.states[len(r.states)-1]
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.states)
}

func newClient(t *testing.T) (*Client, *testserver.Env) {
	t.Helper()
	env := testserver.Start(t)
	return NewClient(http.DefaultClient, env.URL, logging.Discard()), env
}

func TestAuthStateNotifications(t *testing.T) {
	c, env := newClient(t)
	ctx := context.Background()

	var rec recorder
	unsubscribe := c.OnAuthStateChanged(rec.record)

	if rec.count() != 1 || rec.last() != nil {
		t.Fatalf("expected one initial nil notification, got %d", rec.count())
	}

	user, err := c.CreateAccount(ctx, "amy@example.com", "password123")
	if err != nil {
		t.Fatalf("CreateAccount failed: %v", err)
	}
	if user.EmailVerified {
		t.Error("new account should be unverified")
	}
	if got := rec.last(); got == nil || got.Email != "amy@example.com" {
		t.Errorf("expected notification for amy, got %+v", got)
	}
	if c.IDToken() == "" {
		t.Error("expected an ID token after CreateAccount")
	}

	if err := c.SendEmailVerification(ctx); err != nil {
		t.Fatalf("SendEmailVerification failed: %v", err)
	}
	if err := c.VerifyEmail(ctx, env.ActionCode(t, "amy@example.com")); err != nil {
		t.Fatalf("VerifyEmail failed: %v", err)
	}
	if got := rec.last(); got == nil || !got.EmailVerified {
		t.Errorf("expected a verified notification, got %+v", got)
	}

	if err := c.UpdateProfile(ctx, "Amy Pond"); err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}
	if got := c.CurrentUser(); got.DisplayName != "Amy Pond" {
		t.Errorf("display name: expected 'Amy Pond', got %q", got.DisplayName)
	}

	if err := c.SignOut(ctx); err != nil {
		t.Fatalf("SignOut failed: %v", err)
	}
	if rec.last() != nil {
		t.Error("expected nil notification after SignOut")
	}
	if c.IDToken() != "" {
		t.Error("token should be cleared after SignOut")
	}

	unsubscribe()
	n := rec.count()
	c.SignIn(ctx, "amy@example.com", "password123")
	if rec.count() != n {
		t.Error("listener called after unsubscribe")
	}
}

func TestErrorsCarryProviderCodes(t *testing.T) {
	c, _ := newClient(t)
	ctx := context.Background()

	if _, err := c.CreateAccount(ctx, "ben@example.com", "password123"); err != nil {
		t.Fatalf("CreateAccount failed: %v", err)
	}
	c.SignOut(ctx)

	tests := []struct {
		name string
		call func() error
		code auth.Code
	}{
		{"wrong password", func() error {
			_, err := c.SignIn(ctx, "ben@example.com", "not-it-at-all")
			return err
		}, auth.CodeInvalidCredential},
		{"unknown user", func() error {
			_, err := c.SignIn(ctx, "nobody@example.com", "password123")
			return err
		}, auth.CodeUserNotFound},
		{"duplicate account", func() error {
			_, err := c.CreateAccount(ctx, "ben@example.com", "password123")
			return err
		}, auth.CodeEmailInUse},
		{"reset unknown email", func() error {
			return c.SendPasswordReset(ctx, "nobody@example.com")
		}, auth.CodeUserNotFound},
		{"reset malformed email", func() error {
			return c.SendPasswordReset(ctx, "ben@")
		}, auth.CodeInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			if got := auth.CodeOf(err); got != tt.code {
				t.Errorf("expected %s, got %q (%v)", tt.code, got, err)
			}
		})
	}
}

func TestPasswordResetRoundTrip(t *testing.T) {
	c, env := newClient(t)
	ctx := context.Background()

	c.CreateAccount(ctx, "cat@example.com", "password123")
	c.SignOut(ctx)

	if err := c.SendPasswordReset(ctx, "cat@example.com"); err != nil {
		t.Fatalf("SendPasswordReset failed: %v", err)
	}
	if err := c.ConfirmPasswordReset(ctx, env.ActionCode(t, "cat@example.com"), "brand-new-pass"); err != nil {
		t.Fatalf("ConfirmPasswordReset failed: %v", err)
	}
	if _, err := c.SignIn(ctx, "cat@example.com", "brand-new-pass"); err != nil {
		t.Errorf("SignIn with new password failed: %v", err)
	}
}

func TestSendEmailVerificationRequiresSession(t *testing.T) {
	c, _ := newClient(t)
	if err := c.SendEmailVerification(context.Background()); auth.CodeOf(err) != auth.CodeUnauthenticated {
		t.Errorf("expected unauthenticated error, got %v", err)
	}
}
