package auth

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mmynk/scribe/internal/storage/sqlite"
)

func newTestAuthenticator(t *testing.T) (*PasswordAuthenticator, *sqlite.SQLiteStore) {
	t.Helper()
	dir, err := os.MkdirTemp("", "scribe-auth-*")
	if err != nil {
		t.Fatalf("temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })

	store, err := sqlite.New(filepath.Join(dir, "auth.db"))
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return NewPasswordAuthenticator(store, NewAttemptLimiter(3, time.Minute)), store
}

func TestRegisterAndAuthenticate(t *testing.T) {
	a, _ := newTestAuthenticator(t)
	ctx := context.Background()

	user, err := a.Register(ctx, "Alice@Example.com", "Alice", "correct horse")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.EmailVerified {
		t.Error("new account should be unverified")
	}

	got, err := a.Authenticate(ctx, "alice@example.com", "correct horse")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("ID = %s, want %s", got.ID, user.ID)
	}
}

func TestRegisterErrors(t *testing.T) {
	a, _ := newTestAuthenticator(t)
	ctx := context.Background()

	if _, err := a.Register(ctx, "taken@example.com", "", "password1"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	tests := []struct {
		name     string
		email    string
		password string
		want     Code
	}{
		{"missing email", "", "password1", CodeMissingFields},
		{"malformed email", "not-an-email", "password1", CodeInvalidEmail},
		{"weak password", "new@example.com", "short", CodeWeakPassword},
		{"duplicate", "taken@example.com", "password1", CodeEmailInUse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.Register(ctx, tt.email, "", tt.password)
			if got := CodeOf(err); got != tt.want {
				t.Errorf("code = %q, want %q (err=%v)", got, tt.want, err)
			}
		})
	}
}

func TestAuthenticateErrors(t *testing.T) {
	a, store := newTestAuthenticator(t)
	ctx := context.Background()

	user, err := a.Register(ctx, "bob@example.com", "", "password1")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if _, err := a.Authenticate(ctx, "nobody@example.com", "password1"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("unknown user: got %v", err)
	}
	if _, err := a.Authenticate(ctx, "bob@example.com", "wrong-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: got %v", err)
	}

	user.Disabled = true
	if err := store.UpdateUser(ctx, user); err != nil {
		t.Fatalf("UpdateUser failed: %v", err)
	}
	if _, err := a.Authenticate(ctx, "bob@example.com", "password1"); !errors.Is(err, ErrUserDisabled) {
		t.Errorf("disabled user: got %v", err)
	}
}

func TestAuthenticateLockout(t *testing.T) {
	a, _ := newTestAuthenticator(t)
	ctx := context.Background()

	if _, err := a.Register(ctx, "carol@example.com", "", "password1"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		a.Authenticate(ctx, "carol@example.com", "bad-password")
	}

	_, err := a.Authenticate(ctx, "carol@example.com", "password1")
	if !errors.Is(err, ErrTooManyRequests) {
		t.Errorf("expected ErrTooManyRequests after 3 failures, got %v", err)
	}
}

func TestAttemptLimiterWindow(t *testing.T) {
	l := NewAttemptLimiter(2, time.Minute)
	now := time.Unix(1000, 0)
	l.now = func() time.Time { return now }

	l.Fail("k")
	l.Fail("k")
	if !l.Blocked("k") {
		t.Fatal("expected key blocked after 2 failures")
	}

	now = now.Add(2 * time.Minute)
	if l.Blocked("k") {
		t.Error("failures outside the window should expire")
	}

	l.Fail("k")
	l.Reset("k")
	if l.Blocked("k") {
		t.Error("Reset should clear failures")
	}
}

func TestJWTManager(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	a, _ := newTestAuthenticator(t)
	user, err := a.Register(context.Background(), "dave@example.com", "", "password1")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	user.EmailVerified = true

	token, err := m.Generate(user)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	claims, err := m.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.UserID != user.ID || !claims.EmailVerified {
		t.Errorf("claims = %+v", claims)
	}

	other := NewJWTManager("other-secret", time.Hour)
	if _, err := other.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("foreign token: got %v", err)
	}
}

func TestActionTokens(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	a, _ := newTestAuthenticator(t)
	ctx := context.Background()
	user, err := a.Register(ctx, "erin@example.com", "", "password1")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	verify, err := m.GenerateAction(user, PurposeVerifyEmail)
	if err != nil {
		t.Fatalf("GenerateAction failed: %v", err)
	}
	if _, err := m.ValidateAction(verify, PurposeResetPassword); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("purpose mismatch should fail, got %v", err)
	}
	if _, err := m.ValidateAction(verify, PurposeVerifyEmail); err != nil {
		t.Errorf("verify token: %v", err)
	}

	reset, err := m.GenerateAction(user, PurposeResetPassword)
	if err != nil {
		t.Fatalf("GenerateAction failed: %v", err)
	}
	claims, err := m.ValidateAction(reset, PurposeResetPassword)
	if err != nil {
		t.Fatalf("ValidateAction failed: %v", err)
	}
	if err := CheckBinding(claims, user); err != nil {
		t.Errorf("fresh reset token should bind: %v", err)
	}

	if err := a.SetCredential(ctx, user, "new-password"); err != nil {
		t.Fatalf("SetCredential failed: %v", err)
	}
	if err := CheckBinding(claims, user); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("reset token should be spent after password change, got %v", err)
	}
}
