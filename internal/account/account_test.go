package account

import (
	"context"
	"errors"
	"testing"

	"github.com/mmynk/scribe/internal/auth"
	"github.com/mmynk/scribe/internal/identity"
	"github.com/mmynk/scribe/pkg/logging"
)

type fakeProvider struct {
	user      *identity.User
	signInErr error
	createErr error
	sendErr   error
	resetErr  error

	signIns     int
	signOuts    int
	verifySends int
	resets      []string
	displayName string
}

func (p *fakeProvider) SignIn(_ context.Context, email, password string) (*identity.User, error) {
	p.signIns++
	if p.signInErr != nil {
		return nil, p.signInErr
	}
	return p.user, nil
}

func (p *fakeProvider) CreateAccount(_ context.Context, email, password string) (*identity.User, error) {
	if p.createErr != nil {
		return nil, p.createErr
	}
	return &identity.User{ID: "new-user", Email: email}, nil
}

func (p *fakeProvider) SendEmailVerification(context.Context) error {
	p.verifySends++
	return p.sendErr
}

func (p *fakeProvider) SendPasswordReset(_ context.Context, email string) error {
	p.resets = append(p.resets, email)
	return p.resetErr
}

func (p *fakeProvider) UpdateProfile(_ context.Context, displayName string) error {
	p.displayName = displayName
	return nil
}

func (p *fakeProvider) SignOut(context.Context) error {
	p.signOuts++
	return nil
}

func (p *fakeProvider) OnAuthStateChanged(fn func(*identity.User)) func() {
	fn(nil)
	return func() {}
}

type fakeEnroller bool

func (e fakeEnroller) ShouldOfferEnrollment(context.Context) bool { return bool(e) }

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("empty fields are never sent", func(t *testing.T) {
		p := &fakeProvider{}
		svc := NewService(p, nil, logging.Discard())
		_, err := svc.Login(ctx, "  ", "secret")
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if verr.Msg != "Please enter both email and password." {
			t.Errorf("message = %q", verr.Msg)
		}
		if p.signIns != 0 {
			t.Errorf("signIns = %d, want 0", p.signIns)
		}
	})

	t.Run("unverified account is signed out", func(t *testing.T) {
		p := &fakeProvider{user: &identity.User{ID: "u1", EmailVerified: false}}
		svc := NewService(p, fakeEnroller(true), logging.Discard())
		_, err := svc.Login(ctx, "a@example.com", "password1")
		if !errors.Is(err, ErrEmailNotVerified) {
			t.Fatalf("expected ErrEmailNotVerified, got %v", err)
		}
		if p.signOuts != 1 {
			t.Errorf("signOuts = %d, want 1", p.signOuts)
		}
	})

	t.Run("verified account offers biometrics", func(t *testing.T) {
		p := &fakeProvider{user: &identity.User{ID: "u1", EmailVerified: true}}
		svc := NewService(p, fakeEnroller(true), logging.Discard())
		res, err := svc.Login(ctx, "a@example.com", "password1")
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}
		if res.User.ID != "u1" || !res.OfferBiometrics {
			t.Errorf("result = %+v", res)
		}
		if p.signOuts != 0 {
			t.Errorf("signOuts = %d, want 0", p.signOuts)
		}
	})

	t.Run("no enroller means no offer", func(t *testing.T) {
		p := &fakeProvider{user: &identity.User{ID: "u1", EmailVerified: true}}
		res, err := NewService(p, nil, logging.Discard()).Login(ctx, "a@example.com", "password1")
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}
		if res.OfferBiometrics {
			t.Error("expected no biometric offer")
		}
	})

	tests := []struct {
		code auth.Code
		want string
	}{
		{auth.CodeInvalidCredential, "Invalid email or password."},
		{auth.CodeWrongPassword, "Invalid email or password."},
		{auth.CodeUserNotFound, "No account found with this email."},
		{auth.CodeTooManyRequests, "Too many failed attempts. Try again later."},
		{auth.CodeUserDisabled, "This account has been disabled."},
		{auth.CodeInternal, "Login failed: boom"},
	}
	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			p := &fakeProvider{signInErr: auth.NewError(tt.code, "boom")}
			_, err := NewService(p, nil, logging.Discard()).Login(ctx, "a@example.com", "password1")
			if err == nil || err.Error() != tt.want {
				t.Errorf("error = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates, names, verifies and signs out", func(t *testing.T) {
		p := &fakeProvider{}
		err := NewService(p, nil, logging.Discard()).Register(ctx, "new@example.com", "password1", " Ada ")
		if err != nil {
			t.Fatalf("Register failed: %v", err)
		}
		if p.displayName != "Ada" {
			t.Errorf("displayName = %q, want Ada", p.displayName)
		}
		if p.verifySends != 1 {
			t.Errorf("verifySends = %d, want 1", p.verifySends)
		}
		if p.signOuts != 1 {
			t.Errorf("signOuts = %d, want 1", p.signOuts)
		}
	})

	t.Run("verification failure still signs out", func(t *testing.T) {
		p := &fakeProvider{sendErr: errors.New("smtp down")}
		err := NewService(p, nil, logging.Discard()).Register(ctx, "new@example.com", "password1", "")
		if err == nil {
			t.Fatal("expected error")
		}
		if p.signOuts != 1 {
			t.Errorf("signOuts = %d, want 1", p.signOuts)
		}
	})

	tests := []struct {
		name     string
		email    string
		password string
		err      error
		want     string
	}{
		{"missing password", "new@example.com", "", nil, "Please fill in both email and password."},
		{"email in use", "new@example.com", "password1", auth.NewError(auth.CodeEmailInUse, "x"), "This email address is already in use."},
		{"invalid email", "nope", "password1", auth.NewError(auth.CodeInvalidEmail, "x"), "The email address format is invalid."},
		{"weak password", "new@example.com", "short", auth.NewError(auth.CodeWeakPassword, "x"), "Password should be at least 8 characters."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &fakeProvider{createErr: tt.err}
			err := NewService(p, nil, logging.Discard()).Register(ctx, tt.email, tt.password, "")
			if err == nil || err.Error() != tt.want {
				t.Errorf("error = %v, want %q", err, tt.want)
			}
			if p.signOuts != 0 {
				t.Errorf("signOuts = %d, want 0", p.signOuts)
			}
		})
	}
}

func TestResetPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("sends trimmed email", func(t *testing.T) {
		p := &fakeProvider{}
		if err := NewService(p, nil, logging.Discard()).ResetPassword(ctx, " a@example.com "); err != nil {
			t.Fatalf("ResetPassword failed: %v", err)
		}
		if len(p.resets) != 1 || p.resets[0] != "a@example.com" {
			t.Errorf("resets = %v", p.resets)
		}
	})

	tests := []struct {
		name  string
		email string
		err   error
		want  string
	}{
		{"empty", "", nil, "Please enter your email address."},
		{"unknown", "a@example.com", auth.NewError(auth.CodeUserNotFound, "x"), "No account found with that email address."},
		{"invalid", "nope", auth.NewError(auth.CodeInvalidEmail, "x"), "The email address format is invalid."},
		{"other", "a@example.com", errors.New("offline"), "Password reset failed: offline"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &fakeProvider{resetErr: tt.err}
			err := NewService(p, nil, logging.Discard()).ResetPassword(ctx, tt.email)
			if err == nil || err.Error() != tt.want {
				t.Errorf("error = %v, want %q", err, tt.want)
			}
		})
	}
}
