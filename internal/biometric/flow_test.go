package biometric

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mmynk/scribe/internal/auth"
	"github.com/mmynk/scribe/internal/identity"
	"github.com/mmynk/scribe/internal/vault"
	"github.com/mmynk/scribe/pkg/logging"
)

type fakeDevice struct {
	hardware bool
	enrolled bool
	result   PromptResult
	prompts  []PromptOptions
}

func (d *fakeDevice) HasHardware(context.Context) (bool, error) { return d.hardware, nil }
func (d *fakeDevice) IsEnrolled(context.Context) (bool, error)  { return d.enrolled, nil }
func (d *fakeDevice) SupportedTypes(context.Context) ([]Type, error) {
	return []Type{TypeFingerprint}, nil
}
func (d *fakeDevice) Prompt(_ context.Context, opts PromptOptions) (PromptResult, error) {
	d.prompts = append(d.prompts, opts)
	return d.result, nil
}

type fakeProvider struct {
	user     *identity.User
	err      error
	signIns  int
	signOuts int
}

func (p *fakeProvider) SignIn(context.Context, string, string) (*identity.User, error) {
	p.signIns++
	return p.user, p.err
}

func (p *fakeProvider) SignOut(context.Context) error {
	p.signOuts++
	return nil
}

func newFlow(device *fakeDevice, provider *fakeProvider, saved bool) (*Flow, *vault.Credentials) {
	creds := vault.NewCredentials(vault.NewMemoryStore())
	if saved {
		creds.Save("a@example.com", "password123")
	}
	return NewFlow(device, creds, provider, logging.Discard()), creds
}

func TestUnlockPreconditions(t *testing.T) {
	tests := []struct {
		name     string
		hardware bool
		enrolled bool
		saved    bool
		want     error
	}{
		{"no hardware", false, true, true, ErrUnavailable},
		{"not enrolled", true, false, true, ErrNotEnrolled},
		{"no saved credentials", true, true, false, ErrNoSavedCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			device := &fakeDevice{hardware: tt.hardware, enrolled: tt.enrolled, result: PromptResult{Success: true}}
			provider := &fakeProvider{user: &identity.User{EmailVerified: true}}
			flow, _ := newFlow(device, provider, tt.saved)

			_, err := flow.Unlock(context.Background())
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
			if len(device.prompts) != 0 {
				t.Error("prompt must not run when a precondition fails")
			}
			if provider.signIns != 0 {
				t.Error("no sign-in expected")
			}
		})
	}
}

func TestUnlockSuccess(t *testing.T) {
	device := &fakeDevice{hardware: true, enrolled: true, result: PromptResult{Success: true}}
	provider := &fakeProvider{user: &identity.User{ID: "u1", EmailVerified: true}}
	flow, _ := newFlow(device, provider, true)

	user, err := flow.Unlock(context.Background())
	if err != nil {
		t.Fatalf("Unlock failed: %v", err)
	}
	if user.ID != "u1" {
		t.Errorf("user = %+v", user)
	}
	if len(device.prompts) != 1 || !device.prompts[0].DisableDeviceFallback {
		t.Errorf("expected one prompt with device fallback disabled, got %+v", device.prompts)
	}
}

func TestUnlockPromptFailureKeepsCredentials(t *testing.T) {
	device := &fakeDevice{hardware: true, enrolled: true, result: PromptResult{Error: "user_cancel"}}
	provider := &fakeProvider{}
	flow, creds := newFlow(device, provider, true)

	_, err := flow.Unlock(context.Background())
	if !errors.Is(err, ErrPromptFailed) {
		t.Fatalf("expected ErrPromptFailed, got %v", err)
	}
	if ok, _ := creds.Has(); !ok {
		t.Error("credentials must survive a failed prompt")
	}
	if provider.signIns != 0 {
		t.Error("no sign-in expected after a failed prompt")
	}
}

func TestUnlockUnverifiedSignsOut(t *testing.T) {
	device := &fakeDevice{hardware: true, enrolled: true, result: PromptResult{Success: true}}
	provider := &fakeProvider{user: &identity.User{ID: "u1"}}
	flow, _ := newFlow(device, provider, true)

	_, err := flow.Unlock(context.Background())
	if !errors.Is(err, ErrEmailNotVerified) {
		t.Fatalf("expected ErrEmailNotVerified, got %v", err)
	}
	if provider.signOuts != 1 {
		t.Errorf("expected one sign-out, got %d", provider.signOuts)
	}
}

func TestUnlockProviderErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		want       error
		keepsVault bool
	}{
		{"invalid credential", auth.ErrInvalidCredentials, ErrStaleCredentials, false},
		{"wrong password", auth.NewError(auth.CodeWrongPassword, ""), ErrStaleCredentials, false},
		{"user not found", auth.ErrUserNotFound, ErrStaleCredentials, false},
		{"too many requests", auth.ErrTooManyRequests, auth.ErrTooManyRequests, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			device := &fakeDevice{hardware: true, enrolled: true, result: PromptResult{Success: true}}
			provider := &fakeProvider{err: tt.err}
			flow, creds := newFlow(device, provider, true)

			_, err := flow.Unlock(context.Background())
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if ok, _ := creds.Has(); ok != tt.keepsVault {
				t.Errorf("vault has credentials = %v, want %v", ok, tt.keepsVault)
			}
		})
	}
}

func TestEnrollment(t *testing.T) {
	device := &fakeDevice{hardware: true, enrolled: true}
	flow, _ := newFlow(device, &fakeProvider{}, false)
	ctx := context.Background()

	if !flow.ShouldOfferEnrollment(ctx) {
		t.Error("should offer enrollment when available and nothing is saved")
	}
	if err := flow.Enroll("a@example.com", "password123"); err != nil {
		t.Fatalf("Enroll failed: %v", err)
	}
	if flow.ShouldOfferEnrollment(ctx) {
		t.Error("should not offer enrollment once credentials are saved")
	}

	device.enrolled = false
	if flow.Available(ctx) {
		t.Error("Available should be false without enrollment")
	}
}

func TestMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrNoSavedCredentials, "Please login with email/password first to enable biometric login."},
		{ErrStaleCredentials, "Saved credentials are no longer valid. Please log in again to update."},
		{ErrEmailNotVerified, "Please verify your email before logging in. Check your inbox."},
		{&SignInError{Err: errors.New("network down")}, "Biometric login failed: network down"},
	}
	for _, tt := range tests {
		if got := Message(tt.err); got != tt.want {
			t.Errorf("Message(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestConsolePrompt(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(true, true, strings.NewReader("y\nno\n"), &out)
	ctx := context.Background()

	if r, _ := c.Prompt(ctx, PromptOptions{Message: "Unlock"}); !r.Success {
		t.Error("expected 'y' to succeed")
	}
	if r, _ := c.Prompt(ctx, PromptOptions{Message: "Unlock"}); r.Success {
		t.Error("expected 'no' to fail")
	}
	if r, _ := c.Prompt(ctx, PromptOptions{Message: "Unlock"}); r.Success || r.Error != "user_cancel" {
		t.Errorf("expected EOF to cancel, got %+v", r)
	}
	if !strings.Contains(out.String(), "Unlock [y/N]") {
		t.Errorf("prompt text missing from %q", out.String())
	}

	off := NewConsole(true, false, strings.NewReader(""), &out)
	if ok, _ := off.IsEnrolled(ctx); ok {
		t.Error("console without enrollment should report not enrolled")
	}
}
