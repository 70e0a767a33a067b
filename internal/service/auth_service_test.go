package service

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"connectrpc.com/connect"
	pb "github.com/mmynk/scribe/pkg/proto"
)

func TestCreateAccountAndVerify(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	user := env.signUp(t, "Alice@Example.com", "password123")
	if user.Id == "" {
		t.Error("expected non-empty user ID")
	}
	if user.Email != "alice@example.com" {
		t.Errorf("email: expected alice@example.com, got %s", user.Email)
	}
	if user.EmailVerified {
		t.Error("new account should not be verified")
	}

	if _, err := env.auth.SendEmailVerification(ctx, connect.NewRequest(&pb.SendEmailVerificationRequest{})); err != nil {
		t.Fatalf("SendEmailVerification failed: %v", err)
	}
	msg, ok := env.outbox.Last("alice@example.com")
	if !ok {
		t.Fatal("expected a verification email")
	}
	if !strings.Contains(msg.Link, "mode=verifyEmail") {
		t.Errorf("link %q should carry mode=verifyEmail", msg.Link)
	}

	verified, err := env.auth.VerifyEmail(ctx, connect.NewRequest(&pb.VerifyEmailRequest{Code: oobCode(t, msg)}))
	if err != nil {
		t.Fatalf("VerifyEmail failed: %v", err)
	}
	if !verified.Msg.User.EmailVerified {
		t.Error("expected user to be verified")
	}

	// The old token still says unverified; GetCurrentUser issues a fresh one.
	current, err := env.auth.GetCurrentUser(ctx, connect.NewRequest(&pb.GetCurrentUserRequest{}))
	if err != nil {
		t.Fatalf("GetCurrentUser failed: %v", err)
	}
	if !current.Msg.User.EmailVerified {
		t.Error("GetCurrentUser should report the verified email")
	}
	if current.Msg.IdToken == "" {
		t.Error("expected a refreshed ID token")
	}
}

func TestCreateAccountErrors(t *testing.T) {
	env := setupTestServer(t)
	env.signUp(t, "taken@example.com", "password123")

	tests := []struct {
		name     string
		email    string
		password string
		code     string
	}{
		{"duplicate email", "taken@example.com", "password123", "auth/email-already-in-use"},
		{"weak password", "new@example.com", "short", "auth/weak-password"},
		{"invalid email", "not-an-email", "password123", "auth/invalid-email"},
		{"missing fields", "", "", "auth/missing-fields"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.auth.CreateAccount(context.Background(), connect.NewRequest(&pb.CreateAccountRequest{
				Email:    tt.email,
				Password: tt.password,
			}))
			if err == nil {
				t.Fatal("expected error")
			}
			if got := authCode(err); got != tt.code {
				t.Errorf("auth code: expected %s, got %q (%v)", tt.code, got, err)
			}
		})
	}
}

func TestSignInErrors(t *testing.T) {
	env := setupTestServer(t)
	env.signUp(t, "bob@example.com", "password123")

	tests := []struct {
		name     string
		email    string
		password string
		code     string
		connect  connect.Code
	}{
		{"wrong password", "bob@example.com", "wrong-password", "auth/invalid-credential", connect.CodeUnauthenticated},
		{"unknown user", "nobody@example.com", "password123", "auth/user-not-found", connect.CodeNotFound},
		{"empty fields", "", "", "auth/missing-fields", connect.CodeInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.auth.SignIn(context.Background(), connect.NewRequest(&pb.SignInRequest{
				Email:    tt.email,
				Password: tt.password,
			}))
			if got := authCode(err); got != tt.code {
				t.Errorf("auth code: expected %s, got %q (%v)", tt.code, got, err)
			}
			if got := connectCodeOf(err); got != tt.connect {
				t.Errorf("connect code: expected %v, got %v", tt.connect, got)
			}
		})
	}
}

func TestSignInLockout(t *testing.T) {
	env := setupTestServer(t)
	env.signUp(t, "carol@example.com", "password123")
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		env.auth.SignIn(ctx, connect.NewRequest(&pb.SignInRequest{Email: "carol@example.com", Password: "nope-nope"}))
	}

	_, err := env.auth.SignIn(ctx, connect.NewRequest(&pb.SignInRequest{Email: "carol@example.com", Password: "password123"}))
	if got := authCode(err); got != "auth/too-many-requests" {
		t.Errorf("expected auth/too-many-requests after repeated failures, got %q", got)
	}
}

func TestPasswordReset(t *testing.T) {
	env := setupTestServer(t)
	env.signUp(t, "dave@example.com", "password123")
	ctx := context.Background()

	t.Run("unknown email", func(t *testing.T) {
		_, err := env.auth.SendPasswordReset(ctx, connect.NewRequest(&pb.SendPasswordResetRequest{Email: "nobody@example.com"}))
		if got := authCode(err); got != "auth/user-not-found" {
			t.Errorf("expected auth/user-not-found, got %q", got)
		}
	})

	t.Run("malformed email", func(t *testing.T) {
		_, err := env.auth.SendPasswordReset(ctx, connect.NewRequest(&pb.SendPasswordResetRequest{Email: "dave@"}))
		if got := authCode(err); got != "auth/invalid-email" {
			t.Errorf("expected auth/invalid-email, got %q", got)
		}
	})

	t.Run("reset code is single use", func(t *testing.T) {
		if _, err := env.auth.SendPasswordReset(ctx, connect.NewRequest(&pb.SendPasswordResetRequest{Email: "DAVE@example.com"})); err != nil {
			t.Fatalf("SendPasswordReset failed: %v", err)
		}
		msg, ok := env.outbox.Last("dave@example.com")
		if !ok {
			t.Fatal("expected a reset email")
		}
		code := oobCode(t, msg)

		_, err := env.auth.ConfirmPasswordReset(ctx, connect.NewRequest(&pb.ConfirmPasswordResetRequest{Code: code, NewPassword: "new-password-1"}))
		if err != nil {
			t.Fatalf("ConfirmPasswordReset failed: %v", err)
		}

		if _, err := env.auth.SignIn(ctx, connect.NewRequest(&pb.SignInRequest{Email: "dave@example.com", Password: "new-password-1"})); err != nil {
			t.Errorf("SignIn with new password failed: %v", err)
		}
		_, err = env.auth.SignIn(ctx, connect.NewRequest(&pb.SignInRequest{Email: "dave@example.com", Password: "password123"}))
		if authCode(err) != "auth/invalid-credential" {
			t.Errorf("old password should be rejected, got %v", err)
		}

		_, err = env.auth.ConfirmPasswordReset(ctx, connect.NewRequest(&pb.ConfirmPasswordResetRequest{Code: code, NewPassword: "another-pass"}))
		if got := authCode(err); got != "auth/invalid-action-code" {
			t.Errorf("reused code: expected auth/invalid-action-code, got %q", got)
		}
	})

	t.Run("verify code cannot reset", func(t *testing.T) {
		env.auth.SendEmailVerification(ctx, connect.NewRequest(&pb.SendEmailVerificationRequest{}))
		msg, _ := env.outbox.Last("dave@example.com")
		_, err := env.auth.ConfirmPasswordReset(ctx, connect.NewRequest(&pb.ConfirmPasswordResetRequest{Code: oobCode(t, msg), NewPassword: "another-pass"}))
		if got := authCode(err); got != "auth/invalid-action-code" {
			t.Errorf("expected auth/invalid-action-code, got %q", got)
		}
	})
}

func TestUpdateProfile(t *testing.T) {
	env := setupTestServer(t)
	env.signUp(t, "erin@example.com", "password123")

	resp, err := env.auth.UpdateProfile(context.Background(), connect.NewRequest(&pb.UpdateProfileRequest{DisplayName: "  Erin Smith "}))
	if err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}
	if resp.Msg.User.DisplayName != "Erin Smith" {
		t.Errorf("display name: expected 'Erin Smith', got %q", resp.Msg.User.DisplayName)
	}
}

func TestAuthenticatedCallsRequireToken(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	_, err := env.auth.GetCurrentUser(ctx, connect.NewRequest(&pb.GetCurrentUserRequest{}))
	if got := connectCodeOf(err); got != connect.CodeUnauthenticated {
		t.Errorf("GetCurrentUser without token: expected Unauthenticated, got %v", got)
	}

	// A bad token on an optional-auth service is ignored, not rejected.
	env.token = "garbage"
	if _, err := env.auth.SignOut(ctx, connect.NewRequest(&pb.SignOutRequest{})); err != nil {
		t.Errorf("SignOut failed: %v", err)
	}
}

func TestActionHandlerVerifiesEmail(t *testing.T) {
	env := setupTestServer(t)
	env.signUp(t, "frank@example.com", "password123")
	ctx := context.Background()

	if _, err := env.auth.SendEmailVerification(ctx, connect.NewRequest(&pb.SendEmailVerificationRequest{})); err != nil {
		t.Fatalf("SendEmailVerification failed: %v", err)
	}
	msg, _ := env.outbox.Last("frank@example.com")
	link := strings.Replace(msg.Link, "http://scribe.test", env.server.URL, 1)

	resp, err := http.Get(link)
	if err != nil {
		t.Fatalf("GET link failed: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: expected 200, got %d: %s", resp.StatusCode, body)
	}
	if !strings.Contains(string(body), "verified") {
		t.Errorf("unexpected body %q", body)
	}

	current, err := env.auth.GetCurrentUser(ctx, connect.NewRequest(&pb.GetCurrentUserRequest{}))
	if err != nil {
		t.Fatalf("GetCurrentUser failed: %v", err)
	}
	if !current.Msg.User.EmailVerified {
		t.Error("link should have verified the email")
	}

	bad, err := http.Get(env.server.URL + ActionPath + "?mode=verifyEmail&oobCode=junk")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	bad.Body.Close()
	if bad.StatusCode != http.StatusBadRequest {
		t.Errorf("junk code: expected 400, got %d", bad.StatusCode)
	}
}
