package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"connectrpc.com/connect"
	"github.com/mmynk/scribe/internal/auth"
	"github.com/mmynk/scribe/internal/mailer"
	"github.com/mmynk/scribe/internal/metrics"
	"github.com/mmynk/scribe/internal/middleware"
	"github.com/mmynk/scribe/internal/models"
	"github.com/mmynk/scribe/internal/storage"
	pb "github.com/mmynk/scribe/pkg/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// ActionPath is where email links point. The handler lives in action.go.
const ActionPath = "/auth/action"

// AuthConfig wires the identity provider's collaborators.
type AuthConfig struct {
	Authenticator auth.Authenticator
	Users         storage.UserStore
	JWT           *auth.JWTManager
	Mailer        mailer.Sender
	// PublicURL is the externally reachable base URL used in email links.
	PublicURL string
	Metrics   *metrics.Metrics
	Logger    *slog.Logger
}

// AuthService implements the AuthService RPC interface.
type AuthService struct {
	authenticator auth.Authenticator
	users         storage.UserStore
	jwtManager    *auth.JWTManager
	mailer        mailer.Sender
	publicURL     string
	metrics       *metrics.Metrics
	logger        *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(cfg AuthConfig) *AuthService {
	return &AuthService{
		authenticator: cfg.Authenticator,
		users:         cfg.Users,
		jwtManager:    cfg.JWT,
		mailer:        cfg.Mailer,
		publicURL:     strings.TrimRight(cfg.PublicURL, "/"),
		metrics:       cfg.Metrics,
		logger:        cfg.Logger,
	}
}

// SignIn authenticates with email and password. Unverified users sign in
// normally; the token's email_verified claim lets clients gate on it.
func (s *AuthService) SignIn(ctx context.Context, req *connect.Request[pb.SignInRequest]) (*connect.Response[pb.SignInResponse], error) {
	s.logger.Info("SignIn request", "email", req.Msg.Email)

	user, err := s.authenticator.Authenticate(ctx, req.Msg.Email, req.Msg.Password)
	if err != nil {
		code := auth.CodeOf(err)
		if code == "" {
			code = auth.CodeInternal
		}
		s.metrics.SignIn(string(code))
		s.logger.Warn("SignIn failed", "email", req.Msg.Email, "error", err)
		return nil, authError(err)
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		s.logger.Error("Failed to generate token", "user_id", user.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.metrics.SignIn("ok")
	s.logger.Info("User signed in", "user_id", user.ID, "verified", user.EmailVerified)
	return connect.NewResponse(&pb.SignInResponse{User: toAPIUser(user), IdToken: token}), nil
}

// CreateAccount registers a new, unverified account and signs it in.
func (s *AuthService) CreateAccount(ctx context.Context, req *connect.Request[pb.CreateAccountRequest]) (*connect.Response[pb.CreateAccountResponse], error) {
	s.logger.Info("CreateAccount request", "email", req.Msg.Email)

	user, err := s.authenticator.Register(ctx, req.Msg.Email, req.Msg.DisplayName, req.Msg.Password)
	if err != nil {
		s.logger.Warn("Registration failed", "email", req.Msg.Email, "error", err)
		return nil, authError(err)
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		s.logger.Error("Failed to generate token", "user_id", user.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("User registered", "user_id", user.ID, "email", user.Email)
	return connect.NewResponse(&pb.CreateAccountResponse{User: toAPIUser(user), IdToken: token}), nil
}

// SendEmailVerification mails a verification link to the caller.
// Already-verified users get no email.
func (s *AuthService) SendEmailVerification(ctx context.Context, req *connect.Request[pb.SendEmailVerificationRequest]) (*connect.Response[pb.SendEmailVerificationResponse], error) {
	user, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}
	if user.EmailVerified {
		return connect.NewResponse(&pb.SendEmailVerificationResponse{}), nil
	}

	if err := s.sendAction(ctx, user, auth.PurposeVerifyEmail); err != nil {
		return nil, err
	}
	return connect.NewResponse(&pb.SendEmailVerificationResponse{}), nil
}

// VerifyEmail applies a verification code.
func (s *AuthService) VerifyEmail(ctx context.Context, req *connect.Request[pb.VerifyEmailRequest]) (*connect.Response[pb.VerifyEmailResponse], error) {
	user, err := s.verifyEmail(ctx, req.Msg.Code)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&pb.VerifyEmailResponse{User: toAPIUser(user)}), nil
}

// SendPasswordReset mails a reset link to the account registered for email.
func (s *AuthService) SendPasswordReset(ctx context.Context, req *connect.Request[pb.SendPasswordResetRequest]) (*connect.Response[pb.SendPasswordResetResponse], error) {
	email := models.NormalizeEmail(req.Msg.Email)
	s.logger.Info("SendPasswordReset request", "email", email)

	if email == "" {
		return nil, authError(auth.ErrMissingFields)
	}
	if err := auth.ValidateEmail(email); err != nil {
		return nil, authError(err)
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, authError(auth.ErrUserNotFound)
	}
	if err != nil {
		s.logger.Error("Failed to look up user", "email", email, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	if err := s.sendAction(ctx, user, auth.PurposeResetPassword); err != nil {
		return nil, err
	}
	return connect.NewResponse(&pb.SendPasswordResetResponse{}), nil
}

// ConfirmPasswordReset sets a new password using a reset code. A code
// stops working once the password it was issued against changes.
func (s *AuthService) ConfirmPasswordReset(ctx context.Context, req *connect.Request[pb.ConfirmPasswordResetRequest]) (*connect.Response[pb.ConfirmPasswordResetResponse], error) {
	claims, err := s.jwtManager.ValidateAction(req.Msg.Code, auth.PurposeResetPassword)
	if err != nil {
		return nil, authError(auth.ErrInvalidToken)
	}

	user, err := s.users.GetUserByID(ctx, claims.UserID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, authError(auth.ErrUserNotFound)
	}
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	if err := auth.CheckBinding(claims, user); err != nil {
		return nil, authError(err)
	}

	if err := s.authenticator.SetCredential(ctx, user, req.Msg.NewPassword); err != nil {
		s.logger.Warn("Password reset failed", "user_id", user.ID, "error", err)
		return nil, authError(err)
	}

	s.logger.Info("Password reset", "user_id", user.ID)
	return connect.NewResponse(&pb.ConfirmPasswordResetResponse{}), nil
}

// UpdateProfile sets the caller's display name.
func (s *AuthService) UpdateProfile(ctx context.Context, req *connect.Request[pb.UpdateProfileRequest]) (*connect.Response[pb.UpdateProfileResponse], error) {
	user, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	user.DisplayName = strings.TrimSpace(req.Msg.DisplayName)
	if err := s.users.UpdateUser(ctx, user); err != nil {
		s.logger.Error("Failed to update profile", "user_id", user.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(&pb.UpdateProfileResponse{User: toAPIUser(user)}), nil
}

// SignOut ends the caller's session.
func (s *AuthService) SignOut(ctx context.Context, req *connect.Request[pb.SignOutRequest]) (*connect.Response[pb.SignOutResponse], error) {
	// ID tokens are stateless; the client drops its copy.
	s.logger.Info("SignOut request", "user_id", middleware.GetUserID(ctx))
	return connect.NewResponse(&pb.SignOutResponse{}), nil
}

// GetCurrentUser returns the caller's stored account and a fresh ID token,
// so a client picks up changes such as a newly verified email.
func (s *AuthService) GetCurrentUser(ctx context.Context, req *connect.Request[pb.GetCurrentUserRequest]) (*connect.Response[pb.GetCurrentUserResponse], error) {
	user, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	return connect.NewResponse(&pb.GetCurrentUserResponse{User: toAPIUser(user), IdToken: token}), nil
}

func (s *AuthService) currentUser(ctx context.Context) (*models.User, error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, authError(auth.ErrMissingToken)
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, authError(auth.ErrUserNotFound)
	}
	if err != nil {
		s.logger.Error("Failed to load user", "user_id", userID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	if user.Disabled {
		return nil, authError(auth.ErrUserDisabled)
	}
	return user, nil
}

func (s *AuthService) verifyEmail(ctx context.Context, code string) (*models.User, error) {
	claims, err := s.jwtManager.ValidateAction(code, auth.PurposeVerifyEmail)
	if err != nil {
		return nil, authError(auth.ErrInvalidToken)
	}

	user, err := s.users.GetUserByID(ctx, claims.UserID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, authError(auth.ErrUserNotFound)
	}
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	if user.EmailVerified {
		return user, nil
	}

	user.EmailVerified = true
	if err := s.users.UpdateUser(ctx, user); err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	s.logger.Info("Email verified", "user_id", user.ID)
	return user, nil
}

func (s *AuthService) sendAction(ctx context.Context, user *models.User, purpose auth.Purpose) error {
	code, err := s.jwtManager.GenerateAction(user, purpose)
	if err != nil {
		s.logger.Error("Failed to generate action code", "user_id", user.ID, "error", err)
		return connect.NewError(connect.CodeInternal, err)
	}

	msg := actionMessage(user.Email, purpose, s.actionLink(purpose, code))
	if err := s.mailer.Send(ctx, msg); err != nil {
		s.logger.Error("Failed to send email", "user_id", user.ID, "purpose", purpose, "error", err)
		return connect.NewError(connect.CodeUnavailable, fmt.Errorf("send email: %w", err))
	}

	s.logger.Info("Action email sent", "user_id", user.ID, "purpose", purpose)
	return nil
}

func (s *AuthService) actionLink(purpose auth.Purpose, code string) string {
	q := url.Values{}
	q.Set("mode", modeFor(purpose))
	q.Set("oobCode", code)
	return s.publicURL + ActionPath + "?" + q.Encode()
}

func modeFor(purpose auth.Purpose) string {
	if purpose == auth.PurposeResetPassword {
		return "resetPassword"
	}
	return "verifyEmail"
}

func actionMessage(to string, purpose auth.Purpose, link string) mailer.Message {
	if purpose == auth.PurposeResetPassword {
		return mailer.Message{
			To:      to,
			Subject: "Reset your Scribe password",
			Body:    "Follow this link to reset your password:\n\n" + link + "\n\nIf you didn't ask to reset your password, you can ignore this email.",
			Link:    link,
		}
	}
	return mailer.Message{
		To:      to,
		Subject: "Verify your email for Scribe",
		Body:    "Follow this link to verify your email address:\n\n" + link + "\n\nIf you didn't ask to verify this address, you can ignore this email.",
		Link:    link,
	}
}

func toAPIUser(user *models.User) *pb.User {
	return &pb.User{
		Id:            user.ID,
		Email:         user.Email,
		DisplayName:   user.DisplayName,
		EmailVerified: user.EmailVerified,
		CreatedAt:     timestamppb.New(time.Unix(user.CreatedAt, 0)),
	}
}
