package identity

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"connectrpc.com/connect"
	"github.com/mmynk/scribe/internal/auth"
	"github.com/mmynk/scribe/internal/middleware"
	pb "github.com/mmynk/scribe/pkg/proto"
	"github.com/mmynk/scribe/pkg/proto/protoconnect"
)

// Client implements Provider over the AuthService RPCs. It holds the
// signed-in user and ID token in memory only.
type Client struct {
	rpc    protoconnect.AuthServiceClient
	logger *slog.Logger

	mu        sync.Mutex
	user      *User
	token     string
	nextID    int
	listeners map[int]func(*User)
}

var _ Provider = (*Client)(nil)

// NewClient creates a Client for the server at baseURL.
func NewClient(httpClient connect.HTTPClient, baseURL string, logger *slog.Logger) *Client {
	c := &Client{
		logger:    logger,
		listeners: make(map[int]func(*User)),
	}
	c.rpc = protoconnect.NewAuthServiceClient(httpClient, baseURL,
		connect.WithInterceptors(middleware.Bearer(c.IDToken)))
	return c
}

// IDToken returns the current ID token, or "" when signed out.
func (c *Client) IDToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

// CurrentUser returns a copy of the signed-in user, or nil.
func (c *Client) CurrentUser() *User {
	c.mu.Lock()
	defer c.mu.Unlock()
	return copyUser(c.user)
}

func (c *Client) SignIn(ctx context.Context, email, password string) (*User, error) {
	resp, err := c.rpc.SignIn(ctx, connect.NewRequest(&pb.SignInRequest{Email: email, Password: password}))
	if err != nil {
		return nil, decodeError(err)
	}
	user := fromAPI(resp.Msg.User)
	c.setState(user, resp.Msg.IdToken)
	return copyUser(user), nil
}

func (c *Client) CreateAccount(ctx context.Context, email, password string) (*User, error) {
	resp, err := c.rpc.CreateAccount(ctx, connect.NewRequest(&pb.CreateAccountRequest{Email: email, Password: password}))
	if err != nil {
		return nil, decodeError(err)
	}
	user := fromAPI(resp.Msg.User)
	c.setState(user, resp.Msg.IdToken)
	return copyUser(user), nil
}

func (c *Client) SendEmailVerification(ctx context.Context) error {
	if c.IDToken() == "" {
		return auth.ErrMissingToken
	}
	_, err := c.rpc.SendEmailVerification(ctx, connect.NewRequest(&pb.SendEmailVerificationRequest{}))
	return decodeError(err)
}

func (c *Client) SendPasswordReset(ctx context.Context, email string) error {
	_, err := c.rpc.SendPasswordReset(ctx, connect.NewRequest(&pb.SendPasswordResetRequest{Email: email}))
	return decodeError(err)
}

// VerifyEmail applies the code from a verification link, then refreshes
// the signed-in user if there is one.
func (c *Client) VerifyEmail(ctx context.Context, code string) error {
	if _, err := c.rpc.VerifyEmail(ctx, connect.NewRequest(&pb.VerifyEmailRequest{Code: code})); err != nil {
		return decodeError(err)
	}
	if c.IDToken() == "" {
		return nil
	}
	return c.Reload(ctx)
}

// ConfirmPasswordReset sets a new password with the code from a reset link.
func (c *Client) ConfirmPasswordReset(ctx context.Context, code, newPassword string) error {
	_, err := c.rpc.ConfirmPasswordReset(ctx, connect.NewRequest(&pb.ConfirmPasswordResetRequest{
		Code:        code,
		NewPassword: newPassword,
	}))
	return decodeError(err)
}

func (c *Client) UpdateProfile(ctx context.Context, displayName string) error {
	resp, err := c.rpc.UpdateProfile(ctx, connect.NewRequest(&pb.UpdateProfileRequest{DisplayName: displayName}))
	if err != nil {
		return decodeError(err)
	}
	c.setState(fromAPI(resp.Msg.User), c.IDToken())
	return nil
}

// Reload fetches the signed-in user again, picking up a verified email.
func (c *Client) Reload(ctx context.Context) error {
	resp, err := c.rpc.GetCurrentUser(ctx, connect.NewRequest(&pb.GetCurrentUserRequest{}))
	if err != nil {
		return decodeError(err)
	}
	c.setState(fromAPI(resp.Msg.User), resp.Msg.IdToken)
	return nil
}

// SignOut clears the local session even when the server call fails.
func (c *Client) SignOut(ctx context.Context) error {
	if c.IDToken() != "" {
		if _, err := c.rpc.SignOut(ctx, connect.NewRequest(&pb.SignOutRequest{})); err != nil {
			c.logger.Warn("SignOut call failed", "error", err)
		}
	}
	c.setState(nil, "")
	return nil
}

func (c *Client) OnAuthStateChanged(fn func(*User)) func() {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	current := copyUser(c.user)
	c.mu.Unlock()

	fn(current)

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.listeners, id)
			c.mu.Unlock()
		})
	}
}

// setState replaces the session and notifies listeners outside the lock.
func (c *Client) setState(user *User, token string) {
	c.mu.Lock()
	c.user = user
	c.token = token
	ids := make([]int, 0, len(c.listeners))
	for id := range c.listeners {
		ids = append(ids, id)
	}
	fns := make([]func(*User), 0, len(ids))
	slices.Sort(ids)
	for _, id := range ids {
		fns = append(fns, c.listeners[id])
	}
	c.mu.Unlock()

	for _, fn := range fns {
		fn(copyUser(user))
	}
}

func copyUser(u *User) *User {
	if u == nil {
		return nil
	}
	cp := *u
	return &cp
}
