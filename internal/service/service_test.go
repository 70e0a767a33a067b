package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/mmynk/scribe/internal/auth"
	"github.com/mmynk/scribe/internal/mailer"
	"github.com/mmynk/scribe/internal/middleware"
	"github.com/mmynk/scribe/internal/realtime"
	"github.com/mmynk/scribe/internal/storage/sqlite"
	"github.com/mmynk/scribe/pkg/logging"
	pb "github.com/mmynk/scribe/pkg/proto"
	"github.com/mmynk/scribe/pkg/proto/protoconnect"
)

type testEnv struct {
	server  *httptest.Server
	store   *sqlite.SQLiteStore
	outbox  *mailer.Outbox
	token   string
	auth    protoconnect.AuthServiceClient
	history protoconnect.HistoryServiceClient
}

// setupTestServer starts both services over a temp database. Clients send
// env.token as the bearer token when it is set.
func setupTestServer(t *testing.T) *testEnv {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "scribe-service-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := sqlite.New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	logger := logging.Discard()
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	env := &testEnv{store: store, outbox: &mailer.Outbox{}}

	authSvc := NewAuthService(AuthConfig{
		Authenticator: auth.NewPasswordAuthenticator(store, auth.NewAttemptLimiter(5, 15*time.Minute)),
		Users:         store,
		JWT:           jwtManager,
		Mailer:        env.outbox,
		PublicURL:     "http://scribe.test",
		Logger:        logger,
	})
	historySvc := NewHistoryService(store, realtime.NewHub(), nil, logger)

	logInterceptor := middleware.NewLoggingInterceptor(logger, nil)
	mux := http.NewServeMux()
	authPath, authHandler := protoconnect.NewAuthServiceHandler(authSvc,
		connect.WithInterceptors(middleware.OptionalAuth(jwtManager), logInterceptor))
	mux.Handle(authPath, authHandler)
	historyPath, historyHandler := protoconnect.NewHistoryServiceHandler(historySvc,
		connect.WithInterceptors(middleware.RequireAuth(jwtManager), logInterceptor))
	mux.Handle(historyPath, historyHandler)
	mux.Handle(ActionPath, authSvc.ActionHandler())

	env.server = httptest.NewServer(mux)
	t.Cleanup(env.server.Close)

	bearer := connect.WithInterceptors(middleware.Bearer(func() string { return env.token }))
	env.auth = protoconnect.NewAuthServiceClient(http.DefaultClient, env.server.URL, bearer)
	env.history = protoconnect.NewHistoryServiceClient(http.DefaultClient, env.server.URL, bearer)
	return env
}

// signUp creates an account and keeps its token on env.
func (env *testEnv) signUp(t *testing.T, email, password string) *pb.User {
	t.Helper()
	resp, err := env.auth.CreateAccount(context.Background(), connect.NewRequest(&pb.CreateAccountRequest{
		Email:       email,
		Password:    password,
		DisplayName: "Test User",
	}))
	if err != nil {
		t.Fatalf("CreateAccount failed: %v", err)
	}
	env.token = resp.Msg.IdToken
	return resp.Msg.User
}

// signUpVerified creates a verified account and signs it in.
func (env *testEnv) signUpVerified(t *testing.T, email, password string) *pb.User {
	t.Helper()
	ctx := context.Background()
	created := env.signUp(t, email, password)

	user, err := env.store.GetUserByID(ctx, created.Id)
	if err != nil {
		t.Fatalf("GetUserByID failed: %v", err)
	}
	user.EmailVerified = true
	if err := env.store.UpdateUser(ctx, user); err != nil {
		t.Fatalf("UpdateUser failed: %v", err)
	}

	resp, err := env.auth.SignIn(ctx, connect.NewRequest(&pb.SignInRequest{Email: email, Password: password}))
	if err != nil {
		t.Fatalf("SignIn failed: %v", err)
	}
	env.token = resp.Msg.IdToken
	return resp.Msg.User
}

func oobCode(t *testing.T, msg mailer.Message) string {
	t.Helper()
	u, err := url.Parse(msg.Link)
	if err != nil {
		t.Fatalf("bad link %q: %v", msg.Link, err)
	}
	code := u.Query().Get("oobCode")
	if code == "" {
		t.Fatalf("link %q has no oobCode", msg.Link)
	}
	return code
}

func authCode(err error) string {
	var connectErr *connect.Error
	if !errors.As(err, &connectErr) {
		return ""
	}
	return connectErr.Meta().Get(auth.MetadataKey)
}

func connectCodeOf(err error) connect.Code {
	var connectErr *connect.Error
	if !errors.As(err, &connectErr) {
		return connect.CodeUnknown
	}
	return connectErr.Code()
}
