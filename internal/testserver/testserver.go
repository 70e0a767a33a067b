// Package testserver runs the full Connect backend over a temp SQLite
// database for client-side tests.
package testserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/mmynk/scribe/internal/auth"
	"github.com/mmynk/scribe/internal/mailer"
	"github.com/mmynk/scribe/internal/middleware"
	"github.com/mmynk/scribe/internal/realtime"
	"github.com/mmynk/scribe/internal/service"
	"github.com/mmynk/scribe/internal/storage/sqlite"
	"github.com/mmynk/scribe/pkg/logging"
	"github.com/mmynk/scribe/pkg/proto/protoconnect"
)

// Env is a running backend.
type Env struct {
	URL    string
	Store  *sqlite.SQLiteStore
	Outbox *mailer.Outbox
}

// Start serves AuthService and HistoryService until the test ends.
func Start(t testing.TB) *Env {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	logger := logging.Discard()
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	outbox := &mailer.Outbox{}

	authSvc := service.NewAuthService(service.AuthConfig{
		Authenticator: auth.NewPasswordAuthenticator(store, auth.NewAttemptLimiter(5, 15*time.Minute)),
		Users:         store,
		JWT:           jwtManager,
		Mailer:        outbox,
		PublicURL:     "http://scribe.test",
		Logger:        logger,
	})
	historySvc := service.NewHistoryService(store, realtime.NewHub(), nil, logger)

	mux := http.NewServeMux()
	authPath, authHandler := protoconnect.NewAuthServiceHandler(authSvc,
		connect.WithInterceptors(middleware.OptionalAuth(jwtManager)))
	mux.Handle(authPath, authHandler)
	historyPath, historyHandler := protoconnect.NewHistoryServiceHandler(historySvc,
		connect.WithInterceptors(middleware.RequireAuth(jwtManager)))
	mux.Handle(historyPath, historyHandler)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return &Env{URL: srv.URL, Store: store, Outbox: outbox}
}

// ActionCode returns the oobCode of the last email sent to addr.
func (e *Env) ActionCode(t testing.TB, addr string) string {
	t.Helper()
	msg, ok := e.Outbox.Last(addr)
	if !ok {
		t.Fatalf("no email sent to %s", addr)
	}
	u, err := url.Parse(msg.Link)
	if err != nil {
		t.Fatalf("bad link %q: %v", msg.Link, err)
	}
	return u.Query().Get("oobCode")
}

// MarkVerified flips the stored email-verified flag for addr.
func (e *Env) MarkVerified(t testing.TB, addr string) {
	t.Helper()
	ctx := context.Background()
	user, err := e.Store.GetUserByEmail(ctx, addr)
	if err != nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}
	user.EmailVerified = true
	if err := e.Store.UpdateUser(ctx, user); err != nil {
		t.Fatalf("UpdateUser failed: %v", err)
	}
}
