package history

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/mmynk/scribe/internal/identity"
	"github.com/mmynk/scribe/internal/middleware"
	"github.com/mmynk/scribe/internal/testserver"
	"github.com/mmynk/scribe/pkg/logging"
	"github.com/mmynk/scribe/pkg/proto/protoconnect"
)

type subscription struct {
	userID     string
	onSnapshot func([]Entry)
	onError    func(error)
	released   bool
}

type fakeSource struct {
	mu   sync.Mutex
	subs []*subscription
}

func (s *fakeSource) Watch(_ context.Context, userID string, onSnapshot func([]Entry), onError func(error)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub := &subscription{userID: userID, onSnapshot: onSnapshot, onError: onError}
	s.subs = append(s.subs, sub)
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		sub.released = true
	}
}

func (s *fakeSource) active() []*subscription {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*subscription
	for _, sub := range s.subs {
		if !sub.released {
			out = append(out, sub)
		}
	}
	return out
}

func (s *fakeSource) latest() *subscription {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subs[len(s.subs)-1]
}

var base = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func at(min int) time.Time { return base.Add(time.Duration(min) * time.Minute) }

func ids(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestOrder(t *testing.T) {
	entries := []Entry{
		{ID: "b", CreatedAt: at(1)},
		{ID: "pending"},
		{ID: "c", CreatedAt: at(3)},
		{ID: "a", CreatedAt: at(1)},
		{ID: "d", CreatedAt: at(2)},
	}
	got := ids(Order(entries))
	want := []string{"c", "d", "a", "b"}
	if !equal(got, want) {
		t.Errorf("Order = %v, want %v", got, want)
	}
}

func TestFeedResolvesPendingEntries(t *testing.T) {
	src := &fakeSource{}
	feed := NewFeed(src, logging.Discard())
	defer feed.Close()

	var views []View
	feed.OnUpdate(func(v View) { views = append(views, v) })

	feed.SetUser("alice")
	if v := feed.View(); !v.Loading || v.UserID != "alice" {
		t.Fatalf("view after SetUser = %+v", v)
	}

	sub := src.latest()
	sub.onSnapshot([]Entry{
		{ID: "old", Text: "old", CreatedAt: at(0)},
		{ID: "new", Text: "new"},
	})
	if got := ids(feed.View().Entries); !equal(got, []string{"old"}) {
		t.Fatalf("entries with unresolved = %v, want [old]", got)
	}
	if feed.View().Loading {
		t.Error("loading should stop after a snapshot")
	}

	sub.onSnapshot([]Entry{
		{ID: "old", Text: "old", CreatedAt: at(0)},
		{ID: "new", Text: "new", CreatedAt: at(5)},
	})
	if got := ids(feed.View().Entries); !equal(got, []string{"new", "old"}) {
		t.Errorf("entries after resolve = %v, want [new old]", got)
	}
	if len(views) != 3 {
		t.Errorf("got %d updates, want 3", len(views))
	}
}

func TestFeedKeepsLastGoodListOnError(t *testing.T) {
	src := &fakeSource{}
	feed := NewFeed(src, logging.Discard())
	defer feed.Close()

	feed.SetUser("alice")
	sub := src.latest()
	sub.onSnapshot([]Entry{{ID: "a", CreatedAt: at(0)}})
	sub.onError(errors.New("stream reset"))

	v := feed.View()
	if v.Loading {
		t.Error("loading should stop on error")
	}
	if v.Err == nil {
		t.Error("expected error in view")
	}
	if got := ids(v.Entries); !equal(got, []string{"a"}) {
		t.Errorf("entries = %v, want [a]", got)
	}
}

func TestFeedSubscriptionLifecycle(t *testing.T) {
	src := &fakeSource{}
	feed := NewFeed(src, logging.Discard())

	feed.SetUser("alice")
	alice := src.latest()
	feed.SetUser("alice")
	if n := len(src.active()); n != 1 {
		t.Fatalf("active subscriptions = %d, want 1", n)
	}

	feed.SetUser("bob")
	if !alice.released {
		t.Error("alice's subscription should be released")
	}
	active := src.active()
	if len(active) != 1 || active[0].userID != "bob" {
		t.Fatalf("active = %+v", active)
	}

	// late snapshot from the old subscription is ignored
	alice.onSnapshot([]Entry{{ID: "stale", CreatedAt: at(0)}})
	if got := feed.View().Entries; len(got) != 0 {
		t.Errorf("stale snapshot leaked: %v", ids(got))
	}

	feed.SetUser("")
	if n := len(src.active()); n != 0 {
		t.Errorf("active subscriptions after clear = %d", n)
	}
	if v := feed.View(); v.Loading || v.UserID != "" {
		t.Errorf("view after clear = %+v", v)
	}

	feed.SetUser("carol")
	feed.Close()
	if n := len(src.active()); n != 0 {
		t.Errorf("active subscriptions after Close = %d", n)
	}
	feed.SetUser("dave")
	if n := len(src.active()); n != 0 {
		t.Error("SetUser after Close must not subscribe")
	}
}

func TestSince(t *testing.T) {
	now := at(0)
	tests := []struct {
		t    time.Time
		want string
	}{
		{now.Add(-10 * time.Second), "just now"},
		{now.Add(-5 * time.Minute), "5m ago"},
		{now.Add(-3 * time.Hour), "3h ago"},
	}
	for _, tt := range tests {
		if got := Since(tt.t, now); got != tt.want {
			t.Errorf("Since(%v) = %q, want %q", tt.t, got, tt.want)
		}
	}
}

func signedIn(t *testing.T) (*identity.Client, *testserver.Env) {
	t.Helper()
	env := testserver.Start(t)
	c := identity.NewClient(http.DefaultClient, env.URL, logging.Discard())
	ctx := context.Background()
	if _, err := c.CreateAccount(ctx, "hal@example.com", "password123"); err != nil {
		t.Fatalf("CreateAccount failed: %v", err)
	}
	env.MarkVerified(t, "hal@example.com")
	if _, err := c.SignIn(ctx, "hal@example.com", "password123"); err != nil {
		t.Fatalf("SignIn failed: %v", err)
	}
	return c, env
}

func TestRemoteFeed(t *testing.T) {
	c, env := signedIn(t)
	client := protoconnect.NewHistoryServiceClient(http.DefaultClient, env.URL,
		connect.WithInterceptors(middleware.Bearer(c.IDToken)))
	remote := NewRemote(client, logging.Discard())
	userID := c.CurrentUser().ID

	feed := NewFeed(remote, logging.Discard())
	defer feed.Close()

	updates := make(chan View, 32)
	feed.OnUpdate(func(v View) { updates <- v })
	feed.SetUser(userID)

	waitFor := func(what string, ok func(View) bool) View {
		t.Helper()
		timeout := time.After(5 * time.Second)
		for {
			select {
			case v := <-updates:
				if ok(v) {
					return v
				}
			case <-timeout:
				t.Fatalf("timed out waiting for %s", what)
			}
		}
	}

	waitFor("initial snapshot", func(v View) bool { return !v.Loading })

	ctx := context.Background()
	if err := remote.AddTranscript(ctx, userID, "first", "whisper-tiny"); err != nil {
		t.Fatalf("AddTranscript failed: %v", err)
	}
	if err := remote.AddTranscript(ctx, userID, "second", "whisper-tiny"); err != nil {
		t.Fatalf("AddTranscript failed: %v", err)
	}

	v := waitFor("both entries", func(v View) bool { return len(v.Entries) == 2 })
	if v.Entries[0].Text != "second" || v.Entries[1].Text != "first" {
		t.Errorf("order = [%s %s], want [second first]", v.Entries[0].Text, v.Entries[1].Text)
	}
	for _, e := range v.Entries {
		if !e.Resolved() {
			t.Errorf("entry %s not resolved", e.ID)
		}
	}

	list, err := remote.List(ctx, 1)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 1 || list[0].Text != "second" {
		t.Errorf("List(1) = %+v", list)
	}
}

func TestRemoteWatchRequiresAuth(t *testing.T) {
	env := testserver.Start(t)
	client := protoconnect.NewHistoryServiceClient(http.DefaultClient, env.URL)
	remote := NewRemote(client, logging.Discard())

	errs := make(chan error, 1)
	unsubscribe := remote.Watch(context.Background(), "nobody", func([]Entry) {}, func(err error) { errs <- err })
	defer unsubscribe()

	select {
	case err := <-errs:
		if connect.CodeOf(err) != connect.CodeUnauthenticated {
			t.Errorf("code = %v, want unauthenticated", connect.CodeOf(err))
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for error")
	}

	if err := remote.AddTranscript(context.Background(), "nobody", "x", ""); err == nil {
		t.Error("expected AddTranscript to fail without a token")
	}
}
