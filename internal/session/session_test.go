package session

import (
	"reflect"
	"testing"

	"github.com/mmynk/scribe/internal/identity"
)

// fakeSource lets tests push auth-state notifications by hand.
type fakeSource struct {
	fn           func(*identity.User)
	subscribes   int
	unsubscribes int
}

func (f *fakeSource) OnAuthStateChanged(fn func(*identity.User)) func() {
	f.subscribes++
	f.fn = fn
	return func() { f.unsubscribes++ }
}

func (f *fakeSource) push(u *identity.User) { f.fn(u) }

var (
	verified   = &identity.User{ID: "u1", Email: "alice@example.com", EmailVerified: true}
	unverified = &identity.User{ID: "u2", Email: "bob@example.com"}
)

func TestReachabilityFollowsLatestNotification(t *testing.T) {
	tests := []struct {
		name  string
		seq   []*identity.User
		want  Reachability
		wantS []Screen
	}{
		{"no notification", nil, Pending{}, nil},
		{"signed out", []*identity.User{nil}, Unauthenticated{}, []Screen{ScreenLogin, ScreenRegistration, ScreenResetPassword}},
		{"unverified", []*identity.User{unverified}, Unauthenticated{}, []Screen{ScreenLogin, ScreenRegistration, ScreenResetPassword}},
		{"verified", []*identity.User{nil, verified}, Authenticated{Session: FromUser(verified)}, []Screen{ScreenDashboard, ScreenHistory}},
		{"verified then signed out", []*identity.User{verified, nil}, Unauthenticated{}, []Screen{ScreenLogin, ScreenRegistration, ScreenResetPassword}},
		{"verified then unverified", []*identity.User{verified, unverified}, Unauthenticated{}, []Screen{ScreenLogin, ScreenRegistration, ScreenResetPassword}},
		{"unverified then verified", []*identity.User{unverified, verified}, Authenticated{Session: FromUser(verified)}, []Screen{ScreenDashboard, ScreenHistory}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &fakeSource{}
			g := NewGate(src)
			defer g.Close()

			for _, u := range tt.seq {
				src.push(u)
			}

			got := g.Reachability()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Reachability = %#v, want %#v", got, tt.want)
			}
			if screens := Screens(got); !reflect.DeepEqual(screens, tt.wantS) {
				t.Errorf("Screens = %v, want %v", screens, tt.wantS)
			}
		})
	}
}

func TestGateSubscribesOnceAndReleases(t *testing.T) {
	src := &fakeSource{}
	g := NewGate(src)

	var calls int
	g.OnChange(func(Reachability) { calls++ })

	src.push(verified)
	if calls != 1 {
		t.Errorf("listener calls = %d, want 1", calls)
	}

	g.Close()
	g.Close()
	if src.subscribes != 1 || src.unsubscribes != 1 {
		t.Errorf("subscribes=%d unsubscribes=%d, want 1/1", src.subscribes, src.unsubscribes)
	}

	src.push(nil)
	if calls != 1 {
		t.Error("listener ran after Close")
	}
	if _, ok := g.Current(); !ok {
		t.Error("state should be frozen after Close")
	}
}

func TestCurrentRequiresVerifiedEmail(t *testing.T) {
	src := &fakeSource{}
	g := NewGate(src)
	defer g.Close()

	src.push(unverified)
	if _, ok := g.Current(); ok {
		t.Error("Current should be empty for an unverified user")
	}
	if s, ok := g.Session(); !ok || s.UserID != "u2" {
		t.Errorf("Session = %+v, %v; want the unverified user", s, ok)
	}

	src.push(verified)
	s, ok := g.Current()
	if !ok || s.UserID != "u1" {
		t.Errorf("Current = %+v, %v; want u1", s, ok)
	}
}

func TestSessionName(t *testing.T) {
	tests := []struct {
		displayName string
		email       string
		want        string
	}{
		{"alice liddell", "x@example.com", "Alice"},
		{"  Bob  ", "x@example.com", "Bob"},
		{"", "carol.smith@example.com", "Carol.smith"},
		{"", "dave", "Dave"},
		{"", "", ""},
	}
	for _, tt := range tests {
		s := Session{DisplayName: tt.displayName, Email: tt.email}
		if got := s.Name(); got != tt.want {
			t.Errorf("Name(%q, %q) = %q, want %q", tt.displayName, tt.email, got, tt.want)
		}
	}
}

func TestReachable(t *testing.T) {
	if Reachable(Unauthenticated{}, ScreenDashboard) {
		t.Error("dashboard must not be reachable while unauthenticated")
	}
	if !Reachable(Authenticated{}, ScreenHistory) {
		t.Error("history must be reachable while authenticated")
	}
	if Reachable(Pending{}, ScreenLogin) {
		t.Error("nothing is reachable while pending")
	}
}
