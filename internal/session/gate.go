package session

import (
	"sync"

	"github.com/mmynk/scribe/internal/identity"
)

// AuthStateSource is the part of the identity provider the gate watches.
type AuthStateSource interface {
	OnAuthStateChanged(fn func(*identity.User)) (unsubscribe func())
}

// Gate is the single writer of the client session. It subscribes once to
// the auth-state stream and recomputes reachability on every notification.
type Gate struct {
	mu        sync.Mutex
	checked   bool
	session   *Session
	closed    bool
	nextID    int
	listeners map[int]func(Reachability)

	unsubscribe func()
}

var _ Context = (*Gate)(nil)

// NewGate subscribes to src. Call Close to release the subscription.
func NewGate(src AuthStateSource) *Gate {
	g := &Gate{listeners: make(map[int]func(Reachability))}
	g.unsubscribe = src.OnAuthStateChanged(g.update)
	return g
}

func (g *Gate) update(u *identity.User) {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return
	}
	g.checked = true
	if u == nil {
		g.session = nil
	} else {
		s := FromUser(u)
		g.session = &s
	}
	r := g.reachabilityLocked()
	fns := make([]func(Reachability), 0, len(g.listeners))
	for _, fn := range g.listeners {
		fns = append(fns, fn)
	}
	g.mu.Unlock()

	for _, fn := range fns {
		fn(r)
	}
}

// Reachability computes the current variant.
func (g *Gate) Reachability() Reachability {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.reachabilityLocked()
}

func (g *Gate) reachabilityLocked() Reachability {
	switch {
	case !g.checked:
		return Pending{}
	case g.session == nil || !g.session.EmailVerified:
		return Unauthenticated{}
	default:
		return Authenticated{Session: *g.session}
	}
}

// Ready reports whether the first auth-state notification has arrived.
func (g *Gate) Ready() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.checked
}

// Session returns the signed-in user whether or not the email is verified.
func (g *Gate) Session() (Session, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.session == nil {
		return Session{}, false
	}
	return *g.session, true
}

// Current implements Context.
func (g *Gate) Current() (Session, bool) {
	if a, ok := g.Reachability().(Authenticated); ok {
		return a.Session, true
	}
	return Session{}, false
}

// OnChange registers fn to run after every update. Listeners never run
// after Close.
func (g *Gate) OnChange(fn func(Reachability)) (remove func()) {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := g.nextID
	g.nextID++
	g.listeners[id] = fn
	return func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		delete(g.listeners, id)
	}
}

// Close releases the auth-state subscription.
func (g *Gate) Close() {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return
	}
	g.closed = true
	g.listeners = make(map[int]func(Reachability))
	g.mu.Unlock()

	if g.unsubscribe != nil {
		g.unsubscribe()
	}
}
