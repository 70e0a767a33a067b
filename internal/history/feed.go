// Package history keeps the signed-in user's transcript feed in sync with
// the document store.
package history

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"
)

// Entry is one transcript as delivered by a snapshot. CreatedAt is zero
// while the server timestamp has not resolved.
type Entry struct {
	ID        string
	Text      string
	Model     string
	CreatedAt time.Time
}

// Resolved reports whether the entry has its server timestamp.
func (e Entry) Resolved() bool { return !e.CreatedAt.IsZero() }

// Source opens realtime subscriptions to a user's transcript subtree.
// Every snapshot carries the full subtree.
type Source interface {
	Watch(ctx context.Context, userID string, onSnapshot func([]Entry), onError func(error)) (unsubscribe func())
}

// View is what the feed shows.
type View struct {
	UserID  string
	Entries []Entry
	Loading bool
	Err     error
}

// Feed holds at most one subscription, for the current user.
type Feed struct {
	src    Source
	logger *slog.Logger

	// subMu serialises subscription changes.
	subMu   sync.Mutex
	release func()

	mu        sync.Mutex
	gen       uint64
	view      View
	closed    bool
	nextID    int
	listeners map[int]func(View)
}

func NewFeed(src Source, logger *slog.Logger) *Feed {
	return &Feed{
		src:       src,
		logger:    logger,
		listeners: make(map[int]func(View)),
	}
}

// SetUser points the feed at userID. The previous subscription is
// released before a new one opens. An empty id clears the feed.
func (f *Feed) SetUser(userID string) {
	f.subMu.Lock()
	defer f.subMu.Unlock()

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return
	}
	if f.view.UserID == userID && f.release != nil {
		f.mu.Unlock()
		return
	}
	f.gen++
	gen := f.gen
	f.mu.Unlock()

	if f.release != nil {
		f.release()
		f.release = nil
	}

	f.mu.Lock()
	f.emitLocked(View{UserID: userID, Loading: userID != ""})
	if userID == "" {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	unsubscribe := f.src.Watch(ctx, userID,
		func(entries []Entry) { f.snapshot(gen, entries) },
		func(err error) { f.fail(gen, err) },
	)
	f.release = func() {
		unsubscribe()
		cancel()
	}
	f.logger.Debug("History subscription opened", "user_id", userID)
}

// Close releases the subscription. No listener runs afterwards.
func (f *Feed) Close() {
	f.subMu.Lock()
	defer f.subMu.Unlock()

	f.mu.Lock()
	f.closed = true
	f.gen++
	f.listeners = make(map[int]func(View))
	f.mu.Unlock()

	if f.release != nil {
		f.release()
		f.release = nil
	}
}

// View returns the current view.
func (f *Feed) View() View {
	f.mu.Lock()
	defer f.mu.Unlock()
	v := f.view
	v.Entries = append([]Entry(nil), v.Entries...)
	return v
}

// OnUpdate registers fn for every view change.
func (f *Feed) OnUpdate(fn func(View)) (remove func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.nextID
	f.nextID++
	f.listeners[id] = fn
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.listeners, id)
	}
}

func (f *Feed) snapshot(gen uint64, entries []Entry) {
	list := Order(entries)

	f.mu.Lock()
	if f.gen != gen {
		f.mu.Unlock()
		return
	}
	f.emitLocked(View{UserID: f.view.UserID, Entries: list})
}

// fail stops loading and keeps the last good list.
func (f *Feed) fail(gen uint64, err error) {
	f.mu.Lock()
	if f.gen != gen {
		f.mu.Unlock()
		return
	}
	f.logger.Warn("History subscription failed", "user_id", f.view.UserID, "error", err)
	v := f.view
	v.Loading = false
	v.Err = err
	f.emitLocked(v)
}

// emitLocked stores v and notifies listeners. Called with mu held; it
// releases mu.
func (f *Feed) emitLocked(v View) {
	f.view = v
	fns := make([]func(View), 0, len(f.listeners))
	for _, fn := range f.listeners {
		fns = append(fns, fn)
	}
	f.mu.Unlock()

	for _, fn := range fns {
		out := v
		out.Entries = append([]Entry(nil), v.Entries...)
		fn(out)
	}
}

// Order drops unresolved entries and sorts the rest newest first. Equal
// timestamps fall back to the id.
func Order(entries []Entry) []Entry {
	list := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Resolved() {
			list = append(list, e)
		}
	}
	sort.SliceStable(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		}
		return list[i].ID < list[j].ID
	})
	return list
}
