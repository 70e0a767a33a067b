package history

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	pb "github.com/mmynk/scribe/pkg/proto"
	"github.com/mmynk/scribe/pkg/proto/protoconnect"
)

// Remote reads and writes history through HistoryService. The server
// scopes every call to the bearer token's user; userID keys the local
// watcher state.
//
// Writes are latency-compensated: AddTranscript republishes the last
// snapshot plus an unresolved entry to local watchers before the server
// answers.
type Remote struct {
	client protoconnect.HistoryServiceClient
	logger *slog.Logger

	mu       sync.Mutex
	nextID   int
	watchers map[string]map[int]func([]Entry)
	last     map[string][]Entry
	pending  map[string][]Entry
}

func NewRemote(client protoconnect.HistoryServiceClient, logger *slog.Logger) *Remote {
	return &Remote{
		client:   client,
		logger:   logger,
		watchers: make(map[string]map[int]func([]Entry)),
		last:     make(map[string][]Entry),
		pending:  make(map[string][]Entry),
	}
}

// Watch implements Source over the WatchTranscriptions stream.
func (r *Remote) Watch(ctx context.Context, userID string, onSnapshot func([]Entry), onError func(error)) func() {
	ctx, cancel := context.WithCancel(ctx)

	r.mu.Lock()
	id := r.nextID
	r.nextID++
	if r.watchers[userID] == nil {
		r.watchers[userID] = make(map[int]func([]Entry))
	}
	r.watchers[userID][id] = onSnapshot
	r.mu.Unlock()

	go func() {
		stream, err := r.client.WatchTranscriptions(ctx, connect.NewRequest(&pb.WatchTranscriptionsRequest{}))
		if err != nil {
			if ctx.Err() == nil {
				onError(err)
			}
			return
		}
		defer stream.Close()

		for stream.Receive() {
			entries := fromAPI(stream.Msg().Transcriptions)
			r.mu.Lock()
			r.last[userID] = entries
			merged := r.mergedLocked(userID)
			r.mu.Unlock()
			onSnapshot(merged)
		}
		if err := stream.Err(); err != nil && ctx.Err() == nil {
			onError(err)
		}
	}()

	return func() {
		cancel()
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.watchers[userID], id)
		if len(r.watchers[userID]) == 0 {
			delete(r.watchers, userID)
		}
	}
}

// AddTranscript writes one transcript for the token's user.
func (r *Remote) AddTranscript(ctx context.Context, userID, text, model string) error {
	local := Entry{ID: "pending-" + uuid.NewString(), Text: text, Model: model}

	r.mu.Lock()
	r.pending[userID] = append(r.pending[userID], local)
	r.mu.Unlock()
	r.publish(userID)

	resp, err := r.client.AddTranscription(ctx, connect.NewRequest(&pb.AddTranscriptionRequest{
		Text:  text,
		Model: model,
	}))

	var saved *pb.Transcription
	if err == nil {
		saved = resp.Msg.Transcription
	}

	r.mu.Lock()
	r.dropPendingLocked(userID, local.ID)
	if saved != nil && !r.hasLocked(userID, saved.Id) {
		r.last[userID] = append(r.last[userID], fromAPIOne(saved))
	}
	r.mu.Unlock()
	r.publish(userID)

	if err != nil {
		return fmt.Errorf("failed to save transcript: %w", err)
	}
	if saved != nil {
		r.logger.Debug("Transcript saved", "user_id", userID, "id", saved.Id)
	}
	return nil
}

// List fetches up to limit transcripts, newest first.
func (r *Remote) List(ctx context.Context, limit int) ([]Entry, error) {
	resp, err := r.client.ListTranscriptions(ctx, connect.NewRequest(&pb.ListTranscriptionsRequest{Limit: int32(limit)}))
	if err != nil {
		return nil, err
	}
	return Order(fromAPI(resp.Msg.Transcriptions)), nil
}

func (r *Remote) publish(userID string) {
	r.mu.Lock()
	merged := r.mergedLocked(userID)
	fns := make([]func([]Entry), 0, len(r.watchers[userID]))
	for _, fn := range r.watchers[userID] {
		fns = append(fns, fn)
	}
	r.mu.Unlock()

	for _, fn := range fns {
		fn(merged)
	}
}

func (r *Remote) mergedLocked(userID string) []Entry {
	out := make([]Entry, 0, len(r.last[userID])+len(r.pending[userID]))
	out = append(out, r.last[userID]...)
	return append(out, r.pending[userID]...)
}

func (r *Remote) dropPendingLocked(userID, id string) {
	list := r.pending[userID]
	for i, e := range list {
		if e.ID == id {
			r.pending[userID] = append(list[:i:i], list[i+1:]...)
			break
		}
	}
	if len(r.pending[userID]) == 0 {
		delete(r.pending, userID)
	}
}

func (r *Remote) hasLocked(userID, id string) bool {
	for _, e := range r.last[userID] {
		if e.ID == id {
			return true
		}
	}
	return false
}

func fromAPI(list []*pb.Transcription) []Entry {
	out := make([]Entry, 0, len(list))
	for _, t := range list {
		if t != nil {
			out = append(out, fromAPIOne(t))
		}
	}
	return out
}

func fromAPIOne(t *pb.Transcription) Entry {
	e := Entry{ID: t.Id, Text: t.Text, Model: t.Model}
	if t.CreatedAt != nil {
		e.CreatedAt = t.CreatedAt.AsTime()
	}
	return e
}

var _ Source = (*Remote)(nil)

// Since formats how long ago t was, for the feed.
func Since(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return t.Local().Format("Jan 2 15:04")
	}
}
