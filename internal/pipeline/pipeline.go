// Package pipeline drives one audio capture or file pick through upload,
// transcription and history persistence. At most one run is active.
package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/mmynk/scribe/internal/capture"
	"github.com/mmynk/scribe/internal/session"
	"github.com/mmynk/scribe/internal/transcribe"
)

var (
	ErrBusy            = errors.New("A recording or upload is already in progress.")
	ErrUnauthenticated = errors.New("You must be logged in to transcribe audio.")
	ErrNoAudio         = errors.New("No audio was produced.")
	ErrClosed          = errors.New("pipeline closed")
)

const (
	cancelledMessage = "Upload cancelled."
	discardedMessage = "Recording discarded."
	defaultPersist   = 30 * time.Second
)

// Transcriber uploads one file and returns its transcript.
type Transcriber interface {
	Transcribe(ctx context.Context, req transcribe.Request) (*transcribe.Result, error)
}

// Writer persists a finished transcript under its owner.
type Writer interface {
	AddTranscript(ctx context.Context, userID, text, model string) error
}

// Config wires a Pipeline to its collaborators.
type Config struct {
	Recorder    capture.Recorder
	Picker      capture.Picker
	Transcriber Transcriber
	Writer      Writer
	Session     session.Context
	// PersistTimeout bounds the background history write.
	PersistTimeout time.Duration
	Logger         *slog.Logger
}

// Pipeline is the capture/upload state machine.
type Pipeline struct {
	cfg Config

	mu        sync.Mutex
	status    Status
	handle    capture.Handle
	run       uint64
	closed    bool
	nextID    int
	listeners map[int]func(Status)

	// emitMu keeps listener deliveries in state order.
	emitMu  sync.Mutex
	persist sync.WaitGroup
}

// New creates an idle pipeline.
func New(cfg Config) *Pipeline {
	if cfg.PersistTimeout <= 0 {
		cfg.PersistTimeout = defaultPersist
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Pipeline{
		cfg:       cfg,
		status:    Status{State: Idle},
		listeners: make(map[int]func(Status)),
	}
}

// Snapshot returns the current status.
func (p *Pipeline) Snapshot() Status {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status
}

// OnChange registers fn for every status change. fn must not call back
// into the pipeline synchronously.
func (p *Pipeline) OnChange(fn func(Status)) (remove func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	id := p.nextID
	p.nextID++
	p.listeners[id] = fn
	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(p.listeners, id)
	}
}

// StartRecording acquires the microphone and starts a recording.
func (p *Pipeline) StartRecording(ctx context.Context) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return ErrClosed
	}
	if !p.status.State.canStart() {
		p.mu.Unlock()
		return ErrBusy
	}
	p.run++
	run := p.run
	p.setLocked(Status{State: Recording, Message: "Starting recording..."})

	rec := p.cfg.Recorder
	if err := rec.RequestPermission(ctx); err != nil {
		p.fail(run, Idle, err)
		return err
	}
	err := rec.ConfigureSession(ctx, capture.SessionOptions{
		AllowRecording:    true,
		PlaysInSilentMode: true,
	})
	if err != nil {
		p.fail(run, Idle, err)
		return err
	}
	h, err := rec.Start(ctx)
	if err != nil {
		p.fail(run, Idle, err)
		return err
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		h.StopAndRelease(context.WithoutCancel(ctx))
		p.discard(h)
		p.mu.Lock()
		p.setLocked(Status{State: Idle, Message: discardedMessage})
		return ErrClosed
	}
	p.handle = h
	p.setLocked(Status{State: Recording, Message: "Recording..."})
	p.cfg.Logger.Info("Recording started", "run", run)
	return nil
}

// StopRecording finalises the active recording and uploads it. Without an
// active recording it does nothing.
func (p *Pipeline) StopRecording(ctx context.Context) error {
	p.mu.Lock()
	h := p.handle
	if h == nil {
		p.mu.Unlock()
		return nil
	}
	p.handle = nil
	run := p.run
	p.setLocked(Status{State: Finalizing, Message: "Finalizing recording..."})
	defer p.discard(h)

	stopErr := h.StopAndRelease(ctx)
	uri := h.URI()

	if stopErr != nil {
		p.fail(run, Error, stopErr)
		return stopErr
	}
	if uri == "" {
		p.fail(run, Error, ErrNoAudio)
		return ErrNoAudio
	}

	return p.upload(ctx, run, transcribe.Request{
		URI:      uri,
		MIMEType: transcribe.DefaultMIMEType,
		Name:     transcribe.FileName(uri),
	})
}

// Upload lets the user pick an audio file and uploads it. Cancelling the
// picker returns to Idle without an error.
func (p *Pipeline) Upload(ctx context.Context) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return ErrClosed
	}
	if !p.status.State.canStart() {
		p.mu.Unlock()
		return ErrBusy
	}
	p.run++
	run := p.run
	p.setLocked(Status{State: Picking, Message: "Choose an audio file..."})

	res, err := p.cfg.Picker.Pick(ctx, capture.PickOptions{Type: "audio/*"})
	if err != nil {
		p.fail(run, Idle, err)
		return err
	}
	if res.Canceled {
		p.mu.Lock()
		if p.run == run {
			p.setLocked(Status{State: Idle, Message: cancelledMessage})
		} else {
			p.mu.Unlock()
		}
		return nil
	}

	req := transcribe.Request{URI: res.URI, MIMEType: res.MIMEType, Name: res.Name}
	if req.MIMEType == "" {
		req.MIMEType = transcribe.DefaultMIMEType
	}
	if req.Name == "" {
		req.Name = transcribe.FileName(res.URI)
	}
	return p.upload(ctx, run, req)
}

func (p *Pipeline) upload(ctx context.Context, run uint64, req transcribe.Request) error {
	s, ok := p.cfg.Session.Current()
	if !ok {
		p.fail(run, Error, ErrUnauthenticated)
		return ErrUnauthenticated
	}

	p.mu.Lock()
	if p.run != run {
		p.mu.Unlock()
		return ErrBusy
	}
	p.setLocked(Status{State: Uploading, Message: "Uploading and transcribing..."})

	log := p.cfg.Logger.With("run", run, "user_id", s.UserID, "file", req.Name)
	log.Info("Upload started", "mime", req.MIMEType)

	res, err := p.cfg.Transcriber.Transcribe(ctx, req)
	if err != nil {
		log.Warn("Transcription failed", "error", err)
		p.fail(run, Error, err)
		return err
	}

	p.mu.Lock()
	if p.run != run {
		p.mu.Unlock()
		return nil
	}
	p.setLocked(Status{
		State:      Done,
		Message:    "Transcription complete.",
		Transcript: res.Text,
		Model:      res.Model,
		Persist:    PersistPending,
	})
	log.Info("Transcription complete", "model", res.Model, "chars", len(res.Text))

	p.persist.Add(1)
	go p.save(context.WithoutCancel(ctx), run, s.UserID, res.Text, res.Model, log)
	return nil
}

// save writes the transcript to history. The outcome only moves the
// persist state; the transcript already shown stays as it is.
func (p *Pipeline) save(ctx context.Context, run uint64, userID, text, model string, log *slog.Logger) {
	defer p.persist.Done()
	ctx, cancel := context.WithTimeout(ctx, p.cfg.PersistTimeout)
	defer cancel()

	state := PersistSaved
	if err := p.cfg.Writer.AddTranscript(ctx, userID, text, model); err != nil {
		log.Error("Saving transcript failed", "error", err)
		state = PersistFailed
	} else {
		log.Info("Transcript saved")
	}

	p.mu.Lock()
	if p.run != run || p.status.State != Done {
		p.mu.Unlock()
		return
	}
	st := p.status
	st.Persist = state
	p.setLocked(st)
}

// fail records err as the outcome of run, ending in state.
func (p *Pipeline) fail(run uint64, state State, err error) {
	p.mu.Lock()
	if p.run != run {
		p.mu.Unlock()
		return
	}
	p.cfg.Logger.Warn("Pipeline run failed", "run", run, "state", state, "error", err)
	p.setLocked(Status{State: state, Message: err.Error(), Err: err})
}

// discard removes a recording once its run has ended.
func (p *Pipeline) discard(h capture.Handle) {
	if err := h.Discard(); err != nil {
		p.cfg.Logger.Warn("Removing recording failed", "error", err)
	}
}

// Close finalises any live recording and waits for pending history
// writes. The pipeline accepts no new runs afterwards.
func (p *Pipeline) Close(ctx context.Context) error {
	p.mu.Lock()
	p.closed = true
	h := p.handle
	p.handle = nil
	p.mu.Unlock()

	var err error
	if h != nil {
		err = h.StopAndRelease(ctx)
		p.discard(h)
		p.mu.Lock()
		p.setLocked(Status{State: Idle, Message: discardedMessage})
	}

	done := make(chan struct{})
	go func() {
		p.persist.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		return errors.Join(err, ctx.Err())
	}
	return err
}

// setLocked stores st and notifies listeners. It must be called with mu
// held and releases it.
func (p *Pipeline) setLocked(st Status) {
	p.status = st
	fns := make([]func(Status), 0, len(p.listeners))
	for _, fn := range p.listeners {
		fns = append(fns, fn)
	}
	p.emitMu.Lock()
	p.mu.Unlock()
	defer p.emitMu.Unlock()

	for _, fn := range fns {
		fn(st)
	}
}
