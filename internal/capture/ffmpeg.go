package capture

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// earlyExit is how long a fresh ffmpeg process must survive before the
// device counts as acquired.
const earlyExit = 300 * time.Millisecond

// FFmpegRecorder records from a capture device with an ffmpeg child
// process. Format and device are ffmpeg input options, e.g. "pulse" and
// "default" on Linux or "avfoundation" and ":0" on macOS.
type FFmpegRecorder struct {
	binary string
	format string
	device string
	dir    string
	logger *slog.Logger

	mu   sync.Mutex
	opts SessionOptions
}

// NewFFmpegRecorder creates a recorder writing m4a files into dir.
func NewFFmpegRecorder(format, device, dir string, logger *slog.Logger) *FFmpegRecorder {
	return &FFmpegRecorder{
		binary: "ffmpeg",
		format: format,
		device: device,
		dir:    dir,
		logger: logger,
	}
}

// WithBinary overrides the ffmpeg executable.
func (r *FFmpegRecorder) WithBinary(path string) *FFmpegRecorder {
	r.binary = path
	return r
}

// RequestPermission succeeds when ffmpeg can be found.
func (r *FFmpegRecorder) RequestPermission(context.Context) error {
	if _, err := exec.LookPath(r.binary); err != nil {
		return fmt.Errorf("%w: %v", ErrPermissionDenied, err)
	}
	return nil
}

// ConfigureSession stores the options used by the next Start.
func (r *FFmpegRecorder) ConfigureSession(_ context.Context, opts SessionOptions) error {
	r.mu.Lock()
	r.opts = opts
	r.mu.Unlock()
	return nil
}

// Start launches ffmpeg. ctx bounds only the launch; the recording keeps
// running until StopAndRelease.
func (r *FFmpegRecorder) Start(ctx context.Context) (Handle, error) {
	r.mu.Lock()
	opts := r.opts
	r.mu.Unlock()
	if !opts.AllowRecording {
		return nil, ErrNotConfigured
	}

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create recording dir: %w", err)
	}
	path := filepath.Join(r.dir, "scribe-"+uuid.NewString()+".m4a")

	cmd := exec.Command(r.binary,
		"-hide_banner", "-loglevel", "error", "-nostats",
		"-f", r.format, "-i", r.device,
		"-c:a", "aac", "-y", path,
	)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}
	stderr := &lockedBuffer{}
	cmd.Stderr = stderr

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start ffmpeg: %w", err)
	}

	h := &ffmpegHandle{
		cmd:    cmd,
		stdin:  stdin,
		stderr: stderr,
		path:   path,
		done:   make(chan struct{}),
		logger: r.logger,
	}
	go func() {
		h.waitErr = cmd.Wait()
		close(h.done)
	}()

	select {
	case <-h.done:
		msg := strings.TrimSpace(stderr.String())
		r.logger.Warn("ffmpeg exited on start", "device", r.device, "stderr", msg)
		os.Remove(path)
		if msg == "" {
			return nil, ErrDeviceBusy
		}
		return nil, fmt.Errorf("%w: %s", ErrDeviceBusy, msg)
	case <-ctx.Done():
		h.kill()
		return nil, ctx.Err()
	case <-time.After(earlyExit):
	}

	r.logger.Info("Recording started", "path", path, "format", r.format, "device", r.device)
	return h, nil
}

type ffmpegHandle struct {
	cmd     *exec.Cmd
	stdin   io.WriteCloser
	stderr  *lockedBuffer
	path    string
	done    chan struct{}
	waitErr error
	logger  *slog.Logger

	once    sync.Once
	stopErr error
	uri     string
}

// StopAndRelease asks ffmpeg to finish by sending "q" and waits for the
// file to be written. A cancelled ctx kills the process.
func (h *ffmpegHandle) StopAndRelease(ctx context.Context) error {
	h.once.Do(func() {
		io.WriteString(h.stdin, "q\n")
		h.stdin.Close()

		select {
		case <-h.done:
		case <-ctx.Done():
			h.kill()
			h.Discard()
			h.stopErr = ctx.Err()
			return
		}

		if info, err := os.Stat(h.path); err == nil && info.Size() > 0 {
			h.uri = h.path
		} else {
			h.Discard()
		}
		h.logger.Info("Recording stopped", "path", h.path, "produced", h.uri != "", "exit", h.waitErr)
	})
	return h.stopErr
}

func (h *ffmpegHandle) URI() string { return h.uri }

// Discard removes the recording. A file that is already gone is not an
// error.
func (h *ffmpegHandle) Discard() error {
	if err := os.Remove(h.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (h *ffmpegHandle) kill() {
	if h.cmd.Process != nil {
		h.cmd.Process.Kill()
	}
	<-h.done
}

// lockedBuffer collects stderr written from the exec copy goroutine.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
