// Package capture defines the platform contracts for recording and picking
// audio, with implementations backed by ffmpeg and the local filesystem.
package capture

import (
	"context"
	"errors"
)

var (
	ErrPermissionDenied = errors.New("Microphone permission denied.")
	ErrNotConfigured    = errors.New("audio session does not allow recording")
	ErrDeviceBusy       = errors.New("Recording device is busy.")
	ErrNotAudio         = errors.New("Selected file is not an audio file.")
)

// SessionOptions configures the audio session before recording.
type SessionOptions struct {
	AllowRecording bool
	// PlaysInSilentMode keeps capture running when the device is muted.
	PlaysInSilentMode bool
}

// Recorder allocates recording handles.
type Recorder interface {
	RequestPermission(ctx context.Context) error
	ConfigureSession(ctx context.Context, opts SessionOptions) error
	Start(ctx context.Context) (Handle, error)
}

// Handle is one live recording.
type Handle interface {
	// StopAndRelease finalises the file and frees the device. It must
	// complete before the handle is discarded.
	StopAndRelease(ctx context.Context) error
	// URI is the finalised file, or "" when nothing was produced.
	URI() string
	// Discard deletes the recorded file once the run no longer needs it.
	Discard() error
}

// PickOptions restricts the picker.
type PickOptions struct {
	// Type is a MIME pattern such as "audio/*".
	Type string
}

// PickResult is what the user chose. Canceled carries no file.
type PickResult struct {
	Canceled bool
	URI      string
	MIMEType string
	Name     string
}

// Picker lets the user choose an existing file.
type Picker interface {
	Pick(ctx context.Context, opts PickOptions) (PickResult, error)
}
