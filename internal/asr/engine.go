// Package asr serves the transcription endpoint and the engines behind it.
package asr

import (
	"context"
	"errors"
	"fmt"
)

// Engine turns audio bytes into text.
type Engine interface {
	// Name identifies the engine in logs and metrics ("hf", "openai").
	Name() string
	// Model identifies the model reported to clients.
	Model() string
	Transcribe(ctx context.Context, audio Audio) (string, error)
}

// Audio is one uploaded recording.
type Audio struct {
	Filename string
	MIMEType string
	Data     []byte
}

// ErrRateLimited is returned when the upstream answers 429.
var ErrRateLimited = errors.New("Too Many Requests (429). Try again later (free tier rate limit).")

// UpstreamError is a non-2xx answer from an inference API.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	body := e.Body
	if len(body) > 200 {
		body = body[:200]
	}
	return fmt.Sprintf("upstream returned %d: %s", e.Status, body)
}
