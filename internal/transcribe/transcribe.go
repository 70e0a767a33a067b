// Package transcribe uploads recorded audio to the transcription service.
package transcribe

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"strings"
	"time"
)

const (
	// DefaultFileName is used when the audio URI has no usable last segment.
	DefaultFileName = "recording.m4a"
	// DefaultMIMEType is used when the audio type is unknown.
	DefaultMIMEType = "audio/m4a"
	// DefaultField is the multipart field the service reads the file from.
	DefaultField = "audio_file"

	bodyExcerpt = 200
)

// ErrEmptyTranscript is returned for a 2xx response that carries no text.
var ErrEmptyTranscript = errors.New("Server returned no transcription.")

// Request describes one audio file to transcribe.
type Request struct {
	URI      string
	MIMEType string
	Name     string
}

// Result is a successful transcription.
type Result struct {
	Text           string
	Model          string
	ProcessingTime float64
}

// ServerError is a non-2xx response from the service. Message is the
// display text extracted from the body.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string { return e.Message }

// TokenFunc returns the bearer token to attach, or "" for none.
type TokenFunc func() string

// Client posts audio as multipart/form-data.
type Client struct {
	endpoint   string
	field      string
	httpClient *http.Client
	token      TokenFunc
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithField overrides the multipart field name.
func WithField(field string) Option {
	return func(c *Client) {
		if field != "" {
			c.field = field
		}
	}
}

// WithToken attaches a bearer token to every upload.
func WithToken(token TokenFunc) Option {
	return func(c *Client) { c.token = token }
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a client posting to endpoint. timeout bounds the whole
// request including the response body.
func NewClient(endpoint string, timeout time.Duration, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		endpoint:   endpoint,
		field:      DefaultField,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Transcribe uploads the file at req.URI and returns the transcript.
// The request is sent once; there is no retry.
func (c *Client) Transcribe(ctx context.Context, req Request) (*Result, error) {
	data, err := readAudio(req.URI)
	if err != nil {
		return nil, err
	}

	name := req.Name
	if name == "" {
		name = FileName(req.URI)
	}
	mimeType := req.MIMEType
	if mimeType == "" {
		mimeType = DefaultMIMEType
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, c.field, name))
	header.Set("Content-Type", mimeType)
	part, err := mw.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("failed to build upload: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("failed to build upload: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to build upload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, &body)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())
	httpReq.Header.Set("Accept", "application/json")
	if c.token != nil {
		if tok := c.token(); tok != "" {
			httpReq.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Error("Upload failed", "endpoint", c.endpoint, "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := ErrorMessage(resp.StatusCode, raw)
		c.logger.Warn("Transcription rejected", "status", resp.StatusCode, "message", msg)
		return nil, &ServerError{Status: resp.StatusCode, Message: msg}
	}

	res, err := parseResult(raw)
	if err != nil {
		return nil, err
	}
	c.logger.Info("Transcription received",
		"file", name,
		"bytes", len(data),
		"model", res.Model,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return res, nil
}

type successBody struct {
	Transcription   string  `json:"transcription"`
	TranscribedText string  `json:"transcribedText"`
	Text            string  `json:"text"`
	Model           string  `json:"model"`
	ProcessingTime  float64 `json:"processing_time"`
}

func parseResult(raw []byte) (*Result, error) {
	var body successBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("invalid response from server: %w", err)
	}
	text := body.Transcription
	if text == "" {
		text = body.TranscribedText
	}
	if text == "" {
		text = body.Text
	}
	if text == "" {
		return nil, ErrEmptyTranscript
	}
	return &Result{Text: text, Model: body.Model, ProcessingTime: body.ProcessingTime}, nil
}

// ErrorMessage extracts the display text from an error response body:
// detail[0].msg, then a string detail, then message. Anything else falls
// back to "Server failed (<status>)", with a body excerpt when the body
// was not JSON.
func ErrorMessage(status int, body []byte) string {
	var parsed map[string]json.RawMessage
	if err := json.Unmarshal(body, &parsed); err != nil {
		msg := fmt.Sprintf("Server failed (%d)", status)
		if excerpt := strings.TrimSpace(truncate(body, bodyExcerpt)); excerpt != "" {
			msg += ": " + excerpt
		}
		return msg
	}

	if detail, ok := parsed["detail"]; ok {
		var list []struct {
			Msg string `json:"msg"`
		}
		if json.Unmarshal(detail, &list) == nil && len(list) > 0 && list[0].Msg != "" {
			return list[0].Msg
		}
		var s string
		if json.Unmarshal(detail, &s) == nil && s != "" {
			return s
		}
	}
	if message, ok := parsed["message"]; ok {
		var s string
		if json.Unmarshal(message, &s) == nil && s != "" {
			return s
		}
	}
	return fmt.Sprintf("Server failed (%d)", status)
}

func truncate(b []byte, n int) string {
	if len(b) > n {
		b = b[:n]
	}
	return string(b)
}

// FileName returns the last path segment of uri, or DefaultFileName.
func FileName(uri string) string {
	p := strings.ReplaceAll(localPath(uri), "\\", "/")
	name := p[strings.LastIndex(p, "/")+1:]
	if name == "" || name == "." || name == ".." {
		return DefaultFileName
	}
	return name
}

func readAudio(uri string) ([]byte, error) {
	data, err := os.ReadFile(localPath(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to read audio: %w", err)
	}
	return data, nil
}

// localPath turns a file:// URI into a path. Anything else is taken as a
// path already.
func localPath(uri string) string {
	if strings.HasPrefix(uri, "file://") {
		if u, err := url.Parse(uri); err == nil {
			return u.Path
		}
	}
	return uri
}
