package capture

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// audioTypes covers extensions the system MIME table often lacks.
var audioTypes = map[string]string{
	".m4a":  "audio/m4a",
	".mp3":  "audio/mpeg",
	".wav":  "audio/wav",
	".ogg":  "audio/ogg",
	".oga":  "audio/ogg",
	".opus": "audio/opus",
	".flac": "audio/flac",
	".aac":  "audio/aac",
	".webm": "audio/webm",
	".caf":  "audio/x-caf",
	".amr":  "audio/amr",
}

// PromptFunc asks the user for a line of input.
type PromptFunc func(ctx context.Context, label string) (string, error)

// PathPicker picks a file by asking for its path. An empty answer cancels.
type PathPicker struct {
	prompt PromptFunc
}

func NewPathPicker(prompt PromptFunc) *PathPicker {
	return &PathPicker{prompt: prompt}
}

func (p *PathPicker) Pick(ctx context.Context, opts PickOptions) (PickResult, error) {
	answer, err := p.prompt(ctx, "Audio file path (empty to cancel): ")
	if err != nil {
		return PickResult{}, err
	}
	path := strings.Trim(strings.TrimSpace(answer), `"'`)
	if path == "" {
		return PickResult{Canceled: true}, nil
	}
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return PickResult{}, fmt.Errorf("cannot open %s: %w", path, err)
	}
	if info.IsDir() {
		return PickResult{}, fmt.Errorf("%s is a directory", path)
	}

	mimeType, err := DetectType(path)
	if err != nil {
		return PickResult{}, err
	}
	if !Matches(opts.Type, mimeType) {
		return PickResult{}, fmt.Errorf("%w (%s)", ErrNotAudio, mimeType)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return PickResult{URI: abs, MIMEType: mimeType, Name: filepath.Base(abs)}, nil
}

// DetectType returns the MIME type of the file at path, from its extension
// when known and from its content otherwise.
func DetectType(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if t, ok := audioTypes[ext]; ok {
		return t, nil
	}
	if t := mime.TypeByExtension(ext); t != "" {
		if base, _, err := mime.ParseMediaType(t); err == nil {
			return base, nil
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	head := make([]byte, 512)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", err
	}
	base, _, _ := mime.ParseMediaType(http.DetectContentType(head[:n]))
	return base, nil
}

// Matches reports whether mimeType satisfies pattern ("*/*", "audio/*" or
// an exact type). An empty pattern matches everything.
func Matches(pattern, mimeType string) bool {
	if pattern == "" || pattern == "*/*" {
		return true
	}
	if prefix, ok := strings.CutSuffix(pattern, "/*"); ok {
		return strings.HasPrefix(mimeType, prefix+"/")
	}
	return strings.EqualFold(pattern, mimeType)
}
