package tui

import "context"

// LinePrompt feeds answers typed into the dashboard to a blocking prompt,
// such as the path picker's.
type LinePrompt struct {
	answers chan string
}

func NewLinePrompt() *LinePrompt {
	return &LinePrompt{answers: make(chan string, 1)}
}

// Prompt waits for the next answer.
func (p *LinePrompt) Prompt(ctx context.Context, _ string) (string, error) {
	select {
	case s := <-p.answers:
		return s, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Answer hands s to a waiting Prompt. It drops s when an answer is
// already queued.
func (p *LinePrompt) Answer(s string) {
	select {
	case p.answers <- s:
	default:
	}
}
