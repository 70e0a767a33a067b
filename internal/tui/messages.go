package tui

import (
	"github.com/mmynk/scribe/internal/history"
	"github.com/mmynk/scribe/internal/pipeline"
)

// StatusMsg carries a pipeline status change.
type StatusMsg struct {
	Status pipeline.Status
}

// FeedMsg carries a new history view.
type FeedMsg struct {
	View history.View
}

// ActionDoneMsg reports the end of a pipeline call started from a key.
type ActionDoneMsg struct {
	Err error
}

// TickMsg refreshes relative timestamps.
type TickMsg struct{}
