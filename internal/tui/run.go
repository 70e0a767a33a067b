package tui

import (
	"context"
	"errors"

	"github.com/mmynk/scribe/internal/history"
	"github.com/mmynk/scribe/internal/pipeline"

	tea "github.com/charmbracelet/bubbletea"
)

// Observable is a pipeline the dashboard can both drive and watch.
type Observable interface {
	Pipeline
	Snapshot() pipeline.Status
	OnChange(fn func(pipeline.Status)) (remove func())
}

// Run shows the dashboard until the user quits. feed must already point
// at the signed-in user.
func Run(ctx context.Context, p Observable, feed *history.Feed, prompt *LinePrompt, userName string) error {
	m := New(ctx, p, prompt, userName)
	m.status = p.Snapshot()
	m.feed = feed.View()

	prog := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	removeStatus := p.OnChange(func(s pipeline.Status) { prog.Send(StatusMsg{Status: s}) })
	defer removeStatus()
	removeFeed := feed.OnUpdate(func(v history.View) { prog.Send(FeedMsg{View: v}) })
	defer removeFeed()

	_, err := prog.Run()
	// A picker still waiting for input must not hold the pipeline.
	prompt.Answer("")
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
