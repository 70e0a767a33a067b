package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/mmynk/scribe/internal/history"
	"github.com/mmynk/scribe/internal/pipeline"

	tea "github.com/charmbracelet/bubbletea"
)

type fakePipeline struct {
	starts, stops, uploads int
}

func (p *fakePipeline) StartRecording(context.Context) error { p.starts++; return nil }
func (p *fakePipeline) StopRecording(context.Context) error  { p.stops++; return nil }
func (p *fakePipeline) Upload(context.Context) error         { p.uploads++; return nil }

func newModel() (Model, *fakePipeline, *LinePrompt) {
	p := &fakePipeline{}
	prompt := NewLinePrompt()
	m := New(context.Background(), p, prompt, "Ada")
	m.width = 80
	m.height = 24
	return m, p, prompt
}

func key(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

// run executes cmd as the program would and returns its message.
func run(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

func TestNewModel(t *testing.T) {
	m, _, _ := newModel()
	if !m.feed.Loading {
		t.Error("new model should show the feed as loading")
	}
	if m.picking {
		t.Error("new model should not be picking")
	}
}

func TestSpaceTogglesRecording(t *testing.T) {
	m, p, _ := newModel()

	m, cmd := update(t, m, key(" "))
	if _, ok := run(cmd).(ActionDoneMsg); !ok || p.starts != 1 {
		t.Fatalf("space while idle: starts = %d", p.starts)
	}

	m, _ = update(t, m, StatusMsg{Status: pipeline.Status{State: pipeline.Recording, Message: "Recording..."}})
	if !strings.Contains(m.View(), "● REC") {
		t.Error("view should show the recording indicator")
	}

	m, cmd = update(t, m, key(" "))
	run(cmd)
	if p.stops != 1 {
		t.Errorf("stops = %d, want 1", p.stops)
	}

	m, _ = update(t, m, StatusMsg{Status: pipeline.Status{State: pipeline.Uploading}})
	_, cmd = update(t, m, key(" "))
	if cmd != nil {
		t.Error("space while uploading should do nothing")
	}
}

func TestUploadDisabledWhileBusy(t *testing.T) {
	m, p, _ := newModel()
	m, _ = update(t, m, StatusMsg{Status: pipeline.Status{State: pipeline.Recording}})
	_, cmd := update(t, m, key("u"))
	if cmd != nil || p.uploads != 0 {
		t.Error("upload should be disabled while recording")
	}
}

func TestPickingCollectsPath(t *testing.T) {
	m, p, prompt := newModel()

	m, cmd := update(t, m, key("u"))
	run(cmd)
	if p.uploads != 1 {
		t.Fatalf("uploads = %d, want 1", p.uploads)
	}

	m, _ = update(t, m, StatusMsg{Status: pipeline.Status{State: pipeline.Picking}})
	if !m.picking {
		t.Fatal("model should be collecting a path")
	}
	for _, k := range []string{"/tmp/a", " ", "b.m4a"} {
		m, _ = update(t, m, key(k))
	}
	if !strings.Contains(m.View(), "/tmp/a b.m4a") {
		t.Error("view should echo the typed path")
	}
	m, _ = update(t, m, key("enter"))
	if m.picking {
		t.Error("enter should leave picking mode")
	}

	got, err := prompt.Prompt(context.Background(), "")
	if err != nil || got != "/tmp/a b.m4a" {
		t.Errorf("prompt = (%q, %v)", got, err)
	}
}

func TestPickingEscCancels(t *testing.T) {
	m, _, prompt := newModel()
	m, _ = update(t, m, StatusMsg{Status: pipeline.Status{State: pipeline.Picking}})
	m, _ = update(t, m, key("x"))
	m, _ = update(t, m, key("esc"))
	if m.picking {
		t.Error("esc should leave picking mode")
	}
	if got, _ := prompt.Prompt(context.Background(), ""); got != "" {
		t.Errorf("prompt = %q, want empty", got)
	}
}

func TestTranscriptAndPersistState(t *testing.T) {
	m, _, _ := newModel()
	m, _ = update(t, m, StatusMsg{Status: pipeline.Status{
		State:      pipeline.Done,
		Transcript: "hello world",
		Model:      "whisper-tiny",
		Persist:    pipeline.PersistFailed,
	}})
	view := m.View()
	if !strings.Contains(view, "hello world") {
		t.Error("view should show the transcript")
	}
	if !strings.Contains(view, "not saved") {
		t.Error("view should show the failed save")
	}
}

func TestFeedRendering(t *testing.T) {
	m, _, _ := newModel()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	m, _ = update(t, m, FeedMsg{View: history.View{Entries: []history.Entry{
		{ID: "2", Text: "second", CreatedAt: now.Add(-2 * time.Minute)},
		{ID: "1", Text: "first", CreatedAt: now.Add(-3 * time.Hour)},
	}}})
	view := m.View()
	if !strings.Contains(view, "HISTORY (2)") {
		t.Error("view should count entries")
	}
	if strings.Index(view, "second") > strings.Index(view, "first") {
		t.Error("entries should render in feed order")
	}
	if !strings.Contains(view, "2m ago") {
		t.Error("view should show relative time")
	}

	m, _ = update(t, m, key("j"))
	if m.selected != 1 {
		t.Errorf("selected = %d, want 1", m.selected)
	}
	m, _ = update(t, m, key("j"))
	if m.selected != 1 {
		t.Errorf("selected past end = %d", m.selected)
	}

	m, _ = update(t, m, FeedMsg{View: history.View{Entries: []history.Entry{{ID: "2", Text: "second", CreatedAt: now}}}})
	if m.selected != 0 {
		t.Errorf("selected after shrink = %d, want 0", m.selected)
	}
}

func TestQuit(t *testing.T) {
	m, _, _ := newModel()
	_, cmd := update(t, m, key("q"))
	if _, ok := run(cmd).(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}
