// Package tui is the terminal dashboard: record or upload audio, see the
// latest transcript and follow the history feed live.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mmynk/scribe/internal/history"
	"github.com/mmynk/scribe/internal/pipeline"

	tea "github.com/charmbracelet/bubbletea"
)

// Pipeline is the part of the capture pipeline the dashboard drives.
type Pipeline interface {
	StartRecording(ctx context.Context) error
	StopRecording(ctx context.Context) error
	Upload(ctx context.Context) error
}

// Model is the root bubbletea model for the dashboard.
type Model struct {
	ctx      context.Context
	pipeline Pipeline
	prompt   *LinePrompt
	userName string

	status pipeline.Status
	feed   history.View

	// picking is set while the path picker waits for input.
	picking bool
	input   string

	width    int
	height   int
	selected int
	scroll   int
	now      func() time.Time
}

// New creates a dashboard for userName.
func New(ctx context.Context, p Pipeline, prompt *LinePrompt, userName string) Model {
	return Model{
		ctx:      ctx,
		pipeline: p,
		prompt:   prompt,
		userName: userName,
		feed:     history.View{Loading: true},
		now:      time.Now,
	}
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(30*time.Second, func(time.Time) tea.Msg {
		return TickMsg{}
	})
}

// actionCmd runs one pipeline call off the event loop.
func actionCmd(ctx context.Context, fn func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		return ActionDoneMsg{Err: fn(ctx)}
	}
}

// Update processes messages and returns the updated model and any commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		if m.picking {
			return m.handleInput(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case StatusMsg:
		m.status = msg.Status
		if m.status.State == pipeline.Picking && !m.picking {
			m.picking = true
			m.input = ""
		} else if m.status.State != pipeline.Picking {
			m.picking = false
		}
		return m, nil

	case FeedMsg:
		m.feed = msg.View
		if m.selected >= len(m.feed.Entries) {
			m.selected = max(0, len(m.feed.Entries)-1)
		}
		return m, nil

	case ActionDoneMsg:
		// Failures already reach the screen through StatusMsg.
		return m, nil

	case TickMsg:
		return m, tickCmd()
	}

	return m, nil
}

// handleKey processes key presses.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case KeyQuit, KeyQuitUpper, KeyCtrlC:
		return m, tea.Quit

	case KeySpace:
		switch m.status.State {
		case pipeline.Recording:
			return m, actionCmd(m.ctx, m.pipeline.StopRecording)
		case pipeline.Idle, pipeline.Done, pipeline.Error:
			return m, actionCmd(m.ctx, m.pipeline.StartRecording)
		}
		return m, nil

	case KeyUpload:
		if m.status.State.Busy() {
			return m, nil
		}
		return m, actionCmd(m.ctx, m.pipeline.Upload)

	case KeyJ, KeyDown:
		if m.selected < len(m.feed.Entries)-1 {
			m.selected++
		}
		m.keepSelectedVisible()
		return m, nil

	case KeyK, KeyUp:
		if m.selected > 0 {
			m.selected--
		}
		m.keepSelectedVisible()
		return m, nil
	}

	return m, nil
}

// handleInput edits the file path while the picker waits.
func (m Model) handleInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.prompt.Answer("")
		return m, tea.Quit
	case tea.KeyEnter:
		m.prompt.Answer(m.input)
		m.picking = false
	case tea.KeyEsc:
		m.prompt.Answer("")
		m.picking = false
	case tea.KeyBackspace:
		if r := []rune(m.input); len(r) > 0 {
			m.input = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		m.input += " "
	case tea.KeyRunes:
		m.input += string(msg.Runes)
	}
	return m, nil
}

func (m *Model) keepSelectedVisible() {
	visible := m.historyVisibleLines()
	if m.selected < m.scroll {
		m.scroll = m.selected
	}
	if m.selected >= m.scroll+visible {
		m.scroll = m.selected - visible + 1
	}
}

func (m Model) historyVisibleLines() int {
	if m.height == 0 {
		return 10
	}
	// header, status, two dividers, transcript block, history title, footer
	reserved := 12
	return max(3, m.height-reserved)
}

// View renders the dashboard.
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var sections []string
	sections = append(sections, m.renderHeader())
	sections = append(sections, m.renderStatusBar())
	sections = append(sections, DividerStyle.Render(strings.Repeat("─", m.width)))
	sections = append(sections, m.renderTranscript())
	sections = append(sections, DividerStyle.Render(strings.Repeat("─", m.width)))
	sections = append(sections, m.renderHistory())
	sections = append(sections, m.renderFooter())
	return strings.Join(sections, "\n")
}

func (m Model) renderHeader() string {
	title := TitleStyle.Render("SCRIBE")
	if m.userName != "" {
		title += DimStyle.Render(" · Welcome, " + m.userName)
	}
	return title
}

func (m Model) renderStatusBar() string {
	var dot string
	switch m.status.State {
	case pipeline.Recording:
		dot = RecordingDotStyle.Render("● REC")
	case pipeline.Finalizing, pipeline.Uploading:
		dot = BusyStyle.Render("⟳ " + strings.ToUpper(m.status.State.String()))
	case pipeline.Picking:
		dot = BusyStyle.Render("◌ PICK")
	case pipeline.Error:
		dot = ErrorTextStyle.Render("✕ ERROR")
	default:
		dot = IdleDotStyle.Render("○ IDLE")
	}

	if m.status.Message == "" {
		return dot
	}
	if m.status.State == pipeline.Error {
		return dot + "  " + ErrorTextStyle.Render(m.status.Message)
	}
	return dot + "  " + DimStyle.Render(m.status.Message)
}

func (m Model) renderTranscript() string {
	if m.picking {
		return PanelTitleStyle.Render("UPLOAD") + "\n" +
			"  Audio file path: " + m.input + "▌\n" +
			DimStyle.Render("  Enter to upload, Esc to cancel")
	}

	header := PanelTitleStyle.Render("TRANSCRIPT")
	switch m.status.Persist {
	case pipeline.PersistPending:
		header += PendingStyle.Render(" saving...")
	case pipeline.PersistSaved:
		header += SavedStyle.Render(" saved")
	case pipeline.PersistFailed:
		header += ErrorTextStyle.Render(" not saved")
	}

	if m.status.Transcript == "" {
		return header + "\n" + DimStyle.Render("  Press Space to record or u to upload a file")
	}
	lines := []string{header}
	for _, l := range wrapText(m.status.Transcript, max(10, m.width-4)) {
		lines = append(lines, "  "+l)
	}
	if m.status.Model != "" {
		lines = append(lines, DimStyle.Render("  model: "+m.status.Model))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderHistory() string {
	title := PanelTitleStyle.Render(fmt.Sprintf("HISTORY (%d)", len(m.feed.Entries)))
	lines := []string{title}

	switch {
	case m.feed.Loading:
		lines = append(lines, DimStyle.Render("  Loading..."))
	case len(m.feed.Entries) == 0:
		lines = append(lines, DimStyle.Render("  No transcriptions yet."))
	default:
		visible := m.historyVisibleLines()
		end := min(len(m.feed.Entries), m.scroll+visible)
		now := m.now()
		textWidth := max(10, m.width-20)
		for i := m.scroll; i < end; i++ {
			e := m.feed.Entries[i]
			ts := TimestampStyle.Render(fmt.Sprintf("%-12s", history.Since(e.CreatedAt, now)))
			text := truncate(strings.ReplaceAll(e.Text, "\n", " "), textWidth)
			if i == m.selected {
				lines = append(lines, SelectedStyle.Render("> ")+ts+" "+SelectedStyle.Render(text))
			} else {
				lines = append(lines, "  "+ts+" "+text)
			}
		}
	}
	if m.feed.Err != nil {
		lines = append(lines, ErrorTextStyle.Render("  Live updates stopped: "+m.feed.Err.Error()))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderFooter() string {
	keys := []struct{ key, desc string }{
		{"space", "record/stop"},
		{"u", "upload"},
		{"j/k", "scroll"},
		{"q", "quit"},
	}
	var parts []string
	for _, k := range keys {
		parts = append(parts, FooterKeyStyle.Render(k.key)+" "+FooterDescStyle.Render(k.desc))
	}
	return strings.Join(parts, "  ")
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 1 {
		return string(r[:width])
	}
	return string(r[:width-1]) + "…"
}

func wrapText(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len([]rune(line))+1+len([]rune(w)) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}
