package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PanelState tracks the lifecycle of the log panel. The panel starts
// hidden, becomes visible on the first submission, and never hides
// again for the rest of the session.
type PanelState int

const (
	PanelHidden PanelState = iota
	PanelEmpty
	PanelStreaming
	PanelSettled
)

// String returns the state name for debugging and tests
func (s PanelState) String() string {
	switch s {
	case PanelHidden:
		return "hidden"
	case PanelEmpty:
		return "empty"
	case PanelStreaming:
		return "streaming"
	case PanelSettled:
		return "settled"
	default:
		return "unknown"
	}
}

// LogPanel owns the visibility and content of the live upload log.
// Appended text accumulates in arrival order; the viewport keeps the
// newest line visible.
type LogPanel struct {
	state    PanelState
	content  string
	viewport viewport.Model
	width    int
	height   int
}

// NewLogPanel creates a hidden log panel sized to the given dimensions
func NewLogPanel(width, height int) LogPanel {
	vp := viewport.New(width, height)
	return LogPanel{
		state:    PanelHidden,
		viewport: vp,
		width:    width,
		height:   height,
	}
}

// Reset clears the content and makes the panel visible. Called at the
// start of every submission, so each upload starts from an empty log.
func (p *LogPanel) Reset() {
	p.content = ""
	p.state = PanelEmpty
	p.viewport.SetContent("")
	p.viewport.GotoTop()
}

// Append concatenates text onto the log and scrolls to the bottom.
func (p *LogPanel) Append(text string) {
	if p.state == PanelHidden {
		p.state = PanelEmpty
	}
	if p.state == PanelEmpty {
		p.state = PanelStreaming
	}
	p.content += text
	p.viewport.SetContent(p.content)
	p.viewport.GotoBottom()
}

// SetError replaces the content with a single terminal line. The panel
// settles; a later Append still displays (interleaved submissions are
// an accepted limitation, not an error).
func (p *LogPanel) SetError(message string) {
	if p.state == PanelHidden {
		p.state = PanelEmpty
	}
	p.content = message + "\n"
	p.state = PanelSettled
	p.viewport.SetContent(p.content)
	p.viewport.GotoBottom()
}

// Settle marks the stream as ended
func (p *LogPanel) Settle() {
	if p.state != PanelHidden {
		p.state = PanelSettled
	}
}

// State returns the current panel state
func (p *LogPanel) State() PanelState {
	return p.state
}

// Visible reports whether the panel should be rendered
func (p *LogPanel) Visible() bool {
	return p.state != PanelHidden
}

// Content returns the accumulated log text
func (p *LogPanel) Content() string {
	return p.content
}

// Lines returns the accumulated log split into lines, without a
// trailing empty element.
func (p *LogPanel) Lines() []string {
	if p.content == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(p.content, "\n"), "\n")
}

// SetSize resizes the panel's viewport
func (p *LogPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.viewport.Width = width
	p.viewport.Height = height
	p.viewport.SetContent(p.content)
	if p.state == PanelStreaming {
		p.viewport.GotoBottom()
	}
}

// Update lets the operator scroll back through a long log
func (p *LogPanel) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return cmd
}

// View renders the panel inside its bordered frame, or nothing while
// the panel is still hidden.
func (p *LogPanel) View() string {
	if p.state == PanelHidden {
		return ""
	}

	title := "Upload log"
	switch p.state {
	case PanelStreaming:
		title = "Upload log (streaming)"
	case PanelSettled:
		title = "Upload log (done)"
	}

	header := lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Bold(true).
		Render(title)

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor).
		Padding(0, 1).
		Width(p.width)

	return lipgloss.JoinVertical(lipgloss.Left, header, frame.Render(p.viewport.View()))
}
