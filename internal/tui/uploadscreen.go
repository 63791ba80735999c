package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/oselz/menupush/internal/upload"
)

// Messages carrying stream progress from the upload goroutine. All of
// them travel through one channel so the panel sees chunks, errors, and
// the final done marker in the order they happened.
type streamChunkMsg struct {
	text string
}

type streamErrorMsg struct {
	message string
}

type streamDoneMsg struct {
	err error
}

// channelSink adapts the upload sink interface onto the screen's
// message channel.
type channelSink struct {
	ch chan tea.Msg
}

func (s *channelSink) Append(text string) {
	s.ch <- streamChunkMsg{text: text}
}

func (s *channelSink) SetError(message string) {
	s.ch <- streamErrorMsg{message: message}
}

// uploadKeyMap defines key bindings while the stream is live
type uploadKeyMap struct {
	Scroll key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k uploadKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k uploadKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Scroll, k.Quit},
	}
}

// settledKeyMap defines key bindings once the stream has settled
type settledKeyMap struct {
	Again key.Binding
	Back  key.Binding
	Quit  key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k settledKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Again, k.Back, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k settledKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Again, k.Back, k.Quit},
	}
}

// UploadModel represents the streaming upload screen state
type UploadModel struct {
	Client   *upload.Client
	Brand    string
	Location string
	FilePath string

	Panel     LogPanel
	Spinner   spinner.Model
	Streaming bool
	Err       error
	Back      bool

	msgCh chan tea.Msg

	Width       int
	Height      int
	Help        help.Model
	StreamKeys  uploadKeyMap
	SettledKeys settledKeyMap
}

// NewUploadModel creates the upload screen for one submission
func NewUploadModel(client *upload.Client, brand, location, filePath string) UploadModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	streamKeys := uploadKeyMap{
		Scroll: key.NewBinding(
			key.WithKeys("up", "down", "pgup", "pgdown"),
			key.WithHelp("↑/↓", "scroll"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}

	settledKeys := settledKeyMap{
		Again: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "upload again"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "new upload"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}

	return UploadModel{
		Client:      client,
		Brand:       brand,
		Location:    location,
		FilePath:    filePath,
		Panel:       NewLogPanel(60, 16),
		Spinner:     s,
		Help:        help.New(),
		StreamKeys:  streamKeys,
		SettledKeys: settledKeys,
	}
}

// Start resets the log and kicks off the upload. Restarting while a
// previous stream is still live simply interleaves the two logs, which
// is acceptable for a single-operator tool.
func (m UploadModel) Start() (UploadModel, tea.Cmd) {
	m.Panel.Reset()
	m.Streaming = true
	m.Err = nil
	m.msgCh = make(chan tea.Msg, 64)

	return m, tea.Batch(
		m.Spinner.Tick,
		runUpload(m.Client, m.Brand, m.Location, m.FilePath, m.msgCh),
		waitForStream(m.msgCh),
	)
}

// runUpload performs the whole upload in its own goroutine, feeding
// the stream channel. The done marker goes through the same channel so
// it cannot overtake a buffered chunk.
func runUpload(client *upload.Client, brand, location, path string, ch chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		sink := &channelSink{ch: ch}

		f, err := os.Open(path)
		if err != nil {
			sink.SetError("❌ Upload failed: " + err.Error())
			ch <- streamDoneMsg{err: err}
			return nil
		}
		defer f.Close()

		err = client.Upload(context.Background(), upload.Request{
			Brand:    brand,
			Location: location,
			FileName: filepath.Base(path),
			File:     f,
		}, sink)
		ch <- streamDoneMsg{err: err}
		return nil
	}
}

// waitForStream delivers the next stream message to the program
func waitForStream(ch chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}

// Init initializes the upload screen
func (m UploadModel) Init() tea.Cmd {
	return nil
}

// Update handles upload screen messages
func (m UploadModel) Update(msg tea.Msg) (UploadModel, tea.Cmd) {
	switch msg := msg.(type) {
	case streamChunkMsg:
		m.Panel.Append(msg.text)
		return m, waitForStream(m.msgCh)

	case streamErrorMsg:
		m.Panel.SetError(msg.message)
		return m, waitForStream(m.msgCh)

	case streamDoneMsg:
		m.Panel.Settle()
		m.Streaming = false
		m.Err = msg.err
		return m, nil

	case spinner.TickMsg:
		if !m.Streaming {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if !m.Streaming {
			switch msg.String() {
			case "r":
				return m.Start()
			case "esc", "b":
				m.Back = true
				return m, nil
			}
		}
	}

	cmd := m.Panel.Update(msg)
	return m, cmd
}

// SetSize resizes the upload screen
func (m *UploadModel) SetSize(width, height int) {
	m.Width = width
	m.Height = height
	m.Panel.SetSize(width-8, height-12)
}

// View renders the upload screen
func (m UploadModel) View() string {
	header := fmt.Sprintf("%s — %s  (%s)", m.Brand, m.Location, filepath.Base(m.FilePath))

	var status string
	switch {
	case m.Streaming:
		status = m.Spinner.View() + " Uploading…"
	case m.Err != nil:
		status = StatusLineStyle.Render("Stream ended with an error")
	default:
		status = SuccessStyle.Render("Stream complete")
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		RenderTitle("Menu upload"),
		SubtitleStyle.Render(header),
		"",
		m.Panel.View(),
		"",
		status,
	)

	var helpText string
	if m.Streaming {
		helpText = m.Help.View(m.StreamKeys)
	} else {
		helpText = m.Help.View(m.SettledKeys)
	}
	return RenderApplicationContainer(content, helpText, m.Width, m.Height)
}
