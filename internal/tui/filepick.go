package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// fileKeyMap defines key bindings for the file picking screen
type fileKeyMap struct {
	Navigate key.Binding
	Open     key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k fileKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Navigate, k.Open, k.Back, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k fileKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Navigate, k.Open, k.Back, k.Quit},
	}
}

// FileModel represents the CSV file picking screen state
type FileModel struct {
	Picker   filepicker.Model
	Selected string
	Done     bool
	Back     bool
	rejected string // last non-CSV pick, shown as a hint

	Width  int
	Height int
	Help   help.Model
	Keys   fileKeyMap
}

// NewFileModel creates the CSV file picking screen rooted at dir, or
// the current working directory when dir is empty.
func NewFileModel(dir string) FileModel {
	fp := filepicker.New()
	fp.AllowedTypes = []string{".csv"}
	fp.DirAllowed = false
	fp.FileAllowed = true

	if dir == "" {
		if wd, err := os.Getwd(); err == nil {
			dir = wd
		}
	}
	fp.CurrentDirectory = dir

	keys := fileKeyMap{
		Navigate: key.NewBinding(
			key.WithKeys("up", "down", "left", "right"),
			key.WithHelp("↑/↓", "navigate"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open/select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}

	return FileModel{
		Picker: fp,
		Help:   help.New(),
		Keys:   keys,
	}
}

// Init initializes the file picker
func (m FileModel) Init() tea.Cmd {
	return m.Picker.Init()
}

// Update handles file screen messages
func (m FileModel) Update(msg tea.Msg) (FileModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.Back = true
		return m, nil
	}

	var cmd tea.Cmd
	m.Picker, cmd = m.Picker.Update(msg)

	if didSelect, path := m.Picker.DidSelectFile(msg); didSelect {
		m.Selected = path
		m.Done = true
		return m, cmd
	}
	if didSelect, path := m.Picker.DidSelectDisabledFile(msg); didSelect {
		m.rejected = path
	}

	return m, cmd
}

// SetSize resizes the picker
func (m *FileModel) SetSize(width, height int) {
	m.Width = width
	m.Height = height
	m.Picker.Height = height - 12
}

// View renders the file picking screen
func (m FileModel) View() string {
	content := RenderTitle("Pick a menu CSV") + "\n" + m.Picker.View()
	if m.rejected != "" {
		content += "\n" + SubtitleStyle.Render(fmt.Sprintf("%s is not a .csv file", m.rejected))
	}
	helpText := m.Help.View(m.Keys)
	return RenderApplicationContainer(content, helpText, m.Width, m.Height)
}
