package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/oselz/menupush/internal/selector"
)

// locationKeyMap defines key bindings for the location screen
type locationKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	Back  key.Binding
	Quit  key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k locationKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Back, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k locationKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Enter, k.Back, k.Quit},
	}
}

// locationItem wraps a selector option for use with bubbles/list
type locationItem struct {
	option selector.Option
}

func (l locationItem) FilterValue() string {
	if l.option.Disabled {
		// Placeholders never match a filter
		return ""
	}
	return l.option.Label
}

// locationDelegate renders options in a flat single-line style,
// dimming the disabled placeholders.
type locationDelegate struct{}

func (d locationDelegate) Height() int { return 1 }

func (d locationDelegate) Spacing() int { return 0 }

func (d locationDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (d locationDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	li, ok := item.(locationItem)
	if !ok {
		return
	}

	if li.option.Disabled {
		fmt.Fprint(w, DisabledItemStyle.Render(li.option.Label))
		return
	}

	if index == m.Index() {
		fmt.Fprint(w, SelectedMenuItemStyle.Render("→ "+li.option.Label))
		return
	}
	fmt.Fprint(w, MenuItemStyle.Render(li.option.Label))
}

// LocationModel represents the location selection screen state. The
// option set is rebuilt from the controller every time a brand is
// chosen, so options from the previous brand never linger.
type LocationModel struct {
	Brand   string
	List    list.Model
	Options []selector.Option
	Chosen  string // selected address, empty until chosen
	Done    bool
	Back    bool

	Width  int
	Height int
	Help   help.Model
	Keys   locationKeyMap
}

// NewLocationModel builds the location screen for the given brand
func NewLocationModel(ctrl *selector.Controller, brand string) LocationModel {
	options := ctrl.OptionsFor(brand)

	items := make([]list.Item, 0, len(options))
	for _, opt := range options {
		items = append(items, locationItem{option: opt})
	}

	locationList := list.New(items, locationDelegate{}, 0, 0)
	locationList.Title = fmt.Sprintf("Locations for %s", brand)
	locationList.SetShowStatusBar(false)
	locationList.SetShowHelp(false)
	locationList.SetFilteringEnabled(true)
	locationList.Styles.Title = TitleStyle

	// Start the cursor on the first selectable option, past the
	// pre-selected placeholder.
	for i, opt := range options {
		if !opt.Disabled {
			locationList.Select(i)
			break
		}
	}

	keys := locationKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
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

	return LocationModel{
		Brand:   brand,
		List:    locationList,
		Options: options,
		Help:    help.New(),
		Keys:    keys,
	}
}

// HasSelectable reports whether the brand has any location to pick
func (m LocationModel) HasSelectable() bool {
	return len(selector.Selectable(m.Options)) > 0
}

// Init initializes the location screen
func (m LocationModel) Init() tea.Cmd {
	return nil
}

// Update handles location screen messages
func (m LocationModel) Update(msg tea.Msg) (LocationModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && !m.List.SettingFilter() {
		switch keyMsg.String() {
		case "enter":
			if item, ok := m.List.SelectedItem().(locationItem); ok && !item.option.Disabled {
				m.Chosen = item.option.Value
				m.Done = true
			}
			return m, nil
		case "esc":
			m.Back = true
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.List, cmd = m.List.Update(msg)
	return m, cmd
}

// SetSize resizes the location list
func (m *LocationModel) SetSize(width, height int) {
	m.Width = width
	m.Height = height
	m.List.SetSize(width-4, height-10)
}

// View renders the location screen
func (m LocationModel) View() string {
	content := m.List.View()
	if !m.HasSelectable() {
		content += "\n" + SubtitleStyle.Render("This brand has no locations yet. Press esc to pick another brand.")
	}
	helpText := m.Help.View(m.Keys)
	return RenderApplicationContainer(content, helpText, m.Width, m.Height)
}
