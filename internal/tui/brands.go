package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/oselz/menupush/internal/catalog"
)

// brandKeyMap defines key bindings for the brand screen
type brandKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	Quit  key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k brandKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k brandKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Enter, k.Quit},
	}
}

// brandItem wraps a brand name for use with bubbles/list
type brandItem struct {
	name      string
	locations int
}

func (b brandItem) FilterValue() string { return b.name }

func (b brandItem) Title() string { return b.name }

func (b brandItem) Description() string {
	switch b.locations {
	case 0:
		return "No locations"
	case 1:
		return "1 location"
	default:
		return fmt.Sprintf("%d locations", b.locations)
	}
}

// BrandModel represents the brand selection screen state
type BrandModel struct {
	List   list.Model
	Chosen string
	Done   bool

	Width  int
	Height int
	Help   help.Model
	Keys   brandKeyMap
}

// NewBrandModel creates the brand selection screen from the catalog
func NewBrandModel(cat *catalog.Catalog) BrandModel {
	var items []list.Item
	for _, brand := range cat.Brands() {
		items = append(items, brandItem{
			name:      brand,
			locations: len(cat.LocationsFor(brand)),
		})
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(HighlightColor).
		BorderForeground(HighlightColor)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(HighlightColor).
		BorderForeground(HighlightColor)

	brandList := list.New(items, delegate, 0, 0)
	brandList.Title = "Choose a brand"
	brandList.SetShowStatusBar(false)
	brandList.SetShowHelp(false)
	brandList.SetFilteringEnabled(true)
	brandList.Styles.Title = TitleStyle

	keys := brandKeyMap{
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
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit"),
		),
	}

	return BrandModel{
		List: brandList,
		Help: help.New(),
		Keys: keys,
	}
}

// Init initializes the brand screen
func (m BrandModel) Init() tea.Cmd {
	return nil
}

// Update handles brand screen messages
func (m BrandModel) Update(msg tea.Msg) (BrandModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && !m.List.SettingFilter() {
		if keyMsg.String() == "enter" {
			if item, ok := m.List.SelectedItem().(brandItem); ok {
				m.Chosen = item.name
				m.Done = true
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.List, cmd = m.List.Update(msg)
	return m, cmd
}

// SetSize resizes the brand list
func (m *BrandModel) SetSize(width, height int) {
	m.Width = width
	m.Height = height
	m.List.SetSize(width-4, height-10)
}

// View renders the brand screen
func (m BrandModel) View() string {
	content := m.List.View()
	helpText := m.Help.View(m.Keys)
	return RenderApplicationContainer(content, helpText, m.Width, m.Height)
}
