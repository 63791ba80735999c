package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/oselz/menupush/internal/catalog"
	"github.com/oselz/menupush/internal/selector"
	"github.com/oselz/menupush/internal/upload"
)

// Screen represents the current active screen in the application
type Screen string

const (
	ScreenBrand    Screen = "brand"
	ScreenLocation Screen = "location"
	ScreenFile     Screen = "file"
	ScreenUpload   Screen = "upload"
)

// AppModel is the top-level coordinator model that walks the operator
// through brand → location → file → upload.
type AppModel struct {
	CurrentScreen Screen

	// Screen models
	BrandModel    BrandModel
	LocationModel LocationModel
	FileModel     FileModel
	UploadModel   UploadModel

	// Shared application state
	Catalog    *catalog.Catalog
	Controller *selector.Controller
	Client     *upload.Client
	StartDir   string

	// Current selections
	Brand    string
	Location string
	FilePath string

	// UI state
	Width  int
	Height int
}

// NewAppModel creates the application model. startDir seeds the file
// picker; empty means the working directory.
func NewAppModel(cat *catalog.Catalog, client *upload.Client, startDir string) AppModel {
	return AppModel{
		CurrentScreen: ScreenBrand,
		BrandModel:    NewBrandModel(cat),
		Catalog:       cat,
		Controller:    selector.New(cat),
		Client:        client,
		StartDir:      startDir,
	}
}

// Init initializes the application
func (m AppModel) Init() tea.Cmd {
	return m.BrandModel.Init()
}

// Update handles all messages and routes them to the appropriate screen
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.BrandModel.SetSize(msg.Width, msg.Height)
		m.LocationModel.SetSize(msg.Width, msg.Height)
		m.FileModel.SetSize(msg.Width, msg.Height)
		m.UploadModel.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		// Global quit handler
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	return m.updateCurrentScreen(msg)
}

// updateCurrentScreen routes updates to the currently active screen
func (m AppModel) updateCurrentScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.CurrentScreen {
	case ScreenBrand:
		m.BrandModel, cmd = m.BrandModel.Update(msg)

		if m.BrandModel.Done {
			m.BrandModel.Done = false
			m.Brand = m.BrandModel.Chosen
			return m.transitionTo(ScreenLocation)
		}

		if keyMsg, ok := msg.(tea.KeyMsg); ok && !m.BrandModel.List.SettingFilter() {
			if keyMsg.String() == "q" || keyMsg.String() == "esc" {
				return m, tea.Quit
			}
		}

	case ScreenLocation:
		m.LocationModel, cmd = m.LocationModel.Update(msg)

		if m.LocationModel.Done {
			m.LocationModel.Done = false
			m.Location = m.LocationModel.Chosen
			return m.transitionTo(ScreenFile)
		}
		if m.LocationModel.Back {
			m.LocationModel.Back = false
			return m.transitionTo(ScreenBrand)
		}

		if keyMsg, ok := msg.(tea.KeyMsg); ok && !m.LocationModel.List.SettingFilter() {
			if keyMsg.String() == "q" {
				return m, tea.Quit
			}
		}

	case ScreenFile:
		m.FileModel, cmd = m.FileModel.Update(msg)

		if m.FileModel.Done {
			m.FileModel.Done = false
			m.FilePath = m.FileModel.Selected
			return m.transitionTo(ScreenUpload)
		}
		if m.FileModel.Back {
			m.FileModel.Back = false
			return m.transitionTo(ScreenLocation)
		}

		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "q" {
			return m, tea.Quit
		}

	case ScreenUpload:
		m.UploadModel, cmd = m.UploadModel.Update(msg)

		if m.UploadModel.Back {
			m.UploadModel.Back = false
			return m.transitionTo(ScreenBrand)
		}

		if keyMsg, ok := msg.(tea.KeyMsg); ok && !m.UploadModel.Streaming {
			if keyMsg.String() == "q" {
				return m, tea.Quit
			}
		}
	}

	return m, cmd
}

// transitionTo initializes and switches to the target screen
func (m AppModel) transitionTo(screen Screen) (tea.Model, tea.Cmd) {
	m.CurrentScreen = screen

	var cmd tea.Cmd

	switch screen {
	case ScreenBrand:
		m.BrandModel = NewBrandModel(m.Catalog)
		m.BrandModel.SetSize(m.Width, m.Height)
		cmd = m.BrandModel.Init()

	case ScreenLocation:
		// Rebuilt from scratch on every brand change, so the option
		// set is always exactly the chosen brand's locations.
		m.LocationModel = NewLocationModel(m.Controller, m.Brand)
		m.LocationModel.SetSize(m.Width, m.Height)
		cmd = m.LocationModel.Init()

	case ScreenFile:
		m.FileModel = NewFileModel(m.StartDir)
		m.FileModel.SetSize(m.Width, m.Height)
		cmd = m.FileModel.Init()

	case ScreenUpload:
		m.UploadModel = NewUploadModel(m.Client, m.Brand, m.Location, m.FilePath)
		m.UploadModel.SetSize(m.Width, m.Height)
		m.UploadModel, cmd = m.UploadModel.Start()
	}

	return m, cmd
}

// View renders the current screen
func (m AppModel) View() string {
	switch m.CurrentScreen {
	case ScreenBrand:
		return m.BrandModel.View()
	case ScreenLocation:
		return m.LocationModel.View()
	case ScreenFile:
		return m.FileModel.View()
	case ScreenUpload:
		return m.UploadModel.View()
	default:
		return "Unknown screen"
	}
}
