package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/bookfinder/internal/controller"
	"github.com/mmcdole/bookfinder/internal/domain"
)

// Focus identifies which part of the screen receives keys
type Focus int

const (
	FocusInput Focus = iota // Query (search view) or filter (favorites view)
	FocusList               // Result cards
)

// Options configures the Model
type Options struct {
	CatalogURL    string        // Base for book page links
	SearchTimeout time.Duration // Deadline for a single search, 0 for none
}

// Model is the main Bubble Tea model for the application
type Model struct {
	Ready bool

	// Collaborators
	Ctrl     *controller.Controller
	Launcher Launcher
	opts     Options

	// UI Components
	Query   textinput.Model
	Filter  textinput.Model
	Spinner spinner.Model
	Help    help.Model

	// Dimensions
	Width  int
	Height int

	// UI state
	Focus       Focus
	Cursor      int // Selected card
	Offset      int // First visible card
	StatusMsg   string
	StatusIsErr bool
}

// NewModel creates a new application model around ctrl
func NewModel(ctrl *controller.Controller, launcher Launcher, opts Options) Model {
	mode := ctrl.Search().Mode

	query := textinput.New()
	query.Prompt = ""
	query.CharLimit = 200
	query.Placeholder = placeholder(mode)
	query.Focus()

	filter := textinput.New()
	filter.Prompt = ""
	filter.CharLimit = 100
	filter.Placeholder = "Filter favorites..."

	return Model{
		Ctrl:     ctrl,
		Launcher: launcher,
		opts:     opts,
		Query:    query,
		Filter:   filter,
		Spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		Help:     help.New(),
		Focus:    FocusInput,
	}
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case spinner.TickMsg:
		// Let the tick chain lapse once the search settles
		if !m.Ctrl.Search().Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case SearchSettledMsg:
		if m.Ctrl.Apply(msg.Request, msg.Outcome) {
			m.Cursor = 0
			m.Offset = 0
		}
		m.clampCursor()
		return m, nil

	case LaunchedMsg:
		m.StatusMsg = "Opened " + msg.Title
		m.StatusIsErr = false
		return m, ClearStatusCmd(3 * time.Second)

	case ErrMsg:
		m.StatusMsg = msg.Error()
		m.StatusIsErr = true
		return m, ClearStatusCmd(5 * time.Second)

	case ClearStatusMsg:
		m.StatusMsg = ""
		m.StatusIsErr = false
		return m, nil
	}

	// Cursor blink and other input housekeeping
	var cmd tea.Cmd
	if m.Ctrl.View().Active == domain.ViewFavorites {
		m.Filter, cmd = m.Filter.Update(msg)
	} else {
		m.Query, cmd = m.Query.Update(msg)
	}
	return m, cmd
}

// selected returns the card under the cursor
func (m Model) selected() (controller.Item, bool) {
	items := m.Ctrl.ViewModel().Items
	if m.Cursor < 0 || m.Cursor >= len(items) {
		return controller.Item{}, false
	}
	return items[m.Cursor], true
}

func placeholder(mode domain.SearchMode) string {
	return "Search by " + mode.String() + "..."
}
