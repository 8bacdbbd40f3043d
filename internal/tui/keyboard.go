package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/bookfinder/internal/domain"
)

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Keys that work regardless of focus
	switch {
	case key.Matches(msg, Keys.ForceQuit):
		m.Ctrl.Close()
		return m, tea.Quit

	case key.Matches(msg, Keys.NextMode):
		m.changeMode()
		return m, nil

	case key.Matches(msg, Keys.Clear):
		if m.Ctrl.View().Active == domain.ViewSearch {
			m.clearSearch()
		}
		return m, nil
	}

	if m.Focus == FocusInput {
		return m.handleInputKey(msg)
	}

	switch {
	case key.Matches(msg, Keys.Quit):
		m.Ctrl.Close()
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.Help.ShowAll = !m.Help.ShowAll
		m.updateLayout()
		return m, nil

	case key.Matches(msg, Keys.Focus):
		return m, m.focusInput()

	case key.Matches(msg, Keys.Escape):
		// Drop the favorites filter if any
		if m.Ctrl.View().Active == domain.ViewFavorites && m.Ctrl.Filter() != "" {
			m.Filter.SetValue("")
			m.Ctrl.SetFilter("")
			m.clampCursor()
		}
		return m, nil

	case key.Matches(msg, Keys.Up):
		m.moveCursor(-1)
		return m, nil

	case key.Matches(msg, Keys.Down):
		m.moveCursor(1)
		return m, nil

	case key.Matches(msg, Keys.Home):
		m.Cursor = 0
		m.ensureVisible()
		return m, nil

	case key.Matches(msg, Keys.End):
		m.Cursor = len(m.Ctrl.ViewModel().Items) - 1
		m.clampCursor()
		return m, nil

	case key.Matches(msg, Keys.Search):
		m.switchView(domain.ViewSearch)
		return m, nil

	case key.Matches(msg, Keys.Favorite):
		m.switchView(domain.ViewFavorites)
		return m, nil

	case key.Matches(msg, Keys.Toggle):
		if item, ok := m.selected(); ok {
			m.Ctrl.ToggleFavorite(item.Book)
			m.clampCursor()
		}
		return m, nil

	case key.Matches(msg, Keys.Open):
		item, ok := m.selected()
		if !ok || m.Launcher == nil {
			return m, nil
		}
		url := item.Book.PageURL(m.opts.CatalogURL)
		if url == "" {
			return m, m.setStatus("No page available", true)
		}
		return m, LaunchCmd(m.Launcher, item.Book.Title, url)

	case key.Matches(msg, Keys.OpenCover):
		item, ok := m.selected()
		if !ok || m.Launcher == nil {
			return m, nil
		}
		if item.CoverURL == "" {
			return m, m.setStatus("No Cover Available", true)
		}
		return m, LaunchCmd(m.Launcher, item.Book.Title, item.CoverURL)

	case key.Matches(msg, Keys.ToggleTheme):
		m.Ctrl.ToggleTheme()
		return m, nil
	}

	return m, nil
}

// handleInputKey routes keys to the focused text input
func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	favorites := m.Ctrl.View().Active == domain.ViewFavorites

	switch {
	case key.Matches(msg, Keys.Escape):
		m.blurInput()
		return m, nil

	case key.Matches(msg, Keys.Submit):
		if favorites {
			m.blurInput()
			return m, nil
		}
		// One search in flight at a time
		if m.Ctrl.Search().Loading {
			return m, nil
		}
		req, ok := m.Ctrl.SubmitSearch()
		if !ok {
			return m, nil
		}
		m.blurInput()
		m.Cursor = 0
		m.Offset = 0
		return m, tea.Batch(
			SearchCmd(m.Ctrl, req, m.opts.SearchTimeout),
			m.Spinner.Tick,
		)
	}

	var cmd tea.Cmd
	if favorites {
		m.Filter, cmd = m.Filter.Update(msg)
		m.Ctrl.SetFilter(m.Filter.Value())
		m.Cursor = 0
		m.Offset = 0
	} else {
		m.Query, cmd = m.Query.Update(msg)
		m.Ctrl.SetQuery(m.Query.Value())
	}
	return m, cmd
}

// changeMode cycles the search mode; the query in progress is discarded
func (m *Model) changeMode() {
	mode := m.Ctrl.Search().Mode.Next()
	m.Ctrl.ChangeMode(mode)
	m.Query.SetValue("")
	m.Query.Placeholder = placeholder(mode)
}

func (m *Model) clearSearch() {
	m.Ctrl.Clear()
	m.Query.SetValue("")
	m.Cursor = 0
	m.Offset = 0
}

func (m *Model) switchView(v domain.View) {
	if m.Ctrl.View().Active == v {
		return
	}
	m.Ctrl.SwitchView(v)
	m.Cursor = 0
	m.Offset = 0
	m.clampCursor()
}

func (m *Model) focusInput() tea.Cmd {
	m.Focus = FocusInput
	if m.Ctrl.View().Active == domain.ViewFavorites {
		return m.Filter.Focus()
	}
	return m.Query.Focus()
}

func (m *Model) blurInput() {
	m.Focus = FocusList
	m.Query.Blur()
	m.Filter.Blur()
}

func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.StatusMsg = text
	m.StatusIsErr = isErr
	return ClearStatusCmd(3 * time.Second)
}
