package tui

// Layout sizes in terminal cells
const (
	// Header, blank line, bordered input and status line
	ChromeHeight = 6

	// Bordered card: title, author, published, genres, languages, cover
	CardHeight = 8

	MaxContentWidth = 100
	MinContentWidth = 30
)

// contentWidth is the width cards and the input are rendered at
func (m Model) contentWidth() int {
	return min(max(m.Width, MinContentWidth), MaxContentWidth)
}

// footerHeight is the number of lines the help footer occupies
func (m Model) footerHeight() int {
	if m.Help.ShowAll {
		longest := 0
		for _, col := range Keys.FullHelp() {
			longest = max(longest, len(col))
		}
		return longest
	}
	return 1
}

// visibleCards returns how many cards fit below the chrome
func (m Model) visibleCards() int {
	if m.Height == 0 {
		return 1
	}
	return max((m.Height-ChromeHeight-m.footerHeight())/CardHeight, 1)
}

// updateLayout updates component sizes based on window size
func (m *Model) updateLayout() {
	if m.Width == 0 || m.Height == 0 {
		return
	}

	// Border, padding and the mode label
	inputWidth := m.contentWidth() - 4 - 14
	m.Query.Width = inputWidth
	m.Filter.Width = inputWidth
	m.Help.Width = m.Width

	m.ensureVisible()
}

// moveCursor moves the selection by delta cards
func (m *Model) moveCursor(delta int) {
	m.Cursor += delta
	m.clampCursor()
}

// clampCursor keeps the cursor within the current item list
func (m *Model) clampCursor() {
	n := len(m.Ctrl.ViewModel().Items)
	if m.Cursor >= n {
		m.Cursor = n - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
	m.ensureVisible()
}

// ensureVisible scrolls so the cursor is on screen
func (m *Model) ensureVisible() {
	visible := m.visibleCards()
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+visible {
		m.Offset = m.Cursor - visible + 1
	}
	if m.Offset < 0 {
		m.Offset = 0
	}
}
