package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/bookfinder/internal/controller"
	"github.com/mmcdole/bookfinder/internal/domain"
	"github.com/mmcdole/bookfinder/internal/tui/styles"
)

// Shown instead of the click hint in the empty favorites view
const favoritesHint = "Press f on a book to add it to your favorites."

// View renders the whole screen
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	vm := m.Ctrl.ViewModel()
	theme := styles.NewTheme(vm.DarkTheme)
	width := m.contentWidth()

	var content string
	if vm.Empty != nil {
		empty := *vm.Empty
		if vm.Active == domain.ViewFavorites && vm.FavoritesCount == 0 {
			empty.Description = favoritesHint
		}
		content = RenderEmptyState(empty, width, theme)
	} else {
		content = m.renderCards(vm.Items, width, theme)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		RenderHeader(vm, width, theme),
		"",
		m.renderInput(vm, width, theme),
		m.renderStatus(vm, width, theme),
		content,
		m.renderFooter(theme),
	)
}

// RenderHeader renders the app title, view tabs with the favorites badge and the theme switch
func RenderHeader(vm controller.ViewModel, width int, theme styles.Theme) string {
	title := theme.Title.Render("📚 Book Finder")

	searchTab := theme.InactiveTab.Render("1 Search")
	favTab := theme.InactiveTab.Render("2 Favorites")
	if vm.Active == domain.ViewSearch {
		searchTab = theme.ActiveTab.Render("1 Search")
	} else {
		favTab = theme.ActiveTab.Render("2 Favorites")
	}
	if vm.FavoritesCount > 0 {
		favTab += theme.Badge.Render(strconv.Itoa(vm.FavoritesCount))
	}

	left := title + "  " + searchTab + " " + favTab
	right := theme.HelpKey.Render("t") + " " + theme.HelpDesc.Render(ThemeLabel(vm.DarkTheme))

	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// ThemeLabel names the theme a toggle would switch to
func ThemeLabel(dark bool) string {
	if dark {
		return "Light mode"
	}
	return "Dark mode"
}

// renderInput renders the query box (search view) or the filter box (favorites view)
func (m Model) renderInput(vm controller.ViewModel, width int, theme styles.Theme) string {
	box := theme.Input
	if m.Focus == FocusInput {
		box = theme.FocusedInput
	}
	box = box.Width(width - 2)

	if vm.Active == domain.ViewFavorites {
		label := theme.Accent.Render(styles.Pad("Filter", 10))
		return box.Render(label + " " + m.Filter.View())
	}

	label := theme.Accent.Render(styles.Pad(vm.Mode.Label()+" ▾", 10))
	line := label + " " + m.Query.View()
	if vm.Query != "" {
		line += "  " + theme.HelpKey.Render("C-l") + " " + theme.HelpDesc.Render("Clear")
	}
	return box.Render(line)
}

// renderStatus renders the loading, error or transient status line
func (m Model) renderStatus(vm controller.ViewModel, width int, theme styles.Theme) string {
	switch {
	case vm.Active == domain.ViewSearch && vm.Loading:
		sp := m.Spinner
		sp.Style = theme.Spinner
		return sp.View() + " " + theme.Dim.Render("Searching...")
	case vm.Active == domain.ViewSearch && vm.Error != "":
		return RenderError(vm.Error, width, theme)
	case m.StatusMsg != "" && m.StatusIsErr:
		return theme.Error.Render(styles.Truncate(m.StatusMsg, width))
	case m.StatusMsg != "":
		return theme.Dim.Render(styles.Truncate(m.StatusMsg, width))
	case vm.Active == domain.ViewSearch && len(vm.Items) > 0:
		return theme.Dim.Render(fmt.Sprintf("%d results", len(vm.Items)))
	}
	return ""
}

// renderCards renders the visible window of cards
func (m Model) renderCards(items []controller.Item, width int, theme styles.Theme) string {
	end := min(m.Offset+m.visibleCards(), len(items))
	start := min(m.Offset, end)

	cards := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		cards = append(cards, RenderCard(items[i], i == m.Cursor && m.Focus == FocusList, width, theme))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

// RenderCard renders one book with its favorite marker and meta lines
func RenderCard(item controller.Item, selected bool, width int, theme styles.Theme) string {
	style := theme.Card
	if selected {
		style = theme.SelectedCard
	}
	inner := width - 4

	heart := theme.Dim.Render(styles.NotFavoriteChar)
	if item.IsFavorite {
		heart = theme.Favorite.Render(styles.FavoriteChar)
	}

	book := item.Book
	lines := []string{
		heart + " " + theme.Title.Render(styles.Truncate(book.Title, inner-2)),
		theme.Subtitle.Render(styles.Truncate("by "+book.Author, inner)),
	}
	if year := book.Year(); year > 0 {
		lines = append(lines, metaLine("Published", strconv.Itoa(year), inner, theme))
	}
	lines = append(lines,
		metaLine("Genres", book.Subjects, inner, theme),
		metaLine("Languages", book.Languages, inner, theme),
	)
	if item.CoverURL != "" {
		lines = append(lines, metaLine("Cover", item.CoverURL, inner, theme))
	} else {
		lines = append(lines, theme.Dim.Render("No Cover Available"))
	}

	return style.Width(width - 2).Render(strings.Join(lines, "\n"))
}

func metaLine(label, value string, width int, theme styles.Theme) string {
	prefix := label + ": "
	return theme.Dim.Render(prefix) + theme.Subtitle.Render(styles.Truncate(value, width-len(prefix)))
}

// RenderEmptyState renders the start/empty signal
func RenderEmptyState(empty controller.EmptyState, width int, theme styles.Theme) string {
	block := lipgloss.JoinVertical(lipgloss.Center,
		empty.Emoji,
		theme.Title.Render(empty.Title),
		theme.Subtitle.Render(wordWrap(empty.Description, width-4)),
	)
	return lipgloss.NewStyle().Width(width).Padding(1, 0).Align(lipgloss.Center).Render(block)
}

// RenderError renders an error message
func RenderError(msg string, width int, theme styles.Theme) string {
	return theme.Error.Render(wordWrap(msg, width-4))
}

// renderFooter renders the key help
func (m Model) renderFooter(theme styles.Theme) string {
	h := m.Help
	h.Styles.ShortKey = theme.HelpKey
	h.Styles.ShortDesc = theme.HelpDesc
	h.Styles.ShortSeparator = theme.Dim
	h.Styles.FullKey = theme.HelpKey
	h.Styles.FullDesc = theme.HelpDesc
	h.Styles.FullSeparator = theme.Dim
	h.Styles.Ellipsis = theme.Dim
	return h.View(Keys)
}

// wordWrap wraps text to the specified width
func wordWrap(text string, width int) string {
	if width <= 0 {
		return text
	}

	var result strings.Builder
	words := strings.Fields(text)
	lineLen := 0

	for i, word := range words {
		wordLen := lipgloss.Width(word)

		if lineLen+wordLen+1 > width && lineLen > 0 {
			result.WriteString("\n")
			lineLen = 0
		}

		if i > 0 && lineLen > 0 {
			result.WriteString(" ")
			lineLen++
		}

		result.WriteString(word)
		lineLen += wordLen
	}

	return result.String()
}
