package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette is the set of colors a theme is built from
type Palette struct {
	Accent   lipgloss.Color
	Surface  lipgloss.Color
	Raised   lipgloss.Color
	Text     lipgloss.Color
	Muted    lipgloss.Color
	Faint    lipgloss.Color
	Favorite lipgloss.Color
	Error    lipgloss.Color
	OnAccent lipgloss.Color
}

// Color palettes
var (
	DarkPalette = Palette{
		Accent:   lipgloss.Color("#E5A00D"),
		Surface:  lipgloss.Color("#1F2937"),
		Raised:   lipgloss.Color("#374151"),
		Text:     lipgloss.Color("#F9FAFB"),
		Muted:    lipgloss.Color("#9CA3AF"),
		Faint:    lipgloss.Color("#6B7280"),
		Favorite: lipgloss.Color("#EF4444"),
		Error:    lipgloss.Color("#F87171"),
		OnAccent: lipgloss.Color("#111827"),
	}

	LightPalette = Palette{
		Accent:   lipgloss.Color("#B45309"),
		Surface:  lipgloss.Color("#F9FAFB"),
		Raised:   lipgloss.Color("#E5E7EB"),
		Text:     lipgloss.Color("#111827"),
		Muted:    lipgloss.Color("#4B5563"),
		Faint:    lipgloss.Color("#9CA3AF"),
		Favorite: lipgloss.Color("#DC2626"),
		Error:    lipgloss.Color("#B91C1C"),
		OnAccent: lipgloss.Color("#F9FAFB"),
	}
)

// Raw favorite characters (unstyled)
const (
	FavoriteChar    = "♥"
	NotFavoriteChar = "♡"
)

// Theme holds every style the UI renders with
type Theme struct {
	Palette Palette
	Dark    bool

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Dim      lipgloss.Style
	Accent   lipgloss.Style
	Error    lipgloss.Style

	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style
	Badge       lipgloss.Style

	Card         lipgloss.Style
	SelectedCard lipgloss.Style
	Favorite     lipgloss.Style

	Input        lipgloss.Style
	FocusedInput lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
	Spinner  lipgloss.Style
}

// NewTheme builds the dark or light theme
func NewTheme(dark bool) Theme {
	p := LightPalette
	if dark {
		p = DarkPalette
	}

	return Theme{
		Palette: p,
		Dark:    dark,

		Title: lipgloss.NewStyle().
			Foreground(p.Text).
			Bold(true),
		Subtitle: lipgloss.NewStyle().
			Foreground(p.Muted),
		Dim: lipgloss.NewStyle().
			Foreground(p.Faint),
		Accent: lipgloss.NewStyle().
			Foreground(p.Accent),
		Error: lipgloss.NewStyle().
			Foreground(p.Error),

		ActiveTab: lipgloss.NewStyle().
			Foreground(p.OnAccent).
			Background(p.Accent).
			Bold(true).
			Padding(0, 1),
		InactiveTab: lipgloss.NewStyle().
			Foreground(p.Muted).
			Background(p.Raised).
			Padding(0, 1),
		Badge: lipgloss.NewStyle().
			Foreground(p.OnAccent).
			Background(p.Favorite).
			Padding(0, 1),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Faint).
			Padding(0, 1),
		SelectedCard: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent).
			Padding(0, 1),
		Favorite: lipgloss.NewStyle().
			Foreground(p.Favorite),

		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Faint).
			Padding(0, 1),
		FocusedInput: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent).
			Padding(0, 1),

		HelpKey: lipgloss.NewStyle().
			Foreground(p.Accent),
		HelpDesc: lipgloss.NewStyle().
			Foreground(p.Faint),
		Spinner: lipgloss.NewStyle().
			Foreground(p.Accent),
	}
}

// Helper functions

// Truncate truncates a string to the given display width with ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	if width <= 3 {
		if width > len(runes) {
			return s
		}
		return string(runes[:width])
	}
	for len(runes) > 0 && lipgloss.Width(string(runes))+3 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}

// Pad pads a string to the given display width
func Pad(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}
