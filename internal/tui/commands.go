package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/bookfinder/internal/controller"
	"github.com/mmcdole/bookfinder/internal/domain"
)

// Command factories for async operations

// SearchRunner executes a submitted search off the event loop
type SearchRunner interface {
	Execute(ctx context.Context, req controller.Request) domain.Outcome
}

// Launcher hands a URL to an external program
type Launcher interface {
	Launch(url string) error
}

// SearchCmd runs req and reports its outcome. A zero timeout means no deadline
// beyond the catalog client's own.
func SearchCmd(runner SearchRunner, req controller.Request, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		return SearchSettledMsg{Request: req, Outcome: runner.Execute(ctx, req)}
	}
}

// LaunchCmd opens url for the book titled title
func LaunchCmd(launcher Launcher, title, url string) tea.Cmd {
	return func() tea.Msg {
		if err := launcher.Launch(url); err != nil {
			return ErrMsg{Err: err, Context: "opening " + title}
		}
		return LaunchedMsg{Title: title, URL: url}
	}
}

// ClearStatusCmd returns a command that clears status after a delay
func ClearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
