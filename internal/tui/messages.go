package tui

import (
	"github.com/mmcdole/bookfinder/internal/controller"
	"github.com/mmcdole/bookfinder/internal/domain"
)

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// SearchSettledMsg carries the outcome of a submitted search back to the loop
type SearchSettledMsg struct {
	Request controller.Request
	Outcome domain.Outcome
}

// LaunchedMsg signals that a page was handed to the browser
type LaunchedMsg struct {
	Title string
	URL   string
}

// ClearStatusMsg clears the status message
type ClearStatusMsg struct{}
