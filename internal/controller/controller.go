// Package controller holds the search/favorites state machine that sits between
// the catalog, the favorites collection and whatever renders the result.
//
// The controller is owned by a single event loop. Searches are split into
// SubmitSearch (synchronous state change, returns a Request) and Apply (settles
// the Request with an Outcome) so the catalog call can run off the loop.
package controller

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mmcdole/bookfinder/internal/domain"
)

// Executor runs a single catalog query
type Executor interface {
	Execute(ctx context.Context, query string, mode domain.SearchMode) domain.Outcome
}

// Favorites is the favorites collection as seen by the controller
type Favorites interface {
	Favorites() []domain.Book
	IsFavorite(id string) bool
	Toggle(book domain.Book) []domain.Book
}

// SearchState is the transient search form and result state
type SearchState struct {
	Query   string
	Mode    domain.SearchMode
	Results []domain.Book
	Loading bool
	Error   string // Empty when there is no error
}

// ViewState is the transient presentation state
type ViewState struct {
	Active    domain.View
	DarkTheme bool
}

// Request identifies one submitted search.
// Token increases with every submit and lets Apply recognize stale outcomes.
type Request struct {
	Token uint64
	Query string
	Mode  domain.SearchMode
}

// Options configures a Controller
type Options struct {
	CoversURL        string            // Base URL for cover images
	DefaultMode      domain.SearchMode // Initial search mode
	DarkTheme        bool              // Initial theme
	DropStaleResults bool              // Ignore outcomes of superseded requests
}

// Controller owns SearchState and ViewState and drives the executor and favorites
type Controller struct {
	executor  Executor
	favorites Favorites
	logger    *slog.Logger
	opts      Options

	search SearchState
	view   ViewState
	filter string // Favorites filter query

	generation uint64
	closed     bool
}

// New creates a controller in the search view with an empty query
func New(executor Executor, favorites Favorites, opts Options, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		executor:  executor,
		favorites: favorites,
		logger:    logger,
		opts:      opts,
		search: SearchState{
			Mode:    opts.DefaultMode,
			Results: []domain.Book{},
		},
		view: ViewState{
			Active:    domain.ViewSearch,
			DarkTheme: opts.DarkTheme,
		},
	}
}

// Search returns a snapshot of the search state
func (c *Controller) Search() SearchState {
	s := c.search
	s.Results = append([]domain.Book(nil), c.search.Results...)
	return s
}

// View returns a snapshot of the view state
func (c *Controller) View() ViewState {
	return c.view
}

// Filter returns the current favorites filter
func (c *Controller) Filter() string {
	return c.filter
}

// SetQuery replaces the query text
func (c *Controller) SetQuery(query string) {
	c.search.Query = query
}

// SubmitSearch starts a search for the current query.
// A blank query only clears the loading flag and reports false; nothing else changes.
func (c *Controller) SubmitSearch() (Request, bool) {
	if strings.TrimSpace(c.search.Query) == "" {
		c.search.Loading = false
		return Request{}, false
	}

	c.generation++
	c.search.Loading = true
	c.search.Error = ""
	c.search.Results = []domain.Book{}

	req := Request{Token: c.generation, Query: c.search.Query, Mode: c.search.Mode}
	c.logger.Debug("search submitted", "token", req.Token, "query", req.Query, "mode", req.Mode.String())
	return req, true
}

// Apply settles req with outcome. It reports false when the outcome was dropped:
// after Close, or when stale results are dropped and req is not the latest request.
func (c *Controller) Apply(req Request, outcome domain.Outcome) bool {
	if c.closed {
		c.logger.Debug("dropping outcome after close", "token", req.Token)
		return false
	}
	if c.opts.DropStaleResults && req.Token != c.generation {
		c.logger.Debug("dropping stale outcome", "token", req.Token, "latest", c.generation)
		return false
	}

	c.search.Loading = false

	switch o := outcome.(type) {
	case domain.Results:
		c.search.Results = append([]domain.Book(nil), o.Books...)
		c.search.Error = ""
	case domain.EmptyResult:
		c.search.Results = []domain.Book{}
		c.search.Error = o.Message
	case domain.Failure:
		c.search.Results = []domain.Book{}
		c.search.Error = o.Message
	default:
		c.logger.Warn("unknown search outcome", "type", fmt.Sprintf("%T", outcome))
		c.search.Results = []domain.Book{}
	}
	return true
}

// RunSearch submits the current query, executes it and applies the outcome
// on the calling goroutine. It reports whether a search was issued.
func (c *Controller) RunSearch(ctx context.Context) bool {
	req, ok := c.SubmitSearch()
	if !ok {
		return false
	}
	c.Apply(req, c.executor.Execute(ctx, req.Query, req.Mode))
	return true
}

// Execute runs req against the executor without touching controller state.
// Safe to call off the owning loop.
func (c *Controller) Execute(ctx context.Context, req Request) domain.Outcome {
	return c.executor.Execute(ctx, req.Query, req.Mode)
}

// ChangeMode switches the search mode and discards the query in progress
func (c *Controller) ChangeMode(mode domain.SearchMode) {
	c.search.Mode = mode
	c.search.Query = ""
}

// Clear resets the query, results and error
func (c *Controller) Clear() {
	c.search.Query = ""
	c.search.Results = []domain.Book{}
	c.search.Error = ""
}

// ToggleFavorite adds or removes book from favorites; results are untouched
func (c *Controller) ToggleFavorite(book domain.Book) {
	c.favorites.Toggle(book)
}

// SwitchView changes the active view without refetching anything
func (c *Controller) SwitchView(v domain.View) {
	c.view.Active = v
}

// ToggleTheme flips between dark and light
func (c *Controller) ToggleTheme() {
	c.view.DarkTheme = !c.view.DarkTheme
}

// SetFilter narrows the favorites view
func (c *Controller) SetFilter(filter string) {
	c.filter = filter
}

// Close tears the controller down; outcomes applied afterwards are ignored
func (c *Controller) Close() {
	c.closed = true
}
