package controller

import (
	"context"
	"testing"

	"github.com/mmcdole/bookfinder/internal/domain"
	"github.com/mmcdole/bookfinder/internal/service"
	"github.com/mmcdole/bookfinder/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExecutor struct {
	outcome domain.Outcome
	calls   []Request
}

func (f *fakeExecutor) Execute(ctx context.Context, query string, mode domain.SearchMode) domain.Outcome {
	f.calls = append(f.calls, Request{Query: query, Mode: mode})
	return f.outcome
}

type catalogFunc func(ctx context.Context, mode domain.SearchMode, query string) ([]domain.Book, error)

func (f catalogFunc) Search(ctx context.Context, mode domain.SearchMode, query string) ([]domain.Book, error) {
	return f(ctx, mode, query)
}

func newController(t *testing.T, exec Executor, opts Options) (*Controller, *service.FavoritesService) {
	t.Helper()
	favs := service.NewFavoritesService(store.NewMemoryStore(), "", nil)
	favs.Load()
	if opts.CoversURL == "" {
		opts.CoversURL = "https://covers.openlibrary.org"
	}
	return New(exec, favs, opts, nil), favs
}

func book(key, title string) domain.Book {
	return domain.Book{ID: domain.BookID(key), Key: key, Title: title, Author: domain.UnknownAuthor}
}

func TestController_InitialState(t *testing.T) {
	c, _ := newController(t, &fakeExecutor{}, Options{DefaultMode: domain.ModeAuthor, DarkTheme: true})

	s := c.Search()
	assert.Equal(t, domain.ModeAuthor, s.Mode)
	assert.Empty(t, s.Query)
	assert.False(t, s.Loading)
	assert.Empty(t, s.Error)
	assert.Equal(t, domain.ViewSearch, c.View().Active)
	assert.True(t, c.View().DarkTheme)

	vm := c.ViewModel()
	require.NotNil(t, vm.Empty)
	assert.Equal(t, "Start your search to find books.", vm.Empty.Title)
}

func TestController_SubmitBlankQuery(t *testing.T) {
	exec := &fakeExecutor{outcome: domain.Results{Books: []domain.Book{book("/works/OL1W", "Dune")}}}
	c, _ := newController(t, exec, Options{})

	c.SetQuery("dune")
	require.True(t, c.RunSearch(context.Background()))
	require.Len(t, c.Search().Results, 1)

	for _, q := range []string{"", "   ", "\t\n"} {
		c.SetQuery(q)
		_, ok := c.SubmitSearch()
		assert.False(t, ok)
		assert.False(t, c.RunSearch(context.Background()))
		assert.False(t, c.Search().Loading)
		assert.Len(t, c.Search().Results, 1, "blank submit must not change results")
	}
	assert.Len(t, exec.calls, 1)
}

func TestController_SubmitSetsLoadingAndClears(t *testing.T) {
	c, _ := newController(t, &fakeExecutor{}, Options{})
	c.Apply(Request{}, domain.EmptyResult{Message: "old error"})

	c.SetQuery("dune")
	req, ok := c.SubmitSearch()
	require.True(t, ok)

	s := c.Search()
	assert.True(t, s.Loading)
	assert.Empty(t, s.Error)
	assert.Empty(t, s.Results)
	assert.Equal(t, "dune", req.Query)
	assert.Equal(t, domain.ModeTitle, req.Mode)

	vm := c.ViewModel()
	assert.True(t, vm.Loading)
	assert.Nil(t, vm.Empty)
}

func TestController_DuneScenario(t *testing.T) {
	catalog := catalogFunc(func(ctx context.Context, mode domain.SearchMode, query string) ([]domain.Book, error) {
		assert.Equal(t, domain.ModeTitle, mode)
		assert.Equal(t, "dune", query)
		return []domain.Book{{
			ID:        domain.BookID("/works/OL1W"),
			Key:       "/works/OL1W",
			Title:     "Dune",
			Author:    "Frank Herbert",
			Subjects:  domain.NotAvailable,
			Languages: domain.NotAvailable,
		}}, nil
	})
	c, _ := newController(t, service.NewSearchService(catalog, nil), Options{})

	c.SetQuery("dune")
	require.True(t, c.RunSearch(context.Background()))

	vm := c.ViewModel()
	require.Len(t, vm.Items, 1)
	item := vm.Items[0]
	assert.Equal(t, "_works_OL1W", item.Book.ID)
	assert.Equal(t, "Dune", item.Book.Title)
	assert.Equal(t, "Frank Herbert", item.Book.Author)
	assert.Equal(t, "N/A", item.Book.Subjects)
	assert.Equal(t, "N/A", item.Book.Languages)
	assert.False(t, item.IsFavorite)
	assert.Empty(t, item.CoverURL)
	assert.False(t, vm.Loading)
	assert.Empty(t, vm.Error)
	assert.Nil(t, vm.Empty)
}

func TestController_EmptyResultScenario(t *testing.T) {
	catalog := catalogFunc(func(ctx context.Context, mode domain.SearchMode, query string) ([]domain.Book, error) {
		return nil, nil
	})
	c, _ := newController(t, service.NewSearchService(catalog, nil), Options{})

	c.SetQuery("dune")
	c.RunSearch(context.Background())

	s := c.Search()
	assert.Empty(t, s.Results)
	assert.Equal(t, `No books found for "dune". Try a different search.`, s.Error)
	assert.False(t, s.Loading)
	assert.Nil(t, c.ViewModel().Empty)
}

func TestController_FailureOutcome(t *testing.T) {
	exec := &fakeExecutor{outcome: domain.Failure{Message: service.NetworkFailureMessage, Err: domain.ErrNetworkFailure}}
	c, _ := newController(t, exec, Options{})

	c.SetQuery("dune")
	c.RunSearch(context.Background())

	s := c.Search()
	assert.Empty(t, s.Results)
	assert.Equal(t, service.NetworkFailureMessage, s.Error)
	assert.False(t, s.Loading)
}

func TestController_ChangeModeClearsQuery(t *testing.T) {
	c, _ := newController(t, &fakeExecutor{}, Options{})
	c.SetQuery("tolkien")

	c.ChangeMode(domain.ModeAuthor)

	assert.Equal(t, domain.ModeAuthor, c.Search().Mode)
	assert.Empty(t, c.Search().Query)
}

func TestController_Clear(t *testing.T) {
	exec := &fakeExecutor{outcome: domain.Results{Books: []domain.Book{book("/works/OL1W", "Dune")}}}
	c, _ := newController(t, exec, Options{})
	c.SetQuery("dune")
	c.RunSearch(context.Background())

	c.Clear()

	s := c.Search()
	assert.Empty(t, s.Query)
	assert.Empty(t, s.Results)
	assert.Empty(t, s.Error)
}

func TestController_ToggleFavoriteFlags(t *testing.T) {
	dune := book("/works/OL1W", "Dune")
	emma := book("/works/OL2W", "Emma")
	exec := &fakeExecutor{outcome: domain.Results{Books: []domain.Book{dune, emma}}}
	c, favs := newController(t, exec, Options{})
	c.SetQuery("d")
	c.RunSearch(context.Background())

	c.ToggleFavorite(dune)

	vm := c.ViewModel()
	require.Len(t, vm.Items, 2)
	assert.True(t, vm.Items[0].IsFavorite)
	assert.False(t, vm.Items[1].IsFavorite)
	assert.Equal(t, 1, vm.FavoritesCount)
	assert.Len(t, c.Search().Results, 2, "toggling must not affect results")

	c.ToggleFavorite(dune)
	assert.False(t, c.ViewModel().Items[0].IsFavorite)
	assert.Empty(t, favs.Favorites())
}

func TestController_ToggleTwiceRestoresFavorites(t *testing.T) {
	c, favs := newController(t, &fakeExecutor{}, Options{})
	a, b, x := book("/works/A", "A"), book("/works/B", "B"), book("/works/X", "X")
	c.ToggleFavorite(a)
	c.ToggleFavorite(b)
	before := favs.Favorites()

	c.ToggleFavorite(x)
	c.ToggleFavorite(x)

	assert.Equal(t, before, favs.Favorites())
}

func TestController_FavoritesViewEmptySignal(t *testing.T) {
	exec := &fakeExecutor{outcome: domain.Failure{Message: service.NetworkFailureMessage}}
	c, _ := newController(t, exec, Options{})
	c.SetQuery("dune")
	c.RunSearch(context.Background())

	c.SwitchView(domain.ViewFavorites)

	vm := c.ViewModel()
	assert.Equal(t, domain.ViewFavorites, vm.Active)
	assert.Empty(t, vm.Items)
	require.NotNil(t, vm.Empty)
	assert.Equal(t, "No favorites yet!", vm.Empty.Title)

	// Still signalled while a search is in flight
	c.SwitchView(domain.ViewSearch)
	c.SetQuery("emma")
	_, ok := c.SubmitSearch()
	require.True(t, ok)
	c.SwitchView(domain.ViewFavorites)
	require.NotNil(t, c.ViewModel().Empty)
	assert.Equal(t, "No favorites yet!", c.ViewModel().Empty.Title)
}

func TestController_FavoritesViewListsCollection(t *testing.T) {
	c, _ := newController(t, &fakeExecutor{}, Options{})
	cover := 42
	dune := book("/works/OL1W", "Dune")
	dune.CoverID = &cover
	c.ToggleFavorite(dune)
	c.ToggleFavorite(book("/works/OL2W", "Emma"))

	c.SwitchView(domain.ViewFavorites)
	vm := c.ViewModel()

	require.Len(t, vm.Items, 2)
	assert.Equal(t, "Dune", vm.Items[0].Book.Title)
	assert.True(t, vm.Items[0].IsFavorite)
	assert.Equal(t, "https://covers.openlibrary.org/b/id/42-M.jpg", vm.Items[0].CoverURL)
	assert.Nil(t, vm.Empty)

	c.SetFilter("emma")
	vm = c.ViewModel()
	require.Len(t, vm.Items, 1)
	assert.Equal(t, "Emma", vm.Items[0].Book.Title)

	c.SetFilter("zzzz")
	vm = c.ViewModel()
	assert.Empty(t, vm.Items)
	require.NotNil(t, vm.Empty)
	assert.Equal(t, "No favorites match your filter.", vm.Empty.Title)
}

func TestController_SwitchViewDoesNotRefetch(t *testing.T) {
	exec := &fakeExecutor{outcome: domain.Results{Books: []domain.Book{book("/works/OL1W", "Dune")}}}
	c, _ := newController(t, exec, Options{})
	c.SetQuery("dune")
	c.RunSearch(context.Background())

	c.SwitchView(domain.ViewFavorites)
	c.SwitchView(domain.ViewSearch)

	assert.Len(t, exec.calls, 1)
	assert.Len(t, c.ViewModel().Items, 1)
}

func TestController_ToggleThemeWhileLoading(t *testing.T) {
	c, _ := newController(t, &fakeExecutor{}, Options{DarkTheme: true})
	c.SetQuery("dune")
	_, ok := c.SubmitSearch()
	require.True(t, ok)

	c.ToggleTheme()
	assert.False(t, c.View().DarkTheme)
	assert.True(t, c.Search().Loading)

	c.ToggleTheme()
	assert.True(t, c.View().DarkTheme)
}

func TestController_LateOutcomeApplied(t *testing.T) {
	c, _ := newController(t, &fakeExecutor{}, Options{})

	c.SetQuery("first")
	first, _ := c.SubmitSearch()
	c.SetQuery("second")
	second, _ := c.SubmitSearch()

	assert.True(t, c.Apply(second, domain.Results{Books: []domain.Book{book("/works/S", "Second")}}))
	assert.True(t, c.Apply(first, domain.Results{Books: []domain.Book{book("/works/F", "First")}}))

	assert.Equal(t, "First", c.Search().Results[0].Title)
}

func TestController_DropStaleResults(t *testing.T) {
	c, _ := newController(t, &fakeExecutor{}, Options{DropStaleResults: true})

	c.SetQuery("first")
	first, _ := c.SubmitSearch()
	c.SetQuery("second")
	second, _ := c.SubmitSearch()
	assert.Greater(t, second.Token, first.Token)

	assert.False(t, c.Apply(first, domain.Results{Books: []domain.Book{book("/works/F", "First")}}))
	assert.True(t, c.Search().Loading)

	assert.True(t, c.Apply(second, domain.Results{Books: []domain.Book{book("/works/S", "Second")}}))
	assert.Equal(t, "Second", c.Search().Results[0].Title)
	assert.False(t, c.Search().Loading)
}

func TestController_OutcomeIgnoredAfterClose(t *testing.T) {
	c, _ := newController(t, &fakeExecutor{}, Options{})
	c.SetQuery("dune")
	req, _ := c.SubmitSearch()

	c.Close()

	assert.False(t, c.Apply(req, domain.Results{Books: []domain.Book{book("/works/OL1W", "Dune")}}))
	assert.Empty(t, c.Search().Results)
}

func TestController_ClearDoesNotCancel(t *testing.T) {
	c, _ := newController(t, &fakeExecutor{}, Options{})
	c.SetQuery("dune")
	req, _ := c.SubmitSearch()

	c.Clear()
	c.Apply(req, domain.Results{Books: []domain.Book{book("/works/OL1W", "Dune")}})

	assert.Len(t, c.Search().Results, 1)
}

func TestProject(t *testing.T) {
	a, b := book("/works/A", "A"), book("/works/B", "B")

	items := Project([]domain.Book{a, b}, []domain.Book{b}, "https://covers.example")

	require.Len(t, items, 2)
	assert.False(t, items[0].IsFavorite)
	assert.True(t, items[1].IsFavorite)
}
