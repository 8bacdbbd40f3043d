package controller

import (
	"github.com/mmcdole/bookfinder/internal/domain"
	"github.com/mmcdole/bookfinder/internal/service"
)

// Item is one rendered book with its derived favorite flag
type Item struct {
	Book       domain.Book
	IsFavorite bool
	CoverURL   string
}

// EmptyState is the start/empty signal shown instead of an empty list
type EmptyState struct {
	Emoji       string
	Title       string
	Description string
}

var (
	searchEmpty = EmptyState{
		Emoji:       "🔍",
		Title:       "Start your search to find books.",
		Description: "Enter a title, genre, author, or language above.",
	}
	favoritesEmpty = EmptyState{
		Emoji:       "⭐",
		Title:       "No favorites yet!",
		Description: "Click the heart icon on a book to add it to your favorites.",
	}
	filterEmpty = EmptyState{
		Emoji:       "⭐",
		Title:       "No favorites match your filter.",
		Description: "Clear the filter to see all favorites.",
	}
)

// ViewModel is everything the presentation layer renders
type ViewModel struct {
	Query          string
	Mode           domain.SearchMode
	Loading        bool
	Error          string
	Active         domain.View
	DarkTheme      bool
	FavoritesCount int
	Filter         string

	Items []Item
	Empty *EmptyState // Non-nil when nothing else should be shown
}

// ViewModel derives the current view model. Nothing is cached; favorite flags
// are recomputed from the favorites collection on every call.
func (c *Controller) ViewModel() ViewModel {
	favorites := c.favorites.Favorites()

	vm := ViewModel{
		Query:          c.search.Query,
		Mode:           c.search.Mode,
		Loading:        c.search.Loading,
		Error:          c.search.Error,
		Active:         c.view.Active,
		DarkTheme:      c.view.DarkTheme,
		FavoritesCount: len(favorites),
		Filter:         c.filter,
	}

	var list []domain.Book
	if c.view.Active == domain.ViewSearch {
		list = c.search.Results
	} else {
		list = service.FilterFavorites(favorites, c.filter)
	}
	vm.Items = Project(list, favorites, c.opts.CoversURL)

	if len(vm.Items) == 0 {
		switch {
		case c.view.Active == domain.ViewFavorites && len(favorites) > 0:
			empty := filterEmpty
			vm.Empty = &empty
		case c.view.Active == domain.ViewFavorites:
			empty := favoritesEmpty
			vm.Empty = &empty
		case !vm.Loading && vm.Error == "":
			empty := searchEmpty
			vm.Empty = &empty
		}
	}

	return vm
}

// Project pairs every book in list with its membership in favorites
func Project(list, favorites []domain.Book, coversURL string) []Item {
	items := make([]Item, len(list))
	for i, b := range list {
		items[i] = Item{
			Book:       b,
			IsFavorite: service.IsFavorite(favorites, b.ID),
			CoverURL:   b.CoverURL(coversURL),
		}
	}
	return items
}
