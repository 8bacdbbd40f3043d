package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mmcdole/bookfinder/internal/controller"
	"github.com/mmcdole/bookfinder/internal/domain"
	"github.com/spf13/cobra"
)

// SearchOptions holds options for the search command.
type SearchOptions struct {
	Mode   string
	JSON   bool
	Toggle int
}

// NewSearchCommand creates the search command.
func NewSearchCommand(root *rootOptions) *cobra.Command {
	opts := &SearchOptions{}

	cmd := &cobra.Command{
		Use:   "search QUERY...",
		Short: "Search the catalog once and print the results",
		Long:  "Search the catalog by title, genre (subject), author or language and print the top 10 results.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(root)
			if err != nil {
				return err
			}
			defer app.Close()

			if !cmd.Flags().Changed("mode") {
				opts.Mode = app.Config.Search.DefaultMode
			}
			return runSearch(cmd.Context(), cmd.OutOrStdout(), app, strings.Join(args, " "), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Mode, "mode", "m", "title", "Search mode: title, subject (genre), author or language")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output results as JSON")
	cmd.Flags().IntVarP(&opts.Toggle, "favorite", "f", 0, "Toggle the Nth result (1-based) in favorites")

	return cmd
}

func runSearch(ctx context.Context, out io.Writer, app *App, query string, opts *SearchOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	ctrl := app.Controller
	ctrl.ChangeMode(domain.ParseSearchMode(opts.Mode))
	ctrl.SetQuery(query)

	req, ok := ctrl.SubmitSearch()
	if !ok {
		return fmt.Errorf("query must not be blank")
	}
	outcome := ctrl.Execute(ctx, req)
	ctrl.Apply(req, outcome)

	switch o := outcome.(type) {
	case domain.EmptyResult:
		fmt.Fprintln(out, o.Message)
		return nil
	case domain.Failure:
		app.Logger.Error("search failed", "query", query, "error", o.Err)
		return fmt.Errorf("%s", o.Message)
	}

	state := ctrl.Search()
	if opts.Toggle != 0 {
		if opts.Toggle < 1 || opts.Toggle > len(state.Results) {
			return fmt.Errorf("--favorite must be between 1 and %d", len(state.Results))
		}
		ctrl.ToggleFavorite(state.Results[opts.Toggle-1])
	}

	items := ctrl.ViewModel().Items
	if opts.JSON {
		return writeJSON(out, books(items))
	}
	writeItems(out, items)
	return nil
}

// writeItems prints items as numbered cards
func writeItems(out io.Writer, items []controller.Item) {
	for i, item := range items {
		b := item.Book

		marker := " "
		if item.IsFavorite {
			marker = "♥"
		}
		title := b.Title
		if year := b.Year(); year > 0 {
			title = fmt.Sprintf("%s (%d)", b.Title, year)
		}

		fmt.Fprintf(out, "%2d. %s %s\n", i+1, marker, title)
		fmt.Fprintf(out, "      by %s\n", b.Author)
		fmt.Fprintf(out, "      Genres: %s\n", b.Subjects)
		fmt.Fprintf(out, "      Languages: %s\n", b.Languages)
		if item.CoverURL != "" {
			fmt.Fprintf(out, "      Cover: %s\n", item.CoverURL)
		} else {
			fmt.Fprintln(out, "      No Cover Available")
		}
		fmt.Fprintf(out, "      ID: %s\n", b.ID)
	}
}

func books(items []controller.Item) []domain.Book {
	out := make([]domain.Book, len(items))
	for i, item := range items {
		out[i] = item.Book
	}
	return out
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
