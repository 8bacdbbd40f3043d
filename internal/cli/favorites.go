package cli

import (
	"fmt"
	"io"

	"github.com/mmcdole/bookfinder/internal/domain"
	"github.com/mmcdole/bookfinder/internal/service"
	"github.com/spf13/cobra"
)

// FavoritesOptions holds options for the favorites command.
type FavoritesOptions struct {
	JSON   bool
	Filter string
}

// NewFavoritesCommand creates the favorites command and its subcommands.
func NewFavoritesCommand(root *rootOptions) *cobra.Command {
	opts := &FavoritesOptions{}

	cmd := &cobra.Command{
		Use:     "favorites",
		Aliases: []string{"fav"},
		Short:   "List favorite books",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(root)
			if err != nil {
				return err
			}
			defer app.Close()

			return runFavorites(cmd.OutOrStdout(), app, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output favorites as JSON")
	cmd.Flags().StringVar(&opts.Filter, "filter", "", "Fuzzy filter on title and author")

	cmd.AddCommand(&cobra.Command{
		Use:   "remove ID|TITLE",
		Short: "Remove a book from favorites by id or closest title",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(root)
			if err != nil {
				return err
			}
			defer app.Close()

			return runRemoveFavorite(cmd.OutOrStdout(), app, args[0])
		},
	})

	return cmd
}

func runFavorites(out io.Writer, app *App, opts *FavoritesOptions) error {
	ctrl := app.Controller
	ctrl.SwitchView(domain.ViewFavorites)
	ctrl.SetFilter(opts.Filter)

	vm := ctrl.ViewModel()
	if opts.JSON {
		return writeJSON(out, books(vm.Items))
	}
	if vm.Empty != nil {
		fmt.Fprintln(out, vm.Empty.Title)
		return nil
	}
	writeItems(out, vm.Items)
	return nil
}

func runRemoveFavorite(out io.Writer, app *App, ref string) error {
	b, ok := service.FindFavorite(app.Favorites.Favorites(), ref)
	if !ok {
		return fmt.Errorf("no favorite matches %q", ref)
	}
	app.Controller.ToggleFavorite(b)
	fmt.Fprintf(out, "Removed %s from favorites\n", b.Title)
	return nil
}
