package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/bookfinder/internal/tui"
	"github.com/spf13/cobra"
)

// rootOptions holds flags shared by every command
type rootOptions struct {
	configFile string
	version    string
}

// NewRootCommand creates the root command.
func NewRootCommand(version string) *cobra.Command {
	opts := &rootOptions{version: version}

	cmd := &cobra.Command{
		Use:           "bookfinder",
		Short:         "Book Finder - search Open Library from the terminal",
		Long:          "Book Finder searches the Open Library catalog by title, genre, author or language and keeps a list of favorite books.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "Config file (default is $HOME/.config/bookfinder/config.yaml)")

	// Add subcommands
	cmd.AddCommand(NewSearchCommand(opts))
	cmd.AddCommand(NewFavoritesCommand(opts))
	cmd.AddCommand(NewConfigCommand(opts))

	return cmd
}

// runTUI starts the TUI application
func runTUI(opts *rootOptions) error {
	app, err := loadApp(opts)
	if err != nil {
		return err
	}
	defer app.Close()

	model := tui.NewModel(app.Controller, app.Launcher, tui.Options{
		CatalogURL:    app.Config.Catalog.BaseURL,
		SearchTimeout: app.Config.Catalog.Timeout,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())

	app.Logger.Info("starting TUI")
	if _, err := p.Run(); err != nil {
		app.Logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	app.Logger.Info("shutting down")
	return nil
}
