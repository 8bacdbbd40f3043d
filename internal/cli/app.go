package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mmcdole/bookfinder/internal/adapter"
	"github.com/mmcdole/bookfinder/internal/adapter/openlibrary"
	"github.com/mmcdole/bookfinder/internal/controller"
	"github.com/mmcdole/bookfinder/internal/domain"
	"github.com/mmcdole/bookfinder/internal/service"
	"github.com/mmcdole/bookfinder/internal/store"
)

// App is the wired object graph shared by every command
type App struct {
	Config     *adapter.Config
	Logger     *slog.Logger
	Store      *store.Store
	Catalog    *openlibrary.Client
	Search     *service.SearchService
	Favorites  *service.FavoritesService
	Controller *controller.Controller
	Launcher   *adapter.Launcher

	logCloser io.Closer
}

// NewApp wires storage, catalog, services and the controller from cfg
func NewApp(cfg *adapter.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = adapter.NullLogger()
	}

	dbPath, err := adapter.ExpandHome(cfg.Storage.Path)
	if err != nil {
		return nil, err
	}
	st, err := store.NewStore(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open favorites store: %w", err)
	}
	if !st.Persistent() {
		logger.Warn("favorites are kept in memory only")
	}

	catalog := openlibrary.NewClient(cfg.Catalog.BaseURL, logger,
		openlibrary.WithTimeout(cfg.Catalog.Timeout),
		openlibrary.WithUserAgent(cfg.Catalog.UserAgent),
		openlibrary.WithRateLimit(cfg.Catalog.RateLimit),
	)

	searchSvc := service.NewSearchService(catalog, logger)
	favoritesSvc := service.NewFavoritesService(st, cfg.Storage.Namespace, logger)
	favoritesSvc.Load()

	ctrl := controller.New(searchSvc, favoritesSvc, controller.Options{
		CoversURL:        cfg.Catalog.CoversURL,
		DefaultMode:      domain.ParseSearchMode(cfg.Search.DefaultMode),
		DarkTheme:        cfg.UI.IsDark(),
		DropStaleResults: cfg.Search.DropStaleResults,
	}, logger)

	return &App{
		Config:     cfg,
		Logger:     logger,
		Store:      st,
		Catalog:    catalog,
		Search:     searchSvc,
		Favorites:  favoritesSvc,
		Controller: ctrl,
		Launcher:   adapter.NewLauncher(cfg.UI.Browser, cfg.UI.BrowserArgs, logger),
	}, nil
}

// Close tears the controller down and releases storage and the log file
func (a *App) Close() error {
	a.Controller.Close()

	var errs []error
	if err := a.Store.Close(); err != nil {
		errs = append(errs, err)
	}
	if a.logCloser != nil {
		if err := a.logCloser.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// loadApp reads configuration, sets up logging and wires the App
func loadApp(opts *rootOptions) (*App, error) {
	cfg, err := adapter.LoadConfig(opts.configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.Catalog.UserAgent == "" {
		cfg.Catalog.UserAgent = "bookfinder/" + opts.version
	}

	logger, closer, err := adapter.SetupLogger(cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = adapter.NullLogger()
		closer = nil
	}
	slog.SetDefault(logger)

	app, err := NewApp(cfg, logger)
	if err != nil {
		if closer != nil {
			closer.Close()
		}
		return nil, err
	}
	app.logCloser = closer

	logger.Info("starting bookfinder", "version", opts.version)
	return app, nil
}
