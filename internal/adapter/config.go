package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
	Storage StorageConfig `mapstructure:"storage"`
	Search  SearchConfig  `mapstructure:"search"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// CatalogConfig holds the remote catalog endpoints
type CatalogConfig struct {
	BaseURL   string        `mapstructure:"base_url"`   // search.json host
	CoversURL string        `mapstructure:"covers_url"` // Cover image host
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"` // Empty sends bookfinder/<version>
	RateLimit float64       `mapstructure:"rate_limit"` // Requests per second, 0 for no limit
}

// StorageConfig holds the favorites database location
type StorageConfig struct {
	Path      string `mapstructure:"path"`      // Empty keeps favorites in memory only
	Namespace string `mapstructure:"namespace"` // Key of the favorites slot
}

// SearchConfig holds search behavior
type SearchConfig struct {
	DefaultMode      string `mapstructure:"default_mode"`       // title, subject, author or language
	DropStaleResults bool   `mapstructure:"drop_stale_results"` // Ignore results of superseded searches
}

// UIConfig holds UI configuration
type UIConfig struct {
	Theme       string   `mapstructure:"theme"`        // "dark" or "light"
	Browser     string   `mapstructure:"browser"`      // Command used to open pages, empty for system default
	BrowserArgs []string `mapstructure:"browser_args"` // Extra arguments for Browser
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			BaseURL:   "https://openlibrary.org",
			CoversURL: "https://covers.openlibrary.org",
			Timeout:   15 * time.Second,
			UserAgent: "",
			RateLimit: 1,
		},
		Storage: StorageConfig{
			Path:      defaultDataPath(),
			Namespace: "book-finder-favorites",
		},
		Search: SearchConfig{
			DefaultMode:      "title",
			DropStaleResults: false,
		},
		UI: UIConfig{
			Theme:       "dark",
			BrowserArgs: []string{},
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// IsDark reports whether the configured theme is dark
func (c UIConfig) IsDark() bool {
	return !strings.EqualFold(strings.TrimSpace(c.Theme), "light")
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "bookfinder", "bookfinder.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "bookfinder", "bookfinder.log")
	}
}

// defaultDataPath returns the default favorites database path for the current OS
func defaultDataPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "bookfinder", "bookfinder.db")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "bookfinder", "bookfinder.db")
	}
}

// DefaultConfigDir returns the default config directory for the current OS
func DefaultConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "bookfinder")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "bookfinder")
	}
}

// newViper returns a viper instance seeded with defaults and env overrides.
// Every key is registered as a default so BOOKFINDER_* variables reach Unmarshal.
func newViper(defaults *Config) *viper.Viper {
	v := viper.New()

	v.SetDefault("catalog.base_url", defaults.Catalog.BaseURL)
	v.SetDefault("catalog.covers_url", defaults.Catalog.CoversURL)
	v.SetDefault("catalog.timeout", defaults.Catalog.Timeout)
	v.SetDefault("catalog.user_agent", defaults.Catalog.UserAgent)
	v.SetDefault("catalog.rate_limit", defaults.Catalog.RateLimit)
	v.SetDefault("storage.path", defaults.Storage.Path)
	v.SetDefault("storage.namespace", defaults.Storage.Namespace)
	v.SetDefault("search.default_mode", defaults.Search.DefaultMode)
	v.SetDefault("search.drop_stale_results", defaults.Search.DropStaleResults)
	v.SetDefault("ui.theme", defaults.UI.Theme)
	v.SetDefault("ui.browser", defaults.UI.Browser)
	v.SetDefault("ui.browser_args", defaults.UI.BrowserArgs)
	v.SetDefault("logging.file", defaults.Logging.File)
	v.SetDefault("logging.level", defaults.Logging.Level)

	// Environment variable overrides, e.g. BOOKFINDER_CATALOG_BASE_URL
	v.SetEnvPrefix("BOOKFINDER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// LoadConfig loads configuration from file and environment.
// An empty configFile searches the default config directory and the working directory.
func LoadConfig(configFile string) (*Config, error) {
	cfg := DefaultConfig()
	v := newViper(cfg)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(DefaultConfigDir())
		v.AddConfigPath(".")
	}

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// SaveConfig writes cfg as YAML to path, creating parent directories
func SaveConfig(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()

	v.Set("catalog.base_url", cfg.Catalog.BaseURL)
	v.Set("catalog.covers_url", cfg.Catalog.CoversURL)
	v.Set("catalog.timeout", cfg.Catalog.Timeout.String())
	v.Set("catalog.user_agent", cfg.Catalog.UserAgent)
	v.Set("catalog.rate_limit", cfg.Catalog.RateLimit)

	v.Set("storage.path", cfg.Storage.Path)
	v.Set("storage.namespace", cfg.Storage.Namespace)

	v.Set("search.default_mode", cfg.Search.DefaultMode)
	v.Set("search.drop_stale_results", cfg.Search.DropStaleResults)

	v.Set("ui.theme", cfg.UI.Theme)
	v.Set("ui.browser", cfg.UI.Browser)
	v.Set("ui.browser_args", cfg.UI.BrowserArgs)

	v.Set("logging.file", cfg.Logging.File)
	v.Set("logging.level", cfg.Logging.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
