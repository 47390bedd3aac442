package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/planstack/internal/domain"
	toml "github.com/pelletier/go-toml/v2"
)

const appDirName = ".planstack"

// Config holds all planstack settings. Values come from DefaultConfig,
// then the TOML file, then environment variables.
type Config struct {
	Catalog    CatalogConfig    `toml:"catalog"`
	Navigation NavigationConfig `toml:"navigation"`
	Logging    LoggingConfig    `toml:"logging"`
}

type CatalogConfig struct {
	// DB is the SQLite catalog path. Empty selects the built-in catalog.
	DB string `toml:"db"`
}

type NavigationConfig struct {
	// Start lists the screens the stack is seeded with, e.g. ["plan:0"].
	Start []string `toml:"start"`
}

type LoggingConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// DefaultConfig returns a Config using the built-in catalog, an empty
// starting stack and no log file.
func DefaultConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: "info"},
	}
}

// Path returns the config file location: $PLANSTACK_CONFIG, or
// ~/.planstack/config.toml.
func Path() (string, error) {
	if v := strings.TrimSpace(os.Getenv("PLANSTACK_CONFIG")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, appDirName, "config.toml"), nil
}

// Load reads the config file, if present, and applies env overrides.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Config{}, err
	}
	cfg, err := loadFromPath(path)
	if err != nil {
		return Config{}, err
	}
	applyEnv(&cfg)
	return cfg, nil
}

func loadFromPath(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv("PLANSTACK_DB"); ok {
		cfg.Catalog.DB = v
	}
	if v, ok := os.LookupEnv("PLANSTACK_START"); ok {
		cfg.Navigation.Start = strings.Split(v, ",")
	}
	if v := os.Getenv("PLANSTACK_LOG_FILE"); v != "" {
		cfg.Logging.File = v
	}
	if v := os.Getenv("PLANSTACK_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

// CatalogPath returns the SQLite catalog path with "~/" expanded.
// Empty means the built-in catalog.
func (c Config) CatalogPath() (string, error) {
	return expandHome(strings.TrimSpace(c.Catalog.DB))
}

// StartScreens parses the configured starting stack.
func (c Config) StartScreens() ([]domain.Screen, error) {
	screens, err := domain.ParseScreens(strings.Join(c.Navigation.Start, ","))
	if err != nil {
		return nil, fmt.Errorf("navigation.start: %w", err)
	}
	return screens, nil
}

// LogLevel maps logging.level onto slog. Unknown values fall back to info.
func (c Config) LogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.Logging.Level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LogPath returns the log file path with "~/" expanded. Empty disables logging.
func (c Config) LogPath() (string, error) {
	return expandHome(strings.TrimSpace(c.Logging.File))
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
