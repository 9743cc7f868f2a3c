// Package config resolves application settings from, in increasing
// priority: built-in defaults, the YAML config file, a .env file, and
// PATHWISE_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Store backend names.
const (
	StoreFile   = "file"
	StoreSQLite = "sqlite"
)

// Config holds application-level settings. LLM provider configuration
// lives in the llm package; this only carries what the rest of the app
// needs.
type Config struct {
	// DataDir is where profiles (and the SQLite database) live.
	DataDir string `yaml:"data_dir"`

	// Store selects the profile backend: "file" or "sqlite".
	Store string `yaml:"store"`

	// DefaultUser is the user id assumed when none is given.
	DefaultUser string `yaml:"default_user"`

	Search struct {
		// TavilyAPIKey enables live web search. Empty means the
		// curated fallback table is used.
		TavilyAPIKey string `yaml:"tavily_api_key"`
	} `yaml:"search"`
}

// Default returns the built-in defaults.
func Default() Config {
	cfg := Config{
		Store:       StoreFile,
		DefaultUser: "default_user",
	}
	if dir, err := defaultDataDir(); err == nil {
		cfg.DataDir = dir
	}
	return cfg
}

// Load resolves the full configuration. A missing config file or .env
// file is not an error; explicit paths that fail to parse are.
func Load(path string) (Config, error) {
	// .env first so the env overlay below sees its values.
	_ = godotenv.Load()

	cfg := Default()

	if path == "" {
		path = defaultConfigPath()
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// Defaults apply.
	default:
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg = cfg.fromEnv()

	if cfg.Store != StoreFile && cfg.Store != StoreSQLite {
		return cfg, fmt.Errorf("unknown store backend %q (want %q or %q)", cfg.Store, StoreFile, StoreSQLite)
	}
	return cfg, nil
}

func (c Config) fromEnv() Config {
	if v := os.Getenv("PATHWISE_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("PATHWISE_STORE"); v != "" {
		c.Store = v
	}
	if v := os.Getenv("PATHWISE_USER"); v != "" {
		c.DefaultUser = v
	}
	if v := os.Getenv("TAVILY_API_KEY"); v != "" {
		c.Search.TavilyAPIKey = v
	}
	return c
}

// ProfilesDir is where the file store keeps per-user JSON documents.
func (c Config) ProfilesDir() string {
	return filepath.Join(c.DataDir, "user_profiles")
}

// DBPath is the SQLite database location for the sqlite store.
func (c Config) DBPath() string {
	return filepath.Join(c.DataDir, "pathwise.db")
}

// defaultDataDir resolves $XDG_DATA_HOME/pathwise, falling back to
// ~/.local/share/pathwise.
func defaultDataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "pathwise"), nil
}

func defaultConfigPath() string {
	cfgHome := os.Getenv("XDG_CONFIG_HOME")
	if cfgHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		cfgHome = filepath.Join(home, ".config")
	}
	return filepath.Join(cfgHome, "pathwise", "config.yaml")
}
