// Package file persists extractor configuration as a TOML file in the
// user's config directory.
package file

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the persisted extractor settings. Command-line flags
// override file values.
type Config struct {
	// OutputDir is where text reports are written.
	OutputDir string `toml:"output_dir"`

	// Database is an optional SQLite export path. Empty disables the
	// export.
	Database string `toml:"database"`

	// Verbose enables debug logging by default.
	Verbose bool `toml:"verbose"`
}

// defaults returns the configuration used when no file exists.
func defaults() *Config {
	return &Config{OutputDir: "results"}
}

// Store is a TOML-file backed configuration store.
type Store struct {
	path string
}

// NewStore creates a config store rooted at configDir. If configDir is
// empty, defaults to ~/.aiondata.
func NewStore(configDir string) (*Store, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".aiondata")
	}

	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return nil, err
	}

	return &Store{path: filepath.Join(configDir, "config.toml")}, nil
}

// Path returns the config file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the configuration, returning defaults when the file does
// not exist.
func (s *Store) Load() (*Config, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaults(), nil
		}
		return nil, err
	}

	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration.
func (s *Store) Save(cfg *Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}
