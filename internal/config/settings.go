package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Settings holds user preferences loaded from config.toml.
type Settings struct {
	FPS      int    `toml:"fps"`
	Preset   string `toml:"preset"`
	Database string `toml:"database"`
	AutoStop bool   `toml:"auto_stop"`

	Log LogSettings `toml:"log"`
}

// LogSettings controls zerolog output.
type LogSettings struct {
	Debug bool   `toml:"debug"`
	File  string `toml:"file"`
}

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() Settings {
	return Settings{
		FPS:      TargetFPS,
		AutoStop: false,
	}
}

// DataDir returns the application data directory (~/.config/breathe).
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home dir: %w", err)
	}
	return filepath.Join(home, AppDataDir), nil
}

// EnsureDataDir returns the data directory, creating it if needed.
func EnsureDataDir() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", fmt.Errorf("create data dir: %w", err)
	}
	return dir, nil
}

// ResolvePath picks the config file to load: the explicit path if given,
// then ./breathe.toml, then the data directory. Returns "" when none exist.
func ResolvePath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat("breathe.toml"); err == nil {
		return "breathe.toml"
	}
	dir, err := DataDir()
	if err != nil {
		return ""
	}
	p := filepath.Join(dir, "config.toml")
	if _, err := os.Stat(p); err == nil {
		return p
	}
	return ""
}

// Load reads settings from path on top of the defaults. An empty path or a
// missing file yields the defaults.
func Load(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}

	if _, err := toml.DecodeFile(path, &s); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultSettings(), nil
		}
		return s, fmt.Errorf("decode %s: %w", path, err)
	}

	if s.FPS <= 0 {
		s.FPS = TargetFPS
	}
	return s, nil
}

// DatabasePath returns the preset database location, defaulting to
// presets.db inside the data directory.
func (s Settings) DatabasePath() (string, error) {
	if s.Database != "" {
		return s.Database, nil
	}
	dir, err := EnsureDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "presets.db"), nil
}
