// Package config loads the application configuration from a JSON file.
package config

import (
	"os"
	"path/filepath"
)

// Config is the root configuration structure.
type Config struct {
	Data   DataConfig   `json:"data"`
	UI     UIConfig     `json:"ui"`
	Keymap KeymapConfig `json:"keymap"`
}

// DataConfig configures where notes are stored.
type DataConfig struct {
	// Path is the SQLite database file holding the note collection.
	// Supports ~ expansion.
	Path string `json:"path"`
}

// UIConfig configures UI behavior.
type UIConfig struct {
	ShowFooter    bool `json:"showFooter"`
	ConfirmDelete bool `json:"confirmDelete"`
}

// KeymapConfig holds key binding overrides.
type KeymapConfig struct {
	Overrides map[string]string `json:"overrides"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			Path: "~/.local/share/notable/notes.db",
		},
		UI: UIConfig{
			ShowFooter:    true,
			ConfirmDelete: true,
		},
	}
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
