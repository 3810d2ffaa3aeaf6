package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	configDir  = ".config/notable"
	configFile = "config.json"
)

// rawConfig is the JSON-unmarshaling intermediary. Pointer fields
// distinguish "absent" from zero values so defaults survive a sparse file.
type rawConfig struct {
	Data   rawDataConfig `json:"data"`
	UI     rawUIConfig   `json:"ui"`
	Keymap KeymapConfig  `json:"keymap"`
}

type rawDataConfig struct {
	Path string `json:"path"`
}

type rawUIConfig struct {
	ShowFooter    *bool `json:"showFooter"`
	ConfirmDelete *bool `json:"confirmDelete"`
}

// Load loads configuration from the default location.
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom loads configuration from a specific path.
// If path is empty, uses ~/.config/notable/config.json
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil // Return defaults on error
		}
		path = filepath.Join(home, configDir, configFile)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	var raw rawConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	// Merge raw config into defaults
	if raw.Data.Path != "" {
		cfg.Data.Path = raw.Data.Path
	}
	if raw.UI.ShowFooter != nil {
		cfg.UI.ShowFooter = *raw.UI.ShowFooter
	}
	if raw.UI.ConfirmDelete != nil {
		cfg.UI.ConfirmDelete = *raw.UI.ConfirmDelete
	}
	if raw.Keymap.Overrides != nil {
		cfg.Keymap.Overrides = raw.Keymap.Overrides
	}

	return cfg, nil
}
