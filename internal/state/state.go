// Package state persists lightweight UI state between runs: the filters
// that were active when the app exited. It is best-effort; a missing or
// unreadable state file falls back to defaults.
package state

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// State holds the persisted UI state.
type State struct {
	SelectedTag    string `json:"selectedTag,omitempty"`    // Active tag filter
	SearchQuery    string `json:"searchQuery,omitempty"`    // Active search query
	SelectedNoteID string `json:"selectedNoteId,omitempty"` // Note under the cursor
}

var (
	current *State
	mu      sync.RWMutex
	path    string
)

// Init loads state from the default location.
func Init() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	return InitWithDir(filepath.Join(home, ".config", "notable"))
}

// InitWithDir loads state from a specified directory.
// This is primarily for testing to avoid reading real user state.
func InitWithDir(dir string) error {
	path = filepath.Join(dir, "state.json")
	return Load()
}

// Load reads state from disk.
func Load() error {
	mu.Lock()
	defer mu.Unlock()

	current = &State{}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil // no state file yet, use defaults
	}
	if err != nil {
		return err
	}

	return json.Unmarshal(data, current)
}

// Save writes state to disk.
func Save() error {
	mu.RLock()
	defer mu.RUnlock()

	if current == nil {
		return nil
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(current, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Get returns a copy of the current state.
func Get() State {
	mu.RLock()
	defer mu.RUnlock()
	if current == nil {
		return State{}
	}
	return *current
}

// SetFilters saves the active tag and search filters.
func SetFilters(tag, query string) error {
	mu.Lock()
	if current == nil {
		current = &State{}
	}
	current.SelectedTag = tag
	current.SearchQuery = query
	mu.Unlock()
	return Save()
}

// SetSelectedNote saves the ID of the note under the cursor.
func SetSelectedNote(id string) error {
	mu.Lock()
	if current == nil {
		current = &State{}
	}
	current.SelectedNoteID = id
	mu.Unlock()
	return Save()
}
