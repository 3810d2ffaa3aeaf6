package keymap

// DefaultBindings returns the default key bindings.
func DefaultBindings() []Binding {
	return []Binding{
		// Global bindings
		{Key: "ctrl+c", Command: "quit", Context: "global"},

		// Browsing context (note list)
		{Key: "q", Command: "quit", Context: "list"},
		{Key: "j", Command: "cursor-down", Context: "list"},
		{Key: "down", Command: "cursor-down", Context: "list"},
		{Key: "k", Command: "cursor-up", Context: "list"},
		{Key: "up", Command: "cursor-up", Context: "list"},
		{Key: "g", Command: "cursor-top", Context: "list"},
		{Key: "G", Command: "cursor-bottom", Context: "list"},
		{Key: "n", Command: "new-note", Context: "list"},
		{Key: "enter", Command: "view-note", Context: "list"},
		{Key: "e", Command: "edit-note", Context: "list"},
		{Key: "x", Command: "delete-note", Context: "list"},
		{Key: "/", Command: "search", Context: "list"},
		{Key: "t", Command: "next-tag", Context: "list"},
		{Key: "T", Command: "prev-tag", Context: "list"},
		{Key: "y", Command: "yank-content", Context: "list"},
		{Key: "esc", Command: "clear-filters", Context: "list"},

		// Search context (search input focused)
		{Key: "esc", Command: "search-cancel", Context: "search"},
		{Key: "enter", Command: "search-accept", Context: "search"},

		// Viewer context (read-only note preview)
		{Key: "esc", Command: "viewer-close", Context: "viewer"},
		{Key: "q", Command: "viewer-close", Context: "viewer"},
		{Key: "e", Command: "edit-note", Context: "viewer"},
		{Key: "y", Command: "yank-content", Context: "viewer"},

		// Editor context
		{Key: "esc", Command: "cancel-edit", Context: "editor"},
		{Key: "ctrl+s", Command: "save-note", Context: "editor"},
		{Key: "tab", Command: "next-field", Context: "editor"},
		{Key: "shift+tab", Command: "prev-field", Context: "editor"},
	}
}

// RegisterDefaults registers all default bindings with the registry.
func RegisterDefaults(r *Registry) {
	for _, b := range DefaultBindings() {
		r.RegisterBinding(b)
	}
}
