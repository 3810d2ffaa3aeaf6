package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestNewConfirmDialog(t *testing.T) {
	d := NewConfirmDialog("Delete note?", "This cannot be undone.")

	if d.Title != "Delete note?" {
		t.Errorf("expected title 'Delete note?', got %q", d.Title)
	}
	if d.Message != "This cannot be undone." {
		t.Errorf("expected message, got %q", d.Message)
	}
	if d.ConfirmLabel != " Confirm " || d.CancelLabel != " Cancel " {
		t.Errorf("unexpected default labels %q / %q", d.ConfirmLabel, d.CancelLabel)
	}
}

func TestConfirmDialogDefaultsToCancel(t *testing.T) {
	d := NewConfirmDialog("Delete?", "Sure?")

	// Enter without moving focus must not confirm a destructive action.
	if got := d.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}); got != "cancel" {
		t.Errorf("enter on fresh dialog = %q, want cancel", got)
	}
}

func TestConfirmDialogFocusSwitch(t *testing.T) {
	d := NewConfirmDialog("Delete?", "Sure?")

	d.HandleKey(tea.KeyMsg{Type: tea.KeyTab})
	if got := d.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}); got != "confirm" {
		t.Errorf("enter after tab = %q, want confirm", got)
	}
}

func TestConfirmDialogShortcuts(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"y", "confirm"},
		{"n", "cancel"},
		{"q", "cancel"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			d := NewConfirmDialog("Delete?", "Sure?")
			got := d.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(tt.key)})
			if got != tt.want {
				t.Errorf("key %q = %q, want %q", tt.key, got, tt.want)
			}
		})
	}

	d := NewConfirmDialog("Delete?", "Sure?")
	if got := d.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}); got != "cancel" {
		t.Errorf("esc = %q, want cancel", got)
	}
}

func TestConfirmDialogView(t *testing.T) {
	d := NewConfirmDialog("Delete note?", "Groceries")
	d.ConfirmLabel = " Delete "

	out := d.View(80, 24)
	if !strings.Contains(out, "Delete note?") {
		t.Error("view should contain title")
	}
	if !strings.Contains(out, "Groceries") {
		t.Error("view should contain message")
	}
	if !strings.Contains(out, "Delete") || !strings.Contains(out, "Cancel") {
		t.Error("view should contain both button labels")
	}
}
