// Package ui provides small reusable view components.
package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/notable/internal/styles"
)

// ConfirmDialog is a blocking yes/no dialog. It owns its focus state; the
// caller renders it over the main view and feeds it key messages until
// HandleKey returns a decision.
type ConfirmDialog struct {
	Title        string
	Message      string
	ConfirmLabel string // e.g., " Delete ", " Yes "
	CancelLabel  string // e.g., " Cancel ", " No "
	BorderColor  lipgloss.Color
	Width        int

	focusConfirm bool
}

// NewConfirmDialog creates a dialog with sensible defaults. Focus starts on
// Cancel so a stray Enter is harmless.
func NewConfirmDialog(title, message string) *ConfirmDialog {
	return &ConfirmDialog{
		Title:        title,
		Message:      message,
		ConfirmLabel: " Confirm ",
		CancelLabel:  " Cancel ",
		BorderColor:  styles.Primary,
		Width:        50,
	}
}

// HandleKey processes keyboard input. It returns "confirm" or "cancel" when
// the user decides, empty string while the dialog stays open.
func (d *ConfirmDialog) HandleKey(msg tea.KeyMsg) string {
	switch msg.String() {
	case "esc", "q", "n":
		return "cancel"
	case "y":
		return "confirm"
	case "tab", "shift+tab", "left", "right", "h", "l":
		d.focusConfirm = !d.focusConfirm
		return ""
	case "enter":
		if d.focusConfirm {
			return "confirm"
		}
		return "cancel"
	}
	return ""
}

// View renders the dialog centered in the given area.
func (d *ConfirmDialog) View(width, height int) string {
	confirmStyle := styles.Muted
	cancelStyle := styles.Muted
	if d.focusConfirm {
		confirmStyle = styles.Selected
	} else {
		cancelStyle = styles.Selected
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Center,
		confirmStyle.Render(d.ConfirmLabel),
		"  ",
		cancelStyle.Render(d.CancelLabel),
	)

	body := strings.Join([]string{
		styles.Title.Render(d.Title),
		"",
		d.Message,
		"",
		buttons,
	}, "\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(d.BorderColor).
		Padding(1, 2).
		Width(d.Width).
		Align(lipgloss.Center).
		Render(body)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
