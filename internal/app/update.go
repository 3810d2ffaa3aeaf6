package app

import (
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/notable/internal/msg"
	"github.com/marcus/notable/internal/session"
	"github.com/marcus/notable/internal/styles"
	"github.com/marcus/notable/internal/ui"
)

const toastDuration = 2 * time.Second

// Update implements tea.Model. Every store mutation runs to completion,
// persistence included, before the next message is processed.
func (m *Model) Update(teaMsg tea.Msg) (tea.Model, tea.Cmd) {
	switch teaMsg := teaMsg.(type) {
	case tea.WindowSizeMsg:
		m.width = teaMsg.Width
		m.height = teaMsg.Height
		m.resizeEditor()
		m.refreshPreview()
		return m, nil

	case msg.ToastMsg:
		m.toastID++
		m.toast = teaMsg.Message
		m.toastErr = teaMsg.IsError
		id := m.toastID
		return m, tea.Tick(teaMsg.Duration, func(time.Time) tea.Msg {
			return msg.ClearToastMsg{ID: id}
		})

	case msg.ClearToastMsg:
		if teaMsg.ID == m.toastID {
			m.toast = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(teaMsg)
	}

	return m, nil
}

// handleKey routes keyboard input by focus context.
func (m *Model) handleKey(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global bindings apply everywhere except inside the confirm dialog.
	if m.confirm == nil && m.keymap.Resolve("global", keyMsg.String()) == "quit" && keyMsg.String() == "ctrl+c" {
		m.saveState()
		return m, tea.Quit
	}

	if m.confirm != nil {
		return m.handleConfirmKey(keyMsg)
	}
	if m.sess.Editing() {
		return m.handleEditorKey(keyMsg)
	}
	if m.previewing {
		return m.handleViewerKey(keyMsg)
	}
	if m.searchMode {
		return m.handleSearchKey(keyMsg)
	}
	return m.handleListKey(keyMsg)
}

// handleConfirmKey drives the delete confirmation dialog.
func (m *Model) handleConfirmKey(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.confirm.HandleKey(keyMsg) {
	case "confirm":
		id := m.pendingDeleteID
		m.confirm = nil
		m.pendingDeleteID = ""
		return m, m.deleteNote(id)
	case "cancel":
		m.confirm = nil
		m.pendingDeleteID = ""
	}
	return m, nil
}

// handleListKey processes keyboard input while browsing.
func (m *Model) handleListKey(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keymap.Resolve("list", keyMsg.String()) {
	case "quit":
		m.saveState()
		return m, tea.Quit

	case "cursor-down":
		if m.cursor < len(m.visible())-1 {
			m.cursor++
		}
		m.ensureCursorVisible(m.listHeight())

	case "cursor-up":
		if m.cursor > 0 {
			m.cursor--
		}
		m.ensureCursorVisible(m.listHeight())

	case "cursor-top":
		m.cursor = 0
		m.scrollOff = 0

	case "cursor-bottom":
		if n := len(m.visible()); n > 0 {
			m.cursor = n - 1
		}
		m.ensureCursorVisible(m.listHeight())

	case "new-note":
		m.sess.StartCreate()
		m.openEditor()
		return m, m.titleInput.Focus()

	case "view-note":
		if n, ok := m.selectedNote(); ok {
			m.openPreview(n)
		}

	case "edit-note":
		if n, ok := m.selectedNote(); ok {
			m.sess.StartEdit(n)
			m.openEditor()
			return m, m.titleInput.Focus()
		}

	case "delete-note":
		if n, ok := m.selectedNote(); !ok {
			return m, nil
		} else if !m.cfg.UI.ConfirmDelete {
			return m, m.deleteNote(n.ID)
		} else {
			dialog := ui.NewConfirmDialog("Delete note?", listTitle(n))
			dialog.ConfirmLabel = " Delete "
			dialog.BorderColor = styles.Error
			m.confirm = dialog
			m.pendingDeleteID = n.ID
		}

	case "search":
		m.searchMode = true
		return m, m.searchInput.Focus()

	case "next-tag":
		m.cycleTag(1)

	case "prev-tag":
		m.cycleTag(-1)

	case "yank-content":
		if n, ok := m.selectedNote(); ok {
			if err := clipboard.WriteAll(n.Content); err != nil {
				return m, msg.ShowErrorToast("Copy failed: "+err.Error(), toastDuration)
			}
			return m, msg.ShowToast("Copied note content", toastDuration)
		}

	case "clear-filters":
		m.searchInput.SetValue("")
		m.selectedTag = ""
		m.cursor = 0
		m.scrollOff = 0
	}

	return m, nil
}

// handleViewerKey processes keyboard input while previewing a note.
// Unbound keys scroll the viewport.
func (m *Model) handleViewerKey(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keymap.Resolve("viewer", keyMsg.String()) {
	case "viewer-close":
		m.closePreview()
		return m, nil

	case "edit-note":
		if n, ok := m.store.Get(m.previewID); ok {
			m.closePreview()
			m.sess.StartEdit(n)
			m.openEditor()
			return m, m.titleInput.Focus()
		}
		m.closePreview()
		return m, nil

	case "yank-content":
		if n, ok := m.store.Get(m.previewID); ok {
			if err := clipboard.WriteAll(n.Content); err != nil {
				return m, msg.ShowErrorToast("Copy failed: "+err.Error(), toastDuration)
			}
			return m, msg.ShowToast("Copied note content", toastDuration)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.preview, cmd = m.preview.Update(keyMsg)
	return m, cmd
}

// handleSearchKey processes keyboard input while the search input is focused.
// The visible list filters live as the query changes.
func (m *Model) handleSearchKey(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if keyMsg.Type != tea.KeyRunes {
		switch m.keymap.Resolve("search", keyMsg.String()) {
		case "search-cancel":
			m.searchMode = false
			m.searchInput.SetValue("")
			m.searchInput.Blur()
			m.cursor = 0
			m.scrollOff = 0
			return m, nil
		case "search-accept":
			// Keep the query active, return focus to the list.
			m.searchMode = false
			m.searchInput.Blur()
			m.clampCursor()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(keyMsg)
	m.cursor = 0
	m.scrollOff = 0
	return m, cmd
}

// handleEditorKey processes keyboard input while editing a draft.
func (m *Model) handleEditorKey(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if keyMsg.Type != tea.KeyRunes {
		switch m.keymap.Resolve("editor", keyMsg.String()) {
		case "cancel-edit":
			m.sess.Cancel()
			m.closeEditor()
			return m, nil

		case "save-note":
			return m, m.saveDraft()

		case "next-field":
			m.editorFocus = (m.editorFocus + 1) % fieldCount
			m.applyEditorFocus()
			return m, nil

		case "prev-field":
			m.editorFocus = (m.editorFocus + fieldCount - 1) % fieldCount
			m.applyEditorFocus()
			return m, nil
		}

		// Field-specific keys that aren't in the keymap.
		if m.editorFocus == fieldTags {
			switch keyMsg.String() {
			case "enter":
				m.sess.SetTagInput(m.tagInput.Value())
				m.sess.AddTag()
				m.tagInput.SetValue(m.sess.Draft().TagInput)
				return m, nil
			case "backspace":
				if m.tagInput.Value() == "" {
					m.sess.RemoveLastTag()
					return m, nil
				}
			}
		}
		if m.editorFocus == fieldTitle && keyMsg.String() == "enter" {
			m.editorFocus = fieldTags
			m.applyEditorFocus()
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.editorFocus {
	case fieldTitle:
		m.titleInput, cmd = m.titleInput.Update(keyMsg)
	case fieldTags:
		m.tagInput, cmd = m.tagInput.Update(keyMsg)
	case fieldContent:
		m.contentArea, cmd = m.contentArea.Update(keyMsg)
	}
	return m, cmd
}

// saveDraft reconciles the draft into the store and returns to browsing.
// Blank drafts are dropped silently; the editor closes either way.
func (m *Model) saveDraft() tea.Cmd {
	m.syncDraft()
	blank := isDraftBlank(m.sess.Draft())

	if err := m.saveSession(); err != nil {
		m.logger.Error("save failed", "error", err)
		return msg.ShowErrorToast("Save failed: "+err.Error(), toastDuration)
	}

	m.closeEditor()
	if blank {
		return nil
	}
	return msg.ShowToast("Saved", toastDuration)
}

// saveSession runs session.Save; kept separate so tests can exercise the
// error path through the model.
func (m *Model) saveSession() error {
	return m.sess.Save()
}

// deleteNote removes a note through the session. The confirmation already
// happened in the dialog (or was disabled in config), so the session gets
// an always-yes confirmer.
func (m *Model) deleteNote(id string) tea.Cmd {
	yes := session.ConfirmFunc(func(string) bool { return true })
	if err := m.sess.Delete(id, yes); err != nil {
		m.logger.Error("delete failed", "error", err)
		return msg.ShowErrorToast("Delete failed: "+err.Error(), toastDuration)
	}
	m.clampCursor()
	return msg.ShowToast("Deleted", toastDuration)
}

func isDraftBlank(d session.Draft) bool {
	return strings.TrimSpace(d.Title) == "" && strings.TrimSpace(d.Content) == ""
}
