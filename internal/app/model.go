// Package app is the Bubble Tea presentation layer. It renders the note
// collection's derived views and routes user intents into the note store
// and editing session; all state worth keeping lives in those two.
package app

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/notable/internal/config"
	"github.com/marcus/notable/internal/keymap"
	"github.com/marcus/notable/internal/markdown"
	"github.com/marcus/notable/internal/note"
	"github.com/marcus/notable/internal/session"
	"github.com/marcus/notable/internal/state"
	"github.com/marcus/notable/internal/ui"
)

// Editor field focus order.
const (
	fieldTitle = iota
	fieldTags
	fieldContent
	fieldCount
)

// Model is the root Bubble Tea model for the notable application.
type Model struct {
	cfg    *config.Config
	keymap *keymap.Registry
	store  *note.Store
	sess   *session.Session
	logger *slog.Logger

	width, height int

	// Browsing state
	cursor      int
	scrollOff   int
	searchMode  bool
	searchInput textinput.Model
	selectedTag string // empty = all tags

	// Preview state
	previewing bool
	previewID  string
	preview    viewport.Model
	mdRenderer *markdown.Renderer

	// Editor state
	titleInput  textinput.Model
	tagInput    textinput.Model
	contentArea textarea.Model
	editorFocus int

	// Delete confirmation
	confirm         *ui.ConfirmDialog
	pendingDeleteID string

	// Toast state
	toast    string
	toastErr bool
	toastID  int
}

// New creates the application model.
func New(cfg *config.Config, km *keymap.Registry, store *note.Store, sess *session.Session, logger *slog.Logger) *Model {
	if logger == nil {
		logger = slog.Default()
	}

	search := textinput.New()
	search.Placeholder = "search notes"
	search.Prompt = "/ "
	search.CharLimit = 0

	title := textinput.New()
	title.Placeholder = "title"
	title.Prompt = ""
	title.CharLimit = 0

	tag := textinput.New()
	tag.Placeholder = "add tag"
	tag.Prompt = "+ "
	tag.CharLimit = 0

	content := textarea.New()
	content.Placeholder = "write something"
	content.Prompt = ""
	content.CharLimit = 0
	content.ShowLineNumbers = false

	renderer, err := markdown.NewRenderer()
	if err != nil {
		logger.Warn("markdown renderer init failed", "error", err)
	}

	m := &Model{
		cfg:         cfg,
		keymap:      km,
		store:       store,
		sess:        sess,
		logger:      logger,
		mdRenderer:  renderer,
		searchInput: search,
		titleInput:  title,
		tagInput:    tag,
		contentArea: content,
	}
	m.restoreState()
	return m
}

// restoreState reapplies the filters and cursor position that were active
// when the app last exited. Stale values are dropped.
func (m *Model) restoreState() {
	st := state.Get()

	if st.SelectedTag != "" {
		for _, t := range note.AllTags(m.store.All()) {
			if t == st.SelectedTag {
				m.selectedTag = st.SelectedTag
				break
			}
		}
	}
	m.searchInput.SetValue(st.SearchQuery)

	if st.SelectedNoteID != "" {
		for i, n := range m.visible() {
			if n.ID == st.SelectedNoteID {
				m.cursor = i
				break
			}
		}
	}
}

// saveState persists the active filters and cursor position. Best-effort;
// failures are logged and ignored.
func (m *Model) saveState() {
	if err := state.SetFilters(m.selectedTag, m.searchInput.Value()); err != nil {
		m.logger.Warn("state save failed", "error", err)
		return
	}
	if n, ok := m.selectedNote(); ok {
		_ = state.SetSelectedNote(n.ID)
	} else {
		_ = state.SetSelectedNote("")
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// focusContext returns the keymap context for the current UI state.
func (m *Model) focusContext() string {
	switch {
	case m.confirm != nil:
		return "confirm-delete"
	case m.sess.Editing():
		return "editor"
	case m.previewing:
		return "viewer"
	case m.searchMode:
		return "search"
	default:
		return "list"
	}
}

// visible derives the display list from the store plus the current filter
// inputs. Recomputed on every call; the model caches nothing.
func (m *Model) visible() []note.Note {
	return note.Visible(m.store.All(), m.searchInput.Value(), m.selectedTag)
}

// selectedNote returns the note under the cursor, if any.
func (m *Model) selectedNote() (note.Note, bool) {
	visible := m.visible()
	if len(visible) == 0 || m.cursor < 0 || m.cursor >= len(visible) {
		return note.Note{}, false
	}
	return visible[m.cursor], true
}

// clampCursor keeps the cursor inside the visible list after the list or
// filters change.
func (m *Model) clampCursor() {
	n := len(m.visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.scrollOff > m.cursor {
		m.scrollOff = m.cursor
	}
}

// ensureCursorVisible adjusts the scroll offset for the given list height.
func (m *Model) ensureCursorVisible(listHeight int) {
	if listHeight < 1 {
		listHeight = 1
	}
	if m.cursor < m.scrollOff {
		m.scrollOff = m.cursor
	}
	if m.cursor >= m.scrollOff+listHeight {
		m.scrollOff = m.cursor - listHeight + 1
	}
}

// tagCycle returns the tag filter options: "" (all) followed by every tag
// in use.
func (m *Model) tagCycle() []string {
	return append([]string{""}, note.AllTags(m.store.All())...)
}

// cycleTag moves the selected tag through the cycle by delta (+1 or -1).
func (m *Model) cycleTag(delta int) {
	cycle := m.tagCycle()
	idx := 0
	for i, t := range cycle {
		if t == m.selectedTag {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(cycle)) % len(cycle)
	m.selectedTag = cycle[idx]
	m.cursor = 0
	m.scrollOff = 0
}

// openPreview renders the note as markdown into a scrollable viewport.
func (m *Model) openPreview(n note.Note) {
	m.previewing = true
	m.previewID = n.ID
	m.preview = viewport.New(m.width, m.previewHeight())
	m.preview.SetContent(m.renderPreview(n))
}

func (m *Model) closePreview() {
	m.previewing = false
	m.previewID = ""
}

func (m *Model) previewHeight() int {
	h := m.height - 3 // header, separator, footer
	if h < 1 {
		h = 1
	}
	return h
}

func (m *Model) renderPreview(n note.Note) string {
	if m.mdRenderer == nil {
		return n.Content
	}
	return m.mdRenderer.RenderContent(n.Content, m.width-2)
}

// refreshPreview re-renders after a resize. Closes the preview when the
// note has vanished underneath it.
func (m *Model) refreshPreview() {
	if !m.previewing {
		return
	}
	n, ok := m.store.Get(m.previewID)
	if !ok {
		m.closePreview()
		return
	}
	m.preview.Width = m.width
	m.preview.Height = m.previewHeight()
	m.preview.SetContent(m.renderPreview(n))
}

// openEditor initializes the editor widgets from the session draft and
// focuses the title field.
func (m *Model) openEditor() {
	d := m.sess.Draft()
	m.titleInput.SetValue(d.Title)
	m.contentArea.SetValue(d.Content)
	m.tagInput.SetValue("")
	m.editorFocus = fieldTitle
	m.applyEditorFocus()
	m.resizeEditor()
}

// syncDraft copies the editor widget values into the session draft.
// Title and content flow from the widgets only here; tags are reconciled
// live through session.AddTag/RemoveLastTag.
func (m *Model) syncDraft() {
	m.sess.SetTitle(m.titleInput.Value())
	m.sess.SetContent(m.contentArea.Value())
}

// closeEditor blurs all editor widgets after a save or cancel.
func (m *Model) closeEditor() {
	m.titleInput.Blur()
	m.tagInput.Blur()
	m.contentArea.Blur()
	m.clampCursor()
}

func (m *Model) applyEditorFocus() {
	m.titleInput.Blur()
	m.tagInput.Blur()
	m.contentArea.Blur()
	switch m.editorFocus {
	case fieldTitle:
		m.titleInput.Focus()
	case fieldTags:
		m.tagInput.Focus()
	case fieldContent:
		m.contentArea.Focus()
	}
}

func (m *Model) resizeEditor() {
	if m.width == 0 || m.height == 0 {
		return
	}
	innerWidth := m.width - 4
	if innerWidth < 1 {
		innerWidth = 1
	}
	m.titleInput.Width = innerWidth
	m.tagInput.Width = innerWidth
	m.contentArea.SetWidth(innerWidth)

	contentHeight := m.height - 8 // header, title, tags, footer, padding
	if contentHeight < 3 {
		contentHeight = 3
	}
	m.contentArea.SetHeight(contentHeight)
}
