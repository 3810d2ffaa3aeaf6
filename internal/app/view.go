package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/marcus/notable/internal/note"
	"github.com/marcus/notable/internal/styles"
)

// Fixed chrome rows around the note list: header, search line, tag bar,
// toast line.
const listChrome = 4

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.confirm != nil {
		return m.confirm.View(m.width, m.height)
	}

	var content string
	switch {
	case m.sess.Editing():
		content = m.viewEditor()
	case m.previewing:
		content = m.viewPreview()
	default:
		content = m.viewList()
	}

	// Constrain output to the terminal size
	return lipgloss.NewStyle().Width(m.width).Height(m.height).MaxHeight(m.height).Render(content)
}

// listHeight returns the number of rows available for note entries.
func (m *Model) listHeight() int {
	h := m.height - listChrome
	if m.cfg.UI.ShowFooter {
		h--
	}
	if h < 1 {
		h = 1
	}
	return h
}

func (m *Model) viewList() string {
	var b strings.Builder

	visible := m.visible()

	header := styles.Title.Render("Notes")
	count := styles.Muted.Render(fmt.Sprintf(" %d/%d", len(visible), m.store.Len()))
	b.WriteString(header + count + "\n")

	b.WriteString(m.renderSearchLine() + "\n")
	b.WriteString(m.renderTagBar() + "\n")

	listHeight := m.listHeight()
	switch {
	case m.store.Len() == 0:
		b.WriteString(styles.Muted.Render("No notes yet. Press n to create one.") + "\n")
	case len(visible) == 0:
		b.WriteString(styles.Muted.Render("No notes match the current filters.") + "\n")
	default:
		end := m.scrollOff + listHeight
		if end > len(visible) {
			end = len(visible)
		}
		for i := m.scrollOff; i < end; i++ {
			b.WriteString(m.renderNoteRow(visible[i], i == m.cursor) + "\n")
		}
	}

	b.WriteString(m.renderToast())
	if m.cfg.UI.ShowFooter {
		b.WriteString("\n" + m.renderListFooter())
	}

	return b.String()
}

// renderSearchLine shows the live search input while searching, or the
// accepted query when one is active.
func (m *Model) renderSearchLine() string {
	if m.searchMode {
		return styles.SearchPrompt.Render(m.searchInput.View())
	}
	if q := m.searchInput.Value(); q != "" {
		return styles.SearchPrompt.Render("/ " + q)
	}
	return ""
}

// renderTagBar shows the tag filter cycle with the active entry highlighted.
func (m *Model) renderTagBar() string {
	parts := make([]string, 0, 8)
	for _, t := range m.tagCycle() {
		label := t
		if t == "" {
			label = "all"
		}
		if t == m.selectedTag {
			parts = append(parts, styles.TagSelected.Render(label))
		} else {
			parts = append(parts, styles.Tag.Render(label))
		}
	}
	return strings.Join(parts, " ")
}

func (m *Model) renderNoteRow(n note.Note, selected bool) string {
	marker := "  "
	if selected {
		marker = "▸ "
	}

	timeStr := formatRelativeTime(n.UpdatedAt)
	tagStr := ""
	if len(n.Tags) > 0 {
		tagStr = " #" + strings.Join(n.Tags, " #")
	}

	// Title gets whatever width the meta columns leave over.
	avail := m.width - runewidth.StringWidth(marker) - runewidth.StringWidth(tagStr) - runewidth.StringWidth(timeStr) - 2
	if avail < 8 {
		avail = 8
	}
	title := runewidth.Truncate(listTitle(n), avail, "…")

	pad := m.width - runewidth.StringWidth(marker) - runewidth.StringWidth(title) - runewidth.StringWidth(tagStr) - runewidth.StringWidth(timeStr)
	if pad < 1 {
		pad = 1
	}

	row := marker + title + styles.Muted.Render(tagStr) + strings.Repeat(" ", pad) + styles.Muted.Render(timeStr)
	if selected {
		return styles.Selected.Render(marker+title+tagStr) + strings.Repeat(" ", pad) + styles.Muted.Render(timeStr)
	}
	return row
}

func (m *Model) renderToast() string {
	if m.toast == "" {
		return ""
	}
	if m.toastErr {
		return styles.ToastError.Render(m.toast)
	}
	return styles.ToastSuccess.Render(m.toast)
}

func (m *Model) renderListFooter() string {
	hints := "n new · enter view · e edit · x delete · / search · t tag · y yank · q quit"
	return styles.FooterHint.Render(hints)
}

func (m *Model) viewPreview() string {
	n, ok := m.store.Get(m.previewID)
	if !ok {
		return styles.Muted.Render("Note no longer exists.")
	}

	var b strings.Builder
	header := styles.Title.Render(listTitle(n))
	meta := styles.Muted.Render(" " + formatRelativeTime(n.UpdatedAt))
	if len(n.Tags) > 0 {
		meta += styles.Muted.Render(" #" + strings.Join(n.Tags, " #"))
	}
	b.WriteString(header + meta + "\n\n")
	b.WriteString(m.preview.View())

	if m.cfg.UI.ShowFooter {
		b.WriteString("\n" + styles.FooterHint.Render("e edit · y yank · j/k scroll · esc back"))
	}
	return b.String()
}

func (m *Model) viewEditor() string {
	var b strings.Builder

	action := "New note"
	if m.sess.Draft().NoteID != "" {
		action = "Edit note"
	}
	b.WriteString(styles.Title.Render(action) + "\n\n")

	b.WriteString(m.renderField("Title", m.titleInput.View(), m.editorFocus == fieldTitle) + "\n")
	b.WriteString(m.renderField("Tags", m.renderTagField(), m.editorFocus == fieldTags) + "\n")
	b.WriteString(m.renderField("Content", m.contentArea.View(), m.editorFocus == fieldContent) + "\n")

	b.WriteString(m.renderToast())
	if m.cfg.UI.ShowFooter {
		b.WriteString("\n" + styles.FooterHint.Render("ctrl+s save · esc cancel · tab next field"))
	}

	return b.String()
}

// renderTagField shows the draft's committed tags as chips ahead of the
// live tag input.
func (m *Model) renderTagField() string {
	var parts []string
	for _, t := range m.sess.Draft().Tags {
		parts = append(parts, styles.Tag.Render(t))
	}
	parts = append(parts, m.tagInput.View())
	return strings.Join(parts, " ")
}

func (m *Model) renderField(label, body string, focused bool) string {
	style := styles.InactivePanel
	if focused {
		style = styles.ActivePanel
	}
	labelLine := styles.Muted.Render(label)
	return labelLine + "\n" + style.Width(m.width-2).Render(body)
}

// listTitle returns the display title for a note: the title field, or the
// first non-empty content line when the title is blank.
func listTitle(n note.Note) string {
	if t := strings.TrimSpace(n.Title); t != "" {
		return t
	}
	for _, line := range strings.Split(n.Content, "\n") {
		if l := strings.TrimSpace(line); l != "" {
			return l
		}
	}
	return "(untitled)"
}

// formatRelativeTime formats a time as relative (e.g., "3m", "2h").
func formatRelativeTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "now"
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	}
}
