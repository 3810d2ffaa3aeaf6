// Package markdown renders note content for terminal display using glamour.
package markdown

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// Renderer renders markdown wrapped to a target width. The underlying
// glamour renderer is rebuilt when the width changes.
type Renderer struct {
	mu    sync.Mutex
	width int
	tr    *glamour.TermRenderer
}

// NewRenderer creates a markdown renderer.
func NewRenderer() (*Renderer, error) {
	return &Renderer{}, nil
}

// RenderContent renders markdown wrapped to width. On render failure the
// raw content comes back unchanged, so the caller always has something to
// show.
func (r *Renderer) RenderContent(content string, width int) string {
	if width < 1 {
		width = 80
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.tr == nil || r.width != width {
		tr, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return content
		}
		r.tr = tr
		r.width = width
	}

	out, err := r.tr.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(out, "\n")
}
