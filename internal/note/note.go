// Package note holds the canonical note collection: the Note model, the
// store that owns all mutations, the wire codec for the persisted blob, and
// the pure query functions that derive the visible list and tag set.
package note

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"
)

// Note represents a single note.
type Note struct {
	ID        string
	Title     string
	Content   string
	Tags      []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// generateID creates a new note ID with "nt-" prefix and 8 hex chars.
func generateID() (string, error) {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return "nt-" + hex.EncodeToString(b), nil
}

// NormalizeTag trims and lowercases a raw tag.
func NormalizeTag(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// normalizeTags cleans a raw tag list: trim, lowercase, drop empties and
// duplicates. First-seen order is preserved.
func normalizeTags(raw []string) []string {
	var tags []string
	for _, t := range raw {
		t = NormalizeTag(t)
		if t == "" || containsTag(tags, t) {
			continue
		}
		tags = append(tags, t)
	}
	return tags
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

// isBlank reports whether a note with this title and content would be empty
// once whitespace is trimmed. Such notes are never persisted.
func isBlank(title, content string) bool {
	return strings.TrimSpace(title) == "" && strings.TrimSpace(content) == ""
}
