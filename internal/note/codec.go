package note

import (
	"encoding/json"
	"fmt"
	"time"
)

// wireNote is the persisted JSON form of a note. Timestamps are RFC 3339
// strings; there is no schema version field, so any change to this shape is
// a breaking change.
type wireNote struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Tags      []string `json:"tags"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt string   `json:"updatedAt"`
}

// encodeCollection serializes the full collection to its persisted form.
func encodeCollection(notes []Note) ([]byte, error) {
	wire := make([]wireNote, 0, len(notes))
	for _, n := range notes {
		tags := n.Tags
		if tags == nil {
			tags = []string{}
		}
		wire = append(wire, wireNote{
			ID:        n.ID,
			Title:     n.Title,
			Content:   n.Content,
			Tags:      tags,
			CreatedAt: n.CreatedAt.UTC().Format(time.RFC3339),
			UpdatedAt: n.UpdatedAt.UTC().Format(time.RFC3339),
		})
	}
	return json.Marshal(wire)
}

// decodeCollection parses a persisted blob back into notes. Any structural
// problem (bad JSON, unparseable timestamp) fails the whole decode; the
// caller decides what to do with a malformed blob.
func decodeCollection(data []byte) ([]Note, error) {
	var wire []wireNote
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("parse collection: %w", err)
	}

	notes := make([]Note, 0, len(wire))
	for _, w := range wire {
		created, err := time.Parse(time.RFC3339, w.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("parse createdAt of %q: %w", w.ID, err)
		}
		updated, err := time.Parse(time.RFC3339, w.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("parse updatedAt of %q: %w", w.ID, err)
		}
		notes = append(notes, Note{
			ID:        w.ID,
			Title:     w.Title,
			Content:   w.Content,
			Tags:      normalizeTags(w.Tags),
			CreatedAt: created,
			UpdatedAt: updated,
		})
	}
	return notes, nil
}
