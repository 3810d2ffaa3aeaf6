package note

import (
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// collectionKey is the single key the serialized collection lives under.
const collectionKey = "notes"

var (
	// ErrNotFound reports an operation against a note ID that doesn't exist.
	ErrNotFound = errors.New("note not found")

	// ErrEmptyNote reports a save where title and content are both blank.
	ErrEmptyNote = errors.New("empty note")
)

// Medium is the durable key/value medium the store persists into.
type Medium interface {
	Get(key string) (value []byte, ok bool, err error)
	Put(key string, value []byte) error
}

// Store owns the canonical note collection. Storage order is
// newest-created-first; display order is derived separately by Visible.
// Every successful mutation re-persists the full collection before
// returning, so the persisted blob and in-memory state never diverge.
type Store struct {
	medium Medium
	logger *slog.Logger
	notes  []Note

	now func() time.Time
}

// NewStore creates a store over the given medium. The collection is empty
// until Load is called.
func NewStore(medium Medium, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		medium: medium,
		logger: logger,
		// Second precision so timestamps survive the RFC 3339 round-trip.
		now: func() time.Time { return time.Now().UTC().Truncate(time.Second) },
	}
}

// Load reads the persisted collection. A missing key yields an empty
// collection. A blob that fails to decode also yields an empty collection:
// the app stays usable and the condition is logged. This trades recovery of
// the old blob for availability, deliberately.
func (s *Store) Load() error {
	data, ok, err := s.medium.Get(collectionKey)
	if err != nil {
		return fmt.Errorf("read collection: %w", err)
	}
	if !ok {
		s.notes = nil
		return nil
	}

	notes, err := decodeCollection(data)
	if err != nil {
		s.logger.Warn("persisted notes are malformed, starting empty", "error", err)
		s.notes = nil
		return nil
	}

	s.notes = notes
	return nil
}

// Create adds a new note at the front of the collection and persists.
// Returns ErrEmptyNote when title and content are both blank; nothing is
// added or persisted in that case.
func (s *Store) Create(title, content string, tags []string) (*Note, error) {
	if isBlank(title, content) {
		return nil, ErrEmptyNote
	}

	id, err := generateID()
	if err != nil {
		return nil, fmt.Errorf("generate ID: %w", err)
	}
	for s.indexOf(id) >= 0 {
		if id, err = generateID(); err != nil {
			return nil, fmt.Errorf("generate ID: %w", err)
		}
	}

	now := s.now()
	n := Note{
		ID:        id,
		Title:     title,
		Content:   content,
		Tags:      normalizeTags(tags),
		CreatedAt: now,
		UpdatedAt: now,
	}

	next := make([]Note, 0, len(s.notes)+1)
	next = append(next, n)
	next = append(next, s.notes...)

	if err := s.persist(next); err != nil {
		return nil, err
	}
	s.notes = next
	return &n, nil
}

// Update replaces a note's title, content, and tags, refreshing updatedAt.
// ID and createdAt are untouched. Returns ErrNotFound when no note with
// that ID exists, and ErrEmptyNote under the same rule as Create.
func (s *Store) Update(id, title, content string, tags []string) (*Note, error) {
	if isBlank(title, content) {
		return nil, ErrEmptyNote
	}

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, ErrNotFound
	}

	next := make([]Note, len(s.notes))
	copy(next, s.notes)

	n := next[idx]
	n.Title = title
	n.Content = content
	n.Tags = normalizeTags(tags)
	n.UpdatedAt = s.now()
	next[idx] = n

	if err := s.persist(next); err != nil {
		return nil, err
	}
	s.notes = next
	return &n, nil
}

// Delete removes the note with the given ID if present. Deleting an unknown
// ID is a silent no-op, so Delete is idempotent.
func (s *Store) Delete(id string) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return nil
	}

	next := make([]Note, 0, len(s.notes)-1)
	next = append(next, s.notes[:idx]...)
	next = append(next, s.notes[idx+1:]...)

	if err := s.persist(next); err != nil {
		return err
	}
	s.notes = next
	return nil
}

// Get returns the note with the given ID.
func (s *Store) Get(id string) (Note, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return Note{}, false
	}
	return s.notes[idx], true
}

// All returns a copy of the collection in storage order.
func (s *Store) All() []Note {
	out := make([]Note, len(s.notes))
	copy(out, s.notes)
	return out
}

// Len returns the number of notes in the collection.
func (s *Store) Len() int { return len(s.notes) }

func (s *Store) indexOf(id string) int {
	for i, n := range s.notes {
		if n.ID == id {
			return i
		}
	}
	return -1
}

// persist writes the candidate collection before it becomes current, so a
// storage failure leaves the in-memory collection untouched.
func (s *Store) persist(notes []Note) error {
	data, err := encodeCollection(notes)
	if err != nil {
		return fmt.Errorf("encode collection: %w", err)
	}
	if err := s.medium.Put(collectionKey, data); err != nil {
		return fmt.Errorf("write collection: %w", err)
	}
	return nil
}
