// Package session implements the editing state machine: Browsing until a
// create or edit begins, Editing until the draft is saved or discarded. The
// draft is transient working state; it reaches the store only on save.
package session

import (
	"errors"

	"github.com/marcus/notable/internal/note"
)

// Mode identifies the session state.
type Mode int

const (
	Browsing Mode = iota
	Editing
)

// String returns the display name for the mode.
func (m Mode) String() string {
	if m == Editing {
		return "Editing"
	}
	return "Browsing"
}

// Draft holds the transient working copy of a note being created or edited.
// It is never persisted; abandoning the edit discards it wholesale.
type Draft struct {
	NoteID   string // empty while creating a new note
	Title    string
	Content  string
	Tags     []string
	TagInput string // pending tag-input buffer
}

// Confirmer answers a blocking yes/no prompt.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to the Confirmer interface.
type ConfirmFunc func(prompt string) bool

// Confirm calls f.
func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// Session owns the editing mode and draft for one running UI session.
type Session struct {
	store *note.Store
	mode  Mode
	draft Draft
}

// New creates a session in Browsing mode.
func New(store *note.Store) *Session {
	return &Session{store: store}
}

// Mode returns the current session mode.
func (s *Session) Mode() Mode { return s.mode }

// Editing reports whether an edit is in progress.
func (s *Session) Editing() bool { return s.mode == Editing }

// Draft returns a copy of the current draft.
func (s *Session) Draft() Draft {
	d := s.draft
	d.Tags = append([]string(nil), s.draft.Tags...)
	return d
}

// StartCreate enters Editing with an empty draft.
func (s *Session) StartCreate() {
	s.draft = Draft{}
	s.mode = Editing
}

// StartEdit enters Editing with a draft initialized from an existing note.
// The note's ID is remembered so Save updates rather than creates.
func (s *Session) StartEdit(n note.Note) {
	s.draft = Draft{
		NoteID:  n.ID,
		Title:   n.Title,
		Content: n.Content,
		Tags:    append([]string(nil), n.Tags...),
	}
	s.mode = Editing
}

// SetTitle updates the draft title.
func (s *Session) SetTitle(title string) { s.draft.Title = title }

// SetContent updates the draft content.
func (s *Session) SetContent(content string) { s.draft.Content = content }

// SetTagInput updates the pending tag-input buffer.
func (s *Session) SetTagInput(input string) { s.draft.TagInput = input }

// AddTag normalizes the pending tag-input and appends it to the draft's tags
// when it is non-empty and not already present, clearing the buffer.
// Duplicates and blank input are silently ignored.
func (s *Session) AddTag() {
	tag := note.NormalizeTag(s.draft.TagInput)
	if tag == "" || s.hasTag(tag) {
		return
	}
	s.draft.Tags = append(s.draft.Tags, tag)
	s.draft.TagInput = ""
}

// RemoveTag removes an exact-match tag from the draft.
func (s *Session) RemoveTag(tag string) {
	for i, t := range s.draft.Tags {
		if t == tag {
			s.draft.Tags = append(s.draft.Tags[:i], s.draft.Tags[i+1:]...)
			return
		}
	}
}

// RemoveLastTag removes the most recently added tag, if any.
func (s *Session) RemoveLastTag() {
	if len(s.draft.Tags) > 0 {
		s.draft.Tags = s.draft.Tags[:len(s.draft.Tags)-1]
	}
}

func (s *Session) hasTag(tag string) bool {
	for _, t := range s.draft.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Save reconciles the draft into the store: create when no note is bound,
// update otherwise. Blank drafts and drafts bound to a note that no longer
// exists are dropped without error; either way the session returns to
// Browsing and the draft is discarded. Storage failures propagate and keep
// the session in Editing so the draft isn't lost.
func (s *Session) Save() error {
	var err error
	if s.draft.NoteID == "" {
		_, err = s.store.Create(s.draft.Title, s.draft.Content, s.draft.Tags)
	} else {
		_, err = s.store.Update(s.draft.NoteID, s.draft.Title, s.draft.Content, s.draft.Tags)
	}
	if err != nil && !errors.Is(err, note.ErrEmptyNote) && !errors.Is(err, note.ErrNotFound) {
		return err
	}

	s.draft = Draft{}
	s.mode = Browsing
	return nil
}

// Cancel returns to Browsing, discarding the draft unconditionally.
func (s *Session) Cancel() {
	s.draft = Draft{}
	s.mode = Browsing
}

// Delete removes a listed note after confirmation. It operates on the
// collection, not the draft, and is reachable from Browsing. Declining the
// prompt leaves everything unchanged.
func (s *Session) Delete(id string, confirm Confirmer) error {
	if confirm == nil || !confirm.Confirm("Delete this note?") {
		return nil
	}
	return s.store.Delete(id)
}
