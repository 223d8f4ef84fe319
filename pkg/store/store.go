// Package store keeps the note collection in memory and persists it as JSON.
//
// A Store is owned by a single goroutine: it performs no locking.
package store

import (
	"log/slog"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/aretw0/notebox/pkg/core"
)

// Store owns the notes and the id counter.
type Store struct {
	notes  []core.Note
	nextID int
	path   string

	logger *slog.Logger
	clock  func() time.Time
	perm   os.FileMode

	lastSaved  *time.Time
	lastLoaded *time.Time
}

// New creates an empty Store. It performs no I/O; call LoadAutoSave to
// restore the previous session.
func New(opts ...Option) *Store {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.path == "" {
		o.path = AutoSavePath()
	}

	return &Store{
		notes:  []core.Note{},
		nextID: 1,
		path:   o.path,
		logger: o.logger,
		clock:  o.clock,
		perm:   o.perm,
	}
}

// Path returns the auto-save file location.
func (s *Store) Path() string {
	return s.path
}

// NextID returns the id the next added note will receive.
func (s *Store) NextID() int {
	return s.nextID
}

// Loaded reports whether LoadAutoSave found and read a snapshot.
func (s *Store) Loaded() bool {
	return s.lastLoaded != nil
}

// Len returns the number of notes.
func (s *Store) Len() int {
	return len(s.notes)
}

// Add appends a new note. Title validation is the caller's job.
func (s *Store) Add(title, content string) core.Note {
	n := core.Note{
		ID:        s.nextID,
		Title:     title,
		Content:   content,
		CreatedAt: core.NewTimestamp(s.clock()),
	}
	s.nextID++
	s.notes = append(s.notes, n)
	s.logger.Debug("note added", "id", n.ID)
	return n
}

// Get returns the note with the given id.
func (s *Store) Get(id int) (core.Note, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return core.Note{}, false
	}
	return s.notes[i], true
}

// List returns a copy of every note ordered by creation time, newest first.
// Notes created at the same instant keep their insertion order.
func (s *Store) List() []core.Note {
	return core.SortNewestFirst(slices.Clone(s.notes))
}

// Delete removes the note with the given id. The id counter is not touched.
func (s *Store) Delete(id int) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.notes = slices.Delete(s.notes, i, i+1)
	s.logger.Debug("note deleted", "id", id)
	return true
}

// Search returns the notes whose title or content contains term, ignoring
// case, in insertion order.
func (s *Store) Search(term string) []core.Note {
	matches := []core.Note{}
	for _, n := range s.notes {
		if n.Matches(term) {
			matches = append(matches, n)
		}
	}
	return matches
}

// Update sets the title and the content of a note, each only when the new
// value is not blank. It reports whether the note exists.
func (s *Store) Update(id int, title, content string) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	if !isBlank(title) {
		s.notes[i].Title = title
	}
	if !isBlank(content) {
		s.notes[i].Content = content
	}
	s.logger.Debug("note updated", "id", id)
	return true
}

func (s *Store) indexOf(id int) int {
	return slices.IndexFunc(s.notes, func(n core.Note) bool { return n.ID == id })
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

var _ core.Repository = (*Store)(nil)
var _ core.Persistent = (*Store)(nil)
