package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/notebox/pkg/core"
)

// LoadAutoSave restores notes and the id counter from the auto-save file.
//
// A missing file is not an error and leaves the store empty. A malformed
// file yields an ErrParse error and also leaves the store empty.
func (s *Store) LoadAutoSave() (int, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("no previous session", "path", s.path)
			return 0, nil
		}
		return 0, core.IO("load", "", err)
	}

	var snap core.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return 0, core.Parse("load", "", err)
	}

	notes := snap.Notes
	if notes == nil {
		notes = []core.Note{}
	}
	s.notes = notes
	s.nextID = normalizeNextID(snap.NextID, notes)

	now := s.clock()
	s.lastLoaded = &now
	s.logger.Debug("session loaded", "path", s.path, "notes", len(notes), "next_id", s.nextID)
	return len(notes), nil
}

// SaveAutoSave writes every note, the id counter and the current time to
// the auto-save file.
func (s *Store) SaveAutoSave() error {
	now := s.clock()
	snap := core.Snapshot{
		Notes:     s.notes,
		NextID:    s.nextID,
		LastSaved: core.NewTimestamp(now),
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return core.IO("save", "", err)
	}
	if err := writeFileAtomic(s.path, data, s.perm); err != nil {
		return core.IO("save", "", err)
	}

	s.lastSaved = &now
	s.logger.Debug("session saved", "path", s.path, "notes", len(s.notes))
	return nil
}

// ExportTo writes the notes, without the id counter, as an indented JSON array.
func (s *Store) ExportTo(path string) error {
	data, err := json.MarshalIndent(s.notes, "", "  ")
	if err != nil {
		return core.IO("export", "", err)
	}
	if err := writeFileAtomic(path, data, s.perm); err != nil {
		return core.IO("export", "", err)
	}
	s.logger.Debug("notes exported", "path", path, "notes", len(s.notes))
	return nil
}

// ImportFrom reads a JSON array of notes and appends them, assigning every
// imported note a fresh id. Ids present in the file are ignored.
//
// When path does not exist but contains glob meta-characters it is expanded
// (doublestar syntax, "**" included) and every match is imported. Nothing is
// appended unless every file parses.
func (s *Store) ImportFrom(path string) (int, error) {
	files, err := resolveImportPaths(path)
	if err != nil {
		return 0, err
	}

	var batch []core.Note
	for _, file := range files {
		notes, err := readNoteArray(file)
		if err != nil {
			return 0, err
		}
		batch = append(batch, notes...)
	}

	for _, n := range batch {
		n.ID = s.nextID
		s.nextID++
		s.notes = append(s.notes, n)
	}
	s.logger.Debug("notes imported", "path", path, "files", len(files), "notes", len(batch))
	return len(batch), nil
}

func resolveImportPaths(path string) ([]string, error) {
	if _, err := os.Stat(path); err == nil {
		return []string{path}, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, core.IO("import", "", err)
	}

	if !hasGlobMeta(path) {
		return nil, core.NotFound(fmt.Sprintf("File %s not found.", path))
	}

	matches, err := doublestar.FilepathGlob(path, doublestar.WithFilesOnly())
	if err != nil {
		return nil, core.Validation(fmt.Sprintf("Invalid pattern %s: %v", path, err))
	}
	if len(matches) == 0 {
		return nil, core.NotFound(fmt.Sprintf("No files match %s.", path))
	}
	slices.Sort(matches)
	return matches, nil
}

func readNoteArray(path string) ([]core.Note, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, core.NotFound(fmt.Sprintf("File %s not found.", path))
		}
		return nil, core.IO("import", "", err)
	}

	var notes []core.Note
	if err := json.Unmarshal(data, &notes); err != nil {
		return nil, core.Parse("import", "", err)
	}
	return notes, nil
}

// normalizeNextID keeps the counter strictly above every loaded id.
func normalizeNextID(next int, notes []core.Note) int {
	if next < 1 {
		next = 1
	}
	for _, n := range notes {
		if n.ID >= next {
			next = n.ID + 1
		}
	}
	return next
}

func hasGlobMeta(path string) bool {
	return strings.ContainsAny(path, "*?[{")
}
