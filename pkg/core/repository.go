package core

// Repository defines the contract the command layer needs from a note store.
// Implementations own the note collection and the id counter exclusively.
type Repository interface {
	// Add creates a note with the next id and the current time.
	Add(title, content string) Note

	// Get retrieves a note by its ID.
	Get(id int) (Note, bool)

	// List returns every note, most recently created first.
	List() []Note

	// Delete removes a note by its ID and reports whether it existed.
	Delete(id int) bool

	// Search returns notes whose title or content contains term, in insertion order.
	Search(term string) []Note

	// Update replaces the title and/or content when the new value is not blank.
	Update(id int, title, content string) bool

	// ExportTo writes the notes as a JSON array to path.
	ExportTo(path string) error

	// ImportFrom appends the notes found at path with freshly assigned ids.
	ImportFrom(path string) (int, error)
}

// Persistent is implemented by repositories that keep a session snapshot.
type Persistent interface {
	// LoadAutoSave restores the last snapshot, returning the number of notes loaded.
	LoadAutoSave() (int, error)

	// SaveAutoSave writes the current snapshot.
	SaveAutoSave() error

	// Path returns the location of the snapshot.
	Path() string
}
