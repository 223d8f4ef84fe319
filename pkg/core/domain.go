// Package core holds the note model, the persisted snapshot shape and the
// error taxonomy shared by the store and the command layer.
package core

// Snapshot is the persisted form of a whole session: every note, the id
// counter and the time it was written.
type Snapshot struct {
	Notes     []Note    `json:"Notes"`
	NextID    int       `json:"NextId"`
	LastSaved Timestamp `json:"LastSaved"`
}
