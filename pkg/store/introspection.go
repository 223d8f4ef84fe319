package store

import (
	"time"

	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Path       string     `json:"path"`
	Notes      int        `json:"notes"`
	NextID     int        `json:"next_id"`
	LastSaved  *time.Time `json:"last_saved,omitempty"`
	LastLoaded *time.Time `json:"last_loaded,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	return StoreState{
		Path:       s.path,
		Notes:      len(s.notes),
		NextID:     s.nextID,
		LastSaved:  s.lastSaved,
		LastLoaded: s.lastLoaded,
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "store"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
