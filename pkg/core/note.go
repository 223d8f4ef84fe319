package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"
)

// Note is the central entity of the domain.
// ID and CreatedAt are assigned by the store and never change afterwards.
type Note struct {
	ID        int       `json:"Id"`
	Title     string    `json:"Title"`
	Content   string    `json:"Content"`
	CreatedAt Timestamp `json:"CreatedAt"`
}

// Matches reports whether term occurs in the title or the content, ignoring case.
func (n Note) Matches(term string) bool {
	needle := strings.ToLower(term)
	return strings.Contains(strings.ToLower(n.Title), needle) ||
		strings.Contains(strings.ToLower(n.Content), needle)
}

// SortNewestFirst orders notes by creation time, newest first, in place.
// Notes created at the same instant keep their relative order.
func SortNewestFirst(notes []Note) []Note {
	slices.SortStableFunc(notes, func(a, b Note) int {
		return b.CreatedAt.Compare(a.CreatedAt.Time)
	})
	return notes
}

// Timestamp is a time.Time with a lenient JSON decoder.
//
// It is always written as RFC 3339 with nanoseconds. On read it also accepts
// ISO-8601 values without a zone offset (the shape .NET DateTime produces),
// which are interpreted in local time.
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps t.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// zonelessLayouts are tried, in order, when RFC 3339 parsing fails.
var zonelessLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time.Format(time.RFC3339Nano))
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	if raw == "" {
		t.Time = time.Time{}
		return nil
	}

	if parsed, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		t.Time = parsed
		return nil
	}
	for _, layout := range zonelessLayouts {
		if parsed, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("invalid timestamp %q", raw)
}
