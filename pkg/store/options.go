package store

import (
	"log/slog"
	"os"
	"time"
)

// options holds the internal configuration for a Store.
type options struct {
	path   string
	logger *slog.Logger
	clock  func() time.Time
	perm   os.FileMode
}

// Option defines a functional option for configuring a Store.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		path:   "",
		logger: nil,
		clock:  time.Now,
		perm:   0644,
	}
}

// WithPath overrides the auto-save file location.
// By default it is derived from the running executable (see AutoSavePath).
func WithPath(path string) Option {
	return func(o *options) {
		o.path = path
	}
}

// WithLogger sets the logger for the store.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithFileMode sets the permission bits used for every file the store writes.
func WithFileMode(perm os.FileMode) Option {
	return func(o *options) {
		o.perm = perm
	}
}
