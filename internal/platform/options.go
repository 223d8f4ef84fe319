package platform

import (
	"io"
	"log/slog"
	"os"
	"time"
)

// options holds the wiring for a notebox session.
type options struct {
	logger *slog.Logger
	in     io.Reader
	out    io.Writer
	exit   func(code int)
	clock  func() time.Time
}

// Option defines a functional option for configuring a session.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		in:   os.Stdin,
		out:  os.Stdout,
		exit: os.Exit,
	}
}

// WithLogger sets the logger shared by the store, dispatcher and shell.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithInput replaces os.Stdin as the command source.
func WithInput(r io.Reader) Option {
	return func(o *options) {
		o.in = r
	}
}

// WithOutput replaces os.Stdout as the console.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.out = w
	}
}

// WithExit replaces os.Exit as the last step of the shutdown sequence.
func WithExit(exit func(code int)) Option {
	return func(o *options) {
		o.exit = exit
	}
}

// WithClock sets the time source used to stamp notes and snapshots.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		o.clock = clock
	}
}
