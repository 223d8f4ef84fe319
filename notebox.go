package notebox

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/notebox/internal/platform"
	"github.com/aretw0/notebox/pkg/core"
	"github.com/aretw0/notebox/pkg/store"
)

// Version exposes the version of the module.
const Version = "0.1.0"

// --- Types ---

// Note is a public alias for the domain note.
type Note = core.Note

// Store is a public alias for the in-memory note store.
type Store = store.Store

// Session is a public alias for a wired interactive session.
type Session = platform.Session

// Config is a public alias for the session configuration.
type Config = platform.Config

// --- Session ---

// Option defines a functional option for configuring a session.
type Option = platform.Option

// WithLogger sets the logger shared by every component.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithInput replaces os.Stdin as the command source.
func WithInput(r io.Reader) Option {
	return platform.WithInput(r)
}

// WithOutput replaces os.Stdout as the console.
func WithOutput(w io.Writer) Option {
	return platform.WithOutput(w)
}

// WithExit replaces os.Exit as the last step of the shutdown sequence.
func WithExit(exit func(code int)) Option {
	return platform.WithExit(exit)
}

// WithClock sets the time source for new notes and snapshots.
func WithClock(clock func() time.Time) Option {
	return platform.WithClock(clock)
}

// New creates an interactive session. See platform.New.
func New(ctx context.Context, cfg Config, opts ...Option) (*Session, error) {
	return platform.New(ctx, cfg, opts...)
}

// LoadConfig reads a YAML config file. A missing file yields an empty Config.
func LoadConfig(path string) (Config, error) {
	return platform.LoadConfig(path)
}

// --- Store ---

// StoreOption defines a functional option for configuring a Store.
type StoreOption = store.Option

// WithPath sets the auto-save file of a Store.
func WithPath(path string) StoreOption {
	return store.WithPath(path)
}

// NewStore creates an empty Store. It performs no I/O.
func NewStore(opts ...StoreOption) *Store {
	return store.New(opts...)
}
