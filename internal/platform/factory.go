package platform

import (
	"context"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/aretw0/notebox/pkg/command"
	"github.com/aretw0/notebox/pkg/shell"
	"github.com/aretw0/notebox/pkg/store"
)

// Banner is printed when the session starts on a terminal.
var Banner = []string{
	"=== Note Manager Console Application ===",
	"Manage your notes from the command line!",
	"Type 'help' for available commands or 'exit' to quit.",
}

// Session is a fully wired interactive note manager.
type Session struct {
	Store      *store.Store
	Console    *command.Console
	Dispatcher *command.Dispatcher
	Shell      *shell.Shell

	banner bool
	logger *slog.Logger
}

// New wires a store, console, dispatcher and shell from cfg.
// The line reader starts immediately and stops when ctx is done.
//
//	sess, err := platform.New(ctx, cfg)
//	sess.Run(ctx)
func New(ctx context.Context, cfg Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	logger := o.logger
	if logger == nil {
		logger = slog.Default()
	}

	st := store.New(
		store.WithPath(cfg.SaveFile),
		store.WithLogger(logger),
		store.WithClock(o.clock),
	)

	reader := shell.NewReader(ctx, o.in, logger)
	console := command.NewConsole(reader, o.out,
		command.WithStyles(cfg.colorEnabled(isTerminal(o.out))),
	)

	dispatcher := command.NewDispatcher(st, console,
		command.WithLogger(logger),
		command.WithExit(o.exit),
		command.WithDateFormat(cfg.DateFormat),
	)

	shellOpts := []shell.Option{shell.WithLogger(logger)}
	if cfg.Prompt != "" {
		shellOpts = append(shellOpts, shell.WithPrompt(cfg.Prompt))
	}

	return &Session{
		Store:      st,
		Console:    console,
		Dispatcher: dispatcher,
		Shell:      shell.New(dispatcher, console, shellOpts...),
		banner:     cfg.bannerEnabled(isTerminal(o.in)),
		logger:     logger,
	}, nil
}

// Run prints the greeting, restores the previous session and runs the
// prompt loop until the session ends.
func (s *Session) Run(ctx context.Context) error {
	if s.banner {
		for _, line := range Banner {
			s.Console.Heading("%s", line)
		}
		s.Console.Println()
	}

	s.restore()
	return s.Shell.Run(ctx)
}

// restore loads the auto-save file. Failures are reported and the session
// continues with an empty store.
func (s *Session) restore() {
	n, err := s.Store.LoadAutoSave()
	if err != nil {
		s.logger.Warn("could not load previous session", "path", s.Store.Path(), "error", err)
		s.Console.Warn("Warning: Could not load previous session data: %s", err.Error())
		return
	}
	if s.Store.Loaded() {
		s.Console.Success("✓ Loaded %d note(s) from previous session (%s)", n, s.Store.Path())
	}
}

// isTerminal reports whether v is an *os.File attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
