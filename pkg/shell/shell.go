// Package shell runs the interactive prompt loop on top of a command.Dispatcher.
package shell

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/notebox/pkg/command"
)

// DefaultPrompt is printed before every command line.
const DefaultPrompt = "note> "

// Shell reads command lines and hands them to the dispatcher until the
// session ends. All dispatching happens on the goroutine calling Run.
type Shell struct {
	dispatcher *command.Dispatcher
	console    *command.Console
	prompt     string
	logger     *slog.Logger
}

// Option configures a Shell.
type Option func(*Shell)

// WithPrompt overrides DefaultPrompt.
func WithPrompt(prompt string) Option {
	return func(s *Shell) {
		s.prompt = prompt
	}
}

// WithLogger sets the logger for the shell.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Shell) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a Shell.
func New(dispatcher *command.Dispatcher, console *command.Console, opts ...Option) *Shell {
	s := &Shell{
		dispatcher: dispatcher,
		console:    console,
		prompt:     DefaultPrompt,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run loops until the exit command runs, ctx is cancelled (interrupt) or
// the input ends. The last two go through the same save-and-exit sequence
// as the exit command.
func (s *Shell) Run(ctx context.Context) error {
	for {
		select {
		case <-s.dispatcher.Done():
			return nil
		default:
		}

		s.console.Printf("%s", s.prompt)
		line, err := s.console.ReadLine(ctx)
		switch {
		case ctx.Err() != nil:
			s.logger.Debug("interrupted")
			s.console.Println()
			s.console.Println("Saving session data before exit...")
			s.dispatcher.SaveAndExit()
			return nil
		case errors.Is(err, io.EOF):
			s.logger.Debug("end of input")
			s.console.Println()
			s.dispatcher.SaveAndExit()
			return nil
		case err != nil:
			s.logger.Error("reading input failed", "error", err)
			s.dispatcher.SaveAndExit()
			return err
		}

		if strings.TrimSpace(line) == "" {
			continue
		}
		s.dispatcher.Process(ctx, line)
		s.console.Println()
	}
}
