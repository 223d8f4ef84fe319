// Package command maps lines of user input to operations on a note store.
//
// Each input line is split by Tokenize; the first token names a registered
// Command and the remaining tokens are handed to it. Every command decides
// on its own whether it runs from its arguments or falls back to prompting
// the user through the Console.
package command

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/aretw0/introspection"

	"github.com/aretw0/notebox/pkg/core"
)

// Command is a named operation reachable from the prompt.
type Command interface {
	// Name is the word typed to run the command.
	Name() string

	// Description is shown by help.
	Description() string

	// Execute runs the command. args is nil when the command was typed alone.
	// A returned error is reported to the user and never ends the session.
	Execute(ctx context.Context, args []string) error
}

// Store is the note store a Dispatcher drives.
type Store interface {
	core.Repository
	core.Persistent
}

// Dispatcher owns the command registry and the shutdown sequence.
type Dispatcher struct {
	commands map[string]Command
	order    []string

	store      Store
	console    *Console
	logger     *slog.Logger
	exit       func(code int)
	dateFormat string

	shutdownOnce sync.Once
	done         chan struct{}
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger for the dispatcher.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithExit replaces os.Exit as the final step of the shutdown sequence.
func WithExit(exit func(code int)) Option {
	return func(d *Dispatcher) {
		if exit != nil {
			d.exit = exit
		}
	}
}

// WithDateFormat sets the Go time layout used when listing notes.
func WithDateFormat(layout string) Option {
	return func(d *Dispatcher) {
		if layout != "" {
			d.dateFormat = layout
		}
	}
}

// DefaultDateFormat renders creation times as "2006-01-02 15:04".
const DefaultDateFormat = "2006-01-02 15:04"

// NewDispatcher creates a Dispatcher with the built-in commands registered.
func NewDispatcher(store Store, console *Console, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		commands:   make(map[string]Command),
		store:      store,
		console:    console,
		logger:     slog.Default(),
		exit:       os.Exit,
		dateFormat: DefaultDateFormat,
		done:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(d)
	}

	d.Register(&addCommand{store: store, console: console})
	d.Register(&listCommand{store: store, console: console, dateFormat: d.dateFormat})
	d.Register(&deleteCommand{store: store, console: console})
	d.Register(&exitCommand{shutdown: d.SaveAndExit})
	d.Register(&helpCommand{registry: d, console: console})
	d.Register(&searchCommand{store: store, console: console, dateFormat: d.dateFormat})
	d.Register(&updateCommand{store: store, console: console})
	d.Register(&exportCommand{store: store, console: console})
	d.Register(&importCommand{store: store, console: console})
	return d
}

// Register adds cmd under its name. Registering a name twice replaces the
// command but keeps its original position in help.
func (d *Dispatcher) Register(cmd Command) {
	name := strings.ToLower(cmd.Name())
	if _, exists := d.commands[name]; !exists {
		d.order = append(d.order, name)
	}
	d.commands[name] = cmd
}

// Commands returns the registered commands in registration order.
func (d *Dispatcher) Commands() []Command {
	out := make([]Command, 0, len(d.order))
	for _, name := range d.order {
		out = append(out, d.commands[name])
	}
	return out
}

// Process runs one line of input. Blank input is ignored and unknown
// commands are reported.
func (d *Dispatcher) Process(ctx context.Context, input string) {
	parts := Tokenize(input)
	if len(parts) == 0 {
		return
	}

	name := strings.ToLower(parts[0])
	var args []string
	if len(parts) > 1 {
		args = parts[1:]
	}

	cmd, ok := d.commands[name]
	if !ok {
		d.console.Error("Unknown command: %s. Type 'help' for available commands.", name)
		return
	}

	d.logger.Debug("executing command", "command", name, "args", len(args))
	if err := cmd.Execute(ctx, args); err != nil {
		d.report(name, err)
	}
}

func (d *Dispatcher) report(name string, err error) {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		d.logger.Debug("command interrupted", "command", name)
		return
	}

	var ce *core.Error
	if errors.As(err, &ce) && ce.Kind != nil {
		d.logger.Debug("command failed", "command", name, "kind", ce.Kind.Error(), "op", ce.Op, "error", err)
	} else {
		d.logger.Warn("command failed", "command", name, "error", err)
	}
	d.console.Error("%s", err.Error())
}

// SaveAndExit writes the auto-save file and terminates with status 0.
// The exit command, an interrupt and the end of input all end up here;
// only the first call has any effect.
func (d *Dispatcher) SaveAndExit() {
	d.shutdownOnce.Do(func() {
		d.console.Println("Saving session data...")
		if err := d.store.SaveAutoSave(); err != nil {
			d.console.Error("Error saving session data: %s", err.Error())
		} else {
			d.console.Success("✓ Session data saved to %s", d.store.Path())
		}
		d.logger.Debug("shutdown", "state", d.State())
		d.console.Println("Goodbye!")
		close(d.done)
		d.exit(0)
	})
}

// Done is closed once SaveAndExit has run.
func (d *Dispatcher) Done() <-chan struct{} {
	return d.done
}

// DispatcherState exposes internal state for observability.
type DispatcherState struct {
	Commands []string `json:"commands"`
	Store    any      `json:"store,omitempty"`
}

// State implements introspection.Introspectable.
func (d *Dispatcher) State() any {
	state := DispatcherState{Commands: append([]string(nil), d.order...)}
	if in, ok := d.store.(introspection.Introspectable); ok {
		state.Store = in.State()
	}
	return state
}

// ComponentType implements introspection.Component.
func (d *Dispatcher) ComponentType() string {
	return "dispatcher"
}

var _ introspection.Introspectable = (*Dispatcher)(nil)
var _ introspection.Component = (*Dispatcher)(nil)
