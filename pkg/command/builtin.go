package command

import "context"

// registry is what help needs from the Dispatcher.
type registry interface {
	Commands() []Command
}

type helpCommand struct {
	registry registry
	console  *Console
}

func (c *helpCommand) Name() string        { return "help" }
func (c *helpCommand) Description() string { return "Show available commands" }

func (c *helpCommand) Execute(ctx context.Context, args []string) error {
	c.console.Heading("Available commands:")
	for _, cmd := range c.registry.Commands() {
		c.console.Printf("  %s - %s\n", cmd.Name(), cmd.Description())
	}
	return nil
}

type exitCommand struct {
	shutdown func()
}

func (c *exitCommand) Name() string        { return "exit" }
func (c *exitCommand) Description() string { return "Exit the application" }

func (c *exitCommand) Execute(ctx context.Context, args []string) error {
	c.shutdown()
	return nil
}
