package command

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// LineReader supplies raw input lines without their line terminator.
// It returns io.EOF once the input is exhausted.
type LineReader interface {
	ReadLine(ctx context.Context) (string, error)
}

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	headingStyle = lipgloss.NewStyle().Bold(true)
	idStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// Console is the text channel between the user and the commands: prompts
// read from a LineReader and results are written to an io.Writer.
type Console struct {
	in     LineReader
	out    io.Writer
	styled bool
}

// ConsoleOption configures a Console.
type ConsoleOption func(*Console)

// WithStyles enables lipgloss colouring of status lines.
func WithStyles(enabled bool) ConsoleOption {
	return func(c *Console) {
		c.styled = enabled
	}
}

// NewConsole creates a Console.
func NewConsole(in LineReader, out io.Writer, opts ...ConsoleOption) *Console {
	c := &Console{in: in, out: out}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ReadLine returns the next input line.
func (c *Console) ReadLine(ctx context.Context) (string, error) {
	return c.in.ReadLine(ctx)
}

// Prompt writes label without a newline and reads the answer.
// End of input yields an empty answer; only cancellation is an error.
func (c *Console) Prompt(ctx context.Context, label string) (string, error) {
	fmt.Fprint(c.out, label)
	line, err := c.in.ReadLine(ctx)
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(c.out)
		return "", nil
	}
	return line, err
}

// Println writes a plain line.
func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

// Printf writes formatted plain text.
func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

// Success writes a status line for a completed operation.
func (c *Console) Success(format string, a ...any) {
	c.styledLine(successStyle, format, a...)
}

// Error writes a status line for a failed operation.
func (c *Console) Error(format string, a ...any) {
	c.styledLine(errorStyle, format, a...)
}

// Warn writes a status line for a degraded but non-fatal condition.
func (c *Console) Warn(format string, a ...any) {
	c.styledLine(warnStyle, format, a...)
}

// Heading writes a section title.
func (c *Console) Heading(format string, a ...any) {
	c.styledLine(headingStyle, format, a...)
}

func (c *Console) render(style lipgloss.Style, s string) string {
	if !c.styled {
		return s
	}
	return style.Render(s)
}

func (c *Console) styledLine(style lipgloss.Style, format string, a ...any) {
	fmt.Fprintln(c.out, c.render(style, fmt.Sprintf(format, a...)))
}
