package command

import (
	"context"
	"errors"
	"strings"

	"github.com/aretw0/notebox/pkg/core"
)

type exportCommand struct {
	store   core.Repository
	console *Console
}

func (c *exportCommand) Name() string { return "export" }
func (c *exportCommand) Description() string {
	return `Export notes to JSON file (usage: export "filename.json" OR just export for interactive mode)`
}

func (c *exportCommand) Execute(ctx context.Context, args []string) error {
	path, err := firstArgOrPrompt(ctx, c.console, args, "Enter export file path (e.g., notes.json): ")
	if err != nil {
		return err
	}
	if strings.TrimSpace(path) == "" {
		return core.Validation("File path cannot be empty.")
	}
	path = withJSONExtension(path)

	if err := c.store.ExportTo(path); err != nil {
		return failure("Error exporting notes", err)
	}
	c.console.Success("Notes exported successfully to %s", path)
	return nil
}

type importCommand struct {
	store   core.Repository
	console *Console
}

func (c *importCommand) Name() string { return "import" }
func (c *importCommand) Description() string {
	return `Import notes from JSON file (usage: import "filename.json" OR just import for interactive mode)`
}

func (c *importCommand) Execute(ctx context.Context, args []string) error {
	path, err := firstArgOrPrompt(ctx, c.console, args, "Enter import file path: ")
	if err != nil {
		return err
	}
	if strings.TrimSpace(path) == "" {
		return core.Validation("File path cannot be empty.")
	}

	n, err := c.store.ImportFrom(path)
	if err != nil {
		return failure("Error importing notes", err)
	}
	c.console.Success("Imported %d notes successfully from %s", n, path)
	return nil
}

// withJSONExtension appends ".json" unless path already ends with it, in any case.
func withJSONExtension(path string) string {
	if strings.HasSuffix(strings.ToLower(path), ".json") {
		return path
	}
	return path + ".json"
}

// failure prefixes a store error with what the user was trying to do.
// Not-found and validation errors already read as complete sentences.
func failure(prefix string, err error) error {
	if errors.Is(err, core.ErrNotFound) || errors.Is(err, core.ErrValidation) {
		return err
	}
	var ce *core.Error
	if errors.As(err, &ce) {
		return &core.Error{Kind: ce.Kind, Op: ce.Op, Msg: prefix, Err: ce}
	}
	return &core.Error{Kind: core.ErrIO, Msg: prefix, Err: err}
}
