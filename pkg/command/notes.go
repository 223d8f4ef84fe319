package command

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/notebox/pkg/core"
)

const addUsage = `Usage: add "title" "content" OR just 'add' for interactive mode`

type addCommand struct {
	store   core.Repository
	console *Console
}

func (c *addCommand) Name() string { return "add" }
func (c *addCommand) Description() string {
	return `Add a new note (usage: add "title" "content" OR just add for interactive mode)`
}

func (c *addCommand) Execute(ctx context.Context, args []string) error {
	var title, content string

	switch {
	case len(args) == 2:
		title = unquote(args[0])
		content = unquote(args[1])
	case len(args) == 1:
		return core.Validation("Error: Missing content parameter.\n" + addUsage)
	case len(args) > 2:
		return core.Validation(fmt.Sprintf("Error: Too many parameters (%d). Expected exactly 2.\n%s", len(args), addUsage))
	default:
		var err error
		if title, err = c.console.Prompt(ctx, "Enter note title: "); err != nil {
			return err
		}
		if content, err = c.console.Prompt(ctx, "Enter note content: "); err != nil {
			return err
		}
	}

	if strings.TrimSpace(title) == "" {
		return core.Validation("Title cannot be empty.")
	}

	n := c.store.Add(title, content)
	c.console.Success("Note '%s' added successfully with ID: %d", n.Title, n.ID)
	return nil
}

type listCommand struct {
	store      core.Repository
	console    *Console
	dateFormat string
}

func (c *listCommand) Name() string        { return "list" }
func (c *listCommand) Description() string { return "List all notes" }

func (c *listCommand) Execute(ctx context.Context, args []string) error {
	notes := c.store.List()
	if len(notes) == 0 {
		c.console.Println("No notes found.")
		return nil
	}

	c.console.Heading("Your notes:")
	printNotes(c.console, notes, c.dateFormat)
	return nil
}

type deleteCommand struct {
	store   core.Repository
	console *Console
}

func (c *deleteCommand) Name() string        { return "delete" }
func (c *deleteCommand) Description() string { return "Delete a note by ID (usage: delete)" }

func (c *deleteCommand) Execute(ctx context.Context, args []string) error {
	id, ok := idArg(args)
	if !ok {
		input, err := c.console.Prompt(ctx, "Enter note ID to delete: ")
		if err != nil {
			return err
		}
		if id, ok = parseID(input); !ok {
			return core.Validation("Invalid ID format.")
		}
	}

	n, found := c.store.Get(id)
	if !found || !c.store.Delete(id) {
		return core.NotFound(fmt.Sprintf("Note with ID %d not found.", id))
	}
	c.console.Success("Note '%s' deleted successfully.", n.Title)
	return nil
}

type searchCommand struct {
	store      core.Repository
	console    *Console
	dateFormat string
}

func (c *searchCommand) Name() string { return "search" }
func (c *searchCommand) Description() string {
	return `Search notes by title or content (usage: search "term" OR just search for interactive mode)`
}

func (c *searchCommand) Execute(ctx context.Context, args []string) error {
	term, err := firstArgOrPrompt(ctx, c.console, args, "Enter search term: ")
	if err != nil {
		return err
	}
	if strings.TrimSpace(term) == "" {
		return core.Validation("Search term cannot be empty.")
	}

	results := c.store.Search(term)
	if len(results) == 0 {
		c.console.Println(fmt.Sprintf("No notes found matching '%s'.", term))
		return nil
	}

	c.console.Heading("Found %d note(s) matching '%s':", len(results), term)
	printNotes(c.console, core.SortNewestFirst(results), c.dateFormat)
	return nil
}

type updateCommand struct {
	store   core.Repository
	console *Console
}

func (c *updateCommand) Name() string { return "update" }
func (c *updateCommand) Description() string {
	return `Update a note (usage: update id "new title" "new content" OR just update for interactive mode)`
}

func (c *updateCommand) Execute(ctx context.Context, args []string) error {
	var title, content string

	id, ok := idArg(args)
	if ok {
		if len(args) >= 2 {
			title = unquote(args[1])
		}
		if len(args) >= 3 {
			content = unquote(args[2])
		}
	} else {
		input, err := c.console.Prompt(ctx, "Enter note ID to update: ")
		if err != nil {
			return err
		}
		if id, ok = parseID(input); !ok {
			return core.Validation("Invalid ID format.")
		}
		if title, err = c.console.Prompt(ctx, "Enter new title (leave empty to keep current): "); err != nil {
			return err
		}
		if content, err = c.console.Prompt(ctx, "Enter new content (leave empty to keep current): "); err != nil {
			return err
		}
	}

	if !c.store.Update(id, title, content) {
		return core.NotFound(fmt.Sprintf("Note with ID %d not found.", id))
	}
	c.console.Success("Note %d updated successfully.", id)
	return nil
}

// idArg parses the first argument as a note id.
func idArg(args []string) (int, bool) {
	if len(args) == 0 {
		return 0, false
	}
	return parseID(args[0])
}

func parseID(s string) (int, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return id, true
}

// firstArgOrPrompt returns the unquoted first argument, or asks for it.
func firstArgOrPrompt(ctx context.Context, console *Console, args []string, label string) (string, error) {
	if len(args) > 0 {
		return unquote(args[0]), nil
	}
	return console.Prompt(ctx, label)
}

func printNotes(console *Console, notes []core.Note, layout string) {
	for _, n := range notes {
		console.Printf("%s %s - %s\n",
			console.render(idStyle, fmt.Sprintf("[%d]", n.ID)),
			n.Title,
			console.render(dimStyle, n.CreatedAt.Format(layout)))
		console.Printf("    %s\n", n.Content)
		console.Println()
	}
}
