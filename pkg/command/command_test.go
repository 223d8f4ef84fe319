package command_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/notebox/pkg/command"
	"github.com/aretw0/notebox/pkg/core"
	"github.com/aretw0/notebox/pkg/store"
)

// scriptReader answers prompts from a fixed list of lines.
type scriptReader struct {
	lines []string
}

func (r *scriptReader) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(r.lines) == 0 {
		return "", io.EOF
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line, nil
}

type harness struct {
	dispatcher *command.Dispatcher
	store      *store.Store
	reader     *scriptReader
	out        *bytes.Buffer
	exitCodes  []int
	dir        string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	dir := t.TempDir()
	start := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	tick := 0

	h := &harness{
		reader: &scriptReader{},
		out:    &bytes.Buffer{},
		dir:    dir,
	}
	h.store = store.New(
		store.WithPath(filepath.Join(dir, "notebox.json")),
		store.WithClock(func() time.Time {
			tick++
			return start.Add(time.Duration(tick) * time.Minute)
		}),
	)
	console := command.NewConsole(h.reader, h.out)
	h.dispatcher = command.NewDispatcher(h.store, console,
		command.WithExit(func(code int) { h.exitCodes = append(h.exitCodes, code) }),
	)
	return h
}

// run processes one line, answering prompts with answers, and returns the output.
func (h *harness) run(input string, answers ...string) string {
	h.reader.lines = append(h.reader.lines, answers...)
	h.out.Reset()
	h.dispatcher.Process(context.Background(), input)
	return h.out.String()
}

func (h *harness) find(name string) command.Command {
	for _, c := range h.dispatcher.Commands() {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

func TestDispatcher_BlankInputIsNoop(t *testing.T) {
	h := newHarness(t)
	assert.Empty(t, h.run(""))
	assert.Empty(t, h.run("     "))
}

func TestDispatcher_UnknownCommand(t *testing.T) {
	h := newHarness(t)
	out := h.run("Frobnicate now")
	assert.Equal(t, "Unknown command: frobnicate. Type 'help' for available commands.\n", out)
	assert.Empty(t, h.exitCodes)
}

func TestDispatcher_CommandNameIsCaseInsensitive(t *testing.T) {
	h := newHarness(t)
	out := h.run(`ADD "Title" "Body"`)
	assert.Contains(t, out, "Note 'Title' added successfully with ID: 1")
}

func TestDispatcher_Help(t *testing.T) {
	h := newHarness(t)
	out := h.run("help")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, "Available commands:", lines[0])

	var names []string
	for _, line := range lines[1:] {
		assert.True(t, strings.HasPrefix(line, "  "), "command lines are indented")
		names = append(names, strings.SplitN(strings.TrimSpace(line), " - ", 2)[0])
	}
	assert.Equal(t, []string{"add", "list", "delete", "exit", "help", "search", "update", "export", "import"}, names)
	assert.Contains(t, out, "  list - List all notes\n")
}

func TestDispatcher_RegisterReplacesInPlace(t *testing.T) {
	h := newHarness(t)
	h.dispatcher.Register(stubCommand{name: "list", desc: "replaced"})
	h.dispatcher.Register(stubCommand{name: "extra", desc: "appended"})

	cmds := h.dispatcher.Commands()
	require.Len(t, cmds, 10)
	assert.Equal(t, "replaced", cmds[1].Description())
	assert.Equal(t, "extra", cmds[9].Name())
}

func TestAdd(t *testing.T) {
	t.Run("Parameter Mode", func(t *testing.T) {
		h := newHarness(t)
		out := h.run(`add "hello world" "line1 line2"`)
		assert.Equal(t, "Note 'hello world' added successfully with ID: 1\n", out)

		n, ok := h.store.Get(1)
		require.True(t, ok)
		assert.Equal(t, "line1 line2", n.Content)
	})

	t.Run("One Argument Adds Nothing", func(t *testing.T) {
		h := newHarness(t)
		out := h.run("add onlyone")
		assert.Contains(t, out, "Error: Missing content parameter.")
		assert.Contains(t, out, `Usage: add "title" "content" OR just 'add' for interactive mode`)

		assert.Equal(t, "No notes found.\n", h.run("list"))
	})

	t.Run("Too Many Arguments", func(t *testing.T) {
		h := newHarness(t)
		out := h.run("add a b c d")
		assert.Contains(t, out, "Error: Too many parameters (4). Expected exactly 2.")
		assert.Zero(t, h.store.Len())
	})

	t.Run("Interactive Mode", func(t *testing.T) {
		h := newHarness(t)
		out := h.run("add", "Groceries", "milk, eggs")
		assert.Contains(t, out, "Enter note title: ")
		assert.Contains(t, out, "Enter note content: ")
		assert.Contains(t, out, "Note 'Groceries' added successfully with ID: 1")

		n, _ := h.store.Get(1)
		assert.Equal(t, "milk, eggs", n.Content)
	})

	t.Run("Blank Title Rejected", func(t *testing.T) {
		h := newHarness(t)
		out := h.run(`add "   " "content"`)
		assert.Contains(t, out, "Title cannot be empty.")

		out = h.run("add", "", "content")
		assert.Contains(t, out, "Title cannot be empty.")
		assert.Zero(t, h.store.Len())
		assert.Equal(t, 1, h.store.NextID())
	})

	t.Run("End Of Input During Prompt", func(t *testing.T) {
		h := newHarness(t)
		out := h.run("add")
		assert.Contains(t, out, "Title cannot be empty.")
	})
}

// The tokenizer already drops quotes; commands strip them a second time.
// This pins that behaviour for arguments passed to Execute directly.
func TestAdd_StripsQuotesAgain(t *testing.T) {
	h := newHarness(t)
	add := h.find("add")
	require.NotNil(t, add)

	require.NoError(t, add.Execute(context.Background(), []string{`"quoted"`, `""content""`}))
	n, ok := h.store.Get(1)
	require.True(t, ok)
	assert.Equal(t, "quoted", n.Title)
	assert.Equal(t, "content", n.Content, "every leading and trailing quote is removed")

	require.NoError(t, add.Execute(context.Background(), []string{`in"side`, `x`}))
	n, _ = h.store.Get(2)
	assert.Equal(t, `in"side`, n.Title, "inner quotes survive")
}

func TestList(t *testing.T) {
	h := newHarness(t)
	h.run(`add first one`)
	h.run(`add second two`)

	out := h.run("list")
	expected := "Your notes:\n" +
		"[2] second - 2024-05-01 09:02\n" +
		"    two\n" +
		"\n" +
		"[1] first - 2024-05-01 09:01\n" +
		"    one\n" +
		"\n"
	assert.Equal(t, expected, out)
}

func TestDelete(t *testing.T) {
	t.Run("By Argument", func(t *testing.T) {
		h := newHarness(t)
		h.run("add keep me")
		out := h.run("delete 1")
		assert.Equal(t, "Note 'keep' deleted successfully.\n", out)
		assert.Zero(t, h.store.Len())
	})

	t.Run("Not Found", func(t *testing.T) {
		h := newHarness(t)
		assert.Equal(t, "Note with ID 9 not found.\n", h.run("delete 9"))
	})

	t.Run("Non Integer Argument Falls Back To Prompt", func(t *testing.T) {
		h := newHarness(t)
		h.run("add a b")
		out := h.run("delete abc", "1")
		assert.Contains(t, out, "Enter note ID to delete: ")
		assert.Contains(t, out, "Note 'a' deleted successfully.")
	})

	t.Run("Invalid Prompted ID", func(t *testing.T) {
		h := newHarness(t)
		h.run("add a b")
		out := h.run("delete", "one")
		assert.Contains(t, out, "Invalid ID format.")
		assert.Equal(t, 1, h.store.Len())
	})

	t.Run("IDs Not Reused", func(t *testing.T) {
		h := newHarness(t)
		h.run("add a b")
		h.run("delete 1")
		out := h.run("add c d")
		assert.Contains(t, out, "with ID: 2")
	})
}

func TestUpdate(t *testing.T) {
	t.Run("Parameter Mode", func(t *testing.T) {
		h := newHarness(t)
		h.run("add old body")
		out := h.run(`update 1 "new title"`)
		assert.Equal(t, "Note 1 updated successfully.\n", out)

		n, _ := h.store.Get(1)
		assert.Equal(t, "new title", n.Title)
		assert.Equal(t, "body", n.Content)
	})

	t.Run("Blank Values Keep Note", func(t *testing.T) {
		h := newHarness(t)
		h.run("add title body")
		before, _ := h.store.Get(1)

		h.run("update", "1", "", "")
		after, _ := h.store.Get(1)
		assert.Equal(t, before, after)
	})

	t.Run("Interactive Mode", func(t *testing.T) {
		h := newHarness(t)
		h.run("add title body")
		out := h.run("update", "1", "", "fresh body")
		assert.Contains(t, out, "Enter note ID to update: ")
		assert.Contains(t, out, "Enter new title (leave empty to keep current): ")
		assert.Contains(t, out, "Enter new content (leave empty to keep current): ")

		n, _ := h.store.Get(1)
		assert.Equal(t, "title", n.Title)
		assert.Equal(t, "fresh body", n.Content)
	})

	t.Run("Invalid ID Aborts Before Mutation", func(t *testing.T) {
		h := newHarness(t)
		h.run("add title body")
		out := h.run("update x", "nope", "t", "c")
		assert.Contains(t, out, "Invalid ID format.")
		assert.NotContains(t, out, "Enter new title")

		n, _ := h.store.Get(1)
		assert.Equal(t, "title", n.Title)
	})

	t.Run("Not Found", func(t *testing.T) {
		h := newHarness(t)
		assert.Equal(t, "Note with ID 4 not found.\n", h.run("update 4 a b"))
	})
}

func TestSearch(t *testing.T) {
	h := newHarness(t)
	h.run(`add "My Note" first`)
	h.run(`add Shopping "a note here"`)
	h.run(`add Other nothing`)

	out := h.run("search NOTE")
	assert.Contains(t, out, "Found 2 note(s) matching 'NOTE':")
	assert.Less(t, strings.Index(out, "[2] Shopping"), strings.Index(out, "[1] My Note"), "newest first")
	assert.NotContains(t, out, "Other")

	assert.Equal(t, "No notes found matching 'zzz'.\n", h.run("search zzz"))
	assert.Contains(t, h.run("search", "   "), "Search term cannot be empty.")
	assert.Contains(t, h.run("search", "shop"), "Found 1 note(s)")
}

func TestExportImport(t *testing.T) {
	h := newHarness(t)
	h.run(`add alpha one`)
	h.run(`add beta two`)

	base := filepath.Join(h.dir, "backup")
	out := h.run("export " + base)
	assert.Equal(t, "Notes exported successfully to "+base+".json\n", out)

	upper := filepath.Join(h.dir, "UPPER.JSON")
	h.run("export " + upper)
	_, err := os.Stat(upper)
	require.NoError(t, err, "existing .JSON suffix is kept")
	_, err = os.Stat(upper + ".json")
	assert.True(t, os.IsNotExist(err))

	other := newHarness(t)
	out = other.run("import " + base + ".json")
	assert.Equal(t, "Imported 2 notes successfully from "+base+".json\n", out)
	assert.Equal(t, 2, other.store.Len())
}

func TestExport_Validation(t *testing.T) {
	h := newHarness(t)
	assert.Contains(t, h.run("export", " "), "File path cannot be empty.")

	out := h.run("export " + filepath.Join(h.dir, "missing", "out"))
	assert.True(t, strings.HasPrefix(out, "Error exporting notes: "), out)
}

func TestImport_Failures(t *testing.T) {
	h := newHarness(t)
	assert.Contains(t, h.run("import", ""), "File path cannot be empty.")

	missing := filepath.Join(h.dir, "absent.json")
	assert.Equal(t, "File "+missing+" not found.\n", h.run("import "+missing))

	broken := filepath.Join(h.dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte("{"), 0644))
	out := h.run("import " + broken)
	assert.True(t, strings.HasPrefix(out, "Error importing notes: "), out)
	assert.Zero(t, h.store.Len())
}

func TestExit(t *testing.T) {
	h := newHarness(t)
	h.run("add keep this")

	out := h.run("exit")
	assert.Equal(t, []int{0}, h.exitCodes)
	assert.Contains(t, out, "Saving session data...")
	assert.Contains(t, out, "✓ Session data saved to "+h.store.Path())
	assert.True(t, strings.HasSuffix(out, "Goodbye!\n"))

	select {
	case <-h.dispatcher.Done():
	default:
		t.Fatal("Done should be closed after exit")
	}

	data, err := os.ReadFile(h.store.Path())
	require.NoError(t, err)
	var snap core.Snapshot
	require.NoError(t, json.Unmarshal(data, &snap))
	assert.Len(t, snap.Notes, 1)
	assert.Equal(t, 2, snap.NextID)

	h.dispatcher.SaveAndExit()
	assert.Equal(t, []int{0}, h.exitCodes, "shutdown runs once")
}

func TestExit_SaveFailureStillExits(t *testing.T) {
	out := &bytes.Buffer{}
	var codes []int
	s := store.New(store.WithPath(filepath.Join(t.TempDir(), "no", "such", "dir.json")))
	d := command.NewDispatcher(s, command.NewConsole(&scriptReader{}, out),
		command.WithExit(func(code int) { codes = append(codes, code) }))

	d.SaveAndExit()
	assert.Contains(t, out.String(), "Error saving session data: ")
	assert.Contains(t, out.String(), "Goodbye!")
	assert.Equal(t, []int{0}, codes)
}

func TestDispatcher_State(t *testing.T) {
	h := newHarness(t)
	h.run("add a b")

	state, ok := h.dispatcher.State().(command.DispatcherState)
	require.True(t, ok)
	assert.Len(t, state.Commands, 9)
	storeState, ok := state.Store.(store.StoreState)
	require.True(t, ok)
	assert.Equal(t, 1, storeState.Notes)
	assert.Equal(t, "dispatcher", h.dispatcher.ComponentType())
}

type stubCommand struct {
	name, desc string
}

func (s stubCommand) Name() string        { return s.name }
func (s stubCommand) Description() string { return s.desc }

func (s stubCommand) Execute(ctx context.Context, args []string) error {
	return nil
}
