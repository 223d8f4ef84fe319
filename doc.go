// Package notebox is the composition root for the notebox note manager.
//
// It wires the in-memory note store (pkg/store), the command dispatcher
// (pkg/command) and the prompt loop (pkg/shell) into an interactive session.
//
// Features:
//
//   - **Notes**: add, list, delete, search and update short text notes with
//     sequential integer ids that are never reused.
//   - **Auto-save**: the session is written to "<executable>.json" on exit,
//     interrupt or end of input, and restored on the next start.
//   - **Export / Import**: notes move between sessions as a plain JSON array;
//     import accepts glob patterns such as "backups/**/*.json".
//   - **Prompts**: every command can be typed in full or run bare, in which
//     case it asks for its arguments.
//
// Usage:
//
//	// Embed a session with functional options
//	sess, err := notebox.New(ctx, notebox.Config{SaveFile: "notes.json"},
//		notebox.WithLogger(logger),
//	)
//	if err != nil {
//		return err
//	}
//	return sess.Run(ctx)
//
// The store can also be used on its own:
//
//	notes := notebox.NewStore(notebox.WithPath("notes.json"))
//	notes.Add("Shopping", "milk")
//	err := notes.SaveAutoSave()
package notebox
