package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Load(ctx context.Context) error
	List(ctx context.Context) error
	Search(ctx context.Context, query string) error
	Edit(ctx context.Context) error
	Commit(ctx context.Context) error
	Cancel(ctx context.Context) error
	Delete(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts the read–eval–print loop for the directory CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - list           — list cached users
//	  - search [text]  — list users matching text (prompts when omitted)
//	  - load           — refetch the collection from the server
//	  - edit           — edit one user (interactive ID prompt)
//	  - commit         — retry the pending edit after a failed update
//	  - cancel         — discard the pending edit
//	  - delete         — delete one user (interactive ID prompt)
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Command handlers surface their own errors as user messages and return
// nil or the error; the loop ignores returned errors so one failed remote
// call never takes the whole session down.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("dir> %s ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, search, load, edit, commit, cancel, delete, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "load":
			_ = a.Load(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "s", "search":
			_ = a.Search(ctx, strings.Join(args, " "))

		case "edit":
			_ = a.Edit(ctx)

		case "commit":
			_ = a.Commit(ctx)

		case "cancel":
			_ = a.Cancel(ctx)

		case "delete":
			_ = a.Delete(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
