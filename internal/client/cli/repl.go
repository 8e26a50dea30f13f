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
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	listSuites(ctx context.Context) error
	newSuite(ctx context.Context) error
	useSuite(ctx context.Context, id string) error
	refreshSuites(ctx context.Context) error
	showQuota(ctx context.Context) error
	listActivity(ctx context.Context) error
	newActivity(ctx context.Context) error
	attach(ctx context.Context, resourceID string) error
	fetchAttachment(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the qaboard CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - suites         — list test suites (active one marked with *)
//	  - newsuite       — create a test suite
//	  - use <id>       — switch the active suite
//	  - refresh        — force a server round-trip and re-list suites
//	  - quota          — show the suite plan limit
//	  - activity       — list activity entries
//	  - newactivity    — create an activity entry
//	  - attach <id>    — get an upload URL for a resource attachment
//	  - fetch          — get a download URL for a stored attachment
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("qa> %s > ", statusFn()))
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
				printlnFn("Available commands: suites, newsuite, use <id>, refresh, quota, activity, newactivity, attach <id>, fetch, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "s", "suites":
			_ = a.listSuites(ctx)

		case "newsuite":
			_ = a.newSuite(ctx)

		case "use":
			if len(args) == 0 {
				printlnFn("Usage: use <id>")
				continue
			}
			_ = a.useSuite(ctx, args[0])

		case "refresh":
			_ = a.refreshSuites(ctx)

		case "quota":
			_ = a.showQuota(ctx)

		case "activity":
			_ = a.listActivity(ctx)

		case "newactivity":
			_ = a.newActivity(ctx)

		case "attach":
			if len(args) == 0 {
				printlnFn("Usage: attach <id>")
				continue
			}
			_ = a.attach(ctx, args[0])

		case "fetch":
			_ = a.fetchAttachment(ctx)

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
