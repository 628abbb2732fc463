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
	Retry(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Go(ctx context.Context, page string) error
	Open(ctx context.Context, id string) error
	Back(ctx context.Context) error
	Forward(ctx context.Context) error
	Listings(ctx context.Context) error
	Contact(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the realhub client.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current page and user (from statusFn) and accepts:
//
//	Always:
//	  - help               — show available commands
//	  - go <page>          — navigate to a page by name
//	  - open <propertyId>  — open a listing's detail page
//	  - back | forward     — move through navigation history
//	  - listings           — browse cached listings
//	  - retry              — re-run the session check after a connection error
//	  - whoami             — show the signed-in user
//	  - exit | quit        — leave the program
//
//	Not logged in:
//	  - register           — create an account
//	  - login              — authenticate
//
//	Logged in:
//	  - contact            — send a message to an agent
//	  - logout             — log out
//
// Any errors returned by command handlers are surfaced to the user here;
// handlers own their detailed logging.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("realhub> %s > ", statusFn()))
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

		var err error

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: go <page>, open <id>, back, forward, listings, contact, whoami, logout, exit")
			} else {
				printlnFn("Available commands: go <page>, open <id>, back, forward, listings, register, login, retry, exit")
			}

		case "register":
			err = a.Register(ctx)

		case "login":
			err = a.Login(ctx)

		case "logout":
			err = a.Logout(ctx)

		case "retry":
			err = a.Retry(ctx)

		case "whoami":
			err = a.WhoAmI(ctx)

		case "go":
			if len(args) == 0 {
				printlnFn("Usage: go <page>")
				continue
			}
			err = a.Go(ctx, args[0])

		case "open":
			if len(args) == 0 {
				printlnFn("Usage: open <propertyId>")
				continue
			}
			err = a.Open(ctx, args[0])

		case "back":
			err = a.Back(ctx)

		case "forward":
			err = a.Forward(ctx)

		case "l", "listings":
			err = a.Listings(ctx)

		case "contact":
			err = a.Contact(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err.Error())
		}
	}
}
