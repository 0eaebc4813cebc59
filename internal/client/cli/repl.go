package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
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
	Refresh(ctx context.Context) error
	Select(ctx context.Context, key string) error
	Upload(ctx context.Context, path string) error
	Analyze(ctx context.Context, key string) error
	Tags(ctx context.Context) error
	Whoami(ctx context.Context) error
}

// Run starts the interactive loop on stdin. The preview handle of the last
// upload is released on every exit path.
func (a *App) Run(ctx context.Context) {
	defer a.setSelection("", nil)

	printlnFn("Welcome to WP Cloud vault (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

// runREPL reads a line, parses the first token as the command, and
// dispatches to methods on a. Unknown commands are reported back. The loop
// exits on scanner EOF or when the user types "exit" or "quit".
//
// Any error a handler returns is printed as a user-facing message; the loop
// itself stays alive after every failure.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	report := func(err error) {
		if err != nil {
			printlnFn("Error:", err.Error())
		}
	}

	for {
		printlnFn(fmt.Sprintf("wpc %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, refresh, upload <path>, select <key>, analyze [key], tags, whoami, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			report(a.Register(ctx))

		case "login":
			report(a.Login(ctx))

		case "l", "list", "refresh":
			report(a.Refresh(ctx))

		case "select":
			if len(args) == 0 {
				printlnFn("Usage: select <key>")
				continue
			}
			report(a.Select(ctx, args[0]))

		case "upload":
			if len(args) == 0 {
				printlnFn("Usage: upload <path>")
				continue
			}
			report(a.Upload(ctx, args[0]))

		case "analyze":
			key := ""
			if len(args) > 0 {
				key = args[0]
			}
			report(a.Analyze(ctx, key))

		case "tags":
			report(a.Tags(ctx))

		case "whoami":
			report(a.Whoami(ctx))

		case "logout":
			report(a.Logout(ctx))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
