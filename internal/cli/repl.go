package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	currentScreen() Screen
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
}

var screenCommands = map[Screen][]string{
	ScreenLogin:          {"signup", "login", "help", "exit"},
	ScreenHome:           {"whoami", "logout", "help", "exit"},
	ScreenAdminDashboard: {"logout", "help", "exit"},
}

func allowed(s Screen, cmd string) bool {
	for _, c := range screenCommands[s] {
		if c == cmd {
			return true
		}
	}
	return false
}

// runREPL starts a simple read–eval–print loop for the hotelres console.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a' if the command belongs to the current screen.
// The loop exits on EOF, when the user types "exit" or "quit", or when ctx
// is cancelled.
//
// Errors returned by command handlers are ignored here; handlers print their
// own messages.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}

		printlnFn(fmt.Sprintf("hotel %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		if cmd == "quit" {
			cmd = "exit"
		}

		screen := a.currentScreen()
		if !allowed(screen, cmd) {
			printlnFn("Unknown command:", cmd)
			continue
		}

		switch cmd {
		case "help":
			printlnFn("Available commands: " + strings.Join(screenCommands[screen], ", "))

		case "signup":
			_ = a.Signup(ctx)

		case "login":
			_ = a.Login(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit":
			printlnFn("Bye!")
			return
		}
	}
}
