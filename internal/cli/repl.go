package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Plan(ctx context.Context, args []string) error
	Photos(ctx context.Context, args []string) error
	AddPhoto(ctx context.Context, args []string) error
	DeletePhoto(ctx context.Context, args []string) error
	Export(ctx context.Context, args []string) error
}

const (
	helpGuest   = "Available commands: login, exit"
	helpAdmin   = "Available commands: list, add, edit <id>, delete <id>, photos <id>, addphoto <id> <file>, delphoto <id> <photoId>, export <id> <photoId> <file>, logout, exit"
	helpStudent = "Available commands: plan [day], photos, addphoto <file>, delphoto <photoId>, export <photoId> <file>, logout, exit"
)

var usage = map[string][2]string{
	// command: {admin, student}
	"edit":     {"edit <id>", ""},
	"delete":   {"delete <id>", ""},
	"photos":   {"photos <id>", "photos"},
	"addphoto": {"addphoto <id> <file>", "addphoto <file>"},
	"delphoto": {"delphoto <id> <photoId>", "delphoto <photoId>"},
	"export":   {"export <id> <photoId> <file>", "export <photoId> <file>"},
}

// runREPL reads one command per line from reader, dispatches it to a and
// writes prompts and messages to w.
//
// Commands that need a login are refused until one succeeds. A command error
// is printed and the loop goes on. The loop exits on end of input or when the
// user types "exit" or "quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprintf(w, "kfit %s> ", statusFn())
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			switch {
			case !a.isLoggedIn():
				fmt.Fprintln(w, helpGuest)
			case a.isAdmin():
				fmt.Fprintln(w, helpAdmin)
			default:
				fmt.Fprintln(w, helpStudent)
			}
			continue
		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return
		case "login":
			report(w, cmd, a.isAdmin(), a.Login(ctx))
			continue
		}

		if !a.isLoggedIn() {
			fmt.Fprintln(w, "Please log in first.")
			continue
		}

		switch cmd {
		case "logout":
			err = a.Logout(ctx)
		case "list":
			err = a.List(ctx)
		case "add":
			err = a.Add(ctx)
		case "edit":
			err = a.Edit(ctx, args)
		case "delete":
			err = a.Delete(ctx, args)
		case "plan":
			err = a.Plan(ctx, args)
		case "photos":
			err = a.Photos(ctx, args)
		case "addphoto":
			err = a.AddPhoto(ctx, args)
		case "delphoto":
			err = a.DeletePhoto(ctx, args)
		case "export":
			err = a.Export(ctx, args)
		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
			continue
		}
		report(w, cmd, a.isAdmin(), err)
	}
}

func report(w io.Writer, cmd string, admin bool, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, errUsage) {
		u := usage[cmd]
		form := u[1]
		if admin {
			form = u[0]
		}
		if form == "" {
			form = cmd
		}
		fmt.Fprintln(w, "Usage:", form)
		return
	}
	fmt.Fprintln(w, "Error:", err)
}
