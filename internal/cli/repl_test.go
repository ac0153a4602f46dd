package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool
	admin    bool
	err      error

	calls []string
}

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, strings.TrimSpace(name+" "+strings.Join(args, " ")))
	return f.err
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) isAdmin() bool    { return f.admin }
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login", nil)
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout", nil)
}
func (f *fakeExec) List(ctx context.Context) error { return f.record("list", nil) }
func (f *fakeExec) Add(ctx context.Context) error  { return f.record("add", nil) }
func (f *fakeExec) Edit(ctx context.Context, args []string) error {
	return f.record("edit", args)
}
func (f *fakeExec) Delete(ctx context.Context, args []string) error {
	return f.record("delete", args)
}
func (f *fakeExec) Plan(ctx context.Context, args []string) error {
	return f.record("plan", args)
}
func (f *fakeExec) Photos(ctx context.Context, args []string) error {
	return f.record("photos", args)
}
func (f *fakeExec) AddPhoto(ctx context.Context, args []string) error {
	return f.record("addphoto", args)
}
func (f *fakeExec) DeletePhoto(ctx context.Context, args []string) error {
	return f.record("delphoto", args)
}
func (f *fakeExec) Export(ctx context.Context, args []string) error {
	return f.record("export", args)
}

func reader(lines ...string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n")))
}

func TestRunREPL_DispatchesWithArgs(t *testing.T) {
	var out bytes.Buffer
	exec := &fakeExec{}

	runREPL(context.Background(), exec, func() string { return "s" }, reader(
		"list",
		"login",
		"",
		"plan monday",
		"photos 2",
		"addphoto 2 a.png",
		"delphoto 2 abc",
		"export 2 abc out.png",
		"edit 3",
		"delete 3",
		"add",
		"logout",
		"exit",
		"list",
	), &out)

	assert.Equal(t, []string{
		"login",
		"plan monday",
		"photos 2",
		"addphoto 2 a.png",
		"delphoto 2 abc",
		"export 2 abc out.png",
		"edit 3",
		"delete 3",
		"add",
		"logout",
	}, exec.calls)
	assert.Contains(t, out.String(), "Please log in first.")
	assert.Contains(t, out.String(), "Bye!")
	assert.Contains(t, out.String(), "kfit s> ")
}

func TestRunREPL_HelpDependsOnRole(t *testing.T) {
	tests := []struct {
		name string
		exec *fakeExec
		want string
	}{
		{"guest", &fakeExec{}, helpGuest},
		{"admin", &fakeExec{loggedIn: true, admin: true}, helpAdmin},
		{"student", &fakeExec{loggedIn: true}, helpStudent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			runREPL(context.Background(), tt.exec, func() string { return "" }, reader("help", "quit"), &out)
			assert.Contains(t, out.String(), tt.want)
		})
	}
}

func TestRunREPL_ReportsErrorsAndUsage(t *testing.T) {
	var out bytes.Buffer
	exec := &fakeExec{loggedIn: true, err: errUsage}

	runREPL(context.Background(), exec, func() string { return "" }, reader("addphoto", "foobar"), &out)

	assert.Contains(t, out.String(), "Usage: addphoto <file>\n")
	assert.Contains(t, out.String(), "Unknown command: foobar\n")

	out.Reset()
	exec.admin = true
	runREPL(context.Background(), exec, func() string { return "" }, reader("export 1"), &out)
	assert.Contains(t, out.String(), "Usage: export <id> <photoId> <file>\n")

	out.Reset()
	exec.err = errors.New("boom")
	runREPL(context.Background(), exec, func() string { return "" }, reader("export 1 2 3"), &out)
	assert.Contains(t, out.String(), "Error: boom\n")
}

func TestRunREPL_LastLineWithoutNewline(t *testing.T) {
	exec := &fakeExec{loggedIn: true}

	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("plan")), io.Discard)

	assert.Equal(t, []string{"plan"}, exec.calls)
}
