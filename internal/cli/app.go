package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/dmitrijs2005/kfitness/internal/common"
	"github.com/dmitrijs2005/kfitness/internal/logging"
	"github.com/dmitrijs2005/kfitness/internal/session"
)

var errUsage = errors.New("usage")

type App struct {
	session *session.Session
	log     logging.Logger
	reader  *bufio.Reader
	out     io.Writer
	now     func() time.Time
}

func NewApp(sess *session.Session, log logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		session: sess,
		log:     log.With("component", "cli"),
		reader:  bufio.NewReader(in),
		out:     out,
		now:     time.Now,
	}
}

// Run prints a greeting and serves commands until exit or end of input.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to K-Fitness (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}

func (a *App) isLoggedIn() bool {
	_, ok := a.session.Current()
	return ok
}

func (a *App) isAdmin() bool {
	return a.session.RequireAdmin() == nil
}

func (a *App) getStatus() string {
	u, ok := a.session.Current()
	if !ok {
		return ""
	}
	return fmt.Sprintf("(%s %s)", u.Username, u.Role)
}

// target resolves the user a photo command applies to. Admins name the user
// id as the first argument; students always act on themselves.
func (a *App) target(args []string, want int) (int, []string, error) {
	u, ok := a.session.Current()
	if !ok {
		return 0, nil, common.ErrNotLoggedIn
	}
	if !u.IsAdmin() {
		if len(args) < want {
			return 0, nil, errUsage
		}
		return u.ID, args, nil
	}
	if len(args) < want+1 {
		return 0, nil, errUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return 0, nil, err
	}
	return id, args[1:], nil
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid user id %q", s)
	}
	return id, nil
}
