package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/kfitness/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and opens a session. Students land on their
// plan for today; admins on the student list.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		a.session.Logout()
	}

	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out, "Password")
	if err != nil {
		return err
	}

	u, err := a.session.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			fmt.Fprintln(a.out, "Invalid username or password.")
			return nil
		}
		return err
	}

	fmt.Fprintf(a.out, "Hello, %s!\n", displayName(u.FullName, u.Username))
	if u.IsAdmin() {
		return a.List(ctx)
	}
	if d, ok := today(a.now()); ok {
		return a.Plan(ctx, []string{string(d)})
	}
	return a.Plan(ctx, nil)
}

func (a *App) Logout(ctx context.Context) error {
	a.session.Logout()
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

func displayName(full, username string) string {
	if full != "" {
		return full
	}
	return username
}
