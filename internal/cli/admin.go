package cli

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/kfitness/internal/common"
	"github.com/dmitrijs2005/kfitness/internal/models"
)

// List prints the admin panel: every student with their access status.
func (a *App) List(ctx context.Context) error {
	if err := a.session.RequireAdmin(); err != nil {
		return err
	}
	if err := a.session.Refresh(ctx); err != nil {
		return err
	}

	students := a.session.Students()
	if len(students) == 0 {
		fmt.Fprintln(a.out, "No students yet.")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUSERNAME\tNAME\tEXPIRES\tSTATUS\tPHOTOS")
	now := a.now()
	for _, u := range students {
		status := "active"
		if u.Expired(now) {
			status = "expired"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%d\n", u.ID, u.Username, u.FullName, u.ExpirationDate, status, len(u.ProgressPhotos))
	}
	return tw.Flush()
}

// Add walks through the student form starting from a blank template.
func (a *App) Add(ctx context.Context) error {
	if err := a.session.RequireAdmin(); err != nil {
		return err
	}

	u := a.session.NewStudentTemplate()
	if err := a.editForm(&u, true); err != nil {
		return err
	}

	created, err := a.session.AddUser(ctx, u)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Student %s created with id %d.\n", created.Username, created.ID)
	return nil
}

// Edit walks through the form for an existing user. Empty answers keep the
// current values.
func (a *App) Edit(ctx context.Context, args []string) error {
	if err := a.session.RequireAdmin(); err != nil {
		return err
	}
	if len(args) != 1 {
		return errUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	u, err := a.session.User(id)
	if err != nil {
		return err
	}

	if err := a.editForm(&u, false); err != nil {
		return err
	}
	// photos are managed by their own commands
	u.ProgressPhotos = nil

	updated, err := a.session.UpdateUser(ctx, u)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "User %d updated.\n", updated.ID)
	return nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	if err := a.session.RequireAdmin(); err != nil {
		return err
	}
	if len(args) != 1 {
		return errUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if cur, _ := a.session.Current(); cur.ID == id {
		return fmt.Errorf("you cannot delete your own account: %w", common.ErrForbidden)
	}
	u, err := a.session.User(id)
	if err != nil {
		return err
	}

	ok, err := Confirm(a.reader, fmt.Sprintf("Delete %s (%s)?", u.Username, displayName(u.FullName, u.Username)), a.out)
	if err != nil || !ok {
		return err
	}
	if err := a.session.DeleteUser(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "User %d deleted.\n", id)
	return nil
}

// editForm fills u from prompts. For a new user the username is required and
// the password is asked for once; for an existing one an empty password keeps
// the stored password.
func (a *App) editForm(u *models.User, isNew bool) error {
	var err error

	for {
		if u.Username, err = GetDefaultText(a.reader, "Username", u.Username, a.out); err != nil {
			return err
		}
		if u.Username != "" {
			break
		}
		fmt.Fprintln(a.out, "Username is required.")
	}

	prompt := "Password"
	if !isNew {
		prompt = "New password (empty keeps current)"
	}
	if u.Password, err = getPassword(a.out, prompt); err != nil {
		return err
	}

	if u.FullName, err = GetDefaultText(a.reader, "Full name", u.FullName, a.out); err != nil {
		return err
	}

	for {
		if u.ExpirationDate, err = GetDefaultText(a.reader, "Access expires on (YYYY-MM-DD)", u.ExpirationDate, a.out); err != nil {
			return err
		}
		if _, perr := time.Parse(models.DateLayout, u.ExpirationDate); perr == nil {
			break
		}
		fmt.Fprintln(a.out, "Please enter a date like 2025-12-31.")
	}

	if ok, err := Confirm(a.reader, "Edit workout plan?", a.out); err != nil {
		return err
	} else if ok {
		for _, d := range models.WeekDays {
			current := u.WorkoutPlan.Day(d)
			prompt := "Workout for " + string(d)
			if current != "" {
				prompt += fmt.Sprintf(" [%s] (empty keeps, - clears)", oneLine(current))
			}
			text, err := GetMultiline(a.reader, prompt, a.out)
			if err != nil {
				return err
			}
			switch text {
			case "":
				text = current
			case "-":
				text = ""
			}
			u.WorkoutPlan.Set(d, text)
		}
	}

	if ok, err := Confirm(a.reader, "Edit diet plan?", a.out); err != nil {
		return err
	} else if ok {
		for _, d := range models.WeekDays {
			meal := u.DietPlan.Day(d)
			for _, mt := range models.MealTimes {
				text, err := GetDefaultText(a.reader, fmt.Sprintf("%s %s", mealLabels[mt], d), meal.Get(mt), a.out)
				if err != nil {
					return err
				}
				meal.Set(mt, text)
			}
			u.DietPlan.Set(d, meal)
		}
	}
	return nil
}
