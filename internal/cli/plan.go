package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dmitrijs2005/kfitness/internal/common"
	"github.com/dmitrijs2005/kfitness/internal/models"
)

var mealLabels = map[models.MealTime]string{
	models.Breakfast: "Breakfast",
	models.Lunch:     "Lunch",
	models.Snack:     "Snack",
	models.Dinner:    "Dinner",
}

// today maps a local weekday to a plan day. Sunday has none.
func today(now time.Time) (models.WeekDay, bool) {
	wd := now.Weekday()
	if wd == time.Sunday {
		return "", false
	}
	return models.WeekDays[wd-1], true
}

// Plan shows the current student's workout and diet for one day, or for the
// whole week when no day is given.
func (a *App) Plan(ctx context.Context, args []string) error {
	if len(args) > 1 {
		return errUsage
	}
	if err := a.session.Refresh(ctx); err != nil {
		return err
	}

	u, err := a.session.StudentPlan(a.now())
	if errors.Is(err, common.ErrAccessExpired) {
		cur, _ := a.session.Current()
		fmt.Fprintf(a.out, "Your access expired on %s. Please contact your coach to renew it.\n", cur.ExpirationDate)
		return nil
	}
	if err != nil {
		return err
	}

	days := models.WeekDays
	if len(args) == 1 {
		d, err := models.ParseWeekDay(args[0])
		if err != nil {
			return err
		}
		days = []models.WeekDay{d}
	}

	fmt.Fprintf(a.out, "Access valid until %s\n", u.ExpirationDate)
	for _, d := range days {
		printDay(a.out, u, d)
	}
	return nil
}

func printDay(w io.Writer, u models.User, d models.WeekDay) {
	fmt.Fprintf(w, "\n== %s ==\n", strings.ToUpper(string(d)))
	fmt.Fprintln(w, "Workout:")
	fmt.Fprintln(w, indent(orNone(u.WorkoutPlan.Day(d))))
	fmt.Fprintln(w, "Diet:")
	meal := u.DietPlan.Day(d)
	for _, mt := range models.MealTimes {
		fmt.Fprintf(w, "  %-9s %s\n", mealLabels[mt]+":", orNone(meal.Get(mt)))
	}
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "(none)"
	}
	return s
}

func indent(s string) string {
	return "  " + strings.ReplaceAll(s, "\n", "\n  ")
}
