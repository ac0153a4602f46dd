package models

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/kfitness/internal/common"
)

// WeekDay is one of the six training days. Sunday is not part of a plan.
type WeekDay string

const (
	Monday    WeekDay = "monday"
	Tuesday   WeekDay = "tuesday"
	Wednesday WeekDay = "wednesday"
	Thursday  WeekDay = "thursday"
	Friday    WeekDay = "friday"
	Saturday  WeekDay = "saturday"
)

// WeekDays lists the plan days in order.
var WeekDays = []WeekDay{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// MealTime is one of the four meal slots of a day.
type MealTime string

const (
	Breakfast MealTime = "breakfast"
	Lunch     MealTime = "lunch"
	Snack     MealTime = "snack"
	Dinner    MealTime = "dinner"
)

// MealTimes lists the meal slots in order.
var MealTimes = []MealTime{Breakfast, Lunch, Snack, Dinner}

// ParseWeekDay maps a case-insensitive day name to a WeekDay.
func ParseWeekDay(s string) (WeekDay, error) {
	d := WeekDay(strings.ToLower(strings.TrimSpace(s)))
	for _, w := range WeekDays {
		if w == d {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: %q", common.ErrInvalidWeekDay, s)
}

// Meal holds the free-text instructions for each slot of one day.
type Meal struct {
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Snack     string `json:"snack"`
	Dinner    string `json:"dinner"`
}

// Get returns the text of slot t.
func (m Meal) Get(t MealTime) string {
	switch t {
	case Breakfast:
		return m.Breakfast
	case Lunch:
		return m.Lunch
	case Snack:
		return m.Snack
	case Dinner:
		return m.Dinner
	}
	return ""
}

// Set replaces the text of slot t.
func (m *Meal) Set(t MealTime, text string) {
	switch t {
	case Breakfast:
		m.Breakfast = text
	case Lunch:
		m.Lunch = text
	case Snack:
		m.Snack = text
	case Dinner:
		m.Dinner = text
	}
}

// WorkoutPlan maps every weekday to its workout instructions.
type WorkoutPlan struct {
	Monday    string `json:"monday"`
	Tuesday   string `json:"tuesday"`
	Wednesday string `json:"wednesday"`
	Thursday  string `json:"thursday"`
	Friday    string `json:"friday"`
	Saturday  string `json:"saturday"`
}

func (p *WorkoutPlan) slot(d WeekDay) *string {
	switch d {
	case Monday:
		return &p.Monday
	case Tuesday:
		return &p.Tuesday
	case Wednesday:
		return &p.Wednesday
	case Thursday:
		return &p.Thursday
	case Friday:
		return &p.Friday
	case Saturday:
		return &p.Saturday
	}
	return nil
}

// Day returns the workout for d.
func (p WorkoutPlan) Day(d WeekDay) string {
	if s := p.slot(d); s != nil {
		return *s
	}
	return ""
}

// Set replaces the workout for d. Unknown days are ignored.
func (p *WorkoutPlan) Set(d WeekDay, text string) {
	if s := p.slot(d); s != nil {
		*s = text
	}
}

// DietPlan maps every weekday to its meals.
type DietPlan struct {
	Monday    Meal `json:"monday"`
	Tuesday   Meal `json:"tuesday"`
	Wednesday Meal `json:"wednesday"`
	Thursday  Meal `json:"thursday"`
	Friday    Meal `json:"friday"`
	Saturday  Meal `json:"saturday"`
}

func (p *DietPlan) slot(d WeekDay) *Meal {
	switch d {
	case Monday:
		return &p.Monday
	case Tuesday:
		return &p.Tuesday
	case Wednesday:
		return &p.Wednesday
	case Thursday:
		return &p.Thursday
	case Friday:
		return &p.Friday
	case Saturday:
		return &p.Saturday
	}
	return nil
}

// Day returns the meals for d.
func (p DietPlan) Day(d WeekDay) Meal {
	if m := p.slot(d); m != nil {
		return *m
	}
	return Meal{}
}

// Set replaces the meals for d. Unknown days are ignored.
func (p *DietPlan) Set(d WeekDay, m Meal) {
	if s := p.slot(d); s != nil {
		*s = m
	}
}

// UniformDiet returns a plan with the same meal on every day.
func UniformDiet(m Meal) DietPlan {
	var p DietPlan
	for _, d := range WeekDays {
		p.Set(d, m)
	}
	return p
}
