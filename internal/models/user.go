// Package models defines the records kept in the student directory.
package models

import (
	"bytes"
	"encoding/json"
	"time"
)

// DateLayout is the layout of User.ExpirationDate.
const DateLayout = "2006-01-02"

// Role determines which capabilities and views apply to an account.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleStudent
}

// UnmarshalJSON accepts both the string form and the legacy numeric form
// (0 = admin, 1 = student). Anything else decodes as RoleStudent, so one bad
// record never makes the whole set unreadable and never grants admin.
func (r *Role) UnmarshalJSON(b []byte) error {
	*r = RoleStudent
	if string(bytes.TrimSpace(b)) == "null" {
		return nil
	}

	var n int
	if err := json.Unmarshal(b, &n); err == nil {
		if n == 0 {
			*r = RoleAdmin
		}
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil && Role(s).Valid() {
		*r = Role(s)
	}
	return nil
}

// ProgressPhoto is a single uploaded image, kept inline as a data URI.
type ProgressPhoto struct {
	ID           string    `json:"id"`
	Date         time.Time `json:"date"`
	ImageDataURL string    `json:"imageDataUrl"`
}

// NewPhoto is the caller-supplied part of a ProgressPhoto; the id is
// assigned by the directory.
type NewPhoto struct {
	Date         time.Time
	ImageDataURL string
}

// User is an admin or student account.
//
// ID 0 marks a record that has not been persisted yet (see the student
// template); it never appears in the store.
type User struct {
	ID             int             `json:"id"`
	Username       string          `json:"username"`
	Password       string          `json:"password"`
	Role           Role            `json:"role"`
	FullName       string          `json:"fullName"`
	ExpirationDate string          `json:"expirationDate"`
	WorkoutPlan    WorkoutPlan     `json:"workoutPlan"`
	DietPlan       DietPlan        `json:"dietPlan"`
	ProgressPhotos []ProgressPhoto `json:"progressPhotos"`
}

// Clone returns a deep copy of u that shares no mutable state with it.
func (u User) Clone() User {
	c := u
	if u.ProgressPhotos != nil {
		c.ProgressPhotos = make([]ProgressPhoto, len(u.ProgressPhotos))
		copy(c.ProgressPhotos, u.ProgressPhotos)
	}
	return c
}

// IsAdmin reports whether u has the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Expires returns the instant access ends: 00:00 UTC of ExpirationDate.
func (u User) Expires() (time.Time, error) {
	return time.ParseInLocation(DateLayout, u.ExpirationDate, time.UTC)
}

// Expired reports whether the expiration date lies in the past relative to
// now. A date that cannot be parsed counts as expired.
func (u User) Expired(now time.Time) bool {
	exp, err := u.Expires()
	if err != nil {
		return true
	}
	return exp.Before(now)
}

// PhotoIndex returns the position of the photo with the given id, or -1.
func (u User) PhotoIndex(id string) int {
	for i, p := range u.ProgressPhotos {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// CloneAll deep-copies a slice of users.
func CloneAll(users []User) []User {
	out := make([]User, len(users))
	for i, u := range users {
		out[i] = u.Clone()
	}
	return out
}
