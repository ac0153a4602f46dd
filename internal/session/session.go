// Package session keeps the logged-in user and a cached copy of the user
// directory, and applies the role and expiration gates the directory itself
// does not enforce.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/kfitness/internal/common"
	"github.com/dmitrijs2005/kfitness/internal/logging"
	"github.com/dmitrijs2005/kfitness/internal/models"
	"github.com/dmitrijs2005/kfitness/internal/services"
)

// Session wraps a DirectoryService for one interactive user.
type Session struct {
	mu      sync.RWMutex
	dir     services.DirectoryService
	log     logging.Logger
	current *models.User
	users   []models.User
}

func New(dir services.DirectoryService, log logging.Logger) *Session {
	return &Session{dir: dir, log: log.With("component", "session")}
}

// Login authenticates and, on success, caches the user list.
func (s *Session) Login(ctx context.Context, username, password string) (models.User, error) {
	u, err := s.dir.Authenticate(ctx, username, password)
	if err != nil {
		return models.User{}, err
	}
	if u == nil {
		s.log.Warn(ctx, "login rejected", "username", username)
		return models.User{}, common.ErrInvalidCredentials
	}

	users, err := s.dir.ListUsers(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("load users: %w", err)
	}

	s.mu.Lock()
	s.current = u
	s.users = users
	s.mu.Unlock()

	s.log.Info(ctx, "logged in", "id", u.ID, "role", u.Role)
	return u.Clone(), nil
}

func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	s.users = nil
}

// Current returns the logged-in user.
func (s *Session) Current() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return models.User{}, false
	}
	return s.current.Clone(), true
}

// Users returns the cached user list.
func (s *Session) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.CloneAll(s.users)
}

// Students returns the cached users with the student role.
func (s *Session) Students() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		if u.Role == models.RoleStudent {
			out = append(out, u.Clone())
		}
	}
	return out
}

// User returns the cached record with the given id.
func (s *Session) User(id int) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u.Clone(), nil
		}
	}
	return models.User{}, fmt.Errorf("user %d: %w", id, common.ErrorNotFound)
}

// Refresh reloads the cached user list and the current user from the
// directory. A current user that no longer exists is logged out.
func (s *Session) Refresh(ctx context.Context) error {
	if _, ok := s.Current(); !ok {
		return common.ErrNotLoggedIn
	}
	users, err := s.dir.ListUsers(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = users
	if s.current == nil {
		return nil
	}
	for _, u := range users {
		if u.ID == s.current.ID {
			c := u.Clone()
			s.current = &c
			return nil
		}
	}
	s.log.Warn(ctx, "current user no longer exists, logging out", "id", s.current.ID)
	s.current = nil
	s.users = nil
	return common.ErrNotLoggedIn
}

// RequireAdmin fails unless an admin is logged in.
func (s *Session) RequireAdmin() error {
	u, ok := s.Current()
	if !ok {
		return common.ErrNotLoggedIn
	}
	if !u.IsAdmin() {
		return common.ErrForbidden
	}
	return nil
}

// StudentPlan returns the current student's record, or ErrAccessExpired when
// their access ended before now.
func (s *Session) StudentPlan(now time.Time) (models.User, error) {
	u, ok := s.Current()
	if !ok {
		return models.User{}, common.ErrNotLoggedIn
	}
	if u.Role != models.RoleStudent {
		return models.User{}, common.ErrForbidden
	}
	if u.Expired(now) {
		return models.User{}, common.ErrAccessExpired
	}
	return u, nil
}

// canEdit allows admins to edit anyone and students to edit themselves.
func (s *Session) canEdit(id int) error {
	u, ok := s.Current()
	if !ok {
		return common.ErrNotLoggedIn
	}
	if u.IsAdmin() || u.ID == id {
		return nil
	}
	return common.ErrForbidden
}

// replace puts u into the cache, appending it when it is new.
func (s *Session) replace(u models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	found := false
	for i := range s.users {
		if s.users[i].ID == u.ID {
			s.users[i] = u.Clone()
			found = true
			break
		}
	}
	if !found {
		s.users = append(s.users, u.Clone())
	}
	if s.current != nil && s.current.ID == u.ID {
		c := u.Clone()
		s.current = &c
	}
}

func (s *Session) AddUser(ctx context.Context, data models.User) (models.User, error) {
	if err := s.RequireAdmin(); err != nil {
		return models.User{}, err
	}
	u, err := s.dir.CreateUser(ctx, data)
	if err != nil {
		return models.User{}, err
	}
	s.replace(u)
	return u, nil
}

func (s *Session) UpdateUser(ctx context.Context, data models.User) (models.User, error) {
	if err := s.RequireAdmin(); err != nil {
		return models.User{}, err
	}
	u, err := s.dir.UpdateUser(ctx, data)
	if err != nil {
		return models.User{}, err
	}
	s.replace(u)
	return u, nil
}

// DeleteUser removes a user. Admins cannot delete their own account.
func (s *Session) DeleteUser(ctx context.Context, id int) error {
	if err := s.RequireAdmin(); err != nil {
		return err
	}
	if cur, _ := s.Current(); cur.ID == id {
		return fmt.Errorf("delete own account: %w", common.ErrForbidden)
	}
	if err := s.dir.DeleteUser(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.users[:0]
	for _, u := range s.users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	s.users = kept
	return nil
}

func (s *Session) AddPhoto(ctx context.Context, userID int, photo models.NewPhoto) (models.User, error) {
	if err := s.canEdit(userID); err != nil {
		return models.User{}, err
	}
	u, err := s.dir.AddProgressPhoto(ctx, userID, photo)
	if err != nil {
		return models.User{}, err
	}
	s.replace(u)
	return u, nil
}

func (s *Session) DeletePhoto(ctx context.Context, userID int, photoID string) (models.User, error) {
	if err := s.canEdit(userID); err != nil {
		return models.User{}, err
	}
	u, err := s.dir.DeleteProgressPhoto(ctx, userID, photoID)
	if err != nil {
		return models.User{}, err
	}
	s.replace(u)
	return u, nil
}

// NewStudentTemplate returns the directory's blank student record.
func (s *Session) NewStudentTemplate() models.User {
	return s.dir.NewStudentTemplate()
}
