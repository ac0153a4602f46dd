// Package services contains the directory service: the only entry point the
// session layer and the CLI use to read and change user records.
package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/dmitrijs2005/kfitness/internal/common"
	"github.com/dmitrijs2005/kfitness/internal/logging"
	"github.com/dmitrijs2005/kfitness/internal/models"
	"github.com/dmitrijs2005/kfitness/internal/store"
	"github.com/google/uuid"
)

// DirectoryService defines the user directory operations.
//
// Contract:
//   - every returned user is a deep copy; editing it never changes the store;
//   - Authenticate returns (nil, nil) when no record matches;
//   - UpdateUser, AddProgressPhoto and DeleteProgressPhoto fail with
//     common.ErrorNotFound for an unknown user id;
//   - DeleteUser and DeleteProgressPhoto are no-ops for absent targets.
//
// No authorization is performed here; callers gate on role and expiration.
type DirectoryService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
	NewStudentTemplate() models.User
	CreateUser(ctx context.Context, data models.User) (models.User, error)
	UpdateUser(ctx context.Context, data models.User) (models.User, error)
	DeleteUser(ctx context.Context, id int) error
	AddProgressPhoto(ctx context.Context, userID int, photo models.NewPhoto) (models.User, error)
	DeleteProgressPhoto(ctx context.Context, userID int, photoID string) (models.User, error)
}

// Option customises a directory service.
type Option func(*directoryService)

// WithLatency delays every operation by d to mimic a remote API.
func WithLatency(d time.Duration) Option {
	return func(s *directoryService) { s.latency = d }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *directoryService) { s.now = now }
}

// WithPhotoIDs replaces the photo id generator.
func WithPhotoIDs(gen func() (string, error)) Option {
	return func(s *directoryService) { s.newPhotoID = gen }
}

type directoryService struct {
	store      *store.Store
	log        logging.Logger
	latency    time.Duration
	now        func() time.Time
	newPhotoID func() (string, error)
}

// NewDirectoryService builds a DirectoryService over an opened store.
func NewDirectoryService(st *store.Store, log logging.Logger, opts ...Option) DirectoryService {
	s := &directoryService{
		store:      st,
		log:        log.With("component", "directory"),
		now:        time.Now,
		newPhotoID: timeOrderedID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// timeOrderedID returns a UUIDv7, whose leading bits are the creation time.
func timeOrderedID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func (s *directoryService) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.latency)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func indexOf(users []models.User, id int) int {
	for i, u := range users {
		if u.ID == id {
			return i
		}
	}
	return -1
}

func notFound(id int) error {
	return fmt.Errorf("user %d: %w", id, common.ErrorNotFound)
}

// checkRole accepts a known role or an empty one (filled in by the caller).
func checkRole(r models.Role) error {
	if r == "" || r.Valid() {
		return nil
	}
	return fmt.Errorf("%w: %q", common.ErrInvalidRole, r)
}

func (s *directoryService) ListUsers(ctx context.Context) ([]models.User, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	return s.store.Snapshot(), nil
}

// Authenticate looks for a record with exactly this username and password.
// The first match wins.
func (s *directoryService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	var found *models.User
	s.store.View(func(users []models.User) {
		for _, u := range users {
			if u.Username == username && subtle.ConstantTimeCompare([]byte(u.Password), []byte(password)) == 1 {
				c := u.Clone()
				found = &c
				return
			}
		}
	})
	return found, nil
}

// NewStudentTemplate returns an unsaved (id 0) student whose access runs one
// calendar month from now.
func (s *directoryService) NewStudentTemplate() models.User {
	return models.User{
		ID:             0,
		Role:           models.RoleStudent,
		ExpirationDate: s.now().AddDate(0, 1, 0).UTC().Format(models.DateLayout),
		ProgressPhotos: []models.ProgressPhoto{},
	}
}

// CreateUser stores data under a fresh id. Any id or photos in data are
// ignored. An empty role means student; an unknown one is rejected.
func (s *directoryService) CreateUser(ctx context.Context, data models.User) (models.User, error) {
	if err := checkRole(data.Role); err != nil {
		return models.User{}, err
	}
	if err := s.wait(ctx); err != nil {
		return models.User{}, err
	}

	var created models.User
	err := s.store.Mutate(ctx, func(users []models.User) ([]models.User, error) {
		created = data.Clone()
		created.ID = store.NextID(users)
		created.ProgressPhotos = []models.ProgressPhoto{}
		if created.Role == "" {
			created.Role = models.RoleStudent
		}
		return append(users, created), nil
	})
	if err != nil {
		return models.User{}, err
	}

	s.log.Info(ctx, "user created", "id", created.ID, "role", created.Role)
	return created.Clone(), nil
}

// mergeUser applies an update submission to the stored record. Every field
// of incoming replaces the stored one, with these exceptions:
//   - ID always stays the stored id;
//   - an empty Password keeps the stored password;
//   - an empty Role keeps the stored role;
//   - a nil ProgressPhotos means the field was not submitted and keeps the
//     stored photos (an empty non-nil list clears them).
//
// Plans are replaced wholesale, so callers must submit complete plans.
func mergeUser(stored, incoming models.User) models.User {
	merged := incoming.Clone()
	merged.ID = stored.ID
	if incoming.Password == "" {
		merged.Password = stored.Password
	}
	if incoming.Role == "" {
		merged.Role = stored.Role
	}
	if incoming.ProgressPhotos == nil {
		merged.ProgressPhotos = stored.Clone().ProgressPhotos
	}
	return merged
}

func (s *directoryService) UpdateUser(ctx context.Context, data models.User) (models.User, error) {
	if err := checkRole(data.Role); err != nil {
		return models.User{}, err
	}
	if err := s.wait(ctx); err != nil {
		return models.User{}, err
	}

	var updated models.User
	err := s.store.Mutate(ctx, func(users []models.User) ([]models.User, error) {
		i := indexOf(users, data.ID)
		if i < 0 {
			return nil, notFound(data.ID)
		}
		updated = mergeUser(users[i], data)
		users[i] = updated
		return users, nil
	})
	if err != nil {
		s.log.Warn(ctx, "update failed", "id", data.ID, "error", err)
		return models.User{}, err
	}

	s.log.Info(ctx, "user updated", "id", updated.ID)
	return updated.Clone(), nil
}

func (s *directoryService) DeleteUser(ctx context.Context, id int) error {
	if err := s.wait(ctx); err != nil {
		return err
	}

	return s.store.Mutate(ctx, func(users []models.User) ([]models.User, error) {
		kept := users[:0]
		for _, u := range users {
			if u.ID != id {
				kept = append(kept, u)
			}
		}
		if len(kept) < len(users) {
			s.log.Info(ctx, "user deleted", "id", id)
		}
		return kept, nil
	})
}

// AddProgressPhoto appends a photo with a fresh id to the user's photos.
func (s *directoryService) AddProgressPhoto(ctx context.Context, userID int, photo models.NewPhoto) (models.User, error) {
	if err := s.wait(ctx); err != nil {
		return models.User{}, err
	}

	id, err := s.newPhotoID()
	if err != nil {
		return models.User{}, fmt.Errorf("generate photo id: %w", err)
	}

	var updated models.User
	err = s.store.Mutate(ctx, func(users []models.User) ([]models.User, error) {
		i := indexOf(users, userID)
		if i < 0 {
			return nil, notFound(userID)
		}
		users[i].ProgressPhotos = append(users[i].ProgressPhotos, models.ProgressPhoto{
			ID:           id,
			Date:         photo.Date,
			ImageDataURL: photo.ImageDataURL,
		})
		updated = users[i]
		return users, nil
	})
	if err != nil {
		s.log.Warn(ctx, "add photo failed", "user", userID, "error", err)
		return models.User{}, err
	}

	s.log.Info(ctx, "progress photo added", "user", userID, "photo", id)
	return updated.Clone(), nil
}

func (s *directoryService) DeleteProgressPhoto(ctx context.Context, userID int, photoID string) (models.User, error) {
	if err := s.wait(ctx); err != nil {
		return models.User{}, err
	}

	var updated models.User
	err := s.store.Mutate(ctx, func(users []models.User) ([]models.User, error) {
		i := indexOf(users, userID)
		if i < 0 {
			return nil, notFound(userID)
		}
		if j := users[i].PhotoIndex(photoID); j >= 0 {
			photos := users[i].ProgressPhotos
			users[i].ProgressPhotos = append(photos[:j:j], photos[j+1:]...)
		}
		updated = users[i]
		return users, nil
	})
	if err != nil {
		s.log.Warn(ctx, "delete photo failed", "user", userID, "error", err)
		return models.User{}, err
	}

	return updated.Clone(), nil
}
