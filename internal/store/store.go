// Package store owns the canonical set of user records. The whole set is
// loaded once when the store is opened and written back as a single JSON
// blob after every mutation.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/kfitness/internal/logging"
	"github.com/dmitrijs2005/kfitness/internal/models"
	"github.com/dmitrijs2005/kfitness/internal/repositories/metadata"
)

// Store holds the user records in memory and persists them through a
// metadata.Repository. All access goes through View and Mutate, which
// serialize callers so that every operation sees the state left by the
// previous one.
type Store struct {
	mu    sync.Mutex
	repo  metadata.Repository
	key   string
	log   logging.Logger
	users []models.User
}

// Open creates a Store and loads the record set stored under key. An absent
// or unparseable blob is replaced by the seed set, which is persisted right
// away. A failed read is returned as an error and nothing is written, so a
// transient storage fault never overwrites existing records.
func Open(ctx context.Context, repo metadata.Repository, key string, log logging.Logger) (*Store, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s := &Store{repo: repo, key: key, log: log.With("component", "store", "key", key)}
	if err := s.load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load(ctx context.Context) error {
	raw, err := s.repo.Get(ctx, s.key)
	if err != nil {
		s.log.Error(ctx, "error loading users from storage", "error", err)
		return fmt.Errorf("load users: %w", err)
	}

	if raw != nil {
		users, perr := decode(raw)
		if perr == nil {
			s.users = users
			if migrateUsers(s.users) {
				s.log.Info(ctx, "backfilled legacy records")
				s.persist(ctx)
			}
			s.log.Debug(ctx, "users loaded", "count", len(s.users))
			return nil
		}
		s.log.Error(ctx, "stored users are not parseable, reseeding", "error", perr)
	}

	s.users = seedUsers()
	s.log.Info(ctx, "storage initialised with seed users", "count", len(s.users))
	s.persist(ctx)
	return nil
}

func decode(raw []byte) ([]models.User, error) {
	var users []models.User
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, err
	}
	if users == nil {
		return nil, errors.New("stored users are null")
	}
	return users, nil
}

// PersistAll writes the current record set. A failed write is logged and
// otherwise ignored: the in-memory state stays authoritative.
func (s *Store) PersistAll(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.persist(ctx)
}

func (s *Store) persist(ctx context.Context) {
	data, err := json.Marshal(s.users)
	if err != nil {
		s.log.Error(ctx, "error encoding users", "error", err)
		return
	}
	if err := s.repo.Set(ctx, s.key, data); err != nil {
		s.log.Error(ctx, "error saving users to storage", "error", err)
	}
}

// NextID returns one more than the highest id in users, or 1 for an empty set.
func NextID(users []models.User) int {
	next := 1
	for _, u := range users {
		if u.ID >= next {
			next = u.ID + 1
		}
	}
	return next
}

// NextID returns the id the next created user would get.
func (s *Store) NextID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return NextID(s.users)
}

// View calls fn with the current records. fn must not retain or modify the
// slice; copy what it needs with Clone.
func (s *Store) View(fn func(users []models.User)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.users)
}

// Mutate calls fn with a private copy of the records and, when fn succeeds,
// replaces the set with the returned slice and persists it. When fn fails
// nothing changes, whatever fn did to its copy.
func (s *Store) Mutate(ctx context.Context, fn func(users []models.User) ([]models.User, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated, err := fn(models.CloneAll(s.users))
	if err != nil {
		return err
	}
	s.users = updated
	s.persist(ctx)
	return nil
}

// Snapshot returns a deep copy of all records.
func (s *Store) Snapshot() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.CloneAll(s.users)
}
