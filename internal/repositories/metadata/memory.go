package metadata

import (
	"context"
	"sync"
)

// MemoryRepository is an in-process Repository. Values are copied on the
// way in and out. SetErr, when non-nil, is returned by every Set call, which
// lets tests simulate a failing storage write.
type MemoryRepository struct {
	mu     sync.RWMutex
	values map[string][]byte
	SetErr error
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{values: make(map[string][]byte)}
}

func (r *MemoryRepository) Get(ctx context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.values[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

func (r *MemoryRepository) Set(ctx context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.SetErr != nil {
		return r.SetErr
	}
	r.values[key] = append([]byte(nil), value...)
	return nil
}
