package repository

import (
	"context"
	"sync"

	"quotedesk/internal/usecase/interfaces"
)

// KeyValueMemoryRepository keeps values in process memory. Used for local
// runs and tests.
type KeyValueMemoryRepository struct {
	mu     sync.RWMutex
	values map[string][]byte
}

var _ interfaces.IKeyValueStore = (*KeyValueMemoryRepository)(nil)

func NewKeyValueMemoryRepository() *KeyValueMemoryRepository {
	return &KeyValueMemoryRepository{values: map[string][]byte{}}
}

func (r *KeyValueMemoryRepository) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.values[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

func (r *KeyValueMemoryRepository) Set(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = append([]byte(nil), value...)
	return nil
}

func (r *KeyValueMemoryRepository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.values, key)
	return nil
}
