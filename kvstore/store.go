// Package kvstore defines the key-value contract the budget ledger persists
// through, with Redis, local-file and in-memory implementations.
package kvstore

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned by Get when no value exists under the key.
var ErrNotFound = errors.New("key not found")

// Store is the minimal contract the ledger accessor is built on. Values are
// opaque strings (the ledger stores JSON-encoded aggregates).
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// Memory is an in-process Store, used in tests and as a throwaway backend.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

var _ Store = (*Memory)(nil)
