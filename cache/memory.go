package cache

import (
	"context"
	"sync"
)

type memoryCache struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewMemory returns an unbounded, process-lifetime implementation of Cache
func NewMemory() Cache {
	return &memoryCache{
		entries: map[string]string{},
	}
}

func (m *memoryCache) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.entries[key]
	if !ok {
		return "", ErrNotFound
	}

	return value, nil
}

func (m *memoryCache) Set(_ context.Context, key string, value string) error {
	m.mu.Lock()
	m.entries[key] = value
	m.mu.Unlock()

	return nil
}

func (m *memoryCache) Clear(_ context.Context) error {
	m.mu.Lock()
	m.entries = map[string]string{}
	m.mu.Unlock()

	return nil
}
