package store

import (
	"context"
	"errors"
	"sync"
)

// memoryKV is an in-memory KV used by the store tests.
type memoryKV struct {
	mu   sync.Mutex
	data map[string][]byte

	// failWith, when set, makes every operation return this error.
	failWith error
}

func newMemoryKV() *memoryKV {
	return &memoryKV{data: make(map[string][]byte)}
}

func (m *memoryKV) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	value, ok := m.data[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return value, nil
}

func (m *memoryKV) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *memoryKV) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	delete(m.data, key)
	return nil
}

var errBackend = errors.New("backend unavailable")
