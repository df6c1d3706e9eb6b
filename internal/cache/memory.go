package cache

import (
	"context"
	"strings"
	"sync"
)

// MemoryStore is the in-process backend. Values are stored as the marshaled
// envelope bytes, so a transform always produces a fresh value and readers
// never observe a half-applied patch.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string][]byte)}
}

func (m *MemoryStore) Get(_ context.Context, key Key) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	raw, ok := m.entries[key.String()]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return out, true, nil
}

func (m *MemoryStore) Set(_ context.Context, key Key, raw []byte) error {
	val := make([]byte, len(raw))
	copy(val, raw)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key.String()] = val
	return nil
}

func (m *MemoryStore) Update(_ context.Context, key Key, fn func(raw []byte) ([]byte, error)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, ok := m.entries[key.String()]
	if !ok {
		return nil
	}
	next, err := fn(raw)
	if err != nil {
		return err
	}
	m.entries[key.String()] = next
	return nil
}

func (m *MemoryStore) Invalidate(_ context.Context, key Key) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key.String())
	return nil
}

func (m *MemoryStore) InvalidateEntity(_ context.Context, entity string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k := range m.entries {
		if k == entity || strings.HasPrefix(k, entity+"?") {
			delete(m.entries, k)
		}
	}
	return nil
}

func (m *MemoryStore) InvalidateVariants(_ context.Context, entity string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k := range m.entries {
		if strings.HasPrefix(k, entity+"?") {
			delete(m.entries, k)
		}
	}
	return nil
}
