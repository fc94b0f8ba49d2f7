package store

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryStore keeps the namespace in a process-local map. It backs tests and
// the zero-dependency deployment mode; durability ends with the process.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
	hub    *Hub
}

// NewMemoryStore returns an empty in-memory store. hub may be nil when no
// change notification is needed.
func NewMemoryStore(hub *Hub) *MemoryStore {
	return &MemoryStore{
		values: make(map[string][]byte),
		hub:    hub,
	}
}

func (m *MemoryStore) Get(ctx context.Context, key string, dest interface{}) error {
	m.mu.RLock()
	data, ok := m.values[key]
	m.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}
	return json.Unmarshal(data, dest)
}

func (m *MemoryStore) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.values[key] = data
	m.mu.Unlock()
	m.publish(key)
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	delete(m.values, key)
	m.mu.Unlock()
	m.publish(key)
	return nil
}

func (m *MemoryStore) Subscribe(key string, fn func()) func() {
	if m.hub == nil {
		return func() {}
	}
	return m.hub.Subscribe(key, fn)
}

func (m *MemoryStore) publish(key string) {
	if m.hub != nil {
		m.hub.Publish(key)
	}
}
