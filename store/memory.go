package store

import (
	"context"
	"sort"
	"sync"
)

// Compile-time interface check.
var _ Store = (*MemoryStore)(nil)

// MemoryStore is an in-memory Store implementation.
// It is safe for concurrent use. Records are lost on process restart.
type MemoryStore struct {
	mu    sync.Mutex
	sites map[string]Site
}

// NewMemoryStore creates a new in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sites: make(map[string]Site),
	}
}

// Lookup returns the configuration stored for the named site.
func (m *MemoryStore) Lookup(_ context.Context, name string) (Site, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sites[name]
	if !ok {
		return Site{}, ErrNotFound
	}
	return cloneSite(s), nil
}

// Put creates or replaces the configuration for the named site.
func (m *MemoryStore) Put(_ context.Context, name string, site Site) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sites[name] = cloneSite(site)
	return nil
}

// Remove deletes the configuration for the named site.
func (m *MemoryStore) Remove(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sites, name)
	return nil
}

// Names returns the names of all stored sites, sorted.
func (m *MemoryStore) Names(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]string, 0, len(m.sites))
	for name := range m.sites {
		out = append(out, name)
	}
	sort.Strings(out)
	return out, nil
}

// Close is a no-op for the in-memory store.
func (m *MemoryStore) Close() error {
	return nil
}
