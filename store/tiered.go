package store

import "context"

// Compile-time interface check.
var _ Store = (*TieredStore)(nil)

// TieredStore wraps an in-memory store (fast path) with a persistent backend
// (durable path). Writes go to both stores (write-through); reads check memory
// first and fall back to the persistent store on a miss, backfilling memory.
type TieredStore struct {
	memory     *MemoryStore
	persistent Store
}

// NewTieredStore creates a TieredStore backed by the given persistent store.
// An internal MemoryStore is created automatically.
func NewTieredStore(persistent Store) *TieredStore {
	return &TieredStore{
		memory:     NewMemoryStore(),
		persistent: persistent,
	}
}

// Lookup reads from memory first. On a miss it falls back to the persistent
// store and backfills memory so subsequent reads are fast.
func (t *TieredStore) Lookup(ctx context.Context, name string) (Site, error) {
	site, err := t.memory.Lookup(ctx, name)
	if err == nil {
		return site, nil
	}
	if err != ErrNotFound {
		return Site{}, err
	}

	site, err = t.persistent.Lookup(ctx, name)
	if err != nil {
		return Site{}, err
	}

	t.memory.Put(ctx, name, site)
	return site, nil
}

// Put writes through to both memory and the persistent backend.
// The persistent store is the source of truth.
func (t *TieredStore) Put(ctx context.Context, name string, site Site) error {
	if err := t.persistent.Put(ctx, name, site); err != nil {
		return err
	}
	// Keep memory in sync. The persistent store is authoritative.
	return t.memory.Put(ctx, name, site)
}

// Remove deletes the record from both stores.
func (t *TieredStore) Remove(ctx context.Context, name string) error {
	t.memory.Remove(ctx, name)
	return t.persistent.Remove(ctx, name)
}

// Names reads from the persistent backend, which is authoritative.
func (t *TieredStore) Names(ctx context.Context) ([]string, error) {
	return t.persistent.Names(ctx)
}

// Close closes the persistent backend. The in-memory store needs no cleanup.
func (t *TieredStore) Close() error {
	return t.persistent.Close()
}
