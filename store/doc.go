// Package store defines the [Store] interface for per-site URL configuration
// backends and provides several implementations:
//
//   - [MemoryStore]: fast, in-memory records that are lost on restart.
//   - [SQLiteStore]: persistent records backed by a SQLite database.
//   - [TieredStore]: an in-memory read cache over a persistent backend.
//   - [FileStore]: a read-only YAML document, optionally reloaded on change.
//
// Custom backends can be created by implementing the [Store] interface.
package store
