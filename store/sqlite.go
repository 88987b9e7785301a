package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"
)

// Compile-time interface check.
var _ Store = (*SQLiteStore)(nil)

// SQLiteStore is a persistent Store backed by SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) a SQLite database at the given path and
// initialises the schema. Use ":memory:" for an in-memory SQLite database.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("siteurl/store: open sqlite: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS siteurl_sites (
			name          TEXT PRIMARY KEY,
			base_url      TEXT NOT NULL,
			index_page    TEXT NOT NULL DEFAULT '',
			allowed_hosts TEXT NOT NULL DEFAULT '[]'
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("siteurl/store: create table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Lookup returns the configuration stored for the named site.
func (s *SQLiteStore) Lookup(ctx context.Context, name string) (Site, error) {
	var site Site
	var hosts string

	err := s.db.QueryRowContext(ctx,
		`SELECT base_url, index_page, allowed_hosts FROM siteurl_sites WHERE name = ?`, name,
	).Scan(&site.BaseURL, &site.IndexPage, &hosts)

	if err == sql.ErrNoRows {
		return Site{}, ErrNotFound
	}
	if err != nil {
		return Site{}, err
	}

	if err := json.Unmarshal([]byte(hosts), &site.AllowedHosts); err != nil {
		return Site{}, fmt.Errorf("siteurl/store: decode allowed hosts for %q: %w", name, err)
	}
	return site, nil
}

// Put creates or replaces the configuration for the named site.
func (s *SQLiteStore) Put(ctx context.Context, name string, site Site) error {
	hosts, err := json.Marshal(site.AllowedHosts)
	if err != nil {
		return fmt.Errorf("siteurl/store: encode allowed hosts for %q: %w", name, err)
	}
	if site.AllowedHosts == nil {
		hosts = []byte("[]")
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO siteurl_sites (name, base_url, index_page, allowed_hosts)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			base_url      = excluded.base_url,
			index_page    = excluded.index_page,
			allowed_hosts = excluded.allowed_hosts
	`, name, site.BaseURL, site.IndexPage, string(hosts))
	return err
}

// Remove deletes the configuration for the named site.
func (s *SQLiteStore) Remove(ctx context.Context, name string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM siteurl_sites WHERE name = ?`, name)
	return err
}

// Names returns the names of all stored sites, sorted.
func (s *SQLiteStore) Names(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM siteurl_sites ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}

// Close closes the underlying SQLite database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
