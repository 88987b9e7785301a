package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a site has no stored configuration.
var ErrNotFound = errors.New("store: site not found")

// ErrReadOnly is returned by backends that cannot accept writes.
var ErrReadOnly = errors.New("store: backend is read-only")

// Site mirrors siteurl.Config so the store package doesn't import the parent.
// Callers convert between the two at the boundary.
type Site struct {
	BaseURL      string
	IndexPage    string
	AllowedHosts []string
}

// Store defines the interface for per-site configuration backends.
type Store interface {
	// Lookup returns the configuration stored for the named site.
	// Unknown sites return ErrNotFound.
	Lookup(ctx context.Context, name string) (Site, error)

	// Put creates or replaces the configuration for the named site.
	Put(ctx context.Context, name string, site Site) error

	// Remove deletes the configuration for the named site. Removing an
	// unknown site is not an error.
	Remove(ctx context.Context, name string) error

	// Names returns the names of all stored sites, sorted.
	Names(ctx context.Context) ([]string, error)

	// Close releases any resources held by the store.
	Close() error
}

// cloneSite returns a Site whose AllowedHosts slice is independent of the
// original, so stored records can't be mutated through shared backing arrays.
func cloneSite(s Site) Site {
	s.AllowedHosts = append([]string(nil), s.AllowedHosts...)
	return s
}
