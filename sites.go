package siteurl

import (
	"context"
	"fmt"

	"github.com/ryhazerus/siteurl/store"
)

// Sites resolves per-site configuration through a [store.Store], for
// deployments that serve multiple sites and keep their URL settings outside
// code. If no store is provided, an in-memory store is used.
type Sites struct {
	store store.Store
	opts  []Option
}

// NewSites creates a Sites registry backed by the given store. The options
// are applied to every Resolver the registry hands out.
func NewSites(s store.Store, opts ...Option) *Sites {
	if s == nil {
		s = store.NewMemoryStore()
	}
	return &Sites{store: s, opts: opts}
}

// Register stores the configuration for the named site.
func (s *Sites) Register(ctx context.Context, name string, cfg Config) error {
	site := store.Site{
		BaseURL:      cfg.BaseURL,
		IndexPage:    cfg.IndexPage,
		AllowedHosts: append([]string(nil), cfg.AllowedHosts...),
	}
	if err := s.store.Put(ctx, name, site); err != nil {
		return fmt.Errorf("siteurl: register site %q: %w", name, err)
	}
	return nil
}

// Resolver loads the named site's configuration and returns a Resolver for
// it. Unknown sites report an error wrapping [store.ErrNotFound].
func (s *Sites) Resolver(ctx context.Context, name string) (*Resolver, error) {
	site, err := s.store.Lookup(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("siteurl: lookup site %q: %w", name, err)
	}
	cfg := Config{
		BaseURL:      site.BaseURL,
		IndexPage:    site.IndexPage,
		AllowedHosts: site.AllowedHosts,
	}
	return New(cfg, s.opts...), nil
}

// Close releases resources held by the backing store.
func (s *Sites) Close() error {
	return s.store.Close()
}
