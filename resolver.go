package siteurl

import (
	"log/slog"
	"strings"
)

// HostDecision tags how the effective base URL host was chosen, so the
// security-relevant fallback path is independently observable and testable.
type HostDecision int

const (
	// HostAllowed means the transport-reported host matched the allow-list
	// and was reflected into the base URL.
	HostAllowed HostDecision = iota
	// HostFallback means the configured base URL host was kept. This covers
	// both an empty allow-list and an unrecognized reported host; an
	// unrecognized Host header must never leak into generated URLs.
	HostFallback
)

func (d HostDecision) String() string {
	switch d {
	case HostAllowed:
		return "HostAllowed"
	case HostFallback:
		return "HostFallback"
	default:
		return "Unknown"
	}
}

// Resolver derives absolute current URLs for inbound requests from a single
// site's configuration. It holds no mutable state and is safe for concurrent
// use; all per-request state lives in the [Current] values it creates.
type Resolver struct {
	cfg            Config
	logger         *slog.Logger
	onHostFallback func(requestedHost string)
}

// New creates a Resolver for the given configuration.
// The configuration is validated lazily, on the first URL-building call.
func New(cfg Config, opts ...Option) *Resolver {
	r := &Resolver{cfg: cfg}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Config returns a copy of the resolver's configuration snapshot.
func (r *Resolver) Config() Config {
	c := r.cfg
	c.AllowedHosts = append([]string(nil), r.cfg.AllowedHosts...)
	return c
}

// BaseURL resolves the effective absolute base URL for a request reporting
// the given host. When the allow-list is non-empty and the host matches an
// entry exactly, the configured base URL is returned with only its host
// replaced; otherwise the configured base URL is returned unchanged. The
// returned decision tags which path was taken.
func (r *Resolver) BaseURL(requestHost string) (*URI, HostDecision, error) {
	if r.cfg.BaseURL == "" {
		return nil, HostFallback, ErrNoBaseURL
	}
	base, err := ParseURI(r.cfg.BaseURL)
	if err != nil {
		return nil, HostFallback, err
	}
	if base.Scheme() == "" || base.Host() == "" {
		return nil, HostFallback, &ParseError{Raw: r.cfg.BaseURL, Reason: "base URL must be absolute"}
	}

	if r.cfg.allows(requestHost) {
		return base.withHost(requestHost), HostAllowed, nil
	}

	if len(r.cfg.AllowedHosts) > 0 && requestHost != "" && requestHost != base.Host() {
		if r.onHostFallback != nil {
			r.onHostFallback(requestHost)
		}
		if r.logger != nil {
			r.logger.Warn("request host not on allow-list, keeping configured host",
				"requested", requestHost, "base", base.Host())
		}
	}
	return base, HostFallback, nil
}

// Request creates the per-request current-URL computation for the given
// metadata snapshot. Each request must get its own Current; they are never
// shared across requests.
func (r *Resolver) Request(req Request) *Current {
	return &Current{res: r, req: req}
}

// FromURI creates a Current from an explicitly supplied URI instead of
// transport metadata. Intended for non-network execution contexts (CLI
// invocations, tests) where no live request exists.
func (r *Resolver) FromURI(u *URI) *Current {
	return &Current{res: r, injected: u}
}

// baseString renders a resolved base URL with exactly one trailing slash and
// no query or fragment.
func baseString(u *URI) string {
	s := u.String()
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimRight(s, "/") + "/"
}
