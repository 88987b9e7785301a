package siteurl

// Config is a per-site configuration snapshot. It is read-only to this
// package: the resolver never mutates it and callers should treat a Config
// handed to [New] as frozen.
type Config struct {
	// BaseURL is the absolute URL of the application's deployment root.
	// It may or may not end in "/". Mandatory for any URL-building call.
	BaseURL string

	// IndexPage is the front-controller script name inserted into generated
	// URLs, e.g. "index.php". Empty omits the segment entirely.
	IndexPage string

	// AllowedHosts lists hostnames that may be reflected into generated
	// absolute URLs when reported by the transport. Matching is an exact,
	// case-sensitive string comparison. An empty list means the configured
	// BaseURL host is always used.
	AllowedHosts []string
}

// Validate eagerly checks that the base URL is present and absolute. The
// resolver performs the same check lazily on the first URL-building call, so
// calling Validate is optional.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return ErrNoBaseURL
	}
	u, err := ParseURI(c.BaseURL)
	if err != nil {
		return err
	}
	if u.Scheme() == "" || u.Host() == "" {
		return &ParseError{Raw: c.BaseURL, Reason: "base URL must be absolute"}
	}
	return nil
}

// allows reports whether host exactly matches an allow-list entry.
func (c Config) allows(host string) bool {
	if host == "" {
		return false
	}
	for _, h := range c.AllowedHosts {
		if h == host {
			return true
		}
	}
	return false
}
