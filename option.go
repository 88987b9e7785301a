package siteurl

import "log/slog"

// Option configures the Resolver.
type Option func(*Resolver)

// WithLogger sets a structured logger. The resolver logs only the
// security-relevant case: a transport-reported host that was rejected by the
// allow-list, at Warn level. No logger means no logging.
func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) {
		r.logger = l
	}
}

// WithOnHostFallback sets a callback that fires when a transport-reported
// host is present but not on the allow-list, just before the resolver falls
// back to the configured base URL host.
func WithOnHostFallback(fn func(requestedHost string)) Option {
	return func(r *Resolver) {
		r.onHostFallback = fn
	}
}
