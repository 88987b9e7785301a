package siteurl

import (
	"context"
	"net/http"
)

type contextKey struct{}

// Handler wraps next so that every request carries its own independently
// initialised [Current] in the request context. The current URL is computed
// lazily on first access and memoized for the remainder of that request;
// concurrent requests never share state.
func (r *Resolver) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		cur := r.Request(RequestFromHTTP(req))
		ctx := context.WithValue(req.Context(), contextKey{}, cur)
		next.ServeHTTP(w, req.WithContext(ctx))
	})
}

// FromContext returns the Current installed by [Resolver.Handler].
func FromContext(ctx context.Context) (*Current, bool) {
	cur, ok := ctx.Value(contextKey{}).(*Current)
	return cur, ok
}
