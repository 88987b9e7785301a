// Package siteurl resolves the canonical absolute URL of an inbound HTTP
// request and matches its relative path against glob-style patterns. It
// reconciles three independent, often-inconsistent sources of truth: the
// configured base URL, the transport-reported host, and the transport-reported
// request path, including an optional front-controller script segment and a
// hostname allow-list.
//
// # Key Concepts
//
//   - [Config] is a per-site configuration snapshot: the base URL, the index
//     page (front controller) name, and the hostname allow-list.
//   - [Request] is an immutable snapshot of transport-reported request
//     metadata: host, optional port, raw request URI, and script name.
//   - [Resolver] applies the allow-list policy to produce the effective base
//     URL, tagged with a [HostDecision] so the security-relevant fallback is
//     independently observable.
//   - [Current] is the lazily computed current URL for one request. It exposes
//     the object form ([Current.URL]), the string form ([Current.URLString]),
//     the relative path ([Current.RelativePath]), and pattern matching
//     ([Current.Is]).
//   - [store.Store] is an optional per-site configuration backend. An
//     in-memory store is the default; SQLite, YAML-file, and Redis backends
//     are available for deployments that keep site settings outside code.
//
// # Quick Start
//
//	resolver := siteurl.New(siteurl.Config{
//		BaseURL:      "http://example.com/public",
//		IndexPage:    "index.php",
//		AllowedHosts: []string{"www.example.jp"},
//	})
//
//	// Wrap a handler so every request carries its own Current.
//	mux := http.NewServeMux()
//	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
//		cur, _ := siteurl.FromContext(r.Context())
//		if cur.Is("admin*") {
//			// ...
//		}
//	})
//	http.ListenAndServe(":8080", resolver.Handler(mux))
//
// See the [Resolver] documentation for the full API.
package siteurl
