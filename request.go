package siteurl

import (
	"net"
	"net/http"
	"strconv"
)

// Request is an immutable snapshot of transport-reported request metadata.
// It is normally derived from a live HTTP request via [RequestFromHTTP], but
// can be constructed directly for non-network contexts such as CLI tools.
type Request struct {
	// Host is the hostname reported by the transport (Host header or
	// equivalent), without a port.
	Host string

	// Port is the port reported by the transport, or 0 when none was given.
	// It is recorded for completeness but never reflected into generated
	// URLs; the configured base URL's port always wins.
	Port int

	// URI is the raw path plus query exactly as reported, e.g.
	// "/foo/public/bar?baz=quip".
	URI string

	// ScriptName is the filesystem path of the front-controller script as
	// reported by the transport, e.g. "/foo/public/index.php". Empty means
	// no front controller is involved.
	ScriptName string
}

// RequestFromHTTP snapshots the metadata of a live HTTP request. Go servers
// have no front controller, so ScriptName is left empty; set it manually when
// bridging an environment that reports one.
func RequestFromHTTP(r *http.Request) Request {
	host := r.Host
	port := 0
	if h, p, err := net.SplitHostPort(r.Host); err == nil {
		host = h
		port, _ = strconv.Atoi(p)
	}
	return Request{
		Host: host,
		Port: port,
		URI:  r.URL.RequestURI(),
	}
}
