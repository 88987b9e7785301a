package siteurl

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// URI is an immutable parsed URL. The path is held as an ordered sequence of
// non-empty segments; repeated slashes collapse and an all-slash or empty
// path yields an empty sequence. Re-serialising a parsed URI with
// [URI.String] round-trips to an equivalent absolute form.
type URI struct {
	scheme   string
	host     string
	port     int // 0 when absent
	segments []string
	query    string
	fragment string
}

// ParseURI parses an absolute or relative URL string into a URI.
// Syntactically invalid input returns a *ParseError wrapping [ErrBadURL].
func ParseURI(raw string) (*URI, error) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return nil, &ParseError{Raw: raw, Reason: err.Error()}
	}
	if parsed.Opaque != "" {
		return nil, &ParseError{Raw: raw, Reason: "opaque URLs are not supported"}
	}
	if parsed.Scheme != "" && parsed.Host == "" {
		return nil, &ParseError{Raw: raw, Reason: "absolute URL has no host"}
	}

	port := 0
	if p := parsed.Port(); p != "" {
		port, err = strconv.Atoi(p)
		if err != nil || port < 1 || port > 65535 {
			return nil, &ParseError{Raw: raw, Reason: fmt.Sprintf("invalid port %q", p)}
		}
	}

	return &URI{
		scheme:   parsed.Scheme,
		host:     parsed.Hostname(),
		port:     port,
		segments: splitSegments(parsed.Path),
		query:    parsed.RawQuery,
		fragment: parsed.Fragment,
	}, nil
}

// splitSegments breaks a path into its non-empty segments.
func splitSegments(p string) []string {
	var segs []string
	for _, s := range strings.Split(p, "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}

// Scheme returns the URL scheme, or "" for a relative URI.
func (u *URI) Scheme() string { return u.scheme }

// Host returns the hostname without any port.
func (u *URI) Host() string { return u.host }

// Port returns the explicit port, or 0 when none was given.
func (u *URI) Port() int { return u.port }

// Query returns the raw query string without the leading "?".
func (u *URI) Query() string { return u.query }

// Fragment returns the fragment without the leading "#".
func (u *URI) Fragment() string { return u.fragment }

// Segments returns a copy of the path segments, in order.
func (u *URI) Segments() []string {
	out := make([]string, len(u.segments))
	copy(out, u.segments)
	return out
}

// Segment returns the path segment at the given 1-based index. Indexes past
// the last segment return a *SegmentError wrapping [ErrSegmentRange].
func (u *URI) Segment(i int) (string, error) {
	if i < 1 || i > len(u.segments) {
		return "", &SegmentError{Index: i, Count: len(u.segments)}
	}
	return u.segments[i-1], nil
}

// String returns the canonical form scheme://host[:port]/seg1/seg2[?query][#fragment].
// Ports implied by the scheme (80 for http, 443 for https) are omitted.
func (u *URI) String() string {
	var b strings.Builder
	if u.host != "" {
		if u.scheme != "" {
			b.WriteString(u.scheme)
			b.WriteString("://")
		}
		b.WriteString(u.host)
		if u.port != 0 && u.port != defaultPort(u.scheme) {
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(u.port))
		}
	}
	b.WriteByte('/')
	b.WriteString(strings.Join(u.segments, "/"))
	if u.query != "" {
		b.WriteByte('?')
		b.WriteString(u.query)
	}
	if u.fragment != "" {
		b.WriteByte('#')
		b.WriteString(u.fragment)
	}
	return b.String()
}

// withHost returns a copy of the URI with the host replaced. Scheme, port,
// path, query, and fragment are preserved.
func (u *URI) withHost(host string) *URI {
	c := *u
	c.host = host
	return &c
}

func defaultPort(scheme string) int {
	switch scheme {
	case "http":
		return 80
	case "https":
		return 443
	default:
		return 0
	}
}
