package siteurl

import (
	"path"
	"strings"
	"sync"
)

// Current is the lazily computed absolute URL of one request. The first call
// to any accessor resolves the base URL, derives the request's path beyond
// the front controller, and memoizes the result; later calls reuse it.
// A Current belongs to exactly one request and must not be shared.
type Current struct {
	res      *Resolver
	req      Request
	injected *URI

	once sync.Once
	uri  *URI
	str  string
	err  error
}

func (c *Current) build() {
	c.once.Do(func() {
		if c.injected != nil {
			c.uri = c.injected
			s := c.injected.String()
			if i := strings.IndexByte(s, '?'); i >= 0 {
				s = s[:i]
			}
			c.str = s
			return
		}

		base, _, err := c.res.BaseURL(c.req.Host)
		if err != nil {
			c.err = err
			return
		}

		rawPath := c.req.URI
		query := ""
		if i := strings.IndexByte(rawPath, '?'); i >= 0 {
			query = rawPath[i+1:]
			rawPath = rawPath[:i]
		}
		extra := extraPath(rawPath, c.req.ScriptName)
		index := c.res.cfg.IndexPage

		// String form: resolved base, index page, then the extra path. An
		// empty extra path behind an index page keeps the trailing slash.
		var b strings.Builder
		b.WriteString(baseString(base))
		if index != "" {
			b.WriteString(index)
			if extra != "" {
				b.WriteByte('/')
				b.WriteString(extra)
			} else {
				b.WriteByte('/')
			}
		} else {
			b.WriteString(extra)
		}
		c.str = b.String()

		segs := base.Segments()
		if index != "" {
			segs = append(segs, index)
		}
		segs = append(segs, splitSegments(extra)...)
		c.uri = &URI{
			scheme:   base.Scheme(),
			host:     base.Host(),
			port:     base.Port(),
			segments: segs,
			query:    query,
		}
	})
}

// URL returns the current URL as a URI value. The query string of the
// original request URI is preserved on the object form.
func (c *Current) URL() (*URI, error) {
	c.build()
	return c.uri, c.err
}

// URLString returns the current URL in string form. The string form carries
// no query; use [Current.URL] when the query must be preserved.
func (c *Current) URLString() (string, error) {
	c.build()
	return c.str, c.err
}

// RelativePath returns the request path relative to the application's base:
// the current URL's segments minus the base URL's own path and, when
// configured, the index-page segment, joined with "/". No leading or trailing
// slash; an empty string (never "/") when nothing remains.
func (c *Current) RelativePath() (string, error) {
	u, err := c.URL()
	if err != nil {
		return "", err
	}
	segs := u.Segments()

	if c.res.cfg.BaseURL != "" {
		if base, err := ParseURI(c.res.cfg.BaseURL); err == nil {
			segs = trimSegmentPrefix(segs, base.Segments())
		}
	}
	if index := c.res.cfg.IndexPage; index != "" && len(segs) > 0 && segs[0] == index {
		segs = segs[1:]
	}
	return strings.Join(segs, "/"), nil
}

// Is reports whether the current relative path matches a glob-style pattern.
// A trailing "*" makes the pattern a prefix match; otherwise the comparison
// is exact up to a single trailing slash. Resolution failures report no match.
func (c *Current) Is(pattern string) bool {
	rel, err := c.RelativePath()
	if err != nil {
		return false
	}
	return pathIs(rel, pattern)
}

// extraPath derives the portion of the request path beyond the front
// controller: a leading ScriptName match is stripped first, then a leading
// script-directory match. Subfolder deployments work because the script's
// own directory is used, never an assumed "/".
func extraPath(reqPath, script string) string {
	p := reqPath
	if rest, ok := stripPathPrefix(p, script); ok {
		p = rest
	} else if script != "" {
		if rest, ok := stripPathPrefix(p, path.Dir(script)); ok {
			p = rest
		}
	}
	return strings.Trim(p, "/")
}

// stripPathPrefix removes prefix from p on a segment boundary.
func stripPathPrefix(p, prefix string) (string, bool) {
	if prefix == "" || prefix == "/" || prefix == "." {
		return p, false
	}
	if !strings.HasPrefix(p, prefix) {
		return p, false
	}
	rest := p[len(prefix):]
	if rest != "" && rest[0] != '/' {
		return p, false
	}
	return rest, true
}

// trimSegmentPrefix removes prefix from segs when segs starts with it.
func trimSegmentPrefix(segs, prefix []string) []string {
	if len(segs) < len(prefix) {
		return segs
	}
	for i := range prefix {
		if segs[i] != prefix[i] {
			return segs
		}
	}
	return segs[len(prefix):]
}
