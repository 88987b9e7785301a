package siteurl

import "strings"

// pathIs checks whether a relative request path matches a glob-style pattern.
//
// Supported patterns:
//   - "admin*" matches "admin", "admin/users", "administrator"
//   - "blog/posts" exact match, also matching "blog/posts/"
//   - "" matches only the empty path
//
// A trailing "*" is the only wildcard: it matches any suffix, including the
// empty one, turning the literal part before it into a prefix match. Without
// it the comparison is exact, except that a single trailing slash on either
// side is ignored. Matching is case-sensitive. An empty path never matches a
// non-empty pattern, not even one ending in "*".
func pathIs(relPath, pattern string) bool {
	if relPath == "" {
		return pattern == ""
	}

	if strings.HasSuffix(pattern, "*") {
		return strings.HasPrefix(relPath, strings.TrimSuffix(pattern, "*"))
	}

	if relPath == pattern {
		return true
	}
	// Trailing-slash equivalence, in both directions.
	return relPath+"/" == pattern || relPath == pattern+"/"
}
