package siteurl

import (
	"errors"
	"fmt"
)

// ErrNoBaseURL is returned when a URL-building call runs without a configured
// base URL. A missing base URL is a configuration error and never defaulted.
var ErrNoBaseURL = errors.New("siteurl: no base URL configured")

// ErrBadURL is returned when a URL string cannot be parsed.
var ErrBadURL = errors.New("siteurl: malformed URL")

// ErrSegmentRange is returned when a 1-based segment index exceeds the number
// of path segments.
var ErrSegmentRange = errors.New("siteurl: segment index out of range")

// ParseError reports the URL string that failed to parse and why.
type ParseError struct {
	Raw    string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("siteurl: malformed URL %q: %s", e.Raw, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return ErrBadURL
}

// SegmentError reports an out-of-range segment access. It is returned instead
// of an empty string so off-by-one errors in callers surface immediately.
type SegmentError struct {
	Index int // requested 1-based index
	Count int // number of segments available
}

func (e *SegmentError) Error() string {
	return fmt.Sprintf("siteurl: segment %d out of range (URI has %d segments)", e.Index, e.Count)
}

func (e *SegmentError) Unwrap() error {
	return ErrSegmentRange
}
