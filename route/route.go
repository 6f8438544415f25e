// Package route identifies nodes in a document tree by an ordered,
// non-empty sequence of key segments. Two routes are equal iff their
// segment sequences are equal. A flattened string form exists for routes
// authored as separator-delimited strings; the separator is a parsing
// aid only and plays no role in resolution.
package route

import "strings"

type Route []string

// New returns a route over the given segments.
func New(segments ...string) Route {
	return Route(segments)
}

// FromString splits s on sep. Segments may be empty; the result always
// has at least one segment ("" yields a single empty segment).
func FromString(s string, sep byte) Route {
	return Route(strings.Split(s, string(sep)))
}

func (r Route) String(sep byte) string {
	return strings.Join(r, string(sep))
}

// Append returns a new route with the given segments appended. The
// receiver is not modified.
func (r Route) Append(segments ...string) Route {
	res := make(Route, 0, len(r)+len(segments))
	res = append(res, r...)
	res = append(res, segments...)
	return res
}

func (r Route) Equal(o Route) bool {
	if len(r) != len(o) {
		return false
	}
	for i := range r {
		if r[i] != o[i] {
			return false
		}
	}
	return true
}

// Split returns the parent prefix and the final segment.
func (r Route) Split() (Route, string) {
	if len(r) == 0 {
		return nil, ""
	}
	return r[:len(r)-1], r[len(r)-1]
}
