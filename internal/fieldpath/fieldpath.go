// Package fieldpath implements a typed accessor for dot-separated paths
// into nested map structures, as produced by decoding JSON records. It
// replaces ad-hoc reflection: a path is parsed once into a Path value and
// then resolved against any object.
//
// Resolution is tolerant: a missing or non-map intermediate segment is
// reported as "not found", never an error, so callers can apply field
// protection optimistically across heterogeneous records.
package fieldpath

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPath is returned when a path is empty or contains an empty
// segment (leading, trailing, or doubled dot).
var ErrInvalidPath = errors.New("invalid field path")

// Path is a parsed dot-separated field path.
type Path struct {
	segments []string
}

// Parse validates and parses a dot-separated path such as "owner.contact.email".
func Parse(s string) (Path, error) {
	if s == "" {
		return Path{}, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	segments := strings.Split(s, ".")
	for _, seg := range segments {
		if seg == "" {
			return Path{}, fmt.Errorf("%w: empty segment in %q", ErrInvalidPath, s)
		}
	}

	return Path{segments: segments}, nil
}

// String returns the dotted form of the path.
func (p Path) String() string {
	return strings.Join(p.segments, ".")
}

// Terminal returns the final segment, the field the path addresses.
func (p Path) Terminal() string {
	return p.segments[len(p.segments)-1]
}

// ResolveParent walks every segment except the terminal one and returns the
// map that would hold the terminal field. The second result is false when
// any intermediate segment is absent or not a nested map.
func (p Path) ResolveParent(root map[string]any) (map[string]any, bool) {
	if root == nil {
		return nil, false
	}

	current := root
	for _, seg := range p.segments[:len(p.segments)-1] {
		next, ok := current[seg]
		if !ok {
			return nil, false
		}

		nested, ok := next.(map[string]any)
		if !ok {
			return nil, false
		}
		current = nested
	}

	return current, true
}
