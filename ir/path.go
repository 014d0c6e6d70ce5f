// Package ir defines the intermediate representation for API route records.
// These types are the input and output of the normalization and naming
// pipeline; they carry no rendering or I/O behavior of their own.
package ir

import (
	"fmt"
	"strings"
)

// Segment is one element of a path template: either a literal string or a
// placeholder written as ":name" in the source template.
type Segment struct {
	// Value is the literal text, or the placeholder name without the
	// leading colon.
	Value string

	// Placeholder reports whether this segment is a path variable.
	Placeholder bool
}

// String returns the segment in template form.
func (s Segment) String() string {
	if s.Placeholder {
		return ":" + s.Value
	}
	return s.Value
}

// PathTemplate is an ordered sequence of path segments. Segment order is
// significant and preserved by every operation.
type PathTemplate struct {
	Segments []Segment
}

// ParsePath parses a slash-separated template such as
// "/repos/:owner/:repo/issues/:number". Placeholder names must be valid
// identifiers.
func ParsePath(raw string) (PathTemplate, error) {
	trimmed := strings.Trim(raw, "/")
	if trimmed == "" {
		return PathTemplate{}, fmt.Errorf("empty path %q", raw)
	}

	parts := strings.Split(trimmed, "/")
	segs := make([]Segment, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			return PathTemplate{}, fmt.Errorf("empty segment in path %q", raw)
		}
		if strings.HasPrefix(part, ":") {
			name := part[1:]
			if !isIdentifier(name) {
				return PathTemplate{}, fmt.Errorf("invalid placeholder %q in path %q", part, raw)
			}
			segs = append(segs, Segment{Value: name, Placeholder: true})
			continue
		}
		segs = append(segs, Segment{Value: part})
	}
	return PathTemplate{Segments: segs}, nil
}

// String reassembles the template with a leading slash.
func (p PathTemplate) String() string {
	var b strings.Builder
	for _, s := range p.Segments {
		b.WriteByte('/')
		b.WriteString(s.String())
	}
	return b.String()
}

// Clone returns a deep copy. RouteRecord uses this to keep the original
// path immutable while the working path is rewritten.
func (p PathTemplate) Clone() PathTemplate {
	segs := make([]Segment, len(p.Segments))
	copy(segs, p.Segments)
	return PathTemplate{Segments: segs}
}

// Literals returns the values of all non-placeholder segments in order.
func (p PathTemplate) Literals() []string {
	var out []string
	for _, s := range p.Segments {
		if !s.Placeholder {
			out = append(out, s.Value)
		}
	}
	return out
}

// PlaceholderIndex returns the index of the first placeholder with the
// given name, or -1.
func (p PathTemplate) PlaceholderIndex(name string) int {
	for i, s := range p.Segments {
		if s.Placeholder && s.Value == name {
			return i
		}
	}
	return -1
}

// RenamePlaceholder renames every placeholder called old to new, in place.
func (p *PathTemplate) RenamePlaceholder(old, new string) {
	for i, s := range p.Segments {
		if s.Placeholder && s.Value == old {
			p.Segments[i].Value = new
		}
	}
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
