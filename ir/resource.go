package ir

import (
	"errors"

	"github.com/octogen/octogen/internal/inflect"
)

// ErrNoLiterals is returned for a path with no literal segment; such a
// path has no resource name and cannot be processed.
var ErrNoLiterals = errors.New("path has no literal segment")

// Resource is a derived view over a path template. It is recomputed from
// the current path whenever needed and never cached, because
// normalization rewrites the underlying path.
type Resource struct {
	// Objects are the literal segment names, with the structural marker
	// "repos" elided when the path has more than one literal segment.
	Objects []string

	// IsSubresource reports whether the resource is nested under another
	// (more than one object after marker elision).
	IsSubresource bool

	// IsSingular reports whether the path addresses a single item: its
	// last segment is a placeholder (an id, number, sha or similar key).
	IsSingular bool

	// Name is the canonical resource name.
	Name string
}

// ResolveResource derives the Resource for a path. It is a pure function
// of its argument.
func ResolveResource(p PathTemplate) (Resource, error) {
	objects := p.Literals()
	if len(objects) == 0 {
		return Resource{}, ErrNoLiterals
	}

	// "repos" is a structural marker, never part of the resource name.
	// The threshold is checked before the elision.
	if len(objects) > 1 {
		kept := objects[:0]
		for _, o := range objects {
			if o != "repos" {
				kept = append(kept, o)
			}
		}
		objects = kept
	}

	res := Resource{
		Objects:       objects,
		IsSubresource: len(objects) > 1,
		IsSingular:    singularTail(p),
	}

	if res.IsSubresource {
		res.Name = inflect.Singularize(objects[0]) + "_" + objects[1]
	} else {
		res.Name = objects[0]
	}
	if res.IsSingular {
		res.Name = inflect.Singularize(res.Name)
	}
	return res, nil
}

// singularTail reports whether the last segment is a placeholder. A route
// whose template ends in a path variable addresses one item of the
// collection named by the preceding literal.
func singularTail(p PathTemplate) bool {
	if len(p.Segments) == 0 {
		return false
	}
	return p.Segments[len(p.Segments)-1].Placeholder
}
