// Package namer turns a normalized route record into a named endpoint:
// method name, optional list alias, signature parameter order,
// documentation lines, and the priority key used to order siblings.
package namer

import (
	"errors"
	"fmt"

	"github.com/octogen/octogen/internal/inflect"
	"github.com/octogen/octogen/ir"
)

// ErrUnsupportedVerb is returned for verbs that produce no method name.
// Only GET and POST endpoints are generated; callers skip the rest.
var ErrUnsupportedVerb = errors.New("no method name for verb")

// Paginated result controls are documented by the pagination helpers, not
// per endpoint.
var paginationParams = map[string]bool{
	"per_page": true,
	"page":     true,
}

// Name computes the NamedEndpoint for a normalized route enclosed in the
// given namespace directory.
func Name(rec *ir.RouteRecord, directory string) (*ir.NamedEndpoint, error) {
	lits := rec.Path.Literals()
	if len(lits) == 0 {
		return nil, ir.ErrNoLiterals
	}

	// The naming resource differs from the path-derived one: the last
	// literal segment is qualified by the directory unless it already is
	// the directory.
	seg := lits[len(lits)-1]
	name := seg
	if seg != directory {
		name = inflect.Singularize(directory) + "_" + seg
	}

	res, err := ir.ResolveResource(rec.Path)
	if err != nil {
		return nil, err
	}
	canonical := name
	if res.IsSingular {
		canonical = inflect.Singularize(name)
	}

	ep := &ir.NamedEndpoint{
		Priority: priority(rec, directory, res.IsSingular),
	}

	switch rec.Verb {
	case "GET":
		ep.MethodName = canonical
		if !res.IsSingular {
			ep.AlternateName = "list_" + canonical
		}
	case "POST":
		ep.MethodName = "create_" + inflect.Singularize(name)
	default:
		return nil, fmt.Errorf("%w %s", ErrUnsupportedVerb, rec.Verb)
	}

	for _, p := range rec.Params {
		if p.Required {
			ep.Parameters = append(ep.Parameters, p.Name)
		}
	}

	ep.DocLines = docLines(rec, canonical, name, res.IsSingular)
	return ep, nil
}

// priority computes the presentation order key: literal segments from the
// owning directory onward, then verb rank, then plurality. When the
// directory never appears in the path every literal segment counts.
func priority(rec *ir.RouteRecord, directory string, singular bool) ir.PriorityKey {
	start := 0
	for i, s := range rec.Path.Segments {
		if !s.Placeholder && s.Value == directory {
			start = i
			break
		}
	}

	literals := 0
	for _, s := range rec.Path.Segments[start:] {
		if !s.Placeholder {
			literals++
		}
	}

	rank := 2
	switch rec.Verb {
	case "GET":
		rank = 0
	case "POST":
		rank = 1
	}

	plural := 1
	if singular {
		plural = 0
	}

	return ir.PriorityKey{Literals: literals, VerbRank: rank, Plural: plural}
}
