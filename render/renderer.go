// Package render assembles named endpoints into Ruby method stanzas and
// per-namespace module files. It is mechanical string assembly; all
// naming and normalization decisions happen upstream.
package render

import (
	"strings"

	"github.com/octogen/octogen/ir"
)

// Endpoint renders one documented method stanza: doc comment, signature,
// body, end, and the list alias when one exists.
func Endpoint(ep *ir.NamedEndpoint, rec *ir.RouteRecord) string {
	var b strings.Builder

	for _, line := range ep.DocLines {
		if line == "" {
			b.WriteString("#\n")
			continue
		}
		b.WriteString("# ")
		b.WriteString(line)
		b.WriteString("\n")
	}

	args := append(append([]string{}, ep.Parameters...), "options = {}")
	b.WriteString("def ")
	b.WriteString(ep.MethodName)
	b.WriteString("(")
	b.WriteString(strings.Join(args, ", "))
	b.WriteString(")\n")

	for _, line := range bodyLines(ep, rec) {
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("end\n")

	if ep.AlternateName != "" {
		b.WriteString("alias ")
		b.WriteString(ep.AlternateName)
		b.WriteString(" ")
		b.WriteString(ep.MethodName)
		b.WriteString("\n")
	}

	return b.String()
}

// bodyLines builds the method body. Subresource endpoints fetch the
// related resource by its URL parameter and follow the relation named
// after the last literal path segment; everything else issues the verb
// against the interpolated path.
func bodyLines(ep *ir.NamedEndpoint, rec *ir.RouteRecord) []string {
	verb := strings.ToLower(rec.Verb)

	if related, ok := subresourceFetch(ep, rec); ok {
		lits := rec.Path.Literals()
		relation := lits[len(lits)-1]
		return []string{
			related + " = get " + related + "_url, options",
			related + ".rels[:" + relation + "]." + verb + ".data",
		}
	}

	return []string{verb + " \"" + pathExpression(rec.Path) + "\", options"}
}

// subresourceFetch reports whether the endpoint uses the two-step
// subresource body, returning the related resource name.
func subresourceFetch(ep *ir.NamedEndpoint, rec *ir.RouteRecord) (string, bool) {
	res, err := ir.ResolveResource(rec.Path)
	if err != nil || !res.IsSubresource {
		return "", false
	}
	if len(ep.Parameters) == 0 || !strings.HasSuffix(ep.Parameters[0], "_url") {
		return "", false
	}
	return strings.TrimSuffix(ep.Parameters[0], "_url"), true
}

// pathExpression renders the path with placeholders interpolated. The
// two-segment owner/repo prefix collapses into the repository path
// helper, exactly once.
func pathExpression(p ir.PathTemplate) string {
	segs := p.Segments
	var parts []string

	if hasRepoPrefix(segs) {
		parts = append(parts, "#{Repository.path repo}")
		segs = segs[3:]
	}

	for _, s := range segs {
		if s.Placeholder {
			parts = append(parts, "#{"+s.Value+"}")
			continue
		}
		parts = append(parts, s.Value)
	}
	return strings.Join(parts, "/")
}

// hasRepoPrefix matches the literal /repos/:owner/:repo prefix.
func hasRepoPrefix(segs []ir.Segment) bool {
	return len(segs) >= 3 &&
		!segs[0].Placeholder && segs[0].Value == "repos" &&
		segs[1].Placeholder && segs[1].Value == "owner" &&
		segs[2].Placeholder && segs[2].Value == "repo"
}
