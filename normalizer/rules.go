package normalizer

import (
	"strings"

	"github.com/octogen/octogen/internal/inflect"
	"github.com/octogen/octogen/ir"
)

// alertNotice is boilerplate appended to some upstream descriptions; it
// refers to rendering context that does not survive generation.
const alertNotice = " See the alert below for details."

// contextualIDName derives "<singular of preceding segment>_id" for the
// generic :id placeholder in p. Returns "" when :id is absent or has no
// preceding segment.
func contextualIDName(p ir.PathTemplate) string {
	idx := p.PlaceholderIndex("id")
	if idx <= 0 {
		return ""
	}
	return inflect.Singularize(p.Segments[idx-1].Value) + "_id"
}

// rewriteGenericID replaces the generic :id placeholder with a name
// derived from the segment before it, e.g. /comments/:id becomes
// /comments/:comment_id.
func rewriteGenericID(rec *ir.RouteRecord) {
	name := contextualIDName(rec.Path)
	if name == "" {
		return
	}
	rec.Path.RenamePlaceholder("id", name)
}

// dropOwner removes the owner parameter. It is always implied by context
// and never surfaced to a caller.
func dropOwner(rec *ir.RouteRecord) {
	rec.RemoveParam("owner")
}

// renameIDParam renames a parameter literally called "id" the same way
// rewriteGenericID renamed the placeholder, using the pre-rewrite path
// for the lookup.
func renameIDParam(rec *ir.RouteRecord) {
	name := contextualIDName(rec.OriginalPath)
	if name == "" {
		return
	}
	if p := rec.FindParam("id"); p != nil {
		p.Name = name
	}
}

// coerceIDTypes retypes string parameters ending in _id to integer.
// Identifier-like parameters are numeric in this domain.
func coerceIDTypes(rec *ir.RouteRecord) {
	for i := range rec.Params {
		p := &rec.Params[i]
		if strings.HasSuffix(p.Name, "_id") && p.Type == "string" {
			p.Type = "integer"
		}
	}
}

// defaultRepoDescription overrides the description of a parameter named
// exactly "repo".
func defaultRepoDescription(rec *ir.RouteRecord) {
	if p := rec.FindParam("repo"); p != nil {
		p.Description = ir.RepoDescription
	}
}

// synthesizeIDDescriptions fills empty descriptions of _id parameters:
// comment_id gets "The ID of the comment".
func synthesizeIDDescriptions(rec *ir.RouteRecord) {
	for i := range rec.Params {
		p := &rec.Params[i]
		if p.Description != "" || !strings.HasSuffix(p.Name, "_id") {
			continue
		}
		subject := strings.ReplaceAll(strings.TrimSuffix(p.Name, "_id"), "_", " ")
		p.Description = "The ID of the " + subject
	}
}

// stripAlertNotice removes the alert boilerplate wherever it occurs.
func stripAlertNotice(rec *ir.RouteRecord) {
	for i := range rec.Params {
		p := &rec.Params[i]
		p.Description = strings.ReplaceAll(p.Description, alertNotice, "")
	}
}

// rewriteArrayTypes rewrites the trailing-bracket array notation into
// Array<T> form: "string[]" becomes "Array<string>".
func rewriteArrayTypes(rec *ir.RouteRecord) {
	for i := range rec.Params {
		p := &rec.Params[i]
		if strings.HasSuffix(p.Type, "[]") {
			p.Type = "Array<" + strings.TrimSuffix(p.Type, "[]") + ">"
		}
	}
}

// synthesizeSubresourceURL replaces the repo + id parameters of a
// subresource route with a single required R_url parameter, where R is
// the singular of the segment preceding the id placeholder in the
// rewritten path.
func synthesizeSubresourceURL(rec *ir.RouteRecord) {
	res, err := ir.ResolveResource(rec.Path)
	if err != nil || !res.IsSubresource || res.IsSingular {
		// Routes addressing a single nested item keep their id
		// parameter; only collection routes are reachable through the
		// parent resource's URL.
		return
	}

	var idParam *ir.Parameter
	for i := range rec.Params {
		if strings.Contains(rec.Params[i].Name, "id") {
			idParam = &rec.Params[i]
			break
		}
	}
	if idParam == nil {
		return
	}

	idx := rec.Path.PlaceholderIndex(idParam.Name)
	if idx <= 0 {
		return
	}
	related := inflect.Singularize(rec.Path.Segments[idx-1].Value)

	idName := idParam.Name
	rec.RemoveParam("repo")
	rec.RemoveParam(idName)
	rec.Params = append([]ir.Parameter{{
		Name:        related + "_url",
		Type:        "string",
		Required:    true,
		Description: "A URL for a " + related + " resource.",
	}}, rec.Params...)
}
