package namer

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/octogen/octogen/internal/inflect"
	"github.com/octogen/octogen/ir"
)

// docLines builds the documentation block for an endpoint: one @param
// line per required parameter, one @option line per documented optional
// parameter, a @return line, and a @see link.
func docLines(rec *ir.RouteRecord, canonical, name string, singular bool) []string {
	var lines []string

	for _, p := range rec.Params {
		if !p.Required {
			continue
		}
		lines = append(lines, docLine("@param "+p.Name, p))
	}

	for _, p := range rec.Params {
		if p.Required || paginationParams[p.Name] {
			continue
		}
		lines = append(lines, docLine("@option options", p, ":"+p.Name))
	}

	switch {
	case rec.Verb == "POST":
		lines = append(lines, "@return [Sawyer::Resource] The new "+inflect.Singularize(name))
	case singular:
		lines = append(lines, "@return [Sawyer::Resource] A single "+canonical)
	default:
		lines = append(lines, "@return [Array<Sawyer::Resource>] A list of "+canonical)
	}

	if rec.DocumentationURL != "" {
		lines = append(lines, "@see "+rec.DocumentationURL)
	}
	return lines
}

// docLine renders "<prefix> [Tag] <extra words> <description>" without a
// trailing space when the description is empty.
func docLine(prefix string, p ir.Parameter, extra ...string) string {
	parts := append([]string{prefix, "[" + typeTag(p) + "]"}, extra...)
	if desc := description(p); desc != "" {
		parts = append(parts, desc)
	}
	return strings.Join(parts, " ")
}

// typeTag maps a parameter to its documentation type tag. The repo
// parameter has a fixed multi-type tag; everything else uses its
// normalized type, capitalized.
func typeTag(p ir.Parameter) string {
	if p.Name == "repo" {
		return ir.RepoTypeTag
	}
	t := p.Type
	if t == "" {
		t = "string"
	}
	if strings.HasPrefix(t, "Array<") {
		return t
	}
	// Casers are not safe for concurrent use; records may be named in
	// parallel, so build one per call.
	return cases.Title(language.English).String(t)
}

// description falls back to the repo default or the _id-derived wording
// when the normalized description is empty.
func description(p ir.Parameter) string {
	if p.Description != "" {
		return p.Description
	}
	if p.Name == "repo" {
		return ir.RepoDescription
	}
	if strings.HasSuffix(p.Name, "_id") {
		subject := strings.ReplaceAll(strings.TrimSuffix(p.Name, "_id"), "_", " ")
		return "The ID of the " + subject
	}
	return ""
}
