package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/octogen/octogen/ir"
	"github.com/octogen/octogen/namer"
	"github.com/octogen/octogen/normalizer"
	"github.com/octogen/octogen/render"
)

func pipeline(t *testing.T, raw ir.RawRoute, directory string) (*ir.NamedEndpoint, *ir.RouteRecord) {
	t.Helper()
	rec, err := ir.NewRouteRecord(raw)
	require.NoError(t, err)
	require.NoError(t, normalizer.Normalize(rec))
	ep, err := namer.Name(rec, directory)
	require.NoError(t, err)
	return ep, rec
}

func TestEndpointRepoPrefix(t *testing.T) {
	ep, rec := pipeline(t, ir.RawRoute{
		Path:   "/repos/:owner/:repo/issues/:number/comments/:id",
		Method: "GET",
		Params: []ir.RawParam{
			{Name: "owner", Type: "string", Required: true},
			{Name: "repo", Type: "string", Required: true},
			{Name: "number", Type: "integer", Required: true, Description: "The issue number"},
			{Name: "id", Type: "string", Required: true},
		},
	}, "issues")

	out := render.Endpoint(ep, rec)
	assert.Contains(t, out, "def issue_comment(repo, number, comment_id, options = {})")
	assert.Contains(t, out, `get "#{Repository.path repo}/issues/#{number}/comments/#{comment_id}", options`)
	// The owner/repo prefix collapses exactly once.
	assert.Equal(t, 1, strings.Count(out, "Repository.path"))
	assert.NotContains(t, out, "alias")
}

func TestEndpointSubresourceBody(t *testing.T) {
	ep, rec := pipeline(t, ir.RawRoute{
		Path:   "/repos/:owner/:repo/issues/:issue_id/comments",
		Method: "GET",
		Params: []ir.RawParam{
			{Name: "owner", Type: "string", Required: true},
			{Name: "repo", Type: "string", Required: true},
			{Name: "issue_id", Type: "string", Required: true},
		},
	}, "issues")

	out := render.Endpoint(ep, rec)
	assert.Contains(t, out, "def issue_comments(issue_url, options = {})")
	assert.Contains(t, out, "issue = get issue_url, options")
	assert.Contains(t, out, "issue.rels[:comments].get.data")
	assert.Contains(t, out, "alias list_issue_comments issue_comments")
	assert.NotContains(t, out, "Repository.path")
}

func TestEndpointBareCollection(t *testing.T) {
	ep, rec := pipeline(t, ir.RawRoute{
		Path:   "/gists",
		Method: "GET",
	}, "gists")

	out := render.Endpoint(ep, rec)
	assert.Contains(t, out, `get "gists", options`)
}

func TestEndpointCreateVerb(t *testing.T) {
	ep, rec := pipeline(t, ir.RawRoute{
		Path:   "/repos/:owner/:repo/issues",
		Method: "POST",
		Params: []ir.RawParam{
			{Name: "owner", Type: "string", Required: true},
			{Name: "repo", Type: "string", Required: true},
			{Name: "title", Type: "string", Required: true, Description: "The issue title."},
		},
	}, "issues")

	out := render.Endpoint(ep, rec)
	assert.Contains(t, out, "def create_issue(repo, title, options = {})")
	assert.Contains(t, out, `post "#{Repository.path repo}/issues", options`)
}

func TestModuleHeader(t *testing.T) {
	out := render.Module("issue_comments",
		"https://developer.github.com/v3/issues/comments/#list-comments-on-an-issue",
		[]string{"def issue_comments(issue_url, options = {})\nend\n"})

	assert.Contains(t, out, "module Octogen")
	assert.Contains(t, out, "module IssueComments")
	// The module-level link drops the endpoint anchor.
	assert.Contains(t, out, "# @see https://developer.github.com/v3/issues/comments/\n")
	assert.NotContains(t, out, "#list-comments-on-an-issue")
}
