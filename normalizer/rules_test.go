package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/octogen/octogen/ir"
)

func mustRecord(t *testing.T, raw ir.RawRoute) *ir.RouteRecord {
	t.Helper()
	rec, err := ir.NewRouteRecord(raw)
	require.NoError(t, err)
	return rec
}

func TestRewriteGenericID(t *testing.T) {
	rec := mustRecord(t, ir.RawRoute{
		Path:   "/repos/:owner/:repo/issues/:number/comments/:id",
		Method: "GET",
	})
	rewriteGenericID(rec)
	assert.Equal(t, "/repos/:owner/:repo/issues/:number/comments/:comment_id", rec.Path.String())

	// Absent :id leaves the path alone.
	rec = mustRecord(t, ir.RawRoute{Path: "/gists/:gist_id", Method: "GET"})
	rewriteGenericID(rec)
	assert.Equal(t, "/gists/:gist_id", rec.Path.String())
}

func TestDropOwner(t *testing.T) {
	rec := mustRecord(t, ir.RawRoute{
		Path:   "/repos/:owner/:repo",
		Method: "GET",
		Params: []ir.RawParam{
			{Name: "owner", Type: "string", Required: true},
			{Name: "repo", Type: "string", Required: true},
		},
	})
	dropOwner(rec)
	require.Len(t, rec.Params, 1)
	assert.Equal(t, "repo", rec.Params[0].Name)
}

func TestRenameIDParam(t *testing.T) {
	rec := mustRecord(t, ir.RawRoute{
		Path:   "/repos/:owner/:repo/comments/:id",
		Method: "GET",
		Params: []ir.RawParam{{Name: "id", Type: "string", Required: true}},
	})
	// The lookup runs against the original path even after the rewrite.
	rewriteGenericID(rec)
	renameIDParam(rec)
	assert.Equal(t, "comment_id", rec.Params[0].Name)
}

func TestCoerceIDTypes(t *testing.T) {
	rec := mustRecord(t, ir.RawRoute{
		Path:   "/repos/:owner/:repo/comments/:comment_id",
		Method: "GET",
		Params: []ir.RawParam{
			{Name: "comment_id", Type: "string", Required: true},
			{Name: "gist_id", Type: "integer", Required: true},
			{Name: "body", Type: "string"},
		},
	})
	coerceIDTypes(rec)
	assert.Equal(t, "integer", rec.Params[0].Type)
	assert.Equal(t, "integer", rec.Params[1].Type)
	assert.Equal(t, "string", rec.Params[2].Type)
}

func TestDefaultRepoDescription(t *testing.T) {
	rec := mustRecord(t, ir.RawRoute{
		Path:   "/repos/:owner/:repo",
		Method: "GET",
		Params: []ir.RawParam{{Name: "repo", Type: "string", Required: true, Description: "arbitrary upstream text"}},
	})
	defaultRepoDescription(rec)
	assert.Equal(t, ir.RepoDescription, rec.Params[0].Description)
}

func TestSynthesizeIDDescriptions(t *testing.T) {
	rec := mustRecord(t, ir.RawRoute{
		Path:   "/repos/:owner/:repo",
		Method: "GET",
		Params: []ir.RawParam{
			{Name: "comment_id", Type: "integer", Required: true},
			{Name: "check_run_id", Type: "integer", Required: true},
			{Name: "issue_id", Type: "integer", Required: true, Description: "already documented"},
		},
	})
	synthesizeIDDescriptions(rec)
	assert.Equal(t, "The ID of the comment", rec.Params[0].Description)
	assert.Equal(t, "The ID of the check run", rec.Params[1].Description)
	assert.Equal(t, "already documented", rec.Params[2].Description)
}

func TestStripAlertNotice(t *testing.T) {
	rec := mustRecord(t, ir.RawRoute{
		Path:   "/gists",
		Method: "GET",
		Params: []ir.RawParam{
			{Name: "since", Type: "string", Description: "Only gists updated after this time." + alertNotice},
		},
	})
	stripAlertNotice(rec)
	assert.Equal(t, "Only gists updated after this time.", rec.Params[0].Description)
}

func TestRewriteArrayTypes(t *testing.T) {
	rec := mustRecord(t, ir.RawRoute{
		Path:   "/gists",
		Method: "POST",
		Params: []ir.RawParam{
			{Name: "labels", Type: "string[]"},
			{Name: "title", Type: "string"},
		},
	})
	rewriteArrayTypes(rec)
	assert.Equal(t, "Array<string>", rec.Params[0].Type)
	assert.Equal(t, "string", rec.Params[1].Type)
}

func TestSynthesizeSubresourceURL(t *testing.T) {
	rec := mustRecord(t, ir.RawRoute{
		Path:   "/repos/:owner/:repo/issues/:issue_id/comments",
		Method: "GET",
		Params: []ir.RawParam{
			{Name: "repo", Type: "string", Required: true},
			{Name: "issue_id", Type: "integer", Required: true},
			{Name: "sort", Type: "string"},
		},
	})
	synthesizeSubresourceURL(rec)

	require.Len(t, rec.Params, 2)
	assert.Equal(t, ir.Parameter{
		Name:        "issue_url",
		Type:        "string",
		Required:    true,
		Description: "A URL for a issue resource.",
	}, rec.Params[0])
	assert.Equal(t, "sort", rec.Params[1].Name)
}

func TestSynthesizeSubresourceURLSkipsSingleItemRoutes(t *testing.T) {
	rec := mustRecord(t, ir.RawRoute{
		Path:   "/repos/:owner/:repo/issues/:number/comments/:comment_id",
		Method: "GET",
		Params: []ir.RawParam{
			{Name: "repo", Type: "string", Required: true},
			{Name: "comment_id", Type: "integer", Required: true},
		},
	})
	synthesizeSubresourceURL(rec)
	require.Len(t, rec.Params, 2)
	assert.Equal(t, "comment_id", rec.Params[1].Name)
}

func TestSynthesizeSubresourceURLNoIDParam(t *testing.T) {
	rec := mustRecord(t, ir.RawRoute{
		Path:   "/repos/:owner/:repo/git/trees",
		Method: "GET",
		Params: []ir.RawParam{{Name: "repo", Type: "string", Required: true}},
	})
	synthesizeSubresourceURL(rec)
	require.Len(t, rec.Params, 1)
	assert.Equal(t, "repo", rec.Params[0].Name)
}
