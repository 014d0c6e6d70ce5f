package octogen

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/octogen/octogen/ir"
	"github.com/octogen/octogen/sink"
)

func mustRecord(t *testing.T) *ir.RouteRecord {
	t.Helper()
	rec, err := ir.NewRouteRecord(ir.RawRoute{
		Path:   "/repos/:owner/:repo/issues/:number/comments/:id",
		Method: "GET",
		Params: []ir.RawParam{
			{Name: "repo", Type: "string", Required: true},
			{Name: "number", Type: "integer", Required: true},
			{Name: "id", Type: "string", Required: true},
		},
	})
	require.NoError(t, err)
	return rec
}

func TestGenerateGolden(t *testing.T) {
	archive, err := txtar.ParseFile(filepath.Join("testdata", "golden.txtar"))
	require.NoError(t, err)

	routesDir := t.TempDir()
	expected := map[string]string{}
	for _, f := range archive.Files {
		if name, ok := strings.CutPrefix(f.Name, "expected/"); ok {
			expected[name] = string(f.Data)
			continue
		}
		name, ok := strings.CutPrefix(f.Name, "routes/")
		require.True(t, ok, "unexpected fixture file %s", f.Name)
		full := filepath.Join(routesDir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, f.Data, 0644))
	}

	out := sink.NewMemorySink()
	result, err := Generate(context.Background(), &Config{
		RoutesDir: routesDir,
		Sink:      out,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"issues.rb"}, result.Files)
	assert.Empty(t, result.Malformed)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, "DELETE", result.Skipped[0].Verb)

	for name, want := range expected {
		got := out.Get(name)
		require.NotNil(t, got, "missing output file %s", name)
		assert.Equal(t, want, string(got), "output file %s", name)
	}
}

func TestGenerateRequiresRoutesDir(t *testing.T) {
	_, err := Generate(context.Background(), &Config{OutDir: t.TempDir()})
	assert.Error(t, err)
}

func TestGenerateIsolatesMalformedRecords(t *testing.T) {
	routesDir := t.TempDir()
	dir := filepath.Join(routesDir, "gists")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "gists.json"), []byte(`[
		{"path": "/gists", "method": "GET"},
		{"path": "/gists", "method": "FETCH"}
	]`), 0644))

	out := sink.NewMemorySink()
	result, err := Generate(context.Background(), &Config{RoutesDir: routesDir, Sink: out})
	require.NoError(t, err)

	require.Len(t, result.Malformed, 1)
	assert.Equal(t, 1, result.Malformed[0].Index)
	require.Equal(t, []string{"gists.rb"}, result.Files)
	assert.Contains(t, string(out.Get("gists.rb")), "def gists(options = {})")
}

func TestEndpointHelperNormalizesOnce(t *testing.T) {
	rec := mustRecord(t)
	ep, err := Endpoint(rec, "issues")
	require.NoError(t, err)
	assert.Equal(t, "issue_comment", ep.MethodName)

	// A second call must not re-run normalization.
	again, err := Endpoint(rec, "issues")
	require.NoError(t, err)
	assert.Equal(t, ep.MethodName, again.MethodName)
}
