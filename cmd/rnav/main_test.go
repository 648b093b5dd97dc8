package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nestlancer/rnav/consts"
	"github.com/rohanthewiz/assert"
	"go.uber.org/zap"
)

// run executes the root command with fresh global flag values.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	logger = zap.NewNop()
	routesFile = ""
	format = consts.FormatText
	verbose = false
	rawSubstitute = false

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestGenerate(t *testing.T) {
	out, err := run(t, "generate", "/projects/:projectId/quotes/:quoteId", "projectId=1", "quoteId=2")
	assert.Nil(t, err)
	assert.Equal(t, out, "/projects/1/quotes/2\n")

	out, err = run(t, "generate", "--raw", "/a/:identifier", "id=7")
	assert.Nil(t, err)
	assert.Equal(t, out, "/a/7entifier\n")

	_, err = run(t, "generate", "/projects/:id", "oops")
	assert.NotEqual(t, err, nil)
}

func TestPath(t *testing.T) {
	out, err := run(t, "path", consts.RouteAdminUser, "userId=9")
	assert.Nil(t, err)
	assert.Equal(t, out, "/admin/users/9\n")

	_, err = run(t, "path", consts.RouteAdminUser)
	assert.NotEqual(t, err, nil)
}

func TestParamsAndMatch(t *testing.T) {
	out, err := run(t, "params", "/projects/4/quotes/5", "/projects/:projectId/quotes/:quoteId")
	assert.Nil(t, err)
	assert.Equal(t, out, "projectId=4\nquoteId=5\n")

	out, err = run(t, "--format", "json", "params", "/projects/4", "/projects/:projectId/quotes/:quoteId")
	assert.Nil(t, err)
	var params map[string]string
	assert.Nil(t, json.Unmarshal([]byte(out), &params))
	assert.Equal(t, params["projectId"], "4")
	assert.Equal(t, params["quoteId"], "")

	out, err = run(t, "match", "/projects/4", "/projects/:id")
	assert.Nil(t, err)
	assert.Equal(t, out, "true\n")

	out, err = run(t, "match", "/projects", "/projects/:id")
	assert.Nil(t, err)
	assert.Equal(t, out, "false\n")
}

func TestMetadataCommands(t *testing.T) {
	out, err := run(t, "crumbs", "/projects/123/quotes/456")
	assert.Nil(t, err)
	assert.Equal(t, out, "Projects\t/projects\nQuotes\t/projects/123/quotes\n")

	out, err = run(t, "title", "/foo/my-thing")
	assert.Nil(t, err)
	assert.Equal(t, out, "My thing\n")

	out, err = run(t, "icon", "/dashboard")
	assert.Nil(t, err)
	assert.Equal(t, out, "📊\n")

	out, err = run(t, "--format", "html", "crumbs", "/admin/users")
	assert.Nil(t, err)
	assert.True(t, strings.Contains(out, `href="/admin"`))
}

func TestDescribe(t *testing.T) {
	out, err := run(t, "describe", "/projects/123/quotes/456")
	assert.Nil(t, err)
	assert.True(t, strings.Contains(out, "route: quote"))
	assert.True(t, strings.Contains(out, "projectId=123"))
	assert.True(t, strings.Contains(out, "> Quotes (/projects/123/quotes)"))

	out, err = run(t, "--format", "yaml", "describe", "/settings")
	assert.Nil(t, err)
	assert.True(t, strings.Contains(out, "title: Settings"))
	assert.True(t, strings.Contains(out, "route: settings"))
}

func TestRoutesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routes.yaml")
	data := "routes:\n  - name: gig\n    path: /gigs/:gigId\n"
	assert.Nil(t, os.WriteFile(path, []byte(data), 0o644))

	out, err := run(t, "--routes", path, "routes")
	assert.Nil(t, err)
	assert.Equal(t, out, "gig\t/gigs/:gigId\n")

	out, err = run(t, "--routes", path, "describe", "/gigs/3")
	assert.Nil(t, err)
	assert.True(t, strings.Contains(out, "route: gig"))
}

func TestBadFormat(t *testing.T) {
	_, err := run(t, "--format", "xml", "title", "/x")
	assert.NotEqual(t, err, nil)
}

func TestHTMLOutputEscapesText(t *testing.T) {
	out, err := run(t, "--format", "html", "title", `/x/<b>"bold"`)
	assert.Nil(t, err)
	assert.Equal(t, out, "&lt;b&gt;&#34;bold&#34;\n")

	out, err = run(t, "--format", "html", "crumbs", "/a/<i>")
	assert.Nil(t, err)
	assert.False(t, strings.Contains(out, "<i>"))
	assert.True(t, strings.Contains(out, "&lt;i&gt;"))
}
