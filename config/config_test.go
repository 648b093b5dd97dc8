package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nestlancer/rnav/config"
	"github.com/rohanthewiz/assert"
)

const routesYAML = `
routes:
  - name: projects
    path: /projects
  - name: project
    path: /projects/:projectId
  - name: quote
    path: /projects/:projectId/quotes/:quoteId
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routes.yaml")
	assert.Nil(t, os.WriteFile(path, []byte(routesYAML), 0o644))

	cfg, err := config.Load(path)
	assert.Nil(t, err)
	assert.Equal(t, len(cfg.Routes), 3)
	assert.Equal(t, cfg.Routes[2].Name, "quote")

	rt, err := cfg.Table()
	assert.Nil(t, err)
	assert.Equal(t, rt.Len(), 3)

	name, params, found := rt.Lookup("/projects/5/quotes/6")
	assert.True(t, found)
	assert.Equal(t, name, "quote")
	assert.Equal(t, len(params), 2)
}

func TestLoadErrors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.NotEqual(t, err, nil)

	_, err = config.Parse([]byte("routes: ["))
	assert.NotEqual(t, err, nil)

	_, err = config.Parse([]byte("other: 1\n"))
	assert.NotEqual(t, err, nil)
	assert.True(t, strings.Contains(err.Error(), "no routes"))
}

func TestTableRejectsBadEntry(t *testing.T) {
	cfg, err := config.Parse([]byte("routes:\n  - name: a\n    path: /a\n  - name: a\n    path: /b\n"))
	assert.Nil(t, err)

	_, err = cfg.Table()
	assert.NotEqual(t, err, nil)
	assert.True(t, strings.Contains(err.Error(), "duplicate route name"))
}
