package render_test

import (
	"strings"
	"testing"

	"github.com/nestlancer/rnav"
	"github.com/nestlancer/rnav/core/crumbs"
	"github.com/nestlancer/rnav/render"
	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/element"
)

func TestPage(t *testing.T) {
	nav := rnav.NewNavigator(nil)
	out := render.Page(nav.Describe("/projects/123/quotes"))

	assert.True(t, strings.Contains(out, "Quotes"))
	assert.True(t, strings.Contains(out, `href="/projects"`))
	assert.True(t, strings.Contains(out, "page-title"))
	assert.True(t, strings.Contains(out, "💰"))
	// The current page is not linked.
	assert.False(t, strings.Contains(out, `href="/projects/123/quotes"`))
}

func TestTrailEmpty(t *testing.T) {
	b := element.NewBuilder()
	element.RenderComponents(b, render.Trail{})
	assert.False(t, strings.Contains(b.String(), "breadcrumbs"))
}

func TestTrailOrder(t *testing.T) {
	b := element.NewBuilder()
	element.RenderComponents(b, render.Trail{Crumbs: []crumbs.Breadcrumb{
		{Label: "Admin", Path: "/admin"},
		{Label: "Users", Path: "/admin/users"},
	}})
	out := b.String()

	assert.True(t, strings.Contains(out, `class="breadcrumbs"`))
	assert.True(t, strings.Index(out, "Admin") < strings.Index(out, "Users"))
	assert.True(t, strings.Contains(out, `aria-current="page"`))
}

func TestPageEscapesPathText(t *testing.T) {
	nav := rnav.NewNavigator(nil)
	out := render.Page(nav.Describe(`/a/<script>alert(1)<\/script>/x"onmouseover=1`))

	assert.False(t, strings.Contains(out, "<script>"))
	assert.False(t, strings.Contains(out, `x"onmouseover`))
	assert.False(t, strings.Contains(out, `X"onmouseover`))
	assert.True(t, strings.Contains(out, "&lt;script&gt;"))
	assert.True(t, strings.Contains(out, "X&#34;onmouseover=1"))
	assert.True(t, strings.Contains(out, `<nav class="breadcrumbs"`))
}
