// Package render turns a described page into HTML navigation fragments.
package render

import (
	"html"

	"github.com/nestlancer/rnav"
	"github.com/nestlancer/rnav/core/crumbs"
	"github.com/rohanthewiz/element"
)

// element writes text and attribute values as given, and labels and hrefs
// come straight from the browser path, so everything is escaped here.

// Trail renders breadcrumbs as a navigation list.
// The last crumb is the current page and is not a link.
type Trail struct {
	Crumbs []crumbs.Breadcrumb
}

func (t Trail) Render(b *element.Builder) any {
	if len(t.Crumbs) == 0 {
		return nil
	}

	items := make([]element.Component, len(t.Crumbs))
	for i, c := range t.Crumbs {
		items[i] = crumbItem{crumb: c, current: i == len(t.Crumbs)-1}
	}

	b.Nav("class", "breadcrumbs", "aria-label", "breadcrumb").R(
		b.Ul().R(
			element.RenderComponents(b, items...),
		),
	)
	return nil
}

type crumbItem struct {
	crumb   crumbs.Breadcrumb
	current bool
}

func (c crumbItem) Render(b *element.Builder) any {
	if c.current {
		b.Li("class", "current").R(
			b.Span("aria-current", "page").T(html.EscapeString(c.crumb.Label)),
		)
		return nil
	}
	b.Li().R(
		b.A("href", html.EscapeString(c.crumb.Path)).T(html.EscapeString(c.crumb.Label)),
	)
	return nil
}

// Heading renders the page icon and title.
type Heading struct {
	Icon  string
	Title string
}

func (h Heading) Render(b *element.Builder) any {
	b.H1("class", "page-title").R(
		b.Span("class", "page-icon").T(html.EscapeString(h.Icon)),
		b.Span().T(html.EscapeString(h.Title)),
	)
	return nil
}

// Page renders the heading followed by the breadcrumb trail.
func Page(pg rnav.Page) string {
	b := element.NewBuilder()
	element.RenderComponents(b,
		Heading{Icon: pg.Icon, Title: pg.Title},
		Trail{Crumbs: pg.Breadcrumbs},
	)
	return b.String()
}
