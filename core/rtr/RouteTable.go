package rtr

import (
	"slices"
	"strings"

	"github.com/nestlancer/rnav/consts"
	"github.com/rohanthewiz/serr"
)

// RouteTable holds the application's named route templates.
// Static templates resolve through a hash lookup; parameter templates are
// tried in registration order.
type RouteTable struct {
	static  map[string]string // template -> name
	dynamic []namedTemplate
	byName  map[string]Template
}

type namedTemplate struct {
	name string
	tmpl Template
}

// NewRouteTable creates an empty table.
// It is important to use this function since the maps must be initialized.
func NewRouteTable() *RouteTable {
	return &RouteTable{
		static: make(map[string]string, 16),
		byName: make(map[string]Template, 32),
	}
}

// Add registers a template under name.
func (rt *RouteTable) Add(name string, template string) error {
	if name == "" {
		return serr.New("route name is empty", "template", template)
	}
	if !strings.HasPrefix(template, consts.StrSlash) {
		return serr.New("route template must start with a slash", "name", name, "template", template)
	}
	if _, exists := rt.byName[name]; exists {
		return serr.New("duplicate route name", "name", name, "template", template)
	}

	tmpl := ParseTemplate(template)
	for _, p := range tmpl.Params() {
		if p == "" {
			return serr.New("route template has an unnamed parameter", "name", name, "template", template)
		}
		if !isIdent(p) {
			return serr.New("route parameter name must be letters, digits or underscore",
				"name", name, "template", template, "param", p)
		}
	}

	rt.byName[name] = tmpl
	if tmpl.IsStatic() {
		if _, taken := rt.static[template]; !taken {
			rt.static[template] = name
		}
		return nil
	}
	rt.dynamic = append(rt.dynamic, namedTemplate{name: name, tmpl: tmpl})
	return nil
}

// Lookup finds the route for a concrete path.
// Static routes win over parameter routes, so /projects/new is never read as a project id.
func (rt *RouteTable) Lookup(path string) (name string, params []Parameter, found bool) {
	if name, ok := rt.static[path]; ok {
		return name, nil, true
	}

	for _, nt := range rt.dynamic {
		if params, ok := nt.tmpl.bind(path); ok {
			return nt.name, params, true
		}
	}
	return "", nil, false
}

// Template returns the template registered under name.
func (rt *RouteTable) Template(name string) (Template, bool) {
	t, ok := rt.byName[name]
	return t, ok
}

// Path builds the concrete path of a named route.
// Every parameter of the template must have a non-empty value.
func (rt *RouteTable) Path(name string, params map[string]string) (string, error) {
	tmpl, ok := rt.byName[name]
	if !ok {
		return "", serr.New("unknown route", "name", name)
	}

	for _, p := range tmpl.Params() {
		if params[p] == "" {
			return "", serr.New("missing route parameter", "name", name, "param", p)
		}
	}

	path := GenerateRoute(tmpl.Raw, params)

	// Each parameter segment must come back as exactly the value supplied.
	// A value holding a slash or a marker left unfilled breaks that.
	bound, ok := tmpl.bind(path)
	if !ok {
		return "", serr.New("generated path does not match route", "name", name, "path", path)
	}
	for _, p := range bound {
		if p.Value != params[p.Key] {
			return "", serr.New("route parameter not substituted", "name", name, "param", p.Key, "path", path)
		}
	}
	return path, nil
}

// ListRoutes returns all registered routes sorted by name.
func (rt *RouteTable) ListRoutes() (routes []RouteList) {
	for name, tmpl := range rt.byName {
		routes = append(routes, RouteList{Name: name, Path: tmpl.Raw, Params: tmpl.Params()})
	}
	slices.SortFunc(routes, func(a, b RouteList) int {
		return strings.Compare(a.Name, b.Name)
	})
	return
}

// Len returns the number of registered routes.
func (rt *RouteTable) Len() int {
	return len(rt.byName)
}
