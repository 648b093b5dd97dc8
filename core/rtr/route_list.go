package rtr

// RouteList represents a registered route for inspection and listing.
//
// Fields:
//   - Name: the route name, e.g. "quote"
//   - Path: the template, e.g. "/projects/:projectId/quotes/:quoteId"
//   - Params: parameter names in template order
type RouteList struct {
	Name   string   `json:"name" yaml:"name"`
	Path   string   `json:"path" yaml:"path"`
	Params []string `json:"params,omitempty" yaml:"params,omitempty"`
}
