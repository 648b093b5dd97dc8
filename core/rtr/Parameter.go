package rtr

// Parameter is a named value captured from a parameter segment of a route template.
//
// Example:
//   Template: /projects/:projectId/quotes/:quoteId
//   Path:     /projects/12/quotes/7
//   Result:   []Parameter{{Key: "projectId", Value: "12"}, {Key: "quoteId", Value: "7"}}
//
// The slice form keeps the order in which parameters appear in the template.
type Parameter struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// ParamMap converts ordered parameters into a name -> value map.
// A repeated key keeps its last value.
func ParamMap(params []Parameter) map[string]string {
	m := make(map[string]string, len(params))
	for _, p := range params {
		m[p.Key] = p.Value
	}
	return m
}
