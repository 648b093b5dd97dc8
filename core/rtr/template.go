package rtr

import (
	"cmp"
	"slices"
	"strings"

	"github.com/nestlancer/rnav/consts"
)

// Segment is one '/'-delimited component of a route template.
type Segment struct {
	Value string // literal text, or the parameter name without the colon
	Param bool
}

// Template is a parsed route template such as /projects/:projectId.
// Segments mirror strings.Split(raw, "/"), so a rooted template starts with an empty literal.
type Template struct {
	Raw      string
	Segments []Segment
}

// ParseTemplate splits a template into literal and parameter segments.
// It never fails; a lone ":" becomes a parameter with an empty name.
func ParseTemplate(raw string) Template {
	parts := strings.Split(raw, consts.StrSlash)
	t := Template{Raw: raw, Segments: make([]Segment, len(parts))}

	for i, part := range parts {
		if isParamSegment(part) {
			t.Segments[i] = Segment{Value: part[1:], Param: true}
			continue
		}
		t.Segments[i] = Segment{Value: part}
	}
	return t
}

// Params returns the parameter names in the order they appear.
func (t Template) Params() (names []string) {
	for _, seg := range t.Segments {
		if seg.Param {
			names = append(names, seg.Value)
		}
	}
	return
}

// IsStatic reports whether the template has no parameter segments.
func (t Template) IsStatic() bool {
	for _, seg := range t.Segments {
		if seg.Param {
			return false
		}
	}
	return true
}

// Substitute replaces every literal occurrence of ":key" in template with params[key].
// This is plain text replacement: a key that prefixes a longer marker
// (id vs :identifier) also rewrites inside that marker. Use GenerateRoute
// when markers must be matched whole. Keys are applied longest first so the
// result does not depend on map iteration order.
func Substitute(template string, params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b string) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})

	out := template
	for _, k := range keys {
		out = strings.ReplaceAll(out, string(consts.RuneColon)+k, params[k])
	}
	return out
}

// GenerateRoute fills the parameter markers of template from params.
// A marker is the colon plus the full run of identifier characters after it,
// so "id" never rewrites ":identifier". Markers without a value are left as is.
func GenerateRoute(template string, params map[string]string) string {
	var sb strings.Builder
	sb.Grow(len(template))

	for i := 0; i < len(template); {
		if template[i] != consts.RuneColon {
			sb.WriteByte(template[i])
			i++
			continue
		}

		end := i + 1
		for end < len(template) && isIdentByte(template[end]) {
			end++
		}

		if val, ok := params[template[i+1:end]]; ok && end > i+1 {
			sb.WriteString(val)
		} else {
			sb.WriteString(template[i:end])
		}
		i = end
	}
	return sb.String()
}

// ExtractParams binds each parameter segment of template to the concrete
// segment at the same position. When path has fewer segments the binding is
// an empty string. Lengths are never required to agree.
func ExtractParams(path, template string) map[string]string {
	params := make(map[string]string)
	concrete := strings.Split(path, consts.StrSlash)

	for i, seg := range strings.Split(template, consts.StrSlash) {
		if !isParamSegment(seg) {
			continue
		}
		if i < len(concrete) {
			params[seg[1:]] = concrete[i]
		} else {
			params[seg[1:]] = ""
		}
	}
	return params
}

// Matches reports whether path has the same number of segments as template
// and every literal segment is equal (case-sensitive). Parameter segments match anything.
func Matches(path, template string) bool {
	return ParseTemplate(template).Match(path)
}

// Match is Matches for an already parsed template.
func (t Template) Match(path string) bool {
	_, ok := t.bind(path)
	return ok
}

// bind matches path against t and returns the parameters in template order.
func (t Template) bind(path string) ([]Parameter, bool) {
	concrete := strings.Split(path, consts.StrSlash)
	if len(concrete) != len(t.Segments) {
		return nil, false
	}

	var params []Parameter
	for i, seg := range t.Segments {
		if seg.Param {
			params = append(params, Parameter{Key: seg.Value, Value: concrete[i]})
			continue
		}
		if seg.Value != concrete[i] {
			return nil, false
		}
	}
	return params, true
}

func isParamSegment(seg string) bool {
	return len(seg) > 0 && seg[0] == consts.RuneColon
}

func isIdent(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isIdentByte(s[i]) {
			return false
		}
	}
	return s != ""
}

func isIdentByte(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
