// Package crumbs derives navigation metadata (breadcrumbs, page title, icon)
// from a concrete URL path.
package crumbs

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/nestlancer/rnav/consts"
)

// Breadcrumb is one ancestor step toward the current page.
type Breadcrumb struct {
	Label string `json:"label" yaml:"label"`
	Path  string `json:"path" yaml:"path"`
}

// HomeTitle is the title of a path with no segments.
const HomeTitle = "Home"

// fixedTitles override the derived title for a few top level pages.
var fixedTitles = map[string]string{
	"dashboard": "Dashboard",
	"profile":   "Profile",
	"settings":  "Settings",
}

// Breadcrumbs walks path left to right and emits one crumb per non-numeric segment.
// Numeric segments are resource ids: they get no label but still extend the
// prefix of the crumbs after them.
//
//	/projects/123/quotes/456 -> [{Projects /projects} {Quotes /projects/123/quotes}]
func Breadcrumbs(path string) []Breadcrumb {
	var (
		crumbs []Breadcrumb
		prefix strings.Builder
	)

	for _, seg := range segments(path) {
		prefix.WriteString(consts.StrSlash)
		prefix.WriteString(seg)
		if isNumeric(seg) {
			continue
		}
		crumbs = append(crumbs, Breadcrumb{Label: Label(seg), Path: prefix.String()})
	}
	return crumbs
}

// Title returns the page title for path, based on its last segment.
func Title(path string) string {
	seg, ok := lastSegment(path)
	if !ok {
		return HomeTitle
	}
	if title, ok := fixedTitles[seg]; ok {
		return title
	}
	return Label(seg)
}

// Label formats a path segment for display: the first character is upper-cased
// and hyphens become spaces. "my-thing" -> "My thing".
func Label(seg string) string {
	if seg == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(seg)
	if r == utf8.RuneError && size == 1 {
		return strings.ReplaceAll(seg, "-", " ")
	}
	return string(unicode.ToUpper(r)) + strings.ReplaceAll(seg[size:], "-", " ")
}

// segments returns the non-empty segments of path.
func segments(path string) []string {
	parts := strings.Split(path, consts.StrSlash)
	segs := parts[:0]
	for _, p := range parts {
		if p != "" {
			segs = append(segs, p)
		}
	}
	return segs
}

func lastSegment(path string) (string, bool) {
	segs := segments(path)
	if len(segs) == 0 {
		return "", false
	}
	return segs[len(segs)-1], true
}

// isNumeric reports whether seg is made only of decimal digits.
func isNumeric(seg string) bool {
	if seg == "" {
		return false
	}
	for i := 0; i < len(seg); i++ {
		if seg[i] < '0' || seg[i] > '9' {
			return false
		}
	}
	return true
}
