package crumbs

// Glyphs for paths with no segments and for segments not in the table.
const (
	HomeIcon    = "🏠"
	DefaultIcon = "📄"
)

var icons = map[string]string{
	"dashboard":     "📊",
	"projects":      "📁",
	"new":           "➕",
	"quotes":        "💰",
	"requests":      "📝",
	"messages":      "💬",
	"notifications": "🔔",
	"payments":      "💳",
	"invoices":      "🧾",
	"profile":       "👤",
	"settings":      "⚙️",
	"admin":         "🛡️",
	"users":         "👥",
	"analytics":     "📈",
	"login":         "🔑",
	"register":      "✍️",
	"services":      "🛠️",
	"portfolio":     "🖼️",
	"about":         "ℹ️",
	"contact":       "📞",
	"help":          "❓",
}

// Icon returns the glyph for the last segment of path.
func Icon(path string) string {
	seg, ok := lastSegment(path)
	if !ok {
		return HomeIcon
	}
	if icon, ok := icons[seg]; ok {
		return icon
	}
	return DefaultIcon
}
