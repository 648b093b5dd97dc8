package consts

// Output formats understood by the send package and the CLI.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatText = "text"
	FormatHTML = "html"
)

const (
	MIMETextPlain = "text/plain"
	MIMEJSON      = "application/json"
	MIMEYAML      = "application/yaml"
	MIMEHTML      = "text/html"
)

// MIMEByFormat maps an output format to its content type.
var MIMEByFormat = map[string]string{
	FormatJSON: MIMEJSON,
	FormatYAML: MIMEYAML,
	FormatText: MIMETextPlain,
	FormatHTML: MIMEHTML,
}
