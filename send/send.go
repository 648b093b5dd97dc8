package send

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/nestlancer/rnav/consts"
	"github.com/rohanthewiz/serr"
	"gopkg.in/yaml.v3"
)

// HTML writes body as is. Callers render it first.
func HTML(w io.Writer, body string) error {
	return Text(w, body)
}

// JSON encodes the object as indented JSON.
func JSON(w io.Writer, object any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(object)
}

// Text writes body followed by a newline.
func Text(w io.Writer, body string) error {
	_, err := fmt.Fprintln(w, body)
	return err
}

// YAML encodes the object as a YAML document.
func YAML(w io.Writer, object any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(object); err != nil {
		return err
	}
	return enc.Close()
}

// Format writes object in the named format. text and html need a string;
// other values are printed with their default formatting.
func Format(w io.Writer, format string, object any) error {
	switch format {
	case consts.FormatJSON:
		return JSON(w, object)
	case consts.FormatYAML:
		return YAML(w, object)
	case consts.FormatText:
		return Text(w, stringOf(object))
	case consts.FormatHTML:
		return HTML(w, stringOf(object))
	default:
		return serr.New("unknown output format", "format", format)
	}
}

// ContentType returns the MIME type of a format, or text/plain if unknown.
func ContentType(format string) string {
	if mime, ok := consts.MIMEByFormat[format]; ok {
		return mime
	}
	return consts.MIMETextPlain
}

func stringOf(object any) string {
	switch v := object.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
