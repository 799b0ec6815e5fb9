package bloqs

import (
	"html"
	"io"
	"strings"
)

// Style is a CSS resource rendered as a <style type="text/css"> tag.
type Style struct {
	Resource
}

// NewStyle creates a style on the default session.
// A named source is loaded from {root}/{name}.css.
func NewStyle(src Source, opts ...ResourceOption) (*Style, error) {
	return Default().Style(src, opts...)
}

// WriteTo writes <style type="text/css">{body}</style>, adding
// id="{tag id}" when one is set.
func (s *Style) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	cw.writeString(`<style type="text/css"`)
	if s.tagID != "" {
		cw.writeString(` id="` + html.EscapeString(s.tagID) + `"`)
	}
	cw.writeString(">")
	cw.writeString(escapeStyleBody(s.content))
	cw.writeString("</style>")
	return cw.n, cw.err
}

// escapeStyleBody escapes "</" so the body cannot close the style tag.
// In CSS "\/" still reads as "/".
func escapeStyleBody(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

// String renders the style tag.
func (s *Style) String() string {
	return renderString(s)
}
