package bloqs

import (
	"io"
	"strings"
)

// Fragment is anything that renders itself as HTML.
// Script, Style, MarkdownBlock and Registry implement it.
type Fragment interface {
	WriteTo(w io.Writer) (int64, error)
}

// countingWriter tracks bytes written for io.WriterTo implementations and
// remembers the first error so callers can chain writes.
type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	if cw.err != nil {
		return 0, cw.err
	}
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	cw.err = err
	return n, err
}

func (cw *countingWriter) writeString(s string) {
	_, _ = io.WriteString(cw, s)
}

// renderString renders f into a string. Writing to a strings.Builder
// cannot fail, so any error comes from f itself and is logged.
func renderString(f Fragment) string {
	var b strings.Builder
	if _, err := f.WriteTo(&b); err != nil {
		Logger().Warn("fragment render failed", "error", err)
	}
	return b.String()
}
