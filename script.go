package bloqs

import (
	"io"
)

type encodeMode uint8

const (
	encodeInherit encodeMode = iota
	encodeOn
	encodeOff
)

// Script is a JavaScript resource rendered as a <script> tag, optionally
// compressed into a bootstrap call.
type Script struct {
	Resource
	encode  encodeMode
	session *Session
}

// NewScript creates a script on the default session.
// A named source is loaded from {root}/{name}.js.
func NewScript(src Source, opts ...ResourceOption) (*Script, error) {
	return Default().Script(src, opts...)
}

// Encoded reports whether the script renders compressed. A script built
// with WithEncode uses that value; otherwise the session default applies
// at the time of the call.
func (s *Script) Encoded() bool {
	switch s.encode {
	case encodeOn:
		return true
	case encodeOff:
		return false
	default:
		return s.session.Encode()
	}
}

// WriteTo writes <script>{body}</script>, where body is the compressed
// bootstrap call when Encoded is true and the raw script otherwise.
func (s *Script) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	cw.writeString("<script>")
	if cw.err != nil {
		return cw.n, cw.err
	}
	if err := s.WriteCompressed(cw, s.content); err != nil {
		return cw.n, err
	}
	cw.writeString("</script>")
	return cw.n, cw.err
}

// String renders the script tag.
func (s *Script) String() string {
	return renderString(s)
}

// WriteCompressed writes text through the session codec when Encoded is
// true, and text unchanged otherwise.
func (s *Script) WriteCompressed(w io.Writer, text string) error {
	if !s.Encoded() {
		_, err := io.WriteString(w, text)
		return err
	}
	s.session.markDecoderNeeded()
	return s.session.codec.Encode(w, text)
}
