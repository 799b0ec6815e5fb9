package bloqs

import (
	"bytes"
	"html"
	"io"
	"strings"
)

// Document assembles fragments built on one session into a complete HTML
// page. Rendering drains the session's interactive registry, so each
// registered resource appears once even when it is also required directly.
type Document struct {
	session  *Session
	title    string
	requires []string
	head     []Fragment
	body     []Fragment
}

// NewDocument creates a document on the Default session.
func NewDocument(title string) *Document {
	return Default().NewDocument(title)
}

// NewDocument creates a document whose fragments are built on s.
func (s *Session) NewDocument(title string) *Document {
	return &Document{session: s, title: title}
}

// Require embeds the resources identified by ids in the page head.
// Identifiers resolve as for RegisterInteractive.
func (d *Document) Require(ids ...string) *Document {
	d.requires = append(d.requires, ids...)
	return d
}

// AddHead appends fragments to the page head.
func (d *Document) AddHead(frags ...Fragment) *Document {
	d.head = append(d.head, frags...)
	return d
}

// Add appends fragments to the page body.
func (d *Document) Add(frags ...Fragment) *Document {
	d.body = append(d.body, frags...)
	return d
}

// WriteTo renders the page into w. The session's interactive scope ends
// when it returns, whether or not rendering succeeded.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	s := d.session
	defer s.ResetInteractive()

	deps := NewDependencyTracker(d.requires...)

	var required, head, body, interactive bytes.Buffer
	for id := range deps.All() {
		if err := d.writeResolved(&required, id); err != nil {
			return 0, err
		}
	}
	if err := writeAll(&head, d.head); err != nil {
		return 0, err
	}
	if err := writeAll(&body, d.body); err != nil {
		return 0, err
	}

	flushed := 0
	for _, e := range s.registry.drain() {
		if deps.Contains(e.id) {
			continue
		}
		deps.Add(e.id)
		if _, err := e.frag.WriteTo(&interactive); err != nil {
			return 0, err
		}
		flushed++
	}

	var decoder bytes.Buffer
	if s.DecoderNeeded() {
		if err := s.writeDecoder(&decoder); err != nil {
			return 0, err
		}
	}

	cw := &countingWriter{w: w}
	cw.writeString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	cw.writeString("<title>" + html.EscapeString(d.title) + "</title>\n")
	cw.writeString(decoder.String())
	cw.writeString(required.String())
	cw.writeString(head.String())
	cw.writeString("\n</head>\n<body>\n")
	cw.writeString(body.String())
	cw.writeString(interactive.String())
	cw.writeString("\n</body>\n</html>\n")

	Logger().Debug("document rendered",
		"title", d.title,
		"resources", deps.Len(),
		"interactive", flushed,
		"decoder", decoder.Len() > 0,
		"bytes", cw.n)
	return cw.n, cw.err
}

// Render returns the page as a string.
func (d *Document) Render() (string, error) {
	var b strings.Builder
	if _, err := d.WriteTo(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (d *Document) writeResolved(buf *bytes.Buffer, id string) error {
	f, err := d.session.Resolve(id)
	if err != nil {
		return err
	}
	_, err = f.WriteTo(buf)
	return err
}

func writeAll(buf *bytes.Buffer, frags []Fragment) error {
	for _, f := range frags {
		if _, err := f.WriteTo(buf); err != nil {
			return err
		}
	}
	return nil
}
