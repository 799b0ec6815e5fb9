package bloqs

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// HighlightStyleID is the interactive identifier of the code highlighting
// stylesheet. Markdown blocks with highlighted code register it.
const HighlightStyleID = "bloqs-highlight"

// chromaMarker appears in the output of every highlighted code block.
const chromaMarker = `class="chroma"`

// MarkdownBlock is a sub-block holding Markdown converted to HTML.
type MarkdownBlock struct {
	html        string
	highlighted bool
}

// NewMarkdown converts source on the Default session.
func NewMarkdown(source string) (*MarkdownBlock, error) {
	return Default().Markdown(source)
}

// Markdown converts source to HTML. If the result contains highlighted
// code, the highlight stylesheet is registered as an interactive resource
// so it is emitted once however many blocks need it.
func (s *Session) Markdown(source string) (*MarkdownBlock, error) {
	s.mdOnce.Do(func() {
		s.md = newMarkdownConverter()
	})

	var buf bytes.Buffer
	if err := s.md.Convert([]byte(source), &buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMarkdownConversion, err)
	}

	block := &MarkdownBlock{html: buf.String()}
	if strings.Contains(block.html, chromaMarker) {
		block.highlighted = true
		if err := s.RegisterInteractive(HighlightStyleID); err != nil {
			return nil, err
		}
	}
	return block, nil
}

// newMarkdownConverter builds a goldmark instance with GFM and class-based
// highlighting, so colors come from the shared stylesheet.
func newMarkdownConverter() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
		),
	)
}

// HTML returns the converted Markdown without the wrapper element.
func (b *MarkdownBlock) HTML() string { return b.html }

// Highlighted reports whether the block contains highlighted code.
func (b *MarkdownBlock) Highlighted() bool { return b.highlighted }

// WriteTo writes the block wrapped in <div class="bloqs-markdown">.
func (b *MarkdownBlock) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	cw.writeString(`<div class="bloqs-markdown">`)
	cw.writeString(b.html)
	cw.writeString("</div>")
	return cw.n, cw.err
}

// highlightStyle renders the chroma stylesheet for the session's style.
// The CSS is generated when the fragment renders.
type highlightStyle struct {
	session *Session
}

func (h *highlightStyle) WriteTo(w io.Writer) (int64, error) {
	css, err := HighlightCSS(h.session.cfg.highlightStyle)
	if err != nil {
		return 0, err
	}
	style, err := h.session.Style(Inline(css).As(HighlightStyleID), WithTagID(HighlightStyleID))
	if err != nil {
		return 0, err
	}
	return style.WriteTo(w)
}

// HighlightCSS returns the class-based CSS of a chroma style. Unknown
// names fall back to chroma's default style.
func HighlightCSS(name string) (string, error) {
	var buf bytes.Buffer
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.WriteCSS(&buf, styles.Get(name)); err != nil {
		return "", fmt.Errorf("highlight css %q: %w", name, err)
	}
	return buf.String(), nil
}
