package bloqs

type sourceKind uint8

const (
	sourceNone sourceKind = iota
	sourceNamed
	sourceInline
)

// Source says where a resource body comes from: a name resolved through
// the session loader, or inline content used verbatim.
// The zero Source is neither and is rejected with ErrValidation.
type Source struct {
	kind    sourceKind
	name    string
	content string
}

// Named returns a Source whose body is loaded from {root}/{name}{ext}.
func Named(name string) Source {
	return Source{kind: sourceNamed, name: name}
}

// Inline returns a Source whose body is content.
func Inline(content string) Source {
	return Source{kind: sourceInline, content: content}
}

// As labels an inline source with a name. The content is still used
// verbatim; the name is only reported by Resource.Name.
func (s Source) As(name string) Source {
	s.name = name
	return s
}

// IsInline reports whether the body is supplied directly.
func (s Source) IsInline() bool { return s.kind == sourceInline }

// IsZero reports whether s was built by neither Named nor Inline.
func (s Source) IsZero() bool { return s.kind == sourceNone }

// Name returns the resource name, which may be empty for inline sources.
func (s Source) Name() string { return s.name }
