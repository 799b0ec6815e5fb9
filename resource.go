package bloqs

import (
	"errors"
	"fmt"
)

// File extensions used to resolve named resources.
const (
	ExtScript = ".js"
	ExtStyle  = ".css"
)

// Resource is a loaded or inline piece of static content.
// It is immutable after construction.
type Resource struct {
	name    string
	ext     string
	content string
	tagID   string
	inline  bool
}

// ResourceOption configures a resource at construction.
type ResourceOption func(*resourceOptions)

type resourceOptions struct {
	tagID  string
	encode encodeMode
}

// WithTagID sets the HTML id attribute emitted by the resource tag.
func WithTagID(id string) ResourceOption {
	return func(o *resourceOptions) {
		o.tagID = id
	}
}

// WithEncode pins the compression setting of a script, ignoring the
// session default. It has no effect on styles.
func WithEncode(on bool) ResourceOption {
	return func(o *resourceOptions) {
		if on {
			o.encode = encodeOn
		} else {
			o.encode = encodeOff
		}
	}
}

func applyResourceOptions(opts []ResourceOption) resourceOptions {
	var o resourceOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// NewResource creates a resource on the default session.
func NewResource(src Source, ext string, opts ...ResourceOption) (*Resource, error) {
	return Default().Resource(src, ext, opts...)
}

// newResource resolves src once: inline content is kept as is, a name is
// loaded from {root}/{name}{ext}.
func newResource(loader Loader, src Source, ext string, o resourceOptions) (*Resource, error) {
	r := &Resource{name: src.name, ext: ext, tagID: o.tagID}

	switch src.kind {
	case sourceInline:
		r.content = src.content
		r.inline = true
		return r, nil
	case sourceNamed:
		if src.name == "" {
			return nil, fmt.Errorf("%w: empty name", ErrValidation)
		}
		content, err := loader.Load(src.name, ext)
		if err != nil {
			if errors.Is(err, ErrInvalidResourceName) {
				return nil, fmt.Errorf("%w: %w", ErrValidation, err)
			}
			return nil, fmt.Errorf("loading %s%s: %w", src.name, ext, err)
		}
		Logger().Debug("resource loaded", "name", src.name, "ext", ext, "bytes", len(content))
		r.content = content
		return r, nil
	default:
		return nil, ErrValidation
	}
}

// Name returns the resource name (empty for unlabelled inline content).
func (r *Resource) Name() string { return r.name }

// Ext returns the extension used to resolve the name.
func (r *Resource) Ext() string { return r.ext }

// Content returns the resolved body.
func (r *Resource) Content() string { return r.content }

// TagID returns the HTML id attribute, or "" if unset.
func (r *Resource) TagID() string { return r.tagID }

// Inline reports whether the body was supplied directly.
func (r *Resource) Inline() bool { return r.inline }
