package bloqs

import (
	"bytes"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/alnah/go-bloqs/internal/assets"
	"github.com/alnah/go-bloqs/internal/config"
	"github.com/yuin/goldmark"
)

// Names of the embedded client-side decoder scripts, in emission order.
const (
	InflateScriptName   = "jsinflate"
	BootstrapScriptName = "blocks_eval"
)

// defaultHighlightStyle is the chroma style used when none is configured.
const defaultHighlightStyle = "github"

// Session owns everything one top-level render needs: the resource
// loader, the script codec, the default encoding and the interactive
// registry. Use one session per document; the package-level functions use
// the process-wide Default session.
type Session struct {
	cfg      sessionConfig
	loader   Loader
	codec    Codec
	registry *Registry

	mu            sync.Mutex
	encode        bool
	decoderNeeded bool
	defs          map[string]Fragment

	mdOnce sync.Once
	md     goldmark.Markdown
}

// sessionConfig holds options resolved after all Option funcs ran.
type sessionConfig struct {
	resourceDir    string
	highlightStyle string
}

// Option configures a Session.
type Option func(*Session)

// WithLoader sets the loader used for named resources.
func WithLoader(l Loader) Option {
	return func(s *Session) {
		s.loader = l
	}
}

// WithResourceDir loads named resources from dir, falling back to the
// embedded resources. Ignored when WithLoader is also given.
func WithResourceDir(dir string) Option {
	return func(s *Session) {
		s.cfg.resourceDir = dir
	}
}

// WithCodec sets the codec used for compressed scripts.
func WithCodec(c Codec) Option {
	return func(s *Session) {
		s.codec = c
	}
}

// WithDefaultEncode sets whether scripts without WithEncode are compressed.
// The default is true.
func WithDefaultEncode(on bool) Option {
	return func(s *Session) {
		s.encode = on
	}
}

// WithHighlightStyle sets the chroma style for Markdown code blocks.
func WithHighlightStyle(name string) Option {
	return func(s *Session) {
		s.cfg.highlightStyle = name
	}
}

// NewSession creates a Session.
// Returns ErrInvalidResourceDir if WithResourceDir names an unusable directory.
func NewSession(opts ...Option) (*Session, error) {
	s := &Session{
		codec:  NewDeflateCodec(),
		encode: true,
		defs:   make(map[string]Fragment),
		cfg:    sessionConfig{highlightStyle: defaultHighlightStyle},
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.loader == nil {
		l, err := NewLoader(s.cfg.resourceDir)
		if err != nil {
			return nil, err
		}
		s.loader = l
	}

	s.registry = NewRegistry(s.Resolve)
	s.defs[HighlightStyleID] = &highlightStyle{session: s}

	return s, nil
}

// LoadSession creates a Session from a YAML config file path or name.
// Names are searched as {name}.yaml/.yml in the working directory, then in
// the user config directory under go-bloqs/. Options given here override
// the file.
func LoadSession(nameOrPath string, opts ...Option) (*Session, error) {
	cfg, err := config.Load(nameOrPath)
	if err != nil {
		return nil, err
	}

	fromFile := []Option{WithResourceDir(cfg.Resources.Dir)}
	if cfg.Encode != nil {
		fromFile = append(fromFile, WithDefaultEncode(*cfg.Encode))
	}
	if cfg.Highlight.Style != "" {
		fromFile = append(fromFile, WithHighlightStyle(cfg.Highlight.Style))
	}

	return NewSession(append(fromFile, opts...)...)
}

var (
	defaultOnce    sync.Once
	defaultSession atomic.Pointer[Session]
)

// Default returns the process-wide session used by the package-level
// functions. Unless replaced with SetDefault, it loads embedded resources
// only and compresses scripts.
func Default() *Session {
	if s := defaultSession.Load(); s != nil {
		return s
	}
	defaultOnce.Do(func() {
		defaultSession.CompareAndSwap(nil, newEmbeddedSession())
	})
	return defaultSession.Load()
}

// SetDefault makes s the session used by the package-level functions.
// Passing nil restores a fresh embedded-only session.
func SetDefault(s *Session) {
	if s == nil {
		s = newEmbeddedSession()
	}
	defaultSession.Store(s)
}

func newEmbeddedSession() *Session {
	s, err := NewSession(WithLoader(assets.NewEmbeddedLoader()))
	if err != nil {
		panic(fmt.Sprintf("bloqs: default session: %v", err))
	}
	return s
}

// Encode returns the default encoding for scripts built without WithEncode.
func (s *Session) Encode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.encode
}

// SetEncode changes the default encoding. Scripts that inherit it pick up
// the new value the next time they render.
func (s *Session) SetEncode(on bool) {
	s.mu.Lock()
	s.encode = on
	s.mu.Unlock()
}

// Resource creates a resource from src, loading {root}/{name}{ext} for
// named sources.
func (s *Session) Resource(src Source, ext string, opts ...ResourceOption) (*Resource, error) {
	return newResource(s.loader, src, ext, applyResourceOptions(opts))
}

// Script creates a script resource bound to s.
func (s *Session) Script(src Source, opts ...ResourceOption) (*Script, error) {
	o := applyResourceOptions(opts)
	r, err := newResource(s.loader, src, ExtScript, o)
	if err != nil {
		return nil, err
	}
	return &Script{Resource: *r, encode: o.encode, session: s}, nil
}

// Style creates a style resource.
func (s *Session) Style(src Source, opts ...ResourceOption) (*Style, error) {
	r, err := newResource(s.loader, src, ExtStyle, applyResourceOptions(opts))
	if err != nil {
		return nil, err
	}
	return &Style{Resource: *r}, nil
}

// Define binds an interactive identifier to a fragment. Defined
// identifiers take precedence over named scripts when resolving.
// Registrations made before Define keep the fragment they resolved to.
func (s *Session) Define(id string, f Fragment) {
	s.mu.Lock()
	s.defs[id] = f
	s.mu.Unlock()
}

// Resolve returns the fragment for an interactive identifier: a defined
// fragment, or else the named script {root}/{id}.js.
func (s *Session) Resolve(id string) (Fragment, error) {
	s.mu.Lock()
	f, ok := s.defs[id]
	s.mu.Unlock()
	if ok {
		return f, nil
	}

	script, err := s.Script(Named(id))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrUnknownResource, id, err)
	}
	return script, nil
}

// Registry returns the session's interactive registry.
func (s *Session) Registry() *Registry {
	return s.registry
}

// RegisterInteractive declares that the document needs the resources
// identified by ids. Call it while building a sub-block.
// Each id is resolved now; if one is unknown, none is registered and the
// error wraps ErrUnknownResource.
func (s *Session) RegisterInteractive(ids ...string) error {
	return s.registry.Register(ids...)
}

// WriteInteractive renders every registered resource once, in first
// registration order, and clears the registry. With nothing registered it
// returns "".
//
// The result holds the resources only. Compressed scripts in it need the
// client-side decoder, which Document and InjectInteractive add; callers
// assembling a page themselves must emit DecoderScripts before it when
// DecoderNeeded reports true.
func (s *Session) WriteInteractive() (string, error) {
	return s.registry.Flush()
}

// ResetInteractive clears the registry and forgets whether the decoder
// was needed, ending the current document scope.
func (s *Session) ResetInteractive() {
	s.registry.Reset()
	s.mu.Lock()
	s.decoderNeeded = false
	s.mu.Unlock()
}

// DecoderScripts returns the client-side decoder, always uncompressed.
func (s *Session) DecoderScripts() ([]*Script, error) {
	names := []string{InflateScriptName, BootstrapScriptName}
	scripts := make([]*Script, 0, len(names))
	for _, name := range names {
		script, err := s.Script(Named(name), WithEncode(false))
		if err != nil {
			return nil, fmt.Errorf("decoder: %w", err)
		}
		scripts = append(scripts, script)
	}
	return scripts, nil
}

// DecoderNeeded reports whether a compressed script was rendered since
// the last ResetInteractive.
func (s *Session) DecoderNeeded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.decoderNeeded
}

func (s *Session) markDecoderNeeded() {
	s.mu.Lock()
	s.decoderNeeded = true
	s.mu.Unlock()
}

// writeDecoder renders the decoder scripts into buf.
func (s *Session) writeDecoder(buf *bytes.Buffer) error {
	scripts, err := s.DecoderScripts()
	if err != nil {
		return err
	}
	for _, script := range scripts {
		if _, err := script.WriteTo(buf); err != nil {
			return err
		}
	}
	return nil
}

// RegisterInteractive registers ids on the Default session.
func RegisterInteractive(ids ...string) error {
	return Default().RegisterInteractive(ids...)
}

// WriteInteractive flushes the Default session registry. As with
// Session.WriteInteractive, the decoder is not included.
func WriteInteractive() (string, error) {
	return Default().WriteInteractive()
}

// ResetInteractive clears the Default session registry.
func ResetInteractive() {
	Default().ResetInteractive()
}

// SetGlobalEncode sets the default encoding of the Default session.
func SetGlobalEncode(on bool) {
	Default().SetEncode(on)
}

// GlobalEncode returns the default encoding of the Default session.
func GlobalEncode() bool {
	return Default().Encode()
}
