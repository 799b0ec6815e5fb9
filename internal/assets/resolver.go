package assets

import (
	"errors"
)

// Resolver combines a custom directory loader with the embedded loader.
// When a directory is configured, it is tried first and the embedded
// resources are used only for names the directory does not provide.
type Resolver struct {
	custom   Loader // nil if no resource directory configured
	embedded Loader
}

// NewResolver creates a Resolver.
// If dir is empty, only embedded resources are used.
// Returns ErrInvalidBasePath if dir is set but invalid.
func NewResolver(dir string) (*Resolver, error) {
	resolver := &Resolver{
		embedded: NewEmbeddedLoader(),
	}

	if dir != "" {
		fsLoader, err := NewFilesystemLoader(dir)
		if err != nil {
			return nil, err
		}
		resolver.custom = fsLoader
	}

	return resolver, nil
}

// Load loads a resource, trying the custom directory first if available.
func (r *Resolver) Load(name, ext string) (string, error) {
	if r.custom == nil {
		return r.embedded.Load(name, ext)
	}

	content, err := r.custom.Load(name, ext)
	if err == nil {
		return content, nil
	}

	// Only fall back for "not found" errors, not validation or I/O errors
	if !errors.Is(err, ErrNotFound) {
		return "", err
	}

	return r.embedded.Load(name, ext)
}

// HasCustomLoader returns true if a resource directory is configured.
func (r *Resolver) HasCustomLoader() bool {
	return r.custom != nil
}

// Compile-time interface check.
var _ Loader = (*Resolver)(nil)
