package bloqs

import (
	"fmt"

	"github.com/alnah/go-bloqs/internal/assets"
)

// Loader loads a resource body stored at {root}/{name}{ext}.
// Implementations may load from embedded assets, a directory, a database, etc.
//
// Load should wrap ErrResourceNotFound when nothing exists under the name
// and ErrInvalidResourceName when the name is unusable.
type Loader interface {
	Load(name, ext string) (string, error)
}

// NewLoader creates a Loader for the given resource directory.
// If dir is empty, returns a loader using only the embedded resources.
// If dir is set, its resources take precedence with fallback to embedded.
// Returns ErrInvalidResourceDir if dir is set but not a readable directory.
func NewLoader(dir string) (Loader, error) {
	resolver, err := assets.NewResolver(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResourceDir, err)
	}
	return resolver, nil
}
