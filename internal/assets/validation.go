package assets

import (
	"fmt"
	"strings"
)

// ValidateName checks that a resource name is safe to join under a root.
// Dots are allowed inside the name ("jquery.min") but a name may not start
// with one, contain "..", or contain a path separator.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidName)
	}
	if strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") || strings.HasPrefix(name, ".") {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
