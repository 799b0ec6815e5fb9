package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
)

//go:embed static/*
var static embed.FS

// embeddedRoot is the directory inside the embedded filesystem holding resources.
const embeddedRoot = "static/"

// EmbeddedLoader loads resources compiled into the binary.
// Implements Loader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// Load reads static/{name}{ext} from the embedded filesystem.
func (e *EmbeddedLoader) Load(name, ext string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}

	content, err := static.ReadFile(embeddedRoot + name + ext)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %q", ErrNotFound, name+ext)
		}
		return "", fmt.Errorf("%w: %v", ErrRead, err)
	}

	return string(content), nil
}

// Compile-time interface check.
var _ Loader = (*EmbeddedLoader)(nil)
