package bloqs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// writeResources creates a resource directory holding files.
func writeResources(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	return dir
}

// newTestSession creates a session whose resource directory holds files.
func newTestSession(t *testing.T, files map[string]string, opts ...Option) *Session {
	t.Helper()

	dir := writeResources(t, files)
	s, err := NewSession(append([]Option{WithResourceDir(dir)}, opts...)...)
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	return s
}

// mapLoader serves resources from memory, keyed by name+ext.
type mapLoader map[string]string

func (m mapLoader) Load(name, ext string) (string, error) {
	content, ok := m[name+ext]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrResourceNotFound, name+ext)
	}
	return content, nil
}

// failingWriter rejects every write.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errWriteFailed
}

var errWriteFailed = errors.New("write failed")
