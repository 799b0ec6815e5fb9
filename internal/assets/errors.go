package assets

import "errors"

// Sentinel errors for resource loading.
var (
	// ErrNotFound indicates no resource exists at {root}/{name}{ext}.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidName indicates the resource name is empty or could escape
	// the resource root (path separators, "..", leading dot).
	ErrInvalidName = errors.New("invalid resource name")

	// ErrInvalidBasePath indicates the configured resource directory is not a
	// readable directory.
	ErrInvalidBasePath = errors.New("invalid resource directory")

	// ErrRead indicates an I/O error occurred while reading a resource file.
	ErrRead = errors.New("failed to read resource")

	// ErrPathTraversal indicates an attempt to access files outside the base path.
	ErrPathTraversal = errors.New("path traversal detected")
)
