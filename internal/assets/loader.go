package assets

// Loader defines the contract for loading a resource body by name.
// Implementations may load from embedded assets, a directory, a database, etc.
type Loader interface {
	// Load returns the body stored at {root}/{name}{ext}.
	// Returns ErrNotFound if the resource doesn't exist.
	// Returns ErrInvalidName if the name contains invalid characters.
	Load(name, ext string) (string, error)
}
