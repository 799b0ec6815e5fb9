// Package assets loads static script and stylesheet bodies by name.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	Loader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (decoder runtime)
//	    ├── FilesystemLoader  - loads from a resource directory on disk
//	    └── Resolver          - combines both with custom-first fallback
//
// EmbeddedLoader serves the resources compiled into the binary, such as the
// client-side inflate decoder and the blocksEval bootstrap.
//
// FilesystemLoader serves user resources from a directory, with path
// traversal protection and symlink resolution.
//
// Resolver tries the FilesystemLoader first and falls back to the
// EmbeddedLoader only when the resource is not found there.
//
// # Naming Convention
//
// A resource body lives at {root}/{name}{ext}, for example:
//
//	{root}/
//	├── jsinflate.js
//	├── blocks_eval.js
//	└── report.css
//
// No other naming convention is supported.
package assets
