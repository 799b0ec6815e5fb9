package bloqs

import (
	"errors"

	"github.com/alnah/go-bloqs/internal/assets"
	"github.com/alnah/go-bloqs/internal/config"
)

// Sentinel errors for library operations.
var (
	// ErrValidation indicates a resource was constructed from an empty
	// Source or an unusable name. It is a programmer error.
	ErrValidation = errors.New("resource needs a name or inline content")

	// ErrUnknownResource indicates an interactive identifier could not be
	// resolved to a fragment.
	ErrUnknownResource = errors.New("unknown interactive resource")

	// ErrMalformedPayload indicates a compressed script payload could not be decoded.
	ErrMalformedPayload = errors.New("malformed compressed payload")

	// ErrInvalidCompressionLevel indicates a flate level outside the
	// supported range.
	ErrInvalidCompressionLevel = errors.New("invalid compression level")

	// ErrMarkdownConversion indicates Markdown to HTML conversion failed.
	ErrMarkdownConversion = errors.New("markdown conversion failed")

	// ErrInvalidResourceDir indicates the resource directory is not a
	// readable directory.
	ErrInvalidResourceDir = errors.New("invalid resource directory")
)

// Resource loading errors.
var (
	ErrResourceNotFound    = assets.ErrNotFound
	ErrResourceRead        = assets.ErrRead
	ErrInvalidResourceName = assets.ErrInvalidName
)

// Config loading errors.
var (
	ErrConfigNotFound = config.ErrConfigNotFound
	ErrConfigParse    = config.ErrConfigParse
)
