// Package config loads session settings from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrConfigTooLarge  = errors.New("config exceeds maximum size")
	ErrInvalidValue    = errors.New("invalid config value")
)

// MaxInputSize limits config input to prevent memory exhaustion (1MB).
const MaxInputSize = 1 << 20

// appDir is the directory under the user config dir searched for named configs.
const appDir = "go-bloqs"

// Config holds the settings for one rendering session.
type Config struct {
	Resources ResourcesConfig `yaml:"resources"`
	Encode    *bool           `yaml:"encode"` // nil = default (compress scripts)
	Highlight HighlightConfig `yaml:"highlight"`
}

// ResourcesConfig defines where named resources are loaded from.
type ResourcesConfig struct {
	Dir string `yaml:"dir"` // Empty = embedded resources only
}

// HighlightConfig defines the chroma style used for code blocks.
type HighlightConfig struct {
	Style string `yaml:"style"` // Empty = "github"
}

// Validate checks values that cannot be verified by the YAML decoder.
func (c *Config) Validate() error {
	if strings.ContainsAny(c.Highlight.Style, " \t\n/\\") {
		return fmt.Errorf("%w: highlight.style %q", ErrInvalidValue, c.Highlight.Style)
	}
	return nil
}

// DefaultConfig returns a configuration that uses embedded resources and
// the default encoding.
func DefaultConfig() *Config {
	return &Config{}
}

// Parse decodes YAML data strictly, rejecting unknown keys.
// A relative resources.dir is resolved against baseDir.
func Parse(data []byte, baseDir string) (*Config, error) {
	if len(data) > MaxInputSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrConfigTooLarge, len(data), MaxInputSize)
	}

	cfg := DefaultConfig()
	if len(data) == 0 {
		return cfg, nil
	}

	if err := yaml.UnmarshalWithOptions(data, cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if dir := cfg.Resources.Dir; dir != "" && !filepath.IsAbs(dir) && baseDir != "" {
		cfg.Resources.Dir = filepath.Join(baseDir, dir)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func Load(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !isFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	return Parse(data, filepath.Dir(configPath))
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, {UserConfigDir}/go-bloqs/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, appDir, name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
