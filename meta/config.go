// Package meta composes the parser, the NFA and the prefilter into a
// matching engine.
//
// Compilation parses the pattern twice with the same parser: once into an
// NFA and once into literal facts. The facts yield an optional prefilter
// that rejects most non-matching candidates without running the automaton,
// and decides exact-string patterns on its own.
package meta

import (
	"fmt"

	"github.com/coregx/nfamatch/nfa"
	"github.com/coregx/nfamatch/syntax"
)

// Config controls engine behavior.
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.CacheCapacity = 0 // recompute every transition
//	engine, err := meta.CompileWithConfig("(ab)+c", config)
type Config struct {
	// EnablePrefilter enables literal-based candidate rejection.
	// Default: true
	EnablePrefilter bool

	// CacheCapacity bounds the NFA transition cache. Zero disables it.
	// Default: 4096
	CacheCapacity int

	// MaxDepth limits group nesting in patterns.
	// Default: 1000
	MaxDepth int

	// MaxInnerLiterals caps the literals scanned by the prefilter.
	// Default: 16
	MaxInnerLiterals int
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		EnablePrefilter:  true,
		CacheCapacity:    nfa.DefaultCacheCapacity,
		MaxDepth:         syntax.DefaultMaxDepth,
		MaxInnerLiterals: 16,
	}
}

// Validate checks if the configuration is valid.
//
// Valid ranges:
//   - CacheCapacity: 0 to 1,000,000
//   - MaxDepth: 1 to 100,000
//   - MaxInnerLiterals: 0 to 1,000
func (c Config) Validate() error {
	if c.CacheCapacity < 0 || c.CacheCapacity > 1_000_000 {
		return &ConfigError{Field: "CacheCapacity", Message: "must be between 0 and 1,000,000"}
	}
	if c.MaxDepth < 1 || c.MaxDepth > 100_000 {
		return &ConfigError{Field: "MaxDepth", Message: "must be between 1 and 100,000"}
	}
	if c.MaxInnerLiterals < 0 || c.MaxInnerLiterals > 1000 {
		return &ConfigError{Field: "MaxInnerLiterals", Message: "must be between 0 and 1,000"}
	}
	return nil
}

// WithPrefilter returns a new config with the prefilter enabled/disabled
func (c Config) WithPrefilter(enabled bool) Config {
	c.EnablePrefilter = enabled
	return c
}

// WithCacheCapacity returns a new config with the specified cache capacity
func (c Config) WithCacheCapacity(capacity int) Config {
	c.CacheCapacity = capacity
	return c
}

// WithMaxDepth returns a new config with the specified nesting limit
func (c Config) WithMaxDepth(depth int) Config {
	c.MaxDepth = depth
	return c
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	return fmt.Sprintf("meta: invalid config: %s %s", e.Field, e.Message)
}
