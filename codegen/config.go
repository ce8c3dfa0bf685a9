// Package codegen emits standalone Go matchers for compiled automata.
//
// The generated file has no dependencies. It holds the automaton as static
// tables and a Match<Name> function that runs the same whole-string
// simulation as nfa.NFA.Accept, without the transition cache.
package codegen

import (
	"fmt"
	"go/token"
)

// Identifiers used in generated code
const (
	inputName  = "s"
	idName     = "id"
	curName    = "cur"
	nextName   = "next"
	stackName  = "stack"
	seenName   = "seen"
	resultName = "out"
)

// Config controls code generation.
type Config struct {
	// Package is the package clause of the generated file.
	Package string

	// Name is appended to "Match" to name the generated function, and
	// prefixes the unexported tables. It must start with an ASCII letter.
	Name string

	// Pattern is quoted in the generated comments. Optional.
	Pattern string
}

// Validate checks that Package and Name yield valid Go identifiers.
func (c Config) Validate() error {
	if !token.IsIdentifier(c.Package) || c.Package == "_" {
		return &ConfigError{Field: "Package", Value: c.Package}
	}
	if !token.IsIdentifier(c.Name) || !isASCIILetter(c.Name[0]) {
		return &ConfigError{Field: "Name", Value: c.Name}
	}
	return nil
}

// ConfigError reports an unusable identifier in Config.
type ConfigError struct {
	Field string
	Value string
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	return fmt.Sprintf("codegen: invalid %s %q", e.Field, e.Value)
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// lowerFirst converts the first character of a string to lowercase.
func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]|0x20) + s[1:]
}

// upperFirst converts the first character of a string to uppercase.
func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]&^0x20) + s[1:]
}
