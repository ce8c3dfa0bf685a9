// Package nfamatch matches whole strings against small regular expressions
// by simulating a nondeterministic finite automaton.
//
// The pattern language has literal bytes, grouping with parentheses and the
// postfix operators '*', '+' and '?'. There is no alternation, no character
// classes and no escaping. A pattern matches a candidate only if it matches
// the entire candidate, as if it were anchored with ^ and $.
//
// Basic usage:
//
//	re, err := nfamatch.Compile("(foo(ba)?)*(bar)+")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	re.MatchString("foobabar") // true
//	re.MatchString("foo")      // false
//
// Compilation builds the automaton with Thompson-style combinators over a
// shared state arena. Matching tracks the set of active states, memoizing
// (state set, byte) transitions in a bounded cache. Patterns with required
// literals get a prefilter that rejects most non-matching candidates before
// the automaton runs.
//
// Worst case matching time is O(m*n) for a pattern of size m and a
// candidate of length n.
package nfamatch

import (
	"github.com/coregx/nfamatch/meta"
	"github.com/coregx/nfamatch/syntax"
)

// Syntax errors returned by Compile. Use errors.Is to test for them.
var (
	// ErrUnbalancedGroup indicates an unclosed '('.
	ErrUnbalancedGroup = syntax.ErrUnbalancedGroup

	// ErrDanglingOperator indicates a postfix operator with no operand.
	ErrDanglingOperator = syntax.ErrDanglingOperator

	// ErrNestingDepth indicates groups nested deeper than Config.MaxDepth.
	ErrNestingDepth = syntax.ErrNestingDepth
)

// Regex is a compiled pattern.
//
// A Regex is safe to use concurrently from multiple goroutines, except for
// ResetStats.
//
// Example:
//
//	re := nfamatch.MustCompile("a+b")
//	if re.MatchString("aaab") {
//	    println("matched!")
//	}
type Regex struct {
	engine  *meta.Engine
	pattern string
}

// Compile compiles a pattern.
//
// It fails with an error wrapping ErrUnbalancedGroup or ErrDanglingOperator
// if the pattern is malformed.
//
// Example:
//
//	re, err := nfamatch.Compile("(ab)+c")
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, meta.DefaultConfig())
}

// MustCompile compiles a pattern and panics if it fails.
//
// This is useful for patterns known to be valid at compile time.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("nfamatch: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// CompileWithConfig compiles a pattern with custom configuration.
//
// Example:
//
//	config := nfamatch.DefaultConfig()
//	config.CacheCapacity = 0 // no transition memoization
//	re, err := nfamatch.CompileWithConfig("(ab)*", config)
func CompileWithConfig(pattern string, config meta.Config) (*Regex, error) {
	engine, err := meta.CompileWithConfig(pattern, config)
	if err != nil {
		return nil, err
	}

	return &Regex{
		engine:  engine,
		pattern: pattern,
	}, nil
}

// DefaultConfig returns the default configuration for compilation.
func DefaultConfig() meta.Config {
	return meta.DefaultConfig()
}

// Match reports whether b, in its entirety, matches the pattern.
//
// Example:
//
//	re := nfamatch.MustCompile("a*")
//	re.Match(nil)           // true
//	re.Match([]byte("aab")) // false
func (r *Regex) Match(b []byte) bool {
	return r.engine.IsMatch(b)
}

// MatchString reports whether s, in its entirety, matches the pattern.
func (r *Regex) MatchString(s string) bool {
	return r.engine.IsMatch([]byte(s))
}

// String returns the source pattern.
func (r *Regex) String() string {
	return r.pattern
}

// NumStates returns the number of automaton states.
func (r *Regex) NumStates() int {
	return r.engine.NFA().NumStates()
}

// Stats returns a snapshot of matching statistics.
func (r *Regex) Stats() meta.Stats {
	return r.engine.Stats()
}

// ResetStats resets matching statistics.
func (r *Regex) ResetStats() {
	r.engine.ResetStats()
}

// Engine returns the underlying engine.
func (r *Regex) Engine() *meta.Engine {
	return r.engine
}
