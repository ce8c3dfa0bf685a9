// Package nfa provides a nondeterministic finite automaton built from
// structural combinators and a whole-string acceptance query.
//
// Automata are assembled bottom-up: Empty and FromCharacter create atomic
// automata, and Concat, Question, Plus and Star combine them. Every state is
// owned by the StateAllocator of the automaton it currently belongs to;
// Concat moves the right-hand side's states into the left-hand side.
//
// Accept runs an epsilon-closure simulation and memoizes each
// (active state set, input byte) transition in a bounded cache. The cache is
// cleared by every structural combinator, so results never depend on a
// previous shape of the automaton.
package nfa

import (
	"errors"
	"fmt"
)

// Common NFA errors
var (
	// ErrConsumed indicates use of an automaton that was passed to Concat
	ErrConsumed = errors.New("NFA was consumed by concatenation")

	// ErrUninitialized indicates use of an NFA not created by a factory
	ErrUninitialized = errors.New("NFA is not initialized")

	// ErrSelfConcat indicates an attempt to concatenate an NFA with itself
	ErrSelfConcat = errors.New("NFA concatenated with itself")

	// ErrTooManyStates indicates the state handle space is exhausted
	ErrTooManyStates = errors.New("too many NFA states")
)

// BuildError is the panic value raised when a combinator or query is used
// on an automaton that is not in a usable state. These are programming
// errors: a well-formed construction never triggers them.
type BuildError struct {
	Op  string
	Err error
}

// Error implements the error interface
func (e *BuildError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("nfa: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("nfa: %v", e.Err)
}

// Unwrap returns the underlying error
func (e *BuildError) Unwrap() error {
	return e.Err
}
