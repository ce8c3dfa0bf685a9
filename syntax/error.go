package syntax

import (
	"errors"
	"fmt"
)

// Syntax errors. Both abort compilation of the whole pattern.
var (
	// ErrUnbalancedGroup indicates a '(' without a matching ')'.
	ErrUnbalancedGroup = errors.New("unbalanced group")

	// ErrDanglingOperator indicates a postfix operator with no preceding
	// atom: at the start of a (sub)expression or right after another
	// operator.
	ErrDanglingOperator = errors.New("dangling postfix operator")

	// ErrNestingDepth indicates groups nested deeper than the parser allows.
	ErrNestingDepth = errors.New("group nesting too deep")
)

// Error describes a syntax error at a byte offset of a pattern.
type Error struct {
	Err     error
	Pattern string
	Pos     int
}

// Error implements the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("syntax error at position %d in %q: %v", e.Pos, e.Pattern, e.Err)
}

// Unwrap returns the underlying sentinel
func (e *Error) Unwrap() error {
	return e.Err
}
