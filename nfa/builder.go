package nfa

import (
	"github.com/coregx/nfamatch/syntax"
)

// Builder adapts the NFA combinators to syntax.Builder, so a parsed pattern
// is assembled directly into an automaton.
//
// Concat consumes its right operand and every combinator mutates its
// argument in place, which matches the single-use contract of
// syntax.Builder.
type Builder struct{}

var _ syntax.Builder[*NFA] = Builder{}

// Compile parses pattern and returns its automaton.
func Compile(pattern string) (*NFA, error) {
	return syntax.Parse[*NFA](pattern, Builder{})
}

// Empty returns Empty()
func (Builder) Empty() *NFA {
	return Empty()
}

// Char returns FromCharacter(c)
func (Builder) Char(c byte) *NFA {
	return FromCharacter(c)
}

// Concat appends rhs to lhs and returns lhs
func (Builder) Concat(lhs, rhs *NFA) *NFA {
	lhs.Concat(rhs)
	return lhs
}

// Star applies Star to x and returns it
func (Builder) Star(x *NFA) *NFA {
	x.Star()
	return x
}

// Plus applies Plus to x and returns it
func (Builder) Plus(x *NFA) *NFA {
	x.Plus()
	return x
}

// Question applies Question to x and returns it
func (Builder) Question(x *NFA) *NFA {
	x.Question()
	return x
}
