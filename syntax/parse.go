// Package syntax parses the pattern language of nfamatch.
//
// The grammar is deliberately small:
//
//	expr    := (atom postfix?)*
//	atom    := byte | '(' expr ')'
//	postfix := '+' | '*' | '?'
//
// Concatenation is implicit juxtaposition. A postfix operator binds to the
// atom right before it, which may be a parenthesized group. Every byte other
// than '(', '+', '*' and '?' is a literal, and so is a ')' that closes no
// group; there are no escapes, classes, anchors or alternation. The empty pattern and "()" denote the
// language containing only the empty string.
//
// The parser does not build a tree. It drives a Builder with combinator
// calls in the order an automaton construction needs them, so the same
// parse can produce an NFA or any other bottom-up interpretation of the
// pattern.
package syntax

// DefaultMaxDepth is the group nesting limit used by Parse.
const DefaultMaxDepth = 1000

// Builder receives the structure of a pattern as bottom-up combinator calls.
//
// Every value passed to Concat, Star, Plus or Question was returned by an
// earlier Builder call and is never used again by the parser afterwards,
// so implementations may mutate and return their arguments.
type Builder[T any] interface {
	// Empty returns the value for the empty-string language.
	Empty() T
	// Char returns the value matching exactly the byte c.
	Char(c byte) T
	// Concat returns lhs followed by rhs.
	Concat(lhs, rhs T) T
	// Star returns zero or more repetitions of x.
	Star(x T) T
	// Plus returns one or more repetitions of x.
	Plus(x T) T
	// Question returns x or the empty string.
	Question(x T) T
}

// Parse parses pattern and returns the value b builds for it.
// The error, if any, is a *Error wrapping ErrUnbalancedGroup,
// ErrDanglingOperator or, when groups nest deeper than DefaultMaxDepth,
// ErrNestingDepth.
func Parse[T any](pattern string, b Builder[T]) (T, error) {
	return ParseWithLimit(pattern, b, DefaultMaxDepth)
}

// ParseWithLimit is Parse with a custom group nesting limit.
// Exceeding maxDepth fails with ErrNestingDepth; a limit <= 0 disables
// the check.
func ParseWithLimit[T any](pattern string, b Builder[T], maxDepth int) (T, error) {
	var zero T
	p := &parser[T]{
		pattern:  pattern,
		b:        b,
		maxDepth: maxDepth,
		closing:  matchGroups(pattern),
	}
	v, err := p.parseExpr(len(pattern))
	if err != nil {
		return zero, err
	}
	return v, nil
}

// IsOperator reports whether c is a postfix operator.
func IsOperator(c byte) bool {
	return c == '+' || c == '*' || c == '?'
}

type parser[T any] struct {
	pattern  string
	pos      int
	depth    int
	maxDepth int
	b        Builder[T]

	// closing[i] is the position of the ')' matching a '(' at i, or
	// unclosed if the group is never closed.
	closing []int
}

const unclosed = -1

// matchGroups pairs parentheses in one pass.
func matchGroups(pattern string) []int {
	closing := make([]int, len(pattern))
	var open []int
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '(':
			closing[i] = unclosed
			open = append(open, i)
		case ')':
			if len(open) > 0 {
				closing[open[len(open)-1]] = i
				open = open[:len(open)-1]
			}
		}
	}
	return closing
}

// parseExpr parses the expression in [p.pos, end) and leaves p.pos at end.
func (p *parser[T]) parseExpr(end int) (T, error) {
	var (
		zero      T
		acc, last T
		haveAcc   bool
		haveLast  bool
		afterOp   bool
	)
	flush := func() {
		if !haveLast {
			return
		}
		if haveAcc {
			acc = p.b.Concat(acc, last)
		} else {
			acc, haveAcc = last, true
		}
		haveLast = false
	}

	for p.pos < end {
		c := p.pattern[p.pos]
		switch {
		case c == '(':
			sub, err := p.parseGroup()
			if err != nil {
				return zero, err
			}
			flush()
			last, haveLast, afterOp = sub, true, false

		case IsOperator(c):
			if !haveLast || afterOp {
				return zero, p.errorf(ErrDanglingOperator)
			}
			last = p.apply(c, last)
			afterOp = true
			p.pos++

		default:
			// A group's own ')' sits at end, so a ')' seen here closes
			// nothing and is matched literally.
			flush()
			last, haveLast, afterOp = p.b.Char(c), true, false
			p.pos++
		}
	}

	flush()
	if !haveAcc {
		return p.b.Empty(), nil
	}
	return acc, nil
}

// parseGroup parses '(' expr ')' starting at p.pos.
func (p *parser[T]) parseGroup() (T, error) {
	var zero T
	end := p.closing[p.pos]
	if end < 0 {
		return zero, p.errorf(ErrUnbalancedGroup)
	}
	if p.maxDepth > 0 && p.depth >= p.maxDepth {
		return zero, p.errorf(ErrNestingDepth)
	}

	p.depth++
	p.pos++
	sub, err := p.parseExpr(end)
	p.depth--
	if err != nil {
		return zero, err
	}
	p.pos = end + 1
	return sub, nil
}

func (p *parser[T]) apply(op byte, x T) T {
	switch op {
	case '+':
		return p.b.Plus(x)
	case '*':
		return p.b.Star(x)
	default:
		return p.b.Question(x)
	}
}

func (p *parser[T]) errorf(err error) *Error {
	return &Error{Err: err, Pattern: p.pattern, Pos: p.pos}
}
