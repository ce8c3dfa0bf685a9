package literal

import (
	"slices"

	"github.com/coregx/nfamatch/syntax"
)

// Extractor computes Info bottom-up from parser combinator calls.
// It implements syntax.Builder.
type Extractor struct{}

var _ syntax.Builder[*Info] = Extractor{}

// Extract parses pattern and returns the literal facts of its matches.
func Extract(pattern string) (*Info, error) {
	return syntax.Parse[*Info](pattern, Extractor{})
}

// Empty returns the info of the empty-string language
func (Extractor) Empty() *Info {
	return exact("")
}

// Char returns the info of a single byte
func (Extractor) Char(c byte) *Info {
	return exact(string([]byte{c}))
}

// Concat combines the facts of two consecutive fragments.
//
// Every match of lhs·rhs is u·v with u ending in lhs.Suffix and v starting
// with rhs.Prefix, so their junction lhs.Suffix+rhs.Prefix is a required
// substring. An exact side extends the other side's prefix or suffix.
func (Extractor) Concat(lhs, rhs *Info) *Info {
	if lhs.IsExact && rhs.IsExact {
		return exact(lhs.Exact + rhs.Exact)
	}

	out := &Info{
		Prefix: lhs.Prefix,
		Suffix: rhs.Suffix,
		MinLen: lhs.MinLen + rhs.MinLen,
	}
	if lhs.IsExact {
		out.Prefix = lhs.Exact + rhs.Prefix
	}
	if rhs.IsExact {
		out.Suffix = lhs.Suffix + rhs.Exact
	}
	out.Inner = make([]string, 0, len(lhs.Inner)+len(rhs.Inner)+1)
	out.Inner = append(out.Inner, lhs.Inner...)
	out.Inner = append(out.Inner, rhs.Inner...)
	if junction := lhs.Suffix + rhs.Prefix; junction != "" {
		out.Inner = append(out.Inner, junction)
	}
	return out
}

// Star drops every fact: the empty string matches.
func (Extractor) Star(*Info) *Info {
	return &Info{}
}

// Question drops every fact: the empty string matches.
func (Extractor) Question(*Info) *Info {
	return &Info{}
}

// Plus keeps the facts of one repetition, except exactness.
func (Extractor) Plus(x *Info) *Info {
	if x.IsExact && x.Exact == "" {
		return x
	}
	return &Info{
		Prefix: x.Prefix,
		Suffix: x.Suffix,
		Inner:  slices.Clone(x.Inner),
		MinLen: x.MinLen,
	}
}
