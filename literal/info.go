// Package literal derives literal facts that hold for every string a
// pattern matches: the exact string when there is only one, a required
// prefix and suffix, required inner substrings, and a minimum length.
//
// The facts are necessary conditions only. They let a prefilter reject most
// non-matching candidates before the automaton runs, and they never reject
// a candidate the automaton would accept.
package literal

import (
	"slices"
	"strings"
)

// Info describes what every match of a (sub)pattern has in common.
//
// Example:
//
//	(foo(ba)?)*(bar)+   → Prefix "", Suffix "bar", Inner {"bar"}, MinLen 3
//	ab(c)+d             → Prefix "abc", Suffix "cd", MinLen 4
//	abc                 → Exact "abc"
type Info struct {
	// Exact is the only string matched, valid when IsExact is true.
	Exact   string
	IsExact bool

	// Prefix is a string every match starts with.
	Prefix string

	// Suffix is a string every match ends with.
	Suffix string

	// Inner holds substrings every match contains.
	Inner []string

	// MinLen is the length of the shortest match.
	MinLen int
}

func exact(s string) *Info {
	return &Info{
		Exact:   s,
		IsExact: true,
		Prefix:  s,
		Suffix:  s,
		MinLen:  len(s),
	}
}

// Required returns the inner literals worth scanning for, longest first.
//
// Empty strings are dropped, and so is any literal that occurs inside the
// prefix, the suffix or another required literal, since its presence is
// implied by a check that is already made.
func (i *Info) Required() []string {
	if i.IsExact {
		return nil
	}
	lits := make([]string, 0, len(i.Inner))
	for _, s := range i.Inner {
		if s != "" {
			lits = append(lits, s)
		}
	}
	slices.SortFunc(lits, func(a, b string) int {
		if len(a) != len(b) {
			return len(b) - len(a)
		}
		return strings.Compare(a, b)
	})
	lits = slices.Compact(lits)

	out := lits[:0]
	for _, s := range lits {
		if strings.Contains(i.Prefix, s) || strings.Contains(i.Suffix, s) {
			continue
		}
		implied := false
		for _, kept := range out {
			if strings.Contains(kept, s) {
				implied = true
				break
			}
		}
		if !implied {
			out = append(out, s)
		}
	}
	return out
}

// IsEmpty reports whether the info carries no usable constraint.
func (i *Info) IsEmpty() bool {
	return !i.IsExact && i.MinLen == 0 && i.Prefix == "" && i.Suffix == "" && len(i.Required()) == 0
}
