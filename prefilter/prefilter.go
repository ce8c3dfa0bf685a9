// Package prefilter rejects candidates that cannot match a pattern before
// the automaton runs.
//
// The checks are derived from literal.Info and are cheap compared to the
// NFA simulation:
//   - length below the pattern's minimum match length
//   - missing required prefix or suffix
//   - none of the required inner literals present (Aho-Corasick scan)
//
// A prefilter is sound: Reject returning true proves the candidate is not
// accepted. Reject returning false proves nothing and the candidate must be
// verified by the automaton, unless IsComplete reports that the pattern is
// a single exact string, in which case the prefilter decides on its own.
//
// Example usage:
//
//	info, _ := literal.Extract("(foo)+bar")
//	pf := prefilter.New(info, prefilter.DefaultConfig())
//	if pf != nil && pf.Reject([]byte("foobaz")) {
//	    // no match, skip the automaton
//	}
package prefilter

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/nfamatch/literal"
)

// Prefilter is used to quickly reject candidates before running the
// full automaton.
type Prefilter interface {
	// Reject reports whether candidate certainly does not match.
	Reject(candidate []byte) bool

	// IsComplete returns true if a candidate that is not rejected is
	// certainly accepted, so no verification is needed.
	IsComplete() bool

	// String describes the checks performed, for diagnostics.
	String() string
}

// Config controls which checks a prefilter may use.
type Config struct {
	// MaxInnerLiterals caps the number of required inner literals fed to
	// the Aho-Corasick automaton. Zero disables the inner scan.
	// Default: 16
	MaxInnerLiterals int

	// MinInnerLen is the minimum length of an inner literal worth
	// scanning for. Shorter literals have too many false positives.
	// Default: 2
	MinInnerLen int
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxInnerLiterals: 16,
		MinInnerLen:      2,
	}
}

// New builds a prefilter from the literal facts of a pattern.
// It returns nil when the facts allow no useful check.
func New(info *literal.Info, config Config) Prefilter {
	if info == nil {
		return nil
	}
	if info.IsExact {
		return &exactPrefilter{exact: []byte(info.Exact)}
	}

	pf := &literalPrefilter{
		minLen: info.MinLen,
		prefix: []byte(info.Prefix),
		suffix: []byte(info.Suffix),
	}
	for _, lit := range info.Required() {
		if len(pf.inner) >= config.MaxInnerLiterals {
			break
		}
		if len(lit) >= config.MinInnerLen {
			pf.inner = append(pf.inner, lit)
		}
	}
	if len(pf.inner) > 0 {
		builder := ahocorasick.NewBuilder()
		for _, lit := range pf.inner {
			builder.AddPattern([]byte(lit))
		}
		auto, err := builder.Build()
		if err != nil {
			// The length and affix checks still apply.
			pf.inner = nil
		} else {
			pf.ac = auto
		}
	}

	if pf.minLen == 0 && len(pf.prefix) == 0 && len(pf.suffix) == 0 && pf.ac == nil {
		return nil
	}
	return pf
}

// exactPrefilter decides patterns that match a single string.
type exactPrefilter struct {
	exact []byte
}

func (p *exactPrefilter) Reject(candidate []byte) bool {
	return !bytes.Equal(candidate, p.exact)
}

func (p *exactPrefilter) IsComplete() bool {
	return true
}

func (p *exactPrefilter) String() string {
	return fmt.Sprintf("exact(%q)", p.exact)
}

// literalPrefilter checks the necessary literal conditions of a pattern.
type literalPrefilter struct {
	minLen int
	prefix []byte
	suffix []byte

	// inner holds the literals compiled into ac, at least one of which
	// every match contains.
	inner []string
	ac    *ahocorasick.Automaton
}

func (p *literalPrefilter) Reject(candidate []byte) bool {
	if len(candidate) < p.minLen {
		return true
	}
	if !bytes.HasPrefix(candidate, p.prefix) || !bytes.HasSuffix(candidate, p.suffix) {
		return true
	}
	// Every inner literal is required; finding none of them is enough to
	// rule the candidate out.
	if p.ac != nil && !p.ac.IsMatch(candidate) {
		return true
	}
	return false
}

func (p *literalPrefilter) IsComplete() bool {
	return false
}

func (p *literalPrefilter) String() string {
	var parts []string
	if p.minLen > 0 {
		parts = append(parts, fmt.Sprintf("minlen(%d)", p.minLen))
	}
	if len(p.prefix) > 0 {
		parts = append(parts, fmt.Sprintf("prefix(%q)", p.prefix))
	}
	if len(p.suffix) > 0 {
		parts = append(parts, fmt.Sprintf("suffix(%q)", p.suffix))
	}
	if len(p.inner) > 0 {
		parts = append(parts, fmt.Sprintf("inner(%q)", p.inner))
	}
	return strings.Join(parts, " ")
}
