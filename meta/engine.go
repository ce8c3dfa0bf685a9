package meta

import (
	"sync/atomic"

	"github.com/coregx/nfamatch/literal"
	"github.com/coregx/nfamatch/nfa"
	"github.com/coregx/nfamatch/prefilter"
)

// Engine matches whole candidates against one compiled pattern.
//
// Thread safety: IsMatch may be called concurrently from multiple goroutines.
type Engine struct {
	pattern   string
	nfa       *nfa.NFA
	literals  *literal.Info
	prefilter prefilter.Prefilter
	config    Config
	stats     Stats
}

// Stats tracks execution statistics for performance analysis.
type Stats struct {
	// Matches counts IsMatch calls that returned true
	Matches uint64

	// PrefilterRejects counts candidates rejected without running the NFA
	PrefilterRejects uint64

	// ExactChecks counts candidates decided by an exact-string prefilter
	ExactChecks uint64

	// NFASearches counts NFA simulations
	NFASearches uint64

	// CacheHits counts memoized NFA transitions reused
	CacheHits uint64

	// CacheMisses counts NFA transitions computed
	CacheMisses uint64
}

// IsMatch reports whether the NFA accepts candidate in its entirety.
func (e *Engine) IsMatch(candidate []byte) bool {
	matched := e.isMatch(candidate)
	if matched {
		atomic.AddUint64(&e.stats.Matches, 1)
	}
	return matched
}

func (e *Engine) isMatch(candidate []byte) bool {
	if e.prefilter != nil {
		if e.prefilter.IsComplete() {
			atomic.AddUint64(&e.stats.ExactChecks, 1)
			return !e.prefilter.Reject(candidate)
		}
		if e.prefilter.Reject(candidate) {
			atomic.AddUint64(&e.stats.PrefilterRejects, 1)
			return false
		}
	}
	atomic.AddUint64(&e.stats.NFASearches, 1)
	return e.nfa.Accept(candidate)
}

// Pattern returns the source pattern
func (e *Engine) Pattern() string {
	return e.pattern
}

// NFA returns the compiled automaton. It must not be mutated.
func (e *Engine) NFA() *nfa.NFA {
	return e.nfa
}

// Literals returns the literal facts extracted from the pattern
func (e *Engine) Literals() *literal.Info {
	return e.literals
}

// Prefilter returns the prefilter, or nil if none is used
func (e *Engine) Prefilter() prefilter.Prefilter {
	return e.prefilter
}

// Config returns the configuration the engine was compiled with
func (e *Engine) Config() Config {
	return e.config
}

// Stats returns a snapshot of execution statistics.
func (e *Engine) Stats() Stats {
	hits, misses, _ := e.nfa.Cache().Stats()
	return Stats{
		Matches:          atomic.LoadUint64(&e.stats.Matches),
		PrefilterRejects: atomic.LoadUint64(&e.stats.PrefilterRejects),
		ExactChecks:      atomic.LoadUint64(&e.stats.ExactChecks),
		NFASearches:      atomic.LoadUint64(&e.stats.NFASearches),
		CacheHits:        hits,
		CacheMisses:      misses,
	}
}

// ResetStats resets execution statistics
func (e *Engine) ResetStats() {
	atomic.StoreUint64(&e.stats.Matches, 0)
	atomic.StoreUint64(&e.stats.PrefilterRejects, 0)
	atomic.StoreUint64(&e.stats.ExactChecks, 0)
	atomic.StoreUint64(&e.stats.NFASearches, 0)
	e.nfa.Cache().ResetStats()
}
