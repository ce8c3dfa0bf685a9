package nfa

import (
	"strings"
	"sync"
)

// NFA is an automaton composed from atomic automata by structural
// combinators.
//
// An NFA must be created by Empty or FromCharacter; the zero value is not
// usable. Combinators mutate the receiver in place and must not run
// concurrently with each other or with Accept. Once construction is done,
// Accept may be called from multiple goroutines.
type NFA struct {
	alloc  StateAllocator
	start  StateSet
	accept StateSet

	cache *Cache

	// scratch holds *sparse.SparseSet worklists for epsilon closure.
	scratch sync.Pool

	consumed bool
}

func newNFA() *NFA {
	return &NFA{cache: NewCache(DefaultCacheCapacity)}
}

// Empty returns the automaton matching only the empty string: a single
// state that is both the start and the accept state.
func Empty() *NFA {
	n := newNFA()
	s := n.alloc.NewState()
	n.start = NewStateSet(s)
	n.accept = NewStateSet(s)
	return n
}

// FromCharacter returns the automaton matching exactly the one-byte string c.
func FromCharacter(c byte) *NFA {
	n := newNFA()
	s1 := n.alloc.NewState()
	s2 := n.alloc.NewState()
	n.alloc.State(s1).AddTransition(c, s2)
	n.start = NewStateSet(s1)
	n.accept = NewStateSet(s2)
	return n
}

// Concat appends rhs to n: n then matches every string of n's language
// followed by a string of rhs's language.
//
// rhs is consumed. Its states move into n's allocator and every accept
// state of n gets an epsilon edge to every start state of rhs. The accept
// states of the result are those of rhs. After the call rhs is empty and
// any further use of it panics.
func (n *NFA) Concat(rhs *NFA) {
	n.check("concat")
	rhs.check("concat")
	if n == rhs {
		panic(&BuildError{Op: "concat", Err: ErrSelfConcat})
	}
	n.cache.Clear()

	offset := n.alloc.Merge(&rhs.alloc)
	rhsStart := rhs.start.Shift(offset)
	rhsAccept := rhs.accept.Shift(offset)

	n.link(n.accept, rhsStart)
	n.accept = rhsAccept

	rhs.start = StateSet{}
	rhs.accept = StateSet{}
	rhs.cache = nil
	rhs.consumed = true
}

// Question makes n optional. A new state with epsilon edges to every
// current start state becomes the sole start state and is also accepting.
func (n *NFA) Question() {
	n.check("question")
	n.cache.Clear()

	q := n.alloc.NewState()
	start := NewStateSet(q)
	n.link(start, n.start)
	n.start = start

	accept := n.accept.Clone()
	accept.Add(q)
	n.accept = accept
}

// Plus makes n repeatable one or more times by adding epsilon back edges
// from every accept state to every start state.
func (n *NFA) Plus() {
	n.check("plus")
	n.cache.Clear()
	n.link(n.accept, n.start)
}

// Star makes n repeatable zero or more times. It is Question followed by
// Plus, in that order.
func (n *NFA) Star() {
	n.check("star")
	n.cache.Clear()
	n.Question()
	n.Plus()
}

// link adds an epsilon edge from every state in from to every state in to.
func (n *NFA) link(from, to StateSet) {
	from.Each(func(l StateID) {
		s := n.alloc.State(l)
		to.Each(func(r StateID) {
			s.AddEpsilon(r)
		})
	})
}

// check panics if n cannot be used.
func (n *NFA) check(op string) {
	switch {
	case n.consumed:
		panic(&BuildError{Op: op, Err: ErrConsumed})
	case n.alloc.Len() == 0 || n.cache == nil:
		panic(&BuildError{Op: op, Err: ErrUninitialized})
	}
}

// SetCacheCapacity replaces the transition cache with an empty one holding
// at most capacity entries. Zero disables memoization.
func (n *NFA) SetCacheCapacity(capacity int) {
	n.check("set cache capacity")
	n.cache = NewCache(capacity)
}

// Cache returns the transition cache, for statistics.
func (n *NFA) Cache() *Cache {
	return n.cache
}

// NumStates returns the number of states owned by n.
func (n *NFA) NumStates() int {
	return n.alloc.Len()
}

// State returns the state with the given handle, or nil if out of range.
// The state must not be modified.
func (n *NFA) State(id StateID) *State {
	return n.alloc.State(id)
}

// StartStates returns a copy of the start state set
func (n *NFA) StartStates() StateSet {
	return n.start.Clone()
}

// AcceptStates returns a copy of the accept state set
func (n *NFA) AcceptStates() StateSet {
	return n.accept.Clone()
}

// Release drops all states of n. The automaton is unusable afterwards.
func (n *NFA) Release() {
	n.alloc.Release()
	n.start = StateSet{}
	n.accept = StateSet{}
	n.cache = nil
}

// String returns a human-readable dump of the automaton
func (n *NFA) String() string {
	var sb strings.Builder
	sb.WriteString("start: ")
	sb.WriteString(n.start.String())
	sb.WriteString("\naccept: ")
	sb.WriteString(n.accept.String())
	sb.WriteByte('\n')
	for _, s := range n.alloc.states {
		sb.WriteString(s.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
