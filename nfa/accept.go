package nfa

import (
	"github.com/coregx/nfamatch/internal/sparse"
)

// Accept reports whether n recognizes word in its entirety.
//
// The simulation keeps the set of active states. For each input byte it
// expands the set by epsilon closure, follows the byte edges, and expands
// again, so epsilon edges leaving a freshly entered state are crossed
// before the next byte. Each (active set, byte) result is memoized, which
// makes repeated prefixes across calls free.
//
// Accept never fails. Bytes that label no edge simply leave no active
// states. Worst case is O(len(word) × NumStates) work without cache hits.
func (n *NFA) Accept(word []byte) bool {
	return accept(n, word)
}

// AcceptString is Accept for a string
func (n *NFA) AcceptString(word string) bool {
	return accept(n, word)
}

func accept[S ~string | ~[]byte](n *NFA, word S) bool {
	n.check("accept")

	active := n.start
	if len(word) == 0 {
		return n.closure(active).Intersects(n.accept)
	}
	for i := 0; i < len(word); i++ {
		active = n.transition(active, word[i])
		if active.IsEmpty() {
			// No state is reachable from the empty set.
			return false
		}
	}
	return active.Intersects(n.accept)
}

// transition returns the epsilon-expanded set reached from states on c.
// The result is memoized under the unexpanded states.
func (n *NFA) transition(states StateSet, c byte) StateSet {
	var key string
	if n.cache.Enabled() {
		key = states.Key()
	}
	if next, ok := n.cache.Get(key, c); ok {
		return next
	}
	next := n.closure(states)
	next = n.step(next, c)
	next = n.closure(next)
	n.cache.Insert(key, c, next)
	return next
}

// step returns the states reached from states by one edge labeled c.
func (n *NFA) step(states StateSet, c byte) StateSet {
	var next StateSet
	states.Each(func(id StateID) {
		next.Merge(n.alloc.states[id].transitions[c])
	})
	return next
}

// closure returns states together with every state reachable from them
// through epsilon edges. The input is never modified; it is returned
// unchanged when already closed.
func (n *NFA) closure(states StateSet) StateSet {
	if states.IsEmpty() {
		return states
	}
	work := n.getScratch()
	defer n.scratch.Put(work)

	states.Each(func(id StateID) {
		work.Insert(uint32(id))
	})
	initial := work.Len()
	for i := 0; i < work.Len(); i++ {
		n.alloc.states[work.At(i)].epsilon.Each(func(t StateID) {
			work.Insert(uint32(t))
		})
	}
	if work.Len() == initial {
		return states
	}

	closed := states.Clone()
	for _, id := range work.Values()[initial:] {
		closed.Add(StateID(id))
	}
	return closed
}

// getScratch returns an empty worklist large enough for every state of n.
func (n *NFA) getScratch() *sparse.SparseSet {
	need := n.alloc.Len()
	if v, ok := n.scratch.Get().(*sparse.SparseSet); ok && v.Capacity() >= need {
		v.Clear()
		return v
	}
	return sparse.NewSparseSet(need)
}
