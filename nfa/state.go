package nfa

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// StateID identifies a state inside the allocator that owns it.
// Handles are dense: the states of an allocator are numbered 0..Len()-1.
type StateID uint32

// MaxStateID is the largest handle an allocator hands out.
const MaxStateID StateID = math.MaxUint32 - 1

// State is a node of the automaton. It holds its outgoing transitions:
// epsilon edges, which are crossed without consuming input, and byte edges.
//
// Epsilon is a separate edge kind rather than a reserved byte, so every
// byte value (NUL included) can label a transition.
type State struct {
	id          StateID
	epsilon     StateSet
	transitions map[byte]StateSet
}

// ID returns the state's handle
func (s *State) ID() StateID {
	return s.id
}

// AddTransition adds target to the destinations reached from s on symbol.
// Adding the same edge twice has no additional effect.
func (s *State) AddTransition(symbol byte, target StateID) {
	if s.transitions == nil {
		s.transitions = make(map[byte]StateSet, 1)
	}
	set := s.transitions[symbol]
	set.Add(target)
	s.transitions[symbol] = set
}

// AddEpsilon adds an epsilon edge from s to target.
func (s *State) AddEpsilon(target StateID) {
	s.epsilon.Add(target)
}

// TransitionStates returns a copy of the destinations reached on symbol.
// The set is empty when no edge is labeled with symbol.
func (s *State) TransitionStates(symbol byte) StateSet {
	return s.transitions[symbol].Clone()
}

// EpsilonStates returns a copy of the epsilon destinations of s.
func (s *State) EpsilonStates() StateSet {
	return s.epsilon.Clone()
}

// Symbols returns the bytes that label at least one outgoing edge, sorted.
func (s *State) Symbols() []byte {
	symbols := make([]byte, 0, len(s.transitions))
	for c, set := range s.transitions {
		if !set.IsEmpty() {
			symbols = append(symbols, c)
		}
	}
	slices.Sort(symbols)
	return symbols
}

// shift renumbers the state and all of its edge targets by offset.
func (s *State) shift(offset StateID) {
	s.id += offset
	s.epsilon = s.epsilon.Shift(offset)
	for c, set := range s.transitions {
		s.transitions[c] = set.Shift(offset)
	}
}

// String returns a human-readable representation of the state
func (s *State) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "State(%d", s.id)
	if !s.epsilon.IsEmpty() {
		fmt.Fprintf(&sb, ", eps -> %s", s.epsilon)
	}
	for _, c := range s.Symbols() {
		fmt.Fprintf(&sb, ", %q -> %s", c, s.transitions[c])
	}
	sb.WriteByte(')')
	return sb.String()
}
