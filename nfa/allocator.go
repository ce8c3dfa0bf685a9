package nfa

// StateAllocator owns every State created for one automaton.
//
// States live in an arena indexed by StateID. Merging appends the donor's
// states behind the receiver's, so handles already issued by the receiver
// stay valid; the donor's handles move up by the returned offset.
type StateAllocator struct {
	states []*State
}

// NewState returns the handle of a fresh state with no transitions.
func (a *StateAllocator) NewState() StateID {
	if uint64(len(a.states)) > uint64(MaxStateID) {
		panic(&BuildError{Op: "new state", Err: ErrTooManyStates})
	}
	id := StateID(len(a.states))
	a.states = append(a.states, &State{id: id})
	return id
}

// Merge transfers ownership of all of other's states to a and leaves other
// empty. States are moved, not copied. The returned offset is what was
// added to every donor handle; callers must shift any donor StateSet they
// still hold by the same amount.
func (a *StateAllocator) Merge(other *StateAllocator) StateID {
	if a == other {
		panic(&BuildError{Op: "merge", Err: ErrSelfConcat})
	}
	if uint64(len(a.states))+uint64(len(other.states)) > uint64(MaxStateID)+1 {
		panic(&BuildError{Op: "merge", Err: ErrTooManyStates})
	}
	offset := StateID(len(a.states))
	for _, s := range other.states {
		if offset != 0 {
			s.shift(offset)
		}
		a.states = append(a.states, s)
	}
	other.states = nil
	return offset
}

// State returns the state with the given handle, or nil if a does not own it.
func (a *StateAllocator) State(id StateID) *State {
	if int(id) >= len(a.states) {
		return nil
	}
	return a.states[id]
}

// Len returns the number of states owned by a.
func (a *StateAllocator) Len() int {
	return len(a.states)
}

// Release drops every owned state. Calling it again is a no-op.
func (a *StateAllocator) Release() {
	clear(a.states)
	a.states = nil
}
