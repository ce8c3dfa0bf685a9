package nfa

import (
	"encoding/binary"
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// StateSet is an unordered, deduplicated set of state handles.
//
// The zero value is an empty set ready to use. A StateSet holds a reference
// to its backing bitset, so copies share storage: treat a set received from
// another owner as read-only and Clone it before mutating.
type StateSet struct {
	bits *bitset.BitSet
}

// NewStateSet returns a set containing the given states.
func NewStateSet(ids ...StateID) StateSet {
	var s StateSet
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add inserts id into the set. Adding a member again has no effect.
func (s *StateSet) Add(id StateID) {
	if s.bits == nil {
		s.bits = bitset.New(uint(id) + 1)
	}
	s.bits.Set(uint(id))
}

// Merge adds every member of other to s (set union).
func (s *StateSet) Merge(other StateSet) {
	if other.IsEmpty() {
		return
	}
	if s.bits == nil {
		s.bits = other.bits.Clone()
		return
	}
	s.bits.InPlaceUnion(other.bits)
}

// Contains reports whether id is a member of the set.
func (s StateSet) Contains(id StateID) bool {
	return s.bits != nil && s.bits.Test(uint(id))
}

// Len returns the number of members.
func (s StateSet) Len() int {
	if s.bits == nil {
		return 0
	}
	return int(s.bits.Count())
}

// IsEmpty reports whether the set has no members.
func (s StateSet) IsEmpty() bool {
	return s.bits == nil || s.bits.None()
}

// Each calls f for every member in ascending order.
func (s StateSet) Each(f func(StateID)) {
	if s.bits == nil {
		return
	}
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		f(StateID(i))
	}
}

// IDs returns the members in ascending order.
func (s StateSet) IDs() []StateID {
	ids := make([]StateID, 0, s.Len())
	s.Each(func(id StateID) {
		ids = append(ids, id)
	})
	return ids
}

// Clone returns an independent copy of the set.
func (s StateSet) Clone() StateSet {
	if s.bits == nil {
		return StateSet{}
	}
	return StateSet{bits: s.bits.Clone()}
}

// Shift returns a new set in which every member is moved up by offset.
// It is used to remap handles when one arena is appended to another.
func (s StateSet) Shift(offset StateID) StateSet {
	var out StateSet
	s.Each(func(id StateID) {
		out.Add(id + offset)
	})
	return out
}

// Intersects reports whether s and other have at least one common member.
func (s StateSet) Intersects(other StateSet) bool {
	small, large := s, other
	if small.Len() > large.Len() {
		small, large = large, small
	}
	if small.bits == nil {
		return false
	}
	for i, ok := small.bits.NextSet(0); ok; i, ok = small.bits.NextSet(i + 1) {
		if large.Contains(StateID(i)) {
			return true
		}
	}
	return false
}

// Compare orders sets by the lexicographic order of their ascending member
// sequences. It returns -1, 0 or +1. Two sets compare equal exactly when
// they contain the same states.
func (s StateSet) Compare(other StateSet) int {
	a, b := s.IDs(), other.IDs()
	for i := 0; i < len(a) && i < len(b); i++ {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// Equal reports whether s and other contain the same states.
func (s StateSet) Equal(other StateSet) bool {
	return s.Key() == other.Key()
}

// Key returns a canonical encoding of the set's members. Equal sets have
// equal keys regardless of the capacity of their backing storage, which
// makes the key usable as a map key.
func (s StateSet) Key() string {
	if s.bits == nil {
		return ""
	}
	words := s.bits.Bytes()
	n := len(words)
	for n > 0 && words[n-1] == 0 {
		n--
	}
	buf := make([]byte, 0, n*8)
	for _, w := range words[:n] {
		buf = binary.LittleEndian.AppendUint64(buf, w)
	}
	return string(buf)
}

// String returns the members formatted as {a, b, c}.
func (s StateSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	s.Each(func(id StateID) {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(strconv.FormatUint(uint64(id), 10))
	})
	sb.WriteByte('}')
	return sb.String()
}
