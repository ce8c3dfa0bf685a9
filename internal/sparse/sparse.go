// Package sparse provides a sparse set of small integers with O(1) insert,
// membership test and clear.
//
// Besides membership, the set remembers insertion order in its dense array,
// which makes it a ready-made worklist: iterating with At while inserting
// visits every element exactly once, including those added during the walk.
// The NFA epsilon-closure computation relies on this.
package sparse

// SparseSet is a set of uint32 values smaller than its capacity.
// It maintains a sparse array (value -> index in dense) for membership
// testing and a dense array for ordered iteration.
type SparseSet struct {
	sparse []uint32
	dense  []uint32
}

// NewSparseSet creates a new sparse set for values in [0, capacity).
func NewSparseSet(capacity int) *SparseSet {
	return &SparseSet{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Insert adds value to the set and reports whether it was newly added.
// Panics if value >= Capacity().
func (s *SparseSet) Insert(value uint32) bool {
	if s.Contains(value) {
		return false
	}
	s.sparse[value] = uint32(len(s.dense))
	s.dense = append(s.dense, value)
	return true
}

// Contains returns true if the value is in the set
func (s *SparseSet) Contains(value uint32) bool {
	if uint64(value) >= uint64(len(s.sparse)) {
		return false
	}
	idx := s.sparse[value]
	return uint64(idx) < uint64(len(s.dense)) && s.dense[idx] == value
}

// At returns the i-th inserted value.
func (s *SparseSet) At(i int) uint32 {
	return s.dense[i]
}

// Len returns the number of elements in the set
func (s *SparseSet) Len() int {
	return len(s.dense)
}

// Capacity returns the exclusive upper bound of storable values.
func (s *SparseSet) Capacity() int {
	return len(s.sparse)
}

// IsEmpty returns true if the set contains no elements
func (s *SparseSet) IsEmpty() bool {
	return len(s.dense) == 0
}

// Clear removes all elements in O(1) time
func (s *SparseSet) Clear() {
	s.dense = s.dense[:0]
}

// Values returns the elements in insertion order.
// The returned slice is valid until the next mutation.
func (s *SparseSet) Values() []uint32 {
	return s.dense
}
