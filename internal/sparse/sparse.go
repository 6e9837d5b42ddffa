// Package sparse provides a sparse set over a dense integer universe.
//
// A sparse set supports O(1) insertion and membership testing without
// initializing its backing storage per use, and O(size) iteration and reset.
// The automaton builder uses it to track discovered nodes during the
// breadth-first link-construction passes: node indices are dense by
// construction (0..len(arena)-1), which is exactly the universe shape this
// structure wants.
package sparse

// Set is a set of int32 values in the range [0, capacity).
//
// It keeps two arrays: a sparse array mapping a value to its slot in the dense
// array, and a dense array holding the members in insertion order. A value v
// is a member iff sparse[v] points at a dense slot that points back at v.
// Neither array needs zeroing when the set is cleared, so Clear is O(1) in
// allocations and O(0) in memory traffic beyond resetting the length.
type Set struct {
	sparse []int32
	dense  []int32
}

// NewSet creates a set able to hold values in [0, capacity).
func NewSet(capacity int) *Set {
	return &Set{
		sparse: make([]int32, capacity),
		dense:  make([]int32, 0, capacity),
	}
}

// Add inserts v and reports whether it was newly added.
// Panics if v is outside [0, capacity).
func (s *Set) Add(v int32) bool {
	if s.Contains(v) {
		return false
	}
	s.sparse[v] = int32(len(s.dense))
	s.dense = append(s.dense, v)
	return true
}

// Contains reports whether v is a member.
// Values outside [0, capacity) are never members.
func (s *Set) Contains(v int32) bool {
	if v < 0 || int(v) >= len(s.sparse) {
		return false
	}
	slot := s.sparse[v]
	return int(slot) < len(s.dense) && s.dense[slot] == v
}

// Len returns the number of members.
func (s *Set) Len() int {
	return len(s.dense)
}

// Clear removes all members without releasing storage.
func (s *Set) Clear() {
	s.dense = s.dense[:0]
}

// Values returns the members in insertion order.
// The returned slice aliases internal storage and is invalidated by Add/Clear.
func (s *Set) Values() []int32 {
	return s.dense
}
