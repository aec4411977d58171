package searcher

import "sync/atomic"

// VisitedSet tracks node ids already admitted to the frontier, using open
// addressing with linear probing over a power-of-two table. The empty slot
// sentinel is InvalidID, so InvalidID itself is not storable.
//
// Inserts claim slots with compare-and-swap, so racing inserts of the same or
// colliding ids from concurrent goroutines stay idempotent: exactly one
// caller wins a given id.
type VisitedSet struct {
	slots []uint32
	mask  uint32
	bits  int
}

// NewVisitedSet creates a visited set with 2^bits slots.
func NewVisitedSet(bits int) *VisitedSet {
	v := &VisitedSet{
		slots: make([]uint32, 1<<bits),
		mask:  uint32(1<<bits) - 1,
		bits:  bits,
	}
	v.Reset()

	return v
}

// Bits returns the configured table size exponent.
func (v *VisitedSet) Bits() int { return v.bits }

// Reset fills the table with the empty sentinel. Must run before a traversal
// reuses the set.
func (v *VisitedSet) Reset() {
	for i := range v.slots {
		v.slots[i] = InvalidID
	}
}

// mix is a 32-bit finalizer spreading clustered node ids across the table.
func mix(x uint32) uint32 {
	x ^= x >> 16
	x *= 0x7feb352d
	x ^= x >> 15
	x *= 0x846ca68b
	x ^= x >> 16

	return x
}

// InsertIfAbsent inserts id and reports whether it was newly inserted.
// Returns false if the id was already present, or if the table is full.
// A full table treats the node as already seen, so filled-up searches stay
// bounded instead of failing.
func (v *VisitedSet) InsertIfAbsent(id uint32) bool {
	h := mix(id) & v.mask

	for i := uint32(0); i <= v.mask; i++ {
		slot := (h + i) & v.mask

		for {
			cur := atomic.LoadUint32(&v.slots[slot])
			if cur == id {
				return false
			}

			if cur != InvalidID {
				break // occupied by another id, keep probing
			}

			if atomic.CompareAndSwapUint32(&v.slots[slot], InvalidID, id) {
				return true
			}
			// Lost the race for this slot; re-read to see who won.
		}
	}

	return false
}

// Contains reports whether id has been inserted.
func (v *VisitedSet) Contains(id uint32) bool {
	h := mix(id) & v.mask

	for i := uint32(0); i <= v.mask; i++ {
		slot := (h + i) & v.mask

		cur := atomic.LoadUint32(&v.slots[slot])
		if cur == id {
			return true
		}

		if cur == InvalidID {
			return false
		}
	}

	return false
}
