package bitvector

import "sort"

// Sparse is a sparse bitvector over a (possibly very large) universe,
// represented directly as its sorted set-bit positions. Select1 is O(1):
// a set-bit's rank is simply its index into the sorted slice. Rank1 is
// O(log n) via binary search; a full Elias-Fano-style O(1) rank would
// need a second, denser index over the high bits, omitted here since a
// Go core answering bounded record/sample counts does not need it to
// stay responsive and exact physical bitvector widths are an
// implementation choice, not a semantic one.
type Sparse struct {
	positions []uint64
	universe  uint64
}

// NewSparse builds a Sparse bitvector over [0, universe) with 1-bits at
// the given ascending, deduplicated positions.
func NewSparse(positions []uint64, universe uint64) *Sparse {
	return &Sparse{positions: positions, universe: universe}
}

// Len returns the number of 1-bits.
func (s *Sparse) Len() int { return len(s.positions) }

// Universe returns the size of the bit range this vector indexes.
func (s *Sparse) Universe() uint64 { return s.universe }

// Select1 returns the position of the i-th 1-bit, 1-based (select_1(1)
// is the first). Panics if i is out of range: callers never select a
// rank that does not exist.
func (s *Sparse) Select1(i int) uint64 {
	return s.positions[i-1]
}

// Rank1 returns the number of 1-bits in [0, pos), i.e. how many stored
// positions are strictly less than pos.
func (s *Sparse) Rank1(pos uint64) int {
	return sort.Search(len(s.positions), func(i int) bool { return s.positions[i] >= pos })
}

// Contains reports whether pos is a 1-bit.
func (s *Sparse) Contains(pos uint64) bool {
	i := sort.Search(len(s.positions), func(i int) bool { return s.positions[i] >= pos })
	return i < len(s.positions) && s.positions[i] == pos
}

// Iterator returns a pull-based cursor over the 1-bits starting at the
// i-th one (1-based): a lazy walk over set bits exposing
// Value/Rank/Advance/End rather than a generator.
type Iterator struct {
	s    *Sparse
	rank int // 0-based index into s.positions
}

// NewIterator returns an Iterator positioned at the i-th 1-bit (1-based).
func (s *Sparse) NewIterator(i int) *Iterator {
	return &Iterator{s: s, rank: i - 1}
}

// Value returns the position the cursor currently points at.
func (it *Iterator) Value() uint64 { return it.s.positions[it.rank] }

// Rank returns the 0-based rank of the current position.
func (it *Iterator) Rank() int { return it.rank }

// End reports whether the cursor has run past the last 1-bit.
func (it *Iterator) End() bool { return it.rank >= len(it.s.positions) }

// Advance moves the cursor to the next 1-bit.
func (it *Iterator) Advance() { it.rank++ }
