package gbwt

// SearchState is (node, range): all BWT rows of a pattern's matches
// currently living in one record. The empty state has an empty range.
type SearchState struct {
	Node  Node
	Range Range
}

// Size returns the number of rows in the state's range.
func (s SearchState) Size() uint64 { return s.Range.Len() }

// Empty reports whether the state matches no rows.
func (s SearchState) Empty() bool { return s.Range.Empty() }

// EmptySearchState is the canonical "no match" result: a zero-value
// Node paired with an empty range, never a range that merely happens
// to contain zero rows.
func EmptySearchState() SearchState { return SearchState{Range: EmptyRange()} }

// Extend advances a search state by the symbols in pattern, stopping
// (and returning the empty state) as soon as a symbol is missing from
// the alphabet or the range becomes empty.
func Extend(idx Index, state SearchState, pattern []Node) SearchState {
	for _, x := range pattern {
		if state.Range.Empty() {
			break
		}
		if !idx.Contains(x) {
			return EmptySearchState()
		}
		state.Range = idx.LF(state, x)
		state.Node = x
	}
	return state
}

// Find returns the search state matching pattern from its first symbol,
// or the empty state if pattern is empty or contains an unknown symbol.
func Find(idx Index, pattern []Node) SearchState {
	if len(pattern) == 0 {
		return EmptySearchState()
	}
	first := pattern[0]
	if !idx.Contains(first) {
		return EmptySearchState()
	}
	count := idx.Count(first)
	if count == 0 {
		return EmptySearchState()
	}
	state := SearchState{Node: first, Range: Range{SP: 0, EP: count - 1}}
	return Extend(idx, state, pattern[1:])
}

// Prefix is like Find but seeded at ENDMARKER with the full row range,
// matching every path prefix. Prefix(nil) is
// (ENDMARKER, [0, sequences-1]).
func Prefix(idx Index, pattern []Node) SearchState {
	seqs := idx.Sequences()
	var r Range
	if seqs == 0 {
		r = EmptyRange()
	} else {
		r = Range{SP: 0, EP: seqs - 1}
	}
	state := SearchState{Node: ENDMARKER, Range: r}
	return Extend(idx, state, pattern)
}

// Locate resolves a single BWT position to the sequence id whose path
// passes through it, walking LF until a DA sample resolves it. Returns
// InvalidSequence() if position.Node is not in the alphabet.
func Locate(idx Index, position Edge) uint64 {
	if !idx.Contains(position.Node) {
		return InvalidSequence()
	}
	for {
		if result := idx.TryLocate(position); result != InvalidSequence() {
			return result
		}
		position = idx.LFPosition(position)
	}
}

// LocateRange resolves every BWT row in a search state to its sequence
// id, returning one id per matching row.
func LocateRange(idx Index, state SearchState) []uint64 {
	if state.Empty() {
		return nil
	}
	result := make([]uint64, 0, state.Size())
	for i := state.Range.SP; i <= state.Range.EP; i++ {
		result = append(result, Locate(idx, Edge{Node: state.Node, Offset: i}))
	}
	return result
}

// Extract walks sequence `seq` from its start to ENDMARKER, returning the
// oriented nodes forming the path. Returns nil if seq is out of range.
func Extract(idx Index, seq uint64) []Node {
	var result []Node
	if seq >= idx.Sequences() {
		return result
	}
	position := idx.Start(seq)
	if !position.IsValid() {
		return result
	}
	for position.Node != ENDMARKER {
		result = append(result, position.Node)
		position = idx.LFPosition(position)
	}
	return result
}
