package gbwt

import "sort"

// AlphabetMap maps oriented node ids to a compact 0..sigma-1 record
// index, the alphabet-map external collaborator. ENDMARKER
// always maps to record 0.
type AlphabetMap struct {
	nodes   []Node // sorted ascending, nodes[0] == ENDMARKER
	records map[Node]uint64
}

// NewAlphabetMap builds a compact map over ENDMARKER plus the given
// distinct node ids.
func NewAlphabetMap(nodes []Node) *AlphabetMap {
	all := append([]Node{ENDMARKER}, nodes...)
	sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })
	deduped := all[:0]
	for i, n := range all {
		if i == 0 || n != deduped[len(deduped)-1] {
			deduped = append(deduped, n)
		}
	}
	m := &AlphabetMap{nodes: deduped, records: make(map[Node]uint64, len(deduped))}
	for i, n := range deduped {
		m.records[n] = uint64(i)
	}
	return m
}

// Record returns the record index for a node id, or (0, false) if the
// node is not part of the alphabet.
func (m *AlphabetMap) Record(n Node) (uint64, bool) {
	r, ok := m.records[n]
	return r, ok
}

// Sigma returns the alphabet size, including ENDMARKER.
func (m *AlphabetMap) Sigma() uint64 { return uint64(len(m.nodes)) }

// Node returns the node id for a record index.
func (m *AlphabetMap) Node(record uint64) Node { return m.nodes[record] }
