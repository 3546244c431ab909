package gbwt

// DecompressedRecord fully materializes a record's body as an array of
// (successor, row-in-successor) edges, for fast sequential traversal
// (extract() and full path walks). It does not support LF(i, to) /
// LF(range, to) / bdLF.
type DecompressedRecord struct {
	outgoing []Edge
	after    []Edge // outgoing[r] advanced by the count of r in this body
	body     []Edge
}

// NewDecompressedRecordFromDynamic materializes d's body.
func NewDecompressedRecordFromDynamic(d *DynamicRecord) DecompressedRecord {
	out := DecompressedRecord{
		outgoing: append([]Edge(nil), d.outgoing...),
		body:     make([]Edge, 0, d.bodySize),
	}
	counts := make([]uint64, len(d.outgoing))
	for _, r := range d.body {
		base := d.outgoing[r.OutRank].Offset
		for j := uint64(0); j < r.Length; j++ {
			out.body = append(out.body, Edge{Node: d.outgoing[r.OutRank].Node, Offset: base + counts[r.OutRank]})
			counts[r.OutRank]++
		}
	}
	out.after = make([]Edge, len(d.outgoing))
	for i, e := range d.outgoing {
		out.after[i] = Edge{Node: e.Node, Offset: e.Offset + counts[i]}
	}
	return out
}

// NewDecompressedRecordFromCompressed materializes c's body.
func NewDecompressedRecordFromCompressed(c *CompressedRecord) DecompressedRecord {
	out := DecompressedRecord{outgoing: append([]Edge(nil), c.outgoing...)}
	counts := make([]uint64, len(c.outgoing))
	c.forEachRun(func(r Run) bool {
		base := c.outgoing[r.OutRank].Offset
		for j := uint64(0); j < r.Length; j++ {
			out.body = append(out.body, Edge{Node: c.outgoing[r.OutRank].Node, Offset: base + counts[r.OutRank]})
			counts[r.OutRank]++
		}
		return true
	})
	out.after = make([]Edge, len(c.outgoing))
	for i, e := range c.outgoing {
		out.after[i] = Edge{Node: e.Node, Offset: e.Offset + counts[i]}
	}
	return out
}

// Size returns the body length.
func (d *DecompressedRecord) Size() uint64 { return uint64(len(d.body)) }

// Empty reports whether the body is empty.
func (d *DecompressedRecord) Empty() bool { return len(d.body) == 0 }

// Outdegree returns the number of distinct successors.
func (d *DecompressedRecord) Outdegree() int { return len(d.outgoing) }

// At returns BWT[i] within the record.
func (d *DecompressedRecord) At(i uint64) Node { return d.body[i].Node }

// LF returns (node, LF(i, node)), or InvalidEdge() if i is out of range.
func (d *DecompressedRecord) LF(i uint64) Edge {
	if i >= uint64(len(d.body)) {
		return InvalidEdge()
	}
	return d.body[i]
}

// RunLF is LF(i) that additionally reports the last offset of the run
// containing i (runs of identical entries, materialized or not).
func (d *DecompressedRecord) RunLF(i uint64, runEnd *uint64) Edge {
	if i >= uint64(len(d.body)) {
		return InvalidEdge()
	}
	node := d.body[i].Node
	j := i
	for j+1 < uint64(len(d.body)) && d.body[j+1].Node == node {
		j++
	}
	*runEnd = j
	return d.body[i]
}

// HasEdge reports whether there is an outgoing edge to `to`.
func (d *DecompressedRecord) HasEdge(to Node) bool { return edgeTo(to, d.outgoing) >= 0 }

// EdgeTo maps a successor node to its outrank.
func (d *DecompressedRecord) EdgeTo(to Node) int { return edgeTo(to, d.outgoing) }

// Successor returns the successor node of the given outrank.
func (d *DecompressedRecord) Successor(outrank int) Node { return d.outgoing[outrank].Node }

// Offset returns the cumulative offset of the given outrank.
func (d *DecompressedRecord) Offset(outrank int) uint64 { return d.outgoing[outrank].Offset }

// OffsetAfter returns the offset one past the last row this record
// contributes to the given outrank's successor -- useful for jumping
// past the current record without walking it row by row.
func (d *DecompressedRecord) OffsetAfter(outrank int) uint64 { return d.after[outrank].Offset }
