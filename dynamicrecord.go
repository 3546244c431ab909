package gbwt

import "sort"

// DynamicRecord is the mutable per-node record used during construction
// and merging: incoming/outgoing edge lists, a run-length-encoded body,
// and document-array samples.
type DynamicRecord struct {
	bodySize uint64
	incoming []Edge // sorted ascending by predecessor
	outgoing []Edge // sorted ascending by successor after recode()
	body     []Run
	ids      []Sample // sorted ascending by offset
}

// Size returns the body length (number of BWT rows in this record).
func (d *DynamicRecord) Size() uint64 { return d.bodySize }

// Empty reports whether the record holds no rows.
func (d *DynamicRecord) Empty() bool { return d.bodySize == 0 }

// Indegree returns the number of distinct predecessors.
func (d *DynamicRecord) Indegree() int { return len(d.incoming) }

// Outdegree returns the number of distinct successors.
func (d *DynamicRecord) Outdegree() int { return len(d.outgoing) }

// Runs returns the number of runs in the body.
func (d *DynamicRecord) Runs() int { return len(d.body) }

// Samples returns the number of DA samples attached to this record.
func (d *DynamicRecord) Samples() int { return len(d.ids) }

// Clear resets the record to its empty state.
func (d *DynamicRecord) Clear() {
	d.bodySize = 0
	d.incoming = nil
	d.outgoing = nil
	d.body = nil
	d.ids = nil
}

// edgeTo binary-searches a sorted outgoing list for the outrank of an
// edge to `to`, returning -1 if there is none.
func edgeTo(to Node, outgoing []Edge) int {
	lo, hi := 0, len(outgoing)
	for lo < hi {
		mid := (lo + hi) / 2
		if outgoing[mid].Node < to {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(outgoing) && outgoing[lo].Node == to {
		return lo
	}
	return -1
}

// EdgeTo maps a successor node to its outrank in this record's outgoing
// list. Requires the edges to already be sorted by recode().
func (d *DynamicRecord) EdgeTo(to Node) int { return edgeTo(to, d.outgoing) }

// EdgeToLinear is the pre-recode equivalent of EdgeTo: a linear scan that
// works whether or not outgoing is sorted.
func (d *DynamicRecord) EdgeToLinear(to Node) int {
	for i, e := range d.outgoing {
		if e.Node == to {
			return i
		}
	}
	return -1
}

// HasEdge reports whether there is an outgoing edge to `to`.
func (d *DynamicRecord) HasEdge(to Node) bool { return d.EdgeTo(to) >= 0 }

// Successor returns the successor node of the given outrank.
func (d *DynamicRecord) Successor(outrank int) Node { return d.outgoing[outrank].Node }

// Offset returns the cumulative offset of the given outrank.
func (d *DynamicRecord) Offset(outrank int) uint64 { return d.outgoing[outrank].Offset }

// Predecessor returns the predecessor node of the given inrank.
func (d *DynamicRecord) Predecessor(inrank int) Node { return d.incoming[inrank].Node }

// Count returns the occurrence count of the given inrank.
func (d *DynamicRecord) Count(inrank int) uint64 { return d.incoming[inrank].Offset }

// CountBefore sums counts over incoming edges whose predecessor < from.
func (d *DynamicRecord) CountBefore(from Node) uint64 {
	var total uint64
	for _, e := range d.incoming {
		if e.Node >= from {
			break
		}
		total += e.Offset
	}
	return total
}

// CountUntil sums counts over incoming edges whose predecessor <= from.
func (d *DynamicRecord) CountUntil(from Node) uint64 {
	var total uint64
	for _, e := range d.incoming {
		if e.Node > from {
			break
		}
		total += e.Offset
	}
	return total
}

// Increment bumps the count of the incoming edge from `from`, inserting
// it in sorted position if it is not yet present.
func (d *DynamicRecord) Increment(from Node) {
	i := sort.Search(len(d.incoming), func(i int) bool { return d.incoming[i].Node >= from })
	if i < len(d.incoming) && d.incoming[i].Node == from {
		d.incoming[i].Offset++
		return
	}
	d.AddIncoming(Edge{Node: from, Offset: 1})
}

// AddIncoming inserts a new incoming edge in sorted position.
func (d *DynamicRecord) AddIncoming(inedge Edge) {
	i := sort.Search(len(d.incoming), func(i int) bool { return d.incoming[i].Node >= inedge.Node })
	d.incoming = append(d.incoming, Edge{})
	copy(d.incoming[i+1:], d.incoming[i:])
	d.incoming[i] = inedge
}

// NextSample returns the first sample at offset >= i, or
// InvalidSample() if none exists.
func (d *DynamicRecord) NextSample(i uint64) Sample {
	idx := sort.Search(len(d.ids), func(k int) bool { return d.ids[k].Offset >= i })
	if idx >= len(d.ids) {
		return InvalidSample()
	}
	return d.ids[idx]
}

// AddSample attaches a DA sample at the given body offset, maintaining
// ascending order by offset (I5: offset must be < body_size).
func (d *DynamicRecord) AddSample(offset, sequenceID uint64) {
	i := sort.Search(len(d.ids), func(k int) bool { return d.ids[k].Offset >= offset })
	d.ids = append(d.ids, Sample{})
	copy(d.ids[i+1:], d.ids[i:])
	d.ids[i] = Sample{Offset: offset, SequenceID: sequenceID}
}

// Recode sorts the outgoing edges by successor node and rewrites the
// outranks recorded in the body to match.
func (d *DynamicRecord) Recode() {
	if len(d.outgoing) <= 1 {
		return
	}
	order := make([]int, len(d.outgoing))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool { return d.outgoing[order[i]].Node < d.outgoing[order[j]].Node })

	remap := make([]uint32, len(d.outgoing))
	for newRank, oldRank := range order {
		remap[oldRank] = uint32(newRank)
	}
	sorted := make([]Edge, len(d.outgoing))
	for newRank, oldRank := range order {
		sorted[newRank] = d.outgoing[oldRank]
	}
	d.outgoing = sorted

	for i := range d.body {
		d.body[i].OutRank = remap[d.body[i].OutRank]
	}
	d.mergeAdjacentRuns()
}

// mergeAdjacentRuns coalesces consecutive runs with the same outrank,
// which Recode can create.
func (d *DynamicRecord) mergeAdjacentRuns() {
	if len(d.body) == 0 {
		return
	}
	out := d.body[:1]
	for _, r := range d.body[1:] {
		last := &out[len(out)-1]
		if last.OutRank == r.OutRank {
			last.Length += r.Length
		} else {
			out = append(out, r)
		}
	}
	d.body = out
}

// RemoveUnusedEdges drops outgoing entries with zero body occurrences,
// then recodes.
func (d *DynamicRecord) RemoveUnusedEdges() {
	used := make([]bool, len(d.outgoing))
	for _, r := range d.body {
		if r.Length > 0 {
			used[r.OutRank] = true
		}
	}
	allUsed := true
	for _, u := range used {
		if !u {
			allUsed = false
			break
		}
	}
	if allUsed {
		d.Recode()
		return
	}

	remap := make([]int, len(d.outgoing))
	kept := d.outgoing[:0]
	next := 0
	for i, e := range d.outgoing {
		if used[i] {
			remap[i] = next
			kept = append(kept, e)
			next++
		} else {
			remap[i] = -1
		}
	}
	d.outgoing = kept
	for i := range d.body {
		d.body[i].OutRank = uint32(remap[d.body[i].OutRank])
	}
	d.Recode()
}

// At returns BWT[i] within the record: the successor node reached from
// body position i.
func (d *DynamicRecord) At(i uint64) Node {
	var pos uint64
	for _, r := range d.body {
		if i < pos+r.Length {
			return d.outgoing[r.OutRank].Node
		}
		pos += r.Length
	}
	return ENDMARKER
}

// LF locates the run containing position i and returns the (successor,
// row-in-successor) edge it maps to, or InvalidEdge() if i is out of
// range.
func (d *DynamicRecord) LF(i uint64) Edge {
	var runEnd uint64
	return d.RunLF(i, &runEnd)
}

// RunLF is LF(i) that additionally reports the last offset of the run
// containing i.
func (d *DynamicRecord) RunLF(i uint64, runEnd *uint64) Edge {
	if i >= d.bodySize {
		return InvalidEdge()
	}
	var pos uint64
	counts := make([]uint64, len(d.outgoing))
	for _, r := range d.body {
		runStart := pos
		pos += r.Length
		if i < pos {
			*runEnd = pos - 1
			within := i - runStart
			return Edge{
				Node:   d.outgoing[r.OutRank].Node,
				Offset: d.outgoing[r.OutRank].Offset + counts[r.OutRank] + within,
			}
		}
		counts[r.OutRank] += r.Length
	}
	return InvalidEdge()
}

// LFTo returns the row that position i maps to within the record for
// `to`, or InvalidOffset() if there is no outgoing edge there.
func (d *DynamicRecord) LFTo(i uint64, to Node) uint64 {
	outrank := d.EdgeTo(to)
	if outrank < 0 || i > d.bodySize {
		return InvalidOffset()
	}
	var pos uint64
	var count uint64
	for _, r := range d.body {
		if pos >= i {
			break
		}
		runLen := r.Length
		if pos+runLen > i {
			runLen = i - pos
		}
		if int(r.OutRank) == outrank {
			count += runLen
		}
		pos += r.Length
	}
	return d.outgoing[outrank].Offset + count
}

// LFRange maps a range through the edge to `to`, returning an empty range
// if the edge is missing or the mapped range would be inverted.
func (d *DynamicRecord) LFRange(r Range, to Node) Range {
	if r.Empty() || !d.HasEdge(to) {
		return EmptyRange()
	}
	sp := d.LFTo(r.SP, to)
	ep := d.LFTo(r.EP+1, to)
	if ep == 0 {
		return EmptyRange()
	}
	result := Range{SP: sp, EP: ep - 1}
	if result.Empty() {
		return EmptyRange()
	}
	return result
}

// BdLF is LFRange plus the bidirectional reverse-offset count: the
// number of body positions in [r.SP, r.EP] whose outrank's successor has
// Reverse() < to.Reverse().
func (d *DynamicRecord) BdLF(r Range, to Node, reverseOffset *uint64) Range {
	*reverseOffset = 0
	if r.Empty() {
		return EmptyRange()
	}

	counts := make([]uint64, len(d.outgoing))
	var pos uint64
	for _, run := range d.body {
		runStart := pos
		pos += run.Length
		lo, hi := runStart, pos
		if lo < r.SP {
			lo = r.SP
		}
		if hi > r.EP+1 {
			hi = r.EP + 1
		}
		if lo < hi {
			counts[run.OutRank] += hi - lo
		}
	}

	for outrank, e := range d.outgoing {
		if e.Node.Reverse() < to.Reverse() {
			*reverseOffset += counts[outrank]
		}
	}

	return d.LFRange(r, to)
}

// WriteBWT emits the compressed byte representation of this record,
// appending to buf. Panics with ErrRunLengthMismatch if the body's runs
// were left inconsistent with bodySize by a construction bug.
func (d *DynamicRecord) WriteBWT(buf []byte) []byte {
	d.checkRunLengths()
	buf = encodeOutgoing(buf, d.outgoing)
	buf = encodeRuns(buf, d.body, len(d.outgoing))
	return buf
}

// checkRunLengths verifies that the body's run lengths sum to bodySize.
func (d *DynamicRecord) checkRunLengths() {
	var sum uint64
	for _, r := range d.body {
		sum += r.Length
	}
	if sum != d.bodySize {
		panic(ErrRunLengthMismatch)
	}
}

// appendToBody appends a successor occurrence to the body, coalescing
// with the previous run when possible, and maintains bodySize. Used by
// construction code outside the query path; not part of the public
// operation list but needed to actually build a DynamicRecord.
func (d *DynamicRecord) appendToBody(outrank uint32) {
	if n := len(d.body); n > 0 && d.body[n-1].OutRank == outrank {
		d.body[n-1].Length++
	} else {
		d.body = append(d.body, Run{OutRank: outrank, Length: 1})
	}
	d.bodySize++
}
