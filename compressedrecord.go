package gbwt

import "go.uber.org/zap"

// CompressedRecord is a read-only, byte-encoded view of one record,
// borrowing a slice of a RecordArray's shared byte buffer. It supports
// LF without fully decompressing the body; size() and
// runs() must scan the whole body and are expensive.
type CompressedRecord struct {
	outgoing []Edge
	body     []byte // the record's body bytes, header already stripped
}

// NewCompressedRecord parses the outgoing header out of data[start:limit]
// and stores the remaining bytes as the record's body.
func NewCompressedRecord(data []byte, start, limit uint64) CompressedRecord {
	region := data[start:limit]
	outgoing, n, ok := decodeOutgoing(region)
	if !ok {
		logger.Error("gbwt: malformed record header", zap.Uint64("start", start), zap.Uint64("limit", limit))
		panic(ErrMalformedHeader)
	}
	return CompressedRecord{outgoing: outgoing, body: region[n:]}
}

// EmptyRecord reports whether the record starting at `start` is empty,
// reading only the first byte.
func EmptyRecord(data []byte, start uint64) bool {
	return start < uint64(len(data)) && data[start] == 0
}

// Outdegree returns the number of distinct successors.
func (c *CompressedRecord) Outdegree() int { return len(c.outgoing) }

// HasEdge reports whether there is an outgoing edge to `to`.
func (c *CompressedRecord) HasEdge(to Node) bool { return edgeTo(to, c.outgoing) >= 0 }

// EdgeTo maps a successor node to its outrank.
func (c *CompressedRecord) EdgeTo(to Node) int { return edgeTo(to, c.outgoing) }

// Successor returns the successor node of the given outrank.
func (c *CompressedRecord) Successor(outrank int) Node { return c.outgoing[outrank].Node }

// Offset returns the cumulative offset of the given outrank.
func (c *CompressedRecord) Offset(outrank int) uint64 { return c.outgoing[outrank].Offset }

// forEachRun decodes the body from the start, calling fn for each run
// until fn returns false or the body is exhausted.
func (c *CompressedRecord) forEachRun(fn func(r Run) bool) {
	k := len(c.outgoing)
	if k == 0 {
		return
	}
	buf := c.body
	for len(buf) > 0 {
		run, n, ok := decodeRun(buf, k)
		if !ok {
			logger.Error("gbwt: truncated record body", zap.Int("outdegree", k), zap.Int("remaining", len(buf)))
			panic(ErrTruncatedRecord)
		}
		if !fn(run) {
			return
		}
		buf = buf[n:]
	}
}

// Size returns the body length. Expensive: scans every run.
func (c *CompressedRecord) Size() uint64 {
	var total uint64
	c.forEachRun(func(r Run) bool { total += r.Length; return true })
	return total
}

// Empty reports whether this record has zero outgoing edges (and hence
// an empty body).
func (c *CompressedRecord) Empty() bool { return len(c.outgoing) == 0 }

// Runs returns the number of runs in the body. Expensive: scans every
// run.
func (c *CompressedRecord) Runs() int {
	var n int
	c.forEachRun(func(Run) bool { n++; return true })
	return n
}

// At returns BWT[i] within the record.
func (c *CompressedRecord) At(i uint64) Node {
	e := c.LF(i)
	return e.Node
}

// LF locates the run containing position i and returns the (successor,
// row-in-successor) edge it maps to, or InvalidEdge() if i is out of
// range. Scans runs from the start, as described on RunLF.
func (c *CompressedRecord) LF(i uint64) Edge {
	var runEnd uint64
	return c.RunLF(i, &runEnd)
}

// RunLF is LF(i) that additionally reports the last offset of the run
// containing i. Two in-place passes over the body bytes: the first
// locates the run containing i, the second sums only that run's
// outrank over the runs before it. No per-outrank scratch array, so
// the cost of a step does not grow with the record's outdegree.
func (c *CompressedRecord) RunLF(i uint64, runEnd *uint64) Edge {
	k := len(c.outgoing)
	if k == 0 {
		return InvalidEdge()
	}
	var pos uint64
	var outrank uint32
	var runStart uint64
	found := false
	c.forEachRun(func(r Run) bool {
		runStart = pos
		pos += r.Length
		if i < pos {
			*runEnd = pos - 1
			outrank = r.OutRank
			found = true
			return false
		}
		return true
	})
	if !found {
		return InvalidEdge()
	}

	var count uint64
	pos = 0
	c.forEachRun(func(r Run) bool {
		if pos >= runStart {
			return false
		}
		if r.OutRank == outrank {
			count += r.Length
		}
		pos += r.Length
		return true
	})

	within := i - runStart
	return Edge{
		Node:   c.outgoing[outrank].Node,
		Offset: c.outgoing[outrank].Offset + count + within,
	}
}

// LFTo returns the row that position i maps to within the record for
// `to`, or InvalidOffset() if there is no outgoing edge there. Stops
// scanning as soon as i has been reached.
func (c *CompressedRecord) LFTo(i uint64, to Node) uint64 {
	outrank := c.EdgeTo(to)
	if outrank < 0 {
		return InvalidOffset()
	}
	var pos, count uint64
	c.forEachRun(func(r Run) bool {
		if pos >= i {
			return false
		}
		runLen := r.Length
		if pos+runLen > i {
			runLen = i - pos
		}
		if int(r.OutRank) == outrank {
			count += runLen
		}
		pos += r.Length
		return true
	})
	return c.outgoing[outrank].Offset + count
}

// LFRange maps a range through the edge to `to`, returning an empty
// range if the edge is missing or the mapped range would be inverted.
func (c *CompressedRecord) LFRange(r Range, to Node) Range {
	if r.Empty() || !c.HasEdge(to) {
		return EmptyRange()
	}
	sp := c.LFTo(r.SP, to)
	ep := c.LFTo(r.EP+1, to)
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
// Reverse() < to.Reverse(). reverseOffset comes from a single pass over
// the body, adding each run's overlap with [r.SP, r.EP] straight into
// reverseOffset when its outrank qualifies; no per-outrank scratch array
// is needed since the qualifying test only depends on that one run's own
// outrank. The returned range comes from LFRange, which scans the body
// again.
func (c *CompressedRecord) BdLF(r Range, to Node, reverseOffset *uint64) Range {
	*reverseOffset = 0
	if r.Empty() {
		return EmptyRange()
	}

	toReverse := to.Reverse()
	var pos uint64
	c.forEachRun(func(run Run) bool {
		runStart := pos
		pos += run.Length
		if c.outgoing[run.OutRank].Node.Reverse() < toReverse {
			lo, hi := runStart, pos
			if lo < r.SP {
				lo = r.SP
			}
			if hi > r.EP+1 {
				hi = r.EP + 1
			}
			if lo < hi {
				*reverseOffset += hi - lo
			}
		}
		return true
	})

	return c.LFRange(r, to)
}
