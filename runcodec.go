package gbwt

import "google.golang.org/protobuf/encoding/protowire"

// runcodec.go implements the byte-stream layout for a single record's
// outgoing-edge header and run-length-encoded body. Varint
// fields reuse protobuf's wire varint (LEB128), the same integer coding
// protobuf itself uses for its own variable-width fields.
//
// Outgoing header: varint k, then k pairs (delta_node varint, offset
// varint), successor node ids delta-coded against the previous one
// (first delta against 0).
//
// Body: when k == 1 only run lengths are written, since the outrank is
// implicit. When k >= 2, short runs (length in [1, shortRunBudget(k)])
// pack (outrank, length) into one byte; longer runs spend one byte on the
// outrank and a trailing varint on (length - shortRunBudget(k) - 1).
//
// An empty record is exactly the single zero byte produced by encoding
// k == 0.

// appendVarint appends v to buf using protobuf's varint wire encoding.
func appendVarint(buf []byte, v uint64) []byte {
	return protowire.AppendVarint(buf, v)
}

// consumeVarint reads a varint from buf, returning the value, the number
// of bytes consumed, and ok=false if buf held a malformed varint.
func consumeVarint(buf []byte) (uint64, int, bool) {
	v, n := protowire.ConsumeVarint(buf)
	if n < 0 {
		return 0, 0, false
	}
	return v, n, true
}

// encodeOutgoing appends the outgoing-edge header for edges (already
// sorted ascending by successor node, per the edge-ordering rule) to buf:
// a varint count, then that many (delta_node, offset) varint pairs.
func encodeOutgoing(buf []byte, outgoing []Edge) []byte {
	buf = appendVarint(buf, uint64(len(outgoing)))
	var prev uint64
	for _, e := range outgoing {
		buf = appendVarint(buf, uint64(e.Node)-prev)
		buf = appendVarint(buf, e.Offset)
		prev = uint64(e.Node)
	}
	return buf
}

// decodeOutgoing reads the outgoing-edge header at the start of buf,
// returning the edges and the number of bytes consumed.
func decodeOutgoing(buf []byte) ([]Edge, int, bool) {
	k, n, ok := consumeVarint(buf)
	if !ok {
		return nil, 0, false
	}
	pos := n
	if k == 0 {
		return nil, pos, true
	}
	edges := make([]Edge, 0, k)
	var prev uint64
	for i := uint64(0); i < k; i++ {
		delta, dn, ok := consumeVarint(buf[pos:])
		if !ok {
			return nil, 0, false
		}
		pos += dn
		offset, on, ok := consumeVarint(buf[pos:])
		if !ok {
			return nil, 0, false
		}
		pos += on
		node := prev + delta
		edges = append(edges, Edge{Node: Node(node), Offset: offset})
		prev = node
	}
	return edges, pos, true
}

// shortRunBudget returns L1, the largest run length that can be packed
// with its outrank into a single byte when a record has k >= 2 outgoing
// edges: k*L1 short codes plus k marker codes (one per outrank, for runs
// longer than L1) must fit in the 256 values of a byte. Returns 0 for
// k < 2, where no short codes exist.
func shortRunBudget(k int) uint64 {
	if k <= 1 {
		return 0
	}
	return uint64((256 - k) / k)
}

// encodeRuns appends the RLE body for a sequence of runs, given the
// record's outdegree k.
func encodeRuns(buf []byte, runs []Run, k int) []byte {
	if k == 1 {
		for _, r := range runs {
			buf = appendVarint(buf, r.Length)
		}
		return buf
	}
	l1 := shortRunBudget(k)
	for _, r := range runs {
		if r.Length <= l1 && l1 > 0 {
			code := (r.Length-1)*uint64(k) + uint64(r.OutRank)
			buf = append(buf, byte(code))
		} else {
			marker := l1*uint64(k) + uint64(r.OutRank)
			buf = append(buf, byte(marker))
			buf = appendVarint(buf, r.Length-l1-1)
		}
	}
	return buf
}

// decodeRun decodes one run from buf at the given outdegree k, returning
// the run, the number of bytes consumed, and ok=false on malformed input.
func decodeRun(buf []byte, k int) (Run, int, bool) {
	if k == 1 {
		length, n, ok := consumeVarint(buf)
		if !ok {
			return Run{}, 0, false
		}
		return Run{OutRank: 0, Length: length}, n, true
	}
	if len(buf) == 0 {
		return Run{}, 0, false
	}
	l1 := shortRunBudget(k)
	code := uint64(buf[0])
	if l1 > 0 && code < l1*uint64(k) {
		outrank := code % uint64(k)
		length := code/uint64(k) + 1
		return Run{OutRank: uint32(outrank), Length: length}, 1, true
	}
	outrank := code - l1*uint64(k)
	tail, n, ok := consumeVarint(buf[1:])
	if !ok {
		return Run{}, 0, false
	}
	return Run{OutRank: uint32(outrank), Length: tail + l1 + 1}, 1 + n, true
}
