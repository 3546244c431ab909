package gbwt

import "testing"

// buildRecord constructs a DynamicRecord with the given outgoing edges
// (already in successor order) and a flat sequence of outrank symbols for
// the body.
func buildRecord(outgoing []Edge, symbols []uint32) *DynamicRecord {
	d := &DynamicRecord{outgoing: outgoing}
	for _, s := range symbols {
		d.appendToBody(s)
	}
	return d
}

func TestDynamicRecordBasics(t *testing.T) {
	outgoing := []Edge{{Node: Node(2), Offset: 0}, {Node: Node(4), Offset: 3}}
	d := buildRecord(outgoing, []uint32{0, 0, 1, 0, 1, 1})
	if d.Size() != 6 {
		t.Fatalf("Size() = %d, want 6", d.Size())
	}
	if d.Outdegree() != 2 {
		t.Fatalf("Outdegree() = %d, want 2", d.Outdegree())
	}
	if d.Empty() {
		t.Fatalf("record should not be empty")
	}
	if d.At(0) != Node(2) || d.At(2) != Node(4) {
		t.Errorf("At() mismatch: At(0)=%d At(2)=%d", d.At(0), d.At(2))
	}
}

func TestDynamicRecordLF(t *testing.T) {
	// outrank 0 -> node 2 (base offset 0), outrank 1 -> node 4 (base offset 3)
	outgoing := []Edge{{Node: Node(2), Offset: 0}, {Node: Node(4), Offset: 3}}
	d := buildRecord(outgoing, []uint32{0, 0, 1, 0, 1, 1})

	tests := []struct {
		i    uint64
		want Edge
	}{
		{0, Edge{Node: Node(2), Offset: 0}},
		{1, Edge{Node: Node(2), Offset: 1}},
		{2, Edge{Node: Node(4), Offset: 3}},
		{3, Edge{Node: Node(2), Offset: 2}},
		{4, Edge{Node: Node(4), Offset: 4}},
		{5, Edge{Node: Node(4), Offset: 5}},
	}
	for _, tt := range tests {
		if got := d.LF(tt.i); got != tt.want {
			t.Errorf("LF(%d) = %+v, want %+v", tt.i, got, tt.want)
		}
	}
	if d.LF(6).IsValid() {
		t.Errorf("LF(6) should be invalid (out of range)")
	}
}

func TestDynamicRecordLFRange(t *testing.T) {
	outgoing := []Edge{{Node: Node(2), Offset: 0}, {Node: Node(4), Offset: 3}}
	d := buildRecord(outgoing, []uint32{0, 0, 1, 0, 1, 1})

	// rows [0,5] through node 4 (outrank 1) occur at body positions 2,4,5
	got := d.LFRange(Range{SP: 0, EP: 5}, Node(4))
	want := Range{SP: 3, EP: 5}
	if got != want {
		t.Errorf("LFRange(full, node4) = %+v, want %+v", got, want)
	}

	if got := d.LFRange(EmptyRange(), Node(4)); !got.Empty() {
		t.Errorf("LFRange(empty, _) should stay empty")
	}
	if got := d.LFRange(Range{SP: 0, EP: 5}, Node(99)); !got.Empty() {
		t.Errorf("LFRange to an unknown node should be empty, got %+v", got)
	}
}

func TestDynamicRecordRecode(t *testing.T) {
	// built out of successor order; recode should sort by node and remap.
	outgoing := []Edge{{Node: Node(4), Offset: 0}, {Node: Node(2), Offset: 0}}
	d := buildRecord(outgoing, []uint32{0, 1, 0})
	d.Recode()

	if d.outgoing[0].Node != Node(2) || d.outgoing[1].Node != Node(4) {
		t.Fatalf("Recode() did not sort outgoing: %+v", d.outgoing)
	}
	// body outranks should have been remapped: original outrank 0 (node4)
	// is now outrank 1; original outrank 1 (node2) is now outrank 0.
	want := []uint32{1, 0, 1}
	for i, r := range expandBody(d.body) {
		if r != want[i] {
			t.Errorf("body[%d] = %d, want %d", i, r, want[i])
		}
	}
}

// expandBody flattens a run-length-encoded body back into a symbol slice,
// for test assertions only.
func expandBody(runs []Run) []uint32 {
	var out []uint32
	for _, r := range runs {
		for i := uint64(0); i < r.Length; i++ {
			out = append(out, r.OutRank)
		}
	}
	return out
}

func TestDynamicRecordIncrement(t *testing.T) {
	d := &DynamicRecord{}
	d.Increment(Node(10))
	d.Increment(Node(5))
	d.Increment(Node(10))
	if d.Indegree() != 2 {
		t.Fatalf("Indegree() = %d, want 2", d.Indegree())
	}
	if d.Predecessor(0) != Node(5) || d.Predecessor(1) != Node(10) {
		t.Errorf("incoming not kept sorted: %+v", d.incoming)
	}
	if d.Count(1) != 2 {
		t.Errorf("Count(10) = %d, want 2", d.Count(1))
	}
}

func TestDynamicRecordCountBeforeUntil(t *testing.T) {
	d := &DynamicRecord{}
	d.AddIncoming(Edge{Node: Node(2), Offset: 3})
	d.AddIncoming(Edge{Node: Node(5), Offset: 2})
	d.AddIncoming(Edge{Node: Node(8), Offset: 4})

	if got := d.CountBefore(Node(5)); got != 3 {
		t.Errorf("CountBefore(5) = %d, want 3", got)
	}
	if got := d.CountUntil(Node(5)); got != 5 {
		t.Errorf("CountUntil(5) = %d, want 5", got)
	}
	if got := d.CountUntil(Node(8)); got != 9 {
		t.Errorf("CountUntil(8) = %d, want 9", got)
	}
}

func TestDynamicRecordSamples(t *testing.T) {
	d := &DynamicRecord{}
	d.AddSample(5, 100)
	d.AddSample(1, 200)
	d.AddSample(9, 300)

	if got := d.NextSample(0); got.Offset != 1 || got.SequenceID != 200 {
		t.Errorf("NextSample(0) = %+v, want {1 200}", got)
	}
	if got := d.NextSample(6); got.Offset != 9 || got.SequenceID != 300 {
		t.Errorf("NextSample(6) = %+v, want {9 300}", got)
	}
	if got := d.NextSample(10); got.IsValid() {
		t.Errorf("NextSample(10) should be invalid, got %+v", got)
	}
}

func TestDynamicRecordRemoveUnusedEdges(t *testing.T) {
	outgoing := []Edge{{Node: Node(2)}, {Node: Node(4)}, {Node: Node(6)}}
	d := buildRecord(outgoing, []uint32{0, 0, 2})
	d.RemoveUnusedEdges()
	if d.Outdegree() != 2 {
		t.Fatalf("RemoveUnusedEdges() left outdegree %d, want 2", d.Outdegree())
	}
	if d.outgoing[0].Node != Node(2) || d.outgoing[1].Node != Node(6) {
		t.Errorf("RemoveUnusedEdges() kept wrong edges: %+v", d.outgoing)
	}
	if d.At(2) != Node(6) {
		t.Errorf("body outranks not remapped after RemoveUnusedEdges: At(2)=%d", d.At(2))
	}
}

func TestDynamicRecordWriteBWTRoundTrip(t *testing.T) {
	outgoing := []Edge{{Node: Node(2), Offset: 0}, {Node: Node(4), Offset: 3}, {Node: Node(400), Offset: 10}}
	symbols := []uint32{0, 1, 2, 2, 0, 1, 1, 2}
	d := buildRecord(outgoing, symbols)

	buf := d.WriteBWT(nil)
	c := NewCompressedRecord(buf, 0, uint64(len(buf)))

	if c.Size() != d.Size() {
		t.Fatalf("Size mismatch: compressed=%d dynamic=%d", c.Size(), d.Size())
	}
	if c.Outdegree() != d.Outdegree() {
		t.Fatalf("Outdegree mismatch: compressed=%d dynamic=%d", c.Outdegree(), d.Outdegree())
	}
	for i := uint64(0); i < d.Size(); i++ {
		if c.At(i) != d.At(i) {
			t.Errorf("At(%d): compressed=%d dynamic=%d", i, c.At(i), d.At(i))
		}
	}
	for _, to := range []Node{Node(2), Node(4), Node(400)} {
		got := c.LFRange(Range{SP: 0, EP: d.Size() - 1}, to)
		want := d.LFRange(Range{SP: 0, EP: d.Size() - 1}, to)
		if got != want {
			t.Errorf("LFRange(to=%d): compressed=%+v dynamic=%+v", to, got, want)
		}
	}
}

func TestDynamicRecordWriteBWTRunLengthMismatch(t *testing.T) {
	outgoing := []Edge{{Node: Node(2), Offset: 0}}
	d := buildRecord(outgoing, []uint32{0, 0, 0})
	d.bodySize++ // desync bodySize from the actual run total

	defer func() {
		r := recover()
		if r != ErrRunLengthMismatch {
			t.Fatalf("WriteBWT() panic = %v, want ErrRunLengthMismatch", r)
		}
	}()
	d.WriteBWT(nil)
	t.Fatalf("WriteBWT() did not panic on mismatched run lengths")
}
