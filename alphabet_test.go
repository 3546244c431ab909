package gbwt

import "testing"

func TestAlphabetMap(t *testing.T) {
	nodes := []Node{Node(6), Node(2), Node(4), Node(2)}
	m := NewAlphabetMap(nodes)

	if m.Sigma() != 4 { // ENDMARKER + {2, 4, 6}, deduplicated
		t.Fatalf("Sigma() = %d, want 4", m.Sigma())
	}
	if r, ok := m.Record(ENDMARKER); !ok || r != 0 {
		t.Errorf("ENDMARKER should map to record 0, got %d %v", r, ok)
	}
	for i, n := range []Node{ENDMARKER, Node(2), Node(4), Node(6)} {
		r, ok := m.Record(n)
		if !ok || r != uint64(i) {
			t.Errorf("Record(%d) = %d, %v, want %d, true", n, r, ok, i)
		}
		if m.Node(r) != n {
			t.Errorf("Node(%d) = %d, want %d", r, m.Node(r), n)
		}
	}
	if _, ok := m.Record(Node(999)); ok {
		t.Errorf("Record() of an unknown node should report false")
	}
}
