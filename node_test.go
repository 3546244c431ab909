package gbwt

import "testing"

func TestEncodeNode(t *testing.T) {
	tests := []struct {
		name    string
		id      uint64
		reverse bool
		want    Node
	}{
		{"forward", 5, false, Node(10)},
		{"reverse", 5, true, Node(11)},
		{"endmarker", 0, false, ENDMARKER},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EncodeNode(tt.id, tt.reverse)
			if got != tt.want {
				t.Errorf("EncodeNode(%d, %v) = %d, want %d", tt.id, tt.reverse, got, tt.want)
			}
			if got.ID() != tt.id {
				t.Errorf("ID() = %d, want %d", got.ID(), tt.id)
			}
			if got.IsReverse() != tt.reverse {
				t.Errorf("IsReverse() = %v, want %v", got.IsReverse(), tt.reverse)
			}
		})
	}
}

func TestNodeReverse(t *testing.T) {
	n := EncodeNode(7, false)
	r := n.Reverse()
	if !r.IsReverse() || r.ID() != 7 {
		t.Errorf("Reverse() = %d, want reverse of node 7", r)
	}
	if r.Reverse() != n {
		t.Errorf("Reverse() is not its own inverse")
	}
}

func TestReversePath(t *testing.T) {
	path := []Node{EncodeNode(1, false), EncodeNode(2, false), EncodeNode(3, true)}
	ReversePath(path)
	want := []Node{EncodeNode(3, false), EncodeNode(2, true), EncodeNode(1, true)}
	for i := range want {
		if path[i] != want[i] {
			t.Errorf("ReversePath()[%d] = %d, want %d", i, path[i], want[i])
		}
	}
}

func TestReversePathTo(t *testing.T) {
	path := []Node{EncodeNode(1, false), EncodeNode(2, true)}
	out := ReversePathTo(path, nil)
	want := []Node{EncodeNode(2, false), EncodeNode(1, true)}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("ReversePathTo()[%d] = %d, want %d", i, out[i], want[i])
		}
	}
	// original left untouched
	if path[0] != EncodeNode(1, false) || path[1] != EncodeNode(2, true) {
		t.Errorf("ReversePathTo mutated its input: %v", path)
	}
}

func TestEncodePath(t *testing.T) {
	p := EncodePath(3, true)
	if p.ID() != 3 || !p.IsReverse() {
		t.Errorf("EncodePath(3, true) = %d, ID=%d reverse=%v", p, p.ID(), p.IsReverse())
	}
	if p.Reverse().IsReverse() {
		t.Errorf("Reverse() of a reverse path should be forward")
	}
}
