package gbwt

// Node encodes an oriented graph node: the underlying node id plus an
// orientation bit. Bit 0 is the orientation flag; the remaining bits are
// the graph node id. Node(0) is the reserved ENDMARKER that delimits
// stored paths.
type Node uint64

const (
	reverseMask = Node(0x1)
	idShift     = 1
)

// EncodeNode packs a graph node id and an orientation flag into a Node.
func EncodeNode(id uint64, reverse bool) Node {
	n := Node(id) << idShift
	if reverse {
		n |= reverseMask
	}
	return n
}

// ID returns the underlying graph node id, discarding orientation.
func (n Node) ID() uint64 { return uint64(n >> idShift) }

// IsReverse reports whether n is the reverse orientation of its node id.
func (n Node) IsReverse() bool { return n&reverseMask != 0 }

// Reverse returns the opposite orientation of the same underlying node.
func (n Node) Reverse() Node { return n ^ reverseMask }

// Path encodes an oriented path reference: a path id plus a direction bit,
// using the same bit layout as Node. Used when a caller names a path by
// its oriented id rather than a bare sequence number.
type Path uint64

const (
	pathReverseMask = Path(0x1)
	pathIDShift     = 1
)

// EncodePath packs a path id and a direction flag into a Path.
func EncodePath(id uint64, reverse bool) Path {
	p := Path(id) << pathIDShift
	if reverse {
		p |= pathReverseMask
	}
	return p
}

// ID returns the underlying path id, discarding direction.
func (p Path) ID() uint64 { return uint64(p >> pathIDShift) }

// IsReverse reports whether p runs in the reverse direction.
func (p Path) IsReverse() bool { return p&pathReverseMask != 0 }

// Reverse returns the opposite direction of the same path id.
func (p Path) Reverse() Path { return p ^ pathReverseMask }

// ReversePath reverses a path in place: reverses element order and flips
// the orientation of every node.
func ReversePath(path []Node) {
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	for i := range path {
		path[i] = path[i].Reverse()
	}
}

// ReversePathTo appends the reverse of path to output, leaving path
// untouched.
func ReversePathTo(path []Node, output []Node) []Node {
	for i := len(path) - 1; i >= 0; i-- {
		output = append(output, path[i].Reverse())
	}
	return output
}
