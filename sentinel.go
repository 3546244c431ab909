package gbwt

import "math"

// ENDMARKER is the reserved oriented node terminating every stored path.
const ENDMARKER Node = 0

const invalidSize = uint64(math.MaxUint64)

// InvalidEdge is returned by LF-family operations when the input offset
// is out of range or otherwise cannot be resolved.
func InvalidEdge() Edge { return Edge{Node: ENDMARKER, Offset: invalidSize} }

// IsValid reports whether e differs from InvalidEdge().
func (e Edge) IsValid() bool { return e.Offset != invalidSize }

// InvalidOffset is returned by LF(i, to) when there is no outgoing edge to
// the requested destination.
func InvalidOffset() uint64 { return invalidSize }

// InvalidSequence is returned by locate-family operations when a position
// cannot be resolved to a sequence id.
func InvalidSequence() uint64 { return invalidSize }

// InvalidSample marks the absence of a sample in nextSample-style queries.
func InvalidSample() Sample { return Sample{Offset: invalidSize, SequenceID: invalidSize} }

// IsValid reports whether s differs from InvalidSample().
func (s Sample) IsValid() bool { return s.Offset != invalidSize }
