package gbwt

import "github.com/forestrie/go-gbwt/bitvector"

// DASamples is the sparse document-array sample map `(record, offset) ->
// sequence_id` that anchors locate() queries: a
// dense flag bitvector over all records, a sparse bitvector of sampled
// records' BWT start offsets, a sparse bitvector marking every sampled
// global BWT position, and a packed array of sequence ids aligned with
// the sampled-offset bitvector's rank order.
type DASamples struct {
	sampledRecords *bitvector.Dense
	bwtRanges      *bitvector.Sparse
	sampledOffsets *bitvector.Sparse
	array          []uint64
}

// NewDASamples builds the DA sample structure from a complete set of
// dynamic records, in record-id order.
func NewDASamples(bwt []DynamicRecord) *DASamples {
	dense := bitvector.NewDense(len(bwt))
	var bwtStarts, sampledOffsets, array []uint64
	var cumulative uint64
	for v := range bwt {
		rec := &bwt[v]
		if rec.Samples() > 0 {
			dense.Set(v)
			bwtStarts = append(bwtStarts, cumulative)
			for _, s := range rec.ids {
				sampledOffsets = append(sampledOffsets, cumulative+s.Offset)
				array = append(array, s.SequenceID)
			}
		}
		cumulative += rec.bodySize
	}
	dense.Freeze()
	return &DASamples{
		sampledRecords: dense,
		bwtRanges:      bitvector.NewSparse(bwtStarts, cumulative),
		sampledOffsets: bitvector.NewSparse(sampledOffsets, cumulative),
		array:          array,
	}
}

// Records returns the number of records this structure was built over.
func (s *DASamples) Records() int { return s.sampledRecords.Len() }

// Size returns the total number of samples stored.
func (s *DASamples) Size() int { return len(s.array) }

// IsSampled reports whether `record` has at least one DA sample.
func (s *DASamples) IsSampled(record uint64) bool { return s.sampledRecords.Get(int(record)) }

// start returns the cumulative BWT offset of the body start of `record`.
// Only valid when IsSampled(record).
func (s *DASamples) start(record uint64) uint64 {
	rank := s.sampledRecords.Rank1(int(record))
	return s.bwtRanges.Select1(rank + 1)
}

// limit returns the upper bound of the BWT-offset range for the
// sampled record with the given rank (0-based among sampled records).
func (s *DASamples) limit(rank int) uint64 {
	if rank+1 < s.bwtRanges.Len() {
		return s.bwtRanges.Select1(rank + 2)
	}
	return s.sampledOffsets.Universe()
}

// TryLocate resolves a (record, offset) BWT cell to its sequence id, or
// InvalidSequence() if that cell was not sampled.
func (s *DASamples) TryLocate(record, offset uint64) uint64 {
	if !s.IsSampled(record) {
		return InvalidSequence()
	}
	g := s.start(record) + offset
	if !s.sampledOffsets.Contains(g) {
		return InvalidSequence()
	}
	idx := s.sampledOffsets.Rank1(g)
	return s.array[idx]
}

// NextSample returns the lowest-offset sample in `record` with offset >=
// the given offset, or InvalidSample() if there is none.
func (s *DASamples) NextSample(record, offset uint64) Sample {
	if !s.IsSampled(record) {
		return InvalidSample()
	}
	rank := s.sampledRecords.Rank1(int(record))
	g := s.start(record) + offset
	upper := s.limit(rank)
	idx := s.sampledOffsets.Rank1(g)
	if idx >= s.sampledOffsets.Len() {
		return InvalidSample()
	}
	val := s.sampledOffsets.Select1(idx + 1)
	if val >= upper {
		return InvalidSample()
	}
	return Sample{Offset: val - s.start(record), SequenceID: s.array[idx]}
}
