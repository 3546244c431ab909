package gbwt

import "github.com/forestrie/go-gbwt/bitvector"

// RecordArray concatenates every record's compressed bytes into one
// buffer and indexes record boundaries with a succinct sparse bitvector
// CompressedRecord views borrow slices of data; the
// array owns the bytes.
type RecordArray struct {
	data  []byte
	index *bitvector.Sparse // 1-bit at each record's start offset into data
	count int
}

// NewRecordArray concatenates the compressed encoding of every dynamic
// record in bwt, in order, building the succinct start-offset index.
func NewRecordArray(bwt []DynamicRecord) *RecordArray {
	starts := make([]uint64, 0, len(bwt))
	var data []byte
	for i := range bwt {
		starts = append(starts, uint64(len(data)))
		data = bwt[i].WriteBWT(data)
	}
	return &RecordArray{
		data:  data,
		index: bitvector.NewSparse(starts, uint64(len(data))),
		count: len(bwt),
	}
}

// NewRecordArrayMerged builds a merged record array from several source
// arrays. origins[i] names the source array supplying destination record
// i; localIndex[i] names that record's index within the source. Per
// Rewriting successor ids and cumulative offsets to the
// merged numbering is the merge orchestrator's job: by the time this
// constructor runs, each source's bytes are assumed already rewritten
// into the merged alphabet. This constructor only does the byte-level
// concatenation and index-building the RecordArray is responsible for.
func NewRecordArrayMerged(sources []*RecordArray, origins []int, localIndex []uint64) *RecordArray {
	starts := make([]uint64, 0, len(origins))
	var data []byte
	for i, src := range origins {
		source := sources[src]
		local := localIndex[i]
		start := source.start(local)
		limit := source.limit(local)
		starts = append(starts, uint64(len(data)))
		data = append(data, source.data[start:limit]...)
	}
	return &RecordArray{
		data:  data,
		index: bitvector.NewSparse(starts, uint64(len(data))),
		count: len(origins),
	}
}

// Size returns the number of records.
func (a *RecordArray) Size() int { return a.count }

// Empty reports whether the array holds no records.
func (a *RecordArray) Empty() bool { return a.count == 0 }

// start is 0-based: the start offset of `record` within data.
func (a *RecordArray) start(record uint64) uint64 {
	return a.index.Select1(int(record) + 1)
}

// limit is the exclusive end offset of `record` within data.
func (a *RecordArray) limit(record uint64) uint64 {
	if int(record)+1 < a.count {
		return a.index.Select1(int(record) + 2)
	}
	return uint64(len(a.data))
}

// RecordEmpty peeks at the first byte of `record` without building a
// CompressedRecord.
func (a *RecordArray) RecordEmpty(record uint64) bool {
	return EmptyRecord(a.data, a.start(record))
}

// Record returns the CompressedRecord view for the given record id.
func (a *RecordArray) Record(record uint64) CompressedRecord {
	return NewCompressedRecord(a.data, a.start(record), a.limit(record))
}
