package gbwt

// Index is the capability set the search algorithms in search.go are
// written against: polymorphism over record providers. CompressedGBWT
// (backed by a RecordArray) and DynamicGBWT (backed by a slice of
// DynamicRecord) both implement it without either depending on the other.
type Index interface {
	// Contains reports whether n is part of the index's alphabet.
	Contains(n Node) bool
	// Count returns the body size of n's record.
	Count(n Node) uint64
	// Sequences returns the number of stored paths.
	Sequences() uint64
	// Start returns the BWT position where sequence seq begins.
	Start(seq uint64) Edge
	// LF extends a search state's range by one symbol x.
	LF(state SearchState, x Node) Range
	// LFPosition maps a single BWT position forward by one step.
	LFPosition(pos Edge) Edge
	// TryLocate resolves a BWT position to a sequence id, or
	// InvalidSequence() if that cell carries no DA sample.
	TryLocate(pos Edge) uint64
}

func sequencesFromCount(idx Index) uint64 { return idx.Count(ENDMARKER) }

func startFromLF(idx Index, seq uint64) Edge {
	if seq >= idx.Sequences() {
		return InvalidEdge()
	}
	return idx.LFPosition(Edge{Node: ENDMARKER, Offset: seq})
}

//------------------------------------------------------------------------------

// CompressedGBWT is the read-only, query-oriented index backed by a
// RecordArray and DASamples: the "compressed byte-array" record
// provider variant.
type CompressedGBWT struct {
	alphabet *AlphabetMap
	records  *RecordArray
	samples  *DASamples
}

// NewCompressedGBWT assembles a query-ready index from its already-built
// components.
func NewCompressedGBWT(alphabet *AlphabetMap, records *RecordArray, samples *DASamples) *CompressedGBWT {
	return &CompressedGBWT{alphabet: alphabet, records: records, samples: samples}
}

func (g *CompressedGBWT) Contains(n Node) bool {
	_, ok := g.alphabet.Record(n)
	return ok
}

func (g *CompressedGBWT) Count(n Node) uint64 {
	rec, ok := g.alphabet.Record(n)
	if !ok {
		return 0
	}
	record := g.records.Record(rec)
	return record.Size()
}

func (g *CompressedGBWT) Sequences() uint64 { return sequencesFromCount(g) }

func (g *CompressedGBWT) Start(seq uint64) Edge { return startFromLF(g, seq) }

func (g *CompressedGBWT) LF(state SearchState, x Node) Range {
	rec, ok := g.alphabet.Record(state.Node)
	if !ok {
		return EmptyRange()
	}
	record := g.records.Record(rec)
	return record.LFRange(state.Range, x)
}

func (g *CompressedGBWT) LFPosition(pos Edge) Edge {
	rec, ok := g.alphabet.Record(pos.Node)
	if !ok {
		return InvalidEdge()
	}
	record := g.records.Record(rec)
	return record.LF(pos.Offset)
}

func (g *CompressedGBWT) TryLocate(pos Edge) uint64 {
	rec, ok := g.alphabet.Record(pos.Node)
	if !ok {
		return InvalidSequence()
	}
	return g.samples.TryLocate(rec, pos.Offset)
}

//------------------------------------------------------------------------------

// DynamicGBWT is the mutable index backed directly by a slice of
// DynamicRecord, indexed by record id -- the "mutable vector-of-dynamic-
// records" provider variant, used during construction and
// merging.
type DynamicGBWT struct {
	alphabet *AlphabetMap
	records  []DynamicRecord
}

// NewDynamicGBWT wraps an already-populated slice of records, one per
// alphabet entry (indexed the same way as alphabet).
func NewDynamicGBWT(alphabet *AlphabetMap, records []DynamicRecord) *DynamicGBWT {
	return &DynamicGBWT{alphabet: alphabet, records: records}
}

// Records exposes the underlying record slice for construction/merge
// code that needs direct mutation access (recode, increment, ...).
func (g *DynamicGBWT) Records() []DynamicRecord { return g.records }

func (g *DynamicGBWT) Contains(n Node) bool {
	_, ok := g.alphabet.Record(n)
	return ok
}

func (g *DynamicGBWT) Count(n Node) uint64 {
	rec, ok := g.alphabet.Record(n)
	if !ok {
		return 0
	}
	return g.records[rec].Size()
}

func (g *DynamicGBWT) Sequences() uint64 { return sequencesFromCount(g) }

func (g *DynamicGBWT) Start(seq uint64) Edge { return startFromLF(g, seq) }

func (g *DynamicGBWT) LF(state SearchState, x Node) Range {
	rec, ok := g.alphabet.Record(state.Node)
	if !ok {
		return EmptyRange()
	}
	return g.records[rec].LFRange(state.Range, x)
}

func (g *DynamicGBWT) LFPosition(pos Edge) Edge {
	rec, ok := g.alphabet.Record(pos.Node)
	if !ok {
		return InvalidEdge()
	}
	return g.records[rec].LF(pos.Offset)
}

func (g *DynamicGBWT) TryLocate(pos Edge) uint64 {
	rec, ok := g.alphabet.Record(pos.Node)
	if !ok {
		return InvalidSequence()
	}
	record := &g.records[rec]
	idx := sortSearchSample(record.ids, pos.Offset)
	if idx < 0 {
		return InvalidSequence()
	}
	return record.ids[idx].SequenceID
}

// sortSearchSample returns the index of the sample at exactly `offset`
// in a slice sorted ascending by offset, or -1 if there is none.
func sortSearchSample(ids []Sample, offset uint64) int {
	lo, hi := 0, len(ids)
	for lo < hi {
		mid := (lo + hi) / 2
		if ids[mid].Offset < offset {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(ids) && ids[lo].Offset == offset {
		return lo
	}
	return -1
}
