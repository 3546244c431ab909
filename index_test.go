package gbwt

// fixtureIndexes builds a tiny GBWT over one node chain A->B->C repeated
// `copies` times as distinct (duplicate) sequences, returning both index
// backends so search tests can run identically against each. Record 0 is
// always ENDMARKER; DA samples live only on the ENDMARKER record, at the
// row that starts each sequence -- enough to let locate() walk forward to
// a sample via LF chaining, the same way a real merge would place a
// sparser set of samples.
func fixtureIndexes(copies uint64) (a Node, b Node, c Node, alphabet *AlphabetMap, dyn *DynamicGBWT, comp *CompressedGBWT) {
	a = EncodeNode(1, false)
	b = EncodeNode(2, false)
	c = EncodeNode(3, false)
	alphabet = NewAlphabetMap([]Node{a, b, c})

	endRec := &DynamicRecord{outgoing: []Edge{{Node: a, Offset: 0}}}
	aRec := &DynamicRecord{outgoing: []Edge{{Node: b, Offset: 0}}, incoming: []Edge{{Node: ENDMARKER, Offset: copies}}}
	bRec := &DynamicRecord{outgoing: []Edge{{Node: c, Offset: 0}}, incoming: []Edge{{Node: a, Offset: copies}}}
	cRec := &DynamicRecord{outgoing: []Edge{{Node: ENDMARKER, Offset: 0}}, incoming: []Edge{{Node: b, Offset: copies}}}

	for seq := uint64(0); seq < copies; seq++ {
		endRec.appendToBody(0)
		aRec.appendToBody(0)
		bRec.appendToBody(0)
		cRec.appendToBody(0)
		endRec.AddSample(seq, seq)
	}

	records := []DynamicRecord{*endRec, *aRec, *bRec, *cRec}
	dyn = NewDynamicGBWT(alphabet, records)
	comp = NewCompressedGBWT(alphabet, NewRecordArray(records), NewDASamples(records))
	return
}

func fixtureBackends(copies uint64) (Node, Node, Node, []Index) {
	a, b, c, _, dyn, comp := fixtureIndexes(copies)
	return a, b, c, []Index{dyn, comp}
}
