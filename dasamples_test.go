package gbwt

import "testing"

func TestDASamplesTryLocate(t *testing.T) {
	_, _, _, _, dyn, _ := fixtureIndexes(2)
	samples := NewDASamples(dyn.Records())

	if samples.Records() != len(dyn.Records()) {
		t.Fatalf("Records() = %d, want %d", samples.Records(), len(dyn.Records()))
	}
	if samples.Size() != 2 {
		t.Fatalf("Size() = %d, want 2 (one sample per sequence, on the endmarker record)", samples.Size())
	}
	if !samples.IsSampled(0) {
		t.Fatalf("record 0 (endmarker) should be sampled")
	}
	if samples.IsSampled(1) {
		t.Errorf("record 1 (a) should not be sampled in this fixture")
	}

	if got := samples.TryLocate(0, 0); got != 0 {
		t.Errorf("TryLocate(0,0) = %d, want 0", got)
	}
	if got := samples.TryLocate(0, 1); got != 1 {
		t.Errorf("TryLocate(0,1) = %d, want 1", got)
	}
	if got := samples.TryLocate(1, 0); got != InvalidSequence() {
		t.Errorf("TryLocate(1,0) = %d, want InvalidSequence()", got)
	}
}

func TestDASamplesNextSample(t *testing.T) {
	_, _, _, _, dyn, _ := fixtureIndexes(3)
	samples := NewDASamples(dyn.Records())

	got := samples.NextSample(0, 1)
	if got.Offset != 1 || got.SequenceID != 1 {
		t.Errorf("NextSample(0,1) = %+v, want {1 1}", got)
	}
	if got := samples.NextSample(0, 3); got.IsValid() {
		t.Errorf("NextSample(0,3) should be invalid, past the last sample")
	}
	if got := samples.NextSample(2, 0); got.IsValid() {
		t.Errorf("NextSample on an unsampled record should be invalid")
	}
}
