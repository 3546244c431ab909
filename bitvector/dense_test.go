package bitvector

import "testing"

func TestDenseRank1(t *testing.T) {
	d := NewDense(130)
	for _, i := range []int{0, 1, 64, 65, 129} {
		d.Set(i)
	}
	d.Freeze()

	tests := []struct {
		i    int
		want int
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{64, 2},
		{65, 3},
		{66, 4},
		{129, 4},
		{130, 5},
	}
	for _, tt := range tests {
		if got := d.Rank1(tt.i); got != tt.want {
			t.Errorf("Rank1(%d) = %d, want %d", tt.i, got, tt.want)
		}
	}
}

func TestDenseGetSet(t *testing.T) {
	d := NewDense(10)
	d.Set(3)
	for i := 0; i < 10; i++ {
		want := i == 3
		if d.Get(i) != want {
			t.Errorf("Get(%d) = %v, want %v", i, d.Get(i), want)
		}
	}
}
