package app

import "testing"

func TestSampleRing(t *testing.T) {
	r := NewSampleRing(3)
	if r.Values() != nil || r.Last() != 0 || r.Mean() != 0 {
		t.Error("empty ring should report nothing")
	}

	r.Push(1)
	r.Push(2)
	if got := r.Values(); len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("Values() = %v", got)
	}

	r.Push(3)
	r.Push(4)
	got := r.Values()
	want := []float64{2, 3, 4}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Values() = %v, want %v", got, want)
		}
	}
	if r.Last() != 4 || r.Len() != 3 || r.Mean() != 3 {
		t.Errorf("Last %v Len %d Mean %v", r.Last(), r.Len(), r.Mean())
	}

	r.Reset()
	if r.Len() != 0 {
		t.Errorf("Len() after reset = %d", r.Len())
	}
}
