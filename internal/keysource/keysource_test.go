package keysource

import "testing"

func TestSameSeedIsDeterministic(t *testing.T) {
	a := New(5).NextN(100)
	b := New(5).NextN(100)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("index %d: %d != %d for the same seed", i, a[i], b[i])
		}
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := New(1).NextN(10)
	b := New(2).NextN(10)
	same := 0
	for i := range a {
		if a[i] == b[i] {
			same++
		}
	}
	if same == len(a) {
		t.Fatal("streams from different seeds should not be identical")
	}
}
