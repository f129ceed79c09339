package transtable

import (
	"testing"
	"unsafe"
)

func TestPackGenBoundRoundTrip(t *testing.T) {
	cases := []struct {
		gen   uint8
		pv    bool
		bound Bound
	}{
		{0, false, BoundNone},
		{8, true, BoundExact},
		{0xF8, false, BoundUpper},
		{0x08, true, BoundLower},
	}
	for _, c := range cases {
		packed := packGenBound(c.gen, c.pv, c.bound)
		if got := entryGeneration(packed); got != c.gen&0xF8 {
			t.Errorf("gen=%#x pv=%v bound=%v: generation = %#x, want %#x", c.gen, c.pv, c.bound, got, c.gen&0xF8)
		}
		if got := entryIsPV(packed); got != c.pv {
			t.Errorf("gen=%#x pv=%v bound=%v: isPV = %v, want %v", c.gen, c.pv, c.bound, got, c.pv)
		}
		if got := entryBound(packed); got != c.bound {
			t.Errorf("gen=%#x pv=%v bound=%v: bound = %v, want %v", c.gen, c.pv, c.bound, got, c.bound)
		}
	}
}

func TestDepthCodecRoundTrip(t *testing.T) {
	for depth := int16(DepthOffset); depth < DepthOffset+255; depth++ {
		stored := depthToStored(depth)
		if got := storedToDepth(stored); got != depth {
			t.Fatalf("depth %d: round trip gave %d", depth, got)
		}
	}
}

func TestEntrySizeIsTenBytes(t *testing.T) {
	var e Entry
	if n := unsafe.Sizeof(e); n != 10 {
		t.Fatalf("Entry size = %d, want 10", n)
	}
}

func TestClusterSizeIsThirtyTwoBytes(t *testing.T) {
	var c Cluster
	if n := unsafe.Sizeof(c); n != 32 {
		t.Fatalf("Cluster size = %d, want 32", n)
	}
}

func TestIsEmptyOnZeroValue(t *testing.T) {
	var e Entry
	if !isEmpty(&e) {
		t.Fatal("zero-value entry should be empty")
	}
	e.key16 = 1
	if isEmpty(&e) {
		t.Fatal("entry with non-zero key16 should not be empty")
	}
}
