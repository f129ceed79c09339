package jobring

import "testing"

func TestPushPopRoundTrip(t *testing.T) {
	r := New(8)
	job := Job{Key: 42, Depth: 3}
	if !r.Push(job) {
		t.Fatal("push into empty ring should succeed")
	}
	got, ok := r.Pop()
	if !ok {
		t.Fatal("pop after push should succeed")
	}
	if got != job {
		t.Fatalf("got %+v, want %+v", got, job)
	}
}

func TestPopOnEmptyRingFails(t *testing.T) {
	r := New(4)
	if _, ok := r.Pop(); ok {
		t.Fatal("pop on empty ring should fail")
	}
}

func TestPushFailsWhenFull(t *testing.T) {
	r := New(2)
	if !r.Push(Job{Key: 1}) {
		t.Fatal("first push should succeed")
	}
	if !r.Push(Job{Key: 2}) {
		t.Fatal("second push should succeed")
	}
	if r.Push(Job{Key: 3}) {
		t.Fatal("third push into size-2 ring should fail")
	}
}

func TestNewPanicsOnNonPowerOfTwo(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("New(3) should panic")
		}
	}()
	New(3)
}
