// Package jobring is a lock-free single-producer/single-consumer ring
// buffer of fixed-size Jobs, used by the benchmark harness to hand
// synthetic probe/save work from a generator goroutine to pinned worker
// goroutines without any shared lock. The layout and sequence-number
// protocol mirror the table's own probe/save hand-off discipline: no
// atomics on the payload, only on the slot's availability flag.
package jobring

import "sync/atomic"

// Job is one unit of synthetic search work: a key to probe or save
// against the table, plus the depth a save would record.
type Job struct {
	Key   uint64
	Depth int16
}

type slot struct {
	seq uint64
	job Job
}

// Ring is a fixed-capacity circular buffer dedicated to one producer and
// one consumer. head and tail are isolated on separate cache lines to
// avoid false sharing between the two sides.
type Ring struct {
	_    [64]byte
	head uint64
	_    [64]byte
	tail uint64
	_    [64]byte
	mask uint64
	buf  []slot
}

// New allocates a ring whose size must be a power of two.
func New(size int) *Ring {
	if size <= 0 || size&(size-1) != 0 {
		panic("jobring: size must be >0 and a power of two")
	}
	r := &Ring{
		mask: uint64(size - 1),
		buf:  make([]slot, size),
	}
	for i := range r.buf {
		r.buf[i].seq = uint64(i)
	}
	return r
}

// Push enqueues job, returning false if the buffer is full.
func (r *Ring) Push(job Job) bool {
	t := r.tail
	s := &r.buf[t&r.mask]
	if atomic.LoadUint64(&s.seq) != t {
		return false
	}
	s.job = job
	atomic.StoreUint64(&s.seq, t+1)
	r.tail = t + 1
	return true
}

// Pop dequeues one job, or ok=false if the buffer is empty.
func (r *Ring) Pop() (job Job, ok bool) {
	h := r.head
	s := &r.buf[h&r.mask]
	if atomic.LoadUint64(&s.seq) != h+1 {
		return Job{}, false
	}
	job = s.job
	atomic.StoreUint64(&s.seq, h+uint64(len(r.buf)))
	r.head = h + 1
	return job, true
}

// PopWait busy-spins until a job becomes available.
func (r *Ring) PopWait() Job {
	for {
		if job, ok := r.Pop(); ok {
			return job
		}
	}
}
