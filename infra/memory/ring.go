package memory

import "sync/atomic"

// Ring is a lock-free SPSC ring buffer. One producer (the order
// service) enqueues, one consumer (the broadcaster) dequeues.
type Ring[T any] struct {
	head  uint64
	_pad1 [56]byte
	tail  uint64
	_pad2 [56]byte
	buf   []T
	zero  T
	mask  uint64
}

func NewRing[T any](size uint64) *Ring[T] {
	if size&(size-1) != 0 {
		panic("memory.Ring size must be power of two")
	}
	return &Ring[T]{
		buf:  make([]T, size),
		mask: size - 1,
	}
}

func (r *Ring[T]) Enqueue(v T) bool {
	h := r.head
	t := atomic.LoadUint64(&r.tail)
	if h-t == uint64(len(r.buf)) {
		return false
	}
	r.buf[h&r.mask] = v
	atomic.StoreUint64(&r.head, h+1)
	return true
}

func (r *Ring[T]) Dequeue() (T, bool) {
	t := r.tail
	h := atomic.LoadUint64(&r.head)
	if t == h {
		return r.zero, false
	}
	v := r.buf[t&r.mask]
	r.buf[t&r.mask] = r.zero
	atomic.StoreUint64(&r.tail, t+1)
	return v, true
}
