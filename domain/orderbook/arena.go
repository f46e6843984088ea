package orderbook

// Handle is a stable, generation-checked reference to a resting order.
// The low 32 bits are the arena slot index, the high 32 bits the slot
// generation at allocation time. A stale handle (slot since reused)
// fails to resolve instead of aliasing another order.
type Handle uint64

const noIndex int32 = -1

func makeHandle(idx uint32, gen uint32) Handle {
	return Handle(uint64(gen)<<32 | uint64(idx))
}

func (h Handle) index() uint32 {
	return uint32(h)
}

func (h Handle) generation() uint32 {
	return uint32(h >> 32)
}

// entry is one arena slot. next/prev link orders queued at the same
// price level, by index rather than pointer so the arena can grow.
type entry struct {
	order Order
	gen   uint32
	live  bool
	next  int32
	prev  int32
}

// arena owns the storage for every resting order in the book. Slots
// are recycled through a free list; the generation counter bumps on
// release so old handles die with the order.
type arena struct {
	entries []entry
	free    []uint32
}

func newArena(capacity int) *arena {
	if capacity < 1 {
		capacity = 1
	}
	a := &arena{
		entries: make([]entry, capacity),
		free:    make([]uint32, 0, capacity),
	}
	for i := capacity - 1; i >= 0; i-- {
		a.free = append(a.free, uint32(i))
	}
	return a
}

func (a *arena) alloc(o Order) Handle {
	if len(a.free) == 0 {
		a.grow()
	}
	idx := a.free[len(a.free)-1]
	a.free = a.free[:len(a.free)-1]

	e := &a.entries[idx]
	e.order = o
	e.live = true
	e.next = noIndex
	e.prev = noIndex
	return makeHandle(idx, e.gen)
}

func (a *arena) grow() {
	old := len(a.entries)
	a.entries = append(a.entries, make([]entry, old)...)
	for i := 2*old - 1; i >= old; i-- {
		a.free = append(a.free, uint32(i))
	}
}

func (a *arena) release(idx uint32) {
	e := &a.entries[idx]
	e.live = false
	e.gen++
	e.next = noIndex
	e.prev = noIndex
	a.free = append(a.free, idx)
}

func (a *arena) at(idx uint32) *entry {
	return &a.entries[idx]
}

// resolve returns the slot for a handle, or nil if the handle is stale.
func (a *arena) resolve(h Handle) *entry {
	idx := h.index()
	if idx >= uint32(len(a.entries)) {
		return nil
	}
	e := &a.entries[idx]
	if !e.live || e.gen != h.generation() {
		return nil
	}
	return e
}

func (a *arena) inUse() int {
	return len(a.entries) - len(a.free)
}
