package orderbook

// PriceLevel is a FIFO queue at a single price. Orders link through
// arena indexes; insertion order is arrival order is priority order.
// TotalQty always equals the sum of Remaining over the queued orders.
type PriceLevel struct {
	Price      int64
	TotalQty   uint64
	OrderCount int

	head int32
	tail int32
}

func (p *PriceLevel) reset() {
	p.Price = 0
	p.TotalQty = 0
	p.OrderCount = 0
	p.head = noIndex
	p.tail = noIndex
}

func (p *PriceLevel) active() bool {
	return p.OrderCount > 0
}

// enqueue appends an already-allocated arena slot at the back.
func (p *PriceLevel) enqueue(a *arena, idx uint32) {
	e := a.at(idx)
	e.next = noIndex
	e.prev = p.tail

	if p.tail == noIndex {
		p.head = int32(idx)
	} else {
		a.at(uint32(p.tail)).next = int32(idx)
	}
	p.tail = int32(idx)

	p.TotalQty += e.order.Remaining
	p.OrderCount++
}

// unlink removes an arbitrary queued slot, used for cancels. The
// caller releases the arena slot afterwards.
func (p *PriceLevel) unlink(a *arena, idx uint32) {
	e := a.at(idx)

	if e.prev != noIndex {
		a.at(uint32(e.prev)).next = e.next
	} else {
		p.head = e.next
	}
	if e.next != noIndex {
		a.at(uint32(e.next)).prev = e.prev
	} else {
		p.tail = e.prev
	}

	p.TotalQty -= e.order.Remaining
	p.OrderCount--
}

// front returns the oldest order at this level, nil when empty.
func (p *PriceLevel) front(a *arena) *entry {
	if p.head == noIndex {
		return nil
	}
	return a.at(uint32(p.head))
}

func (p *PriceLevel) popFront(a *arena) uint32 {
	idx := uint32(p.head)
	p.unlink(a, idx)
	return idx
}
