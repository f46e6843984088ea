package orderbook

// SideIndex is one side of the book: a direct-mapped array with one
// PriceLevel slot per tick in [base - span*tick, base + span*tick].
// price -> slot is pure arithmetic, no hashing, no comparisons.
//
// best tracks the slot of the best active level (highest price for
// bids, lowest for asks), or -1 when the side is empty. It is updated
// incrementally: compare-and-improve on insert, and a bounded outward
// scan from the vacated slot only when the best level empties.
type SideIndex struct {
	side   Side
	levels []PriceLevel
	lo     int64 // price of slot 0
	tick   int64
	best   int
	arena  *arena

	restingQty    uint64
	restingOrders int
}

func newSideIndex(side Side, base, tick int64, span int, a *arena) *SideIndex {
	n := 2*span + 1
	s := &SideIndex{
		side:   side,
		levels: make([]PriceLevel, n),
		lo:     base - int64(span)*tick,
		tick:   tick,
		best:   -1,
		arena:  a,
	}
	for i := range s.levels {
		s.levels[i].reset()
	}
	return s
}

// slotFor maps a price to its level slot. False for prices outside the
// configured domain or off the tick grid; the book never clamps.
func (s *SideIndex) slotFor(price int64) (int, bool) {
	off := price - s.lo
	if off < 0 || off%s.tick != 0 {
		return 0, false
	}
	slot := int(off / s.tick)
	if slot >= len(s.levels) {
		return 0, false
	}
	return slot, true
}

func (s *SideIndex) priceAt(slot int) int64 {
	return s.lo + int64(slot)*s.tick
}

// betterSlot reports whether slot a outranks slot b on this side.
func (s *SideIndex) betterSlot(a, b int) bool {
	if s.side == Bid {
		return a > b
	}
	return a < b
}

// insert rests an order at its price level, activating the level and
// improving best as needed. The price must already be validated.
func (s *SideIndex) insert(o Order) (Handle, int) {
	slot, ok := s.slotFor(o.Price)
	if !ok {
		panic("orderbook: insert of unvalidated price")
	}

	idx := s.arena.alloc(o)
	lvl := &s.levels[slot]
	if !lvl.active() {
		lvl.Price = o.Price
	}
	lvl.enqueue(s.arena, idx.index())

	if s.best == -1 || s.betterSlot(slot, s.best) {
		s.best = slot
	}

	s.restingQty += o.Remaining
	s.restingOrders++
	return idx, slot
}

// remove unlinks a resting order (cancel or modify path) and releases
// its arena slot, returning a copy of the removed order.
func (s *SideIndex) remove(slot int, idx uint32) Order {
	lvl := &s.levels[slot]
	e := s.arena.at(idx)
	removed := e.order

	lvl.unlink(s.arena, idx)
	s.arena.release(idx)

	s.restingQty -= removed.Remaining
	s.restingOrders--

	if !lvl.active() {
		lvl.reset()
		if slot == s.best {
			s.rescanFrom(slot)
		}
	}
	return removed
}

// rescanFrom walks outward from a vacated best slot toward the far
// edge of the book, stopping at the first active level.
func (s *SideIndex) rescanFrom(slot int) {
	if s.side == Bid {
		for i := slot - 1; i >= 0; i-- {
			if s.levels[i].active() {
				s.best = i
				return
			}
		}
	} else {
		for i := slot + 1; i < len(s.levels); i++ {
			if s.levels[i].active() {
				s.best = i
				return
			}
		}
	}
	s.best = -1
}

func (s *SideIndex) peekBest() *PriceLevel {
	if s.best == -1 {
		return nil
	}
	return &s.levels[s.best]
}

func (s *SideIndex) bestPrice() (int64, bool) {
	if s.best == -1 {
		return 0, false
	}
	return s.levels[s.best].Price, true
}

// front returns the oldest order at the best level.
func (s *SideIndex) front() *entry {
	lvl := s.peekBest()
	if lvl == nil {
		return nil
	}
	return lvl.front(s.arena)
}

// fillFront reduces the front order of the best level by qty, keeping
// the level aggregate and side totals in the same step.
func (s *SideIndex) fillFront(qty uint64) {
	lvl := &s.levels[s.best]
	e := lvl.front(s.arena)
	e.order.Remaining -= qty
	lvl.TotalQty -= qty
	s.restingQty -= qty
}

// popFront drops the fully filled front order of the best level,
// deactivating the level and rescanning best if it emptied.
func (s *SideIndex) popFront() Order {
	slot := s.best
	lvl := &s.levels[slot]
	idx := lvl.popFront(s.arena)
	removed := s.arena.at(idx).order
	s.arena.release(idx)

	s.restingOrders--

	if !lvl.active() {
		lvl.reset()
		s.rescanFrom(slot)
	}
	return removed
}

// walk visits every resting order from best outward, FIFO within each
// level. Used by snapshots.
func (s *SideIndex) walk(visit func(o Order)) {
	if s.best == -1 {
		return
	}
	step := 1
	if s.side == Bid {
		step = -1
	}
	for i := s.best; i >= 0 && i < len(s.levels); i += step {
		lvl := &s.levels[i]
		if !lvl.active() {
			continue
		}
		for idx := lvl.head; idx != noIndex; idx = s.arena.at(uint32(idx)).next {
			visit(s.arena.at(uint32(idx)).order)
		}
	}
}

// levelsFromBest walks active levels outward from best, skipping empty
// slots, up to max entries. Used by depth queries.
func (s *SideIndex) levelsFromBest(max int) []DepthLevel {
	out := make([]DepthLevel, 0, max)
	if s.best == -1 || max <= 0 {
		return out
	}

	step := 1
	if s.side == Bid {
		step = -1
	}
	for i := s.best; i >= 0 && i < len(s.levels); i += step {
		if !s.levels[i].active() {
			continue
		}
		out = append(out, DepthLevel{Price: s.levels[i].Price, Qty: s.levels[i].TotalQty})
		if len(out) == max {
			break
		}
	}
	return out
}
