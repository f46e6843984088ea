package orderbook

import "testing"

func newTestSide(side Side) *SideIndex {
	return newSideIndex(side, 10_000, 1, 100, newArena(64))
}

func TestSlotForBounds(t *testing.T) {
	s := newTestSide(Bid)

	if _, ok := s.slotFor(9899); ok {
		t.Error("price below range should not map")
	}
	if _, ok := s.slotFor(10_101); ok {
		t.Error("price above range should not map")
	}

	slot, ok := s.slotFor(9900)
	if !ok || slot != 0 {
		t.Errorf("expected slot 0 for low edge, got %d ok=%v", slot, ok)
	}
	slot, ok = s.slotFor(10_100)
	if !ok || slot != 200 {
		t.Errorf("expected slot 200 for high edge, got %d ok=%v", slot, ok)
	}
	if s.priceAt(200) != 10_100 {
		t.Errorf("priceAt(200) = %d", s.priceAt(200))
	}
}

func TestBestMaintenanceOnInsert(t *testing.T) {
	bids := newTestSide(Bid)
	asks := newSideIndex(Ask, 10_000, 1, 100, bids.arena)

	bids.insert(Order{ID: 1, Price: 9950, Remaining: 1, Side: Bid})
	bids.insert(Order{ID: 2, Price: 9990, Remaining: 1, Side: Bid})
	bids.insert(Order{ID: 3, Price: 9960, Remaining: 1, Side: Bid})
	if p, _ := bids.bestPrice(); p != 9990 {
		t.Errorf("best bid = %d, want 9990", p)
	}

	asks.insert(Order{ID: 4, Price: 10_050, Remaining: 1, Side: Ask})
	asks.insert(Order{ID: 5, Price: 10_010, Remaining: 1, Side: Ask})
	asks.insert(Order{ID: 6, Price: 10_030, Remaining: 1, Side: Ask})
	if p, _ := asks.bestPrice(); p != 10_010 {
		t.Errorf("best ask = %d, want 10010", p)
	}
}

func TestBestRescanAfterBestEmpties(t *testing.T) {
	s := newTestSide(Bid)

	h1, slot1 := s.insert(Order{ID: 1, Price: 9990, Remaining: 5, Side: Bid})
	s.insert(Order{ID: 2, Price: 9950, Remaining: 5, Side: Bid})

	s.remove(slot1, h1.index())
	if p, _ := s.bestPrice(); p != 9950 {
		t.Errorf("best after rescan = %d, want 9950", p)
	}

	// Removing the last level empties the side.
	h2loc, _ := s.slotFor(9950)
	lvl := &s.levels[h2loc]
	s.remove(h2loc, uint32(lvl.head))
	if _, ok := s.bestPrice(); ok {
		t.Error("empty side should report no best")
	}
	if s.restingOrders != 0 || s.restingQty != 0 {
		t.Errorf("totals not zero: orders=%d qty=%d", s.restingOrders, s.restingQty)
	}
}

func TestLevelFIFOOrder(t *testing.T) {
	s := newTestSide(Ask)

	s.insert(Order{ID: 1, Price: 10_000, Remaining: 1, Side: Ask})
	s.insert(Order{ID: 2, Price: 10_000, Remaining: 1, Side: Ask})
	s.insert(Order{ID: 3, Price: 10_000, Remaining: 1, Side: Ask})

	for want := uint64(1); want <= 3; want++ {
		e := s.front()
		if e == nil || e.order.ID != want {
			t.Fatalf("front order = %v, want id %d", e, want)
		}
		s.popFront()
	}
	if s.peekBest() != nil {
		t.Error("level should be deactivated after last pop")
	}
}

func TestMidQueueUnlink(t *testing.T) {
	s := newTestSide(Bid)

	s.insert(Order{ID: 1, Price: 9990, Remaining: 2, Side: Bid})
	h2, slot := s.insert(Order{ID: 2, Price: 9990, Remaining: 3, Side: Bid})
	s.insert(Order{ID: 3, Price: 9990, Remaining: 4, Side: Bid})

	s.remove(slot, h2.index())

	lvl := s.peekBest()
	if lvl.OrderCount != 2 || lvl.TotalQty != 6 {
		t.Errorf("level after unlink: count=%d qty=%d", lvl.OrderCount, lvl.TotalQty)
	}
	if got := s.front().order.ID; got != 1 {
		t.Errorf("front = %d, want 1", got)
	}
	s.popFront()
	if got := s.front().order.ID; got != 3 {
		t.Errorf("front after pop = %d, want 3", got)
	}
}

func TestLevelsFromBestSkipsGaps(t *testing.T) {
	s := newTestSide(Ask)

	s.insert(Order{ID: 1, Price: 10_005, Remaining: 1, Side: Ask})
	s.insert(Order{ID: 2, Price: 10_050, Remaining: 2, Side: Ask})
	s.insert(Order{ID: 3, Price: 10_090, Remaining: 3, Side: Ask})

	lvls := s.levelsFromBest(2)
	if len(lvls) != 2 {
		t.Fatalf("got %d levels, want 2", len(lvls))
	}
	if lvls[0].Price != 10_005 || lvls[1].Price != 10_050 {
		t.Errorf("levels = %+v", lvls)
	}
}

func TestArenaHandleGeneration(t *testing.T) {
	a := newArena(2)

	h := a.alloc(Order{ID: 1})
	if a.resolve(h) == nil {
		t.Fatal("fresh handle should resolve")
	}

	a.release(h.index())
	if a.resolve(h) != nil {
		t.Error("released handle should be stale")
	}

	// Reuse of the slot must not resurrect the old handle.
	h2 := a.alloc(Order{ID: 2})
	if h2.index() != h.index() {
		t.Fatalf("expected slot reuse, got %d vs %d", h2.index(), h.index())
	}
	if a.resolve(h) != nil {
		t.Error("stale handle resolves after slot reuse")
	}
	if e := a.resolve(h2); e == nil || e.order.ID != 2 {
		t.Error("new handle should resolve to new order")
	}
}

func TestArenaGrowth(t *testing.T) {
	a := newArena(2)

	handles := make([]Handle, 0, 10)
	for i := 0; i < 10; i++ {
		handles = append(handles, a.alloc(Order{ID: uint64(i)}))
	}
	if a.inUse() != 10 {
		t.Fatalf("inUse = %d, want 10", a.inUse())
	}
	for i, h := range handles {
		e := a.resolve(h)
		if e == nil || e.order.ID != uint64(i) {
			t.Fatalf("handle %d lost after growth", i)
		}
	}
}
