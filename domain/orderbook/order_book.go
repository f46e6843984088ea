package orderbook

// Config fixes the book's direct-mapped price domain. PriceRange is
// the number of ticks covered on each side of BasePrice; limit prices
// outside [BasePrice-PriceRange*TickSize, BasePrice+PriceRange*TickSize]
// are rejected at admission.
type Config struct {
	Symbol     string
	BasePrice  int64
	TickSize   int64
	PriceRange int64
	Capacity   int
}

const (
	DefaultBasePrice  = 10_000
	DefaultTickSize   = 1
	DefaultPriceRange = 1024
	DefaultCapacity   = 1024
)

// Fill records one execution: the resting (maker) order matched
// against the incoming (taker) order at the maker's price.
type Fill struct {
	MakerID   uint64
	TakerID   uint64
	Price     int64
	Qty       uint64
	TakerSide Side
}

// AddResult reports the outcome of admitting one order.
type AddResult struct {
	OrderID   uint64
	SeqID     uint64
	Status    Status
	Remaining uint64
	Fills     []Fill
}

type DepthLevel struct {
	Price int64
	Qty   uint64
}

type Summary struct {
	Symbol  string
	BestBid int64
	BestAsk int64
	HasBid  bool
	HasAsk  bool
	Spread  int64

	BidOrders int
	AskOrders int
	BidQty    uint64
	AskQty    uint64

	OrdersProcessed uint64
	QtyMatched      uint64
}

type OrderBook struct {
	symbol string
	bids   *SideIndex
	asks   *SideIndex
	loc    *locator
	pool   *arena

	nextSeq         uint64
	ordersProcessed uint64
	qtyMatched      uint64
}

func NewOrderBook(cfg Config) *OrderBook {
	if cfg.BasePrice == 0 {
		cfg.BasePrice = DefaultBasePrice
	}
	if cfg.TickSize == 0 {
		cfg.TickSize = DefaultTickSize
	}
	if cfg.PriceRange == 0 {
		cfg.PriceRange = DefaultPriceRange
	}
	if cfg.Capacity == 0 {
		cfg.Capacity = DefaultCapacity
	}

	pool := newArena(cfg.Capacity)
	return &OrderBook{
		symbol: cfg.Symbol,
		bids:   newSideIndex(Bid, cfg.BasePrice, cfg.TickSize, int(cfg.PriceRange), pool),
		asks:   newSideIndex(Ask, cfg.BasePrice, cfg.TickSize, int(cfg.PriceRange), pool),
		loc:    newLocator(cfg.Capacity),
		pool:   pool,
	}
}

func (b *OrderBook) Symbol() string {
	return b.symbol
}

func (b *OrderBook) side(s Side) *SideIndex {
	if s == Bid {
		return b.bids
	}
	return b.asks
}

// AddOrder validates, matches, and rests or discards the remainder.
// The matching loop runs to exhaustion before control returns, so the
// book is never observably crossed.
func (b *OrderBook) AddOrder(o Order) (AddResult, error) {
	if o.Qty == 0 {
		return AddResult{}, ErrInvalidQuantity
	}
	if b.loc.has(o.ID) {
		return AddResult{}, ErrDuplicateOrderID
	}
	if o.Type == Limit {
		if _, ok := b.side(o.Side).slotFor(o.Price); !ok {
			return AddResult{}, ErrPriceOutOfRange
		}
	}

	b.nextSeq++
	o.SeqID = b.nextSeq
	o.Remaining = o.Qty
	o.Status = New
	b.ordersProcessed++

	res := AddResult{OrderID: o.ID, SeqID: o.SeqID}
	b.match(&o, &res)

	switch {
	case o.Remaining == 0:
		o.Status = Filled
	case o.Type == Limit:
		if len(res.Fills) > 0 {
			o.Status = PartiallyFilled
		}
		h, slot := b.side(o.Side).insert(o)
		b.loc.add(o.ID, location{side: o.Side, slot: slot, handle: h})
	default:
		// Markets never wait: the remainder is discarded and the
		// terminal status tells the caller it was not satisfied.
		o.Status = Cancelled
	}

	res.Status = o.Status
	res.Remaining = o.Remaining
	return res, nil
}

// match fills the incoming order against the opposite side, best level
// first, strictly FIFO within a level.
func (b *OrderBook) match(o *Order, res *AddResult) {
	opp := b.asks
	if o.Side == Ask {
		opp = b.bids
	}

	for o.Remaining > 0 {
		lvl := opp.peekBest()
		if lvl == nil {
			break
		}
		if o.Type != Market && !crossable(o.Side, o.Price, lvl.Price) {
			break
		}

		resting := opp.front()
		fill := min(o.Remaining, resting.order.Remaining)

		opp.fillFront(fill)
		o.Remaining -= fill
		b.qtyMatched += fill

		res.Fills = append(res.Fills, Fill{
			MakerID:   resting.order.ID,
			TakerID:   o.ID,
			Price:     lvl.Price,
			Qty:       fill,
			TakerSide: o.Side,
		})

		if resting.order.Remaining == 0 {
			resting.order.Status = Filled
			b.loc.remove(resting.order.ID)
			opp.popFront()
		} else {
			resting.order.Status = PartiallyFilled
		}
	}
}

func crossable(taker Side, limit, oppBest int64) bool {
	if taker == Bid {
		return oppBest <= limit
	}
	return oppBest >= limit
}

// CancelOrder removes a resting order in O(1) via the locator.
func (b *OrderBook) CancelOrder(id uint64) error {
	loc, ok := b.loc.get(id)
	if !ok {
		return ErrOrderNotFound
	}
	s := b.side(loc.side)
	if s.arena.resolve(loc.handle) == nil {
		return ErrOrderNotFound
	}

	s.remove(loc.slot, loc.handle.index())
	b.loc.remove(id)
	return nil
}

// ModifyOrder adjusts a resting order. A pure quantity decrease edits
// in place and keeps queue position; a price change or quantity
// increase forfeits time priority and re-admits the order, re-running
// the match so a price improvement cannot leave the book crossed.
func (b *OrderBook) ModifyOrder(id uint64, newPrice *int64, newQty *uint64) (AddResult, error) {
	loc, ok := b.loc.get(id)
	if !ok {
		return AddResult{}, ErrOrderNotFound
	}
	s := b.side(loc.side)
	e := s.arena.resolve(loc.handle)
	if e == nil {
		return AddResult{}, ErrOrderNotFound
	}
	cur := e.order

	price := cur.Price
	if newPrice != nil {
		price = *newPrice
	}
	qty := cur.Remaining
	if newQty != nil {
		qty = *newQty
	}

	if qty == 0 {
		return AddResult{}, ErrInvalidQuantity
	}
	if price != cur.Price {
		if _, ok := b.side(cur.Side).slotFor(price); !ok {
			return AddResult{}, ErrPriceOutOfRange
		}
	}

	if price == cur.Price && qty <= cur.Remaining {
		delta := cur.Remaining - qty
		if delta > 0 {
			e.order.Remaining -= delta
			s.levels[loc.slot].TotalQty -= delta
			s.restingQty -= delta
		}
		return AddResult{
			OrderID:   id,
			SeqID:     cur.SeqID,
			Status:    e.order.Status,
			Remaining: e.order.Remaining,
		}, nil
	}

	s.remove(loc.slot, loc.handle.index())
	b.loc.remove(id)

	return b.AddOrder(Order{
		ID:    id,
		Price: price,
		Qty:   qty,
		Side:  cur.Side,
		Type:  Limit,
	})
}

// MarketDepth returns up to max aggregated levels per side, ordered
// from best outward.
func (b *OrderBook) MarketDepth(max int) (bids, asks []DepthLevel) {
	return b.bids.levelsFromBest(max), b.asks.levelsFromBest(max)
}

func (b *OrderBook) BestBid() (int64, bool) {
	return b.bids.bestPrice()
}

func (b *OrderBook) BestAsk() (int64, bool) {
	return b.asks.bestPrice()
}

// MidPrice is the midpoint of the best bid and ask. False while
// either side is empty.
func (b *OrderBook) MidPrice() (float64, bool) {
	bid, okB := b.bids.bestPrice()
	ask, okA := b.asks.bestPrice()
	if !okB || !okA {
		return 0, false
	}
	return (float64(bid) + float64(ask)) / 2, true
}

func (b *OrderBook) IsCrossed() bool {
	bid, okB := b.bids.bestPrice()
	ask, okA := b.asks.bestPrice()
	return okB && okA && bid >= ask
}

// RestingOrders is the number of orders currently resting on both sides.
func (b *OrderBook) RestingOrders() int {
	return b.loc.len()
}

// Summary is O(1): every total is a running counter maintained by
// insert, remove, and fill, never recomputed by scanning.
func (b *OrderBook) Summary() Summary {
	s := Summary{
		Symbol:          b.symbol,
		BidOrders:       b.bids.restingOrders,
		AskOrders:       b.asks.restingOrders,
		BidQty:          b.bids.restingQty,
		AskQty:          b.asks.restingQty,
		OrdersProcessed: b.ordersProcessed,
		QtyMatched:      b.qtyMatched,
	}
	if bid, ok := b.bids.bestPrice(); ok {
		s.BestBid, s.HasBid = bid, true
	}
	if ask, ok := b.asks.bestPrice(); ok {
		s.BestAsk, s.HasAsk = ask, true
	}
	if s.HasBid && s.HasAsk {
		s.Spread = s.BestAsk - s.BestBid
	}
	return s
}

// WalkResting visits every resting order, bids best to worst then asks
// best to worst, FIFO within each level. Used by snapshots.
func (b *OrderBook) WalkResting(visit func(o Order)) {
	b.bids.walk(visit)
	b.asks.walk(visit)
}
