package orderbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBook() *OrderBook {
	return NewOrderBook(Config{
		Symbol:     "BTC-USD",
		BasePrice:  10_000,
		TickSize:   1,
		PriceRange: 1024,
		Capacity:   1024,
	})
}

func limit(id uint64, side Side, price int64, qty uint64) Order {
	return Order{ID: id, Side: side, Type: Limit, Price: price, Qty: qty}
}

func market(id uint64, side Side, qty uint64) Order {
	return Order{ID: id, Side: side, Type: Market, Qty: qty}
}

func TestRestWithoutCross(t *testing.T) {
	b := newTestBook()

	res, err := b.AddOrder(limit(1, Bid, 9900, 10))
	require.NoError(t, err)
	assert.Len(t, res.Fills, 0)
	assert.Equal(t, New, res.Status)

	res, err = b.AddOrder(limit(2, Ask, 10_000, 5))
	require.NoError(t, err)
	assert.Len(t, res.Fills, 0)

	bids, asks := b.MarketDepth(10)
	require.Len(t, bids, 1)
	require.Len(t, asks, 1)
	assert.Equal(t, DepthLevel{Price: 9900, Qty: 10}, bids[0])
	assert.Equal(t, DepthLevel{Price: 10_000, Qty: 5}, asks[0])

	s := b.Summary()
	assert.Equal(t, int64(9900), s.BestBid)
	assert.Equal(t, int64(10_000), s.BestAsk)
	assert.Equal(t, int64(100), s.Spread)
}

func TestCrossFillsAtRestingPrice(t *testing.T) {
	b := newTestBook()

	_, err := b.AddOrder(limit(1, Bid, 10_000, 10))
	require.NoError(t, err)

	res, err := b.AddOrder(limit(2, Ask, 9900, 4))
	require.NoError(t, err)
	require.Len(t, res.Fills, 1)
	assert.Equal(t, uint64(1), res.Fills[0].MakerID)
	assert.Equal(t, uint64(2), res.Fills[0].TakerID)
	assert.Equal(t, int64(10_000), res.Fills[0].Price)
	assert.Equal(t, uint64(4), res.Fills[0].Qty)
	assert.Equal(t, Filled, res.Status)

	bids, asks := b.MarketDepth(10)
	require.Len(t, bids, 1)
	assert.Equal(t, DepthLevel{Price: 10_000, Qty: 6}, bids[0])
	assert.Len(t, asks, 0)
}

func TestMarketOrderDiscardsRemainder(t *testing.T) {
	b := newTestBook()

	_, err := b.AddOrder(limit(1, Ask, 10_100, 5))
	require.NoError(t, err)

	res, err := b.AddOrder(market(2, Bid, 8))
	require.NoError(t, err)
	require.Len(t, res.Fills, 1)
	assert.Equal(t, uint64(5), res.Fills[0].Qty)
	assert.Equal(t, int64(10_100), res.Fills[0].Price)

	// Remainder of 3 is never rested; terminal status reports it.
	assert.Equal(t, Cancelled, res.Status)
	assert.Equal(t, uint64(3), res.Remaining)

	bids, asks := b.MarketDepth(10)
	assert.Len(t, bids, 0)
	assert.Len(t, asks, 0)
}

func TestCancelIsIdempotentlyNotFound(t *testing.T) {
	b := newTestBook()

	_, err := b.AddOrder(limit(1, Bid, 9900, 10))
	require.NoError(t, err)

	require.NoError(t, b.CancelOrder(1))
	assert.ErrorIs(t, b.CancelOrder(1), ErrOrderNotFound)

	bids, _ := b.MarketDepth(10)
	assert.Len(t, bids, 0)
	assert.Equal(t, 0, b.RestingOrders())
}

func TestCancelFilledOrderNotFound(t *testing.T) {
	b := newTestBook()

	_, err := b.AddOrder(limit(1, Bid, 10_000, 5))
	require.NoError(t, err)
	_, err = b.AddOrder(limit(2, Ask, 10_000, 5))
	require.NoError(t, err)

	assert.ErrorIs(t, b.CancelOrder(1), ErrOrderNotFound)
	assert.ErrorIs(t, b.CancelOrder(2), ErrOrderNotFound)
}

func TestPriceOutOfRangeLeavesBookUntouched(t *testing.T) {
	b := newTestBook()

	_, err := b.AddOrder(limit(1, Bid, 9900, 10))
	require.NoError(t, err)
	before := b.Summary()

	_, err = b.AddOrder(limit(2, Bid, 50_000, 10))
	assert.ErrorIs(t, err, ErrPriceOutOfRange)

	_, err = b.AddOrder(limit(3, Ask, -5, 10))
	assert.ErrorIs(t, err, ErrPriceOutOfRange)

	assert.Equal(t, before, b.Summary())
}

func TestOffTickPriceRejected(t *testing.T) {
	b := NewOrderBook(Config{BasePrice: 10_000, TickSize: 5, PriceRange: 100})

	_, err := b.AddOrder(limit(1, Bid, 9_998, 10))
	assert.ErrorIs(t, err, ErrPriceOutOfRange)

	_, err = b.AddOrder(limit(1, Bid, 9_995, 10))
	assert.NoError(t, err)
}

func TestInvalidQuantityRejected(t *testing.T) {
	b := newTestBook()

	_, err := b.AddOrder(limit(1, Bid, 9900, 0))
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = b.AddOrder(market(2, Ask, 0))
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestDuplicateOrderIDRejected(t *testing.T) {
	b := newTestBook()

	_, err := b.AddOrder(limit(1, Bid, 9900, 10))
	require.NoError(t, err)

	_, err = b.AddOrder(limit(1, Bid, 9950, 20))
	assert.ErrorIs(t, err, ErrDuplicateOrderID)

	// Once the original is gone the id may be reused.
	require.NoError(t, b.CancelOrder(1))
	_, err = b.AddOrder(limit(1, Bid, 9950, 20))
	assert.NoError(t, err)
}

func TestFIFOWithinLevel(t *testing.T) {
	b := newTestBook()

	_, err := b.AddOrder(limit(1, Bid, 9900, 10))
	require.NoError(t, err)
	_, err = b.AddOrder(limit(2, Bid, 9900, 20))
	require.NoError(t, err)

	// Unrelated activity at other prices must not disturb FIFO.
	_, err = b.AddOrder(limit(3, Bid, 9800, 5))
	require.NoError(t, err)
	require.NoError(t, b.CancelOrder(3))

	res, err := b.AddOrder(limit(4, Ask, 9900, 15))
	require.NoError(t, err)
	require.Len(t, res.Fills, 2)
	assert.Equal(t, uint64(1), res.Fills[0].MakerID)
	assert.Equal(t, uint64(10), res.Fills[0].Qty)
	assert.Equal(t, uint64(2), res.Fills[1].MakerID)
	assert.Equal(t, uint64(5), res.Fills[1].Qty)

	bids, _ := b.MarketDepth(10)
	require.Len(t, bids, 1)
	assert.Equal(t, DepthLevel{Price: 9900, Qty: 15}, bids[0])
}

func TestPricePriorityAcrossLevels(t *testing.T) {
	b := newTestBook()

	_, err := b.AddOrder(limit(1, Bid, 9900, 10))
	require.NoError(t, err)
	_, err = b.AddOrder(limit(2, Bid, 9920, 10))
	require.NoError(t, err)

	res, err := b.AddOrder(limit(3, Ask, 9900, 15))
	require.NoError(t, err)
	require.Len(t, res.Fills, 2)

	// Best price is exhausted before the next level is touched.
	assert.Equal(t, uint64(2), res.Fills[0].MakerID)
	assert.Equal(t, int64(9920), res.Fills[0].Price)
	assert.Equal(t, uint64(10), res.Fills[0].Qty)
	assert.Equal(t, uint64(1), res.Fills[1].MakerID)
	assert.Equal(t, int64(9900), res.Fills[1].Price)
	assert.Equal(t, uint64(5), res.Fills[1].Qty)
}

func TestNeverCrossedAfterAdd(t *testing.T) {
	b := newTestBook()

	orders := []Order{
		limit(1, Bid, 9950, 30),
		limit(2, Ask, 10_050, 15),
		limit(3, Bid, 10_060, 40), // crosses the ask
		limit(4, Ask, 9_940, 80),  // crosses whatever bid is left
		limit(5, Bid, 9_990, 25),
	}
	for _, o := range orders {
		_, err := b.AddOrder(o)
		require.NoError(t, err)
		assert.False(t, b.IsCrossed(), "book crossed after order %d", o.ID)
	}
}

func TestQuantityConservation(t *testing.T) {
	b := newTestBook()

	var admitted, filled uint64
	add := func(o Order) {
		res, err := b.AddOrder(o)
		require.NoError(t, err)
		if o.Type == Limit {
			admitted += o.Qty
		} else {
			// Market remainders are discarded, count only the fills.
			admitted += o.Qty - res.Remaining
		}
		for _, f := range res.Fills {
			filled += 2 * f.Qty // consumes taker and maker quantity
		}
	}

	add(limit(1, Bid, 9900, 100))
	add(limit(2, Bid, 9950, 50))
	add(limit(3, Ask, 10_050, 70))
	add(limit(4, Ask, 9940, 60))
	add(market(5, Bid, 30))
	add(limit(6, Bid, 10_000, 45))

	s := b.Summary()
	assert.Equal(t, admitted-filled, s.BidQty+s.AskQty)
}

func TestDepthMatchesRestingQuantities(t *testing.T) {
	b := newTestBook()

	_, _ = b.AddOrder(limit(1, Bid, 9900, 10))
	_, _ = b.AddOrder(limit(2, Bid, 9900, 7))
	_, _ = b.AddOrder(limit(3, Bid, 9850, 3))
	_, _ = b.AddOrder(limit(4, Ask, 10_100, 9))

	resting := map[int64]uint64{}
	b.WalkResting(func(o Order) {
		resting[o.Price] += o.Remaining
	})

	bids, asks := b.MarketDepth(10)
	for _, lvl := range append(bids, asks...) {
		assert.Equal(t, resting[lvl.Price], lvl.Qty, "price %d", lvl.Price)
	}
	require.Len(t, bids, 2)
	assert.Equal(t, DepthLevel{Price: 9900, Qty: 17}, bids[0])
	assert.Equal(t, DepthLevel{Price: 9850, Qty: 3}, bids[1])
}

func TestModifyQuantityDecreaseKeepsPosition(t *testing.T) {
	b := newTestBook()

	_, _ = b.AddOrder(limit(1, Bid, 9900, 10))
	_, _ = b.AddOrder(limit(2, Bid, 9900, 10))

	q := uint64(4)
	_, err := b.ModifyOrder(1, nil, &q)
	require.NoError(t, err)

	res, err := b.AddOrder(limit(3, Ask, 9900, 6))
	require.NoError(t, err)
	require.Len(t, res.Fills, 2)
	// id=1 kept its place at the front despite the modify.
	assert.Equal(t, uint64(1), res.Fills[0].MakerID)
	assert.Equal(t, uint64(4), res.Fills[0].Qty)
	assert.Equal(t, uint64(2), res.Fills[1].MakerID)
}

func TestModifyQuantityIncreaseForfeitsPosition(t *testing.T) {
	b := newTestBook()

	_, _ = b.AddOrder(limit(1, Bid, 9900, 10))
	_, _ = b.AddOrder(limit(2, Bid, 9900, 10))

	q := uint64(12)
	_, err := b.ModifyOrder(1, nil, &q)
	require.NoError(t, err)

	res, err := b.AddOrder(limit(3, Ask, 9900, 10))
	require.NoError(t, err)
	require.Len(t, res.Fills, 1)
	assert.Equal(t, uint64(2), res.Fills[0].MakerID)
}

func TestModifyPriceCanCross(t *testing.T) {
	b := newTestBook()

	_, _ = b.AddOrder(limit(1, Bid, 9900, 10))
	_, _ = b.AddOrder(limit(2, Ask, 10_000, 10))

	p := int64(10_000)
	res, err := b.ModifyOrder(1, &p, nil)
	require.NoError(t, err)
	require.Len(t, res.Fills, 1)
	assert.Equal(t, uint64(2), res.Fills[0].MakerID)
	assert.Equal(t, uint64(1), res.Fills[0].TakerID)
	assert.False(t, b.IsCrossed())
}

func TestModifyNotFound(t *testing.T) {
	b := newTestBook()

	q := uint64(5)
	_, err := b.ModifyOrder(42, nil, &q)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestModifyRejectsBadInputsWithoutMutation(t *testing.T) {
	b := newTestBook()
	_, _ = b.AddOrder(limit(1, Bid, 9900, 10))
	before := b.Summary()

	var zero uint64
	_, err := b.ModifyOrder(1, nil, &zero)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	far := int64(999_999)
	_, err = b.ModifyOrder(1, &far, nil)
	assert.ErrorIs(t, err, ErrPriceOutOfRange)

	assert.Equal(t, before, b.Summary())
}

func TestMarketOrderOnEmptyBook(t *testing.T) {
	b := newTestBook()

	res, err := b.AddOrder(market(1, Bid, 10))
	require.NoError(t, err)
	assert.Len(t, res.Fills, 0)
	assert.Equal(t, Cancelled, res.Status)
	assert.Equal(t, uint64(10), res.Remaining)
	assert.Equal(t, 0, b.RestingOrders())
}

func TestSelfMatchPermitted(t *testing.T) {
	b := newTestBook()

	// Same logical owner on both sides is not this layer's concern.
	_, _ = b.AddOrder(limit(1, Bid, 10_000, 5))
	res, err := b.AddOrder(limit(2, Ask, 10_000, 5))
	require.NoError(t, err)
	assert.Len(t, res.Fills, 1)
}

func TestSummaryCounters(t *testing.T) {
	b := newTestBook()

	_, _ = b.AddOrder(limit(1, Bid, 9900, 10))
	_, _ = b.AddOrder(limit(2, Bid, 9950, 20))
	_, _ = b.AddOrder(limit(3, Ask, 9950, 5))

	s := b.Summary()
	assert.Equal(t, 2, s.BidOrders)
	assert.Equal(t, 0, s.AskOrders)
	assert.Equal(t, uint64(25), s.BidQty)
	assert.Equal(t, uint64(0), s.AskQty)
	assert.Equal(t, uint64(3), s.OrdersProcessed)
	assert.Equal(t, uint64(5), s.QtyMatched)
}

func TestMidPrice(t *testing.T) {
	b := newTestBook()

	_, ok := b.MidPrice()
	assert.False(t, ok, "empty book has no mid")

	_, _ = b.AddOrder(limit(1, Bid, 9900, 10))
	_, ok = b.MidPrice()
	assert.False(t, ok, "one-sided book has no mid")

	_, _ = b.AddOrder(limit(2, Ask, 10_001, 5))
	mid, ok := b.MidPrice()
	require.True(t, ok)
	assert.Equal(t, 9950.5, mid)
}
