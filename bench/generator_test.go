package bench

import (
	"testing"

	"tycho/domain/orderbook"
)

func TestGeneratorDeterministic(t *testing.T) {
	a := NewGenerator(7, DefaultMix())
	b := NewGenerator(7, DefaultMix())

	for i := 0; i < 1000; i++ {
		opA, opB := a.Next(), b.Next()
		if opA != opB {
			t.Fatalf("op %d diverged: %+v vs %+v", i, opA, opB)
		}
	}
}

func TestGeneratorPricesInRange(t *testing.T) {
	mix := DefaultMix()
	g := NewGenerator(1, mix)

	for i := 0; i < 10_000; i++ {
		op := g.Next()
		if op.Cancel || op.Order.Type == orderbook.Market {
			continue
		}
		lo := mix.BasePrice - mix.TickSpread
		hi := mix.BasePrice + mix.TickSpread
		if op.Order.Price < lo || op.Order.Price > hi {
			t.Fatalf("price %d outside [%d, %d]", op.Order.Price, lo, hi)
		}
		if op.Order.Qty == 0 || op.Order.Qty > mix.MaxQty {
			t.Fatalf("qty %d outside (0, %d]", op.Order.Qty, mix.MaxQty)
		}
	}
}

func TestRunLeavesBookConsistent(t *testing.T) {
	book := orderbook.NewOrderBook(orderbook.Config{
		Symbol:     "BENCH",
		BasePrice:  10_000,
		PriceRange: 1024,
	})
	res := Run(book, NewGenerator(42, DefaultMix()), 50_000)

	if res.Ops != 50_000 {
		t.Fatalf("ops = %d", res.Ops)
	}
	if res.Rejected != 0 {
		t.Fatalf("rejected = %d, generator must stay in range", res.Rejected)
	}
	if book.IsCrossed() {
		t.Fatal("book crossed after run")
	}
	sum := book.Summary()
	if sum.OrdersProcessed == 0 || sum.QtyMatched == 0 {
		t.Fatalf("summary = %+v, expected traffic", sum)
	}
}

func TestRunZeroOps(t *testing.T) {
	book := orderbook.NewOrderBook(orderbook.Config{Symbol: "BENCH"})

	for _, n := range []int{0, -1} {
		res := Run(book, NewGenerator(1, DefaultMix()), n)
		if res != (Result{}) {
			t.Fatalf("Run(%d) = %+v, want zero result", n, res)
		}
	}
}
