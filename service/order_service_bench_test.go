package service

import (
	"testing"

	"tycho/domain/orderbook"
	"tycho/infra/memory"
	entrywal "tycho/infra/wal/entry"
	exitwal "tycho/infra/wal/exit"
)

func newBenchService(b *testing.B) *OrderService {
	b.Helper()
	w, err := entrywal.Open(entrywal.Config{Dir: b.TempDir()})
	if err != nil {
		b.Fatal(err)
	}
	ob, err := exitwal.Open(b.TempDir())
	if err != nil {
		b.Fatal(err)
	}
	b.Cleanup(func() {
		w.Close()
		ob.Close()
	})
	book := orderbook.NewOrderBook(orderbook.Config{Symbol: "BTC-USD"})
	return NewOrderService(book, w, ob, memory.NewRing[exitwal.Record](FillRingSize))
}

// Measures the full write path: WAL append plus book apply, no match.
func BenchmarkPlaceResting(b *testing.B) {
	svc := newBenchService(b)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		price := int64(9_000 + i%1000)
		if _, err := svc.PlaceOrder(uint64(i+1), orderbook.Bid, orderbook.Limit, price, 10); err != nil {
			b.Fatal(err)
		}
	}
}

// Every second order crosses, exercising fill emission and the outbox.
func BenchmarkPlaceMatching(b *testing.B) {
	svc := newBenchService(b)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		id := uint64(i + 1)
		var err error
		if i%2 == 0 {
			_, err = svc.PlaceOrder(id, orderbook.Ask, orderbook.Limit, 10_000, 10)
		} else {
			_, err = svc.PlaceOrder(id, orderbook.Bid, orderbook.Limit, 10_000, 10)
		}
		if err != nil {
			b.Fatal(err)
		}
	}
}
