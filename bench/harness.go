package bench

import (
	"fmt"
	"sort"
	"time"

	"tycho/domain/orderbook"
)

// Result aggregates one benchmark run.
type Result struct {
	Ops      int
	Fills    int
	Rejected int
	Elapsed  time.Duration

	P50 time.Duration
	P99 time.Duration
	Max time.Duration
}

func (r Result) Throughput() float64 {
	if r.Elapsed == 0 {
		return 0
	}
	return float64(r.Ops) / r.Elapsed.Seconds()
}

func (r Result) String() string {
	return fmt.Sprintf(
		"ops=%d fills=%d rejected=%d elapsed=%s throughput=%.0f op/s p50=%s p99=%s max=%s",
		r.Ops, r.Fills, r.Rejected, r.Elapsed.Round(time.Millisecond),
		r.Throughput(), r.P50, r.P99, r.Max,
	)
}

// Run drives n generated operations through the book, timing each one.
// Cancels of already-filled orders count as ops, not rejections; that
// is normal flow in a matching engine.
func Run(book *orderbook.OrderBook, gen *Generator, n int) Result {
	if n <= 0 {
		return Result{}
	}
	lat := make([]time.Duration, 0, n)
	res := Result{Ops: n}

	start := time.Now()
	for i := 0; i < n; i++ {
		op := gen.Next()

		t0 := time.Now()
		if op.Cancel {
			_ = book.CancelOrder(op.CancelID)
		} else {
			r, err := book.AddOrder(op.Order)
			if err != nil {
				res.Rejected++
			} else {
				res.Fills += len(r.Fills)
			}
		}
		lat = append(lat, time.Since(t0))
	}
	res.Elapsed = time.Since(start)

	sort.Slice(lat, func(i, j int) bool { return lat[i] < lat[j] })
	res.P50 = lat[len(lat)/2]
	res.P99 = lat[len(lat)*99/100]
	res.Max = lat[len(lat)-1]
	return res
}
