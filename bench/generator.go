// Package bench generates synthetic order flow and measures the book's
// throughput and latency against it.
package bench

import (
	"math/rand"

	"tycho/domain/orderbook"
)

// Mix controls the shape of generated flow. Ratios are in [0,1].
type Mix struct {
	BasePrice   int64
	TickSpread  int64 // prices are drawn from base +/- TickSpread ticks
	MaxQty      uint64
	MarketRatio float64
	CancelRatio float64
}

func DefaultMix() Mix {
	return Mix{
		BasePrice:   10_000,
		TickSpread:  512,
		MaxQty:      100,
		MarketRatio: 0.05,
		CancelRatio: 0.20,
	}
}

// Op is one generated action against the book.
type Op struct {
	Cancel   bool
	CancelID uint64
	Order    orderbook.Order
}

// Generator produces a deterministic stream of operations for a seed,
// so two runs with the same seed replay identical flow.
type Generator struct {
	rng    *rand.Rand
	mix    Mix
	nextID uint64
	live   []uint64
}

func NewGenerator(seed int64, mix Mix) *Generator {
	return &Generator{
		rng: rand.New(rand.NewSource(seed)),
		mix: mix,
	}
}

func (g *Generator) Next() Op {
	if len(g.live) > 0 && g.rng.Float64() < g.mix.CancelRatio {
		i := g.rng.Intn(len(g.live))
		id := g.live[i]
		g.live[i] = g.live[len(g.live)-1]
		g.live = g.live[:len(g.live)-1]
		return Op{Cancel: true, CancelID: id}
	}

	g.nextID++
	o := orderbook.Order{
		ID:   g.nextID,
		Side: orderbook.Side(g.rng.Intn(2)),
		Qty:  uint64(g.rng.Int63n(int64(g.mix.MaxQty))) + 1,
	}
	if g.rng.Float64() < g.mix.MarketRatio {
		o.Type = orderbook.Market
	} else {
		o.Type = orderbook.Limit
		o.Price = g.mix.BasePrice + g.rng.Int63n(2*g.mix.TickSpread+1) - g.mix.TickSpread
		g.live = append(g.live, o.ID)
	}
	return Op{Order: o}
}
