package main

import (
	"flag"
	"fmt"

	"tycho/bench"
	"tycho/domain/orderbook"
)

func main() {
	n := flag.Int("n", 1_000_000, "number of operations")
	seed := flag.Int64("seed", 42, "generator seed")
	market := flag.Float64("market", 0.05, "market order ratio")
	cancel := flag.Float64("cancel", 0.20, "cancel ratio")
	demo := flag.Bool("demo", false, "run a small worked example instead of the benchmark")
	flag.Parse()

	if *demo {
		runDemo()
		return
	}

	mix := bench.DefaultMix()
	mix.MarketRatio = *market
	mix.CancelRatio = *cancel

	book := orderbook.NewOrderBook(orderbook.Config{
		Symbol:     "BENCH",
		BasePrice:  mix.BasePrice,
		PriceRange: 1024,
	})

	res := bench.Run(book, bench.NewGenerator(*seed, mix), *n)
	fmt.Println(res)

	sum := book.Summary()
	fmt.Printf("book: resting_bids=%d resting_asks=%d matched_qty=%d\n",
		sum.BidOrders, sum.AskOrders, sum.QtyMatched)
}

// runDemo seeds a small book, crosses it, and prints the result.
func runDemo() {
	book := orderbook.NewOrderBook(orderbook.Config{Symbol: "BTC-USD"})

	seed := []orderbook.Order{
		{ID: 1, Side: orderbook.Bid, Type: orderbook.Limit, Price: 9_990, Qty: 10},
		{ID: 2, Side: orderbook.Bid, Type: orderbook.Limit, Price: 9_990, Qty: 5},
		{ID: 3, Side: orderbook.Bid, Type: orderbook.Limit, Price: 9_980, Qty: 20},
		{ID: 4, Side: orderbook.Ask, Type: orderbook.Limit, Price: 10_010, Qty: 8},
		{ID: 5, Side: orderbook.Ask, Type: orderbook.Limit, Price: 10_020, Qty: 12},
	}
	for _, o := range seed {
		if _, err := book.AddOrder(o); err != nil {
			fmt.Printf("add %d: %v\n", o.ID, err)
			return
		}
	}

	res, err := book.AddOrder(orderbook.Order{
		ID: 6, Side: orderbook.Ask, Type: orderbook.Limit, Price: 9_990, Qty: 12,
	})
	if err != nil {
		fmt.Printf("cross: %v\n", err)
		return
	}
	for _, f := range res.Fills {
		fmt.Printf("fill: maker=%d taker=%d price=%d qty=%d\n",
			f.MakerID, f.TakerID, f.Price, f.Qty)
	}

	bids, asks := book.MarketDepth(5)
	fmt.Println("bids:")
	for _, l := range bids {
		fmt.Printf("  %d x %d\n", l.Price, l.Qty)
	}
	fmt.Println("asks:")
	for _, l := range asks {
		fmt.Printf("  %d x %d\n", l.Price, l.Qty)
	}

	sum := book.Summary()
	fmt.Printf("summary: best_bid=%d best_ask=%d spread=%d matched=%d\n",
		sum.BestBid, sum.BestAsk, sum.Spread, sum.QtyMatched)
}
