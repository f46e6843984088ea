// Package depthfeed periodically publishes aggregated book depth to
// the market data topic. Snapshots are latest-wins per symbol, so a
// missed tick is harmless.
package depthfeed

import (
	"context"
	"log"
	"time"

	"google.golang.org/protobuf/proto"

	"tycho/api/pb"
	"tycho/domain/orderbook"
)

// DepthSource is the view the feed needs from the service layer.
type DepthSource interface {
	MarketDepth(max int) (bids, asks []orderbook.DepthLevel)
	Symbol() string
}

// Publisher is the transport; infra/kafka.Producer satisfies it.
type Publisher interface {
	Publish(ctx context.Context, symbol string, value []byte) error
}

type Feed struct {
	src      DepthSource
	pub      Publisher
	levels   int
	interval time.Duration
}

func New(src DepthSource, pub Publisher, levels int, interval time.Duration) *Feed {
	return &Feed{src: src, pub: pub, levels: levels, interval: interval}
}

func (f *Feed) Start(ctx context.Context) {
	log.Printf("[depthfeed] started levels=%d interval=%s", f.levels, f.interval)

	go func() {
		ticker := time.NewTicker(f.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := f.publishOnce(ctx); err != nil {
					log.Printf("[depthfeed] publish: %v", err)
				}
			}
		}
	}()
}

func (f *Feed) publishOnce(ctx context.Context) error {
	bids, asks := f.src.MarketDepth(f.levels)

	msg := &pb.DepthResponse{
		Symbol: f.src.Symbol(),
		Bids:   toLevels(bids),
		Asks:   toLevels(asks),
		Time:   time.Now().UnixNano(),
	}
	payload, err := proto.Marshal(msg)
	if err != nil {
		return err
	}
	return f.pub.Publish(ctx, msg.Symbol, payload)
}

func toLevels(in []orderbook.DepthLevel) []*pb.DepthLevel {
	out := make([]*pb.DepthLevel, 0, len(in))
	for _, l := range in {
		out = append(out, &pb.DepthLevel{Price: l.Price, Qty: l.Qty})
	}
	return out
}
