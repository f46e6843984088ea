// Package kafka wraps the segmentio writer used by the market data
// feed. Depth snapshots are keyed by symbol so consumers can compact
// the topic down to the latest book state per instrument.
package kafka

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
)

type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string, topic string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			Async:        false,
			BatchTimeout: 10 * time.Millisecond,
		},
	}
}

// Publish writes one message keyed by symbol. Depth is latest-wins, so
// RequireOne is enough; a dropped snapshot is replaced by the next tick.
func (p *Producer) Publish(ctx context.Context, symbol string, value []byte) error {
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(symbol),
		Value: value,
	})
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
