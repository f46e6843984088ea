// Package broadcaster publishes fill events to Kafka. The hot path is
// the ring the service fills after matching; the outbox scan is the
// recovery path that re-sends anything a crash or a full ring lost.
// Delivery is at-least-once; consumers dedupe by fill sequence.
package broadcaster

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/IBM/sarama"

	"tycho/infra/memory"
	exitwal "tycho/infra/wal/exit"
)

type Broadcaster struct {
	outbox   *exitwal.Outbox
	ring     *memory.Ring[exitwal.Record]
	producer sarama.SyncProducer
	topic    string
	interval time.Duration
}

func New(
	outbox *exitwal.Outbox,
	ring *memory.Ring[exitwal.Record],
	brokers []string,
	topic string,
) (*Broadcaster, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}

	return &Broadcaster{
		outbox:   outbox,
		ring:     ring,
		producer: producer,
		topic:    topic,
		interval: 250 * time.Millisecond,
	}, nil
}

// Start launches the publish loop. One pass over pending outbox
// records runs first so fills stranded by a previous crash go out
// before new traffic.
func (b *Broadcaster) Start(ctx context.Context) {
	log.Printf("[broadcaster] started topic=%s", b.topic)

	go func() {
		b.scanOutbox()

		ticker := time.NewTicker(b.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				b.drainRing()
				b.scanOutbox()
			}
		}
	}()
}

func (b *Broadcaster) drainRing() {
	for {
		rec, ok := b.ring.Dequeue()
		if !ok {
			return
		}
		b.publish(&rec)
	}
}

// scanOutbox retries everything not yet acked. Records the ring
// already delivered are acked and skipped by ScanPending.
func (b *Broadcaster) scanOutbox() {
	err := b.outbox.ScanPending(func(rec *exitwal.Record) error {
		b.publish(rec)
		return nil
	})
	if err != nil {
		log.Printf("[broadcaster] outbox scan: %v", err)
	}
}

func (b *Broadcaster) publish(rec *exitwal.Record) {
	if err := b.outbox.MarkSent(rec.Seq); err != nil {
		log.Printf("[broadcaster] mark sent seq=%d: %v", rec.Seq, err)
		return
	}

	_, _, err := b.producer.SendMessage(&sarama.ProducerMessage{
		Topic: b.topic,
		Key:   sarama.StringEncoder(keyForSeq(rec.Seq)),
		Value: sarama.ByteEncoder(rec.Payload),
	})
	if err != nil {
		// stays SENT in the outbox; the next scan retries it
		log.Printf("[broadcaster] publish seq=%d: %v", rec.Seq, err)
		return
	}

	if err := b.outbox.MarkAcked(rec.Seq); err != nil {
		log.Printf("[broadcaster] mark acked seq=%d: %v", rec.Seq, err)
	}
}

func (b *Broadcaster) Close() error {
	return b.producer.Close()
}

// Fill sequence as the message key keeps one fill on one partition and
// gives consumers a stable dedupe handle.
func keyForSeq(seq uint64) string {
	return strconv.FormatUint(seq, 10)
}
