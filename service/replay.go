package service

import (
	"fmt"
	"log"

	"tycho/domain/orderbook"
	entrywal "tycho/infra/wal/entry"
	"tycho/snapshot"
)

// Recover rebuilds book state before the service accepts traffic.
//
// Order matters: the latest snapshot restores the resting book, then
// the WAL tail past the snapshot sequence re-runs the commands that
// followed. Fills are NOT re-emitted during replay; they are already
// durable in the outbox from the original run.
func (s *OrderService) Recover(walDir, snapDir string) error {
	snapSeq, err := snapshot.Load(snapDir, s.book)
	if err != nil {
		return fmt.Errorf("recover: load snapshot: %w", err)
	}

	replayed := 0
	lastSeq, err := entrywal.Replay(walDir, func(rec *entrywal.Record) error {
		if rec.Seq <= snapSeq {
			// already folded into the snapshot
			return nil
		}
		if err := s.apply(rec); err != nil {
			return err
		}
		replayed++
		return nil
	})
	if err != nil {
		return fmt.Errorf("recover: replay wal: %w", err)
	}
	if lastSeq > snapSeq {
		s.cmdSeq.Reset(lastSeq)
	} else {
		s.cmdSeq.Reset(snapSeq)
	}

	// resume fill numbering past everything the outbox has seen
	maxFill, err := s.outbox.MaxSeq()
	if err != nil {
		return fmt.Errorf("recover: outbox scan: %w", err)
	}
	s.fillSeq.Reset(maxFill)

	log.Printf("[service] recovery complete snapshot_seq=%d wal_records=%d last_seq=%d",
		snapSeq, replayed, lastSeq)
	return nil
}

// apply re-runs one logged command. Domain rejections are ignored: a
// command that was rejected live is rejected identically on replay.
func (s *OrderService) apply(rec *entrywal.Record) error {
	switch rec.Type {
	case entrywal.RecordPlace:
		cmd, err := decodePlace(rec.Data)
		if err != nil {
			return err
		}
		_, _ = s.book.AddOrder(orderbook.Order{
			ID: cmd.ID, Side: cmd.Side, Type: cmd.Type, Price: cmd.Price, Qty: cmd.Qty,
		})

	case entrywal.RecordCancel:
		id, err := decodeCancel(rec.Data)
		if err != nil {
			return err
		}
		_ = s.book.CancelOrder(id)

	case entrywal.RecordModify:
		cmd, err := decodeModify(rec.Data)
		if err != nil {
			return err
		}
		var price *int64
		var qty *uint64
		if cmd.HasPrice {
			price = &cmd.Price
		}
		if cmd.HasQty {
			qty = &cmd.Qty
		}
		_, _ = s.book.ModifyOrder(cmd.ID, price, qty)

	default:
		return fmt.Errorf("replay: unknown record type %d at seq %d", rec.Type, rec.Seq)
	}
	return nil
}
