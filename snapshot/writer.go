package snapshot

import (
	"encoding/gob"
	"os"
	"path/filepath"
	"time"

	"tycho/domain/orderbook"
)

type Writer struct {
	Dir string
}

// Write captures the resting book at seq. The snapshot is written to a
// temp file and renamed so a crash mid-write never corrupts the last
// good snapshot.
func (w *Writer) Write(seq uint64, book *orderbook.OrderBook) error {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return err
	}

	s := Snapshot{
		Seq:     seq,
		Symbol:  book.Symbol(),
		Created: time.Now(),
		Orders:  make([]Entry, 0, 1024),
	}
	book.WalkResting(func(o orderbook.Order) {
		s.Orders = append(s.Orders, Entry{
			ID:    o.ID,
			Side:  uint8(o.Side),
			Price: o.Price,
			Qty:   o.Remaining,
		})
	})

	tmp := filepath.Join(w.Dir, "snapshot.bin.tmp")
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if err := gob.NewEncoder(f).Encode(&s); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, filepath.Join(w.Dir, "snapshot.bin"))
}
