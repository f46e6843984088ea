package snapshot

import (
	"encoding/gob"
	"os"
	"path/filepath"

	"tycho/domain/orderbook"
)

// Load restores resting orders into an empty book and returns the
// snapshot sequence. A missing snapshot is not an error; the caller
// replays the WAL from the start.
func Load(dir string, book *orderbook.OrderBook) (uint64, error) {
	f, err := os.Open(filepath.Join(dir, "snapshot.bin"))
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}
	defer f.Close()

	var s Snapshot
	if err := gob.NewDecoder(f).Decode(&s); err != nil {
		return 0, err
	}

	// WalkResting emits best-first, FIFO within level, so re-admitting
	// in order reproduces queue priority exactly. Restored orders never
	// cross: the snapshot was taken from a matched book.
	for _, e := range s.Orders {
		if _, err := book.AddOrder(orderbook.Order{
			ID:    e.ID,
			Side:  orderbook.Side(e.Side),
			Type:  orderbook.Limit,
			Price: e.Price,
			Qty:   e.Qty,
		}); err != nil {
			return 0, err
		}
	}
	return s.Seq, nil
}
