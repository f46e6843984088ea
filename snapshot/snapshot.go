// Package snapshot persists the resting book state so the entry WAL
// can be truncated. A snapshot plus the WAL tail after its sequence
// reconstructs the full book.
package snapshot

import "time"

type Snapshot struct {
	Seq     uint64
	Symbol  string
	Created time.Time
	Orders  []Entry
}

// Entry is one resting order. Qty is the unfilled remainder, so a
// restored order rests with exactly the quantity it had left.
type Entry struct {
	ID    uint64
	Side  uint8
	Price int64
	Qty   uint64
}
