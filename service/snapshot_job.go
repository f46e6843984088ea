package service

import (
	"context"
	"log"
	"time"

	"tycho/snapshot"
)

// StartSnapshotJob periodically persists the resting book, then
// truncates the entry WAL below the snapshot sequence and drops acked
// outbox records. Runs until ctx is cancelled.
func (s *OrderService) StartSnapshotJob(ctx context.Context, dir string, interval time.Duration) {
	w := &snapshot.Writer{Dir: dir}

	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				s.snapshotOnce(w)
			}
		}
	}()
}

func (s *OrderService) snapshotOnce(w *snapshot.Writer) {
	s.mu.Lock()
	seq := s.cmdSeq.Current()
	fillSeq := s.fillSeq.Current()
	err := w.Write(seq, s.book)
	var truncErr error
	if err == nil {
		// TruncateBefore reads the segment cursor that Append advances
		// on rotation; it must run under the same lock as writes.
		truncErr = s.wal.TruncateBefore(seq)
	}
	s.mu.Unlock()
	if err != nil {
		log.Printf("[snapshot] write failed seq=%d: %v", seq, err)
		return
	}
	if truncErr != nil {
		log.Printf("[snapshot] wal truncate seq=%d: %v", seq, truncErr)
	}
	if err := s.outbox.TruncateAckedUpTo(fillSeq); err != nil {
		log.Printf("[snapshot] outbox truncate seq=%d: %v", fillSeq, err)
	}
	log.Printf("[snapshot] written seq=%d", seq)
}
