package entry

import (
	"fmt"
	"path/filepath"
	"testing"
)

func TestAppendAndReplay(t *testing.T) {
	dir := t.TempDir()

	w, err := Open(Config{Dir: dir})
	if err != nil {
		t.Fatalf("open wal: %v", err)
	}

	const n = 100
	for i := 1; i <= n; i++ {
		rec := NewRecord(RecordPlace, uint64(i), []byte(fmt.Sprintf("order-%d", i)))
		if err := w.Append(rec); err != nil {
			t.Fatalf("append: %v", err)
		}
		if i%20 == 0 {
			_ = w.Sync()
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	count := 0
	lastSeq, err := Replay(dir, func(rec *Record) error {
		if rec.Type != RecordPlace {
			t.Fatalf("unexpected record type: %v", rec.Type)
		}
		count++
		if string(rec.Data) != fmt.Sprintf("order-%d", count) {
			t.Fatalf("payload mismatch at %d: %q", count, rec.Data)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if count != n || lastSeq != n {
		t.Fatalf("expected %d records last seq %d, got %d / %d", n, n, count, lastSeq)
	}
}

func TestRotation(t *testing.T) {
	dir := t.TempDir()

	w, err := Open(Config{Dir: dir, SegmentSize: 64})
	if err != nil {
		t.Fatalf("open wal: %v", err)
	}
	for i := 1; i <= 10; i++ {
		if err := w.Append(NewRecord(RecordCancel, uint64(i), []byte("rotate"))); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	files, _ := filepath.Glob(filepath.Join(dir, "segment-*.wal"))
	if len(files) < 2 {
		t.Fatalf("expected rotated segments, found %d", len(files))
	}

	// Replay must cross segment boundaries in order.
	var seqs []uint64
	if _, err := Replay(dir, func(rec *Record) error {
		seqs = append(seqs, rec.Seq)
		return nil
	}); err != nil {
		t.Fatalf("replay: %v", err)
	}
	if len(seqs) != 10 {
		t.Fatalf("expected 10 records, got %d", len(seqs))
	}
	for i, s := range seqs {
		if s != uint64(i+1) {
			t.Fatalf("out of order replay: %v", seqs)
		}
	}
}

func TestReopenResumesLastSegment(t *testing.T) {
	dir := t.TempDir()

	w, _ := Open(Config{Dir: dir, SegmentSize: 64})
	for i := 1; i <= 5; i++ {
		_ = w.Append(NewRecord(RecordPlace, uint64(i), []byte("abc")))
	}
	_ = w.Close()

	w2, err := Open(Config{Dir: dir, SegmentSize: 64})
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if err := w2.Append(NewRecord(RecordPlace, 6, []byte("after"))); err != nil {
		t.Fatalf("append after reopen: %v", err)
	}
	_ = w2.Close()

	count := 0
	if _, err := Replay(dir, func(*Record) error { count++; return nil }); err != nil {
		t.Fatalf("replay: %v", err)
	}
	if count != 6 {
		t.Fatalf("expected 6 records after reopen, got %d", count)
	}
}

func TestTruncateBefore(t *testing.T) {
	dir := t.TempDir()

	w, _ := Open(Config{Dir: dir, SegmentSize: 64})
	for i := 1; i <= 12; i++ {
		_ = w.Append(NewRecord(RecordPlace, uint64(i), []byte("truncate-me")))
	}

	if err := w.TruncateBefore(6); err != nil {
		t.Fatalf("truncate: %v", err)
	}

	lastSeq := uint64(0)
	first := uint64(0)
	if _, err := Replay(dir, func(rec *Record) error {
		if first == 0 {
			first = rec.Seq
		}
		lastSeq = rec.Seq
		return nil
	}); err != nil {
		t.Fatalf("replay after truncate: %v", err)
	}
	if first <= 1 {
		t.Errorf("expected leading segments removed, first seq %d", first)
	}
	if lastSeq != 12 {
		t.Errorf("tail records lost, last seq %d", lastSeq)
	}
	_ = w.Close()
}
