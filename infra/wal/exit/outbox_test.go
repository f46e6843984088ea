package exit

import (
	"testing"
)

func TestPutNewAndScanPending(t *testing.T) {
	ob, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open outbox: %v", err)
	}
	defer ob.Close()

	for seq := uint64(1); seq <= 5; seq++ {
		if err := ob.PutNew(seq, []byte{byte(seq)}); err != nil {
			t.Fatalf("put %d: %v", seq, err)
		}
	}

	var seen []uint64
	err = ob.ScanPending(func(rec *Record) error {
		seen = append(seen, rec.Seq)
		if rec.State != StateNew {
			t.Fatalf("seq %d state = %v, want NEW", rec.Seq, rec.State)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(seen) != 5 {
		t.Fatalf("pending = %v, want 5 records", seen)
	}
	for i, seq := range seen {
		if seq != uint64(i+1) {
			t.Fatalf("pending order = %v, want ascending from 1", seen)
		}
	}
}

func TestAckedExcludedFromScan(t *testing.T) {
	ob, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open outbox: %v", err)
	}
	defer ob.Close()

	for seq := uint64(1); seq <= 3; seq++ {
		if err := ob.PutNew(seq, []byte("fill")); err != nil {
			t.Fatalf("put: %v", err)
		}
	}
	if err := ob.MarkSent(2); err != nil {
		t.Fatalf("mark sent: %v", err)
	}
	if err := ob.MarkAcked(2); err != nil {
		t.Fatalf("mark acked: %v", err)
	}

	var seen []uint64
	if err := ob.ScanPending(func(rec *Record) error {
		seen = append(seen, rec.Seq)
		return nil
	}); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(seen) != 2 || seen[0] != 1 || seen[1] != 3 {
		t.Fatalf("pending = %v, want [1 3]", seen)
	}

	rec, err := ob.Get(2)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.State != StateAcked {
		t.Fatalf("state = %v, want ACKED", rec.State)
	}
	if rec.Retries != 2 {
		t.Fatalf("retries = %d, want 2", rec.Retries)
	}
}

func TestSentStillPendingAfterReopen(t *testing.T) {
	dir := t.TempDir()
	ob, err := Open(dir)
	if err != nil {
		t.Fatalf("open outbox: %v", err)
	}
	if err := ob.PutNew(1, []byte("fill")); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := ob.MarkSent(1); err != nil {
		t.Fatalf("mark sent: %v", err)
	}
	if err := ob.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	ob, err = Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer ob.Close()

	var seen int
	if err := ob.ScanPending(func(rec *Record) error {
		seen++
		if rec.State != StateSent {
			t.Fatalf("state = %v, want SENT", rec.State)
		}
		return nil
	}); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if seen != 1 {
		t.Fatalf("pending = %d, want 1", seen)
	}
}

func TestTruncateAcked(t *testing.T) {
	ob, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open outbox: %v", err)
	}
	defer ob.Close()

	for seq := uint64(1); seq <= 4; seq++ {
		if err := ob.PutNew(seq, []byte("fill")); err != nil {
			t.Fatalf("put: %v", err)
		}
	}
	for _, seq := range []uint64{1, 2} {
		if err := ob.MarkAcked(seq); err != nil {
			t.Fatalf("ack %d: %v", seq, err)
		}
	}

	if err := ob.TruncateAckedUpTo(4); err != nil {
		t.Fatalf("truncate: %v", err)
	}

	if _, err := ob.Get(1); err == nil {
		t.Fatal("acked record 1 should be deleted")
	}
	if _, err := ob.Get(3); err != nil {
		t.Fatalf("record 3 should survive: %v", err)
	}
}

func TestPayloadRoundTrip(t *testing.T) {
	ob, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open outbox: %v", err)
	}
	defer ob.Close()

	payload := []byte{0x0a, 0x05, 'h', 'e', 'l', 'l', 'o'}
	if err := ob.PutNew(42, payload); err != nil {
		t.Fatalf("put: %v", err)
	}
	rec, err := ob.Get(42)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(rec.Payload) != string(payload) {
		t.Fatalf("payload = %x, want %x", rec.Payload, payload)
	}
}
