package entry

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"tycho/infra/memory"
)

type Config struct {
	Dir         string
	SegmentSize int64
}

// WAL is a segmented append-only journal of order commands. It must
// see every command before the book does; replay rebuilds the book
// deterministically from it.
type WAL struct {
	dir      string
	segSize  int64
	current  *segment
	segIndex int
	bufs     *memory.Pool[bytes.Buffer]
}

func Open(cfg Config) (*WAL, error) {
	if cfg.SegmentSize == 0 {
		cfg.SegmentSize = 2 * 1024 * 1024
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, err
	}

	idx, err := lastSegmentIndex(cfg.Dir)
	if err != nil {
		return nil, err
	}
	seg, err := openSegment(cfg.Dir, idx)
	if err != nil {
		return nil, err
	}

	return &WAL{
		dir:      cfg.Dir,
		segSize:  cfg.SegmentSize,
		current:  seg,
		segIndex: idx,
		bufs:     memory.NewPool(func() *bytes.Buffer { return &bytes.Buffer{} }),
	}, nil
}

// Append frames and writes one record:
// [type:1][seq:8][time:8][len:4][payload][crc:4]
func (w *WAL) Append(r *Record) error {
	buf := w.bufs.Get()
	defer w.bufs.Put(buf)
	buf.Reset()

	var header [21]byte
	header[0] = byte(r.Type)
	binary.BigEndian.PutUint64(header[1:9], r.Seq)
	binary.BigEndian.PutUint64(header[9:17], uint64(r.Time))
	binary.BigEndian.PutUint32(header[17:21], uint32(len(r.Data)))

	buf.Write(header[:])
	buf.Write(r.Data)

	var crc [4]byte
	binary.BigEndian.PutUint32(crc[:], CRC32(buf.Bytes()))
	buf.Write(crc[:])

	if err := w.current.append(buf.Bytes()); err != nil {
		return err
	}

	if w.current.offset >= w.segSize {
		return w.rotate()
	}
	return nil
}

func (w *WAL) Sync() error {
	return w.current.sync()
}

func (w *WAL) Close() error {
	return w.current.close()
}

func (w *WAL) rotate() error {
	_ = w.current.close()
	w.segIndex++

	seg, err := openSegment(w.dir, w.segIndex)
	if err != nil {
		return err
	}
	w.current = seg
	return nil
}

// TruncateBefore removes closed segments whose records are all covered
// by a snapshot at seq. The current segment is never removed.
func (w *WAL) TruncateBefore(seq uint64) error {
	files, err := filepath.Glob(filepath.Join(w.dir, "segment-*.wal"))
	if err != nil {
		return err
	}

	current := filepath.Join(w.dir, fmt.Sprintf("segment-%06d.wal", w.segIndex))
	for _, path := range files {
		if path == current {
			continue
		}
		maxSeq, err := maxSeqInSegment(path)
		if err != nil {
			continue
		}
		if maxSeq <= seq {
			_ = os.Remove(path)
		}
	}
	return nil
}

func lastSegmentIndex(dir string) (int, error) {
	files, err := filepath.Glob(filepath.Join(dir, "segment-*.wal"))
	if err != nil {
		return 0, err
	}
	if len(files) == 0 {
		return 0, nil
	}
	sort.Strings(files)

	var idx int
	_, err = fmt.Sscanf(filepath.Base(files[len(files)-1]), "segment-%06d.wal", &idx)
	if err != nil {
		return 0, err
	}
	return idx, nil
}
