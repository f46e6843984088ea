package service

import (
	"fmt"
	"log"
	"sync"
	"time"

	"google.golang.org/protobuf/proto"

	"tycho/api/pb"
	"tycho/domain/orderbook"
	"tycho/infra/memory"
	"tycho/infra/sequence"
	entrywal "tycho/infra/wal/entry"
	exitwal "tycho/infra/wal/exit"
)

// FillRingSize bounds the fast-path handoff to the broadcaster. A full
// ring is not a loss: the outbox scan publishes whatever was dropped.
const FillRingSize = 1 << 14

type OrderService struct {
	mu sync.Mutex

	book   *orderbook.OrderBook
	wal    *entrywal.WAL
	outbox *exitwal.Outbox
	ring   *memory.Ring[exitwal.Record]

	cmdSeq  *sequence.Sequencer
	fillSeq *sequence.Sequencer
}

// NewOrderService wires all dependencies. No globals.
func NewOrderService(
	book *orderbook.OrderBook,
	w *entrywal.WAL,
	outbox *exitwal.Outbox,
	ring *memory.Ring[exitwal.Record],
) *OrderService {
	return &OrderService{
		book:    book,
		wal:     w,
		outbox:  outbox,
		ring:    ring,
		cmdSeq:  sequence.New(0),
		fillSeq: sequence.New(0),
	}
}

// PlaceOrder logs the command, applies it to the book, and records the
// resulting fills in the outbox. The WAL write happens first: a command
// that was acknowledged can always be replayed.
func (s *OrderService) PlaceOrder(
	id uint64,
	side orderbook.Side,
	otype orderbook.OrderType,
	price int64,
	qty uint64,
) (orderbook.AddResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cmd := placeCmd{ID: id, Side: side, Type: otype, Price: price, Qty: qty}
	seq := s.cmdSeq.Next()
	if err := s.wal.Append(entrywal.NewRecord(entrywal.RecordPlace, seq, encodePlace(cmd))); err != nil {
		return orderbook.AddResult{}, fmt.Errorf("place %d: wal append: %w", id, err)
	}

	res, err := s.book.AddOrder(orderbook.Order{
		ID: id, Side: side, Type: otype, Price: price, Qty: qty,
	})
	if err != nil {
		return orderbook.AddResult{}, err
	}

	s.emitFills(res.Fills)
	return res, nil
}

func (s *OrderService) CancelOrder(id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seq := s.cmdSeq.Next()
	if err := s.wal.Append(entrywal.NewRecord(entrywal.RecordCancel, seq, encodeCancel(id))); err != nil {
		return fmt.Errorf("cancel %d: wal append: %w", id, err)
	}
	return s.book.CancelOrder(id)
}

// ModifyOrder passes nil pointers through unchanged; the book decides
// whether queue position survives.
func (s *OrderService) ModifyOrder(id uint64, newPrice *int64, newQty *uint64) (orderbook.AddResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cmd := modifyCmd{ID: id}
	if newPrice != nil {
		cmd.HasPrice, cmd.Price = true, *newPrice
	}
	if newQty != nil {
		cmd.HasQty, cmd.Qty = true, *newQty
	}
	seq := s.cmdSeq.Next()
	if err := s.wal.Append(entrywal.NewRecord(entrywal.RecordModify, seq, encodeModify(cmd))); err != nil {
		return orderbook.AddResult{}, fmt.Errorf("modify %d: wal append: %w", id, err)
	}

	res, err := s.book.ModifyOrder(id, newPrice, newQty)
	if err != nil {
		return orderbook.AddResult{}, err
	}

	s.emitFills(res.Fills)
	return res, nil
}

// emitFills makes each fill durable in the outbox, then hands it to
// the broadcaster through the ring. Outbox first: once PutNew returns,
// the fill survives a crash even if the ring enqueue is lost.
func (s *OrderService) emitFills(fills []orderbook.Fill) {
	now := time.Now().UnixNano()
	for _, f := range fills {
		seq := s.fillSeq.Next()
		payload, err := proto.Marshal(&pb.Fill{
			MakerId:   f.MakerID,
			TakerId:   f.TakerID,
			Price:     f.Price,
			Qty:       f.Qty,
			TakerSide: pb.Side(f.TakerSide),
			Seq:       seq,
			Symbol:    s.book.Symbol(),
			Time:      now,
		})
		if err != nil {
			log.Printf("[service] marshal fill seq=%d: %v", seq, err)
			continue
		}
		if err := s.outbox.PutNew(seq, payload); err != nil {
			log.Printf("[service] outbox put seq=%d: %v", seq, err)
			continue
		}
		s.ring.Enqueue(exitwal.Record{Seq: seq, Payload: payload})
	}
}

// MarketDepth returns up to max aggregated levels per side.
func (s *OrderService) MarketDepth(max int) (bids, asks []orderbook.DepthLevel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.book.MarketDepth(max)
}

func (s *OrderService) Summary() orderbook.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.book.Summary()
}

func (s *OrderService) Symbol() string {
	return s.book.Symbol()
}

// Sync flushes the entry WAL. Called on shutdown.
func (s *OrderService) Sync() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wal.Sync()
}
