package service

import (
	"encoding/binary"
	"errors"

	"tycho/domain/orderbook"
)

// Command payload layouts, big-endian:
//
//	place:  [id:8][side:1][type:1][price:8][qty:8]
//	cancel: [id:8]
//	modify: [id:8][flags:1][price:8][qty:8]
//
// modify flags: bit 0 set means price is present, bit 1 qty.

var errShortPayload = errors.New("service: short command payload")

type placeCmd struct {
	ID    uint64
	Side  orderbook.Side
	Type  orderbook.OrderType
	Price int64
	Qty   uint64
}

type modifyCmd struct {
	ID       uint64
	HasPrice bool
	Price    int64
	HasQty   bool
	Qty      uint64
}

func encodePlace(c placeCmd) []byte {
	buf := make([]byte, 26)
	binary.BigEndian.PutUint64(buf[0:8], c.ID)
	buf[8] = byte(c.Side)
	buf[9] = byte(c.Type)
	binary.BigEndian.PutUint64(buf[10:18], uint64(c.Price))
	binary.BigEndian.PutUint64(buf[18:26], c.Qty)
	return buf
}

func decodePlace(b []byte) (placeCmd, error) {
	if len(b) != 26 {
		return placeCmd{}, errShortPayload
	}
	return placeCmd{
		ID:    binary.BigEndian.Uint64(b[0:8]),
		Side:  orderbook.Side(b[8]),
		Type:  orderbook.OrderType(b[9]),
		Price: int64(binary.BigEndian.Uint64(b[10:18])),
		Qty:   binary.BigEndian.Uint64(b[18:26]),
	}, nil
}

func encodeCancel(id uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, id)
	return buf
}

func decodeCancel(b []byte) (uint64, error) {
	if len(b) != 8 {
		return 0, errShortPayload
	}
	return binary.BigEndian.Uint64(b), nil
}

func encodeModify(c modifyCmd) []byte {
	buf := make([]byte, 25)
	binary.BigEndian.PutUint64(buf[0:8], c.ID)
	var flags byte
	if c.HasPrice {
		flags |= 1
	}
	if c.HasQty {
		flags |= 2
	}
	buf[8] = flags
	binary.BigEndian.PutUint64(buf[9:17], uint64(c.Price))
	binary.BigEndian.PutUint64(buf[17:25], c.Qty)
	return buf
}

func decodeModify(b []byte) (modifyCmd, error) {
	if len(b) != 25 {
		return modifyCmd{}, errShortPayload
	}
	return modifyCmd{
		ID:       binary.BigEndian.Uint64(b[0:8]),
		HasPrice: b[8]&1 != 0,
		Price:    int64(binary.BigEndian.Uint64(b[9:17])),
		HasQty:   b[8]&2 != 0,
		Qty:      binary.BigEndian.Uint64(b[17:25]),
	}, nil
}
