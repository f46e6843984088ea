package orderbook

type Side uint8
type OrderType uint8
type Status uint8

const (
	Bid Side = iota
	Ask
)

const (
	Limit OrderType = iota
	Market
)

// Terminal statuses are Filled and Cancelled. A market order whose
// remainder could not be satisfied ends up Cancelled as well, so the
// caller can see the requested quantity was not fully consumed.
const (
	New Status = iota
	PartiallyFilled
	Filled
	Cancelled
)

// Order is a pure domain entity. Price is in minimum-tick units and is
// meaningless for market orders. Remaining tracks the unfilled portion;
// Qty never changes after admission.
type Order struct {
	ID        uint64
	Price     int64
	Qty       uint64
	Remaining uint64
	SeqID     uint64

	Side   Side
	Type   OrderType
	Status Status
}

func (o *Order) Filled() uint64 {
	return o.Qty - o.Remaining
}

func (s Side) String() string {
	if s == Bid {
		return "BID"
	}
	return "ASK"
}

func (t OrderType) String() string {
	if t == Market {
		return "MARKET"
	}
	return "LIMIT"
}

func (s Status) String() string {
	switch s {
	case New:
		return "NEW"
	case PartiallyFilled:
		return "PARTIALLY_FILLED"
	case Filled:
		return "FILLED"
	case Cancelled:
		return "CANCELLED"
	default:
		return "UNKNOWN"
	}
}
