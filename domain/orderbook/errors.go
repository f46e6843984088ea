package orderbook

import "errors"

// All validation happens before any state mutation, so a returned
// error always leaves the book exactly as it was.
var (
	ErrInvalidQuantity  = errors.New("orderbook: quantity must be positive")
	ErrPriceOutOfRange  = errors.New("orderbook: price outside configured range")
	ErrOrderNotFound    = errors.New("orderbook: order not found")
	ErrDuplicateOrderID = errors.New("orderbook: order id already resting")
)
