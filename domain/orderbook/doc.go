// Package orderbook implements the in-memory matching engine for a
// single instrument. Each side of the book is a direct-mapped array of
// price levels covering a bounded tick range around a base price, so
// price-to-level access is one array index instead of a tree walk.
// Orders live in a handle-addressed arena and queue FIFO within their
// level, which gives O(1) insert, O(1) cancel, and price-time priority
// matching with no allocation on the hot path.
//
// The book is single-threaded by design: every operation runs to
// completion before returning and the book is never observably crossed.
// Callers that need concurrency serialize in front of it.
package orderbook
