// Package service orchestrates the core components of the matching
// engine: the order book, entry WAL, fill outbox, and snapshots.
//
// It is the only write entry point. Every command is logged to the
// entry WAL before it touches the book, and every fill is recorded in
// the outbox before the response returns, decoupled from network
// transports like gRPC.
package service
