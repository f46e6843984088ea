// Package memory provides small allocation-avoidance primitives used
// off the matching hot path: a typed object pool for encode buffers and
// a lock-free SPSC ring that hands fill events from the write path to
// the broadcaster without scanning the durable outbox.
package memory
