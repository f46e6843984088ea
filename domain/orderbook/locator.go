package orderbook

// location pins a resting order: which side, which level slot, and the
// generation-checked arena handle for its queue position.
type location struct {
	side   Side
	slot   int
	handle Handle
}

// locator maps order id -> location for O(1) cancel and lookup. An id
// is present iff the order is currently resting; every code path that
// links or unlinks an order from a level updates the locator in the
// same logical step.
type locator struct {
	entries map[uint64]location
}

func newLocator(capacity int) *locator {
	return &locator{
		entries: make(map[uint64]location, capacity),
	}
}

func (l *locator) add(id uint64, loc location) {
	l.entries[id] = loc
}

func (l *locator) get(id uint64) (location, bool) {
	loc, ok := l.entries[id]
	return loc, ok
}

func (l *locator) has(id uint64) bool {
	_, ok := l.entries[id]
	return ok
}

func (l *locator) remove(id uint64) {
	delete(l.entries, id)
}

func (l *locator) len() int {
	return len(l.entries)
}
