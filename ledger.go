package orderflow

import (
	"fmt"
	"iter"
	"sort"
)

// Ledger is the in-memory snapshot of the order ledger: an ordered
// sequence of orders, row order is insertion order.
//
// A Ledger is owned by one request at a time; the local store and the
// remote mirror are durable copies, never mutated directly. Positional
// indices are valid only within one loaded snapshot; the synthetic
// order IDs are stable across reloads within a session.
type Ledger struct {
	records []Order
	version uint64 // monotonic stamp, incremented on every mutation
}

// NewLedger creates an empty ledger.
func NewLedger(orders ...Order) *Ledger {
	l := &Ledger{records: make([]Order, 0, len(orders))}
	l.records = append(l.records, orders...)
	return l
}

// Len returns the number of orders in the snapshot.
func (l *Ledger) Len() int { return len(l.records) }

// Version returns the snapshot's monotonic mutation stamp. It exists to
// detect stale full-replace overwrites between sessions.
func (l *Ledger) Version() uint64 { return l.version }

// Get returns the order at position i.
func (l *Ledger) Get(i int) (Order, error) {
	if i < 0 || i >= len(l.records) {
		return Order{}, fmt.Errorf("no order at index %d (ledger has %d orders)", i, len(l.records))
	}
	return l.records[i], nil
}

// FindByID returns the position of the order with the given synthetic
// ID, or -1 when absent.
func (l *Ledger) FindByID(id string) int {
	for i, o := range l.records {
		if o.ID == id {
			return i
		}
	}
	return -1
}

// Append adds orders at the end of the snapshot. Duplicate submissions
// create duplicate orders; retries are user-visible form resubmissions
// and are not deduplicated.
func (l *Ledger) Append(orders ...Order) {
	l.records = append(l.records, orders...)
	l.version++
}

// SetAt replaces all fields of the order at position i.
func (l *Ledger) SetAt(i int, o Order) error {
	if i < 0 || i >= len(l.records) {
		return fmt.Errorf("no order at index %d (ledger has %d orders)", i, len(l.records))
	}
	l.records[i] = o
	l.version++
	return nil
}

// RemoveAt removes the order at position i. Subsequent orders are
// re-indexed; cached indices are invalid after this call.
func (l *Ledger) RemoveAt(i int) error {
	if i < 0 || i >= len(l.records) {
		return fmt.Errorf("no order at index %d (ledger has %d orders)", i, len(l.records))
	}
	l.records = append(l.records[:i], l.records[i+1:]...)
	l.version++
	return nil
}

// Records returns an iterator over (index, order) pairs in row order.
func (l *Ledger) Records() iter.Seq2[int, Order] {
	return func(yield func(int, Order) bool) {
		for i, o := range l.records {
			if !yield(i, o) {
				return
			}
		}
	}
}

// SortedByDate returns the orders sorted by date ascending. The sort is
// stable: orders on the same day keep their original relative order.
// The receiver is not modified; only the remote mirror consumes the
// date-sorted view.
func (l *Ledger) SortedByDate() []Order {
	sorted := append([]Order(nil), l.records...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Day.Before(sorted[j].Day)
	})
	return sorted
}
