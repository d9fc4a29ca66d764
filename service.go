package orderflow

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/avikal/orderflow/date"
	"github.com/shopspring/decimal"
)

// ValidationError rejects a mutation before anything is persisted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid order: %s %s", e.Field, e.Reason)
}

// SyncError reports that the local write committed but the remote
// replication failed. The two stores stay divergent until the next
// successful mutation resynchronizes them via full replace; there is no
// retry and no rollback.
type SyncError struct {
	Version uint64 // version stamp of the locally committed snapshot
	Err     error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("local write committed (version %d) but mirror sync failed: %v", e.Version, e.Err)
}

func (e *SyncError) Unwrap() error { return e.Err }

// OrderForm carries the raw field input of one order submission.
// Quantity, prices, statuses and date are free text; the service
// resolves them with the documented coercion defaults.
type OrderForm struct {
	Customer string
	Number   string
	Items    string // free text, split on commas and newlines
	Quantity string
	Nameset  string
	Cost     string
	Sale     string
	Status   string
	Payment  string
	Tracking string
	Date     string
}

// resolve coerces the form into an order, without the required-field
// validation that only the add path performs.
func (f OrderForm) resolve(id string, today date.Date) Order {
	o := Order{
		ID:       id,
		Customer: f.Customer,
		Number:   f.Number,
		Items:    SplitItems(f.Items),
		Quantity: ParseQuantity(f.Quantity, 1),
		Nameset:  f.Nameset,
		Cost:     ParseDecimal(f.Cost, decimal.Zero),
		Sale:     ParseDecimal(f.Sale, decimal.Zero),
		Status:   ParseOrderStatus(f.Status),
		Payment:  ParsePaymentStatus(f.Payment),
		Tracking: f.Tracking,
		Day:      today,
	}
	if d, err := date.ParseAny(f.Date); err == nil {
		o.Day = d
	}
	if o.Quantity < 1 {
		o.Quantity = 1
	}
	o.Recompute()
	return o
}

// Service is the single orchestration point for all ledger mutations.
// Every mutation follows the same sequence: validate, apply to the
// snapshot, persist to the local store, then replicate to the remote
// mirror when one is configured.
type Service struct {
	Local  *LocalStore
	Remote *RemoteMirror // nil when no mirror is configured
}

// Load returns the current snapshot from whichever store is
// authoritative: the remote mirror when configured, the local file
// otherwise.
func (s *Service) Load(ctx context.Context) (*Ledger, error) {
	if s.Remote != nil {
		return s.Remote.LoadAll(ctx)
	}
	return s.Local.LoadAll()
}

// AddOrder validates and appends one order, then persists. It requires
// a customer name, a contact number and at least one non-empty item;
// otherwise it rejects with a ValidationError and persists nothing.
func (s *Service) AddOrder(ctx context.Context, ledger *Ledger, form OrderForm) (*Ledger, error) {
	if form.Customer == "" {
		return ledger, &ValidationError{Field: "Customer Name", Reason: "is required"}
	}
	if form.Number == "" {
		return ledger, &ValidationError{Field: "Number", Reason: "is required"}
	}
	o := form.resolve(NewID(), date.Today())
	if len(o.Items) == 0 {
		return ledger, &ValidationError{Field: "Order", Reason: "needs at least one item"}
	}

	ledger.Append(o)
	if err := s.Local.AppendRows([]Order{o}); err != nil {
		return ledger, err
	}
	return ledger, s.replicate(ctx, ledger)
}

// EditOrder replaces all fields of the order at index, recomputing
// Profit, then persists. The index must reference a row of the
// last-loaded snapshot.
func (s *Service) EditOrder(ctx context.Context, ledger *Ledger, index int, form OrderForm) (*Ledger, error) {
	prev, err := ledger.Get(index)
	if err != nil {
		return ledger, &ValidationError{Field: "index", Reason: strconv.Itoa(index) + " does not reference an existing order"}
	}
	o := form.resolve(prev.ID, prev.Day)
	if err := ledger.SetAt(index, o); err != nil {
		return ledger, err
	}
	if err := s.Local.OverwriteAll(ledger); err != nil {
		return ledger, err
	}
	return ledger, s.replicate(ctx, ledger)
}

// DeleteOrder removes the order at index and persists. Remaining
// orders are re-indexed: positional indices are only valid within one
// loaded snapshot, never cached across reloads.
func (s *Service) DeleteOrder(ctx context.Context, ledger *Ledger, index int) (*Ledger, error) {
	if err := ledger.RemoveAt(index); err != nil {
		return ledger, &ValidationError{Field: "index", Reason: strconv.Itoa(index) + " does not reference an existing order"}
	}
	if err := s.Local.OverwriteAll(ledger); err != nil {
		return ledger, err
	}
	return ledger, s.replicate(ctx, ledger)
}

// ImportBatch appends an externally supplied, already schema-checked
// batch to the snapshot, then persists. Rows are appended as-is, never
// merged or deduplicated.
func (s *Service) ImportBatch(ctx context.Context, ledger, batch *Ledger) (*Ledger, error) {
	orders := make([]Order, 0, batch.Len())
	for _, o := range batch.Records() {
		orders = append(orders, o)
	}
	ledger.Append(orders...)
	if err := s.Local.AppendRows(orders); err != nil {
		return ledger, err
	}
	return ledger, s.replicate(ctx, ledger)
}

// Publish force-pushes the current snapshot to the remote mirror, the
// explicit idempotent "publish snapshot" operation.
func (s *Service) Publish(ctx context.Context, ledger *Ledger) error {
	if s.Remote == nil {
		return fmt.Errorf("no remote mirror configured")
	}
	return s.Remote.ReplaceAll(ctx, ledger)
}

// replicate pushes the snapshot to the mirror after a successful local
// write. A failure here leaves the stores divergent; the divergence is
// logged for manual reconciliation and surfaced as a SyncError.
func (s *Service) replicate(ctx context.Context, ledger *Ledger) error {
	if s.Remote == nil {
		return nil
	}
	if err := s.Remote.ReplaceAll(ctx, ledger); err != nil {
		log.Printf("sync-divergence version=%d tab=%q err=%q", ledger.Version(), s.Remote.Tab, err)
		return &SyncError{Version: ledger.Version(), Err: err}
	}
	return nil
}
