package orderflow

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func testService(t *testing.T) (*Service, *memGrid) {
	t.Helper()
	grid := newMemGrid()
	return &Service{
		Local:  tempStore(t),
		Remote: &RemoteMirror{Grid: grid, Tab: "Orders"},
	}, grid
}

func TestService_AddOrder(t *testing.T) {
	ctx := context.Background()
	svc, grid := testService(t)

	ledger, err := svc.AddOrder(ctx, NewLedger(), OrderForm{
		Customer: "Alice",
		Number:   "555",
		Items:    "Mug, Shirt",
		Quantity: "2",
		Cost:     "10",
		Sale:     "25",
	})
	if err != nil {
		t.Fatal(err)
	}
	if ledger.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", ledger.Len())
	}
	o, _ := ledger.Get(0)
	if got := o.OrderCell(); got != "Mug; Shirt" {
		t.Errorf("OrderCell() = %q", got)
	}
	if !o.Profit.Equal(decimal.RequireFromString("15")) {
		t.Errorf("Profit = %v, want 15", o.Profit)
	}

	// Both stores carry the row.
	local, err := svc.Local.LoadAll()
	if err != nil {
		t.Fatal(err)
	}
	if local.Len() != 1 {
		t.Errorf("local Len() = %d, want 1", local.Len())
	}
	if rows := grid.tabs["Orders"]; len(rows) != 2 {
		t.Errorf("mirror has %d rows, want header plus 1", len(rows))
	}
}

func TestService_AddOrder_Validation(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name  string
		form  OrderForm
		field string
	}{
		{"missing customer", OrderForm{Number: "555", Items: "Mug"}, "Customer Name"},
		{"missing number", OrderForm{Customer: "Alice", Items: "Mug"}, "Number"},
		{"no items", OrderForm{Customer: "Alice", Number: "555", Items: " , ,\n"}, "Order"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, grid := testService(t)
			ledger, err := svc.AddOrder(ctx, NewLedger(), tt.form)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("err = %v, want ValidationError", err)
			}
			if verr.Field != tt.field {
				t.Errorf("Field = %q, want %q", verr.Field, tt.field)
			}
			// Rejection persists nothing, anywhere.
			if ledger.Len() != 0 || ledger.Version() != 0 {
				t.Errorf("snapshot mutated: len=%d version=%d", ledger.Len(), ledger.Version())
			}
			if len(grid.tabs["Orders"]) != 0 {
				t.Error("mirror written on rejected add")
			}
		})
	}
}

func TestService_EditOrder(t *testing.T) {
	ctx := context.Background()
	svc, _ := testService(t)

	ledger := NewLedger()
	ledger, err := svc.AddOrder(ctx, ledger, OrderForm{Customer: "Alice", Number: "555", Items: "Mug", Cost: "10", Sale: "25"})
	if err != nil {
		t.Fatal(err)
	}
	ledger, err = svc.AddOrder(ctx, ledger, OrderForm{Customer: "Bob", Number: "777", Items: "Shirt", Cost: "5", Sale: "8"})
	if err != nil {
		t.Fatal(err)
	}

	prev, _ := ledger.Get(0)
	ledger, err = svc.EditOrder(ctx, ledger, 0, OrderForm{Customer: "Alice", Number: "555", Items: "Mug", Cost: "10", Sale: "15"})
	if err != nil {
		t.Fatal(err)
	}

	edited, _ := ledger.Get(0)
	if !edited.Profit.Equal(decimal.RequireFromString("5")) {
		t.Errorf("Profit = %v, want 5", edited.Profit)
	}
	if edited.ID != prev.ID {
		t.Error("editing must keep the record identity")
	}
	other, _ := ledger.Get(1)
	if other.Customer != "Bob" || !other.Profit.Equal(decimal.RequireFromString("3")) {
		t.Errorf("untouched row changed: %+v", other)
	}

	// Edit of a nonexistent row mutates nothing.
	if _, err := svc.EditOrder(ctx, ledger, 5, OrderForm{}); err == nil {
		t.Fatal("want error for out-of-range index")
	}
}

func TestService_DeleteOrder(t *testing.T) {
	ctx := context.Background()
	svc, grid := testService(t)

	ledger, err := svc.AddOrder(ctx, NewLedger(), OrderForm{Customer: "Alice", Number: "555", Items: "Mug"})
	if err != nil {
		t.Fatal(err)
	}
	ledger, err = svc.DeleteOrder(ctx, ledger, 0)
	if err != nil {
		t.Fatal(err)
	}
	if ledger.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", ledger.Len())
	}
	// An emptied ledger yields the insufficient-data report.
	if s := Summarize(ledger); s.Insights != nil {
		t.Error("empty ledger must have nil Insights")
	}
	// The mirror holds only the header.
	if rows := grid.tabs["Orders"]; len(rows) != 1 {
		t.Errorf("mirror has %d rows, want 1", len(rows))
	}

	if _, err := svc.DeleteOrder(ctx, ledger, 0); err == nil {
		t.Fatal("want error for out-of-range index")
	}
}

func TestService_ImportBatch(t *testing.T) {
	ctx := context.Background()
	svc, _ := testService(t)

	ledger, err := svc.AddOrder(ctx, NewLedger(), OrderForm{Customer: "Alice", Number: "555", Items: "Mug"})
	if err != nil {
		t.Fatal(err)
	}

	batch, err := ImportCSV(strings.NewReader(strings.Join(Dated.Columns(), ",") + "\n" +
		"Bob,777,Shirt,1,,5,8,3,Shipped,Paid,,2025-03-01\n" +
		"Cara,888,Cap,1,,2,6,4,Pending,Unpaid,,2025-03-02\n"))
	if err != nil {
		t.Fatal(err)
	}

	ledger, err = svc.ImportBatch(ctx, ledger, batch)
	if err != nil {
		t.Fatal(err)
	}
	if ledger.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", ledger.Len())
	}
	local, err := svc.Local.LoadAll()
	if err != nil {
		t.Fatal(err)
	}
	if local.Len() != 3 {
		t.Errorf("local Len() = %d, want 3", local.Len())
	}
}

func TestService_SyncDivergence(t *testing.T) {
	ctx := context.Background()
	svc, grid := testService(t)
	grid.failOn = "update"

	ledger, err := svc.AddOrder(ctx, NewLedger(), OrderForm{Customer: "Alice", Number: "555", Items: "Mug"})

	var serr *SyncError
	if !errors.As(err, &serr) {
		t.Fatalf("err = %v, want SyncError", err)
	}
	if !errors.Is(err, errGridDown) {
		t.Error("SyncError must wrap the grid failure")
	}
	if serr.Version != ledger.Version() {
		t.Errorf("SyncError.Version = %d, ledger version %d", serr.Version, ledger.Version())
	}

	// The local write is committed regardless.
	local, lerr := svc.Local.LoadAll()
	if lerr != nil {
		t.Fatal(lerr)
	}
	if local.Len() != 1 {
		t.Errorf("local Len() = %d, want 1", local.Len())
	}
}

func TestService_NoRemote(t *testing.T) {
	ctx := context.Background()
	svc := &Service{Local: tempStore(t)}

	ledger, err := svc.AddOrder(ctx, NewLedger(), OrderForm{Customer: "Alice", Number: "555", Items: "Mug"})
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.Publish(ctx, ledger); err == nil {
		t.Error("Publish without a mirror must fail")
	}

	loaded, err := svc.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Len() != 1 {
		t.Errorf("Load() Len() = %d, want 1", loaded.Len())
	}
}
