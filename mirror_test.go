package orderflow

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

// memGrid is an in-memory CellGrid.
type memGrid struct {
	tabs map[string][][]string
	// when set, the named operation fails
	failOn string
}

func newMemGrid() *memGrid { return &memGrid{tabs: map[string][][]string{}} }

var errGridDown = errors.New("grid unavailable")

func (g *memGrid) Read(_ context.Context, tab string) ([][]string, error) {
	if g.failOn == "read" {
		return nil, errGridDown
	}
	return g.tabs[tab], nil
}

func (g *memGrid) Update(_ context.Context, tab string, rows [][]string) error {
	if g.failOn == "update" {
		return errGridDown
	}
	g.tabs[tab] = rows
	return nil
}

func (g *memGrid) Clear(_ context.Context, tab string) error {
	if g.failOn == "clear" {
		return errGridDown
	}
	g.tabs[tab] = nil
	return nil
}

func (g *memGrid) EnsureTab(_ context.Context, tab string) error {
	if g.failOn == "ensure" {
		return errGridDown
	}
	if _, ok := g.tabs[tab]; !ok {
		g.tabs[tab] = nil
	}
	return nil
}

func TestRemoteMirror_LoadAll_Empty(t *testing.T) {
	ctx := context.Background()
	grid := newMemGrid()
	m := &RemoteMirror{Grid: grid, Tab: "Orders"}

	// Missing tab, then header-only tab: both are "no data yet".
	for _, rows := range [][][]string{nil, {Dated.Columns()}} {
		grid.tabs["Orders"] = rows
		ledger, err := m.LoadAll(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if ledger.Len() != 0 {
			t.Errorf("Len() = %d, want 0", ledger.Len())
		}
	}

	if _, ok := grid.tabs["Orders"]; !ok {
		t.Error("LoadAll provisions the tab")
	}
}

func TestRemoteMirror_LoadAll_Coercions(t *testing.T) {
	ctx := context.Background()
	grid := newMemGrid()
	grid.tabs["Orders"] = [][]string{
		Dated.Columns(),
		{"Alice", "555", "Mug; Shirt", "2", "", "10", "25", "15", "Pending", "Unpaid", "", "10-01-2025"},
	}
	m := &RemoteMirror{Grid: grid, Tab: "Orders"}

	ledger, err := m.LoadAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if ledger.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", ledger.Len())
	}
	o, _ := ledger.Get(0)
	if !o.Sale.Equal(decimal.RequireFromString("25")) {
		t.Errorf("Sale = %v", o.Sale)
	}
	if got := o.Day.String(); got != "2025-01-10" {
		t.Errorf("Day = %q, want 2025-01-10", got)
	}
}

func TestRemoteMirror_LoadAll_ForeignHeader(t *testing.T) {
	ctx := context.Background()
	grid := newMemGrid()
	grid.tabs["Orders"] = [][]string{{"Name", "Phone"}, {"Alice", "555"}}
	m := &RemoteMirror{Grid: grid, Tab: "Orders"}

	_, err := m.LoadAll(ctx)
	var mismatch *SchemaMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("err = %v, want SchemaMismatchError", err)
	}
}

func TestRemoteMirror_ReplaceAll(t *testing.T) {
	ctx := context.Background()
	grid := newMemGrid()
	// Stale content that a full replace must not leave behind.
	grid.tabs["Orders"] = [][]string{{"junk"}, {"junk"}, {"junk"}, {"junk"}}
	m := &RemoteMirror{Grid: grid, Tab: "Orders"}

	// Appended out of date order on purpose.
	ledger := NewLedger(
		testOrder("Bob", "2025-02-01"),
		testOrder("Alice", "2025-01-10"),
	)
	if err := m.ReplaceAll(ctx, ledger); err != nil {
		t.Fatal(err)
	}

	rows := grid.tabs["Orders"]
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header plus 2", len(rows))
	}
	if !Dated.Match(rows[0]) {
		t.Errorf("header = %v", rows[0])
	}
	// Published rows are sorted by date ascending, mirror date format.
	if rows[1][0] != "Alice" || rows[2][0] != "Bob" {
		t.Errorf("row order = %q, %q", rows[1][0], rows[2][0])
	}
	if got := rows[1][11]; got != "10-01-2025" {
		t.Errorf("date cell = %q, want 10-01-2025", got)
	}

	// Idempotent for a given snapshot.
	if err := m.ReplaceAll(ctx, ledger); err != nil {
		t.Fatal(err)
	}
	if len(grid.tabs["Orders"]) != 3 {
		t.Errorf("second publish changed the row count to %d", len(grid.tabs["Orders"]))
	}
}

func TestRemoteMirror_ReplaceAll_GridDown(t *testing.T) {
	ctx := context.Background()
	for _, op := range []string{"ensure", "clear", "update"} {
		grid := newMemGrid()
		grid.failOn = op
		m := &RemoteMirror{Grid: grid, Tab: "Orders"}
		err := m.ReplaceAll(ctx, NewLedger(testOrder("Alice", "2025-01-10")))
		if !errors.Is(err, errGridDown) {
			t.Errorf("failOn=%s: err = %v, want wrapped grid error", op, err)
		}
	}
}
