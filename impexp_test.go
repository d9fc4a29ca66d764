package orderflow

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

func TestExportImportCSV_RoundTrip(t *testing.T) {
	a := testOrder("Alice", "2025-01-10")
	a.Items = []string{"Mug", "Shirt"}
	a.Quantity = 2
	a.Cost = decimal.RequireFromString("10")
	a.Sale = decimal.RequireFromString("25")
	a.Recompute()
	b := testOrder("Bob", "2025-02-01")
	ledger := NewLedger(a, b)

	var buf bytes.Buffer
	if err := ExportCSV(&buf, ledger); err != nil {
		t.Fatal(err)
	}
	imported, err := ImportCSV(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if imported.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", imported.Len())
	}
	for i, want := range []Order{a, b} {
		got, _ := imported.Get(i)
		if got.Customer != want.Customer ||
			got.OrderCell() != want.OrderCell() ||
			got.Quantity != want.Quantity ||
			!got.Profit.Equal(want.Profit) ||
			got.Day != want.Day {
			t.Errorf("row %d = %+v, want %+v", i, got, want)
		}
		// Tabular formats carry no IDs; imports mint fresh ones.
		if got.ID == want.ID {
			t.Errorf("row %d kept the exported ID", i)
		}
	}
}

func TestImportCSV_Template(t *testing.T) {
	var buf bytes.Buffer
	if err := Template(&buf); err != nil {
		t.Fatal(err)
	}
	ledger, err := ImportCSV(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if ledger.Len() != 0 {
		t.Errorf("Len() = %d, want 0", ledger.Len())
	}
}

func TestImportCSV_HeaderMismatch(t *testing.T) {
	// The canonical header minus Tracking Detail.
	cols := Dated.Columns()
	short := append(append([]string(nil), cols[:10]...), cols[11])
	in := strings.Join(short, ",") + "\nAlice,555,Mug,1,,10,25,15,Pending,Unpaid,2025-01-10\n"

	_, err := ImportCSV(strings.NewReader(in))
	var mismatch *SchemaMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("err = %v, want SchemaMismatchError", err)
	}
	if !strings.Contains(err.Error(), "Tracking Detail") {
		t.Errorf("error %q should name the differing column", err)
	}
}

func TestImportCSV_Empty(t *testing.T) {
	ledger, err := ImportCSV(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if ledger.Len() != 0 {
		t.Errorf("Len() = %d, want 0", ledger.Len())
	}
}

func TestExportXLSX(t *testing.T) {
	ledger := NewLedger(
		testOrder("Alice", "2025-01-10"),
		testOrder("Bob", "2025-02-01"),
	)

	var buf bytes.Buffer
	if err := ExportXLSX(&buf, ledger); err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if got := f.GetSheetName(0); got != ExportSheetName {
		t.Errorf("sheet name = %q, want %q", got, ExportSheetName)
	}
	rows, err := f.GetRows(ExportSheetName)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header plus 2", len(rows))
	}
	if !Dated.Match(rows[0]) {
		t.Errorf("header = %v", rows[0])
	}
	if rows[1][0] != "Alice" || rows[2][0] != "Bob" {
		t.Errorf("rows = %q, %q", rows[1][0], rows[2][0])
	}
}
