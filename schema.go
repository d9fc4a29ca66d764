package orderflow

import (
	"fmt"
	"strings"

	"github.com/avikal/orderflow/date"
	"github.com/shopspring/decimal"
)

// Schema identifies a supported column layout of a persisted table.
type Schema int

const (
	// Legacy is the oldest local-only layout, without the Date column.
	Legacy Schema = iota
	// Dated is the canonical layout, Legacy plus a trailing Date column.
	// Everything written by this module uses it.
	Dated
)

var legacyColumns = []string{
	"Customer Name", "Number", "Order", "Quantity", "Nameset",
	"Cost Price", "Sale Price", "Profit",
	"Order Status", "Payment Status", "Tracking Detail",
}

// Columns returns the ordered column names of the schema.
func (s Schema) Columns() []string {
	cols := append([]string(nil), legacyColumns...)
	if s == Dated {
		cols = append(cols, "Date")
	}
	return cols
}

// HasDate reports whether the schema carries the trailing Date column.
func (s Schema) HasDate() bool { return s == Dated }

func (s Schema) String() string {
	if s == Dated {
		return "dated"
	}
	return "legacy"
}

// SchemaMismatchError reports a header that matches no supported schema.
// An import or load carrying it performs no mutation.
type SchemaMismatchError struct {
	Want []string
	Got  []string
}

func (e *SchemaMismatchError) Error() string {
	for i, col := range e.Want {
		if i >= len(e.Got) {
			return fmt.Sprintf("column structure mismatch: missing column %q", col)
		}
		if e.Got[i] != col {
			return fmt.Sprintf("column structure mismatch: want column %q at position %d, got %q", col, i+1, e.Got[i])
		}
	}
	return fmt.Sprintf("column structure mismatch: unexpected extra columns %v", e.Got[len(e.Want):])
}

// Match reports whether header exactly equals the schema's columns,
// names and order included.
func (s Schema) Match(header []string) bool {
	cols := s.Columns()
	if len(header) != len(cols) {
		return false
	}
	for i, col := range cols {
		if strings.TrimSpace(header[i]) != col {
			return false
		}
	}
	return true
}

// DetectSchema returns the schema variant matching the header, or a
// SchemaMismatchError naming the first difference from the canonical
// dated layout.
func DetectSchema(header []string) (Schema, error) {
	if Dated.Match(header) {
		return Dated, nil
	}
	if Legacy.Match(header) {
		return Legacy, nil
	}
	return 0, &SchemaMismatchError{Want: Dated.Columns(), Got: header}
}

// Row encodes the order as one row of the schema, dates in ISO format.
func (s Schema) Row(o Order) []string { return s.row(o, date.Date.String) }

// MirrorRow is like Row with dates in the spreadsheet mirror format.
func (s Schema) MirrorRow(o Order) []string { return s.row(o, date.Date.Mirror) }

func (s Schema) row(o Order, day func(date.Date) string) []string {
	row := []string{
		o.Customer,
		o.Number,
		o.OrderCell(),
		fmt.Sprintf("%d", o.Quantity),
		o.Nameset,
		o.Cost.String(),
		o.Sale.String(),
		o.Profit.String(),
		o.Status.String(),
		o.Payment.String(),
		o.Tracking,
	}
	if s == Dated {
		row = append(row, day(o.Day))
	}
	return row
}

// Record decodes one row of the schema into an Order, applying the
// defensive coercions: quantity defaults to 1, prices to 0, statuses to
// their first member, and a missing or unparseable date to today.
// Short rows read as empty trailing cells. A fresh synthetic ID is
// assigned; IDs are not persisted in the tabular formats.
func (s Schema) Record(row []string, today date.Date) Order {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}
	o := Order{
		ID:       NewID(),
		Customer: cell(0),
		Number:   cell(1),
		Items:    splitOrderCell(cell(2)),
		Quantity: ParseQuantity(cell(3), 1),
		Nameset:  cell(4),
		Cost:     ParseDecimal(cell(5), decimal.Zero),
		Sale:     ParseDecimal(cell(6), decimal.Zero),
		Profit:   ParseDecimal(cell(7), decimal.Zero),
		Status:   ParseOrderStatus(cell(8)),
		Payment:  ParsePaymentStatus(cell(9)),
		Tracking: cell(10),
		Day:      today,
	}
	if s == Dated {
		if d, err := date.ParseAny(cell(11)); err == nil {
			o.Day = d
		}
	}
	return o
}
